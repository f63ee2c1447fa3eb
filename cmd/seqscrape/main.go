package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/seqscrape"
	"github.com/fwojciec/seqscrape/config"
	"github.com/fwojciec/seqscrape/crawl"
	seqfs "github.com/fwojciec/seqscrape/fs"
	"github.com/fwojciec/seqscrape/goquery"
	"github.com/fwojciec/seqscrape/htmltomarkdown"
	seqhttp "github.com/fwojciec/seqscrape/http"
	"github.com/fwojciec/seqscrape/readability"
	seqslog "github.com/fwojciec/seqscrape/slog"
	"github.com/fwojciec/seqscrape/sqlite"
	"github.com/fwojciec/seqscrape/trafilatura"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin answers interactive prompts.
	Stdin io.Reader

	// EnvFiles are loaded into the environment before flags are parsed.
	// Missing files are ignored; existing variables are not overridden.
	EnvFiles []string

	// ConfigPath is used when --config is not given.
	ConfigPath string

	// Fetcher replaces the HTTP fetcher. For end-to-end testing.
	Fetcher seqscrape.Fetcher

	// SQLite database used by the archive, open while Run executes.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	m := &Main{
		Stdin:    os.Stdin,
		EnvFiles: []string{".env"},
	}
	if path, err := config.DefaultPath(); err == nil {
		m.ConfigPath = path
	}
	return m
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if err := loadEnv(m.EnvFiles); err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:      ctx,
		Stdin:    m.Stdin,
		Stdout:   stdout,
		Stderr:   stderr,
		NewRunID: func() string { return uuid.New().String() },
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("seqscrape"),
		kong.Description("Scrape numbered page sequences into a single text file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	configPath := cli.Config
	if configPath == "" {
		configPath = m.ConfigPath
	}
	cfg := &config.Config{}
	if configPath != "" {
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	logger := newLogger(stderr, cli.Verbose, cli.Quiet)

	dbPath := cli.DB
	if dbPath == "" {
		dbPath = cfg.DB
	}

	// Anything other than list or delete runs the default scrape command.
	cmd := kongCtx.Command()
	switch {
	case strings.HasPrefix(cmd, "list"), strings.HasPrefix(cmd, "delete"):
		if dbPath == "" {
			return seqscrape.Errorf(seqscrape.EINVALID, "no archive database configured, use --db or SEQSCRAPE_DB")
		}
	default:
		settings := cfg.Merge(cli.Scrape.overrides())
		if err := settings.Validate(); err != nil {
			return err
		}
		m.wireScrape(deps, &cli.Scrape, settings, logger)
	}

	if dbPath != "" {
		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SEQSCRAPE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		defer m.Close()
		deps.Articles = sqlite.NewArticleService(m.DB)
	}

	if deps.Crawler != nil {
		defer deps.Crawler.Fetcher.Close()
	}

	return kongCtx.Run(deps)
}

// wireScrape builds the crawler and output store from resolved settings and
// writes them back into the command.
func (m *Main) wireScrape(deps *Dependencies, cmd *ScrapeCmd, settings config.Config, logger *slog.Logger) {
	cmd.Selector = settings.Selector
	cmd.SegmentOnly = settings.SegmentOnly
	cmd.Output = settings.Output
	if cmd.Output == "" {
		cmd.Output = seqfs.DefaultOutputPath
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		var opts []seqhttp.Option
		if settings.Timeout != nil {
			opts = append(opts, seqhttp.WithTimeout(*settings.Timeout))
		}
		if settings.UserAgent != "" {
			opts = append(opts, seqhttp.WithUserAgent(settings.UserAgent))
		}
		fetcher = seqhttp.NewFetcher(opts...)
	}

	var extractorOpts []goquery.Option
	switch settings.Locator {
	case config.LocatorTrafilatura:
		extractorOpts = append(extractorOpts, goquery.WithLocator(trafilatura.NewLocator()))
	case config.LocatorReadability:
		extractorOpts = append(extractorOpts, goquery.WithLocator(readability.NewLocator()))
	}

	crawler := crawl.NewCrawler(
		seqslog.NewLoggingFetcher(fetcher, logger),
		seqslog.NewLoggingExtractor(goquery.NewExtractor(extractorOpts...), logger),
	)
	if settings.Delay != nil {
		crawler.Delay = *settings.Delay
	}
	if settings.Rate != nil && *settings.Rate > 0 {
		crawler.RateLimiter = crawl.NewDomainLimiter(*settings.Rate)
	}
	if settings.Format == config.FormatMarkdown {
		crawler.Converter = htmltomarkdown.NewConverter()
	}

	deps.Crawler = crawler
	deps.Store = seqfs.NewFileStore(cmd.Output)
}

// newLogger returns a text logger on w. Diagnostics are logged at info
// level; verbose adds debug output and quiet keeps only errors.
func newLogger(w io.Writer, verbose, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadEnv loads the given dotenv files, skipping those that don't exist.
func loadEnv(files []string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}
