// Package config loads user defaults for seqscrape from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/seqscrape"
	"gopkg.in/yaml.v3"
)

// Config holds defaults read from ~/.seqscrape/config.yaml. Empty fields
// and nil pointers mean "not set"; command-line flags and environment
// variables take precedence over any value here.
type Config struct {
	Selector    string         `yaml:"selector"`
	Output      string         `yaml:"output"`
	DB          string         `yaml:"db"`
	UserAgent   string         `yaml:"user_agent"`
	Delay       *time.Duration `yaml:"delay"`
	Timeout     *time.Duration `yaml:"timeout"`
	Rate        *float64       `yaml:"rate"`
	Format      string         `yaml:"format"`
	Locator     string         `yaml:"locator"`
	SegmentOnly *bool          `yaml:"segment_only"`
}

// Output formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// Root locators.
const (
	LocatorNone        = "none"
	LocatorTrafilatura = "trafilatura"
	LocatorReadability = "readability"
)

// DefaultPath returns ~/.seqscrape/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".seqscrape", "config.yaml"), nil
}

// Load reads the config file at path. A missing file yields an empty
// Config. Unknown keys and invalid values return EINVALID.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, seqscrape.Errorf(seqscrape.EINVALID, "failed to parse config file %s: %v", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate returns an error if the config contains invalid values.
func (c *Config) Validate() error {
	switch c.Format {
	case "", FormatText, FormatMarkdown:
	default:
		return seqscrape.Errorf(seqscrape.EINVALID, "unknown format %q", c.Format)
	}
	switch c.Locator {
	case "", LocatorNone, LocatorTrafilatura, LocatorReadability:
	default:
		return seqscrape.Errorf(seqscrape.EINVALID, "unknown locator %q", c.Locator)
	}
	if c.Delay != nil && *c.Delay < 0 {
		return seqscrape.Errorf(seqscrape.EINVALID, "delay must not be negative")
	}
	if c.Timeout != nil && *c.Timeout < 0 {
		return seqscrape.Errorf(seqscrape.EINVALID, "timeout must not be negative")
	}
	if c.Rate != nil && *c.Rate < 0 {
		return seqscrape.Errorf(seqscrape.EINVALID, "rate must not be negative")
	}
	return nil
}

// Merge returns a copy of c with every field set in o taking precedence.
func (c Config) Merge(o Config) Config {
	if o.Selector != "" {
		c.Selector = o.Selector
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.DB != "" {
		c.DB = o.DB
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.Delay != nil {
		c.Delay = o.Delay
	}
	if o.Timeout != nil {
		c.Timeout = o.Timeout
	}
	if o.Rate != nil {
		c.Rate = o.Rate
	}
	if o.Format != "" {
		c.Format = o.Format
	}
	if o.Locator != "" {
		c.Locator = o.Locator
	}
	if o.SegmentOnly != nil {
		c.SegmentOnly = o.SegmentOnly
	}
	return c
}
