package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/seqscrape"
)

const (
	urlPrompt      = "What's the URL? (e.g., example.com/1.html): "
	countPrompt    = "What's the range? (e.g., 123): "
	selectorPrompt = "Enter CSS selector for article content (default: #articlebody): "
)

// prompter asks questions on out and reads single-line answers from in.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	if in == nil {
		in = strings.NewReader("")
	}
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask prints question and returns the trimmed answer. A closed input with
// no pending text returns EINVALID.
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(p.out)
		return "", seqscrape.Errorf(seqscrape.EINVALID, "no input")
	}
	return strings.TrimSpace(line), nil
}

// askDefault is like ask but returns def for an empty answer or closed input.
func (p *prompter) askDefault(question, def string) (string, error) {
	answer, err := p.ask(question)
	if seqscrape.ErrorCode(err) == seqscrape.EINVALID {
		return def, nil
	} else if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// parseCount parses the number of pages to fetch. The error message is
// meant for the user.
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, seqscrape.Errorf(seqscrape.EINVALID, "Range must be a valid number.")
	}
	if n <= 0 {
		return 0, seqscrape.Errorf(seqscrape.EINVALID, "Range must be a positive number.")
	}
	return n, nil
}

// normalizeURL prefixes scheme-less input such as "example.com/1.html"
// with https://.
func normalizeURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(s, "://") {
		return s
	}
	return "https://" + s
}
