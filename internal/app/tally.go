// Package app contains the core application logic for the tally CLI tool.
// It handles the main business logic separated from CLI concerns.
package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/chriscorrea/tally/internal/counter"
	"github.com/chriscorrea/tally/internal/edit"
	"github.com/chriscorrea/tally/internal/extract"
	"github.com/chriscorrea/tally/internal/fetch"
	"github.com/chriscorrea/tally/internal/spinner"
)

// stderr receives warnings and progress output; swapped in tests
var stderr io.Writer = os.Stderr

// Config holds all configuration options for the tally application.
type Config struct {
	Sources      []string     // URLs, file paths, or "-" for stdin
	Selector     string       // CSS selector for HTML sources
	IncludeAll   bool         // use all HTML body text instead of readability extraction
	Mode         counter.Mode // primary counting mode
	All          bool         // report every mode, not only Mode
	Tokens       bool         // add a tiktoken estimate to the report
	Action       edit.Action  // mutation applied to the text before counting
	OutputFormat OutputFormat // output format (text/json/yaml/table)
	Quiet        bool         // suppress warnings and progress
}

// Run executes the tally pipeline with the given configuration.
//
// Processing Pipeline:
// 1. Load and combine text from all sources (LoadText)
// 2. Apply the configured edit action
// 3. Count and render the report
//
// ctx allows for cancellation of URL fetches.
func Run(ctx context.Context, cfg Config) (string, error) {
	if !cfg.Mode.Valid() {
		return "", fmt.Errorf("%w: %d", counter.ErrInvalidMode, int(cfg.Mode))
	}

	text, err := LoadText(ctx, cfg.Sources, cfg.Selector, cfg.IncludeAll, cfg.Quiet)
	if err != nil {
		return "", err
	}

	text = cfg.Action.Apply(text)

	report, err := BuildReport(text, cfg)
	if err != nil {
		return "", err
	}

	return Render(report, cfg.OutputFormat)
}

// LoadText reads every source and joins their text with blank lines.
// A source that fails is reported as a warning and skipped; it is an error
// only when no source could be read.
func LoadText(ctx context.Context, sources []string, selector string, includeAll, quiet bool) (string, error) {
	if len(sources) == 0 {
		return "", fmt.Errorf("no sources provided")
	}

	var progress *spinner.Spinner
	if !quiet {
		progress = spinner.New(ctx, stderr, "")
	}

	var combined strings.Builder
	loaded := 0

	for i, source := range sources {
		showProgress := progress != nil && fetch.IsURL(source)
		if showProgress {
			progress.UpdateMessage(fetchMessage(source, i, len(sources)))
			progress.Start()
		}

		text, err := loadSource(ctx, source, selector, includeAll)
		if showProgress {
			progress.Stop()
		}
		if err != nil {
			if !quiet {
				fmt.Fprintf(stderr, "Warning: failed to process source %q: %v\n", source, err)
			}
			continue
		}

		if loaded > 0 {
			combined.WriteString("\n\n")
		}
		combined.WriteString(text)
		loaded++
	}

	if loaded == 0 {
		return "", fmt.Errorf("no text loaded from any source")
	}

	slog.Debug("Sources combined", "sources", len(sources), "loaded", loaded, "textLength", combined.Len())
	return combined.String(), nil
}

// fetchMessage is the progress line for source i of total
func fetchMessage(source string, i, total int) string {
	if total == 1 {
		return fmt.Sprintf("Fetching %s...", source)
	}
	return fmt.Sprintf("Fetching %s (%d/%d)...", source, i+1, total)
}

// loadSource fetches one source; HTML is reduced to its text, anything else is counted as-is
func loadSource(ctx context.Context, source, selector string, includeAll bool) (string, error) {
	data, err := fetch.ReadAll(ctx, source)
	if err != nil {
		return "", fmt.Errorf("failed to fetch content: %w", err)
	}

	if selector == "" && !includeAll && !extract.LooksLikeHTML(data) {
		return string(data), nil
	}

	var baseURL *url.URL
	if fetch.IsURL(source) {
		baseURL, _ = url.Parse(source) // ignore parse errors, will use nil
	}

	text, err := extract.ToText(bytes.NewReader(data), selector, includeAll, baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}
	return text, nil
}
