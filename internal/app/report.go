package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/chriscorrea/tally/internal/counter"
	"github.com/chriscorrea/tally/internal/edit"
)

// OutputFormat defines the output format for results
type OutputFormat int

const (
	// labelled lines, as "Words Count: 7" (default)
	Text OutputFormat = iota
	// JSON output format
	JSON
	// YAML output format
	YAML
	// aligned Metric/Count table
	Table
)

// String returns the string representation of the output
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "Text"
	case JSON:
		return "JSON"
	case YAML:
		return "YAML"
	case Table:
		return "Table"
	default:
		return "Unknown"
	}
}

// Report is the rendered result of one tally run.
type Report struct {
	Mode      string  `json:"mode" yaml:"mode"`
	Count     int     `json:"count" yaml:"count"`
	Digits    int     `json:"digits" yaml:"digits"`
	Letters   *int    `json:"letters,omitempty" yaml:"letters,omitempty"`
	Words     *int    `json:"words,omitempty" yaml:"words,omitempty"`
	Sentences *int    `json:"sentences,omitempty" yaml:"sentences,omitempty"`
	Tokens    *int    `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	Action    string  `json:"action,omitempty" yaml:"action,omitempty"`
	Text      *string `json:"text,omitempty" yaml:"text,omitempty"` // set when an action changed the text
}

// BuildReport counts text according to cfg.
func BuildReport(text string, cfg Config) (Report, error) {
	var result counter.Result
	var summary *counter.Summary

	if cfg.All {
		s := counter.Analyze(text)
		r, err := s.Result(cfg.Mode)
		if err != nil {
			return Report{}, err
		}
		result, summary = r, &s
	} else {
		r, err := counter.Compute(text, cfg.Mode)
		if err != nil {
			return Report{}, err
		}
		result = r
	}

	report := Report{
		Mode:   result.Mode.String(),
		Count:  result.Primary,
		Digits: result.Digits,
	}

	if summary != nil {
		report.Letters = &summary.Letters
		report.Words = &summary.Words
		report.Sentences = &summary.Sentences
	}

	if cfg.Tokens {
		tokenCounter, err := counter.NewTokenCounter()
		if err != nil {
			return Report{}, fmt.Errorf("failed to create token counter: %w", err)
		}
		tokens := tokenCounter.Count(text)
		report.Tokens = &tokens
	}

	if cfg.Action != edit.None {
		report.Action = cfg.Action.String()
		report.Text = &text
	}

	slog.Debug("Report built", "mode", report.Mode, "count", report.Count, "digits", report.Digits, "all", cfg.All)
	return report, nil
}

// Render formats the report in the requested output format.
func Render(report Report, format OutputFormat) (string, error) {
	switch format {
	case Text:
		return renderText(report), nil
	case JSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode JSON report: %w", err)
		}
		return string(data) + "\n", nil
	case YAML:
		data, err := yaml.Marshal(report)
		if err != nil {
			return "", fmt.Errorf("failed to encode YAML report: %w", err)
		}
		return string(data), nil
	case Table:
		return renderTable(report), nil
	default:
		return "", fmt.Errorf("unsupported output format: %d", int(format))
	}
}

// metric is one labelled count in display order
type metric struct {
	label string
	value int
}

// metrics lists the counts carried by the report; the numbers line always follows the modes
func (r Report) metrics() []metric {
	var rows []metric
	if r.Letters != nil && r.Words != nil && r.Sentences != nil {
		rows = append(rows,
			metric{counter.Letters.String(), *r.Letters},
			metric{counter.Words.String(), *r.Words},
			metric{counter.Sentences.String(), *r.Sentences},
		)
	} else {
		rows = append(rows, metric{r.Mode, r.Count})
	}

	rows = append(rows, metric{"Numbers", r.Digits})
	if r.Tokens != nil {
		rows = append(rows, metric{"Tokens", *r.Tokens})
	}
	return rows
}

// renderText writes "<Label> Count: N" lines, preceded by the edited text if any
func renderText(r Report) string {
	var b strings.Builder

	if r.Text != nil {
		b.WriteString(*r.Text)
		b.WriteString("\n\n")
	}

	for _, m := range r.metrics() {
		fmt.Fprintf(&b, "%s Count: %d\n", m.label, m.value)
	}
	return b.String()
}

// renderTable lays the counts out with tablewriter
func renderTable(r Report) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Metric", "Count"})
	table.SetBorder(false)
	table.SetColumnSeparator("  ")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, m := range r.metrics() {
		table.Append([]string{m.label, fmt.Sprintf("%d", m.value)})
	}

	table.Render()
	return buf.String()
}
