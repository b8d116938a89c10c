// Package edit provides the text mutation actions offered next to a tally report.
// Callers re-run the counters on the returned text.
package edit

import (
	"log/slog"
	"slices"
)

// Action identifies a text mutation.
type Action int

const (
	// None leaves the text unchanged
	None Action = iota
	// ReverseText reverses the text character by character
	ReverseText
	// ClearText replaces the text with an empty string
	ClearText
)

// String returns the string representation of the action.
func (a Action) String() string {
	switch a {
	case None:
		return "none"
	case ReverseText:
		return "reverse"
	case ClearText:
		return "clear"
	default:
		return "unknown"
	}
}

// Apply runs the action on text. Unknown actions leave text unchanged.
func (a Action) Apply(text string) string {
	switch a {
	case ReverseText:
		return Reverse(text)
	case ClearText:
		return Clear(text)
	default:
		return text
	}
}

// Reverse returns text with its characters (runes) in reverse order.
func Reverse(text string) string {
	if text == "" {
		return ""
	}

	runes := []rune(text)
	slices.Reverse(runes)

	slog.Debug("Text reversed", "runes", len(runes))
	return string(runes)
}

// Clear discards text and returns the empty string.
func Clear(text string) string {
	slog.Debug("Text cleared", "textLength", len(text))
	return ""
}
