// Package counter provides the text metrics engine for the tally CLI tool.
//
// This package implements the counting rules behind every tally report: ASCII
// letters, words (whitespace tokens that are not purely digits), terminated
// sentences, and digits. Digits are always counted alongside the selected
// primary mode.
//
// Usage Example:
//
//	result, err := counter.Compute("One. Two. Three", counter.Sentences)
//	// result.Primary == 2, result.Digits == 0
//
// Each counting rule is also available on its own through the Counter
// interface, so callers can pick a strategy once and reuse it.
package counter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMode is returned when a Mode value is not one of Letters, Words or Sentences.
var ErrInvalidMode = errors.New("invalid counting mode")

// Counter defines the interface for the different text counting rules.
type Counter interface {
	// Count returns the number of units (letters, words, sentences, digits) in given text.
	Count(text string) int

	// Name returns a human-readable name for this counting rule (for logging)
	Name() string
}

// Mode selects which primary count is computed and reported.
type Mode int

const (
	// Letters counts ASCII letters a-z and A-Z (default)
	Letters Mode = iota
	// Words counts whitespace tokens that are not made only of digits
	Words
	// Sentences counts terminated sentences
	Sentences
)

// Modes lists every recognized mode in display order.
var Modes = []Mode{Letters, Words, Sentences}

// String returns the label used when reporting counts for the mode.
func (m Mode) String() string {
	switch m {
	case Letters:
		return "Letters"
	case Words:
		return "Words"
	case Sentences:
		return "Sentences"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is one of the recognized modes.
func (m Mode) Valid() bool {
	switch m {
	case Letters, Words, Sentences:
		return true
	default:
		return false
	}
}

// ParseMode converts a mode name such as "words" or "Sentence" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "letters", "letter":
		return Letters, nil
	case "words", "word":
		return Words, nil
	case "sentences", "sentence":
		return Sentences, nil
	default:
		return 0, fmt.Errorf("%w: %q (want letters, words or sentences)", ErrInvalidMode, s)
	}
}

// NewCounter creates the Counter for the primary count of the given mode.
// Unrecognized modes are rejected rather than mapped to a default.
func NewCounter(mode Mode) (Counter, error) {
	switch mode {
	case Letters:
		return NewLetterCounter(), nil
	case Words:
		return NewWordCounter(), nil
	case Sentences:
		return NewSentenceCounter(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}
}
