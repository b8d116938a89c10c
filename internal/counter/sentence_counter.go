package counter

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"
)

// ellipsisRegex matches runs of two or more dots, which count as a single terminator
var ellipsisRegex = regexp.MustCompile(`\.{2,}`)

// SentenceCounter counts terminated sentences.
//
// Counting Pipeline:
//  1. collapse every run of dots into a single dot
//  2. split at each terminator ('.', '?', '!') and keep non-blank segments
//  3. drop the last segment when the text does not end with a terminator
//
// Text with no terminator at all therefore counts as zero sentences.
type SentenceCounter struct{}

// NewSentenceCounter creates a new SentenceCounter instance.
func NewSentenceCounter() Counter {
	return &SentenceCounter{}
}

// Count returns the number of terminated sentences in the given text.
func (sc *SentenceCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	normalized := ellipsisRegex.ReplaceAllString(text, ".")

	provisional := 0
	for _, segment := range strings.FieldsFunc(normalized, isTerminator) {
		if strings.TrimSpace(segment) != "" {
			provisional++
		}
	}

	sentenceCount := provisional
	terminated := endsWithTerminator(text)
	if sentenceCount > 0 && !terminated {
		// the trailing fragment is still being written
		sentenceCount--
	}
	sentenceCount = max(0, sentenceCount)

	slog.Debug("Sentence count calculated", "textLength", len(text), "provisional", provisional, "terminated", terminated, "sentenceCount", sentenceCount)
	return sentenceCount
}

// Name returns the name of this counting rule for logging and debugging.
func (sc *SentenceCounter) Name() string {
	return "sentences"
}

func isTerminator(r rune) bool {
	return r == '.' || r == '?' || r == '!'
}

// endsWithTerminator reports whether text ends with a terminator, ignoring trailing whitespace.
func endsWithTerminator(text string) bool {
	trimmed := strings.TrimRightFunc(text, unicode.IsSpace)
	if trimmed == "" {
		return false
	}
	return isTerminator(rune(trimmed[len(trimmed)-1]))
}
