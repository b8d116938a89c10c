package counter

import (
	"log/slog"
	"strings"
)

// WordCounter implements word counting using whitespace splitting.
// Tokens made only of digits ("123") are numbers, not words; anything else
// counts, including "word123" and "3.14".
type WordCounter struct{}

// NewWordCounter creates a new WordCounter instance.
func NewWordCounter() Counter {
	return &WordCounter{}
}

// Count returns the number of words in the given text.
func (wc *WordCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	// strings.Fields splits on whitespace and filters empty strings
	tokens := strings.Fields(text)
	wordCount := 0
	for _, token := range tokens {
		if !isDigitsOnly(token) {
			wordCount++
		}
	}

	slog.Debug("Word count calculated", "textLength", len(text), "tokens", len(tokens), "wordCount", wordCount)
	return wordCount
}

// Name returns the name of this counting rule for logging and debugging.
func (wc *WordCounter) Name() string {
	return "words"
}

// isDigitsOnly reports whether token is one or more ASCII digits and nothing else.
func isDigitsOnly(token string) bool {
	if token == "" {
		return false
	}
	for i := 0; i < len(token); i++ {
		if !isASCIIDigit(token[i]) {
			return false
		}
	}
	return true
}
