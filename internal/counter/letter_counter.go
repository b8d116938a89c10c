package counter

import "log/slog"

// LetterCounter counts ASCII letters. Letters outside a-z and A-Z are not counted.
type LetterCounter struct{}

// NewLetterCounter creates a new LetterCounter instance.
func NewLetterCounter() Counter {
	return &LetterCounter{}
}

// Count returns the number of characters in a-z or A-Z in the given text.
func (lc *LetterCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	// multi-byte UTF-8 sequences never contain ASCII bytes, so a byte scan is exact
	letterCount := 0
	for i := 0; i < len(text); i++ {
		if isASCIILetter(text[i]) {
			letterCount++
		}
	}

	slog.Debug("Letter count calculated", "textLength", len(text), "letterCount", letterCount)
	return letterCount
}

// Name returns the name of this counting rule for logging and debugging.
func (lc *LetterCounter) Name() string {
	return "letters"
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
