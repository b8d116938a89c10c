package counter

import "log/slog"

// DigitCounter counts the ASCII digits 0-9 anywhere in the text.
type DigitCounter struct{}

// NewDigitCounter creates a new DigitCounter instance.
func NewDigitCounter() Counter {
	return &DigitCounter{}
}

// Count returns the number of characters in 0-9 in the given text.
func (dc *DigitCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	digitCount := 0
	for i := 0; i < len(text); i++ {
		if isASCIIDigit(text[i]) {
			digitCount++
		}
	}

	slog.Debug("Digit count calculated", "textLength", len(text), "digitCount", digitCount)
	return digitCount
}

// Name returns the name of this counting rule for logging and debugging.
func (dc *DigitCounter) Name() string {
	return "digits"
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
