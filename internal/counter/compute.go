package counter

import (
	"fmt"
	"log/slog"
)

// Result holds the counts produced for one mode.
type Result struct {
	Mode    Mode // mode that selected the primary count
	Primary int  // letters, words or sentences depending on Mode
	Digits  int  // ASCII digits, computed for every mode
}

// Compute returns the primary count for mode along with the digit count.
// It has no side effects and is safe to call concurrently. The only error is
// ErrInvalidMode for an unrecognized mode.
func Compute(text string, mode Mode) (Result, error) {
	primary, err := NewCounter(mode)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Mode:    mode,
		Primary: primary.Count(text),
		Digits:  NewDigitCounter().Count(text),
	}

	slog.Debug("Metrics computed", "counter", primary.Name(), "mode", mode, "primary", result.Primary, "digits", result.Digits)
	return result, nil
}

// Summary holds every primary count for a text at once.
type Summary struct {
	Letters   int
	Words     int
	Sentences int
	Digits    int
}

// Analyze computes the counts for all modes in one call.
func Analyze(text string) Summary {
	return Summary{
		Letters:   NewLetterCounter().Count(text),
		Words:     NewWordCounter().Count(text),
		Sentences: NewSentenceCounter().Count(text),
		Digits:    NewDigitCounter().Count(text),
	}
}

// Count returns the primary count for mode.
func (s Summary) Count(mode Mode) (int, error) {
	switch mode {
	case Letters:
		return s.Letters, nil
	case Words:
		return s.Words, nil
	case Sentences:
		return s.Sentences, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}
}

// Result projects the summary onto a single mode.
func (s Summary) Result(mode Mode) (Result, error) {
	primary, err := s.Count(mode)
	if err != nil {
		return Result{}, err
	}
	return Result{Mode: mode, Primary: primary, Digits: s.Digits}, nil
}
