package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chriscorrea/tally/internal/counter"
)

// press sends a key to the model and returns the updated model
func press(t *testing.T, m Model, key tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(key)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want tui.Model", updated)
	}
	return model, cmd
}

func TestNewComputesInitialCounts(t *testing.T) {
	m := New("abc123XYZ")

	if m.Mode() != counter.Letters {
		t.Errorf("New().Mode() = %v, want Letters", m.Mode())
	}
	if got := m.Result(); got.Primary != 6 || got.Digits != 3 {
		t.Errorf("New().Result() = %+v, want Primary 6, Digits 3", got)
	}
}

func TestModeCycling(t *testing.T) {
	m := New("One. Two. Three")

	tests := []struct {
		key             tea.KeyMsg
		expectedMode    counter.Mode
		expectedPrimary int
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, counter.Words, 3},
		{tea.KeyMsg{Type: tea.KeyTab}, counter.Sentences, 2},
		{tea.KeyMsg{Type: tea.KeyTab}, counter.Letters, 11},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, counter.Sentences, 2},
	}

	for _, tt := range tests {
		m, _ = press(t, m, tt.key)
		if m.Mode() != tt.expectedMode {
			t.Fatalf("after %v Mode() = %v, want %v", tt.key, m.Mode(), tt.expectedMode)
		}
		if m.Result().Primary != tt.expectedPrimary {
			t.Errorf("after %v Result().Primary = %d, want %d", tt.key, m.Result().Primary, tt.expectedPrimary)
		}
	}
}

func TestReverseKey(t *testing.T) {
	m := New("Hello world.")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}) // sentences

	if m.Result().Primary != 1 {
		t.Fatalf("Result().Primary = %d, want 1", m.Result().Primary)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.Text() != ".dlrow olleH" {
		t.Errorf("Text() after reverse = %q, want %q", m.Text(), ".dlrow olleH")
	}
	if m.Result().Primary != 0 {
		t.Errorf("Result().Primary after reverse = %d, want 0", m.Result().Primary)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.Text() != "Hello world." {
		t.Errorf("Text() after second reverse = %q, want original", m.Text())
	}
	if m.Result().Primary != 1 {
		t.Errorf("Result().Primary after second reverse = %d, want 1", m.Result().Primary)
	}
}

func TestClearKey(t *testing.T) {
	m := New("Room 101. Floor 3!")

	for _, mode := range counter.Modes {
		for m.Mode() != mode {
			m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		}
		cleared, _ := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
		if cleared.Text() != "" {
			t.Errorf("Text() after clear = %q, want empty", cleared.Text())
		}
		if got := cleared.Result(); got.Primary != 0 || got.Digits != 0 {
			t.Errorf("Result() after clear in %v = %+v, want zero counts", mode, got)
		}
	}
}

func TestTypingRecomputes(t *testing.T) {
	m := New("Hello world")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}) // sentences

	if m.Result().Primary != 0 {
		t.Fatalf("Result().Primary = %d, want 0 for unterminated text", m.Result().Primary)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
	if m.Text() != "Hello world!" {
		t.Fatalf("Text() after typing = %q, want %q", m.Text(), "Hello world!")
	}
	if m.Result().Primary != 1 {
		t.Errorf("Result().Primary after typing terminator = %d, want 1", m.Result().Primary)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := press(t, New("text"), key)
		if cmd == nil {
			t.Fatalf("%v returned nil command, want tea.Quit", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v command did not quit", key)
		}
	}
}

func TestView(t *testing.T) {
	m := New("3.14 is pi")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab}) // words

	view := m.View()
	for _, expected := range []string{"Input String:", "Count By:", "Words Count: 3", "Numbers Count: 3", "ctrl+r: reverse"} {
		if !strings.Contains(view, expected) {
			t.Errorf("View() should contain %q.\nView:\n%s", expected, view)
		}
	}
}

func TestCheckFits(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"empty", "", false},
		{"at limit", strings.Repeat("a\n", MaxLines-1) + "a", false},
		{"trailing newline past limit", strings.Repeat("a\n", MaxLines), true},
		{"well past limit", strings.Repeat("Line one.\n", 12000), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckFits(tt.text)
			if tt.wantErr && !errors.Is(err, ErrTooLong) {
				t.Errorf("CheckFits() error = %v, want ErrTooLong", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("CheckFits() unexpected error: %v", err)
			}
		})
	}
}

func TestNewReportsCutText(t *testing.T) {
	text := strings.Repeat("Line one.\n", 12000)
	m := New(text)

	if !errors.Is(m.Truncated(), ErrTooLong) {
		t.Fatalf("New(%d lines).Truncated() = %v, want ErrTooLong", 12001, m.Truncated())
	}
	if got := strings.Count(m.Text(), "\n") + 1; got != MaxLines {
		t.Errorf("Text() has %d lines, want %d", got, MaxLines)
	}
	if !strings.Contains(m.View(), "Cut to 10000 lines.") {
		t.Errorf("View() should warn that the text was cut.\nView:\n%s", m.View())
	}

	// the warning outlives recounts and goes away once the text is cleared
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Truncated() == nil {
		t.Error("Truncated() cleared by a mode change")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	if m.Truncated() != nil {
		t.Errorf("Truncated() after clear = %v, want nil", m.Truncated())
	}
	if strings.Contains(m.View(), "Cut to") {
		t.Error("View() still warns after clear")
	}
}

func TestNewShortTextNotCut(t *testing.T) {
	m := New(strings.Repeat("Line one.\n", 100))
	if m.Truncated() != nil {
		t.Errorf("Truncated() = %v, want nil", m.Truncated())
	}
	if m.Result().Primary != 700 {
		t.Errorf("Result().Primary = %d, want 700", m.Result().Primary)
	}
}

func TestNextMode(t *testing.T) {
	tests := []struct {
		current  counter.Mode
		step     int
		expected counter.Mode
	}{
		{counter.Letters, 1, counter.Words},
		{counter.Sentences, 1, counter.Letters},
		{counter.Letters, -1, counter.Sentences},
		{counter.Mode(9), 1, counter.Letters},
	}

	for _, tt := range tests {
		if got := nextMode(tt.current, tt.step); got != tt.expected {
			t.Errorf("nextMode(%v, %d) = %v, want %v", tt.current, tt.step, got, tt.expected)
		}
	}
}
