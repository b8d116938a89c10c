// Package tui implements the interactive analyzer: a text area whose counts
// are recomputed on every change, with mode switching and the reverse and
// clear actions bound to keys.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chriscorrea/tally/internal/counter"
	"github.com/chriscorrea/tally/internal/edit"
)

const (
	defaultWidth  = 60
	defaultHeight = 8
	panelWidth    = 26
)

// MaxLines is the most lines the text area keeps; SetValue drops the rest.
const MaxLines = 10000

// ErrTooLong is returned by CheckFits for text the text area would cut.
var ErrTooLong = errors.New("text too long for the interactive analyzer")

// CheckFits returns ErrTooLong when text has more than MaxLines lines.
func CheckFits(text string) error {
	if lines := strings.Count(text, "\n") + 1; lines > MaxLines {
		return fmt.Errorf("%w: %d lines, limit is %d", ErrTooLong, lines, MaxLines)
	}
	return nil
}

// Model is the Bubbletea model for the analyzer.
type Model struct {
	textarea textarea.Model
	mode     counter.Mode
	result   counter.Result
	err      error

	// truncated is set when the initial text did not fit; cleared by ctrl+l
	truncated error
}

// New creates the analyzer pre-filled with text, counting letters.
func New(text string) Model {
	ta := textarea.New()
	ta.Placeholder = "Type or paste text..."
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(defaultWidth)
	ta.SetHeight(defaultHeight)
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = InputStyle
	ta.BlurredStyle.Base = InputStyle
	ta.Focus()
	ta.SetValue(text)

	m := Model{
		textarea:  ta,
		mode:      counter.Letters,
		truncated: CheckFits(text),
	}
	m.recompute()
	return m
}

// Text returns the current text.
func (m Model) Text() string {
	return m.textarea.Value()
}

// Mode returns the selected counting mode.
func (m Model) Mode() counter.Mode {
	return m.mode
}

// Result returns the counts for the current text and mode.
func (m Model) Result() counter.Result {
	return m.result
}

// Truncated returns ErrTooLong when the text passed to New was cut to
// MaxLines, in which case Result covers only the kept lines.
func (m Model) Truncated() error {
	return m.truncated
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		inputWidth := msg.Width - panelWidth - 4
		if inputWidth < 20 {
			inputWidth = 20
		}
		m.textarea.SetWidth(inputWidth)
		if msg.Height > 8 {
			m.textarea.SetHeight(msg.Height - 8)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyTab:
		m.mode = nextMode(m.mode, 1)
		m.recompute()
		return m, nil

	case tea.KeyShiftTab:
		m.mode = nextMode(m.mode, -1)
		m.recompute()
		return m, nil

	case tea.KeyCtrlR:
		m.apply(edit.ReverseText)
		return m, nil

	case tea.KeyCtrlL:
		m.apply(edit.ClearText)
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	m.recompute()
	return m, cmd
}

// apply replaces the text with the action's output and recounts
func (m *Model) apply(action edit.Action) {
	m.textarea.SetValue(action.Apply(m.textarea.Value()))
	if action == edit.ClearText {
		m.truncated = nil
	}
	m.recompute()
}

func (m *Model) recompute() {
	m.result, m.err = counter.Compute(m.textarea.Value(), m.mode)
}

// nextMode steps through counter.Modes, wrapping at either end
func nextMode(current counter.Mode, step int) counter.Mode {
	n := len(counter.Modes)
	for i, mode := range counter.Modes {
		if mode == current {
			return counter.Modes[((i+step)%n+n)%n]
		}
	}
	return counter.Modes[0]
}

// View renders the text area beside the count panel
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Input String:"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.textarea.View(),
		" ",
		m.renderPanel(),
	))
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderPanel shows the mode selector and the counts
func (m Model) renderPanel() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Count By:"))
	b.WriteString("\n")
	for _, mode := range counter.Modes {
		if mode == m.mode {
			b.WriteString(ActiveModeStyle.Render("(•) " + mode.String()))
		} else {
			b.WriteString(ModeStyle.Render("( ) " + mode.String()))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.truncated != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Cut to %d lines.", MaxLines)))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(ErrorStyle.Render(m.err.Error()))
	} else {
		b.WriteString(PrimaryCountStyle.Render(fmt.Sprintf("%s Count: %d", m.mode, m.result.Primary)))
		b.WriteString("\n")
		b.WriteString(DigitCountStyle.Render(fmt.Sprintf("Numbers Count: %d", m.result.Digits)))
	}

	return PanelStyle.Width(panelWidth).Render(b.String())
}

func (m Model) renderHelpBar() string {
	return HelpStyle.Render("tab/shift+tab: mode • ctrl+r: reverse • ctrl+l: clear • esc: quit")
}
