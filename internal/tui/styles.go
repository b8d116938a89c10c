package tui

import "github.com/charmbracelet/lipgloss"

// Night mode palette
var (
	ColorBg      = lipgloss.Color("#202124")
	ColorSurface = lipgloss.Color("#313235")
	ColorText    = lipgloss.Color("#E8EAED")
	ColorAccent  = lipgloss.Color("#A0C3FF")
	ColorMuted   = lipgloss.Color("#9AA0A6")
	ColorButton  = lipgloss.Color("#40444C")
	ColorError   = lipgloss.Color("#F28B82")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	InputStyle = lipgloss.NewStyle().
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorButton).
			Padding(0, 1)

	ModeStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ActiveModeStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	PrimaryCountStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	DigitCountStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)
