package theme

import "github.com/charmbracelet/lipgloss"

// Window frame
var WindowStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder).
	Padding(0, 1)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Field styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(ColorFocus).
				Bold(true)

	ReadOnlyFieldStyle = lipgloss.NewStyle().
				Foreground(ColorReadOnly)

	InputTextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	SelectionStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Background(ColorSelection)
)

// Button styles
var (
	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorButtonText).
			Background(ColorButton).
			Align(lipgloss.Center)

	FocusedButtonStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Background(ColorFocus).
				Bold(true).
				Align(lipgloss.Center)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)
