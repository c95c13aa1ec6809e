package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - window title
	ColorSecondary Color = "86" // Cyan - subtitles
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorVersion   Color = "240" // Dark gray
)

// Adaptive colors follow the terminal (or desktop) background
var (
	ColorBorder     = lipgloss.AdaptiveColor{Light: "250", Dark: "238"}
	ColorButton     = lipgloss.AdaptiveColor{Light: "252", Dark: "237"}
	ColorButtonText = lipgloss.AdaptiveColor{Light: "235", Dark: "252"}
	ColorFocus      = lipgloss.AdaptiveColor{Light: "63", Dark: "99"}
	ColorLabel      = lipgloss.AdaptiveColor{Light: "240", Dark: "245"}
	ColorReadOnly   = lipgloss.AdaptiveColor{Light: "244", Dark: "246"}
	ColorSelection  = lipgloss.AdaptiveColor{Light: "153", Dark: "24"}
	ColorText       = lipgloss.AdaptiveColor{Light: "235", Dark: "250"}
)
