package ui

import (
	"strings"

	"github.com/renato0307/newfolder/internal/theme"
)

const (
	// buttonWidth is the minimum button width in cells
	buttonWidth = 10
	buttonGap   = 2
)

// span is a half-open range of columns [start, end)
type span struct {
	start int
	end   int
}

func (s span) contains(x int) bool {
	return x >= s.start && x < s.end
}

// buttonSpans returns the columns of the OK and Cancel buttons when the
// button row is right-aligned within width
func buttonSpans(width int) (ok span, cancel span) {
	lead := width - (2*buttonWidth + buttonGap)
	if lead < 0 {
		lead = 0
	}
	ok = span{start: lead, end: lead + buttonWidth}
	cancel = span{start: ok.end + buttonGap, end: ok.end + buttonGap + buttonWidth}
	return ok, cancel
}

// renderButtonRow renders the right-aligned OK and Cancel buttons
func renderButtonRow(width int, focus focusTarget) string {
	ok, _ := buttonSpans(width)
	return strings.Repeat(" ", ok.start) +
		renderButton("OK", focus == focusOK) +
		strings.Repeat(" ", buttonGap) +
		renderButton("Cancel", focus == focusCancel)
}

func renderButton(label string, focused bool) string {
	style := theme.ButtonStyle
	if focused {
		style = theme.FocusedButtonStyle
	}
	return style.Width(buttonWidth).Render(label)
}
