package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/renato0307/newfolder/internal/theme"
)

// NameField is a single-line text input whose whole text can be selected.
// While selected, typing replaces the text, Backspace/Delete clear it and
// cursor keys collapse the selection to the matching end.
type NameField struct {
	input     textinput.Model
	selectAll bool
	width     int
}

// NewNameField creates a field holding value with the whole text selected
func NewNameField(value string, width int) *NameField {
	input := textinput.New()
	input.Prompt = ""
	input.TextStyle = theme.InputTextStyle
	input.SetValue(value)
	input.CursorEnd()

	f := &NameField{
		input:     input,
		selectAll: true,
	}
	f.SetWidth(width)
	return f
}

// Value returns the current text
func (f *NameField) Value() string {
	return f.input.Value()
}

// Selected reports whether the whole text is selected
func (f *NameField) Selected() bool {
	return f.selectAll
}

// SetWidth sets the rendered width in cells
func (f *NameField) SetWidth(width int) {
	if width < 1 {
		width = 1
	}
	f.width = width
	// one cell is reserved for the cursor
	f.input.Width = width - 1
}

// Focus gives the field input focus
func (f *NameField) Focus() tea.Cmd {
	return f.input.Focus()
}

// Blur removes input focus
func (f *NameField) Blur() {
	f.input.Blur()
}

// Focused reports whether the field has input focus
func (f *NameField) Focused() bool {
	return f.input.Focused()
}

// Deselect collapses the selection and moves the cursor to the end
func (f *NameField) Deselect() {
	f.selectAll = false
	f.input.CursorEnd()
}

// Update handles editing keys and cursor blinking
func (f *NameField) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && f.selectAll && f.Focused() {
		switch keyMsg.Type {
		case tea.KeyRunes, tea.KeySpace:
			// Typed text replaces the selection
			f.input.SetValue("")
			f.selectAll = false
		case tea.KeyBackspace, tea.KeyDelete:
			f.input.SetValue("")
			f.selectAll = false
			return nil
		case tea.KeyLeft, tea.KeyHome:
			f.selectAll = false
			f.input.CursorStart()
			return nil
		case tea.KeyRight, tea.KeyEnd:
			f.selectAll = false
			f.input.CursorEnd()
			return nil
		default:
			f.selectAll = false
		}
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// View renders the field padded to its width
func (f *NameField) View() string {
	var content string
	if f.selectAll && f.Focused() && f.input.Value() != "" {
		content = theme.SelectionStyle.Render(runewidth.Truncate(f.input.Value(), f.width, "…"))
	} else {
		content = f.input.View()
	}
	return lipgloss.NewStyle().Width(f.width).MaxWidth(f.width).Render(content)
}
