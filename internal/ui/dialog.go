package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/newfolder/internal/theme"
)

// WindowHook runs once when the dialog window starts.
// Hooks adjust platform chrome and may return a command for the program.
type WindowHook func() tea.Cmd

// Dialog wraps any tea.Model content in a framed window with a title header.
// It also owns the window geometry: sizes and mouse coordinates reach the
// content relative to the content's own top-left corner.
//
// Usage:
//
//	form := NewFolderForm(...)
//	dialog := NewDialog("New Folder", form, devMode)
//	tea.NewProgram(dialog).Run()
type Dialog struct {
	content tea.Model
	devMode bool
	hooks   []WindowHook
	title   string
}

// NewDialog creates a new dialog window around content
func NewDialog(title string, content tea.Model, devMode bool, hooks ...WindowHook) *Dialog {
	return &Dialog{
		content: content,
		devMode: devMode,
		hooks:   hooks,
		title:   title,
	}
}

// Init sets the terminal title, runs window hooks and delegates to the content.
func (d *Dialog) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(d.title)}
	for _, hook := range d.hooks {
		if hook == nil {
			continue
		}
		cmds = append(cmds, hook())
	}
	cmds = append(cmds, d.content.Init())
	return tea.Batch(cmds...)
}

// Update translates geometry messages and delegates to the content.
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		msg.Width -= theme.WindowStyle.GetHorizontalFrameSize()
		msg.Height -= theme.WindowStyle.GetVerticalFrameSize() + headerHeight(d.devMode, d.title)
		return d.delegate(msg)
	case tea.MouseMsg:
		msg.X -= theme.WindowStyle.GetBorderLeftSize() + theme.WindowStyle.GetPaddingLeft()
		msg.Y -= theme.WindowStyle.GetBorderTopSize() + theme.WindowStyle.GetPaddingTop() + headerHeight(d.devMode, d.title)
		return d.delegate(msg)
	}
	return d.delegate(msg)
}

func (d *Dialog) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedContent, cmd := d.content.Update(msg)
	d.content = updatedContent
	return d, cmd
}

// View renders the header and content inside the window frame.
// A closed content (empty view) closes the window too.
func (d *Dialog) View() string {
	body := d.content.View()
	if body == "" {
		return ""
	}
	return theme.WindowStyle.Render(renderDialogHeader(d.devMode, d.title) + body)
}

// Content returns the wrapped content for type assertion.
//
// Example:
//
//	if form, ok := dialog.Content().(*FolderForm); ok && form.Completed {
//		result := form.Result()
//	}
func (d *Dialog) Content() tea.Model {
	return d.content
}
