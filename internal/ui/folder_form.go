package ui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/renato0307/newfolder/internal/domain"
	"github.com/renato0307/newfolder/internal/logging"
	"github.com/renato0307/newfolder/internal/theme"
)

const (
	pathLabel = "New Folder at:"
	nameLabel = "New Folder name:"

	// Content rows, relative to the top of the form
	nameRow   = 2
	buttonRow = 4

	minFormWidth = 30
)

// focusTarget identifies the control that receives keyboard input
type focusTarget int

const (
	focusName focusTarget = iota
	focusOK
	focusCancel
	focusCount
)

func (f focusTarget) next() focusTarget {
	return (f + 1) % focusCount
}

func (f focusTarget) prev() focusTarget {
	return (f + focusCount - 1) % focusCount
}

// FolderCreator creates a folder named name under parent
type FolderCreator interface {
	CreateFolder(parent, name string) error
}

// FolderFormResult contains the terminal state of the form
type FolderFormResult struct {
	Error   error
	Name    string // Name submitted on confirm
	Outcome domain.Outcome
	Path    string // Path the form attempted to create
}

// FolderForm is the Bubble Tea component asking for the new folder name.
// It never exits the process: once Completed, Result tells the caller what happened.
type FolderForm struct {
	Completed   bool
	creator     FolderCreator
	displayPath string
	focus       focusTarget
	keys        KeyMap
	maxWidth    int
	name        *NameField
	result      FolderFormResult
	target      string
	width       int
}

// NewFolderForm creates the form for target, pre-filled with suggestedName.
// width is the preferred content width; the form only shrinks below it when
// the terminal is narrower.
func NewFolderForm(creator FolderCreator, target, suggestedName string, keys KeyMap, width int) *FolderForm {
	if width < minFormWidth {
		width = minFormWidth
	}
	f := &FolderForm{
		creator:     creator,
		displayPath: domain.DisplayPath(target),
		focus:       focusName,
		keys:        keys,
		maxWidth:    width,
		result:      FolderFormResult{Outcome: domain.OutcomeCancelled},
		target:      target,
	}
	f.name = NewNameField(suggestedName, 1)
	f.name.Focus()
	f.setWidth(width)
	return f
}

func (f *FolderForm) Init() tea.Cmd {
	return textinput.Blink
}

func (f *FolderForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if f.Completed {
		return f, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := min(f.maxWidth, msg.Width)
		f.setWidth(max(width, minFormWidth))
		return f, nil

	case tea.MouseMsg:
		return f.handleMouse(msg)

	case tea.KeyMsg:
		return f.handleKey(msg)
	}

	return f, f.name.Update(msg)
}

func (f *FolderForm) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, f.keys.ForceQuit):
		return f.cancel()
	case key.Matches(msg, f.keys.FocusNext):
		return f, f.setFocus(f.focus.next())
	case key.Matches(msg, f.keys.FocusPrev):
		return f, f.setFocus(f.focus.prev())
	}

	if f.focus == focusName {
		switch {
		case key.Matches(msg, f.keys.Confirm):
			return f.confirm()
		case key.Matches(msg, f.keys.Cancel):
			return f.cancel()
		}
		return f, f.name.Update(msg)
	}

	// Buttons only react to their own activation keys
	if key.Matches(msg, f.keys.Activate) {
		if f.focus == focusOK {
			return f.confirm()
		}
		return f.cancel()
	}
	return f, nil
}

func (f *FolderForm) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return f, nil
	}

	switch msg.Y {
	case buttonRow:
		ok, cancel := buttonSpans(f.width)
		switch {
		case ok.contains(msg.X):
			return f.confirm()
		case cancel.contains(msg.X):
			return f.cancel()
		}
	case nameRow:
		cmd := f.setFocus(focusName)
		f.name.Deselect()
		return f, cmd
	}
	return f, nil
}

func (f *FolderForm) setFocus(target focusTarget) tea.Cmd {
	f.focus = target
	if target == focusName {
		return f.name.Focus()
	}
	f.name.Blur()
	return nil
}

func (f *FolderForm) setWidth(width int) {
	f.width = width
	f.name.SetWidth(width - f.labelWidth())
}

func (f *FolderForm) labelWidth() int {
	return max(runewidth.StringWidth(pathLabel), runewidth.StringWidth(nameLabel)) + 1
}

// confirm creates the folder and closes the form
func (f *FolderForm) confirm() (tea.Model, tea.Cmd) {
	name := f.name.Value()
	f.result.Name = name
	f.result.Path = filepath.Join(f.target, name)

	if err := f.creator.CreateFolder(f.target, name); err != nil {
		logging.Logger.Error("Folder creation failed", "path", f.result.Path, "error", err)
		f.result.Outcome = domain.OutcomeFailed
		f.result.Error = err
	} else {
		f.result.Outcome = domain.OutcomeConfirmed
	}

	f.Completed = true
	return f, tea.Quit
}

// cancel closes the form without touching the filesystem
func (f *FolderForm) cancel() (tea.Model, tea.Cmd) {
	logging.Logger.Info("New folder dialog cancelled")
	f.result.Outcome = domain.OutcomeCancelled
	f.Completed = true
	return f, tea.Quit
}

func (f *FolderForm) View() string {
	if f.Completed {
		return ""
	}

	labelWidth := f.labelWidth()
	fieldWidth := f.width - labelWidth

	var b strings.Builder
	b.WriteString(f.renderLabel(pathLabel, false))
	b.WriteString(theme.ReadOnlyFieldStyle.Render(truncateLeft(f.displayPath, fieldWidth)))
	b.WriteString("\n\n")
	b.WriteString(f.renderLabel(nameLabel, f.focus == focusName))
	b.WriteString(f.name.View())
	b.WriteString("\n\n")
	b.WriteString(renderButtonRow(f.width, f.focus))
	return b.String()
}

func (f *FolderForm) renderLabel(label string, focused bool) string {
	style := theme.LabelStyle
	if focused {
		style = theme.FocusedLabelStyle
	}
	return style.Width(f.labelWidth()).Render(label)
}

// Result returns the form result
func (f *FolderForm) Result() FolderFormResult {
	return f.result
}

// truncateLeft keeps the end of s, which is the informative part of a path
func truncateLeft(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}

	runes := []rune(s)
	used := 1 // ellipsis
	i := len(runes)
	for i > 0 {
		w := runewidth.RuneWidth(runes[i-1])
		if used+w > width {
			break
		}
		used += w
		i--
	}
	return "…" + string(runes[i:])
}
