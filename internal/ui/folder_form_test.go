package ui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/newfolder/internal/adapters/filesystem"
	"github.com/renato0307/newfolder/internal/domain"
	"github.com/renato0307/newfolder/internal/services"
)

type createCall struct {
	parent string
	name   string
}

type fakeCreator struct {
	calls []createCall
	err   error
}

func (c *fakeCreator) CreateFolder(parent, name string) error {
	c.calls = append(c.calls, createCall{parent: parent, name: name})
	return c.err
}

func newTestForm(creator FolderCreator) *FolderForm {
	return NewFolderForm(creator, "/tmp/x", "New Folder", NewKeyMap(nil), 60)
}

func keyPress(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func send(f *FolderForm, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = f.Update(msg)
	}
	return cmd
}

func assertQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok, "expected quit command")
}

func TestFolderForm_InitialState(t *testing.T) {
	form := newTestForm(&fakeCreator{})

	assert.False(t, form.Completed)
	assert.Equal(t, focusName, form.focus)
	assert.True(t, form.name.Focused())
	assert.True(t, form.name.Selected())
	assert.Equal(t, "New Folder", form.name.Value())
	assert.Equal(t, domain.OutcomeCancelled, form.Result().Outcome)
}

func TestFolderForm_EnterConfirmsWithSuggestedName(t *testing.T) {
	creator := &fakeCreator{}
	form := newTestForm(creator)

	cmd := send(form, keyPress(tea.KeyEnter))

	assertQuit(t, cmd)
	assert.True(t, form.Completed)
	assert.Equal(t, []createCall{{parent: "/tmp/x", name: "New Folder"}}, creator.calls)
	assert.Equal(t, domain.OutcomeConfirmed, form.Result().Outcome)
	assert.Equal(t, filepath.Join("/tmp/x", "New Folder"), form.Result().Path)
	assert.NoError(t, form.Result().Error)
}

func TestFolderForm_TypingReplacesSelection(t *testing.T) {
	creator := &fakeCreator{}
	form := newTestForm(creator)

	send(form, typeText("R"), typeText("eports"), keyPress(tea.KeyEnter))

	require.Len(t, creator.calls, 1)
	assert.Equal(t, "Reports", creator.calls[0].name)
}

func TestFolderForm_SpaceReplacesSelection(t *testing.T) {
	creator := &fakeCreator{}
	form := newTestForm(creator)

	send(form, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, typeText("x"), keyPress(tea.KeyEnter))

	require.Len(t, creator.calls, 1)
	assert.Equal(t, " x", creator.calls[0].name)
}

func TestFolderForm_RightArrowCollapsesSelectionToEnd(t *testing.T) {
	creator := &fakeCreator{}
	form := newTestForm(creator)

	send(form, keyPress(tea.KeyRight), typeText(" 2024"), keyPress(tea.KeyEnter))

	require.Len(t, creator.calls, 1)
	assert.Equal(t, "New Folder 2024", creator.calls[0].name)
}

func TestFolderForm_LeftArrowCollapsesSelectionToStart(t *testing.T) {
	creator := &fakeCreator{}
	form := newTestForm(creator)

	send(form, keyPress(tea.KeyLeft), typeText("My "), keyPress(tea.KeyEnter))

	require.Len(t, creator.calls, 1)
	assert.Equal(t, "My New Folder", creator.calls[0].name)
}

func TestFolderForm_EmptyNameIsNotValidated(t *testing.T) {
	creator := &fakeCreator{err: errors.New("file exists")}
	form := newTestForm(creator)

	cmd := send(form, keyPress(tea.KeyBackspace), keyPress(tea.KeyEnter))

	assertQuit(t, cmd)
	assert.Equal(t, []createCall{{parent: "/tmp/x", name: ""}}, creator.calls)
	assert.Equal(t, domain.OutcomeFailed, form.Result().Outcome)
}

func TestFolderForm_CreationFailureIsReported(t *testing.T) {
	createErr := errors.New("permission denied")
	form := newTestForm(&fakeCreator{err: createErr})

	cmd := send(form, keyPress(tea.KeyEnter))

	assertQuit(t, cmd)
	result := form.Result()
	assert.Equal(t, domain.OutcomeFailed, result.Outcome)
	assert.ErrorIs(t, result.Error, createErr)
}

func TestFolderForm_CancelNeverCreates(t *testing.T) {
	tests := []struct {
		name string
		msgs []tea.Msg
	}{
		{"escape in name field", []tea.Msg{keyPress(tea.KeyEsc)}},
		{"escape after editing", []tea.Msg{typeText("Other"), keyPress(tea.KeyEsc)}},
		{"ctrl+c closes window", []tea.Msg{keyPress(tea.KeyCtrlC)}},
		{"ctrl+c from a button", []tea.Msg{keyPress(tea.KeyTab), keyPress(tea.KeyCtrlC)}},
		{"enter on cancel button", []tea.Msg{keyPress(tea.KeyTab), keyPress(tea.KeyTab), keyPress(tea.KeyEnter)}},
		{"space on cancel button", []tea.Msg{keyPress(tea.KeyShiftTab), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := &fakeCreator{}
			form := newTestForm(creator)

			cmd := send(form, tt.msgs...)

			assertQuit(t, cmd)
			assert.True(t, form.Completed)
			assert.Empty(t, creator.calls)
			assert.Equal(t, domain.OutcomeCancelled, form.Result().Outcome)
		})
	}
}

func TestFolderForm_FieldBindingsInertOnButtons(t *testing.T) {
	creator := &fakeCreator{}
	form := newTestForm(creator)

	cmd := send(form, keyPress(tea.KeyTab), keyPress(tea.KeyEsc))
	assert.Nil(t, cmd)
	assert.False(t, form.Completed)
	assert.Equal(t, focusOK, form.focus)

	cmd = send(form, typeText("zzz"))
	assert.Nil(t, cmd)
	assert.Equal(t, "New Folder", form.name.Value())

	cmd = send(form, keyPress(tea.KeyEnter))
	assertQuit(t, cmd)
	assert.Equal(t, []createCall{{parent: "/tmp/x", name: "New Folder"}}, creator.calls)
}

func TestFolderForm_FocusCycles(t *testing.T) {
	form := newTestForm(&fakeCreator{})

	send(form, keyPress(tea.KeyTab))
	assert.Equal(t, focusOK, form.focus)
	assert.False(t, form.name.Focused())

	send(form, keyPress(tea.KeyTab))
	assert.Equal(t, focusCancel, form.focus)

	send(form, keyPress(tea.KeyTab))
	assert.Equal(t, focusName, form.focus)
	assert.True(t, form.name.Focused())

	send(form, keyPress(tea.KeyShiftTab))
	assert.Equal(t, focusCancel, form.focus)
}

func TestFolderForm_MouseClicks(t *testing.T) {
	ok, cancel := buttonSpans(60)

	t.Run("click OK confirms", func(t *testing.T) {
		creator := &fakeCreator{}
		form := newTestForm(creator)
		cmd := send(form, leftClick(ok.start, buttonRow))
		assertQuit(t, cmd)
		assert.Len(t, creator.calls, 1)
		assert.Equal(t, domain.OutcomeConfirmed, form.Result().Outcome)
	})

	t.Run("click Cancel cancels", func(t *testing.T) {
		creator := &fakeCreator{}
		form := newTestForm(creator)
		cmd := send(form, leftClick(cancel.end-1, buttonRow))
		assertQuit(t, cmd)
		assert.Empty(t, creator.calls)
		assert.Equal(t, domain.OutcomeCancelled, form.Result().Outcome)
	})

	t.Run("click between buttons does nothing", func(t *testing.T) {
		creator := &fakeCreator{}
		form := newTestForm(creator)
		cmd := send(form, leftClick(ok.end, buttonRow))
		assert.Nil(t, cmd)
		assert.False(t, form.Completed)
	})

	t.Run("click name row focuses field", func(t *testing.T) {
		form := newTestForm(&fakeCreator{})
		send(form, keyPress(tea.KeyTab), leftClick(30, nameRow))
		assert.Equal(t, focusName, form.focus)
		assert.False(t, form.name.Selected())
	})

	t.Run("right click ignored", func(t *testing.T) {
		form := newTestForm(&fakeCreator{})
		send(form, tea.MouseMsg{X: ok.start, Y: buttonRow, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
		assert.False(t, form.Completed)
	})
}

func TestFolderForm_IgnoresInputAfterCompletion(t *testing.T) {
	creator := &fakeCreator{}
	form := newTestForm(creator)

	send(form, keyPress(tea.KeyEsc))
	cmd := send(form, keyPress(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Empty(t, creator.calls)
	assert.Equal(t, "", form.View())
}

func TestFolderForm_View(t *testing.T) {
	form := newTestForm(&fakeCreator{})

	view := form.View()

	assert.Contains(t, view, "New Folder at:")
	assert.Contains(t, view, filepath.FromSlash("/tmp/x"))
	assert.Contains(t, view, "New Folder name:")
	assert.Contains(t, view, "New Folder")
	assert.Contains(t, view, "OK")
	assert.Contains(t, view, "Cancel")
}

func TestFolderForm_WindowSizeShrinksButNeverGrows(t *testing.T) {
	form := newTestForm(&fakeCreator{})

	send(form, tea.WindowSizeMsg{Width: 200, Height: 40})
	assert.Equal(t, 60, form.width)

	send(form, tea.WindowSizeMsg{Width: 45, Height: 40})
	assert.Equal(t, 45, form.width)

	send(form, tea.WindowSizeMsg{Width: 5, Height: 40})
	assert.Equal(t, minFormWidth, form.width)
}

func TestButtonSpans_RightAligned(t *testing.T) {
	ok, cancel := buttonSpans(60)

	assert.Equal(t, 60, cancel.end)
	assert.Equal(t, buttonWidth, ok.end-ok.start)
	assert.Equal(t, buttonWidth, cancel.end-cancel.start)
	assert.Less(t, ok.end, cancel.start, "OK comes before Cancel")
}

func TestTruncateLeft(t *testing.T) {
	assert.Equal(t, "/tmp/x", truncateLeft("/tmp/x", 10))
	assert.Equal(t, "…/c/d", truncateLeft("/a/b/c/d", 5))
	assert.Equal(t, "…", truncateLeft("/a/b", 1))
}

func TestFolderForm_EndToEnd(t *testing.T) {
	t.Run("enter creates suggested folder", func(t *testing.T) {
		parent := t.TempDir()
		service := services.NewFolderService(filesystem.NewOSStore(), "New Folder")
		name, err := service.ResolveName(parent)
		require.NoError(t, err)

		form := NewFolderForm(service, parent, name, NewKeyMap(nil), 60)
		assert.Contains(t, form.View(), "New Folder")
		send(form, keyPress(tea.KeyEnter))

		assert.Equal(t, domain.OutcomeConfirmed, form.Result().Outcome)
		info, err := os.Stat(filepath.Join(parent, "New Folder"))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("collisions prefill next free name", func(t *testing.T) {
		parent := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(parent, "New Folder"), 0o755))
		require.NoError(t, os.Mkdir(filepath.Join(parent, "New Folder (2)"), 0o755))
		service := services.NewFolderService(filesystem.NewOSStore(), "New Folder")
		name, err := service.ResolveName(parent)
		require.NoError(t, err)

		form := NewFolderForm(service, parent, name, NewKeyMap(nil), 60)
		assert.Equal(t, "New Folder (3)", form.name.Value())
	})

	t.Run("cancel leaves target untouched", func(t *testing.T) {
		parent := t.TempDir()
		service := services.NewFolderService(filesystem.NewOSStore(), "New Folder")

		form := NewFolderForm(service, parent, "New Folder", NewKeyMap(nil), 60)
		_, cancel := buttonSpans(60)
		send(form, leftClick(cancel.start, buttonRow))

		entries, err := os.ReadDir(parent)
		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.Equal(t, domain.OutcomeCancelled, form.Result().Outcome)
	})
}
