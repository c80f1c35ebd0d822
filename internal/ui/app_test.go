package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/maktabati-t/internal/content"
	"github.com/justyntemme/maktabati-t/internal/errors"
	"github.com/justyntemme/maktabati-t/internal/layout"
	"github.com/justyntemme/maktabati-t/internal/logger"
	"github.com/justyntemme/maktabati-t/internal/navigation"
	"github.com/justyntemme/maktabati-t/internal/state"
	"github.com/justyntemme/maktabati-t/internal/ui/terminal"
	"github.com/justyntemme/maktabati-t/internal/ui/views"
)

func newTestApp(t *testing.T) (*App, *views.Session, *state.BadgerBackend) {
	t.Helper()

	backend, err := state.OpenBadger("", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	log := logger.Discard().Logger
	store := state.NewStore(context.Background(), backend, log)
	t.Cleanup(func() { _ = store.Close() })

	index := content.NewIndex()
	s := &views.Session{
		Controller: navigation.NewController(store, index, layout.NewDetector(layout.DefaultThresholds), log),
		Store:      store,
		Index:      index,
		Term:       terminal.TermModeNone,
		Cell:       terminal.CellSize{Width: 8, Height: 16},
		Pointer:    layout.PointerFine,
		Gestures:   navigation.DefaultGestureConfig,
	}

	app := NewApp(s)
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return app, s, backend
}

// send delivers msg and every message its command chain produces, the way
// the bubbletea runtime would. It must not be used on a path that focuses a
// text field, whose blink command never settles.
func send(a *App, msg tea.Msg) []tea.Msg {
	_, cmd := a.Update(msg)
	var out []tea.Msg
	for _, m := range collect(cmd) {
		out = append(out, m)
		if _, quit := m.(tea.QuitMsg); quit {
			continue
		}
		out = append(out, send(a, m)...)
	}
	return out
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApp_StartsOnReaderAtSavedPosition(t *testing.T) {
	app, s, _ := newTestApp(t)
	send(app, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, views.ViewReader, app.CurrentView())
	book, i := s.Store.Current()
	assert.Equal(t, content.Quran, book)
	assert.Equal(t, 4, i)
	assert.Contains(t, app.View(), "الفاتحة")
}

func TestApp_PageTurnPersists(t *testing.T) {
	app, s, backend := newTestApp(t)
	send(app, tea.WindowSizeMsg{Width: 100, Height: 40})

	send(app, keyPress("left"))
	send(app, keyPress("left"))
	send(app, keyPress("right"))
	_, i := s.Store.Current()
	assert.Equal(t, 5, i)

	require.NoError(t, s.Store.Flush())
	data, err := backend.Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"quranPage":5`)
}

func TestApp_OutOfRangeIsSilent(t *testing.T) {
	app, s, _ := newTestApp(t)
	require.NoError(t, s.Controller.JumpTo(navigation.Sequential(content.Quran, 1)))

	msgs := send(app, keyPress("right"))
	assert.Empty(t, msgs)
	assert.NotContains(t, app.View(), "Error:")
}

func TestApp_HelpToggle(t *testing.T) {
	app, _, _ := newTestApp(t)

	send(app, keyPress("?"))
	assert.Contains(t, app.View(), "Keyboard Shortcuts")

	send(app, keyPress("esc"))
	assert.NotContains(t, app.View(), "Keyboard Shortcuts")
	assert.Equal(t, views.ViewReader, app.CurrentView())
}

func TestApp_HomeOpensBook(t *testing.T) {
	app, s, _ := newTestApp(t)
	require.NoError(t, s.Controller.JumpTo(navigation.Sequential(content.Thoughts, 40)))
	require.NoError(t, s.Controller.SwitchBook(content.Quran))

	send(app, views.SwitchViewMsg{View: views.ViewHome})
	require.Equal(t, views.ViewHome, app.CurrentView())

	send(app, views.OpenBookMsg{Book: content.Thoughts})
	assert.Equal(t, views.ViewReader, app.CurrentView())
	book, i := s.Store.Current()
	assert.Equal(t, content.Thoughts, book)
	assert.Equal(t, 40, i)
}

func TestApp_SearchCapturesKeys(t *testing.T) {
	app, _, _ := newTestApp(t)

	_, cmd := app.Update(keyPress("/"))
	for _, m := range collect(cmd) {
		app.Update(m)
	}
	require.Equal(t, views.ViewSearch, app.CurrentView())

	// q and ? are part of the query while the field has focus.
	app.Update(keyPress("q"))
	assert.Equal(t, views.ViewSearch, app.CurrentView())
	app.Update(keyPress("?"))
	assert.NotContains(t, app.View(), "Keyboard Shortcuts")

	send(app, keyPress("esc"))
	assert.Equal(t, views.ViewReader, app.CurrentView())
}

func TestApp_PagesLoadedReachReaderFromOtherViews(t *testing.T) {
	backend, err := state.OpenBadger("", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	log := logger.Discard().Logger
	store := state.NewStore(context.Background(), backend, log)
	t.Cleanup(func() { _ = store.Close() })
	index := content.NewIndex()
	s := &views.Session{
		Controller: navigation.NewController(store, index, layout.NewDetector(layout.DefaultThresholds), log),
		Store:      store,
		Index:      index,
		Term:       terminal.TermModeNone,
		Cell:       terminal.CellSize{Width: 8, Height: 16},
	}
	app := NewApp(s)

	loaded := collect(app.Init())
	send(app, views.SwitchViewMsg{View: views.ViewHome})
	for _, m := range loaded {
		app.Update(m)
	}

	_, cmd := app.Update(views.SwitchViewMsg{View: views.ViewReader})
	assert.Nil(t, cmd, "pages already loaded")
	assert.NotContains(t, app.View(), "جار التحميل")
}

func TestApp_NoteFlow(t *testing.T) {
	app, s, _ := newTestApp(t)
	id := content.NewPageID(content.Quran, 4)
	require.NoError(t, s.Store.SaveNote(id, "old", ""))

	// The editor's cursor blink is never run.
	app.Update(views.EditNoteMsg{Page: id})
	assert.Equal(t, views.ViewNote, app.CurrentView())
	assert.Contains(t, app.View(), "old")

	send(app, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, views.ViewReader, app.CurrentView())
	assert.Contains(t, app.View(), "تم حفظ الملاحظة")
}

func TestApp_ErrorAndStatusBars(t *testing.T) {
	app, _, _ := newTestApp(t)

	// The clear-after-timeout command is not run.
	_, cmd := app.Update(views.ErrorMsg{Err: errors.Validation("disk full")})
	assert.NotNil(t, cmd)
	assert.Contains(t, app.View(), "Error: disk full")

	send(app, views.ClearErrorMsg{})
	assert.NotContains(t, app.View(), "Error:")

	send(app, views.StatusMsg{Text: "done"})
	assert.Contains(t, app.View(), "done")
	send(app, keyPress("+"))
	assert.NotContains(t, app.View(), "done")
}

func TestApp_QuitFlushes(t *testing.T) {
	app, s, backend := newTestApp(t)
	send(app, keyPress("left"))

	_, cmd := app.Update(keyPress("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	data, err := backend.Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"quranPage":5`)
	_, i := s.Store.Current()
	assert.Equal(t, 5, i)

	send(app, views.SwitchViewMsg{View: views.ViewHome})
	_, cmd = app.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
