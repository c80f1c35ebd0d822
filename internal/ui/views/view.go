package views

import (
	"context"
	"image"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/justyntemme/maktabati-t/internal/content"
	"github.com/justyntemme/maktabati-t/internal/errors"
	"github.com/justyntemme/maktabati-t/internal/layout"
	"github.com/justyntemme/maktabati-t/internal/navigation"
	"github.com/justyntemme/maktabati-t/internal/state"
	"github.com/justyntemme/maktabati-t/internal/ui/terminal"
)

// ViewType represents different screens in the application
type ViewType int

const (
	ViewHome ViewType = iota
	ViewReader
	ViewSearch
	ViewIndex
	ViewBookmarks
	ViewNote
)

// String returns the name of the view
func (v ViewType) String() string {
	switch v {
	case ViewHome:
		return "Home"
	case ViewReader:
		return "Reader"
	case ViewSearch:
		return "Search"
	case ViewIndex:
		return "Juz Index"
	case ViewBookmarks:
		return "Bookmarks"
	case ViewNote:
		return "Note"
	default:
		return "Unknown"
	}
}

// View is the interface that all views must implement
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// InputView is implemented by views that own a text field while it has
// focus, so global keys reach the field instead.
type InputView interface {
	Capturing() bool
}

// Images loads decoded page images by reference.
type Images interface {
	Load(ctx context.Context, ref string) (image.Image, error)
}

// Session is what every view reads from and acts on.
type Session struct {
	Controller *navigation.Controller
	Store      *state.Store
	Index      *content.Index
	Images     Images

	Term     terminal.TermImageMode
	Cell     terminal.CellSize
	Pointer  layout.Pointer
	Gestures navigation.GestureConfig
	Now      func() time.Time
}

func (s *Session) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// Message types for inter-view communication

// OpenBookMsg is sent when a book is selected to read
type OpenBookMsg struct {
	Book content.Book
}

// NavigatedMsg is sent after a panel moved the reading position.
type NavigatedMsg struct{}

// EditNoteMsg opens the note editor for a page.
type EditNoteMsg struct {
	Page content.PageID
}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the current error
type ClearErrorMsg struct{}

// StatusMsg shows a short confirmation in the status line.
type StatusMsg struct {
	Text string
}

// SwitchViewMsg requests a view switch
type SwitchViewMsg struct {
	View ViewType
}

// Helper functions to create messages

// SendError creates an error message command. Out-of-range navigation is a
// silent no-op and yields no command.
func SendError(err error) tea.Cmd {
	if err == nil || errors.Is(err, errors.ErrOutOfRange) {
		return nil
	}
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// ClearError clears the error bar after d.
func ClearError(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}

// SendStatus creates a status message command.
func SendStatus(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Text: text}
	}
}

// SwitchTo creates a command to switch views
func SwitchTo(view ViewType) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{View: view}
	}
}

// Navigated reports a completed jump, or the error that prevented it.
func Navigated(err error) tea.Cmd {
	if err != nil {
		if errors.Is(err, errors.ErrOutOfRange) {
			return nil
		}
		return SendError(err)
	}
	return func() tea.Msg {
		return NavigatedMsg{}
	}
}
