// Package ui is the terminal reader built on bubbletea.
package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/justyntemme/maktabati-t/internal/ui/styles"
	"github.com/justyntemme/maktabati-t/internal/ui/views"
)

// errorTimeout is how long the error bar stays up.
const errorTimeout = 5 * time.Second

// App is the main application model
type App struct {
	session *views.Session

	// Current view state
	currentView views.ViewType
	prevView    views.ViewType

	// Window dimensions
	width  int
	height int

	// View models
	homeView      *views.HomeView
	readerView    *views.ReaderView
	searchView    *views.SearchView
	indexView     *views.IndexView
	bookmarksView *views.BookmarksView
	noteView      *views.NoteView

	// Error/status message
	err       error
	statusMsg string
	showHelp  bool
}

// NewApp creates a new application instance. It opens on the reader at the
// saved position.
func NewApp(s *views.Session) *App {
	app := &App{
		session:       s,
		currentView:   views.ViewReader,
		width:         80,
		height:        24,
		homeView:      views.NewHomeView(s),
		readerView:    views.NewReaderView(s),
		searchView:    views.NewSearchView(s),
		indexView:     views.NewIndexView(s),
		bookmarksView: views.NewBookmarksView(s),
		noteView:      views.NewNoteView(s),
	}
	return app
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.getCurrentView().Init(),
		tea.SetWindowTitle("maktabati"),
	)
}

// CurrentView reports the screen on display.
func (a *App) CurrentView() views.ViewType {
	return a.currentView
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Propagate to all views
		for _, v := range a.allViews() {
			v.SetSize(msg.Width, msg.Height)
		}
		if a.currentView == views.ViewReader {
			return a, a.readerView.Refresh()
		}
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, views.Keys.ForceQuit) {
			return a, a.quit()
		}
		if a.capturing() {
			break
		}
		switch {
		case key.Matches(msg, views.Keys.Help):
			a.showHelp = !a.showHelp
			return a, nil
		case a.showHelp && key.Matches(msg, views.Keys.Escape):
			a.showHelp = false
			return a, nil
		case a.currentView == views.ViewHome && key.Matches(msg, views.Keys.Quit):
			return a, a.quit()
		}
		a.statusMsg = ""

	case views.OpenBookMsg:
		if err := a.session.Controller.SwitchBook(msg.Book); err != nil {
			a.err = err
			return a, nil
		}
		return a.switchView(views.ViewReader)

	case views.PagesLoadedMsg:
		_, cmd := a.readerView.Update(msg)
		return a, cmd

	case views.NavigatedMsg:
		return a.switchView(views.ViewReader)

	case views.EditNoteMsg:
		if err := a.noteView.Edit(msg.Page); err != nil {
			a.err = err
			return a, nil
		}
		return a.switchView(views.ViewNote)

	case views.ErrorMsg:
		a.err = msg.Err
		return a, views.ClearError(errorTimeout)

	case views.ClearErrorMsg:
		a.err = nil
		return a, nil

	case views.StatusMsg:
		a.statusMsg = msg.Text
		return a, nil

	case views.SwitchViewMsg:
		return a.switchView(msg.View)
	}

	// Delegate to current view
	_, cmd := a.getCurrentView().Update(msg)
	return a, cmd
}

// quit flushes the reading position before leaving.
func (a *App) quit() tea.Cmd {
	if err := a.session.Store.Flush(); err != nil {
		a.err = err
	}
	return tea.Quit
}

func (a *App) capturing() bool {
	iv, ok := a.getCurrentView().(views.InputView)
	return ok && iv.Capturing()
}

// View implements tea.Model
func (a *App) View() string {
	if a.showHelp {
		return a.renderHelp()
	}

	content := a.getCurrentView().View()

	switch {
	case a.err != nil:
		errorBar := styles.ErrorStyle.Render("Error: " + a.err.Error())
		content = lipgloss.JoinVertical(lipgloss.Left, content, errorBar)
	case a.statusMsg != "":
		content = lipgloss.JoinVertical(lipgloss.Left, content, styles.SuccessStyle.Render(a.statusMsg))
	}
	return content
}

// switchView changes the current view and initializes it
func (a *App) switchView(view views.ViewType) (*App, tea.Cmd) {
	a.prevView = a.currentView
	a.currentView = view
	a.err = nil
	a.showHelp = false

	return a, a.getCurrentView().Init()
}

// getCurrentView returns the current view model
func (a *App) getCurrentView() views.View {
	switch a.currentView {
	case views.ViewHome:
		return a.homeView
	case views.ViewSearch:
		return a.searchView
	case views.ViewIndex:
		return a.indexView
	case views.ViewBookmarks:
		return a.bookmarksView
	case views.ViewNote:
		return a.noteView
	default:
		return a.readerView
	}
}

func (a *App) allViews() []views.View {
	return []views.View{a.homeView, a.readerView, a.searchView, a.indexView, a.bookmarksView, a.noteView}
}

// renderHelp renders the help overlay from the key map.
func (a *App) renderHelp() string {
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Keyboard Shortcuts") + "\n")
	for _, section := range views.Keys.HelpSections() {
		b.WriteString("\n" + styles.HelpKey.Render(section.Title) + "\n")
		for _, binding := range section.Bindings {
			h := binding.Help()
			b.WriteString("  " + lipgloss.NewStyle().Width(8).Render(h.Key) + h.Desc + "\n")
		}
	}

	help := styles.Dialog.Width(50).Render(b.String())
	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Center,
		lipgloss.Center,
		help,
	)
}
