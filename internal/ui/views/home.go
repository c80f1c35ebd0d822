package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/justyntemme/maktabati-t/internal/content"
	"github.com/justyntemme/maktabati-t/internal/ui/styles"
)

// HomeView lets the reader pick a book and shows how far each one is read.
type HomeView struct {
	s      *Session
	cursor int

	width  int
	height int
}

// NewHomeView creates the book picker.
func NewHomeView(s *Session) *HomeView {
	return &HomeView{s: s, width: 80, height: 24}
}

// Init implements View. The cursor starts on the active book.
func (v *HomeView) Init() tea.Cmd {
	book, _ := v.s.Store.Current()
	for i, b := range content.Books {
		if b == book {
			v.cursor = i
		}
	}
	return nil
}

// Update implements View
func (v *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch {
	case key.Matches(keyMsg, Keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(keyMsg, Keys.Down), key.Matches(keyMsg, Keys.Tab):
		if v.cursor < len(content.Books)-1 {
			v.cursor++
		} else if key.Matches(keyMsg, Keys.Tab) {
			v.cursor = 0
		}
	case key.Matches(keyMsg, Keys.Enter):
		book := content.Books[v.cursor]
		return v, func() tea.Msg { return OpenBookMsg{Book: book} }
	case key.Matches(keyMsg, Keys.Bookmarks):
		return v, SwitchTo(ViewBookmarks)
	}
	return v, nil
}

// View implements View
func (v *HomeView) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleBar.Render(" مكتبتي ") + "\n\n")

	snap := v.s.Store.Snapshot()
	barWidth := max(min(v.width-30, 40), 10)
	for i, book := range content.Books {
		idx := snap.IndexOf(book)
		page, _ := v.s.Index.Resolve(book, idx)
		progress := v.s.Index.Progress(book, idx)

		bookmarks := 0
		for _, id := range snap.Bookmarks {
			if id.Book == book {
				bookmarks++
			}
		}
		notes := 0
		for id := range snap.Notes {
			if id.Book == book {
				notes++
			}
		}

		title := book.Title()
		if book == snap.ActiveBook {
			title += " •"
		}
		detail := fmt.Sprintf("%s   ★ %d   ✎ %d", page.Label(), bookmarks, notes)
		bar := styles.ReaderProgress.Render(styles.ProgressBar(barWidth, progress)) +
			styles.MutedText.Render(fmt.Sprintf(" %d%%", int(progress*100)))

		entry := lipgloss.JoinVertical(lipgloss.Right, title, styles.MutedText.Render(detail), bar)
		if i == v.cursor {
			b.WriteString(styles.ListItemSelected.Render(entry) + "\n\n")
		} else {
			b.WriteString(styles.ListItem.Render(entry) + "\n\n")
		}
	}

	b.WriteString(styles.HelpItems(
		"↑/↓", "choose",
		"Enter", "read",
		"B", "bookmarks",
		"q", "quit",
	))

	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, b.String())
}

// SetSize implements View
func (v *HomeView) SetSize(width, height int) {
	v.width = width
	v.height = height
}
