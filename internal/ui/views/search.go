package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/justyntemme/maktabati-t/internal/search"
	"github.com/justyntemme/maktabati-t/internal/ui/styles"
)

// SearchView resolves a typed query to pages, surahs or juz and jumps to
// the chosen one.
type SearchView struct {
	s *Session

	input   textinput.Model
	results []search.Result
	cursor  int

	width  int
	height int
}

// NewSearchView creates the search panel.
func NewSearchView(s *Session) *SearchView {
	input := textinput.New()
	input.Placeholder = "صفحة، سورة أو جزء..."
	input.CharLimit = 50
	input.Width = 40

	return &SearchView{s: s, input: input, width: 80, height: 24}
}

// Init implements View
func (v *SearchView) Init() tea.Cmd {
	v.input.SetValue("")
	v.results = nil
	v.cursor = 0
	return v.input.Focus()
}

// Capturing implements InputView.
func (v *SearchView) Capturing() bool {
	return v.input.Focused()
}

// Update implements View
func (v *SearchView) Update(msg tea.Msg) (View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	switch {
	case key.Matches(keyMsg, Keys.Escape):
		v.input.Blur()
		return v, SwitchTo(ViewReader)
	case key.Matches(keyMsg, Keys.Enter):
		if len(v.results) == 0 {
			return v, nil
		}
		v.input.Blur()
		return v, Navigated(v.s.Controller.Select(v.results[v.cursor]))
	}

	// Letters belong to the query, so only arrows move the selection.
	switch keyMsg.String() {
	case "up", "ctrl+p":
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil
	case "down", "ctrl+n":
		if v.cursor < len(v.results)-1 {
			v.cursor++
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(keyMsg)
	v.query()
	return v, cmd
}

// query re-runs the search for the active book.
func (v *SearchView) query() {
	book, _ := v.s.Store.Current()
	v.results = search.Query(book, v.input.Value())
	if v.cursor >= len(v.results) {
		v.cursor = max(0, len(v.results)-1)
	}
}

// Results returns the current matches.
func (v *SearchView) Results() []search.Result {
	return v.results
}

// View implements View
func (v *SearchView) View() string {
	var b strings.Builder

	book, _ := v.s.Store.Current()
	b.WriteString(styles.TitleBar.Render(" البحث في "+book.Title()+" ") + "\n\n")
	b.WriteString(styles.InputFieldFocused.Render(v.input.View()) + "\n\n")

	switch {
	case strings.TrimSpace(v.input.Value()) == "":
		b.WriteString(styles.MutedText.Render("اكتب رقم صفحة أو اسم سورة أو رقم جزء") + "\n")
	case len(v.results) == 0:
		b.WriteString(styles.MutedText.Render("لا توجد نتائج") + "\n")
	default:
		for i, r := range v.results {
			line := styles.AlignRight(r.Label(), max(v.width-6, 10))
			if i == v.cursor {
				b.WriteString(styles.ListItemSelected.Render(line) + "\n")
			} else {
				b.WriteString(styles.ListItem.Render(line) + "\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpItems(
		"↑/↓", "choose",
		"Enter", "go",
		"Esc", "back",
	))
	return b.String()
}

// SetSize implements View
func (v *SearchView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.input.Width = max(min(width-10, 60), 10)
}
