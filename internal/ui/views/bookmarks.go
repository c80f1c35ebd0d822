package views

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/justyntemme/maktabati-t/internal/content"
	"github.com/justyntemme/maktabati-t/internal/navigation"
	"github.com/justyntemme/maktabati-t/internal/ui/styles"
)

type marksTab int

const (
	tabBookmarks marksTab = iota
	tabNotes
)

// markItem is a bookmarked or annotated page.
type markItem struct {
	page   content.PageMetadata
	detail string
}

// BookmarksView lists bookmarks and notes across both books.
type BookmarksView struct {
	s      *Session
	tab    marksTab
	items  []markItem
	cursor int

	width  int
	height int
}

// NewBookmarksView creates the bookmarks and notes panel.
func NewBookmarksView(s *Session) *BookmarksView {
	return &BookmarksView{s: s, width: 80, height: 24}
}

// Init implements View
func (v *BookmarksView) Init() tea.Cmd {
	v.reload()
	return nil
}

func (v *BookmarksView) reload() {
	snap := v.s.Store.Snapshot()
	v.items = v.items[:0]

	switch v.tab {
	case tabBookmarks:
		ids := append([]content.PageID(nil), snap.Bookmarks...)
		sort.Slice(ids, func(i, j int) bool {
			if ids[i].Book != ids[j].Book {
				return ids[i].Book < ids[j].Book
			}
			return ids[i].Index < ids[j].Index
		})
		for _, id := range ids {
			p, err := v.s.Index.Lookup(id)
			if err != nil {
				continue
			}
			item := markItem{page: p}
			if n, ok := snap.NoteFor(id); ok {
				item.detail = n.Content
			}
			v.items = append(v.items, item)
		}
	case tabNotes:
		for _, n := range snap.SortedNotes() {
			p, err := v.s.Index.Lookup(n.PageID)
			if err != nil {
				continue
			}
			detail := n.Content
			if n.VerseReference != "" {
				detail = "(" + n.VerseReference + ") " + detail
			}
			detail += "  " + humanize.RelTime(n.CreatedAt, v.s.now(), "ago", "from now")
			v.items = append(v.items, markItem{page: p, detail: detail})
		}
	}
	v.cursor = max(0, min(v.cursor, len(v.items)-1))
}

// Update implements View
func (v *BookmarksView) Update(msg tea.Msg) (View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch {
	case key.Matches(keyMsg, Keys.Escape), key.Matches(keyMsg, Keys.Quit):
		return v, SwitchTo(ViewReader)
	case key.Matches(keyMsg, Keys.Tab):
		v.tab = 1 - v.tab
		v.cursor = 0
		v.reload()
	case key.Matches(keyMsg, Keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(keyMsg, Keys.Down):
		if v.cursor < len(v.items)-1 {
			v.cursor++
		}
	case key.Matches(keyMsg, Keys.Enter):
		if len(v.items) == 0 {
			return v, nil
		}
		id := v.items[v.cursor].page.ID
		return v, Navigated(v.s.Controller.JumpTo(navigation.Sequential(id.Book, id.Index)))
	case key.Matches(keyMsg, Keys.Delete):
		if len(v.items) == 0 {
			return v, nil
		}
		id := v.items[v.cursor].page.ID
		if v.tab == tabBookmarks {
			if _, err := v.s.Store.ToggleBookmark(id); err != nil {
				return v, SendError(err)
			}
		} else {
			v.s.Store.DeleteNote(id)
		}
		v.reload()
	case keyMsg.String() == "e" && v.tab == tabNotes && len(v.items) > 0:
		id := v.items[v.cursor].page.ID
		return v, func() tea.Msg { return EditNoteMsg{Page: id} }
	}
	return v, nil
}

// View implements View
func (v *BookmarksView) View() string {
	var b strings.Builder

	tabs := []string{"العلامات", "الملاحظات"}
	for i, t := range tabs {
		if marksTab(i) == v.tab {
			tabs[i] = styles.TitleBar.Render(" " + t + " ")
		} else {
			tabs[i] = styles.MutedText.Render(" " + t + " ")
		}
	}
	b.WriteString(styles.AlignRight(tabs[1]+" "+tabs[0], v.width) + "\n\n")

	if len(v.items) == 0 {
		empty := "لا توجد علامات بعد. اضغط b أثناء القراءة لإضافة علامة."
		if v.tab == tabNotes {
			empty = "لا توجد ملاحظات بعد. اضغط a أثناء القراءة لكتابة ملاحظة."
		}
		b.WriteString(styles.MutedText.Render(empty) + "\n")
	}

	width := max(v.width-6, 20)
	for i, item := range v.items {
		line := item.page.NoteLabel()
		if item.detail != "" {
			line += "  " + strings.ReplaceAll(item.detail, "\n", " ")
		}
		line = styles.AlignRight(styles.TruncateText(line, width), width)
		if i == v.cursor {
			b.WriteString(styles.ListItemSelected.Render(line) + "\n")
		} else {
			b.WriteString(styles.ListItem.Render(line) + "\n")
		}
	}

	b.WriteString("\n")
	pairs := []string{"Tab", "bookmarks/notes", "Enter", "go", "d", "delete"}
	if v.tab == tabNotes {
		pairs = append(pairs, "e", "edit")
	}
	pairs = append(pairs, "Esc", "back")
	b.WriteString(styles.HelpItems(pairs...))
	return b.String()
}

// SetSize implements View
func (v *BookmarksView) SetSize(width, height int) {
	v.width = width
	v.height = height
}
