package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/justyntemme/maktabati-t/internal/content"
	"github.com/justyntemme/maktabati-t/internal/navigation"
	"github.com/justyntemme/maktabati-t/internal/ui/styles"
)

// indexRow is one selectable line of the juz index: a juz heading or one
// of its surahs.
type indexRow struct {
	juz   *content.JuzEntry
	surah *content.SurahEntry
}

func (r indexRow) page() int {
	if r.surah != nil {
		return r.surah.StartPage
	}
	return r.juz.StartPage
}

// IndexView lists the thirty juz of the Quran and the surahs in each.
type IndexView struct {
	s      *Session
	rows   []indexRow
	cursor int
	offset int

	width  int
	height int
}

// NewIndexView creates the juz index panel.
func NewIndexView(s *Session) *IndexView {
	v := &IndexView{s: s, width: 80, height: 24}
	entries := content.JuzIndex()
	for i := range entries {
		j := &entries[i]
		v.rows = append(v.rows, indexRow{juz: j})
		for k := range j.Surahs {
			v.rows = append(v.rows, indexRow{juz: j, surah: &j.Surahs[k]})
		}
	}
	return v
}

// Init implements View. The cursor starts on the juz being read.
func (v *IndexView) Init() tea.Cmd {
	snap := v.s.Store.Snapshot()
	p, err := v.s.Index.Resolve(content.Quran, snap.QuranIndex)
	if err != nil || p.Juz == 0 {
		p.Juz = 1
	}
	for i, r := range v.rows {
		if r.surah == nil && r.juz.Number == p.Juz {
			v.cursor = i
			break
		}
	}
	v.updateOffset()
	return nil
}

// Update implements View
func (v *IndexView) Update(msg tea.Msg) (View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch {
	case key.Matches(keyMsg, Keys.Escape), key.Matches(keyMsg, Keys.Quit):
		return v, SwitchTo(ViewReader)
	case key.Matches(keyMsg, Keys.Up):
		v.moveCursor(-1)
	case key.Matches(keyMsg, Keys.Down):
		v.moveCursor(1)
	case keyMsg.String() == "pgup":
		v.moveCursor(-v.visibleLines())
	case keyMsg.String() == "pgdown":
		v.moveCursor(v.visibleLines())
	case key.Matches(keyMsg, Keys.Enter):
		return v, Navigated(v.s.Controller.JumpTo(navigation.Logical(content.Quran, v.rows[v.cursor].page())))
	}
	return v, nil
}

// View implements View
func (v *IndexView) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleBar.Render(" فهرس الأجزاء ") + "\n\n")

	width := max(v.width-6, 20)
	end := min(v.offset+v.visibleLines(), len(v.rows))
	for i := v.offset; i < end; i++ {
		r := v.rows[i]
		var line string
		if r.surah == nil {
			line = fmt.Sprintf("%s   صفحة %d - %d", r.juz.Name, r.juz.StartPage, r.juz.EndPage)
		} else {
			line = fmt.Sprintf("%s   صفحة %d    ", r.surah.DisplayName(), r.surah.StartPage)
		}
		line = styles.AlignRight(styles.TruncateText(line, width), width)

		switch {
		case i == v.cursor:
			b.WriteString(styles.ListItemSelected.Render(line) + "\n")
		case r.surah == nil:
			b.WriteString(styles.ListItem.Bold(true).Render(line) + "\n")
		default:
			b.WriteString(styles.ListItemDimmed.Render(line) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpItems(
		"↑/↓", "move",
		"Enter", "go",
		"Esc", "back",
	))
	return b.String()
}

// SetSize implements View
func (v *IndexView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.updateOffset()
}

func (v *IndexView) moveCursor(delta int) {
	v.cursor = max(0, min(v.cursor+delta, len(v.rows)-1))
	v.updateOffset()
}

func (v *IndexView) updateOffset() {
	visibleLines := v.visibleLines()
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+visibleLines {
		v.offset = v.cursor - visibleLines + 1
	}
}

func (v *IndexView) visibleLines() int {
	// Account for header, footer, and margins
	return max(v.height-5, 1)
}
