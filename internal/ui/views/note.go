package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/justyntemme/maktabati-t/internal/content"
	"github.com/justyntemme/maktabati-t/internal/ui/styles"
)

// NoteView edits the note attached to one page. Quran pages also take a
// verse reference.
type NoteView struct {
	s    *Session
	page content.PageMetadata

	body  textarea.Model
	verse textinput.Model
	focus int // 0 body, 1 verse

	width  int
	height int
}

// NewNoteView creates the note editor.
func NewNoteView(s *Session) *NoteView {
	body := textarea.New()
	body.Placeholder = "اكتب ملاحظتك هنا..."
	body.CharLimit = 2000
	body.ShowLineNumbers = false

	verse := textinput.New()
	verse.Placeholder = "رقم الآية (اختياري)"
	verse.CharLimit = 40
	verse.Width = 30

	return &NoteView{s: s, body: body, verse: verse, width: 80, height: 24}
}

// Edit loads the note for id, or an empty one.
func (v *NoteView) Edit(id content.PageID) error {
	p, err := v.s.Index.Lookup(id)
	if err != nil {
		return err
	}
	v.page = p
	v.body.Reset()
	v.verse.SetValue("")
	if n, ok := v.s.Store.Note(id); ok {
		v.body.SetValue(n.Content)
		v.verse.SetValue(n.VerseReference)
	}
	v.focus = 0
	return nil
}

// Init implements View
func (v *NoteView) Init() tea.Cmd {
	v.verse.Blur()
	return v.body.Focus()
}

// Capturing implements InputView.
func (v *NoteView) Capturing() bool {
	return true
}

func (v *NoteView) hasVerse() bool {
	return v.page.ID.Book == content.Quran
}

// Update implements View
func (v *NoteView) Update(msg tea.Msg) (View, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, Keys.Escape):
			return v, SwitchTo(ViewReader)
		case key.Matches(keyMsg, Keys.Save):
			return v, v.save()
		case key.Matches(keyMsg, Keys.Tab) && v.hasVerse():
			return v, v.toggleFocus()
		}
	}

	var cmd tea.Cmd
	if v.focus == 0 {
		v.body, cmd = v.body.Update(msg)
	} else {
		v.verse, cmd = v.verse.Update(msg)
	}
	return v, cmd
}

func (v *NoteView) toggleFocus() tea.Cmd {
	v.focus = 1 - v.focus
	if v.focus == 0 {
		v.verse.Blur()
		return v.body.Focus()
	}
	v.body.Blur()
	return v.verse.Focus()
}

// save stores the note. Blank text deletes it.
func (v *NoteView) save() tea.Cmd {
	verse := ""
	if v.hasVerse() {
		verse = strings.TrimSpace(v.verse.Value())
	}
	if err := v.s.Store.SaveNote(v.page.ID, v.body.Value(), verse); err != nil {
		return SendError(err)
	}
	status := "تم حفظ الملاحظة"
	if strings.TrimSpace(v.body.Value()) == "" {
		status = "تم حذف الملاحظة"
	}
	return tea.Batch(SendStatus(status), SwitchTo(ViewReader))
}

// View implements View
func (v *NoteView) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleBar.Render(" "+v.page.NoteLabel()+" ") + "\n\n")

	bodyStyle := styles.InputField
	if v.focus == 0 {
		bodyStyle = styles.InputFieldFocused
	}
	b.WriteString(bodyStyle.Render(v.body.View()) + "\n")

	if v.hasVerse() {
		verseStyle := styles.InputField
		if v.focus == 1 {
			verseStyle = styles.InputFieldFocused
		}
		b.WriteString(styles.InputLabel.Render("الآية") + "\n")
		b.WriteString(verseStyle.Render(v.verse.View()) + "\n")
	}

	b.WriteString("\n")
	pairs := []string{"^s", "save", "Esc", "cancel"}
	if v.hasVerse() {
		pairs = append(pairs, "Tab", "verse")
	}
	b.WriteString(styles.HelpItems(pairs...))
	return b.String()
}

// SetSize implements View
func (v *NoteView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.body.SetWidth(max(min(width-8, 80), 20))
	v.body.SetHeight(max(min(height-12, 12), 3))
}
