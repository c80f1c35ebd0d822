package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/maktabati-t/internal/content"
	"github.com/justyntemme/maktabati-t/internal/navigation"
	"github.com/justyntemme/maktabati-t/internal/search"
)

func TestHome_OpensSelectedBook(t *testing.T) {
	s := newTestSession(t)
	v := NewHomeView(s)
	v.Init()

	assert.Contains(t, v.View(), content.Quran.Title())
	assert.Contains(t, v.View(), content.Thoughts.Title())

	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []any{OpenBookMsg{Book: content.Thoughts}}, toAny(run(cmd)))

	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	_, cmd = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []any{OpenBookMsg{Book: content.Quran}}, toAny(run(cmd)))
}

func TestSearch_SelectNavigates(t *testing.T) {
	s := newTestSession(t)
	v := NewSearchView(s)
	v.Init()
	require.True(t, v.Capturing())

	v.Update(runes("10"))
	results := v.Results()
	require.NotEmpty(t, results)
	assert.Equal(t, search.PageResult{Book: content.Quran, Logical: 10}, results[0])

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []any{NavigatedMsg{}}, toAny(run(cmd)))
	_, i := position(s)
	assert.Equal(t, 13, i)
	assert.False(t, v.Capturing())
}

func TestSearch_NoResults(t *testing.T) {
	s := newTestSession(t)
	v := NewSearchView(s)
	v.Init()

	v.Update(runes("zzz"))
	assert.Empty(t, v.Results())
	assert.Contains(t, v.View(), "لا توجد نتائج")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	_, i := position(s)
	assert.Equal(t, 4, i)
}

func TestSearch_LettersGoToQuery(t *testing.T) {
	s := newTestSession(t)
	v := NewSearchView(s)
	v.Init()

	v.Update(runes("q"))
	assert.Equal(t, "q", v.input.Value())

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, []any{SwitchViewMsg{View: ViewReader}}, toAny(run(cmd)))
}

func TestIndex_CursorStartsOnCurrentJuz(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Controller.JumpTo(navigation.Logical(content.Quran, 50)))

	p, err := s.Index.Resolve(content.Quran, 53)
	require.NoError(t, err)

	v := NewIndexView(s)
	v.SetSize(80, 24)
	v.Init()
	row := v.rows[v.cursor]
	require.Nil(t, row.surah)
	assert.Equal(t, p.Juz, row.juz.Number)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []any{NavigatedMsg{}}, toAny(run(cmd)))

	want, err := s.Index.LogicalToSequential(content.Quran, row.juz.StartPage)
	require.NoError(t, err)
	_, i := position(s)
	assert.Equal(t, want, i)
}

func TestIndex_SurahRowJumpsToSurah(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Controller.SwitchBook(content.Thoughts))

	v := NewIndexView(s)
	v.Init()
	require.Equal(t, 0, v.cursor)

	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	row := v.rows[v.cursor]
	require.NotNil(t, row.surah)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run(cmd)
	want, err := s.Index.LogicalToSequential(content.Quran, row.surah.StartPage)
	require.NoError(t, err)
	book, i := position(s)
	assert.Equal(t, content.Quran, book)
	assert.Equal(t, want, i)
}

func TestBookmarks_ListJumpAndDelete(t *testing.T) {
	s := newTestSession(t)
	quran := content.NewPageID(content.Quran, 100)
	thoughts := content.NewPageID(content.Thoughts, 12)
	for _, id := range []content.PageID{thoughts, quran} {
		_, err := s.Store.ToggleBookmark(id)
		require.NoError(t, err)
	}

	v := NewBookmarksView(s)
	v.Init()
	require.Len(t, v.items, 2)
	assert.Equal(t, quran, v.items[0].page.ID)

	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []any{NavigatedMsg{}}, toAny(run(cmd)))
	book, i := position(s)
	assert.Equal(t, content.Thoughts, book)
	assert.Equal(t, 12, i)

	v.Update(runes("d"))
	assert.False(t, s.Store.IsBookmarked(thoughts))
	require.Len(t, v.items, 1)
	assert.Equal(t, 0, v.cursor)
}

func TestBookmarks_NotesTab(t *testing.T) {
	s := newTestSession(t)
	id := content.NewPageID(content.Quran, 53)
	require.NoError(t, s.Store.SaveNote(id, "تدبر", "2:255"))

	v := NewBookmarksView(s)
	v.Init()
	assert.Empty(t, v.items)
	assert.Contains(t, v.View(), "لا توجد علامات")

	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Len(t, v.items, 1)
	assert.Contains(t, v.items[0].detail, "(2:255) تدبر")
	assert.Contains(t, v.items[0].detail, "now")

	_, cmd := v.Update(runes("e"))
	assert.Equal(t, []any{EditNoteMsg{Page: id}}, toAny(run(cmd)))

	v.Update(runes("d"))
	_, ok := s.Store.Note(id)
	assert.False(t, ok)
	assert.Empty(t, v.items)
}

func TestNote_SaveAndClear(t *testing.T) {
	s := newTestSession(t)
	id := content.NewPageID(content.Quran, 53)

	v := NewNoteView(s)
	v.SetSize(80, 24)
	require.NoError(t, v.Edit(id))
	v.Init()
	require.True(t, v.Capturing())

	v.Update(runes("آية الكرسي"))
	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	v.Update(runes("2:255"))

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.ElementsMatch(t, []any{
		StatusMsg{Text: "تم حفظ الملاحظة"},
		SwitchViewMsg{View: ViewReader},
	}, toAny(run(cmd)))

	n, ok := s.Store.Note(id)
	require.True(t, ok)
	assert.Equal(t, "آية الكرسي", n.Content)
	assert.Equal(t, "2:255", n.VerseReference)

	require.NoError(t, v.Edit(id))
	assert.Equal(t, "آية الكرسي", v.body.Value())
	v.body.SetValue("  ")

	_, cmd = v.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Contains(t, toAny(run(cmd)), any(StatusMsg{Text: "تم حذف الملاحظة"}))
	_, ok = s.Store.Note(id)
	assert.False(t, ok)
}

func TestNote_ThoughtsHasNoVerse(t *testing.T) {
	s := newTestSession(t)
	id := content.NewPageID(content.Thoughts, 12)

	v := NewNoteView(s)
	require.NoError(t, v.Edit(id))
	v.Init()
	v.Update(runes("فكرة"))
	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, v.focus)
	assert.NotContains(t, v.View(), "الآية")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	run(cmd)
	n, ok := s.Store.Note(id)
	require.True(t, ok)
	assert.Empty(t, n.VerseReference)

	assert.Error(t, v.Edit(content.NewPageID(content.Thoughts, 500)))
}
