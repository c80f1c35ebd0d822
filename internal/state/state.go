// Package state holds the reading position store: the active book, the last
// viewed page per book, bookmarks, notes and view flags. Mutations are
// synchronous; durable writes happen in the background.
package state

import (
	"slices"
	"sort"
	"time"

	"github.com/justyntemme/maktabati-t/internal/content"
)

const (
	// DefaultQuranIndex is the first content page (al-Fatiha).
	DefaultQuranIndex = 4
	// DefaultThoughtsIndex is the first Thoughts page.
	DefaultThoughtsIndex = 1
)

// Note is free text attached to one page.
type Note struct {
	PageID         content.PageID
	Content        string
	VerseReference string
	CreatedAt      time.Time
}

// State is a snapshot of the reader state.
type State struct {
	ActiveBook    content.Book
	QuranIndex    int
	ThoughtsIndex int
	Bookmarks     []content.PageID
	Notes         map[content.PageID]Note
	UIVisible     bool
	Rotation      int
	SpreadMode    bool
}

// Defaults returns the state of a fresh install.
func Defaults() State {
	return State{
		ActiveBook:    content.Quran,
		QuranIndex:    DefaultQuranIndex,
		ThoughtsIndex: DefaultThoughtsIndex,
		Bookmarks:     []content.PageID{},
		Notes:         map[content.PageID]Note{},
		UIVisible:     true,
	}
}

// IndexOf returns the last viewed sequential index of book.
func (s State) IndexOf(book content.Book) int {
	if book == content.Thoughts {
		return s.ThoughtsIndex
	}
	return s.QuranIndex
}

// Current returns the sequential index of the active book.
func (s State) Current() int {
	return s.IndexOf(s.ActiveBook)
}

// CurrentPageID identifies the page being viewed.
func (s State) CurrentPageID() content.PageID {
	return content.NewPageID(s.ActiveBook, s.Current())
}

// IsBookmarked reports whether id is in the bookmark set.
func (s State) IsBookmarked(id content.PageID) bool {
	return slices.Contains(s.Bookmarks, id)
}

// NoteFor returns the note attached to id.
func (s State) NoteFor(id content.PageID) (Note, bool) {
	n, ok := s.Notes[id]
	return n, ok
}

// SortedNotes returns the notes ordered by book then page.
func (s State) SortedNotes() []Note {
	notes := make([]Note, 0, len(s.Notes))
	for _, n := range s.Notes {
		notes = append(notes, n)
	}
	sort.Slice(notes, func(i, j int) bool {
		a, b := notes[i].PageID, notes[j].PageID
		if a.Book != b.Book {
			return a.Book == content.Quran
		}
		return a.Index < b.Index
	})
	return notes
}

// Clone returns a deep copy so callers can't mutate the store's state.
func (s State) Clone() State {
	out := s
	out.Bookmarks = slices.Clone(s.Bookmarks)
	if out.Bookmarks == nil {
		out.Bookmarks = []content.PageID{}
	}
	out.Notes = make(map[content.PageID]Note, len(s.Notes))
	for k, v := range s.Notes {
		out.Notes[k] = v
	}
	return out
}

func (s *State) setIndex(book content.Book, i int) {
	if book == content.Thoughts {
		s.ThoughtsIndex = i
		return
	}
	s.QuranIndex = i
}
