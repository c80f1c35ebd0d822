package state

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/justyntemme/maktabati-t/internal/content"
	"github.com/justyntemme/maktabati-t/internal/errors"
	"github.com/justyntemme/maktabati-t/pkg/models"
)

// Store owns the reader state. All methods are safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	state  State
	writer *writer
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to stamp notes.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore loads the persisted state from backend. Missing or corrupt data
// yields the defaults.
func NewStore(ctx context.Context, backend Backend, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.state = Defaults()
	data, err := backend.Load(ctx)
	switch {
	case errors.Is(err, errors.ErrNotFound):
		logger.Debug("no saved reader state, using defaults")
	case err != nil:
		logger.Warn("load reader state, using defaults", "error", err)
	default:
		st, err := Decode(data)
		if err != nil {
			logger.Warn("discarding saved reader state", "error", err)
		}
		s.state = st
	}

	s.writer = newWriter(backend, logger)
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Current returns the active book and its sequential index.
func (s *Store) Current() (content.Book, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ActiveBook, s.state.Current()
}

// SetActiveBook switches books, restoring that book's last page and
// resetting rotation.
func (s *Store) SetActiveBook(book content.Book) error {
	if !book.Valid() {
		return errors.Validation("unknown book %q", book)
	}
	s.update(func(st *State) {
		st.ActiveBook = book
		st.Rotation = 0
	})
	return nil
}

// SetPage moves the active book to sequential index i. Out-of-range indices
// leave the state untouched and return ErrOutOfRange.
func (s *Store) SetPage(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.state.ActiveBook
	if i < 1 || i > book.Length() {
		return errors.OutOfRange("page %d outside %s (1-%d)", i, book, book.Length())
	}
	if s.state.Current() == i {
		return nil
	}
	s.state.setIndex(book, i)
	s.persistLocked()
	return nil
}

// ToggleBookmark adds or removes id and reports whether it is now bookmarked.
func (s *Store) ToggleBookmark(id content.PageID) (bool, error) {
	if !id.Valid() {
		return false, errors.Validation("invalid page %s", id)
	}

	var marked bool
	s.update(func(st *State) {
		if i := slices.Index(st.Bookmarks, id); i >= 0 {
			st.Bookmarks = slices.Delete(st.Bookmarks, i, i+1)
			return
		}
		st.Bookmarks = append(st.Bookmarks, id)
		marked = true
	})
	return marked, nil
}

// SaveNote creates or replaces the note on id. Blank content deletes it.
func (s *Store) SaveNote(id content.PageID, text, verseRef string) error {
	if !id.Valid() {
		return errors.Validation("invalid page %s", id)
	}
	if strings.TrimSpace(text) == "" {
		s.DeleteNote(id)
		return nil
	}

	n := Note{
		PageID:         id,
		Content:        text,
		VerseReference: strings.TrimSpace(verseRef),
		CreatedAt:      s.now(),
	}
	s.update(func(st *State) { st.Notes[id] = n })
	return nil
}

// DeleteNote removes the note on id, if any.
func (s *Store) DeleteNote(id content.PageID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.state.Notes[id]; !ok {
		return
	}
	delete(s.state.Notes, id)
	s.persistLocked()
}

// SetUIVisible shows or hides the reader chrome.
func (s *Store) SetUIVisible(visible bool) {
	s.update(func(st *State) { st.UIVisible = visible })
}

// ToggleUI flips the chrome visibility.
func (s *Store) ToggleUI() {
	s.update(func(st *State) { st.UIVisible = !st.UIVisible })
}

// RotatePage turns the page a quarter clockwise and returns the new angle.
func (s *Store) RotatePage() int {
	var deg int
	s.update(func(st *State) {
		st.Rotation = (st.Rotation + 90) % 360
		deg = st.Rotation
	})
	return deg
}

// SetSpreadMode records whether two pages are shown side by side.
func (s *Store) SetSpreadMode(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.SpreadMode == on {
		return
	}
	s.state.SpreadMode = on
	s.persistLocked()
}

// IsBookmarked reports whether id is bookmarked.
func (s *Store) IsBookmarked(id content.PageID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsBookmarked(id)
}

// Note returns the note on id.
func (s *Store) Note(id content.PageID) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.NoteFor(id)
}

// Export renders the state as an indented, versioned document.
func (s *Store) Export() ([]byte, error) {
	data, err := Encode(s.Snapshot())
	if err != nil {
		return nil, err
	}
	var env models.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.Internal(err, "export reader state")
	}
	return json.MarshalIndent(env, "", "  ")
}

// Import replaces the state with a document of any known schema version.
// Documents that cannot be parsed leave the state untouched.
func (s *Store) Import(data []byte) error {
	st, err := Decode(data)
	if err != nil {
		return err
	}
	s.update(func(cur *State) { *cur = st })
	return nil
}

// Flush writes the pending snapshot synchronously.
func (s *Store) Flush() error {
	return s.writer.flush()
}

// Close stops the background writer after a final flush.
func (s *Store) Close() error {
	return s.writer.close()
}

// Shutdown implements do.ShutdownerWithError.
func (s *Store) Shutdown() error {
	return s.Close()
}

func (s *Store) update(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
	s.persistLocked()
}

func (s *Store) persistLocked() {
	data, err := Encode(s.state)
	if err != nil {
		s.logger.Error("encode reader state", "error", err)
		return
	}
	s.writer.enqueue(data)
}
