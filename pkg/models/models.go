// Package models defines the persisted JSON layout of the reader state. The
// layout is versioned and kept separate from the in-memory model.
package models

import "encoding/json"

// StorageKey is the single namespaced entry holding the reader state.
const StorageKey = "heritage-reader-storage"

// SchemaVersion is the version written by this build. Version 0 is the
// browser layout, which had no verse references or view flags.
const SchemaVersion = 1

// Book names as persisted
const (
	BookQuran    = "quran"
	BookThoughts = "thoughts"
)

// Envelope wraps the state with its schema version. It matches the browser
// export shape {"state": {...}, "version": 0}.
type Envelope struct {
	Version int             `json:"version"`
	State   json.RawMessage `json:"state"`
}

// ReaderState is the persisted reader state
type ReaderState struct {
	CurrentBook   string          `json:"currentBook"`
	QuranPage     int             `json:"quranPage"`
	ThoughtsPage  int             `json:"thoughtsPage"`
	Bookmarks     []string        `json:"bookmarks"`
	Notes         map[string]Note `json:"notes"`
	IsUIVisible   bool            `json:"isUIVisible"`
	Rotation      int             `json:"rotation"`
	IsTwoPageView bool            `json:"isTwoPageView"`
}

// Note is a persisted page note. CreatedAt is milliseconds since the epoch.
type Note struct {
	PageID         string `json:"pageId"`
	Content        string `json:"content"`
	VerseReference string `json:"verseReference,omitempty"`
	CreatedAt      int64  `json:"createdAt"`
}
