package state

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/justyntemme/maktabati-t/internal/content"
	"github.com/justyntemme/maktabati-t/internal/errors"
	"github.com/justyntemme/maktabati-t/pkg/models"
)

// Encode renders s in the current persisted schema.
func Encode(s State) ([]byte, error) {
	rs := models.ReaderState{
		CurrentBook:   string(s.ActiveBook),
		QuranPage:     s.QuranIndex,
		ThoughtsPage:  s.ThoughtsIndex,
		Bookmarks:     make([]string, 0, len(s.Bookmarks)),
		Notes:         make(map[string]models.Note, len(s.Notes)),
		IsUIVisible:   s.UIVisible,
		Rotation:      s.Rotation,
		IsTwoPageView: s.SpreadMode,
	}
	for _, id := range s.Bookmarks {
		rs.Bookmarks = append(rs.Bookmarks, id.String())
	}
	for id, n := range s.Notes {
		rs.Notes[id.String()] = models.Note{
			PageID:         id.String(),
			Content:        n.Content,
			VerseReference: n.VerseReference,
			CreatedAt:      n.CreatedAt.UnixMilli(),
		}
	}

	raw, err := json.Marshal(rs)
	if err != nil {
		return nil, errors.Internal(err, "encode reader state")
	}
	return json.Marshal(models.Envelope{Version: models.SchemaVersion, State: raw})
}

// Decode parses persisted state of any known schema version. Empty input
// yields ErrNotFound and unparseable input ErrCorrupt, both alongside
// Defaults(). Individual malformed fields fall back to their default.
func Decode(data []byte) (State, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Defaults(), errors.NotFound("no persisted reader state")
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return Defaults(), errors.Corrupt(err, "decode reader state")
	}

	fields := top
	if raw, ok := top["state"]; ok {
		fields = nil
		if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
			return Defaults(), errors.Corrupt(err, "decode reader state envelope")
		}
	}
	return migrate(fields), nil
}

// migrate builds a State field by field. Version 0 documents lack verse
// references and view flags and may carry bare numeric page ids.
func migrate(fields map[string]json.RawMessage) State {
	s := Defaults()

	var book string
	if decodeField(fields, "currentBook", &book) {
		if b := content.Book(book); b.Valid() {
			s.ActiveBook = b
		}
	}

	for key, b := range map[string]content.Book{"quranPage": content.Quran, "thoughtsPage": content.Thoughts} {
		var i int
		if decodeField(fields, key, &i) && i >= 1 && i <= b.Length() {
			s.setIndex(b, i)
		}
	}

	var bookmarks []json.RawMessage
	if decodeField(fields, "bookmarks", &bookmarks) {
		for _, raw := range bookmarks {
			id, ok := decodePageID(raw)
			if ok && !s.IsBookmarked(id) {
				s.Bookmarks = append(s.Bookmarks, id)
			}
		}
	}

	var notes map[string]json.RawMessage
	if decodeField(fields, "notes", &notes) {
		for key, raw := range notes {
			if n, ok := decodeNote(key, raw); ok {
				s.Notes[n.PageID] = n
			}
		}
	}

	var visible bool
	if decodeField(fields, "isUIVisible", &visible) {
		s.UIVisible = visible
	}

	var rotation int
	if decodeField(fields, "rotation", &rotation) && rotation%90 == 0 {
		s.Rotation = ((rotation % 360) + 360) % 360
	}

	var spread bool
	if decodeField(fields, "isTwoPageView", &spread) {
		s.SpreadMode = spread
	}

	return s
}

func decodeField(fields map[string]json.RawMessage, key string, dest any) bool {
	raw, ok := fields[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// decodePageID accepts "quran-file-N", "thoughts-N", "N" and N.
func decodePageID(raw json.RawMessage) (content.PageID, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return content.PageID{}, false
		}
		s = n.String()
	}
	id, err := content.ParsePageID(s)
	return id, err == nil
}

func decodeNote(key string, raw json.RawMessage) (Note, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Note{}, false
	}

	id, ok := content.PageID{}, false
	if rawID, has := fields["pageId"]; has {
		id, ok = decodePageID(rawID)
	}
	if !ok {
		if id, ok = decodePageID(json.RawMessage(strconv.Quote(key))); !ok {
			return Note{}, false
		}
	}

	var n Note
	n.PageID = id
	decodeField(fields, "content", &n.Content)
	if strings.TrimSpace(n.Content) == "" {
		return Note{}, false
	}
	decodeField(fields, "verseReference", &n.VerseReference)

	var created json.Number
	if decodeField(fields, "createdAt", &created) {
		if ms, err := created.Float64(); err == nil {
			n.CreatedAt = time.UnixMilli(int64(ms))
		}
	}
	return n, true
}
