package content

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	quranIDPrefix    = "quran-file-"
	thoughtsIDPrefix = "thoughts-"
)

// PageID identifies one page: a book plus its 1-based sequential index.
type PageID struct {
	Book  Book
	Index int
}

// NewPageID builds a page identifier.
func NewPageID(book Book, index int) PageID {
	return PageID{Book: book, Index: index}
}

// String renders the persisted form: "quran-file-<i>" or "thoughts-<i>".
func (id PageID) String() string {
	if id.Book == Thoughts {
		return thoughtsIDPrefix + strconv.Itoa(id.Index)
	}
	return quranIDPrefix + strconv.Itoa(id.Index)
}

// Valid reports whether the identifier names an existing page.
func (id PageID) Valid() bool {
	return id.Book.Valid() && id.Index >= 1 && id.Index <= id.Book.Length()
}

// MarshalText implements encoding.TextMarshaler so PageID can key JSON maps.
func (id PageID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *PageID) UnmarshalText(text []byte) error {
	parsed, err := ParsePageID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParsePageID parses a persisted page identifier. Bare integers are legacy
// identifiers and name Quran sequential indices.
func ParsePageID(s string) (PageID, error) {
	s = strings.TrimSpace(s)

	var (
		book Book
		num  string
	)
	switch {
	case strings.HasPrefix(s, quranIDPrefix):
		book, num = Quran, strings.TrimPrefix(s, quranIDPrefix)
	case strings.HasPrefix(s, thoughtsIDPrefix):
		book, num = Thoughts, strings.TrimPrefix(s, thoughtsIDPrefix)
	default:
		book, num = Quran, s
	}

	n, err := strconv.Atoi(num)
	if err != nil {
		return PageID{}, fmt.Errorf("invalid page id %q", s)
	}
	id := PageID{Book: book, Index: n}
	if !id.Valid() {
		return PageID{}, fmt.Errorf("page id %q outside %s bounds", s, book)
	}
	return id, nil
}
