// Package content is the static, read-only index of the two books: page
// metadata per sequential file index, the surah and juz boundary tables, and
// the image reference of every page.
package content

import (
	"fmt"
	"strings"
)

// Book selects one of the two fixed books.
type Book string

const (
	Quran    Book = "quran"
	Thoughts Book = "thoughts"
)

// Books lists every book in display order.
var Books = []Book{Quran, Thoughts}

const (
	// QuranLength is the number of image files in the Quran, intro pages included.
	QuranLength = 607
	// QuranIntroPages precede logical page 1 (cover and front matter).
	QuranIntroPages = 3
	// QuranLogicalPages is the number of numbered Quran pages.
	QuranLogicalPages = QuranLength - QuranIntroPages
	// ThoughtsLength is the number of pages in the Thoughts notebook.
	ThoughtsLength = 108
)

// ParseBook parses a book name. Arabic titles are accepted too.
func ParseBook(s string) (Book, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quran", "q", "القرآن", "القرآن الكريم":
		return Quran, nil
	case "thoughts", "t", "خواطر", "خواطر وحكم":
		return Thoughts, nil
	}
	return "", fmt.Errorf("unknown book %q", s)
}

// Valid reports whether b is one of the known books.
func (b Book) Valid() bool {
	return b == Quran || b == Thoughts
}

// Length returns the highest sequential index of the book, 0 for unknown books.
func (b Book) Length() int {
	switch b {
	case Quran:
		return QuranLength
	case Thoughts:
		return ThoughtsLength
	}
	return 0
}

// IntroPages returns how many leading pages carry no logical number.
func (b Book) IntroPages() int {
	if b == Quran {
		return QuranIntroPages
	}
	return 0
}

// LogicalPages returns the highest logical page number of the book.
func (b Book) LogicalPages() int {
	return b.Length() - b.IntroPages()
}

// FirstContentPage is the sequential index of logical page 1.
func (b Book) FirstContentPage() int {
	return b.IntroPages() + 1
}

// Title returns the Arabic display title.
func (b Book) Title() string {
	switch b {
	case Quran:
		return "القرآن الكريم"
	case Thoughts:
		return "خواطر وحكم"
	}
	return string(b)
}

// Other returns the book that is not b.
func (b Book) Other() Book {
	if b == Quran {
		return Thoughts
	}
	return Quran
}
