package content

import (
	"fmt"
	"sort"

	"github.com/justyntemme/maktabati-t/internal/errors"
)

const (
	coverLabel = "غلاف المصحف"
	introLabel = "المقدمة"

	// fallbackJuz is reported for content pages that precede every juz boundary.
	fallbackJuz = 30
)

// PageMetadata describes one page of a book. LogicalPage, Juz and Surah are
// zero for intro pages and for every Thoughts page except LogicalPage.
type PageMetadata struct {
	ID              PageID
	SequentialIndex int
	LogicalPage     int
	Juz             int
	Surah           string
	IsIntro         bool
	ImageRef        string
}

// HasLogicalPage reports whether the page carries a printed page number.
func (p PageMetadata) HasLogicalPage() bool {
	return !p.IsIntro && p.LogicalPage > 0
}

// Label is the short page caption, "المقدمة" for intro pages.
func (p PageMetadata) Label() string {
	if p.IsIntro {
		return introLabel
	}
	return fmt.Sprintf("صفحة %d", p.LogicalPage)
}

// NoteLabel is the caption shown above a note attached to this page.
func (p PageMetadata) NoteLabel() string {
	switch {
	case p.ID.Book == Thoughts:
		return fmt.Sprintf("خواطر وحكم - صفحة %d", p.SequentialIndex)
	case p.IsIntro:
		return "القرآن الكريم - غلاف/مقدمة"
	default:
		return fmt.Sprintf("سورة %s - صفحة %d", p.Surah, p.LogicalPage)
	}
}

// Boundary is the juz and surah covering a logical Quran page.
type Boundary struct {
	Juz   int
	Surah Surah
}

// Index is the immutable content index of both books.
type Index struct {
	pages map[Book][]PageMetadata
}

// NewIndex builds the page tables of both books.
func NewIndex() *Index {
	idx := &Index{pages: make(map[Book][]PageMetadata, len(Books))}
	for _, b := range Books {
		pages := make([]PageMetadata, b.Length())
		for i := range pages {
			pages[i] = idx.build(b, i+1)
		}
		idx.pages[b] = pages
	}
	return idx
}

func (idx *Index) build(book Book, i int) PageMetadata {
	p := PageMetadata{
		ID:              NewPageID(book, i),
		SequentialIndex: i,
		ImageRef:        ImageRef(book, i),
	}
	if book == Thoughts {
		p.LogicalPage = i
		return p
	}

	switch {
	case i == 1:
		p.IsIntro = true
		p.Surah = coverLabel
	case i <= QuranIntroPages:
		p.IsIntro = true
		p.Surah = introLabel
	default:
		p.LogicalPage = i - QuranIntroPages
		if b, ok := BoundaryLookup(p.LogicalPage); ok {
			p.Juz = b.Juz
			p.Surah = b.Surah.Name
		}
	}
	return p
}

// Length returns the number of sequential indices in book.
func (idx *Index) Length(book Book) int {
	return len(idx.pages[book])
}

// Resolve returns the metadata of page i of book.
func (idx *Index) Resolve(book Book, i int) (PageMetadata, error) {
	pages, ok := idx.pages[book]
	if !ok {
		return PageMetadata{}, errors.NotFound("unknown book %q", book)
	}
	if i < 1 || i > len(pages) {
		return PageMetadata{}, errors.NotFound("page %d outside %s (1-%d)", i, book, len(pages))
	}
	return pages[i-1], nil
}

// Lookup resolves a page identifier.
func (idx *Index) Lookup(id PageID) (PageMetadata, error) {
	return idx.Resolve(id.Book, id.Index)
}

// Pages returns every page of book in sequential order.
func (idx *Index) Pages(book Book) []PageMetadata {
	return idx.pages[book]
}

// InBounds reports whether i is a valid sequential index of book.
func (idx *Index) InBounds(book Book, i int) bool {
	return i >= 1 && i <= idx.Length(book)
}

// LogicalToSequential maps a printed page number to its sequential index.
func (idx *Index) LogicalToSequential(book Book, logical int) (int, error) {
	if logical < 1 || logical > book.LogicalPages() {
		return 0, errors.OutOfRange("logical page %d outside %s (1-%d)", logical, book, book.LogicalPages())
	}
	return logical + book.IntroPages(), nil
}

// Progress is the share of book read when sequential index i is open,
// counted in printed pages. Intro pages count as not started.
func (idx *Index) Progress(book Book, i int) float64 {
	if !idx.InBounds(book, i) {
		return 0
	}
	return float64(max(i-book.IntroPages(), 0)) / float64(book.LogicalPages())
}

// SurahStart returns the sequential index of the first page of surah n.
func (idx *Index) SurahStart(n int) (int, error) {
	if n < 1 || n > len(Surahs) {
		return 0, errors.NotFound("surah %d", n)
	}
	return idx.LogicalToSequential(Quran, Surahs[n-1].StartPage)
}

// JuzStart returns the sequential index of the first page of juz n.
func (idx *Index) JuzStart(n int) (int, error) {
	if n < 1 || n > len(Juzs) {
		return 0, errors.NotFound("juz %d", n)
	}
	return idx.LogicalToSequential(Quran, Juzs[n-1].StartPage)
}

// BoundaryLookup finds the juz and surah covering a logical Quran page. The
// latest boundary not after the page wins. ok is false outside 1-604.
func BoundaryLookup(logical int) (Boundary, bool) {
	if logical < 1 || logical > QuranLogicalPages {
		return Boundary{}, false
	}

	b := Boundary{Juz: fallbackJuz}
	if j := sort.Search(len(Juzs), func(k int) bool { return Juzs[k].StartPage > logical }); j > 0 {
		b.Juz = Juzs[j-1].Number
	}
	if s := sort.Search(len(Surahs), func(k int) bool { return Surahs[k].StartPage > logical }); s > 0 {
		b.Surah = Surahs[s-1]
	}
	return b, true
}

// ImageRef returns the relative image path of page i of book.
func ImageRef(book Book, i int) string {
	if book == Thoughts {
		return fmt.Sprintf("images/thoughts/%d.webp", thoughtsFileNumber(i))
	}
	return fmt.Sprintf("images/quran/page-%03d.webp", i)
}

// thoughtsFileNumber skips the missing files 54 and 101.
func thoughtsFileNumber(seq int) int {
	n := seq
	if seq >= 54 {
		n++
	}
	if seq >= 100 {
		n++
	}
	return n
}
