// Package spread decides which pages occupy the right and left slots of the
// display. It is pure: the result depends only on book, current index and
// whether spread mode is on.
package spread

import (
	"fmt"

	"github.com/justyntemme/maktabati-t/internal/content"
)

// Spread holds the sequential indices shown in each slot. Zero means the
// slot is empty.
type Spread struct {
	Book  content.Book
	Right int
	Left  int
}

// Resolve computes the spread for current.
//
// With spread mode off only the right slot is filled. With it on, index 1
// stands alone in both books and later pages pair as (even, even+1). The
// Quran binds even-right, so the pair reads right=even, left=even+1.
// Thoughts binds the other way: right=even+1, left=even. Any index outside
// the book leaves its slot empty.
func Resolve(book content.Book, current int, spreadMode bool) Spread {
	s := Spread{Book: book}
	n := book.Length()
	if current < 1 || current > n {
		return s
	}
	if !spreadMode {
		s.Right = current
		return s
	}

	even := current
	if current%2 == 1 {
		even = current - 1
	}

	switch book {
	case content.Thoughts:
		if current == 1 {
			s.Right = 1
			return s
		}
		s.Right, s.Left = even+1, even
	default:
		s.Right, s.Left = even, even+1
	}

	if s.Right < 1 || s.Right > n {
		s.Right = 0
	}
	if s.Left < 1 || s.Left > n {
		s.Left = 0
	}
	return s
}

// Pages returns the filled slots in right-to-left reading order.
func (s Spread) Pages() []int {
	pages := make([]int, 0, 2)
	if s.Right != 0 {
		pages = append(pages, s.Right)
	}
	if s.Left != 0 {
		pages = append(pages, s.Left)
	}
	return pages
}

// IsDouble reports whether both slots are filled.
func (s Spread) IsDouble() bool {
	return s.Right != 0 && s.Left != 0
}

// Contains reports whether i is shown.
func (s Spread) Contains(i int) bool {
	return i != 0 && (s.Right == i || s.Left == i)
}

// First returns the lowest shown index, 0 when empty.
func (s Spread) First() int {
	switch {
	case s.Right == 0:
		return s.Left
	case s.Left == 0:
		return s.Right
	default:
		return min(s.Right, s.Left)
	}
}

// Label renders the caption of the spread, "صفحة R - صفحة L" when both
// slots are filled.
func (s Spread) Label(idx *content.Index) string {
	pages := s.Pages()
	if len(pages) == 0 {
		return ""
	}
	labels := make([]string, 0, len(pages))
	for _, i := range pages {
		p, err := idx.Resolve(s.Book, i)
		if err != nil {
			continue
		}
		labels = append(labels, p.Label())
	}
	if len(labels) == 2 {
		if labels[0] == labels[1] {
			return labels[0]
		}
		return fmt.Sprintf("%s - %s", labels[0], labels[1])
	}
	if len(labels) == 1 {
		return labels[0]
	}
	return ""
}
