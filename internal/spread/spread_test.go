package spread

import (
	"testing"

	"github.com/justyntemme/maktabati-t/internal/content"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		book    content.Book
		current int
		spread  bool
		right   int
		left    int
	}{
		{name: "single page", book: content.Quran, current: 9, spread: false, right: 9},
		{name: "single page thoughts", book: content.Thoughts, current: 2, spread: false, right: 2},
		{name: "quran first content page", book: content.Quran, current: 4, spread: true, right: 4, left: 5},
		{name: "quran partner resolves same pair", book: content.Quran, current: 5, spread: true, right: 4, left: 5},
		{name: "quran cover alone", book: content.Quran, current: 1, spread: true, left: 1},
		{name: "quran intro pair", book: content.Quran, current: 3, spread: true, right: 2, left: 3},
		{name: "quran last page", book: content.Quran, current: 607, spread: true, right: 606, left: 607},
		{name: "thoughts cover alone", book: content.Thoughts, current: 1, spread: true, right: 1},
		{name: "thoughts pair from even", book: content.Thoughts, current: 2, spread: true, right: 3, left: 2},
		{name: "thoughts pair from odd", book: content.Thoughts, current: 3, spread: true, right: 3, left: 2},
		{name: "thoughts last page alone", book: content.Thoughts, current: 108, spread: true, left: 108},
		{name: "out of range", book: content.Thoughts, current: 109, spread: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.book, tt.current, tt.spread)
			assert.Equal(t, tt.right, got.Right)
			assert.Equal(t, tt.left, got.Left)
		})
	}
}

func TestResolve_EveryPageIsShown(t *testing.T) {
	for _, book := range content.Books {
		for i := 1; i <= book.Length(); i++ {
			s := Resolve(book, i, true)
			assert.True(t, s.Contains(i), "%s %d", book, i)
			for _, p := range s.Pages() {
				assert.Equal(t, s, Resolve(book, p, true), "%s %d and %d share a spread", book, i, p)
			}
		}
	}
}

func TestSpread_Helpers(t *testing.T) {
	s := Resolve(content.Quran, 4, true)
	assert.True(t, s.IsDouble())
	assert.Equal(t, []int{4, 5}, s.Pages())
	assert.Equal(t, 4, s.First())

	cover := Resolve(content.Quran, 1, true)
	assert.False(t, cover.IsDouble())
	assert.Equal(t, 1, cover.First())
}

func TestSpread_Label(t *testing.T) {
	idx := content.NewIndex()

	assert.Equal(t, "صفحة 1 - صفحة 2", Resolve(content.Quran, 4, true).Label(idx))
	assert.Equal(t, "صفحة 9", Resolve(content.Quran, 12, false).Label(idx))
	assert.Equal(t, "المقدمة", Resolve(content.Quran, 2, true).Label(idx))
	assert.Equal(t, "صفحة 3 - صفحة 2", Resolve(content.Thoughts, 2, true).Label(idx))
}
