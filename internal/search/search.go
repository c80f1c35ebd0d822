// Package search resolves a free-text query to navigation targets. Results
// keep table order; there is no ranking.
package search

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/justyntemme/maktabati-t/internal/content"
)

// MaxSurahResults caps the surah matches of one query.
const MaxSurahResults = 5

var (
	pagePattern = regexp.MustCompile(`^(?:page|صفحة|صفحه|ص)?\s*(\d+)$`)
	juzPattern  = regexp.MustCompile(`^(?:juz|الجزء|جزء)\s*(\d+)$`)
)

// Result is one of PageResult, SurahResult or JuzResult.
type Result interface {
	// Label is the line shown in the result list.
	Label() string
	isResult()
}

// PageResult targets a logical page of the searched book.
type PageResult struct {
	Book    content.Book
	Logical int
}

// SurahResult targets the first page of a surah.
type SurahResult struct {
	Surah content.Surah
}

// JuzResult targets the first page of a juz.
type JuzResult struct {
	Juz content.Juz
}

func (PageResult) isResult()  {}
func (SurahResult) isResult() {}
func (JuzResult) isResult()   {}

func (r PageResult) Label() string {
	return fmt.Sprintf("الذهاب للصفحة %d", r.Logical)
}

func (r SurahResult) Label() string {
	return fmt.Sprintf("سورة %s - صفحة %d", r.Surah.Name, r.Surah.StartPage)
}

func (r JuzResult) Label() string {
	return fmt.Sprintf("%s - صفحة %d", r.Juz.Name, r.Juz.StartPage)
}

// Query searches book for q. Page numbers apply to both books; surah and
// juz matches only to the Quran.
func Query(book content.Book, q string) []Result {
	term := Normalize(q)
	if term == "" {
		return nil
	}

	var results []Result
	if m := pagePattern.FindStringSubmatch(term); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 && n <= book.LogicalPages() {
			results = append(results, PageResult{Book: book, Logical: n})
		}
	}

	if book != content.Quran {
		return results
	}

	surahs := 0
	for _, s := range content.Surahs {
		if surahs == MaxSurahResults {
			break
		}
		if strings.Contains(Normalize(s.Name), term) {
			results = append(results, SurahResult{Surah: s})
			surahs++
		}
	}

	if m := juzPattern.FindStringSubmatch(term); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 && n <= len(content.Juzs) {
			results = append(results, JuzResult{Juz: content.Juzs[n-1]})
		}
	}
	return results
}

var digits = strings.NewReplacer(
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
)

// Normalize folds a query or name for matching: lower case, Arabic-Indic
// digits to ASCII, hamza-carrying alefs to bare alef, ta marbuta to ha,
// diacritics and tatweel removed.
func Normalize(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.Predicate(func(r rune) bool {
			return unicode.Is(unicode.Mn, r) || r == 'ـ'
		})),
		runes.Map(func(r rune) rune {
			switch r {
			case 'ٱ':
				return 'ا'
			case 'ة':
				return 'ه'
			case 'ى':
				return 'ي'
			}
			return unicode.ToLower(r)
		}),
		norm.NFC,
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(digits.Replace(out))
}
