package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJuzIndex(t *testing.T) {
	entries := JuzIndex()
	require.Len(t, entries, 30)

	first := entries[0]
	assert.Equal(t, 1, first.StartPage)
	assert.Equal(t, 21, first.EndPage)
	require.Len(t, first.Surahs, 2)
	assert.Equal(t, "الفاتحة", first.Surahs[0].DisplayName())
	assert.False(t, first.Surahs[0].Continued)

	second := entries[1]
	require.NotEmpty(t, second.Surahs)
	assert.True(t, second.Surahs[0].Continued)
	assert.Equal(t, "تابع البقرة", second.Surahs[0].DisplayName())
	assert.Equal(t, 22, second.Surahs[0].StartPage)

	last := entries[29]
	assert.Equal(t, 582, last.StartPage)
	assert.Equal(t, 604, last.EndPage)
	assert.Equal(t, "النبأ", last.Surahs[0].Name)
	assert.False(t, last.Surahs[0].Continued)
	assert.Equal(t, "الناس", last.Surahs[len(last.Surahs)-1].Name)
}

func TestJuzIndex_CoversEverySurahOnce(t *testing.T) {
	starts := make(map[int]int)
	for _, e := range JuzIndex() {
		for _, s := range e.Surahs {
			if !s.Continued {
				starts[s.Number]++
				assert.GreaterOrEqual(t, s.StartPage, e.StartPage)
				assert.LessOrEqual(t, s.StartPage, e.EndPage)
			}
		}
	}
	assert.Len(t, starts, 114)
	for n, c := range starts {
		assert.Equal(t, 1, c, "surah %d", n)
	}
}
