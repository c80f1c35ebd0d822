package navigation_test

import (
	"context"
	"testing"

	"github.com/justyntemme/maktabati-t/internal/content"
	"github.com/justyntemme/maktabati-t/internal/errors"
	"github.com/justyntemme/maktabati-t/internal/layout"
	"github.com/justyntemme/maktabati-t/internal/logger"
	"github.com/justyntemme/maktabati-t/internal/navigation"
	"github.com/justyntemme/maktabati-t/internal/search"
	"github.com/justyntemme/maktabati-t/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	landscape = layout.Signals{Width: 1600, Height: 900, Pointer: layout.PointerFine}
	portrait  = layout.Signals{Width: 900, Height: 1600, Pointer: layout.PointerFine}
)

func setupController(t *testing.T) (*navigation.Controller, *state.Store, *state.BadgerBackend) {
	t.Helper()

	backend, err := state.OpenBadger("", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	log := logger.Discard().Logger
	store := state.NewStore(context.Background(), backend, log)
	t.Cleanup(func() { _ = store.Close() })

	c := navigation.NewController(store, content.NewIndex(), layout.NewDetector(layout.DefaultThresholds), log)
	return c, store, backend
}

func current(s *state.Store) int {
	_, i := s.Current()
	return i
}

func TestController_NextFromFatihaPersists(t *testing.T) {
	c, store, backend := setupController(t)
	c.ObserveViewport(portrait)
	require.Equal(t, 4, current(store))

	require.NoError(t, c.Next())
	assert.Equal(t, 5, current(store))

	require.NoError(t, store.Flush())
	data, err := backend.Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"quranPage":5`)
}

func TestController_RoundTrip(t *testing.T) {
	c, store, _ := setupController(t)

	for _, spreadOn := range []bool{false, true} {
		store.SetSpreadMode(spreadOn)
		for _, start := range []int{3, 4, 100, 603} {
			require.NoError(t, store.SetPage(start))
			require.NoError(t, c.Next())
			require.NoError(t, c.Prev())
			assert.Equal(t, start, current(store), "spread=%v start=%d", spreadOn, start)
		}
	}
}

func TestController_PaginateStep(t *testing.T) {
	c, store, _ := setupController(t)

	store.SetSpreadMode(true)
	require.NoError(t, c.Next())
	assert.Equal(t, 6, current(store))
	assert.Equal(t, 6, c.Spread().Right)
	assert.Equal(t, 7, c.Spread().Left)

	store.SetSpreadMode(false)
	require.NoError(t, c.Prev())
	assert.Equal(t, 5, current(store))
}

func TestController_Boundaries(t *testing.T) {
	c, store, _ := setupController(t)

	require.NoError(t, store.SetPage(1))
	err := c.Prev()
	assert.True(t, errors.Is(err, errors.ErrOutOfRange))
	assert.Equal(t, 1, current(store))

	require.NoError(t, store.SetPage(607))
	err = c.Next()
	assert.True(t, errors.Is(err, errors.ErrOutOfRange))
	assert.Equal(t, 607, current(store))

	store.SetSpreadMode(true)
	require.NoError(t, store.SetPage(2))
	err = c.Prev()
	assert.True(t, errors.Is(err, errors.ErrOutOfRange))
	assert.Equal(t, 2, current(store))
}

func TestController_SpreadForwardClampsToLastPage(t *testing.T) {
	c, store, _ := setupController(t)
	require.NoError(t, c.SwitchBook(content.Thoughts))
	store.SetSpreadMode(true)

	require.NoError(t, store.SetPage(107))
	require.NoError(t, c.Next())
	assert.Equal(t, 108, current(store))

	err := c.Next()
	assert.True(t, errors.Is(err, errors.ErrOutOfRange))
	assert.Equal(t, 108, current(store))
}

func TestController_SwitchBooksResumes(t *testing.T) {
	c, store, _ := setupController(t)

	require.NoError(t, c.JumpTo(navigation.Sequential(content.Quran, 200)))
	require.NoError(t, c.SwitchBook(content.Thoughts))
	require.NoError(t, c.JumpTo(navigation.Sequential(content.Thoughts, 10)))
	require.NoError(t, c.SwitchBook(content.Quran))

	book, i := store.Current()
	assert.Equal(t, content.Quran, book)
	assert.Equal(t, 200, i)
}

func TestController_JumpTo(t *testing.T) {
	c, store, _ := setupController(t)

	require.NoError(t, c.JumpTo(navigation.Logical(content.Quran, 1)))
	assert.Equal(t, 4, current(store))

	require.NoError(t, c.JumpTo(navigation.Logical(content.Quran, 604)))
	assert.Equal(t, 607, current(store))

	// Jumps switch books and are not spread aligned.
	store.SetSpreadMode(true)
	require.NoError(t, c.JumpTo(navigation.Sequential(content.Thoughts, 55)))
	book, i := store.Current()
	assert.Equal(t, content.Thoughts, book)
	assert.Equal(t, 55, i)

	for _, target := range []navigation.Target{
		navigation.Logical(content.Quran, 605),
		navigation.Sequential(content.Thoughts, 109),
		navigation.Sequential(content.Quran, 0),
	} {
		err := c.JumpTo(target)
		assert.True(t, errors.Is(err, errors.ErrOutOfRange), "%+v", target)
	}
	book, i = store.Current()
	assert.Equal(t, content.Thoughts, book)
	assert.Equal(t, 55, i)
}

func TestController_Select(t *testing.T) {
	c, store, _ := setupController(t)

	require.NoError(t, c.Select(search.SurahResult{Surah: content.Surahs[2]}))
	assert.Equal(t, 53, current(store))

	require.NoError(t, c.Select(search.JuzResult{Juz: content.Juzs[29]}))
	assert.Equal(t, 585, current(store))

	require.NoError(t, c.Select(search.PageResult{Book: content.Quran, Logical: 10}))
	assert.Equal(t, 13, current(store))

	require.NoError(t, c.SwitchBook(content.Thoughts))
	results := search.Query(content.Thoughts, "ص 20")
	require.Len(t, results, 1)
	require.NoError(t, c.Select(results[0]))
	assert.Equal(t, 20, current(store))

	assert.True(t, errors.Is(c.Select(nil), errors.ErrValidation))
}

func TestController_LayoutDrivesSpreadMode(t *testing.T) {
	c, store, _ := setupController(t)

	dec := c.ObserveViewport(landscape)
	assert.True(t, dec.Spread)
	assert.True(t, store.Snapshot().SpreadMode)

	require.NoError(t, c.SwitchBook(content.Thoughts))
	assert.False(t, store.Snapshot().SpreadMode)

	require.NoError(t, c.SwitchBook(content.Quran))
	assert.True(t, store.Snapshot().SpreadMode)

	dec = c.ToggleSpread()
	assert.False(t, dec.Spread)
	assert.False(t, store.Snapshot().SpreadMode)

	c.ObserveViewport(portrait)
	assert.False(t, store.Snapshot().SpreadMode)
	c.ObserveViewport(landscape)
	assert.True(t, store.Snapshot().SpreadMode)
	assert.False(t, c.Layout().Overridden)
}

func TestController_Page(t *testing.T) {
	c, _, _ := setupController(t)

	p := c.Page()
	assert.Equal(t, "الفاتحة", p.Surah)
	assert.Equal(t, 1, p.LogicalPage)
}
