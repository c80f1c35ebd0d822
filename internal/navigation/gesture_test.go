package navigation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestDragRecognizer_CommitsOnceOnDistance(t *testing.T) {
	clock := newFakeClock()
	r := NewDragRecognizer(6, 40, clock.now)

	r.Press(20)
	_, ok := r.Move(23)
	assert.False(t, ok, "below threshold")

	dir, ok := r.Move(27)
	assert.True(t, ok)
	assert.Equal(t, Forward, dir)

	_, ok = r.Move(40)
	assert.False(t, ok, "fires once per gesture")
	_, ok = r.Release(40)
	assert.False(t, ok, "release after firing is ignored")
	assert.False(t, r.Active())
}

func TestDragRecognizer_LeftwardIsBackward(t *testing.T) {
	r := NewDragRecognizer(6, 40, newFakeClock().now)

	r.Press(30)
	dir, ok := r.Move(20)
	assert.True(t, ok)
	assert.Equal(t, Backward, dir)
}

func TestDragRecognizer_ReleaseUsesVelocity(t *testing.T) {
	clock := newFakeClock()
	r := NewDragRecognizer(6, 40, clock.now)

	// 3 cells in 50ms is 60 cells/s.
	r.Press(10)
	clock.advance(50 * time.Millisecond)
	dir, ok := r.Release(13)
	assert.True(t, ok)
	assert.Equal(t, Forward, dir)

	// 3 cells in one second is too slow.
	r.Press(10)
	clock.advance(time.Second)
	_, ok = r.Release(13)
	assert.False(t, ok)

	// No horizontal movement is a click.
	r.Press(10)
	_, ok = r.Release(10)
	assert.False(t, ok)
}

func TestDragRecognizer_Abort(t *testing.T) {
	r := NewDragRecognizer(6, 40, newFakeClock().now)

	r.Press(10)
	r.Abort()
	_, ok := r.Move(30)
	assert.False(t, ok)
	_, ok = r.Release(30)
	assert.False(t, ok)
}

func TestSwipeDetector_DirectionFlipsWithSpreadMode(t *testing.T) {
	clock := newFakeClock()
	s := NewSwipeDetector(10, 600*time.Millisecond, clock.now)

	tests := []struct {
		name   string
		dx     float64
		spread bool
		want   Direction
	}{
		{name: "rightward in spread", dx: 15, spread: true, want: Forward},
		{name: "leftward in spread", dx: -15, spread: true, want: Backward},
		{name: "rightward single", dx: 15, spread: false, want: Backward},
		{name: "leftward single", dx: -15, spread: false, want: Forward},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Start(50, 10)
			clock.advance(200 * time.Millisecond)
			dir, ok := s.End(50+tt.dx, 11, tt.spread)
			assert.True(t, ok)
			assert.Equal(t, tt.want, dir)
		})
	}
}

func TestSwipeDetector_Rejects(t *testing.T) {
	clock := newFakeClock()
	s := NewSwipeDetector(10, 600*time.Millisecond, clock.now)

	s.Start(50, 10)
	_, ok := s.End(55, 10, true)
	assert.False(t, ok, "too short")

	s.Start(50, 10)
	clock.advance(time.Second)
	_, ok = s.End(70, 10, true)
	assert.False(t, ok, "too slow")

	s.Start(50, 10)
	_, ok = s.End(62, 30, true)
	assert.False(t, ok, "mostly vertical")

	_, ok = s.End(80, 10, true)
	assert.False(t, ok, "not started")
}

func TestGestures_SecondPointerAborts(t *testing.T) {
	g := NewGestures(DefaultGestureConfig, newFakeClock().now)

	g.Press(10, 5, false)
	g.Press(12, 5, false)
	assert.False(t, g.Active())

	_, ok := g.Move(40, 5)
	assert.False(t, ok)
	_, ok = g.Release(40, 5, false)
	assert.False(t, ok)
}

func TestGestures_Routing(t *testing.T) {
	clock := newFakeClock()
	g := NewGestures(DefaultGestureConfig, clock.now)

	g.Press(10, 5, false)
	dir, ok := g.Move(20, 5)
	assert.True(t, ok)
	assert.Equal(t, Forward, dir)
	_, ok = g.Release(20, 5, false)
	assert.False(t, ok)

	// Touch spread: only the swipe detector decides, on release.
	g.Press(10, 5, true)
	_, ok = g.Move(30, 5)
	assert.False(t, ok)
	clock.advance(100 * time.Millisecond)
	dir, ok = g.Release(30, 5, true)
	assert.True(t, ok)
	assert.Equal(t, Forward, dir)
}
