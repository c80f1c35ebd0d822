package navigation

import (
	"math"
	"time"
)

// GestureConfig holds recognizer thresholds. Distances are in terminal
// cells, velocity in cells per second.
type GestureConfig struct {
	DragDistance     float64
	DragVelocity     float64
	SwipeDistance    float64
	SwipeMaxDuration time.Duration
}

// DefaultGestureConfig is tuned for mouse drags in a typical terminal.
var DefaultGestureConfig = GestureConfig{
	DragDistance:     6,
	DragVelocity:     40,
	SwipeDistance:    10,
	SwipeMaxDuration: 600 * time.Millisecond,
}

// DragRecognizer turns a horizontal drag into at most one page turn. Pages
// run right to left, so dragging rightward brings in the next page.
type DragRecognizer struct {
	distance float64
	velocity float64
	now      func() time.Time

	active  bool
	fired   bool
	startX  float64
	startAt time.Time
}

// NewDragRecognizer creates a recognizer. now defaults to time.Now.
func NewDragRecognizer(distance, velocity float64, now func() time.Time) *DragRecognizer {
	if now == nil {
		now = time.Now
	}
	return &DragRecognizer{distance: distance, velocity: velocity, now: now}
}

// Press starts a drag at x.
func (r *DragRecognizer) Press(x float64) {
	r.active = true
	r.fired = false
	r.startX = x
	r.startAt = r.now()
}

// Active reports whether a drag is in progress.
func (r *DragRecognizer) Active() bool { return r.active }

// Move commits once the drag has travelled the distance threshold.
func (r *DragRecognizer) Move(x float64) (Direction, bool) {
	if !r.active || r.fired {
		return 0, false
	}
	dx := x - r.startX
	if math.Abs(dx) < r.distance {
		return 0, false
	}
	r.fired = true
	return dragDirection(dx), true
}

// Release ends the drag. A short drag still commits if it was fast enough.
func (r *DragRecognizer) Release(x float64) (Direction, bool) {
	if !r.active {
		return 0, false
	}
	r.active = false
	if r.fired {
		return 0, false
	}

	dx := x - r.startX
	if dx == 0 {
		return 0, false
	}
	if math.Abs(dx) >= r.distance {
		return dragDirection(dx), true
	}
	elapsed := r.now().Sub(r.startAt).Seconds()
	if elapsed <= 0 || math.Abs(dx)/elapsed >= r.velocity {
		return dragDirection(dx), true
	}
	return 0, false
}

// Abort cancels the drag without a page turn.
func (r *DragRecognizer) Abort() {
	r.active = false
	r.fired = false
}

func dragDirection(dx float64) Direction {
	if dx > 0 {
		return Forward
	}
	return Backward
}

// SwipeDetector recognises quick horizontal swipes. Its direction depends on
// spread mode: a rightward swipe turns forward in spread mode and backward
// on a single page.
type SwipeDetector struct {
	distance    float64
	maxDuration time.Duration
	now         func() time.Time

	active  bool
	startX  float64
	startY  float64
	startAt time.Time
}

// NewSwipeDetector creates a detector. now defaults to time.Now.
func NewSwipeDetector(distance float64, maxDuration time.Duration, now func() time.Time) *SwipeDetector {
	if now == nil {
		now = time.Now
	}
	return &SwipeDetector{distance: distance, maxDuration: maxDuration, now: now}
}

// Start records the pointer going down.
func (s *SwipeDetector) Start(x, y float64) {
	s.active = true
	s.startX, s.startY = x, y
	s.startAt = s.now()
}

// Active reports whether a swipe is in progress.
func (s *SwipeDetector) Active() bool { return s.active }

// End evaluates the swipe once the pointer is lifted.
func (s *SwipeDetector) End(x, y float64, spreadMode bool) (Direction, bool) {
	if !s.active {
		return 0, false
	}
	s.active = false

	dx, dy := x-s.startX, y-s.startY
	if math.Abs(dx) < s.distance || math.Abs(dy) > math.Abs(dx) {
		return 0, false
	}
	if s.now().Sub(s.startAt) > s.maxDuration {
		return 0, false
	}

	rightward := dx > 0
	if rightward == spreadMode {
		return Forward, true
	}
	return Backward, true
}

// Abort cancels the swipe.
func (s *SwipeDetector) Abort() { s.active = false }

// Gestures routes pointer events to the drag recognizer, or to the swipe
// detector while a touch spread is shown. Each gesture yields at most one
// page turn and a second pointer cancels it.
type Gestures struct {
	drag     *DragRecognizer
	swipe    *SwipeDetector
	useSwipe bool
}

// NewGestures builds both recognizers from cfg.
func NewGestures(cfg GestureConfig, now func() time.Time) *Gestures {
	return &Gestures{
		drag:  NewDragRecognizer(cfg.DragDistance, cfg.DragVelocity, now),
		swipe: NewSwipeDetector(cfg.SwipeDistance, cfg.SwipeMaxDuration, now),
	}
}

// Press starts a gesture. A press while another gesture is in progress is
// a second pointer and aborts both.
func (g *Gestures) Press(x, y float64, touchSpread bool) {
	if g.Active() {
		g.Abort()
		return
	}
	g.useSwipe = touchSpread
	if touchSpread {
		g.swipe.Start(x, y)
		return
	}
	g.drag.Press(x)
}

// Move reports a committed drag. Swipes only commit on release.
func (g *Gestures) Move(x, _ float64) (Direction, bool) {
	if g.useSwipe {
		return 0, false
	}
	return g.drag.Move(x)
}

// Release ends the gesture.
func (g *Gestures) Release(x, y float64, spreadMode bool) (Direction, bool) {
	if g.useSwipe {
		return g.swipe.End(x, y, spreadMode)
	}
	return g.drag.Release(x)
}

// Active reports whether a gesture is in progress.
func (g *Gestures) Active() bool {
	return g.drag.Active() || g.swipe.Active()
}

// Abort cancels any gesture in progress.
func (g *Gestures) Abort() {
	g.drag.Abort()
	g.swipe.Abort()
}
