// Package layout derives the page layout from viewport signals. The
// detector's decision is the only source of the spread-mode flag.
package layout

import (
	"sync"

	"github.com/justyntemme/maktabati-t/internal/content"
)

// Pointer is the primary pointing device.
type Pointer string

const (
	PointerFine   Pointer = "fine"
	PointerCoarse Pointer = "coarse"
)

// Orientation of the viewport.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// Device is the coarse device class inferred from the signals.
type Device int

const (
	Desktop Device = iota
	Tablet
	Phone
	// Compact is a mouse-driven viewport narrower than a desktop.
	Compact
)

func (d Device) String() string {
	switch d {
	case Desktop:
		return "desktop"
	case Tablet:
		return "tablet"
	case Phone:
		return "phone"
	default:
		return "compact"
	}
}

// Mode is how pages are laid out.
type Mode string

const (
	ModeSingle Mode = "single"
	ModeSpread Mode = "spread"
	// ModeFullBleed fills the width with one page and scrolls vertically.
	ModeFullBleed Mode = "fullbleed"
)

// Signals describe the viewport in pixels.
type Signals struct {
	Width   int
	Height  int
	Pointer Pointer
}

// Orientation is landscape when the viewport is wider than tall.
func (s Signals) Orientation() Orientation {
	if s.Width > s.Height {
		return Landscape
	}
	return Portrait
}

// Thresholds separate the device classes.
type Thresholds struct {
	DesktopMinWidth int
	TabletMinHeight int
}

// DefaultThresholds match common desktop and tablet breakpoints.
var DefaultThresholds = Thresholds{DesktopMinWidth: 1024, TabletMinHeight: 600}

// Classify returns the device class of s.
func (t Thresholds) Classify(s Signals) Device {
	if s.Pointer == PointerCoarse {
		short := min(s.Width, s.Height)
		if short >= t.TabletMinHeight {
			return Tablet
		}
		return Phone
	}
	if s.Width >= t.DesktopMinWidth {
		return Desktop
	}
	return Compact
}

// Decision is the detector output.
type Decision struct {
	Mode        Mode
	Spread      bool
	Orientation Orientation
	Device      Device
	// Overridden is set while a user toggle is in effect.
	Overridden bool
}

// Detector recomputes the layout on every viewport change.
type Detector struct {
	mu         sync.Mutex
	thresholds Thresholds
	book       content.Book
	signals    Signals
	observed   bool
	override   *bool
	decision   Decision
}

// NewDetector creates a detector for the given thresholds.
func NewDetector(t Thresholds) *Detector {
	d := &Detector{thresholds: t, book: content.Quran}
	d.decision = Decision{Mode: ModeSingle}
	return d
}

// Observe records new viewport signals. A change of orientation drops any
// user override.
func (d *Detector) Observe(book content.Book, s Signals) Decision {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.observed && s.Orientation() != d.signals.Orientation() {
		d.override = nil
	}
	if book != d.book {
		d.override = nil
	}
	d.book = book
	d.signals = s
	d.observed = true
	d.decision = d.evaluate()
	return d.decision
}

// SetBook re-evaluates for another book under the same signals.
func (d *Detector) SetBook(book content.Book) Decision {
	d.mu.Lock()
	defer d.mu.Unlock()

	if book != d.book {
		d.override = nil
	}
	d.book = book
	d.decision = d.evaluate()
	return d.decision
}

// Toggle flips spread mode until the next orientation change.
func (d *Detector) Toggle() Decision {
	d.mu.Lock()
	defer d.mu.Unlock()

	on := !d.decision.Spread
	d.override = &on
	d.decision = d.evaluate()
	return d.decision
}

// Decision returns the latest decision.
func (d *Detector) Decision() Decision {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.decision
}

func (d *Detector) evaluate() Decision {
	dec := Decision{
		Mode:        ModeSingle,
		Orientation: d.signals.Orientation(),
		Device:      d.thresholds.Classify(d.signals),
	}

	if dec.Orientation == Landscape {
		switch dec.Device {
		case Desktop, Tablet:
			dec.Spread = d.book == content.Quran
		case Phone:
			dec.Mode = ModeFullBleed
		}
	}

	if d.override != nil {
		dec.Spread = *d.override
		dec.Overridden = true
	}
	if dec.Spread {
		dec.Mode = ModeSpread
	}
	return dec
}
