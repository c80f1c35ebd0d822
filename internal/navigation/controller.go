// Package navigation turns reader intents (page turns, jumps, search
// selections, layout changes) into updates of the reading position.
package navigation

import (
	"log/slog"

	"github.com/justyntemme/maktabati-t/internal/content"
	"github.com/justyntemme/maktabati-t/internal/errors"
	"github.com/justyntemme/maktabati-t/internal/layout"
	"github.com/justyntemme/maktabati-t/internal/search"
	"github.com/justyntemme/maktabati-t/internal/spread"
	"github.com/justyntemme/maktabati-t/internal/state"
)

// Direction of a page turn in reading order.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Target is a jump destination. Logical targets are printed page numbers;
// sequential targets are file indices.
type Target struct {
	Book    content.Book
	Page    int
	Logical bool
}

// Sequential targets file index i of book.
func Sequential(book content.Book, i int) Target {
	return Target{Book: book, Page: i}
}

// Logical targets printed page n of book.
func Logical(book content.Book, n int) Target {
	return Target{Book: book, Page: n, Logical: true}
}

// Controller applies navigation intents to the store.
type Controller struct {
	store    *state.Store
	index    *content.Index
	detector *layout.Detector
	logger   *slog.Logger
}

// NewController wires a controller.
func NewController(store *state.Store, index *content.Index, detector *layout.Detector, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{store: store, index: index, detector: detector, logger: logger}
}

// Paginate turns one page, or two in spread mode. A forward turn in spread
// mode that passes the end lands on the last page; every other turn past
// either end is rejected with ErrOutOfRange and changes nothing.
func (c *Controller) Paginate(dir Direction) error {
	snap := c.store.Snapshot()
	book, cur := snap.ActiveBook, snap.Current()

	step := 1
	if snap.SpreadMode {
		step = 2
	}
	next := cur + int(dir)*step
	n := c.index.Length(book)

	if next > n && snap.SpreadMode && dir == Forward {
		next = n
	}
	if next == cur {
		return errors.OutOfRange("already at the end of %s", book)
	}
	if next < 1 || next > n {
		return errors.OutOfRange("page %d outside %s (1-%d)", next, book, n)
	}
	if err := c.store.SetPage(next); err != nil {
		return err
	}
	c.logger.Debug("paginate", "book", book, "from", cur, "to", next, "direction", dir)
	return nil
}

// Next turns forward.
func (c *Controller) Next() error { return c.Paginate(Forward) }

// Prev turns backward.
func (c *Controller) Prev() error { return c.Paginate(Backward) }

// JumpTo moves straight to t, switching books when needed. Jumps are not
// aligned to spreads.
func (c *Controller) JumpTo(t Target) error {
	i := t.Page
	if t.Logical {
		var err error
		if i, err = c.index.LogicalToSequential(t.Book, t.Page); err != nil {
			return err
		}
	}
	if !c.index.InBounds(t.Book, i) {
		return errors.OutOfRange("page %d outside %s (1-%d)", i, t.Book, c.index.Length(t.Book))
	}

	if book, _ := c.store.Current(); book != t.Book {
		if err := c.SwitchBook(t.Book); err != nil {
			return err
		}
	}
	if err := c.store.SetPage(i); err != nil {
		return err
	}
	c.logger.Debug("jump", "book", t.Book, "page", i, "logical", t.Logical)
	return nil
}

// Select jumps to a search result.
func (c *Controller) Select(r search.Result) error {
	switch r := r.(type) {
	case search.PageResult:
		return c.JumpTo(Logical(r.Book, r.Logical))
	case search.SurahResult:
		return c.JumpTo(Logical(content.Quran, r.Surah.StartPage))
	case search.JuzResult:
		return c.JumpTo(Logical(content.Quran, r.Juz.StartPage))
	default:
		return errors.Validation("unsupported search result %T", r)
	}
}

// SwitchBook activates book and re-evaluates the layout for it.
func (c *Controller) SwitchBook(book content.Book) error {
	if err := c.store.SetActiveBook(book); err != nil {
		return err
	}
	c.store.SetSpreadMode(c.detector.SetBook(book).Spread)
	return nil
}

// ObserveViewport feeds new viewport signals to the layout detector.
func (c *Controller) ObserveViewport(s layout.Signals) layout.Decision {
	book, _ := c.store.Current()
	dec := c.detector.Observe(book, s)
	c.store.SetSpreadMode(dec.Spread)
	return dec
}

// ToggleSpread flips spread mode until the next orientation change.
func (c *Controller) ToggleSpread() layout.Decision {
	dec := c.detector.Toggle()
	c.store.SetSpreadMode(dec.Spread)
	return dec
}

// Layout returns the current layout decision.
func (c *Controller) Layout() layout.Decision {
	return c.detector.Decision()
}

// Spread returns the pages currently on screen.
func (c *Controller) Spread() spread.Spread {
	snap := c.store.Snapshot()
	return spread.Resolve(snap.ActiveBook, snap.Current(), snap.SpreadMode)
}

// Page returns the metadata of the current page.
func (c *Controller) Page() content.PageMetadata {
	book, i := c.store.Current()
	p, err := c.index.Resolve(book, i)
	if err != nil {
		c.logger.Warn("current page unresolved", "book", book, "page", i, "error", err)
	}
	return p
}
