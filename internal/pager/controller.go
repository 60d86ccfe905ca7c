package pager

import (
	"github.com/rs/zerolog"

	"github.com/seamlist/pageflow/internal/reactive"
)

// NewSizeCell creates the page-size cell with the default size. The value is
// trusted as given; callers constructing windows are responsible for keeping
// it a positive integer.
func NewSizeCell() *reactive.Cell[int] {
	return reactive.NewCell(DefaultPageSize)
}

// position is the controller's internal state. When set is false the
// controller is at its default position, which collapses on read to a
// forward window sized by the current page-size cell value.
type position struct {
	set    bool
	window Pagination
}

// Controller owns the pagination window a list is currently showing.
//
// It is a single-writer state holder: the window is mutated only through
// Dispatch, every mutation fully applies and notifies watchers before
// Dispatch returns, and reads are always consistent snapshots. A controller
// is created per list instance and initializes at the first page.
type Controller struct {
	size  *reactive.Cell[int]
	state *reactive.Cell[position]
	log   zerolog.Logger
}

// NewController creates a controller reading page sizes from the given cell.
// The controller starts unset, so the first read yields the first page.
func NewController(size *reactive.Cell[int]) *Controller {
	return &Controller{
		size:  size,
		state: reactive.NewCell(position{}),
		log:   zerolog.Nop(),
	}
}

// WithLogger sets the logger used for dispatch tracing and returns the
// controller for chaining.
func (c *Controller) WithLogger(log zerolog.Logger) *Controller {
	c.log = log
	return c
}

// PageSize returns the current page-size cell value.
func (c *Controller) PageSize() int {
	return c.size.Get()
}

// Current returns the window the list is currently showing. An unset
// controller collapses to a forward window from the start of the list,
// sized by the page-size cell at the moment of this read.
func (c *Controller) Current() Pagination {
	return c.resolve(c.state.Get())
}

// Dispatch applies one action. The mutation is synchronous: watchers are
// notified and the new window is readable before Dispatch returns.
func (c *Controller) Dispatch(action Action) {
	switch a := action.(type) {
	case FirstPage:
		c.log.Debug().Str("action", "first-page").Msg("pagination dispatch")
		c.state.Set(position{})
	case LastPage:
		// Size frozen now: the last page needs a concrete window.
		w := Backward(c.size.Get(), nil)
		c.log.Debug().Str("action", "last-page").Stringer("window", w).Msg("pagination dispatch")
		c.state.Set(position{set: true, window: w})
	case Goto:
		c.log.Debug().Str("action", "goto").Stringer("window", a.Window).Msg("pagination dispatch")
		c.state.Set(position{set: true, window: a.Window})
	}
}

// Watch registers fn to be called with the collapsed current window on every
// dispatch. It returns a cancel function removing the subscription.
func (c *Controller) Watch(fn func(Pagination)) func() {
	return c.state.Watch(func(p position) {
		fn(c.resolve(p))
	})
}

func (c *Controller) resolve(p position) Pagination {
	if !p.set {
		return Forward(c.size.Get(), nil)
	}
	return p.window
}
