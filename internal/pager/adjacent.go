package pager

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/seamlist/pageflow/internal/reactive"
)

// AdjacentPages holds the windows to dispatch for backward and forward
// navigation. Each side is independently nil, meaning no affordance: a nil
// side must never be turned into a fetch with a nil cursor.
type AdjacentPages struct {
	// Previous is the backward window reaching the previous page, nil when
	// no previous page exists.
	Previous *Pagination

	// Next is the forward window reaching the next page, nil when no next
	// page exists.
	Next *Pagination
}

// Adjacent computes the previous/next windows for the current window, a page
// size for the produced windows, and optionally resolved metadata (nil while
// a fetch is still in flight).
//
// Availability on each side is the OR of two signals:
//   - optimistic: the current window's own shape. A forward window with a
//     non-nil after cursor implies a previous page; a backward window with a
//     non-nil before cursor implies a next page.
//   - authoritative: the metadata's hasPreviousPage/hasNextPage flags, only
//     once metadata is non-nil.
//
// The OR keeps affordances visible during the in-flight gap instead of
// flickering hidden-then-shown, and converges to the server's answer once
// metadata resolves. Produced windows anchor on the metadata's boundary
// cursors when available; while metadata is pending they fall back to a nil
// cursor, meaning the absolute list boundary.
func Adjacent(current Pagination, size int, meta *PageMetadata) AdjacentPages {
	optimisticPrevious := current.IsForward() && current.Cursor() != nil
	optimisticNext := current.IsBackward() && current.Cursor() != nil

	previousExists := optimisticPrevious
	nextExists := optimisticNext
	var start, end *Cursor
	if meta != nil {
		previousExists = meta.HasPreviousPage || optimisticPrevious
		nextExists = meta.HasNextPage || optimisticNext
		start = meta.StartCursor
		end = meta.EndCursor
	}

	var pages AdjacentPages
	if previousExists {
		w := Backward(size, start)
		pages.Previous = &w
	}
	if nextExists {
		w := Forward(size, end)
		pages.Next = &w
	}
	return pages
}

// Deriver keeps an asynchronously derived AdjacentPages in step with a
// controller, the page-size cell, and a metadata source.
//
// On every dependency change it publishes the optimistic pair immediately,
// fetches metadata for the new current window, and publishes the
// authoritative pair when the fetch settles. Overlapping recomputations
// resolve in dependency order: a fetch superseded by a newer dispatch is
// discarded on completion, whatever order the fetches finish in. A fetch
// failure is published as a failed result, untouched.
type Deriver struct {
	ctx        context.Context
	controller *Controller
	size       *reactive.Cell[int]
	source     MetadataSource
	comp       *reactive.Computation[AdjacentPages]
	log        zerolog.Logger
	cancels    []func()
}

// NewDeriver wires a deriver to its dependencies and starts the initial
// derivation for the controller's current window. Close releases the
// subscriptions when the list instance goes away.
func NewDeriver(ctx context.Context, controller *Controller, size *reactive.Cell[int], source MetadataSource) *Deriver {
	d := &Deriver{
		ctx:        ctx,
		controller: controller,
		size:       size,
		source:     source,
		comp:       reactive.NewComputation[AdjacentPages](),
		log:        zerolog.Nop(),
	}

	d.cancels = append(d.cancels,
		controller.Watch(func(Pagination) { d.Refresh() }),
		size.Watch(func(int) { d.Refresh() }),
	)
	d.Refresh()
	return d
}

// WithLogger sets the logger used for derivation tracing and returns the
// deriver for chaining.
func (d *Deriver) WithLogger(log zerolog.Logger) *Deriver {
	d.log = log
	return d
}

// Adjacent returns the current derivation result. Pending results carry the
// optimistic pair as their provisional value; failed results carry the
// metadata source's error.
func (d *Deriver) Adjacent() reactive.Result[AdjacentPages] {
	return d.comp.Result()
}

// Watch registers fn to be called on every published derivation change and
// returns a cancel function removing the subscription.
func (d *Deriver) Watch(fn func(reactive.Result[AdjacentPages])) func() {
	return d.comp.Watch(fn)
}

// Refresh starts a new derivation against the controller's current window.
// It runs automatically on every dependency change; callers may invoke it
// directly to retry after a failed fetch without moving position.
func (d *Deriver) Refresh() {
	current := d.controller.Current()
	size := d.size.Get()

	d.log.Debug().Stringer("window", current).Int("size", size).Msg("deriving adjacent pages")

	optimistic := Adjacent(current, size, nil)
	d.comp.Run(d.ctx, optimistic, func(ctx context.Context) (AdjacentPages, error) {
		meta, err := d.source(ctx, current)
		if err != nil {
			d.log.Debug().Err(err).Stringer("window", current).Msg("metadata fetch failed")
			return AdjacentPages{}, err
		}
		return Adjacent(current, size, &meta), nil
	})
}

// Close cancels the deriver's subscriptions. The last published result stays
// readable; no further recomputations are triggered.
func (d *Deriver) Close() {
	for _, cancel := range d.cancels {
		cancel()
	}
	d.cancels = nil
}
