package reactive

import (
	"context"
	"sync"
)

// Computation is an asynchronous derived value.
//
// Each call to Run starts a new generation: the computation immediately
// publishes a pending result carrying the provisional value, then evaluates
// fn on a separate goroutine and publishes the settled result, unless a
// newer Run has started in the meantime, in which case the stale outcome is
// dropped. Completion order between overlapping runs is therefore irrelevant;
// only the latest run ever settles the published result.
//
// Computation performs no cancellation of superseded runs: fn is expected to
// honor its context if the caller wants that, and a superseded run's work is
// simply discarded on completion.
//
// Watchers registered via Watch run while the computation's publish lock is
// held and must not call Run on the same computation.
type Computation[T any] struct {
	mu     sync.Mutex // serializes generation bumps
	gen    uint64
	pubMu  sync.Mutex // serializes publishes, held across the staleness check
	pubGen uint64     // highest generation that has published
	result *Cell[Result[T]]
}

// NewComputation creates a computation whose published result starts as
// pending with the zero provisional value.
func NewComputation[T any]() *Computation[T] {
	var zero T
	return &Computation[T]{
		result: NewCell(Pending(zero)),
	}
}

// Run starts a new generation of the computation.
//
// It synchronously publishes Pending(provisional), so readers between the
// dependency change and settlement observe the provisional value rather than
// a stale settled one. fn then runs on its own goroutine; its value or error
// is published only if no newer generation has published since.
func (c *Computation[T]) Run(ctx context.Context, provisional T, fn func(context.Context) (T, error)) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	c.publish(gen, Pending(provisional))

	go func() {
		v, err := fn(ctx)
		if err != nil {
			c.publish(gen, Failed[T](err))
			return
		}
		c.publish(gen, Resolved(v))
	}()
}

// publish sets the result unless a newer generation has already published.
// A generation may publish more than once (its pending marker, then its
// settled result), so equality passes the check.
func (c *Computation[T]) publish(gen uint64, r Result[T]) {
	c.pubMu.Lock()
	defer c.pubMu.Unlock()
	if gen < c.pubGen {
		return
	}
	c.pubGen = gen
	c.result.Set(r)
}

// Result returns the currently published result.
func (c *Computation[T]) Result() Result[T] {
	return c.result.Get()
}

// Watch registers fn to be called on every published result change and
// returns a cancel function removing the subscription.
func (c *Computation[T]) Watch(fn func(Result[T])) func() {
	return c.result.Watch(fn)
}
