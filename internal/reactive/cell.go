package reactive

import "sync"

// Cell is a single mutable reactive value.
//
// Reads return a snapshot of the current value. A Set applies the new value
// and synchronously invokes every registered watcher before returning, so a
// dependent reading after Set always observes the new value. Watchers run
// outside the internal lock and may call Get (but not Set) on the same cell.
//
// The cell is safe for concurrent reads. Writes are expected to come from a
// single owner (the action dispatcher), matching the single-writer model of
// the pagination layer.
type Cell[T any] struct {
	mu       sync.RWMutex
	value    T
	watchers map[int]func(T)
	nextID   int
}

// NewCell creates a cell holding the given initial value.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{
		value:    initial,
		watchers: make(map[int]func(T)),
	}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set replaces the current value and notifies all watchers synchronously,
// in unspecified order, before returning.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	notify := make([]func(T), 0, len(c.watchers))
	for _, w := range c.watchers {
		notify = append(notify, w)
	}
	c.mu.Unlock()

	for _, w := range notify {
		w(v)
	}
}

// Watch registers fn to be called on every subsequent Set. It returns a
// cancel function that removes the subscription; cancel is idempotent.
func (c *Cell[T]) Watch(fn func(T)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.watchers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.watchers, id)
		c.mu.Unlock()
	}
}
