package reactive

// State describes where an asynchronous computation currently stands.
type State int

const (
	// StatePending indicates the computation has started but not settled.
	// A pending Result may carry a provisional value.
	StatePending State = iota
	// StateResolved indicates the computation settled with a value.
	StateResolved
	// StateFailed indicates the computation settled with an error.
	StateFailed
)

// String returns the lowercase state name for logging.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateResolved:
		return "resolved"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the observable outcome of an asynchronous computation.
//
// Callers must treat the three states as distinct: a pending result is not
// an error, and its Value is provisional: usable for display but subject to
// replacement once the computation settles.
type Result[T any] struct {
	// State is the settlement state of the computation.
	State State

	// Value holds the computed value. It is provisional while State is
	// StatePending and final when StateResolved. It is the zero value when
	// StateFailed.
	Value T

	// Err holds the failure cause when State is StateFailed, nil otherwise.
	Err error
}

// Pending returns a pending result carrying a provisional value.
func Pending[T any](provisional T) Result[T] {
	return Result[T]{State: StatePending, Value: provisional}
}

// Resolved returns a settled successful result.
func Resolved[T any](v T) Result[T] {
	return Result[T]{State: StateResolved, Value: v}
}

// Failed returns a settled failed result.
func Failed[T any](err error) Result[T] {
	return Result[T]{State: StateFailed, Err: err}
}

// IsPending reports whether the computation has not yet settled.
func (r Result[T]) IsPending() bool { return r.State == StatePending }

// IsResolved reports whether the computation settled successfully.
func (r Result[T]) IsResolved() bool { return r.State == StateResolved }

// IsFailed reports whether the computation settled with an error.
func (r Result[T]) IsFailed() bool { return r.State == StateFailed }
