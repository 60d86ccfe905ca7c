package reactive

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// settled watches a computation and returns a channel receiving every
// non-pending result it publishes.
func settled[T any](c *Computation[T]) (<-chan Result[T], func()) {
	ch := make(chan Result[T], 8)
	cancel := c.Watch(func(r Result[T]) {
		if !r.IsPending() {
			ch <- r
		}
	})
	return ch, cancel
}

func waitResult[T any](t *testing.T, ch <-chan Result[T]) Result[T] {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for computation to settle")
		return Result[T]{}
	}
}

func TestComputation_InitialResultIsPending(t *testing.T) {
	c := NewComputation[int]()
	r := c.Result()
	assert.True(t, r.IsPending())
	assert.Zero(t, r.Value)
}

func TestComputation_PublishesProvisionalSynchronously(t *testing.T) {
	c := NewComputation[int]()
	block := make(chan struct{})
	defer close(block)

	c.Run(context.Background(), 41, func(context.Context) (int, error) {
		<-block
		return 42, nil
	})

	r := c.Result()
	require.True(t, r.IsPending())
	assert.Equal(t, 41, r.Value)
}

func TestComputation_SettlesWithValue(t *testing.T) {
	c := NewComputation[int]()
	ch, cancel := settled(c)
	defer cancel()

	c.Run(context.Background(), 0, func(context.Context) (int, error) {
		return 42, nil
	})

	r := waitResult(t, ch)
	require.True(t, r.IsResolved())
	assert.Equal(t, 42, r.Value)
}

func TestComputation_SettlesWithError(t *testing.T) {
	c := NewComputation[int]()
	ch, cancel := settled(c)
	defer cancel()

	fetchErr := errors.New("metadata fetch failed")
	c.Run(context.Background(), 0, func(context.Context) (int, error) {
		return 0, fetchErr
	})

	r := waitResult(t, ch)
	require.True(t, r.IsFailed())
	assert.ErrorIs(t, r.Err, fetchErr)
}

func TestComputation_StaleRunIsDiscarded(t *testing.T) {
	c := NewComputation[string]()
	ch, cancel := settled(c)
	defer cancel()

	release := make(chan struct{})

	// First run blocks until released; second run completes immediately.
	c.Run(context.Background(), "", func(context.Context) (string, error) {
		<-release
		return "stale", nil
	})
	c.Run(context.Background(), "", func(context.Context) (string, error) {
		return "fresh", nil
	})

	r := waitResult(t, ch)
	require.True(t, r.IsResolved())
	assert.Equal(t, "fresh", r.Value)

	// Releasing the first run must not overwrite the fresher result.
	close(release)
	time.Sleep(50 * time.Millisecond)
	r = c.Result()
	require.True(t, r.IsResolved())
	assert.Equal(t, "fresh", r.Value)
}

func TestComputation_StaleErrorIsDiscarded(t *testing.T) {
	c := NewComputation[string]()
	ch, cancel := settled(c)
	defer cancel()

	release := make(chan struct{})

	c.Run(context.Background(), "", func(context.Context) (string, error) {
		<-release
		return "", errors.New("stale failure")
	})
	c.Run(context.Background(), "", func(context.Context) (string, error) {
		return "fresh", nil
	})

	r := waitResult(t, ch)
	require.True(t, r.IsResolved())

	close(release)
	time.Sleep(50 * time.Millisecond)
	assert.True(t, c.Result().IsResolved())
}

func TestResult_Constructors(t *testing.T) {
	tests := []struct {
		name       string
		result     Result[int]
		wantState  State
		wantString string
	}{
		{"pending", Pending(5), StatePending, "pending"},
		{"resolved", Resolved(5), StateResolved, "resolved"},
		{"failed", Failed[int](errors.New("boom")), StateFailed, "failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantState, tt.result.State)
			assert.Equal(t, tt.wantString, tt.result.State.String())
		})
	}
}
