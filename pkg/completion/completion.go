// Package completion turns callback-driven UI events into a single
// blocking result.
//
// A Completion is resolved at most once. Native dialogs attach one callback
// per control; every callback tries to claim the completion and only the
// first one wins, so a dialog can never resolve twice.
package completion

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrCancelled is returned by Wait when the context ends before resolution.
var ErrCancelled = errors.New("completion cancelled")

// Completion is a single-assignment value.
type Completion[T any] struct {
	claimed atomic.Bool
	once    sync.Once
	done    chan struct{}
	value   T
}

// New creates an unresolved completion.
func New[T any]() *Completion[T] {
	return &Completion[T]{done: make(chan struct{})}
}

// Claim reserves the completion for the caller. The returned function
// stores the value and releases waiters; it may be called later, for
// example after an animated dismissal finishes. Claim returns false when
// the completion is already claimed.
func (c *Completion[T]) Claim() (func(T), bool) {
	if !c.claimed.CompareAndSwap(false, true) {
		return nil, false
	}
	return func(v T) {
		c.once.Do(func() {
			c.value = v
			close(c.done)
		})
	}, true
}

// Resolve claims and resolves in one step. It returns false if the
// completion was already claimed.
func (c *Completion[T]) Resolve(v T) bool {
	resolve, ok := c.Claim()
	if !ok {
		return false
	}
	resolve(v)
	return true
}

// Claimed reports whether some caller claimed the completion.
func (c *Completion[T]) Claimed() bool {
	return c.claimed.Load()
}

// Resolved reports whether a value is available.
func (c *Completion[T]) Resolved() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// Done is closed once the value is available.
func (c *Completion[T]) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until the completion is resolved or ctx ends.
func (c *Completion[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-c.done:
		return c.value, nil
	case <-ctx.Done():
		// a value that raced the context still wins
		select {
		case <-c.done:
			return c.value, nil
		default:
		}
		var zero T
		return zero, ErrCancelled
	}
}
