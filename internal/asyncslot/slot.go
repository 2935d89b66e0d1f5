package asyncslot

import (
	"context"
	"fmt"
)

// State is the lifecycle of a Slot.
type State int

const (
	NotStarted State = iota
	Pending
	Ready
	Failed
)

// String returns a human-readable name for the state
func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Pending:
		return "pending"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// FetchFunc performs the out-of-band work. It runs on its own goroutine
// and is responsible for its own timeout.
type FetchFunc[T any] func(ctx context.Context) (T, error)

type result[T any] struct {
	value T
	err   error
}

// Slot holds the eventual result of at most one in-flight request.
//
// Slot is owned by a single goroutine (the Bubble Tea update loop): Trigger,
// Poll and the accessors must not be called concurrently. The only
// cross-goroutine traffic is the fetch result, delivered over a buffered
// channel that Poll drains without blocking.
//
// The zero value is ready to use and in the NotStarted state.
type Slot[T any] struct {
	state    State
	value    T
	hasValue bool
	err      error
	pending  chan result[T]

	// requests counts fetches started over the slot's lifetime.
	requests int
}

// Trigger starts fetch unless a request is already pending. A Ready or
// Failed slot is refetched; the previous value stays visible through Value
// until the new result arrives. It reports whether a fetch was started.
func (s *Slot[T]) Trigger(ctx context.Context, fetch FetchFunc[T]) bool {
	if s.state == Pending {
		return false
	}

	ch := make(chan result[T], 1)
	s.pending = ch
	s.state = Pending
	s.err = nil
	s.requests++

	go func() {
		v, err := fetch(ctx)
		ch <- result[T]{value: v, err: err}
	}()

	return true
}

// Poll moves a Pending slot to Ready or Failed if its fetch has finished,
// and returns the current state. It never blocks.
func (s *Slot[T]) Poll() State {
	if s.state != Pending {
		return s.state
	}

	select {
	case r := <-s.pending:
		s.pending = nil
		if r.err != nil {
			s.err = r.err
			s.state = Failed
		} else {
			s.value = r.value
			s.hasValue = true
			s.state = Ready
		}
	default:
	}

	return s.state
}

// State returns the state observed by the last Trigger or Poll.
func (s *Slot[T]) State() State {
	return s.state
}

// Value returns the most recent successful result. ok is false until the
// first fetch succeeds.
func (s *Slot[T]) Value() (v T, ok bool) {
	return s.value, s.hasValue
}

// Err returns the error of the last failed fetch while in Failed state.
func (s *Slot[T]) Err() error {
	if s.state != Failed {
		return nil
	}
	return s.err
}

// Requests returns how many fetches have been started.
func (s *Slot[T]) Requests() int {
	return s.requests
}
