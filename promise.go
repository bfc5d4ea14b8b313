package usync

import "sync/atomic"

// Promise is a single-slot value handoff between goroutines: one side
// publishes a value with Set, the other blocks in Wait until the value is
// there. A closed channel carries the wake-up, so any number of waiters
// already blocked when Set arrives are all released.
//
// The slot holds at most one meaningful value per Set/Clear cycle. A second
// Set without an intervening Clear overwrites the value and does not signal
// again. Clear re-arms the slot for reuse; it must not run concurrently
// with an in-flight Wait on the same Promise — the caller coordinates that
// externally, the Promise does not.
type Promise[T any] struct {
	value T
	done  atomic.Bool
	ready chan struct{}
}

// NewPromise returns an empty Promise.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{ready: make(chan struct{})}
}

// Set stores value and marks the slot ready, waking every blocked Wait.
func (p *Promise[T]) Set(value T) {
	p.value = value
	if p.done.CompareAndSwap(false, true) {
		close(p.ready)
	}
}

// Wait blocks until the slot is ready, then returns the published value.
// It does not consume the value: further Wait calls return immediately
// with the same value until Clear.
func (p *Promise[T]) Wait() T {
	if !p.done.Load() {
		<-p.ready
	}
	return p.value
}

// Take is the consuming counterpart of Wait: it blocks until the slot is
// ready, then moves the value out, leaving a zero value behind so whatever
// the value referenced can be collected. The slot stays ready; Clear
// re-arms it. At most one goroutine may Take per publish.
func (p *Promise[T]) Take() T {
	if !p.done.Load() {
		<-p.ready
	}
	value := p.value
	var zero T
	p.value = zero
	return value
}

// Ready reports whether a value has been published, without blocking.
func (p *Promise[T]) Ready() bool {
	return p.done.Load()
}

// Clear resets the slot to empty so it can carry the next value. The
// previous value is dropped and overwritten by the next Set; a zero value
// is not stored in between.
func (p *Promise[T]) Clear() {
	p.ready = make(chan struct{})
	p.done.Store(false)
}
