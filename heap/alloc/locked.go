package alloc

import "sync"

// Locked wraps a strategy in a mutual-exclusion lock, making it safe to
// call from concurrent goroutines. The lock is held for the full duration
// of every call and released on every exit path, so callers never observe
// a partially mutated free structure.
//
// The lock is not reentrant. A nested allocation triggered while servicing
// a call - for example from diagnostic code invoked inside the critical
// section - deadlocks permanently. Nothing invoked transitively during an
// Alloc or Free may itself allocate from the same wrapped strategy.
type Locked[A Allocator] struct {
	mu    sync.Mutex
	inner A
}

// NewLocked wraps inner. The caller must hand over its only reference:
// bypassing the wrapper defeats the exclusion guarantee.
func NewLocked[A Allocator](inner A) *Locked[A] {
	return &Locked[A]{inner: inner}
}

// Alloc forwards to the wrapped strategy under the lock.
func (w *Locked[A]) Alloc(l Layout) (Offset, []byte, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inner.Alloc(l)
}

// Free forwards to the wrapped strategy under the lock.
func (w *Locked[A]) Free(off Offset, l Layout) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inner.Free(off, l)
}

// Stats snapshots the wrapped strategy's counters under the lock.
func (w *Locked[A]) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inner.Stats()
}

// Compile-time interface check
var _ Allocator = (*Locked[*Bump])(nil)
