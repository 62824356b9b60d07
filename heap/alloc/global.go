package alloc

import (
	"fmt"
	"sync"

	"github.com/joshuapare/heapkit/heap"
)

// Kind selects the allocation strategy bound as the process-wide allocator.
type Kind int

const (
	KindBump Kind = iota
	KindFreeList
)

// String returns the flag-friendly name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBump:
		return "bump"
	case KindFreeList:
		return "freelist"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a strategy name to its Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "bump":
		return KindBump, nil
	case "freelist":
		return KindFreeList, nil
	default:
		return 0, fmt.Errorf("alloc: unknown strategy %q (want bump or freelist)", s)
	}
}

var (
	globalMu sync.Mutex
	global   Allocator
)

// Initialize binds the process-wide allocator: the selected strategy over h,
// behind a Locked wrapper. It must be called exactly once, before any
// package-level Alloc or Free; a second call fails with ErrInitialized and
// leaves the existing binding untouched.
func Initialize(kind Kind, h *heap.Heap) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global != nil {
		return ErrInitialized
	}

	switch kind {
	case KindBump:
		b, err := NewBump(h)
		if err != nil {
			return fmt.Errorf("alloc: bump initialization failed: %w", err)
		}
		global = NewLocked(b)
	case KindFreeList:
		f, err := NewFreeList(h)
		if err != nil {
			return fmt.Errorf("alloc: free-list initialization failed: %w", err)
		}
		global = NewLocked(f)
	default:
		return fmt.Errorf("alloc: unknown allocator kind %v", kind)
	}
	return nil
}

// Global returns the process-wide allocator. It panics when Initialize has
// not run: allocation before binding is a startup-order bug, not a
// recoverable condition.
func Global() Allocator {
	globalMu.Lock()
	defer globalMu.Unlock()
	if global == nil {
		panic("alloc: global allocator not initialized")
	}
	return global
}

// Alloc allocates from the process-wide allocator.
func Alloc(l Layout) (Offset, []byte, error) {
	return Global().Alloc(l)
}

// Free releases through the process-wide allocator.
func Free(off Offset, l Layout) error {
	return Global().Free(off, l)
}

// GlobalStats snapshots the process-wide allocator's counters.
func GlobalStats() Stats {
	return Global().Stats()
}
