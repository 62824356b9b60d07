package alloc

import (
	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/internal/layout"
)

// Bump is a monotonic bump-pointer strategy. Allocation advances a single
// cursor; individual frees reclaim nothing. Only when the live-allocation
// count returns to zero does the cursor reset to the heap start, reclaiming
// the entire range in one step (epoch reset).
//
// Key characteristics:
//   - O(1) allocation: align the cursor, bound-check, advance
//   - Zero memory overhead: no free lists, no headers in the heap
//   - Free is bookkeeping only while any allocation is live
//
// This strategy suits phase-shaped workloads where everything allocated in
// an epoch is released before the next epoch begins. Interleaved long-lived
// allocations pin the cursor and make fragmentation unbounded until the
// live count drains.
type Bump struct {
	data []byte

	// heapStart and heapEnd bound the usable range. next is the cursor:
	// heapStart <= next <= heapEnd at all times.
	heapStart Offset
	heapEnd   Offset
	next      Offset

	// live counts allocations not yet freed. The cursor resets only when
	// it returns to zero.
	live uint64

	stats Stats
}

// NewBump binds a bump strategy to h, spanning the heap's whole range.
// Construct at most one strategy per Heap: the strategy assumes exclusive
// ownership of every byte in the range.
func NewBump(h *heap.Heap) (*Bump, error) {
	if h.Size() == 0 {
		return nil, heap.ErrEmptyRange
	}
	return &Bump{
		data:      h.Bytes(),
		heapStart: 0,
		heapEnd:   h.Size(),
		next:      0,
	}, nil
}

// Alloc grants [allocStart, allocStart+l.Size) where allocStart is the
// cursor rounded up to l.Align. Fails with ErrOutOfMemory, leaving the
// cursor and live count untouched, when the range would cross the heap end.
func (b *Bump) Alloc(l Layout) (Offset, []byte, error) {
	b.stats.AllocCalls++

	allocStart := layout.AlignUp(b.next, l.Align)
	allocEnd := allocStart + l.Size
	if allocEnd < allocStart || allocEnd > b.heapEnd {
		b.stats.FailedAllocs++
		return 0, nil, ErrOutOfMemory
	}

	b.next = allocEnd
	b.live++
	b.stats.BytesGranted += l.Size
	b.stats.Live = b.live

	return allocStart, b.data[allocStart:allocEnd], nil
}

// Free decrements the live count. The freed bytes are not reused until the
// count reaches zero, at which point the cursor resets to the heap start
// and the entire range becomes allocatable again.
//
// A Free with no outstanding allocation returns ErrNoOutstanding and leaves
// state unchanged; the counter never underflows.
func (b *Bump) Free(off Offset, l Layout) error {
	if b.live == 0 {
		return ErrNoOutstanding
	}
	b.stats.FreeCalls++
	b.stats.BytesFreed += l.Size

	b.live--
	b.stats.Live = b.live
	if b.live == 0 {
		b.next = b.heapStart
	}
	return nil
}

// Stats returns a snapshot of the strategy counters.
func (b *Bump) Stats() Stats { return b.stats }

// Next returns the current cursor position (for tests and diagnostics).
func (b *Bump) Next() Offset { return b.next }

// Compile-time interface check
var _ Allocator = (*Bump)(nil)
