// Package alloc implements dynamic allocation over a single linear byte
// arena, in the style of a freestanding environment with no host allocator
// to delegate to.
//
// # Overview
//
// Two strategies carve the heap range produced by the heap package:
//
// Bump: monotonic pointer with epoch reset
//
//   - O(1) allocation: align the cursor, bound-check, advance
//   - Free reclaims nothing individually; when the live count returns to
//     zero the cursor resets and the whole range is reclaimed at once
//
// FreeList: first-fit over an intrusive singly linked list
//
//   - Free regions carry their own node (size + next link) encoded into the
//     first 16 bytes of the region itself
//   - A region larger than its allocation is split; the leftover suffix is
//     reinserted at the head of the list
//   - Adjacent free regions are never merged (see Fragmentation below)
//
// # Usage Example
//
//	h, err := heap.Mapped(1 << 20)
//	if err != nil {
//	    return err
//	}
//	defer h.Close()
//
//	if err := alloc.Initialize(alloc.KindFreeList, h); err != nil {
//	    return err
//	}
//
//	l := alloc.Layout{Size: 64, Align: 8}
//	off, buf, err := alloc.Alloc(l)
//	if err != nil {
//	    return err // alloc.ErrOutOfMemory when the heap is exhausted
//	}
//
//	// Write through buf...
//
//	err = alloc.Free(off, l)
//
// # Layout Contract
//
// Every Alloc and its paired Free must agree on the Layout. Align must be a
// non-zero power of two. Neither is re-validated on the allocation path;
// violating the contract corrupts strategy state. Freeing the same offset
// twice is likewise undefined.
//
// # Fragmentation
//
// The free-list strategy never coalesces. Freeing two adjacent regions
// leaves two nodes, and a subsequent allocation spanning their combined
// size fails with ErrOutOfMemory even though the bytes are contiguous.
// Likewise, alignment padding at the front of a split region is not
// returned to the list. Both are deliberate: they keep every operation a
// single list walk with no neighbor lookups. Adding coalescing would
// change the strategy's complexity class and its observable behavior.
//
// # Thread Safety
//
// Bump and FreeList instances are not thread-safe. Wrap them in Locked, or
// use the package-level binding installed by Initialize, which does so.
// The lock is not reentrant: code invoked while servicing an Alloc or Free
// must never allocate from the same allocator, or it deadlocks.
//
// No operation suspends. Calls either complete or fail immediately with
// ErrOutOfMemory, so the package is safe to use from cooperatively
// scheduled tasks as long as the non-reentrancy rule holds.
//
// # Related Packages
//
//   - github.com/joshuapare/heapkit/heap: owns the backing byte range
//   - github.com/joshuapare/heapkit/internal/layout: alignment and node encoding
package alloc
