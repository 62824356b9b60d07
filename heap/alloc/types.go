package alloc

// Offset is a byte offset into the heap's backing range. It plays the role a
// raw address plays in a freestanding environment: the result of Alloc and
// the argument of Free.
type Offset = uint64

// Layout describes one allocation request: a size in bytes and a required
// alignment. Align must be a non-zero power of two; this is a caller
// contract and is not re-validated on the allocation path. Free must be
// given the exact Layout used at the paired Alloc; a mismatch silently
// corrupts strategy state.
type Layout struct {
	Size  uint64
	Align uint64
}

// Allocator defines the contract every allocation strategy satisfies.
//
// Implementations:
//   - Bump: monotonic pointer with whole-heap epoch reset
//   - FreeList: first-fit search over an intrusive free-region list
//   - Locked: mutual-exclusion wrapper around either strategy
//
// Alloc returns the offset of the granted range, a slice over its
// Layout.Size payload bytes, or ErrOutOfMemory when no request-satisfying
// region exists. Out-of-memory leaves strategy state unchanged; it is a
// reportable result, not a crash.
//
// No call suspends or retries: every operation is a single synchronous
// attempt against current state.
type Allocator interface {
	Alloc(l Layout) (Offset, []byte, error)
	Free(off Offset, l Layout) error
	Stats() Stats
}
