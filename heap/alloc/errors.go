package alloc

import "errors"

var (
	// ErrOutOfMemory indicates that no free region satisfies the request.
	// Strategy state is unchanged; the caller decides whether this is fatal.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrNoOutstanding indicates a bump Free call with no live allocations.
	// The release counter is left untouched rather than underflowed.
	ErrNoOutstanding = errors.New("alloc: free without outstanding allocation")

	// ErrHeapTooSmall indicates a heap too small to host a free-region node.
	ErrHeapTooSmall = errors.New("alloc: heap smaller than free-region node footprint")

	// ErrUnaligned indicates a free-region offset not aligned for a node.
	ErrUnaligned = errors.New("alloc: free region not aligned for node placement")

	// ErrRegionTooSmall indicates a free region too small to host a node.
	ErrRegionTooSmall = errors.New("alloc: free region smaller than node footprint")

	// ErrInitialized indicates a second Initialize of the global binding.
	ErrInitialized = errors.New("alloc: global allocator already initialized")
)
