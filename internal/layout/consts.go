// Package layout houses the low-level constants and helpers shared by every
// allocation strategy: address alignment math and the binary encoding of
// free-region nodes. The goal is to keep this layer tiny and allocation-free
// so the strategies in heap/alloc can stay focused on search and bookkeeping.
package layout

const (
	// NodeSize is the footprint of a free-region node encoded into the heap:
	// a uint64 region size followed by a uint64 next-node offset. Every free
	// region must be able to host one, so it is also the minimum size any
	// allocation is rounded up to by the free-list strategy.
	NodeSize = 16

	// NodeAlign is the required alignment of a free-region node. Both node
	// fields are 8-byte integers, so nodes must sit on 8-byte boundaries.
	NodeAlign = 8

	// NodeAlignMask is NodeAlign - 1, used by the bitmask alignment helpers.
	NodeAlignMask = NodeAlign - 1

	// NodeNextOffset is the byte offset of the next-link field within a node.
	NodeNextOffset = 8

	// NilOffset terminates a free-region chain. It can never collide with a
	// real region offset because offsets are bounded by the heap size.
	NilOffset = ^uint64(0)
)
