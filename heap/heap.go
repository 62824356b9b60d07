// Package heap owns the linear byte range that the allocation strategies in
// heap/alloc carve into allocations. A Heap is constructed exactly once over
// its backing bytes, either from a caller-supplied buffer or from an
// anonymous mapping, and is never resized: the strategies see one contiguous
// range [0, Size()) addressed by byte offsets.
package heap

import (
	"errors"

	"github.com/joshuapare/heapkit/internal/mmarena"
)

// ErrEmptyRange indicates an attempt to construct a Heap over no bytes.
var ErrEmptyRange = errors.New("heap: empty backing range")

// Heap is the arena, backed by an anonymous mapping (unix) or a byte slice.
type Heap struct {
	data    []byte
	cleanup func() error
}

// New constructs a Heap over a caller-supplied buffer. The caller must not
// use the buffer for anything else afterward: ownership of every byte
// transfers to whichever strategy is bound to this Heap.
func New(buf []byte) (*Heap, error) {
	if len(buf) == 0 {
		return nil, ErrEmptyRange
	}
	return &Heap{data: buf}, nil
}

// Mapped constructs a Heap over a freshly mapped anonymous region of size
// bytes. Close unmaps the region; using slices obtained from the Heap after
// Close is undefined.
func Mapped(size int) (*Heap, error) {
	data, cleanup, err := mmarena.Map(size)
	if err != nil {
		return nil, err
	}
	return &Heap{data: data, cleanup: cleanup}, nil
}

// Bytes returns the backing range. Offsets handed out by the strategies
// index into this slice.
func (h *Heap) Bytes() []byte { return h.data }

// Size returns the length of the backing range in bytes.
func (h *Heap) Size() uint64 { return uint64(len(h.data)) }

// Close releases the backing region if this Heap owns one. Safe to call
// more than once.
func (h *Heap) Close() error {
	if h.cleanup == nil {
		return nil
	}
	c := h.cleanup
	h.cleanup = nil
	h.data = nil
	return c()
}
