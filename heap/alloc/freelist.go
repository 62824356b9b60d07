package alloc

import (
	"fmt"
	"os"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/internal/layout"
)

// Runtime debug flag for allocation logging - controlled by HEAPKIT_LOG_ALLOC env var.
var logAlloc = os.Getenv("HEAPKIT_LOG_ALLOC") != ""

// FreeList is a first-fit strategy over a singly linked list of free
// regions. The list is intrusive: each node is encoded into the first
// layout.NodeSize bytes of the free region it describes (little-endian
// uint64 size, then uint64 next-offset), so the strategy carries no
// per-region bookkeeping outside the heap itself.
//
// List order is insertion order - the most recently freed or split region
// sits nearest the head. First-fit is correct regardless of order, so no
// sorting is ever performed.
//
// Adjacent free regions are never coalesced. Two neighboring frees stay two
// nodes, and an allocation spanning their combined size fails even though
// the bytes are contiguous. This is a deliberate property of the strategy,
// not a defect; see the package documentation.
type FreeList struct {
	data []byte

	// head is the offset of the first free-region node, or layout.NilOffset
	// when the list is empty. It acts as the sentinel link: detaching the
	// first node rewrites head, detaching any other rewrites its
	// predecessor's next field inside the heap.
	head Offset

	heapSize uint64
	stats    Stats
}

// NewFreeList binds a free-list strategy to h and seeds one node spanning
// the heap's whole range. The heap must be at least layout.NodeSize bytes so
// the seed region can host its node. Construct at most one strategy per
// Heap.
func NewFreeList(h *heap.Heap) (*FreeList, error) {
	if h.Size() < layout.NodeSize {
		return nil, ErrHeapTooSmall
	}
	f := &FreeList{
		data:     h.Bytes(),
		head:     layout.NilOffset,
		heapSize: h.Size(),
	}
	// Offset 0 is trivially node-aligned and the size was checked above,
	// so seeding the whole range cannot fail.
	if err := f.insertFreeRegion(0, f.heapSize); err != nil {
		return nil, err
	}
	return f, nil
}

// sizeAlign adjusts a request so the granted block can host a free-region
// node when later freed: the alignment is raised to at least
// layout.NodeAlign, and the size is padded to a multiple of that alignment
// and to at least layout.NodeSize. Alloc and Free apply the identical
// adjustment so the two stay consistent.
func sizeAlign(l Layout) (size, align uint64) {
	align = l.Align
	if align < layout.NodeAlign {
		align = layout.NodeAlign
	}
	size = layout.AlignUp(l.Size, align)
	if size < layout.NodeSize {
		size = layout.NodeSize
	}
	return size, align
}

// Alloc performs a first-fit walk, detaches the first region that can host
// the adjusted request, and reinserts any leftover suffix as a new free
// region. Returns ErrOutOfMemory when the walk exhausts the list.
func (f *FreeList) Alloc(l Layout) (Offset, []byte, error) {
	f.stats.AllocCalls++
	size, align := sizeAlign(l)

	regionOff, regionSize, allocStart, ok := f.findRegion(size, align)
	if !ok {
		if logAlloc {
			f.logExhausted(size, align)
		}
		f.stats.FailedAllocs++
		return 0, nil, ErrOutOfMemory
	}

	allocEnd := allocStart + size
	regionEnd := regionOff + regionSize
	if excess := regionEnd - allocEnd; excess > 0 {
		// findRegion only accepts regions whose leftover suffix is zero or
		// large enough to host a node, so this insert cannot fail.
		f.stats.Splits++
		if err := f.insertFreeRegion(allocEnd, excess); err != nil {
			return 0, nil, err
		}
	}

	f.stats.BytesGranted += size
	f.stats.Live++

	return allocStart, f.data[allocStart : allocStart+l.Size], nil
}

// Free returns [off, off+adjusted size) to the list as a new region linked
// at the head. The layout must be the one used at the paired Alloc; the
// same sizeAlign adjustment recovers the granted extent from it.
//
// No merge with neighboring free regions is attempted.
func (f *FreeList) Free(off Offset, l Layout) error {
	size, _ := sizeAlign(l)
	if err := f.insertFreeRegion(off, size); err != nil {
		return err
	}
	f.stats.FreeCalls++
	f.stats.BytesFreed += size
	f.stats.Live--
	return nil
}

// Stats returns a snapshot of the strategy counters.
func (f *FreeList) Stats() Stats { return f.stats }

// Region describes one free region for diagnostics and tests.
type Region struct {
	Off  Offset
	Size uint64
}

// Regions returns a snapshot of the free list in list order (head first).
// The walk is bounded by the maximum possible node count so a corrupted
// next-link cannot loop forever.
func (f *FreeList) Regions() []Region {
	var out []Region
	maxNodes := f.heapSize/layout.NodeSize + 1
	cur := f.head
	for cur != layout.NilOffset && uint64(len(out)) < maxNodes {
		size, next := f.readNode(cur)
		out = append(out, Region{Off: cur, Size: size})
		cur = next
	}
	return out
}

// findRegion walks the list first-fit. For each candidate it attempts
// allocFromRegion; on success it detaches the node (splicing predecessor to
// successor) and returns the region bounds plus the computed allocation
// start. ok is false when the list is exhausted.
func (f *FreeList) findRegion(size, align uint64) (regionOff Offset, regionSize uint64, allocStart Offset, ok bool) {
	prev := Offset(layout.NilOffset)
	cur := f.head
	for cur != layout.NilOffset {
		nodeSize, nodeNext := f.readNode(cur)
		if start, fits := allocFromRegion(cur, nodeSize, size, align); fits {
			// Detach: ownership of [cur, cur+nodeSize) leaves the list.
			if prev == layout.NilOffset {
				f.head = nodeNext
			} else {
				f.writeNext(prev, nodeNext)
			}
			return cur, nodeSize, start, true
		}
		prev, cur = cur, nodeNext
	}
	return 0, 0, 0, false
}

// allocFromRegion decides whether the region starting at regionOff with
// regionSize bytes can host an allocation of the adjusted size and align.
//
// It fails closed on arithmetic overflow, when the region is too small, and
// when the leftover suffix would be too small to host a node - a region is
// rejected rather than silently losing its tail.
func allocFromRegion(regionOff Offset, regionSize, size, align uint64) (Offset, bool) {
	allocStart := layout.AlignUp(regionOff, align)
	allocEnd := allocStart + size
	if allocEnd < allocStart {
		return 0, false // overflow
	}
	regionEnd := regionOff + regionSize
	if allocEnd > regionEnd {
		return 0, false // region too small
	}
	if excess := regionEnd - allocEnd; excess > 0 && excess < layout.NodeSize {
		// The remainder could never host a node and would be lost.
		return 0, false
	}
	return allocStart, true
}

// insertFreeRegion encodes a node at off covering size bytes and links it at
// the head of the list. The offset must be node-aligned and the region must
// be able to host a node; both hold by construction for regions produced by
// sizeAlign, so a failure here means a caller broke the Free contract.
func (f *FreeList) insertFreeRegion(off Offset, size uint64) error {
	if layout.AlignUp(off, layout.NodeAlign) != off {
		return ErrUnaligned
	}
	if size < layout.NodeSize {
		return ErrRegionTooSmall
	}
	layout.PutU64(f.data, int(off), size)
	layout.PutU64(f.data, int(off)+layout.NodeNextOffset, f.head)
	f.head = off
	return nil
}

// readNode decodes the node stored at off.
func (f *FreeList) readNode(off Offset) (size uint64, next Offset) {
	size = layout.ReadU64(f.data, int(off))
	next = layout.ReadU64(f.data, int(off)+layout.NodeNextOffset)
	return size, next
}

// writeNext rewrites the next-link of the node stored at off.
func (f *FreeList) writeNext(off, next Offset) {
	layout.PutU64(f.data, int(off)+layout.NodeNextOffset, next)
}

// logExhausted prints a free-list summary when an allocation fails.
// Controlled by the HEAPKIT_LOG_ALLOC environment variable.
func (f *FreeList) logExhausted(size, align uint64) {
	regions := f.Regions()
	var total, largest uint64
	for _, r := range regions {
		total += r.Size
		if r.Size > largest {
			largest = r.Size
		}
	}
	fmt.Fprintf(
		os.Stderr,
		"[ALLOC] EXHAUSTED: need=%d align=%d | free: %d regions, %d bytes total, largest=%d\n",
		size, align, len(regions), total, largest,
	)
}

// Compile-time interface check
var _ Allocator = (*FreeList)(nil)
