package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/heap"
)

// newTestHeap builds a slice-backed heap of the given size for strategy tests.
func newTestHeap(t testing.TB, size int) *heap.Heap {
	t.Helper()
	h, err := heap.New(make([]byte, size))
	require.NoError(t, err)
	return h
}

// ranges tracks granted [start, end) intervals for overlap checks.
type ranges []struct{ start, end uint64 }

func (rs ranges) add(off Offset, size uint64) ranges {
	return append(rs, struct{ start, end uint64 }{off, off + size})
}

// requireDisjoint asserts that all tracked intervals are pairwise disjoint
// and lie within [0, heapSize).
func (rs ranges) requireDisjoint(t *testing.T, heapSize uint64) {
	t.Helper()
	for i, a := range rs {
		require.LessOrEqual(t, a.end, heapSize, "range %d beyond heap end", i)
		for j, b := range rs {
			if i == j {
				continue
			}
			overlap := a.start < b.end && b.start < a.end
			require.False(t, overlap,
				"ranges overlap: [%d,%d) and [%d,%d)", a.start, a.end, b.start, b.end)
		}
	}
}
