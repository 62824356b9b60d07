package alloc

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/heap"
)

// Test_Locked_ConcurrentFreeList hammers a locked free-list from several
// goroutines. Each worker writes a distinct pattern into its block and
// verifies it before freeing, so torn mutation of either the payload or the
// list structure would surface as corruption.
func Test_Locked_ConcurrentFreeList(t *testing.T) {
	h, err := heap.Mapped(1 << 16)
	require.NoError(t, err)
	defer h.Close() //nolint:errcheck // unmap failure is unreachable after successful map

	f, err := NewFreeList(h)
	require.NoError(t, err)
	w := NewLocked(f)

	const (
		workers = 8
		iters   = 200
	)
	l := Layout{Size: 64, Align: 8}

	errCh := make(chan error, workers)
	var wg sync.WaitGroup
	for worker := 0; worker < workers; worker++ {
		worker := worker
		wg.Add(1)
		go func() {
			defer wg.Done()
			pattern := byte(worker + 1)
			for j := 0; j < iters; j++ {
				off, buf, err := w.Alloc(l)
				if err != nil {
					errCh <- err
					return
				}
				for i := range buf {
					buf[i] = pattern
				}
				for i := range buf {
					if buf[i] != pattern {
						errCh <- fmt.Errorf("payload corrupted at byte %d", i)
						return
					}
				}
				if err := w.Free(off, l); err != nil {
					errCh <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	s := w.Stats()
	require.EqualValues(t, workers*iters, s.AllocCalls)
	require.EqualValues(t, workers*iters, s.FreeCalls)
	require.EqualValues(t, 0, s.Live, "every block was returned")
}

// Test_Locked_ConcurrentBump verifies the bump strategy under the wrapper:
// all grants are disjoint, and once every worker has freed, the epoch reset
// makes the heap start allocatable again.
func Test_Locked_ConcurrentBump(t *testing.T) {
	b, err := NewBump(newTestHeap(t, 1<<16))
	require.NoError(t, err)
	w := NewLocked(b)

	const workers = 16
	l := Layout{Size: 128, Align: 8}

	offs := make([]Offset, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			off, _, err := w.Alloc(l)
			if err == nil {
				offs[i] = off
			}
		}()
	}
	wg.Wait()

	var rs ranges
	for _, off := range offs {
		rs = rs.add(off, l.Size)
	}
	rs.requireDisjoint(t, 1<<16)

	for _, off := range offs {
		require.NoError(t, w.Free(off, l))
	}

	off, _, err := w.Alloc(l)
	require.NoError(t, err)
	require.EqualValues(t, 0, off, "heap reclaimed after the live count drained")
}

// Test_Locked_ForwardsErrors verifies that failure results pass through the
// wrapper unchanged, including the lock release on the error path.
func Test_Locked_ForwardsErrors(t *testing.T) {
	b, err := NewBump(newTestHeap(t, 64))
	require.NoError(t, err)
	w := NewLocked(b)

	_, _, err = w.Alloc(Layout{Size: 128, Align: 8})
	require.ErrorIs(t, err, ErrOutOfMemory)

	require.ErrorIs(t, w.Free(0, Layout{Size: 8, Align: 8}), ErrNoOutstanding)

	// The lock was released on both error paths: the wrapper still serves.
	_, _, err = w.Alloc(Layout{Size: 32, Align: 8})
	require.NoError(t, err)
}
