package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap/alloc"
	"github.com/joshuapare/heapkit/internal/layout"
)

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a boxed-value / growable-buffer workload",
		Long: `The demo command runs the classic smoke workload for a fresh
allocator: a single boxed word, a buffer grown by doubling, and a burst of
short-lived allocations, then prints the strategy's counters.

Example:
  heapctl demo
  heapctl demo --strategy bump --heap-size 65536`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	a, cleanup, err := newAllocator()
	if err != nil {
		return err
	}
	defer cleanup() //nolint:errcheck // unmap failure is unreachable after successful map

	// A boxed word: one 8-byte value living for the whole run.
	boxLayout := alloc.Layout{Size: 8, Align: 8}
	boxOff, box, err := a.Alloc(boxLayout)
	if err != nil {
		return fmt.Errorf("boxed value: %w", err)
	}
	layout.PutU64(box, 0, 41)
	layout.PutU64(box, 0, layout.ReadU64(box, 0)+1)
	fmt.Printf("boxed value at offset %d: %d\n", boxOff, layout.ReadU64(box, 0))

	// A growable buffer: double the capacity, copy, free the old block.
	cur := alloc.Layout{Size: 16, Align: 8}
	curOff, curBuf, err := a.Alloc(cur)
	if err != nil {
		return fmt.Errorf("initial buffer: %w", err)
	}
	for i := range curBuf {
		curBuf[i] = byte(i)
	}
	for cur.Size < 4096 {
		next := alloc.Layout{Size: cur.Size * 2, Align: 8}
		nextOff, nextBuf, err := a.Alloc(next)
		if err != nil {
			return fmt.Errorf("grow to %d: %w", next.Size, err)
		}
		copy(nextBuf, curBuf)
		if err := a.Free(curOff, cur); err != nil {
			return err
		}
		cur, curOff, curBuf = next, nextOff, nextBuf
	}
	fmt.Printf("buffer grown to %d bytes at offset %d\n", cur.Size, curOff)

	// A burst of short-lived allocations, freed in allocation order.
	burst := alloc.Layout{Size: 64, Align: 8}
	offs := make([]alloc.Offset, 0, 128)
	for i := 0; i < 128; i++ {
		off, _, err := a.Alloc(burst)
		if err != nil {
			return fmt.Errorf("burst: %w", err)
		}
		offs = append(offs, off)
	}
	for _, off := range offs {
		if err := a.Free(off, burst); err != nil {
			return err
		}
	}

	if err := a.Free(curOff, cur); err != nil {
		return err
	}
	if err := a.Free(boxOff, boxLayout); err != nil {
		return err
	}

	fmt.Printf("strategy %s over %d-byte arena:\n", strategy, heapSize)
	printStats(a.Stats())
	return nil
}
