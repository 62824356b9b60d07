package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/heap/alloc"
)

var (
	// Global flags
	strategy string
	heapSize int
)

var rootCmd = &cobra.Command{
	Use:   "heapctl",
	Short: "Exercise and inspect the heapkit arena allocators",
	Long: `heapctl drives the heapkit allocation strategies over a freshly
mapped arena. It exists to observe allocator behavior - reuse, splitting,
fragmentation, exhaustion - without writing a test harness.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().
		StringVar(&strategy, "strategy", "freelist", "Allocation strategy (bump or freelist)")
	rootCmd.PersistentFlags().
		IntVar(&heapSize, "heap-size", 1<<20, "Arena size in bytes")
}

// newAllocator maps a fresh arena and binds the selected strategy to it.
// The returned cleanup must run before process exit to unmap the arena.
func newAllocator() (alloc.Allocator, func() error, error) {
	kind, err := alloc.ParseKind(strategy)
	if err != nil {
		return nil, nil, err
	}
	h, err := heap.Mapped(heapSize)
	if err != nil {
		return nil, nil, err
	}
	var a alloc.Allocator
	switch kind {
	case alloc.KindBump:
		b, err := alloc.NewBump(h)
		if err != nil {
			_ = h.Close()
			return nil, nil, err
		}
		a = alloc.NewLocked(b)
	case alloc.KindFreeList:
		f, err := alloc.NewFreeList(h)
		if err != nil {
			_ = h.Close()
			return nil, nil, err
		}
		a = alloc.NewLocked(f)
	}
	return a, h.Close, nil
}

// printStats renders an allocator stats snapshot.
func printStats(s alloc.Stats) {
	fmt.Printf("  alloc calls:   %d (%d failed)\n", s.AllocCalls, s.FailedAllocs)
	fmt.Printf("  free calls:    %d\n", s.FreeCalls)
	fmt.Printf("  bytes granted: %d\n", s.BytesGranted)
	fmt.Printf("  bytes freed:   %d\n", s.BytesFreed)
	fmt.Printf("  splits:        %d\n", s.Splits)
	fmt.Printf("  live:          %d\n", s.Live)
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
