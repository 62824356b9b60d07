//go:build unix

// Package mmarena provides the raw byte range the heap strategies carve
// allocations from. On unix it maps an anonymous, private region so the
// arena lives outside the Go heap; elsewhere it falls back to a plain slice.
//
// The package only produces the range. It never allocates from it and never
// calls back into the allocator.
package mmarena

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Map allocates an anonymous memory region of size bytes and returns its
// contents along with a cleanup function that unmaps it. The region is
// zero-filled by the kernel and writable.
func Map(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("mmarena: invalid region size %d", size)
	}
	data, err := unix.Mmap(
		-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("mmarena: mmap of %d bytes failed: %w", size, err)
	}
	cleanup := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		data = nil
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data, cleanup, nil
}
