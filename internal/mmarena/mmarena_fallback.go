//go:build !unix

package mmarena

import "fmt"

// Map returns a plain zeroed slice on platforms without an mmap wrapper.
// The cleanup function is a no-op; the Go runtime reclaims the slice.
func Map(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("mmarena: invalid region size %d", size)
	}
	data := make([]byte, size)
	return data, func() error { return nil }, nil
}
