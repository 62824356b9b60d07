package layout

import "encoding/binary"

// Binary encoding utilities for little-endian integers.
//
// Free-region nodes are stored inside the heap bytes they describe, so the
// strategies need a fixed, explicit byte order rather than in-memory structs.
//
// Implementation: encoding/binary.LittleEndian. The compiler inlines and
// optimizes these calls well; no unsafe variant is worth the complexity.

// PutU64 writes a uint64 value to the buffer at the specified offset in little-endian format.
func PutU64(b []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(b[off:off+8], v)
}

// ReadU64 reads a uint64 value from the buffer at the specified offset in little-endian format.
func ReadU64(b []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(b[off : off+8])
}
