package layout

// Alignment utilities for heap offsets. All alignments in this module are
// powers of two, which lets every round-up be a single mask operation.

// AlignUp returns the smallest value >= n that is a multiple of align.
//
// Contract: align must be a non-zero power of two. The caller enforces this;
// AlignUp does not check. The result may exceed the region containing n, so
// callers must bound-check afterward.
//
// Example:
//
//	AlignUp(0, 8)  = 0
//	AlignUp(1, 8)  = 8
//	AlignUp(13, 4) = 16
func AlignUp(n, align uint64) uint64 {
	return (n + align - 1) &^ (align - 1)
}

// Align8 returns n aligned up to the next 8-byte boundary.
// Used for free-region node placement, which requires NodeAlign alignment.
//
// Example:
//
//	Align8(1)  = 8
//	Align8(8)  = 8
//	Align8(9)  = 16
func Align8(n uint64) uint64 {
	return (n + NodeAlignMask) &^ uint64(NodeAlignMask)
}

// IsPowerOfTwo reports whether n is a power of two. Zero is not.
// The allocation strategies never call this on the hot path; it exists for
// validation at configuration boundaries (CLI flags, test inputs).
func IsPowerOfTwo(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}
