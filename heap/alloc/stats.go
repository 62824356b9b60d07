package alloc

// Stats holds per-strategy counters for instrumentation and tests. They are
// maintained inline by the strategies and read through the same lock as the
// allocation path, so a snapshot is always internally consistent.
type Stats struct {
	AllocCalls   uint64 // Total Alloc() calls
	FreeCalls    uint64 // Total Free() calls
	FailedAllocs uint64 // Alloc() calls that returned ErrOutOfMemory
	BytesGranted uint64 // Total bytes handed out (after strategy padding)
	BytesFreed   uint64 // Total bytes returned (after strategy padding)
	Splits       uint64 // Free regions split by an allocation (free-list only)
	Live         uint64 // Allocations not yet freed
}
