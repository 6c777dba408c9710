// Package api
// Author: momentics
//
// Storage allocation contract for ring buffer backing regions.
//
// Regions may be heap slices, pooled blocks, or mmap-backed memory.
// Allocation failure is a first-class outcome: implementations report
// exhaustion with ErrOutOfMemory instead of aborting, which is what lets
// resize and init paths stay recoverable on constrained targets.

package api

// Allocator manages backing storage for ring buffers.
type Allocator interface {
	// Alloc returns a zeroed region of exactly 'size' bytes (the region
	// may be backed by a larger block). Errors satisfy
	// errors.Is(err, ErrOutOfMemory) on exhaustion.
	Alloc(size int) ([]byte, error)

	// Free returns a region obtained from Alloc. The region must not be
	// used afterwards. Free of a nil region is a no-op.
	Free(p []byte)

	// Stats exposes resource/accounting metrics for observability.
	Stats() AllocStats
}

// AllocStats aggregates allocation/reuse stats.
type AllocStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
}
