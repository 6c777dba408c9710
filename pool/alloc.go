// File: pool/alloc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync/atomic"

	"github.com/momentics/hioload-circbuf/api"
)

// HeapAllocator is the simplest api.Allocator: plain make() with
// alloc/free accounting. Freed regions are handed back to the GC.
type HeapAllocator struct {
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

// NewHeapAllocator returns a heap-backed allocator.
func NewHeapAllocator() *HeapAllocator {
	return &HeapAllocator{}
}

// Alloc returns a zeroed slice of exactly 'size' bytes.
func (a *HeapAllocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, api.ErrInvalidArgument
	}
	a.totalAlloc.Add(1)
	return make([]byte, size), nil
}

// Free records the release; the GC reclaims the memory.
func (a *HeapAllocator) Free(p []byte) {
	if p == nil {
		return
	}
	a.totalFree.Add(1)
}

// Stats reports allocation counters.
func (a *HeapAllocator) Stats() api.AllocStats {
	alloc := a.totalAlloc.Load()
	free := a.totalFree.Load()
	return api.AllocStats{TotalAlloc: alloc, TotalFree: free, InUse: alloc - free}
}

var _ api.Allocator = (*HeapAllocator)(nil)
