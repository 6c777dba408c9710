//go:build linux

// File: pool/mmap_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Anonymous-mapping allocator. Unlike make(), mmap reports exhaustion
// through an errno, so this is the one production path where Alloc can
// genuinely fail with out-of-memory instead of aborting the process.

package pool

import (
	"os"
	"sync/atomic"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-circbuf/api"
)

// MmapAllocator backs regions with private anonymous mappings, rounded
// up to the page size. Suited to large or long-lived buffers whose
// storage should bypass the Go heap.
type MmapAllocator struct {
	pageSize   int
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

// NewMmapAllocator returns a page-granular mmap allocator.
func NewMmapAllocator() *MmapAllocator {
	return &MmapAllocator{pageSize: os.Getpagesize()}
}

// Alloc maps a zeroed region of at least 'size' bytes. The returned
// slice has len == size; cap holds the full mapping length.
func (a *MmapAllocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, api.ErrInvalidArgument
	}
	if size == 0 {
		return []byte{}, nil
	}
	rounded := (size + a.pageSize - 1) / a.pageSize * a.pageSize
	p, err := unix.Mmap(-1, 0, rounded,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, api.NewError(api.ErrCodeOutOfMemory, "mmap failed").
			WithContext("bytes", rounded).
			WithContext("errno", err)
	}
	a.totalAlloc.Add(1)
	return p[:size], nil
}

// Free unmaps the region.
func (a *MmapAllocator) Free(p []byte) {
	if cap(p) == 0 {
		return
	}
	_ = unix.Munmap(p[:cap(p)])
	a.totalFree.Add(1)
}

// Stats reports mapping counters.
func (a *MmapAllocator) Stats() api.AllocStats {
	alloc := a.totalAlloc.Load()
	free := a.totalFree.Load()
	return api.AllocStats{TotalAlloc: alloc, TotalFree: free, InUse: alloc - free}
}

var _ api.Allocator = (*MmapAllocator)(nil)
