//go:build !linux

// File: pool/mmap_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback for platforms without the mmap allocator.

package pool

import "github.com/momentics/hioload-circbuf/api"

// MmapAllocator is unavailable on this platform.
type MmapAllocator struct{}

// NewMmapAllocator returns a stub whose Alloc always fails.
func NewMmapAllocator() *MmapAllocator {
	return &MmapAllocator{}
}

// Alloc fails with api.ErrNotSupported.
func (a *MmapAllocator) Alloc(size int) ([]byte, error) {
	return nil, api.ErrNotSupported
}

// Free is a no-op.
func (a *MmapAllocator) Free(p []byte) {}

// Stats reports nothing.
func (a *MmapAllocator) Stats() api.AllocStats {
	return api.AllocStats{}
}

var _ api.Allocator = (*MmapAllocator)(nil)
