// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

// Package fake provides trivial test doubles for hioload-circbuf.
package fake

import "github.com/momentics/hioload-circbuf/api"

// Allocator is a heap-backed api.Allocator with failure injection.
// Not safe for concurrent use; intended for single-threaded tests.
type Allocator struct {
	// FailAfter makes every Alloc fail with api.ErrOutOfMemory once
	// Allocs reaches it. Negative disables injection.
	FailAfter int

	Allocs int
	Frees  int
}

// NewAllocator returns a fake allocator with failure injection disabled.
func NewAllocator() *Allocator {
	return &Allocator{FailAfter: -1}
}

func (f *Allocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, api.ErrInvalidArgument
	}
	if f.FailAfter >= 0 && f.Allocs >= f.FailAfter {
		return nil, api.ErrOutOfMemory
	}
	f.Allocs++
	return make([]byte, size), nil
}

func (f *Allocator) Free(p []byte) {
	if p == nil {
		return
	}
	f.Frees++
}

func (f *Allocator) Stats() api.AllocStats {
	return api.AllocStats{
		TotalAlloc: int64(f.Allocs),
		TotalFree:  int64(f.Frees),
		InUse:      int64(f.Allocs - f.Frees),
	}
}

var _ api.Allocator = (*Allocator)(nil)
