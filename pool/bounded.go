// File: pool/bounded.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync/atomic"

	"github.com/momentics/hioload-circbuf/api"
)

// BoundedAllocator enforces a byte budget over an inner allocator.
// Requests that would exceed the budget fail with api.ErrOutOfMemory,
// modeling the fixed memory envelope of a constrained runtime. The
// budget is accounted against cap() of the returned regions, so inner
// allocators that round sizes up (free lists, mmap) stay within bounds.
type BoundedAllocator struct {
	inner  api.Allocator
	budget int64
	used   atomic.Int64
}

// NewBoundedAllocator wraps 'inner' with a budget of 'budget' bytes.
// A nil inner defaults to a heap allocator.
func NewBoundedAllocator(inner api.Allocator, budget int64) *BoundedAllocator {
	if inner == nil {
		inner = NewHeapAllocator()
	}
	return &BoundedAllocator{inner: inner, budget: budget}
}

// Alloc returns a region charged against the budget.
func (a *BoundedAllocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, api.ErrInvalidArgument
	}
	if int64(size) > a.budget {
		return nil, a.exhausted(size)
	}
	p, err := a.inner.Alloc(size)
	if err != nil {
		return nil, err
	}
	n := int64(cap(p))
	if a.used.Add(n) > a.budget {
		a.used.Add(-n)
		a.inner.Free(p)
		return nil, a.exhausted(size)
	}
	return p, nil
}

// Free returns the region to the inner allocator and credits the budget.
func (a *BoundedAllocator) Free(p []byte) {
	if p == nil {
		return
	}
	a.used.Add(-int64(cap(p)))
	a.inner.Free(p)
}

// Stats reports the inner allocator's counters.
func (a *BoundedAllocator) Stats() api.AllocStats {
	return a.inner.Stats()
}

// InUseBytes reports the bytes currently charged against the budget.
func (a *BoundedAllocator) InUseBytes() int64 {
	return a.used.Load()
}

func (a *BoundedAllocator) exhausted(size int) error {
	return api.NewError(api.ErrCodeOutOfMemory, "allocation budget exhausted").
		WithContext("budget", a.budget).
		WithContext("in_use", a.used.Load()).
		WithContext("requested", size)
}

var _ api.Allocator = (*BoundedAllocator)(nil)
