// File: pool/freelist.go
// Package pool implements size-class free lists for buffer storage reuse.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-circbuf/api"
)

const (
	// minClass keeps tiny buffers from fragmenting into many classes.
	minClass = 64

	// defaultRetainPerClass bounds the blocks a class may hold back from
	// the GC.
	defaultRetainPerClass = 64
)

// FreeListAllocator recycles freed regions through per-size-class FIFO
// free lists. Sizes round up to the next power of two, so a resize churn
// of similar capacities hits the same class and avoids fresh allocation.
type FreeListAllocator struct {
	mu      sync.Mutex
	classes map[int]*queue.Queue
	retain  int

	totalAlloc atomic.Int64 // fresh allocations, reuse excluded
	totalFree  atomic.Int64 // regions retained for reuse
}

// NewFreeListAllocator returns an empty free-list allocator.
func NewFreeListAllocator() *FreeListAllocator {
	return &FreeListAllocator{
		classes: make(map[int]*queue.Queue),
		retain:  defaultRetainPerClass,
	}
}

// sizeClass rounds size up to the allocator's power-of-two class.
func sizeClass(size int) int {
	c := minClass
	for c < size {
		c <<= 1
	}
	return c
}

// Alloc returns a zeroed region of 'size' bytes, reusing a retained
// block of the matching class when one is available.
func (a *FreeListAllocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, api.ErrInvalidArgument
	}
	if size == 0 {
		return []byte{}, nil
	}
	cls := sizeClass(size)

	a.mu.Lock()
	if q := a.classes[cls]; q != nil && q.Length() > 0 {
		p := q.Remove().([]byte)
		a.mu.Unlock()
		clear(p)
		return p[:size], nil
	}
	a.mu.Unlock()

	a.totalAlloc.Add(1)
	return make([]byte, cls)[:size], nil
}

// Free retains the region for reuse, up to the per-class bound. Regions
// whose capacity is not a class of this allocator fall through to the GC.
func (a *FreeListAllocator) Free(p []byte) {
	if p == nil {
		return
	}
	cls := cap(p)
	if cls < minClass || cls&(cls-1) != 0 {
		return
	}
	full := p[:cls]

	a.mu.Lock()
	q := a.classes[cls]
	if q == nil {
		q = queue.New()
		a.classes[cls] = q
	}
	if q.Length() < a.retain {
		q.Add(full)
		a.totalFree.Add(1)
	}
	a.mu.Unlock()
}

// Stats reports fresh-allocation and retention counters.
func (a *FreeListAllocator) Stats() api.AllocStats {
	alloc := a.totalAlloc.Load()
	free := a.totalFree.Load()
	return api.AllocStats{TotalAlloc: alloc, TotalFree: free, InUse: alloc - free}
}

var _ api.Allocator = (*FreeListAllocator)(nil)
