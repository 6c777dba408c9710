// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// alloc_test.go — Allocator accounting, budget enforcement and
// free-list reuse.
package pool_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-circbuf/api"
	"github.com/momentics/hioload-circbuf/pool"
)

func TestHeapAllocatorAccounting(t *testing.T) {
	a := pool.NewHeapAllocator()

	p, err := a.Alloc(128)
	require.NoError(t, err)
	require.Len(t, p, 128)
	require.Equal(t, int64(1), a.Stats().InUse)

	a.Free(p)
	st := a.Stats()
	require.Equal(t, int64(1), st.TotalAlloc)
	require.Equal(t, int64(1), st.TotalFree)
	require.Equal(t, int64(0), st.InUse)
}

func TestHeapAllocatorNegativeSize(t *testing.T) {
	a := pool.NewHeapAllocator()
	_, err := a.Alloc(-1)
	require.ErrorIs(t, err, api.ErrInvalidArgument)
}

func TestBoundedAllocatorBudget(t *testing.T) {
	a := pool.NewBoundedAllocator(pool.NewHeapAllocator(), 256)

	p1, err := a.Alloc(200)
	require.NoError(t, err)

	_, err = a.Alloc(200)
	require.ErrorIs(t, err, api.ErrOutOfMemory)

	// Freeing restores the budget.
	a.Free(p1)
	require.Equal(t, int64(0), a.InUseBytes())
	p2, err := a.Alloc(200)
	require.NoError(t, err)
	a.Free(p2)
}

func TestBoundedAllocatorOversizedRequest(t *testing.T) {
	a := pool.NewBoundedAllocator(nil, 64)
	_, err := a.Alloc(65)
	require.ErrorIs(t, err, api.ErrOutOfMemory)
}

func TestFreeListReuse(t *testing.T) {
	a := pool.NewFreeListAllocator()

	p1, err := a.Alloc(100)
	require.NoError(t, err)
	require.Len(t, p1, 100)
	require.Equal(t, 128, cap(p1)) // rounded to the 128-byte class
	p1[0] = 0xAB
	a.Free(p1)

	// Same class: the retained block is reused, zeroed.
	p2, err := a.Alloc(120)
	require.NoError(t, err)
	require.Len(t, p2, 120)
	require.Equal(t, byte(0), p2[0])
	require.Equal(t, int64(1), a.Stats().TotalAlloc, "reuse must not allocate")
}

func TestFreeListZeroSize(t *testing.T) {
	a := pool.NewFreeListAllocator()
	p, err := a.Alloc(0)
	require.NoError(t, err)
	require.Len(t, p, 0)
}

func TestFreeListDropsForeignBlocks(t *testing.T) {
	a := pool.NewFreeListAllocator()
	// Capacity 100 is not a class of this allocator; Free must not retain it.
	a.Free(make([]byte, 100))
	require.Equal(t, int64(0), a.Stats().TotalFree)
}
