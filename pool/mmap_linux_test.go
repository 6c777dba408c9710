//go:build linux

// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// mmap_linux_test.go — Mapping round trip and page rounding.
package pool_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-circbuf/pool"
)

func TestMmapAllocatorRoundTrip(t *testing.T) {
	a := pool.NewMmapAllocator()

	p, err := a.Alloc(100)
	require.NoError(t, err)
	require.Len(t, p, 100)
	require.Equal(t, 0, cap(p)%os.Getpagesize())

	// Region is writable and zeroed.
	for i := range p {
		require.Equal(t, byte(0), p[i])
		p[i] = byte(i)
	}

	a.Free(p)
	st := a.Stats()
	require.Equal(t, st.TotalAlloc, st.TotalFree)
}
