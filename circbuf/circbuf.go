// File: circbuf/circbuf.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer lifecycle and occupancy queries. Cursors are monotonically
// increasing and never reduced modulo capacity; only their difference and
// their value modulo capacity carry meaning. This disambiguates full from
// empty without a reserved byte, and stays correct across uint64 overflow
// because occupancy is computed with wrapping subtraction.

package circbuf

import (
	"sync/atomic"

	"github.com/momentics/hioload-circbuf/api"
	"github.com/momentics/hioload-circbuf/pool"
)

// Buffer is a fixed-capacity byte ring over owned or borrowed storage.
// Safe for one concurrent producer and one concurrent consumer without
// external synchronization; see the package documentation for the full
// concurrency contract.
type Buffer struct {
	data     []byte
	external bool
	alloc    api.Allocator

	head atomic.Uint64 // write cursor, producer-owned
	_    [64]byte      // Padding for hot/cold separation
	tail atomic.Uint64 // read cursor, consumer-owned
	_    [64]byte      // Padding to separate tail from other data
}

// New allocates a buffer of 'size' bytes through the configured allocator
// (pool.Default unless WithAllocator overrides it). size == 0 is a valid
// buffer that can never hold data.
func New(size int, opts ...Option) (*Buffer, error) {
	if size < 0 {
		return nil, api.ErrInvalidArgument
	}
	cfg := applyOptions(opts)
	b := &Buffer{alloc: cfg.alloc}
	if size > 0 {
		data, err := b.allocator().Alloc(size)
		if err != nil {
			return nil, err
		}
		b.data = data
	}
	return b, nil
}

// Wrap binds a buffer to caller-supplied storage, e.g. a preallocated or
// device-backed region. The storage lifetime belongs to the caller; the
// buffer never frees it and Resize is rejected. Empty storage is an error.
func Wrap(storage []byte, opts ...Option) (*Buffer, error) {
	if len(storage) == 0 {
		return nil, api.ErrInvalidArgument
	}
	cfg := applyOptions(opts)
	return &Buffer{data: storage, external: true, alloc: cfg.alloc}, nil
}

func (b *Buffer) allocator() api.Allocator {
	if b.alloc != nil {
		return b.alloc
	}
	return pool.Default()
}

// Cap returns the total byte capacity, or 0 for a nil buffer.
func (b *Buffer) Cap() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Len returns the number of unread bytes, or 0 for a nil buffer.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return int(b.head.Load() - b.tail.Load())
}

// Free returns the bytes available for writing without eviction.
func (b *Buffer) Free() int {
	return b.Cap() - b.Len()
}

// IsEmpty reports whether the buffer holds no unread bytes.
func (b *Buffer) IsEmpty() bool {
	return b.Len() == 0
}

// IsFull reports whether the buffer has no free space.
func (b *Buffer) IsFull() bool {
	return b.Free() == 0
}

// Reset discards the entire buffer content. Underlying bytes are not
// wiped; both cursors restart at zero.
func (b *Buffer) Reset() {
	if b == nil {
		return
	}
	b.head.Store(0)
	b.tail.Store(0)
}

// Release returns owned storage to its allocator and detaches the buffer.
// Borrowed storage is left untouched. Safe on nil and idempotent.
func (b *Buffer) Release() {
	if b == nil {
		return
	}
	if !b.external && b.data != nil {
		b.allocator().Free(b.data)
	}
	b.data = nil
	b.head.Store(0)
	b.tail.Store(0)
}
