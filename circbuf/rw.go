// File: circbuf/rw.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Data movement. Every operation clamps the request to what the buffer
// actually holds (or can accept) and performs at most two contiguous
// copies: from the physical offset to the end of storage, then the
// remainder from the start. Partial counts are a normal outcome, not an
// error; callers compare the return against the request.

package circbuf

import "github.com/momentics/hioload-circbuf/api"

// Peek copies up to len(dst) unread bytes into dst without consuming
// them. Returns the number of bytes copied, clamped to Len().
func (b *Buffer) Peek(dst []byte) (int, error) {
	if b == nil {
		return 0, api.ErrInvalidArgument
	}
	size := uint64(len(b.data))
	if size == 0 {
		return 0, nil
	}
	tail := b.tail.Load()
	used := b.head.Load() - tail

	n := uint64(len(dst))
	if n > used {
		n = used
	}

	off := tail % size
	first := size - off
	if first > n {
		first = n
	}
	copy(dst, b.data[off:off+first])
	copy(dst[first:], b.data[:n-first])

	return int(n), nil
}

// Read copies up to len(dst) unread bytes into dst and consumes them.
func (b *Buffer) Read(dst []byte) (int, error) {
	n, err := b.Peek(dst)
	if err != nil {
		return 0, err
	}
	b.tail.Add(uint64(n))
	return n, nil
}

// Skip consumes up to n unread bytes without copying them. Returns the
// number of bytes actually skipped.
func (b *Buffer) Skip(n int) (int, error) {
	if b == nil || n < 0 {
		return 0, api.ErrInvalidArgument
	}
	tail := b.tail.Load()
	used := b.head.Load() - tail

	k := uint64(n)
	if k > used {
		k = used
	}
	b.tail.Store(tail + k)
	return int(k), nil
}

// Write copies up to len(src) bytes into the buffer, clamped to Free().
// Unread data is never overwritten; excess input is dropped and detected
// by comparing the returned count against len(src).
func (b *Buffer) Write(src []byte) (int, error) {
	if b == nil {
		return 0, api.ErrInvalidArgument
	}
	size := uint64(len(b.data))
	if size == 0 {
		return 0, nil
	}
	head := b.head.Load()
	space := size - (head - b.tail.Load())

	n := uint64(len(src))
	if n > space {
		n = space
	}

	off := head % size
	first := size - off
	if first > n {
		first = n
	}
	copy(b.data[off:off+first], src[:first])
	copy(b.data, src[first:n])

	b.head.Store(head + n)
	return int(n), nil
}

// Overwrite writes src unconditionally, evicting the oldest unread bytes
// when free space is insufficient. When src exceeds the capacity only its
// last Cap() bytes are kept, so the most recent data always wins. Returns
// the number of evicted bytes (0 when the write fit).
//
// Overwrite moves both cursors and is therefore unsafe under the
// single-producer/single-consumer discipline: the caller must hold an
// exclusive lock or otherwise guarantee no concurrent access.
func (b *Buffer) Overwrite(src []byte) (int, error) {
	if b == nil {
		return 0, api.ErrInvalidArgument
	}
	size := uint64(len(b.data))
	if size == 0 {
		return 0, nil
	}
	if uint64(len(src)) > size {
		src = src[uint64(len(src))-size:]
	}

	head := b.head.Load()
	tail := b.tail.Load()

	n := uint64(len(src))
	var evicted uint64
	if space := size - (head - tail); n > space {
		evicted = n - space
	}

	off := head % size
	first := size - off
	if first > n {
		first = n
	}
	copy(b.data[off:off+first], src[:first])
	copy(b.data, src[first:])

	b.head.Store(head + n)
	if evicted > 0 {
		b.tail.Store(tail + evicted)
	}
	return int(evicted), nil
}
