// File: circbuf/resize.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package circbuf

import "github.com/momentics/hioload-circbuf/api"

// Resize rebinds the buffer to a freshly allocated region of 'size'
// bytes, preserving the unread payload. When size is smaller than the
// current occupancy the oldest excess bytes are dropped first, so the
// buffer always retains the most recent bytes that fit. On allocation
// failure the original buffer is left untouched.
//
// Resize fails with api.ErrInvalidArgument on borrowed storage: the
// engine does not own that region and must not reallocate it.
//
// Resize moves both cursors and requires exclusive access, like Overwrite.
func (b *Buffer) Resize(size int) error {
	if b == nil || b.external || size < 0 {
		return api.ErrInvalidArgument
	}

	var next []byte
	if size > 0 {
		var err error
		next, err = b.allocator().Alloc(size)
		if err != nil {
			return err
		}
	}

	used := int(b.head.Load() - b.tail.Load())
	if size < used {
		b.Skip(used - size)
		used = size
	}
	if used > 0 {
		b.Read(next[:used])
	}

	if b.data != nil {
		b.allocator().Free(b.data)
	}
	b.data = next
	b.tail.Store(0)
	b.head.Store(uint64(used))
	return nil
}
