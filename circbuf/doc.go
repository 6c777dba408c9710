// Package circbuf
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity byte ring buffer for streaming data between a producer
// and a consumer without per-byte allocation.
//
// Locking note: no locking is required while only one writer and one
// reader use the buffer. The writer advances only the write cursor and
// the reader advances only the read cursor; both cursors are accessed
// atomically, so each side observes at worst a conservative occupancy or
// free-space estimate, never an out-of-bounds one. With multiple writers
// only the writers need mutual exclusion among themselves, and vice versa
// for multiple readers. Overwrite and Resize move both cursors and need
// exclusive access for the duration of the call.
//
// All operations are non-blocking and bounded: a full buffer truncates a
// write, an empty buffer truncates a read, and the caller detects either
// by comparing the returned count against the request.
package circbuf
