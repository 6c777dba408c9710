// Package pool
// Author: momentics <momentics@gmail.com>
//
// Storage allocators for ring buffer backing regions.
// Implements heap, free-list (size-class), budget-bounded and mmap-backed
// allocation behind the api.Allocator contract, so init and resize paths
// can observe real out-of-memory outcomes on constrained targets.
// See alloc.go, freelist.go, bounded.go, mmap_linux.go for details.
package pool
