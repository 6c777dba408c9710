// File: pool/default.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"

	"github.com/momentics/hioload-circbuf/api"
)

var (
	defaultOnce  sync.Once
	defaultAlloc api.Allocator
)

// Default returns a process-wide allocator so all buffers reuse the same
// free lists instead of fragmenting allocations.
func Default() api.Allocator {
	defaultOnce.Do(func() {
		defaultAlloc = NewFreeListAllocator()
	})
	return defaultAlloc
}
