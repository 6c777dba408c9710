// File: circbuf/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package circbuf

import "github.com/momentics/hioload-circbuf/api"

type config struct {
	alloc api.Allocator
}

// Option customizes buffer construction.
type Option func(*config)

// WithAllocator selects the allocator used for owned storage (New and
// Resize). A nil allocator falls back to pool.Default.
func WithAllocator(a api.Allocator) Option {
	return func(c *config) { c.alloc = a }
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
