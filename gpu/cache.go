package gpu

import (
	"slices"
	"sync"
	"sync/atomic"
)

// ShaderCache memoizes CompileTransformShader results keyed by WGSL source.
// It is safe for concurrent use. The zero value is ready to use.
type ShaderCache struct {
	mu      sync.Mutex
	entries map[string][]uint32

	hits   atomic.Uint64
	misses atomic.Uint64
}

// CacheStats holds shader cache counters.
type CacheStats struct {
	Len    int
	Hits   uint64
	Misses uint64
}

// Compile returns the SPIR-V words for the configured source, compiling it
// on the first request. Each call returns its own copy, so callers may
// patch the words freely. Failed compilations are not cached.
//
// The compiler runs with the cache lock held so concurrent callers asking
// for the same source compile it once.
func (c *ShaderCache) Compile(opts ...Option) ([]uint32, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if words, ok := c.entries[o.source]; ok {
		c.hits.Add(1)
		return slices.Clone(words), nil
	}
	c.misses.Add(1)

	words, err := CompileTransformShader(opts...)
	if err != nil {
		return nil, err
	}
	if c.entries == nil {
		c.entries = make(map[string][]uint32)
	}
	c.entries[o.source] = words
	o.logger.Debug("cached transform shader", "entries", len(c.entries))
	return slices.Clone(words), nil
}

// Clear removes all cached modules.
func (c *ShaderCache) Clear() {
	c.mu.Lock()
	c.entries = nil
	c.mu.Unlock()
}

// Stats returns the current counters.
func (c *ShaderCache) Stats() CacheStats {
	c.mu.Lock()
	n := len(c.entries)
	c.mu.Unlock()
	return CacheStats{Len: n, Hits: c.hits.Load(), Misses: c.misses.Load()}
}
