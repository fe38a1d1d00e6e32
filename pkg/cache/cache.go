// Package cache provides a thread-safe cache for parsed Monkey programs.
//
// Parsing is pure: the same source always yields the same program and the
// same error list, so both are cached together. The cache avoids re-lexing
// and re-parsing the same source string on every call, which is valuable
// when the same snippet is parsed repeatedly, as in a REPL session or an
// embedding host that receives recurring queries.
//
// The cache keeps two generations of entries, hot and cold. Writes go to
// the hot generation; when it reaches capacity it becomes the cold
// generation and a fresh hot one starts, discarding the previous cold
// entries in bulk. A hit in the cold generation moves the entry back to
// hot. Sources seen recently therefore survive rotation while one-shot
// lines age out, which matches REPL reuse patterns without bookkeeping
// per-entry access order.
//
// # Example
//
//	c := cache.New(1024)
//	program, errs := c.GetOrParse(src, func() (*ast.Program, []string) {
//	    return parser.Parse(src)
//	})
package cache

import (
	"sync"

	"github.com/sandrolain/gomonkey/pkg/ast"
)

// result is a cached parse outcome.
type result struct {
	program *ast.Program
	errs    []string
}

// Cache is a thread-safe, two-generation cache of parse results. Each
// generation holds at most capacity entries, so the cache retains at most
// twice its capacity; eviction happens a generation at a time.
//
// Safe for concurrent use by multiple goroutines.
type Cache struct {
	mu       sync.Mutex
	capacity int
	hot      map[string]result
	cold     map[string]result
}

// New creates a cache whose generations hold up to capacity entries each.
// capacity must be > 0; if <= 0, a default of 256 is used.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = 256
	}
	return &Cache{
		capacity: capacity,
		hot:      make(map[string]result, capacity),
	}
}

// Get retrieves a parse result from the cache.
// A hit in the cold generation promotes the entry back to hot.
// Returns (nil, nil, false) if the key is not present.
func (c *Cache) Get(key string) (*ast.Program, []string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if r, ok := c.hot[key]; ok {
		return r.program, r.errs, true
	}
	if r, ok := c.cold[key]; ok {
		delete(c.cold, key)
		c.insertLocked(key, r)
		return r.program, r.errs, true
	}
	return nil, nil, false
}

// Set inserts or replaces a parse result in the cache.
func (c *Cache) Set(key string, program *ast.Program, errs []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.insertLocked(key, result{program: program, errs: errs})
}

// insertLocked writes key into the hot generation, rotating generations
// first when hot is full. The generations stay disjoint: a key written to
// hot is removed from cold. Must be called with c.mu held.
func (c *Cache) insertLocked(key string, r result) {
	if _, ok := c.hot[key]; !ok && len(c.hot) >= c.capacity {
		c.cold = c.hot
		c.hot = make(map[string]result, c.capacity)
	}
	delete(c.cold, key)
	c.hot[key] = r
}

// GetOrParse retrieves the parse result for key from cache, or calls
// parse() to create it, caches the result, and returns it.
// Errored results are cached too: the parser always returns a program, and
// re-parsing a known-bad source would reproduce the same error list.
func (c *Cache) GetOrParse(key string, parse func() (*ast.Program, []string)) (*ast.Program, []string) {
	if program, errs, ok := c.Get(key); ok {
		return program, errs
	}
	program, errs := parse()
	c.Set(key, program, errs)
	return program, errs
}

// Len returns the number of entries currently cached across both
// generations.
func (c *Cache) Len() int {
	c.mu.Lock()
	n := len(c.hot) + len(c.cold)
	c.mu.Unlock()
	return n
}

// Clear removes all entries from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hot = make(map[string]result, c.capacity)
	c.cold = nil
}
