// Package rows caches the heights of virtualized list rows.
//
// Each row is described by a node.RootNode laid out for a given width. The
// cache remembers the height each row needs at the width it was last
// measured for, so a list can ask for row heights repeatedly (on scroll,
// on reload) without rerunning layout, and can precompute the heights of
// many rows on background goroutines.
package rows

import (
	"context"
	"sync"

	"github.com/grindlemire/go-frame/internal/layout"
	"github.com/grindlemire/go-frame/internal/node"
)

// entry is one row. mu serializes calculation of root and guards the
// measured fields.
type entry struct {
	mu       sync.Mutex
	root     *node.RootNode
	width    float64
	height   float64
	measured bool
}

// Cache maps row keys to their node trees and measured heights. It is safe
// for concurrent use: a row is measured by one goroutine at a time. A row's
// RootNode must not be calculated or installed outside the cache while the
// cache may be measuring it.
type Cache[K comparable] struct {
	mu      sync.Mutex // guards entries
	entries map[K]*entry
	workers int
}

// Option configures a Cache.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers sets how many goroutines Heights measures on. The default,
// 0, uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// New creates an empty cache.
func New[K comparable](opts ...Option) *Cache[K] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache[K]{entries: make(map[K]*entry), workers: o.workers}
}

// Put sets the node tree for key, dropping any height measured for the
// previous tree.
func (c *Cache[K]) Put(key K, root *node.RootNode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &entry{root: root}
}

// Root returns the node tree for key.
func (c *Cache[K]) Root(key K) (*node.RootNode, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.root, true
}

// Height returns the height of row key laid out at width, measuring it if
// it has not been measured at that width. It reports false for an unknown
// key.
func (c *Cache[K]) Height(key K, width float64) (float64, bool) {
	e, ok := c.entry(key)
	if !ok {
		return 0, false
	}
	return e.heightAt(width), true
}

// Heights returns the heights of keys at width, measuring the rows that
// need it concurrently. Unknown keys report a height of 0.
//
// Rows another goroutine is measuring, and rows replaced with Put while
// Heights runs, are measured afterwards one at a time.
func (c *Cache[K]) Heights(ctx context.Context, keys []K, width float64) ([]float64, error) {
	c.mu.Lock()
	var (
		claimed []*entry
		roots   []*node.RootNode
		seen    = make(map[*entry]bool)
	)
	for _, k := range keys {
		e, ok := c.entries[k]
		if !ok || seen[e] {
			continue
		}
		seen[e] = true
		if !e.mu.TryLock() {
			continue
		}
		if e.fresh(width) {
			e.mu.Unlock()
			continue
		}
		claimed = append(claimed, e)
		roots = append(roots, e.root)
	}
	c.mu.Unlock()

	sizes, err := node.MeasureAll(ctx, roots, target(width), c.workers)
	for i, e := range claimed {
		if err == nil {
			e.store(width, sizes[i])
		}
		e.mu.Unlock()
	}
	if err != nil {
		return nil, err
	}

	heights := make([]float64, len(keys))
	for i, k := range keys {
		if e, ok := c.entry(k); ok {
			heights[i] = e.heightAt(width)
		}
	}
	return heights, nil
}

// Invalidate drops the measured height of key so the next lookup measures
// it again.
func (c *Cache[K]) Invalidate(key K) {
	e, ok := c.entry(key)
	if !ok {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.measured = false
	e.root.Invalidate()
}

// Remove forgets key.
func (c *Cache[K]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Reset forgets every row.
func (c *Cache[K]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Len returns the number of rows.
func (c *Cache[K]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// target is the size a row is laid out for: the list's width and an
// unbounded height.
func target(width float64) layout.Size {
	return layout.Size{Width: width, Height: layout.MaxExtent}
}

func (c *Cache[K]) entry(key K) (*entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	return e, ok
}

func (e *entry) heightAt(width float64) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.fresh(width) {
		e.store(width, e.root.Calculate(target(width)))
	}
	return e.height
}

func (e *entry) fresh(width float64) bool {
	return e.measured && layout.NearlyEqual(e.width, width, node.Epsilon)
}

func (e *entry) store(width float64, s layout.Size) {
	e.width = width
	e.height = s.Height
	e.measured = true
}
