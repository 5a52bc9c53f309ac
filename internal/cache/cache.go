// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package cache provides an LRU cache of parsed stylesheets keyed by
// document URI and version.
package cache

import (
	"container/list"
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/SferaDev/vscode-styled-jsx-languageserver/internal/cssls"
)

// ParseFunc produces a stylesheet for the given CSS text.
type ParseFunc func(ctx context.Context, text string) (*cssls.Stylesheet, error)

// entry is one cached stylesheet.
type entry struct {
	uri        string
	version    int32
	sheet      *cssls.Stylesheet
	lruElement *list.Element
}

// Options configures a Cache.
type Options struct {
	// MaxEntries is the maximum number of cached stylesheets.
	// Default: 64
	MaxEntries int

	// DisposalDelay defers Close of evicted stylesheets, so requests
	// that raced the eviction finish against a live tree.
	// Default: 30 seconds
	DisposalDelay time.Duration
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		MaxEntries:    64,
		DisposalDelay: 30 * time.Second,
	}
}

// Option is a functional option for configuring Cache.
type Option func(*Options)

// WithMaxEntries sets the maximum number of cached stylesheets.
func WithMaxEntries(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxEntries = n
		}
	}
}

// WithDisposalDelay sets how long evicted stylesheets stay alive.
func WithDisposalDelay(d time.Duration) Option {
	return func(o *Options) {
		if d >= 0 {
			o.DisposalDelay = d
		}
	}
}

// Cache is an LRU cache of parsed stylesheets.
//
// # Cache Key
//
// Entries are keyed by URI. An entry is valid only for the exact document
// version it was parsed from; a lookup with a newer version is a miss and
// replaces the entry.
//
// # Thread Safety
//
// Safe for concurrent use. A singleflight group deduplicates concurrent
// parses of the same URI and version.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	lru     *list.List
	flight  singleflight.Group
	options Options

	hits   int64
	misses int64
}

// New creates a stylesheet cache.
func New(opts ...Option) *Cache {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Cache{
		entries: make(map[string]*entry),
		lru:     list.New(),
		options: options,
	}
}

// Get returns the stylesheet for uri at version, parsing text on a miss.
//
// Description:
//
//	Hit path: the cached entry matches uri and version exactly. Miss
//	path: text is parsed via parse, cached, and the previous entry for
//	uri (any version) is scheduled for disposal. Concurrent misses for
//	the same uri and version share one parse.
//
// Outputs:
//
//	*cssls.Stylesheet - The cached or freshly parsed stylesheet. Owned
//	                    by the cache; callers must not Close it.
//	error             - Parse failure, wrapped.
func (c *Cache) Get(ctx context.Context, uri string, version int32, text string, parse ParseFunc) (*cssls.Stylesheet, error) {
	c.mu.Lock()
	if e, ok := c.entries[uri]; ok && e.version == version {
		c.lru.MoveToFront(e.lruElement)
		c.mu.Unlock()
		atomic.AddInt64(&c.hits, 1)
		return e.sheet, nil
	}
	c.mu.Unlock()
	atomic.AddInt64(&c.misses, 1)

	key := fmt.Sprintf("%s@%d", uri, version)
	sheet, err, _ := c.flight.Do(key, func() (any, error) {
		sheet, err := parse(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", uri, err)
		}
		c.put(uri, version, sheet)
		return sheet, nil
	})
	if err != nil {
		return nil, err
	}
	return sheet.(*cssls.Stylesheet), nil
}

// put inserts a parsed stylesheet, evicting as needed.
func (c *Cache) put(uri string, version int32, sheet *cssls.Stylesheet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.entries[uri]; ok {
		c.lru.Remove(old.lruElement)
		c.dispose(old.sheet)
	}

	e := &entry{uri: uri, version: version, sheet: sheet}
	e.lruElement = c.lru.PushFront(e)
	c.entries[uri] = e

	for len(c.entries) > c.options.MaxEntries {
		oldest := c.lru.Back()
		if oldest == nil {
			break
		}
		victim := oldest.Value.(*entry)
		c.lru.Remove(oldest)
		delete(c.entries, victim.uri)
		c.dispose(victim.sheet)
	}
}

// Invalidate removes the entry for uri, typically on didClose.
func (c *Cache) Invalidate(uri string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[uri]; ok {
		c.lru.Remove(e.lruElement)
		delete(c.entries, uri)
		c.dispose(e.sheet)
	}
}

// dispose schedules an evicted stylesheet's Close. Callers hold c.mu.
func (c *Cache) dispose(sheet *cssls.Stylesheet) {
	if c.options.DisposalDelay == 0 {
		sheet.Close()
		return
	}
	time.AfterFunc(c.options.DisposalDelay, sheet.Close)
}

// Stats reports hit and miss counts.
func (c *Cache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
