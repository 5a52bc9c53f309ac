// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package cache

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SferaDev/vscode-styled-jsx-languageserver/internal/cssls"
)

// countingParser wraps the real engine and counts parse calls.
func countingParser(t *testing.T) (ParseFunc, *int64) {
	t.Helper()
	engine := cssls.NewEngine()
	var calls int64
	return func(ctx context.Context, text string) (*cssls.Stylesheet, error) {
		atomic.AddInt64(&calls, 1)
		return engine.Parse(ctx, text)
	}, &calls
}

func TestCache_HitOnSameVersion(t *testing.T) {
	cache := New(WithDisposalDelay(0))
	parse, calls := countingParser(t)
	ctx := context.Background()

	first, err := cache.Get(ctx, "file:///a.jsx", 1, ".a{}", parse)
	require.NoError(t, err)
	second, err := cache.Get(ctx, "file:///a.jsx", 1, ".a{}", parse)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int64(1), atomic.LoadInt64(calls))

	hits, misses := cache.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestCache_NewVersionIsMiss(t *testing.T) {
	cache := New(WithDisposalDelay(0))
	parse, calls := countingParser(t)
	ctx := context.Background()

	_, err := cache.Get(ctx, "file:///a.jsx", 1, ".a{}", parse)
	require.NoError(t, err)
	_, err = cache.Get(ctx, "file:///a.jsx", 2, ".a{color:red}", parse)
	require.NoError(t, err)

	assert.Equal(t, int64(2), atomic.LoadInt64(calls))
	assert.Equal(t, 1, cache.Len(), "new version replaces, not accumulates")
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := New(WithMaxEntries(2), WithDisposalDelay(0))
	parse, calls := countingParser(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		uri := fmt.Sprintf("file:///%d.jsx", i)
		_, err := cache.Get(ctx, uri, 1, ".a{}", parse)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, cache.Len())

	// Entry 0 was evicted; fetching it parses again.
	_, err := cache.Get(ctx, "file:///0.jsx", 1, ".a{}", parse)
	require.NoError(t, err)
	assert.Equal(t, int64(4), atomic.LoadInt64(calls))
}

func TestCache_Invalidate(t *testing.T) {
	cache := New(WithDisposalDelay(0))
	parse, calls := countingParser(t)
	ctx := context.Background()

	_, err := cache.Get(ctx, "file:///a.jsx", 1, ".a{}", parse)
	require.NoError(t, err)
	cache.Invalidate("file:///a.jsx")
	assert.Equal(t, 0, cache.Len())

	_, err = cache.Get(ctx, "file:///a.jsx", 1, ".a{}", parse)
	require.NoError(t, err)
	assert.Equal(t, int64(2), atomic.LoadInt64(calls))
}

func TestCache_ParseErrorIsNotCached(t *testing.T) {
	cache := New(WithDisposalDelay(0))
	ctx := context.Background()

	failing := func(ctx context.Context, text string) (*cssls.Stylesheet, error) {
		return nil, fmt.Errorf("boom")
	}
	_, err := cache.Get(ctx, "file:///a.jsx", 1, "x", failing)
	require.Error(t, err)
	assert.Equal(t, 0, cache.Len())
}
