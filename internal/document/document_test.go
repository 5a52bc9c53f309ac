// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package document

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const uri = protocol.DocumentUri("file:///app/component.jsx")

func TestStore_OpenGetCloseCycle(t *testing.T) {
	store := NewStore()

	store.Open(uri, "javascriptreact", 1, "const a = 1;")
	doc, err := store.Get(uri)
	require.NoError(t, err)
	assert.Equal(t, int32(1), doc.Version)
	assert.Equal(t, "javascriptreact", doc.LanguageID)
	assert.Equal(t, 1, store.Len())

	store.Close(uri)
	_, err = store.Get(uri)
	assert.ErrorIs(t, err, ErrNotOpen)
	assert.Equal(t, 0, store.Len())
}

func TestStore_UpdateKeepsLanguageID(t *testing.T) {
	store := NewStore()
	store.Open(uri, "typescriptreact", 1, "old")

	doc, err := store.Update(uri, 2, "new")
	require.NoError(t, err)
	assert.Equal(t, int32(2), doc.Version)
	assert.Equal(t, "new", doc.Text)
	assert.Equal(t, "typescriptreact", doc.LanguageID)
}

func TestStore_UpdateUnopenedFails(t *testing.T) {
	_, err := NewStore().Update(uri, 1, "x")
	assert.ErrorIs(t, err, ErrNotOpen)
}

func TestDocument_OffsetAt(t *testing.T) {
	doc := &Document{Text: "ab\ncdef\n"}
	tests := []struct {
		name string
		pos  protocol.Position
		want int
	}{
		{"origin", protocol.Position{Line: 0, Character: 0}, 0},
		{"second line", protocol.Position{Line: 1, Character: 2}, 5},
		{"clamped to line end", protocol.Position{Line: 0, Character: 50}, 2},
		{"clamped to document end", protocol.Position{Line: 8, Character: 0}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, doc.OffsetAt(tt.pos))
		})
	}
}

func TestDocument_PositionAtRoundTrip(t *testing.T) {
	doc := &Document{Text: "ab\ncdef\ng"}
	for offset := 0; offset <= len(doc.Text); offset++ {
		if offset < len(doc.Text) && doc.Text[offset] == '\n' {
			continue
		}
		pos := doc.PositionAt(offset)
		assert.Equal(t, offset, doc.OffsetAt(pos), "offset %d", offset)
	}
}

func TestDocument_Source(t *testing.T) {
	doc := &Document{URI: uri, LanguageID: "typescript", Version: 3, Text: "css`x`"}
	src := doc.Source()
	assert.Equal(t, string(uri), src.URI)
	assert.Equal(t, int32(3), src.Version)
	assert.Equal(t, "typescript", src.LanguageID)
	assert.Equal(t, "css`x`", src.Text)
}
