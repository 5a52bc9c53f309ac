// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package cssls

import (
	"context"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, text string) *Stylesheet {
	t.Helper()
	sheet, err := NewEngine().Parse(context.Background(), text)
	require.NoError(t, err)
	t.Cleanup(sheet.Close)
	return sheet
}

func TestParse_ValidCSS(t *testing.T) {
	sheet := parse(t, ".a { color: red; }")
	require.NotNil(t, sheet.Root())
	assert.Equal(t, cssNodeStylesheet, sheet.Root().Type())
	assert.False(t, sheet.Root().HasError())
}

func TestParse_BrokenCSSStillYieldsTree(t *testing.T) {
	sheet := parse(t, ".a { color }")
	require.NotNil(t, sheet.Root())
	assert.True(t, sheet.Root().HasError())
}

func TestParse_RejectsInvalidUTF8(t *testing.T) {
	_, err := NewEngine().Parse(context.Background(), string([]byte{0xff, 0xfe}))
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestOffsetAt(t *testing.T) {
	text := "abc\ndef\n"
	tests := []struct {
		name string
		pos  protocol.Position
		want int
	}{
		{"origin", protocol.Position{Line: 0, Character: 0}, 0},
		{"mid first line", protocol.Position{Line: 0, Character: 2}, 2},
		{"start second line", protocol.Position{Line: 1, Character: 0}, 4},
		{"clamped past line end", protocol.Position{Line: 0, Character: 99}, 3},
		{"clamped past document", protocol.Position{Line: 9, Character: 0}, len(text)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, offsetAt(text, tt.pos))
		})
	}
}

func TestPositionAt_RoundTrip(t *testing.T) {
	text := "abc\ndef\nghi"
	for offset := 0; offset <= len(text); offset++ {
		if offset < len(text) && text[offset] == '\n' {
			continue
		}
		pos := positionAt(text, offset)
		assert.Equal(t, offset, offsetAt(text, pos), "offset %d", offset)
	}
}
