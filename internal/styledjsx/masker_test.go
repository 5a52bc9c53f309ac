// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package styledjsx

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestMask_KeepsCSSAndBlanksEverythingElse(t *testing.T) {
	text := "const x = <style jsx>{css`.a{color:red}`}</style>;"
	ranges := locate(t, text, DialectJSX)
	require.Len(t, ranges, 1)

	masked := Mask(text, ranges)
	require.Len(t, masked, len(text))
	assert.Contains(t, masked, ".a{color:red}")

	for i := 0; i < len(masked); i++ {
		if ranges[0].Contains(i) || i == ranges[0].Start {
			continue
		}
		assert.Equalf(t, byte(' '), masked[i], "byte %d (%q) should be blanked", i, text[i])
	}
}

func TestMask_InterpolationIsBlanked(t *testing.T) {
	text := "css`.b { color: ${color} }`"
	ranges := locate(t, text, DialectJS)
	require.Len(t, ranges, 1)

	masked := Mask(text, ranges)
	require.Len(t, masked, len(text))
	assert.NotContains(t, masked, "${")
	assert.NotContains(t, masked, "color}")
	assert.Contains(t, masked, ".b { color:")
	// Fixed characters after the interpolation survive.
	assert.Equal(t, byte('}'), masked[len(masked)-2])
}

func TestMask_LogicalOperatorsAreBlanked(t *testing.T) {
	text := "css`.c { color: red; ${large && 'font-size: 2em'} }`"
	ranges := locate(t, text, DialectJS)
	require.Len(t, ranges, 1)

	masked := Mask(text, ranges)
	require.Len(t, masked, len(text))
	assert.NotContains(t, masked, "&&")
	assert.Contains(t, masked, ".c { color: red;")
}

// Greedy interpolation matching runs to the last } on the line. Two
// interpolations on one line are blanked as one span, fixed text between
// them included. Accepted approximation, asserted so nobody "fixes" it
// without noticing.
func TestMask_GreedyInterpolationOvershoot(t *testing.T) {
	text := "css`.d { margin: ${a}px ${b}px; }`"
	ranges := locate(t, text, DialectJS)
	require.Len(t, ranges, 1)

	masked := Mask(text, ranges)
	require.Len(t, masked, len(text))
	assert.NotContains(t, masked, "px ${b}")
	assert.Contains(t, masked, ".d { margin: ")
}

func TestMask_TwoTemplatesConcatenation(t *testing.T) {
	text := "css`.a{}`;\nconst n = 1;\ncss`.b{}`;\n"
	ranges := locate(t, text, DialectJS)
	require.Len(t, ranges, 2)

	masked := Mask(text, ranges)
	require.Len(t, masked, len(text))
	assert.Contains(t, masked, ".a{}")
	assert.Contains(t, masked, ".b{}")
	// The gap between templates is blank except for newlines.
	gap := masked[ranges[0].End+1 : ranges[1].Start-1]
	assert.Equal(t, "", strings.Trim(gap, " \n`;"))
}

func TestMask_NewlinesPreserved(t *testing.T) {
	text := "const a = 1;\nconst s = css`.a {\n  color: red;\n}`;\n"
	ranges := locate(t, text, DialectJS)
	require.Len(t, ranges, 1)

	masked := Mask(text, ranges)
	assert.Equal(t, strings.Count(text, "\n"), strings.Count(masked, "\n"))
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			assert.Equal(t, byte('\n'), masked[i])
		}
	}
}

func TestMask_PanicsOnEmptyRangeList(t *testing.T) {
	assert.Panics(t, func() { Mask("const a = 1;", nil) })
}

// Property: for any generated document and any located ranges, masking
// preserves length, blanks everything outside ranges, and keeps bytes
// inside ranges unless they belong to an embedded-JS span.
func TestMask_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 4).Draw(t, "templates")
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteString(rapid.StringMatching(`[a-z ;=\n]{0,20}`).Draw(t, "filler"))
			b.WriteString("css`")
			b.WriteString(rapid.StringMatching(`[a-z.{}:; \n-]{0,30}`).Draw(t, "css"))
			b.WriteString("`;")
		}
		b.WriteString(rapid.StringMatching(`[a-z ;\n]{0,10}`).Draw(t, "tail"))
		text := b.String()

		ranges, err := LocateTemplates(context.Background(), text, DialectJS)
		if err != nil || len(ranges) == 0 {
			t.Skip("no templates located")
		}
		sort.Slice(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })

		masked := Mask(text, ranges)
		if len(masked) != len(text) {
			t.Fatalf("length changed: %d != %d", len(masked), len(text))
		}

		inside := func(i int) bool {
			for _, r := range ranges {
				if i >= r.Start && i < r.End {
					return true
				}
			}
			return false
		}
		for i := 0; i < len(text); i++ {
			if !inside(i) && masked[i] != ' ' && masked[i] != '\n' {
				t.Fatalf("byte %d outside ranges not whitespace: %q", i, masked[i])
			}
			if inside(i) && masked[i] != text[i] && masked[i] != ' ' {
				t.Fatalf("byte %d inside range rewritten to %q", i, masked[i])
			}
		}
	})
}
