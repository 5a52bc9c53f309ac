// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package styledjsx

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func locate(t *testing.T, text string, dialect Dialect) []Range {
	t.Helper()
	ranges, err := LocateTemplates(context.Background(), text, dialect)
	require.NoError(t, err)
	return ranges
}

func payload(text string, r Range) string {
	return text[r.Start:r.End]
}

func TestLocateTemplates_TaggedTemplate(t *testing.T) {
	text := "const styles = css`.a { color: red; }`;"
	ranges := locate(t, text, DialectJS)
	require.Len(t, ranges, 1)
	assert.Equal(t, ".a { color: red; }", payload(text, ranges[0]))
}

func TestLocateTemplates_TagVariants(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"global", "css.global`body { margin: 0 }`", "body { margin: 0 }"},
		{"resolve", "const s = css.resolve`.b {}`", ".b {}"},
		{"substring tag", "myCss`.c {}`", ".c {}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranges := locate(t, tt.text, DialectJS)
			require.Len(t, ranges, 1)
			assert.Equal(t, tt.want, payload(tt.text, ranges[0]))
		})
	}
}

func TestLocateTemplates_NonCSSTagDoesNotQualify(t *testing.T) {
	ranges := locate(t, "const s = sql`select 1`;", DialectJS)
	assert.Empty(t, ranges)
}

func TestLocateTemplates_UntaggedTemplateDoesNotQualify(t *testing.T) {
	ranges := locate(t, "const s = `.a { color: red }`;", DialectJS)
	assert.Empty(t, ranges)
}

// The full round trip from the specification: a <style jsx> element whose
// expression child is a css-tagged template.
func TestLocateTemplates_StyleJSXElement(t *testing.T) {
	text := "const x = <style jsx>{css`.a{color:red}`}</style>;"
	require.NotEmpty(t, ScanCandidates(text))

	ranges := locate(t, text, DialectJSX)
	require.Len(t, ranges, 1)
	assert.Equal(t, ".a{color:red}", payload(text, ranges[0]))
}

func TestLocateTemplates_StyleJSXWithBareTemplate(t *testing.T) {
	text := "const x = <style jsx>{`.a { color: blue; }`}</style>;"
	ranges := locate(t, text, DialectJSX)
	require.Len(t, ranges, 1)
	assert.Equal(t, ".a { color: blue; }", payload(text, ranges[0]))
}

func TestLocateTemplates_StyleJSXGlobalAttribute(t *testing.T) {
	text := "const x = <style jsx global>{`body { margin: 0 }`}</style>;"
	ranges := locate(t, text, DialectJSX)
	require.Len(t, ranges, 1)
	assert.Equal(t, "body { margin: 0 }", payload(text, ranges[0]))
}

func TestLocateTemplates_StyleWithoutJSXAttribute(t *testing.T) {
	text := "const x = <style>{`.a {}`}</style>;"
	ranges := locate(t, text, DialectJSX)
	assert.Empty(t, ranges)
}

func TestLocateTemplates_CommentsAreSkipped(t *testing.T) {
	text := "// css`.a { color: red }`\n/* css`.b {}` */\nconst a = 1;\n"
	ranges := locate(t, text, DialectJS)
	assert.Empty(t, ranges)
}

func TestLocateTemplates_EmptyAndTinyBodies(t *testing.T) {
	text := "css``; css`x`;"
	ranges := locate(t, text, DialectJS)
	require.Len(t, ranges, 2)
	assert.Equal(t, "", payload(text, ranges[0]))
	assert.Equal(t, "x", payload(text, ranges[1]))
}

func TestLocateTemplates_MultipleTemplatesInSourceOrder(t *testing.T) {
	text := "css`.a{}`;\nconst n = 3;\ncss`.b{}`;\n"
	ranges := locate(t, text, DialectJS)
	require.Len(t, ranges, 2)
	assert.Less(t, ranges[0].End, ranges[1].Start)
	assert.Equal(t, ".a{}", payload(text, ranges[0]))
	assert.Equal(t, ".b{}", payload(text, ranges[1]))
}

func TestLocateTemplates_TypeScriptDialects(t *testing.T) {
	ts := "const s: string = css`.a { color: red }`;"
	ranges := locate(t, ts, DialectTS)
	require.Len(t, ranges, 1)
	assert.Equal(t, ".a { color: red }", payload(ts, ranges[0]))

	tsx := "const x = <style jsx>{css`.b {}`}</style>;"
	ranges = locate(t, tsx, DialectTSX)
	require.Len(t, ranges, 1)
	assert.Equal(t, ".b {}", payload(tsx, ranges[0]))
}

// Malformed surrounding code must not break location: tree-sitter is
// error-tolerant and the walk never propagates a fault for bad syntax.
func TestLocateTemplates_MalformedSourceDoesNotFault(t *testing.T) {
	text := "function ( { ] const s = css`.a { color: red }` ;;;"
	ranges, err := LocateTemplates(context.Background(), text, DialectJS)
	require.NoError(t, err)
	if len(ranges) == 1 {
		assert.Equal(t, ".a { color: red }", payload(text, ranges[0]))
	}
}

func TestLocateTemplates_LargeDocument(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 500; i++ {
		b.WriteString("const filler = 1;\n")
	}
	b.WriteString("const s = css`.tail { color: red }`;\n")
	text := b.String()

	ranges := locate(t, text, DialectJS)
	require.Len(t, ranges, 1)
	assert.Equal(t, ".tail { color: red }", payload(text, ranges[0]))
}
