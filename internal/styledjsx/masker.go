// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package styledjsx

import "regexp"

// embeddedJSPattern matches the JavaScript residue inside a template body
// that the CSS engine must not see: a ${...} interpolation span or a bare
// && / || operator.
//
// The interpolation alternative is deliberately greedy: it runs to the
// last } on the scanned line, so several interpolations (or a stray }) on
// one line are blanked as a single span. That overshoot is a long-standing
// accepted approximation, not a bug to fix silently; balanced-brace
// scanning would change masked output for documents that relied on it.
var embeddedJSPattern = regexp.MustCompile(`\$\{.*\}|&&|\|\|`)

// Mask builds the synthetic CSS text for a document: identical in length
// to text, with everything outside the template ranges blanked and the
// template bodies kept verbatim except for embedded JavaScript.
//
// Description:
//
//	Bytes outside every range become spaces. Bytes inside a range are
//	copied as-is, then any ${...} interpolation or &&/|| operator within
//	the range is blanked byte-by-byte. Newlines are preserved everywhere
//	so line/character positions survive the round trip; a newline is
//	already whitespace.
//
// Inputs:
//
//	text   - Original document content.
//	ranges - Template ranges from LocateTemplates: non-empty, ascending,
//	         non-overlapping.
//
// Outputs:
//
//	string - Masked text with len(masked) == len(text), always.
//
// Mask panics when ranges is empty. That is a programming invariant
// violation, not an input condition: callers must check extraction
// succeeded before masking.
func Mask(text string, ranges []Range) string {
	if len(ranges) == 0 {
		panic("styledjsx: Mask called with an empty range list")
	}

	buf := []byte(text)
	blank(buf, 0, ranges[0].Start)
	for i, r := range ranges {
		if i > 0 {
			blank(buf, ranges[i-1].End, r.Start)
		}
		maskEmbeddedJS(buf, r)
	}
	blank(buf, ranges[len(ranges)-1].End, len(buf))
	return string(buf)
}

// blank replaces every byte in [from, to) with a space, keeping newlines.
func blank(buf []byte, from, to int) {
	for i := from; i < to; i++ {
		if buf[i] != '\n' {
			buf[i] = ' '
		}
	}
}

// maskEmbeddedJS blanks interpolation and logical-operator spans inside
// one template range.
func maskEmbeddedJS(buf []byte, r Range) {
	body := buf[r.Start:r.End]
	for _, m := range embeddedJSPattern.FindAllIndex(body, -1) {
		blank(body, m[0], m[1])
	}
}
