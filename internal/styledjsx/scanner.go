// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package styledjsx

import "regexp"

// candidatePattern matches the textual openers of styled-jsx regions:
// a `<style jsx>` opening tag (with an optional `global` token on either
// side of `jsx`) or a css/css.global/css.resolve tagged-template opener.
//
// The pattern is shared across calls; Go's regexp matching keeps no
// cursor state between calls, so concurrent and repeated scans cannot
// observe each other.
var candidatePattern = regexp.MustCompile(
	"<style\\s+(?:global\\s+)?jsx(?:\\s+global)?[^>]*>" +
		"|css(?:\\.global|\\.resolve)?\\s*`")

// ScanCandidates finds approximate start offsets of likely styled-jsx
// regions in text.
//
// Description:
//
//	A cheap regex pass used as a pre-filter before the full parse. Each
//	returned offset is the byte offset just past one pattern match, in
//	ascending order. False positives are filtered later by the AST
//	locator; a document with no hits skips parsing entirely.
//
// Outputs:
//
//	[]int - Match-end offsets, empty (nil) when the document contains no
//	        styled-jsx markers at all.
func ScanCandidates(text string) []int {
	matches := candidatePattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}
	offsets := make([]int, 0, len(matches))
	for _, m := range matches {
		offsets = append(offsets, m[1])
	}
	return offsets
}
