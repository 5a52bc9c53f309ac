// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package cssls

import (
	"fmt"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// maxSuggestionDistance caps how far a typo may be from a known property
// before no fix is offered.
const maxSuggestionDistance = 2

// DoCodeActions offers quickfixes for the diagnostics in scope. The only
// fix today replaces an unknown property with its nearest known spelling.
func (e *Engine) DoCodeActions(sheet *Stylesheet, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) []protocol.CodeAction {
	actions := []protocol.CodeAction{}
	for _, diag := range diagnostics {
		if diag.Code == nil || diag.Code.Value != "unknownProperties" {
			continue
		}
		start := offsetAt(string(sheet.src), diag.Range.Start)
		end := offsetAt(string(sheet.src), diag.Range.End)
		if start >= end || end > len(sheet.src) {
			continue
		}
		misspelled := string(sheet.src[start:end])

		suggestion := nearestProperty(misspelled)
		if suggestion == "" {
			continue
		}

		diag := diag
		kind := protocol.CodeActionKindQuickFix
		actions = append(actions, protocol.CodeAction{
			Title:       fmt.Sprintf("Replace %q with %q", misspelled, suggestion),
			Kind:        &kind,
			Diagnostics: []protocol.Diagnostic{diag},
			Edit: &protocol.WorkspaceEdit{
				Changes: map[protocol.DocumentUri][]protocol.TextEdit{
					uri: {{Range: diag.Range, NewText: suggestion}},
				},
			},
		})
	}
	return actions
}

// nearestProperty returns the known property closest to name by edit
// distance, "" when nothing is close enough.
func nearestProperty(name string) string {
	best := ""
	bestDistance := maxSuggestionDistance + 1
	for i := range propertyTable {
		candidate := propertyTable[i].Name
		d := editDistance(name, candidate)
		if d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between two strings, computed
// with a rolling single-row table.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(a); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			current := row[j]
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			row[j] = min(row[j]+1, min(row[j-1]+1, prev+cost))
			prev = current
		}
	}
	return row[len(b)]
}
