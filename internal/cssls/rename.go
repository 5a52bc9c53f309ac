// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package cssls

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// DoRename renames every occurrence of the symbol at pos to newName.
// Returns nil when there is no renameable symbol at the position.
func (e *Engine) DoRename(sheet *Stylesheet, uri protocol.DocumentUri, pos protocol.Position, newName string) *protocol.WorkspaceEdit {
	symbol := symbolAt(sheet, pos)
	if symbol == "" {
		return nil
	}

	occurrences := findOccurrences(sheet, symbol)
	if len(occurrences) == 0 {
		return nil
	}

	edits := make([]protocol.TextEdit, 0, len(occurrences))
	for _, occ := range occurrences {
		edits = append(edits, protocol.TextEdit{
			Range:   nodeRange(occ.node),
			NewText: newName,
		})
	}
	return &protocol.WorkspaceEdit{
		Changes: map[protocol.DocumentUri][]protocol.TextEdit{uri: edits},
	}
}
