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

// Hover returns documentation for the symbol at pos, nil when there is
// nothing to say.
func (e *Engine) Hover(sheet *Stylesheet, pos protocol.Position) *protocol.Hover {
	node := sheet.nodeAt(pos)
	if node == nil {
		return nil
	}

	switch node.Type() {
	case cssNodePropertyName:
		prop := LookupProperty(sheet.text(node))
		if prop == nil {
			return nil
		}
		r := nodeRange(node)
		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: fmt.Sprintf("**%s**\n\n%s", prop.Name, prop.Description),
			},
			Range: &r,
		}

	case cssNodePlainValue:
		name := sheet.text(node)
		hex, ok := namedColors[name]
		if !ok {
			return nil
		}
		r := nodeRange(node)
		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: fmt.Sprintf("**%s** (%s)", name, hex),
			},
			Range: &r,
		}
	}

	return nil
}
