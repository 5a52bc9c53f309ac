// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package cssls

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// FindSymbols lists the stylesheet's rule selectors, custom property
// declarations, keyframes and media statements as flat document symbols.
func (e *Engine) FindSymbols(sheet *Stylesheet, uri protocol.DocumentUri) []protocol.SymbolInformation {
	symbols := []protocol.SymbolInformation{}
	root := sheet.Root()
	if root == nil {
		return symbols
	}

	var walk func(node *sitter.Node)
	walk = func(node *sitter.Node) {
		switch node.Type() {
		case cssNodeRuleSet:
			if selectors := childOfType(node, cssNodeSelectors); selectors != nil {
				symbols = append(symbols, symbolInfo(
					sheet.text(selectors), protocol.SymbolKindClass, node, uri))
			}

		case cssNodeDeclaration:
			if name := declarationProperty(sheet, node); name != nil {
				if text := sheet.text(name); strings.HasPrefix(text, "--") {
					symbols = append(symbols, symbolInfo(
						text, protocol.SymbolKindVariable, node, uri))
				}
			}

		case cssNodeKeyframes:
			label := "@keyframes"
			if name := childOfType(node, cssNodeKeyframesName); name != nil {
				label += " " + sheet.text(name)
			}
			symbols = append(symbols, symbolInfo(label, protocol.SymbolKindFunction, node, uri))

		case cssNodeMediaStatement:
			label := strings.SplitN(sheet.text(node), "{", 2)[0]
			symbols = append(symbols, symbolInfo(
				strings.TrimSpace(label), protocol.SymbolKindModule, node, uri))
		}

		for i := 0; i < int(node.NamedChildCount()); i++ {
			walk(node.NamedChild(i))
		}
	}
	walk(root)

	return symbols
}

func symbolInfo(name string, kind protocol.SymbolKind, node *sitter.Node, uri protocol.DocumentUri) protocol.SymbolInformation {
	return protocol.SymbolInformation{
		Name: name,
		Kind: kind,
		Location: protocol.Location{
			URI:   uri,
			Range: nodeRange(node),
		},
	}
}
