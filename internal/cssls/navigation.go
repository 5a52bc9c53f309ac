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

// occurrence is one appearance of a symbol in the stylesheet.
type occurrence struct {
	node *sitter.Node
	// declaration is true when this is the defining site: a custom
	// property declaration, or a class/ID selector.
	declaration bool
}

// symbolAt resolves the symbol under pos to its token text. Supported
// symbols are custom properties (declared or referenced through var()),
// class names, ID names and keyframes names.
func symbolAt(sheet *Stylesheet, pos protocol.Position) string {
	node := sheet.nodeAt(pos)
	if node == nil {
		return ""
	}
	switch node.Type() {
	case cssNodeClassName, cssNodeIDName, cssNodeKeyframesName:
		return sheet.text(node)
	case cssNodePropertyName:
		if text := sheet.text(node); strings.HasPrefix(text, "--") {
			return text
		}
	case cssNodePlainValue:
		if text := sheet.text(node); strings.HasPrefix(text, "--") && insideVarCall(sheet, node) {
			return text
		}
	}
	return ""
}

// insideVarCall reports whether node is an argument of a var() call.
func insideVarCall(sheet *Stylesheet, node *sitter.Node) bool {
	args := node.Parent()
	if args == nil || args.Type() != cssNodeArguments {
		return false
	}
	call := args.Parent()
	if call == nil || call.Type() != cssNodeCallExpression {
		return false
	}
	fn := childOfType(call, cssNodeFunctionName)
	return fn != nil && sheet.text(fn) == "var"
}

// findOccurrences collects every appearance of symbol in the stylesheet.
func findOccurrences(sheet *Stylesheet, symbol string) []occurrence {
	var found []occurrence
	root := sheet.Root()
	if root == nil {
		return found
	}

	var walk func(node *sitter.Node)
	walk = func(node *sitter.Node) {
		switch node.Type() {
		case cssNodeClassName, cssNodeIDName, cssNodeKeyframesName:
			if sheet.text(node) == symbol {
				found = append(found, occurrence{node: node, declaration: true})
			}
		case cssNodePropertyName:
			if sheet.text(node) == symbol && strings.HasPrefix(symbol, "--") {
				found = append(found, occurrence{node: node, declaration: true})
			}
		case cssNodePlainValue:
			if sheet.text(node) == symbol && insideVarCall(sheet, node) {
				found = append(found, occurrence{node: node})
			}
		}
		for i := 0; i < int(node.NamedChildCount()); i++ {
			walk(node.NamedChild(i))
		}
	}
	walk(root)

	return found
}

// FindDefinition returns the defining sites of the symbol at pos. For a
// var(--x) reference that is the --x declaration; for a selector, every
// rule that declares it.
func (e *Engine) FindDefinition(sheet *Stylesheet, uri protocol.DocumentUri, pos protocol.Position) []protocol.Location {
	symbol := symbolAt(sheet, pos)
	if symbol == "" {
		return []protocol.Location{}
	}
	locations := []protocol.Location{}
	for _, occ := range findOccurrences(sheet, symbol) {
		if occ.declaration {
			locations = append(locations, protocol.Location{URI: uri, Range: nodeRange(occ.node)})
		}
	}
	return locations
}

// FindHighlights marks every occurrence of the symbol at pos.
func (e *Engine) FindHighlights(sheet *Stylesheet, pos protocol.Position) []protocol.DocumentHighlight {
	symbol := symbolAt(sheet, pos)
	if symbol == "" {
		return []protocol.DocumentHighlight{}
	}
	highlights := []protocol.DocumentHighlight{}
	for _, occ := range findOccurrences(sheet, symbol) {
		kind := protocol.DocumentHighlightKindRead
		if occ.declaration {
			kind = protocol.DocumentHighlightKindWrite
		}
		r := nodeRange(occ.node)
		highlights = append(highlights, protocol.DocumentHighlight{Range: r, Kind: &kind})
	}
	return highlights
}

// FindReferences lists every occurrence of the symbol at pos.
// Declarations are included only when includeDeclaration is set.
func (e *Engine) FindReferences(sheet *Stylesheet, uri protocol.DocumentUri, pos protocol.Position, includeDeclaration bool) []protocol.Location {
	symbol := symbolAt(sheet, pos)
	if symbol == "" {
		return []protocol.Location{}
	}
	locations := []protocol.Location{}
	for _, occ := range findOccurrences(sheet, symbol) {
		if occ.declaration && !includeDeclaration {
			continue
		}
		locations = append(locations, protocol.Location{URI: uri, Range: nodeRange(occ.node)})
	}
	return locations
}
