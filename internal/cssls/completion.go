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

// CompleteOptions carries client capabilities relevant to completion.
type CompleteOptions struct {
	// Snippets enables snippet-format insert text ("name: $0;").
	Snippets bool
}

// Complete computes completion items at a position.
//
// Description:
//
//	Context is derived from the node under the cursor: inside a
//	declaration value, property values are offered; at the start of a
//	line beginning with "@", at-rules; otherwise property names. The
//	engine does not filter by prefix, the client does.
//
// Outputs:
//
//	[]protocol.CompletionItem - Items for the detected context, never nil.
func (e *Engine) Complete(sheet *Stylesheet, pos protocol.Position, opts CompleteOptions) []protocol.CompletionItem {
	node := sheet.nodeAt(pos)

	if prop := enclosingDeclarationProperty(sheet, node); prop != "" {
		return valueItems(prop)
	}
	if atRuleContext(string(sheet.src), pos) {
		return atRuleItems()
	}
	return propertyItems(opts)
}

// enclosingDeclarationProperty returns the property name when pos sits in
// a declaration's value part, "" otherwise.
func enclosingDeclarationProperty(sheet *Stylesheet, node *sitter.Node) string {
	for n := node; n != nil; n = n.Parent() {
		if n.Type() != cssNodeDeclaration {
			continue
		}
		name := declarationProperty(sheet, n)
		if name == nil || node == nil {
			return ""
		}
		// Cursor on the property name itself is a property context.
		if node == name || node.Type() == cssNodePropertyName {
			return ""
		}
		return sheet.text(name)
	}
	return ""
}

// atRuleContext reports whether the current line, up to the cursor,
// is an at-rule in progress.
func atRuleContext(text string, pos protocol.Position) bool {
	offset := offsetAt(text, pos)
	lineStart := strings.LastIndexByte(text[:offset], '\n') + 1
	line := strings.TrimLeft(text[lineStart:offset], " \t")
	return strings.HasPrefix(line, "@")
}

func propertyItems(opts CompleteOptions) []protocol.CompletionItem {
	kind := protocol.CompletionItemKindProperty
	items := make([]protocol.CompletionItem, 0, len(propertyTable))
	for i := range propertyTable {
		prop := &propertyTable[i]
		item := protocol.CompletionItem{
			Label:         prop.Name,
			Kind:          &kind,
			Documentation: prop.Description,
		}
		if opts.Snippets {
			format := protocol.InsertTextFormatSnippet
			insert := prop.Name + ": $0;"
			item.InsertTextFormat = &format
			item.InsertText = &insert
		}
		items = append(items, item)
	}
	return items
}

func valueItems(property string) []protocol.CompletionItem {
	prop := LookupProperty(property)
	if prop == nil {
		return []protocol.CompletionItem{}
	}
	kind := protocol.CompletionItemKindValue
	items := make([]protocol.CompletionItem, 0, len(prop.Values))
	for _, value := range prop.Values {
		items = append(items, protocol.CompletionItem{
			Label: value,
			Kind:  &kind,
		})
	}
	return items
}

func atRuleItems() []protocol.CompletionItem {
	kind := protocol.CompletionItemKindKeyword
	items := make([]protocol.CompletionItem, 0, len(atRuleTable))
	for _, rule := range atRuleTable {
		items = append(items, protocol.CompletionItem{
			Label:         rule.Name,
			Kind:          &kind,
			Documentation: rule.Description,
		})
	}
	return items
}
