// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package styledjsx

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// ErrWalkFault indicates the parse-tree walk failed on malformed input.
// Callers degrade it to "no templates found"; it never reaches the client.
var ErrWalkFault = errors.New("parse tree walk fault")

// Tree-sitter node types shared by the JavaScript and TypeScript grammars.
const (
	nodeComment           = "comment"
	nodeHTMLComment       = "html_comment"
	nodeTemplateString    = "template_string"
	nodeCallExpression    = "call_expression"
	nodeJSXExpression     = "jsx_expression"
	nodeJSXElement        = "jsx_element"
	nodeJSXOpeningElement = "jsx_opening_element"
	nodeJSXAttribute      = "jsx_attribute"
)

// LocateTemplates parses text and returns the exact CSS payload ranges of
// every styled-jsx template literal, in source order.
//
// Description:
//
//	Parses the whole document with the dialect's grammar (tree-sitter is
//	error-tolerant, so the rest of the file may be syntactically broken)
//	and walks the tree depth-first. Comment nodes are skipped entirely. A
//	template literal qualifies when it is the argument of a tagged
//	template whose tag text contains "css", or the expression child of a
//	<style jsx> element. The returned ranges strip one backtick at each
//	end, which holds for empty and single-character bodies too.
//
// Inputs:
//
//	ctx     - Context for parse cancellation.
//	text    - Full document content.
//	dialect - Grammar to parse with.
//
// Outputs:
//
//	[]Range - CSS payload ranges, ascending and non-overlapping. Nil when
//	          the document has no styled-jsx templates.
//	error   - Wraps ErrWalkFault when the parse or the walk failed. Never
//	          a client-visible condition.
func LocateTemplates(ctx context.Context, text string, dialect Dialect) (ranges []Range, err error) {
	defer func() {
		if r := recover(); r != nil {
			ranges = nil
			err = fmt.Errorf("%w: %v", ErrWalkFault, r)
		}
	}()

	parser := sitter.NewParser()
	parser.SetLanguage(dialect.language())

	src := []byte(text)
	tree, parseErr := parser.ParseCtx(ctx, nil, src)
	if parseErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrWalkFault, parseErr)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, nil
	}
	collectTemplates(root, src, &ranges)
	return ranges, nil
}

// collectTemplates walks the tree depth-first appending qualifying
// template ranges to out.
func collectTemplates(node *sitter.Node, src []byte, out *[]Range) {
	if node == nil {
		return
	}
	switch node.Type() {
	case nodeComment, nodeHTMLComment:
		// Comment content must never be mistaken for code.
		return
	case nodeTemplateString:
		if isStyledJSXTemplate(node, src) {
			start := int(node.StartByte()) + 1
			end := int(node.EndByte()) - 1
			if end >= start {
				*out = append(*out, Range{Start: start, End: end})
			}
			// Templates cannot nest in valid syntax.
			return
		}
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		collectTemplates(node.Child(i), src, out)
	}
}

// isStyledJSXTemplate reports whether a template_string node is styled-jsx
// CSS: either the argument of a tagged template whose tag contains "css",
// or the expression child of a <style jsx> element.
func isStyledJSXTemplate(node *sitter.Node, src []byte) bool {
	parent := node.Parent()
	if parent == nil {
		return false
	}

	switch parent.Type() {
	case nodeCallExpression:
		// Tagged template: (call_expression function: tag arguments: template).
		// The tag is matched by substring, not type-checked identity, so
		// css, css.global, css.resolve and aliased imports all qualify.
		tag := parent.ChildByFieldName("function")
		if tag == nil {
			return false
		}
		return strings.Contains(nodeText(tag, src), "css")

	case nodeJSXExpression:
		element := parent.Parent()
		if element == nil || element.Type() != nodeJSXElement {
			return false
		}
		opening := element.Child(0)
		if opening == nil || opening.Type() != nodeJSXOpeningElement {
			return false
		}
		name := opening.ChildByFieldName("name")
		if name == nil || nodeText(name, src) != "style" {
			return false
		}
		return hasJSXAttribute(opening, src, "jsx")
	}
	return false
}

// hasJSXAttribute reports whether the opening element carries an attribute
// with the given name. The attribute's value is irrelevant.
func hasJSXAttribute(opening *sitter.Node, src []byte, name string) bool {
	for i := 0; i < int(opening.ChildCount()); i++ {
		attr := opening.Child(i)
		if attr == nil || attr.Type() != nodeJSXAttribute {
			continue
		}
		if key := attr.Child(0); key != nil && nodeText(key, src) == name {
			return true
		}
	}
	return false
}

func nodeText(node *sitter.Node, src []byte) string {
	return string(src[node.StartByte():node.EndByte()])
}
