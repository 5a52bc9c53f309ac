// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package cssls

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/css"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Sentinel errors for stylesheet parsing.
var (
	// ErrInvalidContent indicates the text is not valid UTF-8.
	ErrInvalidContent = errors.New("stylesheet content is not valid UTF-8")
)

// Tree-sitter node types of the CSS grammar.
const (
	cssNodeStylesheet     = "stylesheet"
	cssNodeRuleSet        = "rule_set"
	cssNodeSelectors      = "selectors"
	cssNodeBlock          = "block"
	cssNodeDeclaration    = "declaration"
	cssNodePropertyName   = "property_name"
	cssNodePlainValue     = "plain_value"
	cssNodeColorValue     = "color_value"
	cssNodeIntegerValue   = "integer_value"
	cssNodeFloatValue     = "float_value"
	cssNodeCallExpression = "call_expression"
	cssNodeFunctionName   = "function_name"
	cssNodeArguments      = "arguments"
	cssNodeClassSelector  = "class_selector"
	cssNodeClassName      = "class_name"
	cssNodeIDSelector     = "id_selector"
	cssNodeIDName         = "id_name"
	cssNodeKeyframes      = "keyframes_statement"
	cssNodeKeyframesName  = "keyframes_name"
	cssNodeMediaStatement = "media_statement"
	cssNodeComment        = "comment"
)

// Stylesheet is a parsed CSS syntax tree plus the text it was parsed from.
//
// Close must be called when the stylesheet leaves the cache; the tree owns
// C-side memory.
type Stylesheet struct {
	tree *sitter.Tree
	src  []byte
}

// Root returns the root node of the syntax tree.
func (s *Stylesheet) Root() *sitter.Node {
	return s.tree.RootNode()
}

// Close releases the underlying tree.
func (s *Stylesheet) Close() {
	if s.tree != nil {
		s.tree.Close()
	}
}

// text returns the source text of a node.
func (s *Stylesheet) text(node *sitter.Node) string {
	return string(s.src[node.StartByte():node.EndByte()])
}

// Engine answers CSS language queries. It is stateless and safe for
// concurrent use; each Parse call creates its own tree-sitter parser.
type Engine struct{}

// NewEngine creates a CSS engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Parse parses text into a Stylesheet.
//
// Description:
//
//	Tree-sitter is error-tolerant: syntactically broken CSS still yields
//	a tree, with ERROR and missing nodes marking the damage. Validate
//	turns those into diagnostics; Parse itself only fails on infra-level
//	problems.
//
// Inputs:
//
//	ctx  - Context for cancellation.
//	text - CSS text, typically a masked synthetic document.
//
// Outputs:
//
//	*Stylesheet - The parsed stylesheet. Caller owns Close.
//	error       - ErrInvalidContent or a wrapped parser failure.
func (e *Engine) Parse(ctx context.Context, text string) (*Stylesheet, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidContent
	}

	parser := sitter.NewParser()
	parser.SetLanguage(css.GetLanguage())

	src := []byte(text)
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	return &Stylesheet{tree: tree, src: src}, nil
}

// =============================================================================
// POSITION HELPERS
// =============================================================================

// offsetAt converts a protocol position to a byte offset in text.
// Characters are byte columns; positions past end-of-line clamp.
func offsetAt(text string, pos protocol.Position) int {
	offset := 0
	line := uint32(0)
	for line < pos.Line {
		next := strings.IndexByte(text[offset:], '\n')
		if next < 0 {
			return len(text)
		}
		offset += next + 1
		line++
	}
	end := strings.IndexByte(text[offset:], '\n')
	if end < 0 {
		end = len(text) - offset
	}
	col := int(pos.Character)
	if col > end {
		col = end
	}
	return offset + col
}

// positionAt converts a byte offset to a protocol position.
func positionAt(text string, offset int) protocol.Position {
	if offset > len(text) {
		offset = len(text)
	}
	prefix := text[:offset]
	line := strings.Count(prefix, "\n")
	col := offset
	if last := strings.LastIndexByte(prefix, '\n'); last >= 0 {
		col = offset - last - 1
	}
	return protocol.Position{Line: uint32(line), Character: uint32(col)}
}

// nodeRange converts a node's points to a protocol range. Tree-sitter
// columns are byte columns, matching the server's position convention.
func nodeRange(node *sitter.Node) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{
			Line:      node.StartPoint().Row,
			Character: node.StartPoint().Column,
		},
		End: protocol.Position{
			Line:      node.EndPoint().Row,
			Character: node.EndPoint().Column,
		},
	}
}

// nodeAt returns the deepest named node containing the position.
func (s *Stylesheet) nodeAt(pos protocol.Position) *sitter.Node {
	point := sitter.Point{Row: pos.Line, Column: pos.Character}
	root := s.Root()
	if root == nil {
		return nil
	}
	return root.NamedDescendantForPointRange(point, point)
}
