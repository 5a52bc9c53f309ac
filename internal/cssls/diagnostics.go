// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package cssls

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagnosticSource = "styled-jsx"

// Validate computes diagnostics for a parsed stylesheet.
//
// Description:
//
//	Two passes over the tree: syntax damage (ERROR and missing nodes)
//	always reports as errors; lint rules (unknown property, duplicate
//	property, empty rule) report at the severity configured in settings.
//	Returns a non-nil slice even when empty, so publishing the result
//	clears stale diagnostics on the client.
//
// Inputs:
//
//	sheet    - Parsed stylesheet.
//	settings - Per-document settings; settings.Validate=false short-circuits.
//
// Outputs:
//
//	[]protocol.Diagnostic - Diagnostics in tree order, never nil.
func (e *Engine) Validate(sheet *Stylesheet, settings Settings) []protocol.Diagnostic {
	diags := []protocol.Diagnostic{}
	if !settings.Validate {
		return diags
	}

	root := sheet.Root()
	if root == nil {
		return diags
	}

	var walk func(node *sitter.Node)
	walk = func(node *sitter.Node) {
		if node.IsError() {
			diags = append(diags, syntaxDiagnostic(node, "unexpected token"))
		} else if node.IsMissing() {
			diags = append(diags, syntaxDiagnostic(node, fmt.Sprintf("missing %q", node.Type())))
		}

		switch node.Type() {
		case cssNodeDeclaration:
			if d, ok := lintUnknownProperty(sheet, node, settings); ok {
				diags = append(diags, d)
			}
		case cssNodeBlock:
			diags = append(diags, lintDuplicateProperties(sheet, node, settings)...)
		case cssNodeRuleSet:
			if d, ok := lintEmptyRule(sheet, node, settings); ok {
				diags = append(diags, d)
			}
		}

		for i := 0; i < int(node.ChildCount()); i++ {
			walk(node.Child(i))
		}
	}
	walk(root)

	return diags
}

func syntaxDiagnostic(node *sitter.Node, message string) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := diagnosticSource
	return protocol.Diagnostic{
		Range:    nodeRange(node),
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}

func lintDiagnostic(node *sitter.Node, severity protocol.DiagnosticSeverity, code, message string) protocol.Diagnostic {
	source := diagnosticSource
	codeValue := protocol.IntegerOrString{Value: code}
	return protocol.Diagnostic{
		Range:    nodeRange(node),
		Severity: &severity,
		Source:   &source,
		Code:     &codeValue,
		Message:  message,
	}
}

// lintUnknownProperty flags declarations whose property name is not in
// the built-in table. Custom properties (--x) and vendor prefixes are
// exempt.
func lintUnknownProperty(sheet *Stylesheet, decl *sitter.Node, settings Settings) (protocol.Diagnostic, bool) {
	severity, enabled := severityFor(settings.Lint.UnknownProperties)
	if !enabled {
		return protocol.Diagnostic{}, false
	}
	name := declarationProperty(sheet, decl)
	if name == nil {
		return protocol.Diagnostic{}, false
	}
	text := sheet.text(name)
	if isKnownProperty(text) {
		return protocol.Diagnostic{}, false
	}
	return lintDiagnostic(name, severity, "unknownProperties",
		fmt.Sprintf("unknown property: %q", text)), true
}

// lintDuplicateProperties flags repeated property names within one block.
// The first occurrence is left alone; repeats are flagged.
func lintDuplicateProperties(sheet *Stylesheet, block *sitter.Node, settings Settings) []protocol.Diagnostic {
	severity, enabled := severityFor(settings.Lint.DuplicateProperties)
	if !enabled {
		return nil
	}

	var diags []protocol.Diagnostic
	seen := make(map[string]bool)
	for i := 0; i < int(block.NamedChildCount()); i++ {
		child := block.NamedChild(i)
		if child.Type() != cssNodeDeclaration {
			continue
		}
		name := declarationProperty(sheet, child)
		if name == nil {
			continue
		}
		text := sheet.text(name)
		if seen[text] {
			diags = append(diags, lintDiagnostic(name, severity, "duplicateProperties",
				fmt.Sprintf("duplicate property: %q", text)))
		}
		seen[text] = true
	}
	return diags
}

// lintEmptyRule flags rule sets whose block contains no declarations and
// no nested rules.
func lintEmptyRule(sheet *Stylesheet, rule *sitter.Node, settings Settings) (protocol.Diagnostic, bool) {
	severity, enabled := severityFor(settings.Lint.EmptyRules)
	if !enabled {
		return protocol.Diagnostic{}, false
	}
	block := childOfType(rule, cssNodeBlock)
	if block == nil || block.NamedChildCount() > 0 {
		return protocol.Diagnostic{}, false
	}
	selectors := childOfType(rule, cssNodeSelectors)
	target := rule
	if selectors != nil {
		target = selectors
	}
	return lintDiagnostic(target, severity, "emptyRules", "rule is empty"), true
}

// declarationProperty returns the property_name child of a declaration.
func declarationProperty(sheet *Stylesheet, decl *sitter.Node) *sitter.Node {
	return childOfType(decl, cssNodePropertyName)
}

// childOfType returns the first named child with the given type.
func childOfType(node *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child.Type() == nodeType {
			return child
		}
	}
	return nil
}
