// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package styledjsx

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// CSSLanguageID is the language id carried by every synthetic document.
const CSSLanguageID = "css"

// Range is a half-open [Start, End) byte range delimiting the CSS payload
// of one template literal. Both bounds lie strictly inside the enclosing
// backticks; the backtick characters themselves are excluded.
type Range struct {
	Start int
	End   int
}

// Contains reports whether the offset lies strictly inside the range.
// Offsets equal to either boundary are outside: a cursor sitting on a
// backtick is not "in" the CSS.
func (r Range) Contains(offset int) bool {
	return r.Start < offset && offset < r.End
}

// Dialect identifies the grammar used to parse a source document.
type Dialect int

const (
	// DialectJS is plain JavaScript. The JavaScript grammar also accepts
	// JSX, so .js and .jsx files share it.
	DialectJS Dialect = iota

	// DialectJSX is JavaScript with JSX syntax.
	DialectJSX

	// DialectTS is TypeScript without JSX.
	DialectTS

	// DialectTSX is TypeScript with JSX syntax.
	DialectTSX
)

// DialectForLanguageID maps an LSP language identifier to a Dialect.
//
// Outputs:
//
//	Dialect - The matching dialect.
//	bool    - False if the language id is not a styled-jsx host language.
func DialectForLanguageID(id string) (Dialect, bool) {
	switch id {
	case "javascript":
		return DialectJS, true
	case "javascriptreact":
		return DialectJSX, true
	case "typescript":
		return DialectTS, true
	case "typescriptreact":
		return DialectTSX, true
	default:
		return 0, false
	}
}

// language returns the tree-sitter grammar for the dialect.
func (d Dialect) language() *sitter.Language {
	switch d {
	case DialectTS:
		return typescript.GetLanguage()
	case DialectTSX:
		return tsx.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

// String returns a human-readable dialect name.
func (d Dialect) String() string {
	names := []string{"javascript", "javascriptreact", "typescript", "typescriptreact"}
	if int(d) < len(names) {
		return names[d]
	}
	return "unknown"
}

// Source is the minimal view of an open document the extractor needs.
type Source struct {
	// URI identifies the document.
	URI string

	// Version is the document version the text belongs to.
	Version int32

	// LanguageID is the LSP language identifier of the document.
	LanguageID string

	// Text is the full document content.
	Text string
}

// SyntheticDocument is the same-length, CSS-only stand-in for a source
// document. It reuses the original URI and version so downstream caches
// key correctly, but always carries the CSS language id.
type SyntheticDocument struct {
	URI        string
	Version    int32
	LanguageID string
	Text       string
}
