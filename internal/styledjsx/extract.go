// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package styledjsx

import (
	"context"
	"log/slog"
)

// ResultKind classifies the outcome of an extraction.
type ResultKind int

const (
	// ResultNotFound means the document has no styled-jsx content. This
	// is the expected common case for plain JS/TS files, not an error.
	ResultNotFound ResultKind = iota

	// ResultFound means styled-jsx CSS was located and masked.
	ResultFound

	// ResultWalkFault means the parse-tree walk failed. Externally this
	// behaves like ResultNotFound; the fault is kept so tests and logs
	// can tell the two apart.
	ResultWalkFault
)

// String returns the kind's name for logs and metric labels.
func (k ResultKind) String() string {
	switch k {
	case ResultFound:
		return "found"
	case ResultWalkFault:
		return "walk_fault"
	default:
		return "not_found"
	}
}

// ExtractionResult is the typed outcome of locating styled-jsx content in
// a document: Found(ranges, doc) | NotFound | WalkFault(cause).
type ExtractionResult struct {
	Kind   ResultKind
	Ranges []Range
	Doc    *SyntheticDocument
	Fault  error
}

// Found reports whether extraction produced a synthetic document.
func (r ExtractionResult) Found() bool {
	return r.Kind == ResultFound
}

// Extract locates all styled-jsx content in doc and builds the synthetic
// CSS document for it.
//
// Description:
//
//	Runs the scanner pre-filter first: a document with no textual hint of
//	styled-jsx is never parsed. Otherwise the locator produces the exact
//	template ranges and the masker builds the same-length CSS-only text.
//	A walk fault is logged and degraded to a typed non-result; it never
//	propagates.
//
// Outputs:
//
//	ExtractionResult - Found with ranges and the synthetic document, or
//	                   NotFound / WalkFault with no document.
func Extract(ctx context.Context, doc Source) ExtractionResult {
	if len(ScanCandidates(doc.Text)) == 0 {
		return ExtractionResult{Kind: ResultNotFound}
	}
	dialect, ok := DialectForLanguageID(doc.LanguageID)
	if !ok {
		return ExtractionResult{Kind: ResultNotFound}
	}

	ranges, err := LocateTemplates(ctx, doc.Text, dialect)
	if err != nil {
		slog.Warn("styled-jsx extraction failed",
			slog.String("uri", doc.URI),
			slog.String("error", err.Error()))
		return ExtractionResult{Kind: ResultWalkFault, Fault: err}
	}
	if len(ranges) == 0 {
		return ExtractionResult{Kind: ResultNotFound}
	}

	return ExtractionResult{
		Kind:   ResultFound,
		Ranges: ranges,
		Doc:    synthetic(doc, ranges),
	}
}

// ExtractAt locates the single styled-jsx template strictly containing the
// cursor offset and builds a synthetic document for it alone.
//
// Description:
//
//	Used by position-sensitive capabilities that operate on "the template
//	under the cursor". The locator is seeded by the cursor rather than
//	scanner hits, so the pre-filter is skipped. A cursor sitting exactly
//	on a range boundary is outside: start < offset < end must hold.
func ExtractAt(ctx context.Context, doc Source, offset int) ExtractionResult {
	dialect, ok := DialectForLanguageID(doc.LanguageID)
	if !ok {
		return ExtractionResult{Kind: ResultNotFound}
	}

	ranges, err := LocateTemplates(ctx, doc.Text, dialect)
	if err != nil {
		slog.Warn("styled-jsx extraction failed",
			slog.String("uri", doc.URI),
			slog.String("error", err.Error()))
		return ExtractionResult{Kind: ResultWalkFault, Fault: err}
	}
	for _, r := range ranges {
		if r.Contains(offset) {
			under := []Range{r}
			return ExtractionResult{
				Kind:   ResultFound,
				Ranges: under,
				Doc:    synthetic(doc, under),
			}
		}
	}
	return ExtractionResult{Kind: ResultNotFound}
}

func synthetic(doc Source, ranges []Range) *SyntheticDocument {
	return &SyntheticDocument{
		URI:        doc.URI,
		Version:    doc.Version,
		LanguageID: CSSLanguageID,
		Text:       Mask(doc.Text, ranges),
	}
}
