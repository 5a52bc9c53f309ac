// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package server

import (
	"context"
	"time"

	protocol "github.com/tliron/glsp/protocol_3_16"
	"go.opentelemetry.io/otel/attribute"

	"github.com/SferaDev/vscode-styled-jsx-languageserver/internal/cssls"
	"github.com/SferaDev/vscode-styled-jsx-languageserver/internal/styledjsx"
)

// sheetAtCursor extracts the template strictly containing pos and parses
// it. The stylesheet is transient; callers own Close via the returned
// cleanup. Returns ok=false when the cursor is outside styled-jsx CSS.
//
// The cursor-scoped synthetic document deliberately bypasses the cache:
// it masks a single template, so its text differs from the cached
// whole-document stylesheet of the same version.
func (s *Server) sheetAtCursor(ctx context.Context, uri protocol.DocumentUri, pos protocol.Position) (*cssls.Stylesheet, func(), bool) {
	doc, err := s.store.Get(uri)
	if err != nil {
		return nil, nil, false
	}

	result := styledjsx.ExtractAt(ctx, doc.Source(), doc.OffsetAt(pos))
	s.metrics.recordExtraction(ctx, result.Kind)
	if !result.Found() {
		return nil, nil, false
	}

	sheet, err := s.engine.Parse(ctx, result.Doc.Text)
	if err != nil {
		s.logger.Error("stylesheet parse failed", "uri", uri, "error", err)
		return nil, nil, false
	}
	return sheet, sheet.Close, true
}

// sheetForDocument extracts every template in the document and returns
// the cached whole-document stylesheet. The sheet is cache-owned; no
// cleanup.
func (s *Server) sheetForDocument(ctx context.Context, uri protocol.DocumentUri) (*cssls.Stylesheet, bool) {
	doc, err := s.store.Get(uri)
	if err != nil {
		return nil, false
	}

	result := styledjsx.Extract(ctx, doc.Source())
	s.metrics.recordExtraction(ctx, result.Kind)
	if !result.Found() {
		return nil, false
	}

	sheet, err := s.cache.Get(ctx, result.Doc.URI, result.Doc.Version, result.Doc.Text, s.engine.Parse)
	if err != nil {
		s.logger.Error("stylesheet parse failed", "uri", uri, "error", err)
		return nil, false
	}
	return sheet, true
}

// timed wraps a feature handler body in a span and records request
// metrics. The body's return value is "did the request reach styled-jsx
// CSS", not protocol success; misses are still valid empty responses.
func (s *Server) timed(ctx context.Context, method string, body func() bool) {
	ctx, span := startRequestSpan(ctx, method)
	defer span.End()

	start := time.Now()
	success := body()

	span.SetAttributes(attribute.Bool("lsp.in_styled_jsx", success))
	s.metrics.recordRequest(ctx, method, time.Since(start), success)
}

// Completion answers textDocument/completion.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) ([]protocol.CompletionItem, error) {
	var items []protocol.CompletionItem
	s.timed(ctx, "textDocument/completion", func() bool {
		sheet, cleanup, ok := s.sheetAtCursor(ctx, params.TextDocument.URI, params.Position)
		if !ok {
			return false
		}
		defer cleanup()
		items = s.engine.Complete(sheet, params.Position, cssls.CompleteOptions{
			Snippets: s.clientSnippets,
		})
		return true
	})
	return items, nil
}

// Hover answers textDocument/hover.
func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	var hover *protocol.Hover
	s.timed(ctx, "textDocument/hover", func() bool {
		sheet, cleanup, ok := s.sheetAtCursor(ctx, params.TextDocument.URI, params.Position)
		if !ok {
			return false
		}
		defer cleanup()
		hover = s.engine.Hover(sheet, params.Position)
		return true
	})
	return hover, nil
}

// DocumentSymbol answers textDocument/documentSymbol.
func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]protocol.SymbolInformation, error) {
	symbols := []protocol.SymbolInformation{}
	s.timed(ctx, "textDocument/documentSymbol", func() bool {
		sheet, ok := s.sheetForDocument(ctx, params.TextDocument.URI)
		if !ok {
			return false
		}
		symbols = s.engine.FindSymbols(sheet, params.TextDocument.URI)
		return true
	})
	return symbols, nil
}

// Definition answers textDocument/definition.
func (s *Server) Definition(ctx context.Context, params *protocol.DefinitionParams) ([]protocol.Location, error) {
	locations := []protocol.Location{}
	s.timed(ctx, "textDocument/definition", func() bool {
		sheet, cleanup, ok := s.sheetAtCursor(ctx, params.TextDocument.URI, params.Position)
		if !ok {
			return false
		}
		defer cleanup()
		locations = s.engine.FindDefinition(sheet, params.TextDocument.URI, params.Position)
		return true
	})
	return locations, nil
}

// DocumentHighlight answers textDocument/documentHighlight.
func (s *Server) DocumentHighlight(ctx context.Context, params *protocol.DocumentHighlightParams) ([]protocol.DocumentHighlight, error) {
	highlights := []protocol.DocumentHighlight{}
	s.timed(ctx, "textDocument/documentHighlight", func() bool {
		sheet, cleanup, ok := s.sheetAtCursor(ctx, params.TextDocument.URI, params.Position)
		if !ok {
			return false
		}
		defer cleanup()
		highlights = s.engine.FindHighlights(sheet, params.Position)
		return true
	})
	return highlights, nil
}

// References answers textDocument/references.
func (s *Server) References(ctx context.Context, params *protocol.ReferenceParams) ([]protocol.Location, error) {
	locations := []protocol.Location{}
	s.timed(ctx, "textDocument/references", func() bool {
		sheet, cleanup, ok := s.sheetAtCursor(ctx, params.TextDocument.URI, params.Position)
		if !ok {
			return false
		}
		defer cleanup()
		locations = s.engine.FindReferences(sheet, params.TextDocument.URI,
			params.Position, params.Context.IncludeDeclaration)
		return true
	})
	return locations, nil
}

// CodeAction answers textDocument/codeAction.
func (s *Server) CodeAction(ctx context.Context, params *protocol.CodeActionParams) ([]protocol.CodeAction, error) {
	actions := []protocol.CodeAction{}
	s.timed(ctx, "textDocument/codeAction", func() bool {
		sheet, ok := s.sheetForDocument(ctx, params.TextDocument.URI)
		if !ok {
			return false
		}
		actions = s.engine.DoCodeActions(sheet, params.TextDocument.URI, params.Context.Diagnostics)
		return true
	})
	return actions, nil
}

// DocumentColor answers textDocument/documentColor.
func (s *Server) DocumentColor(ctx context.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	colors := []protocol.ColorInformation{}
	s.timed(ctx, "textDocument/documentColor", func() bool {
		sheet, ok := s.sheetForDocument(ctx, params.TextDocument.URI)
		if !ok {
			return false
		}
		colors = s.engine.FindColors(sheet)
		return true
	})
	return colors, nil
}

// ColorPresentation answers textDocument/colorPresentation. No parse is
// needed; the color and its range are already in hand.
func (s *Server) ColorPresentation(ctx context.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	return s.engine.ColorPresentations(params.Color, params.Range), nil
}

// Rename answers textDocument/rename. The capability is not advertised,
// but clients that issue the request anyway get a correct edit.
func (s *Server) Rename(ctx context.Context, params *protocol.RenameParams) (*protocol.WorkspaceEdit, error) {
	var edit *protocol.WorkspaceEdit
	s.timed(ctx, "textDocument/rename", func() bool {
		sheet, cleanup, ok := s.sheetAtCursor(ctx, params.TextDocument.URI, params.Position)
		if !ok {
			return false
		}
		defer cleanup()
		edit = s.engine.DoRename(sheet, params.TextDocument.URI, params.Position, params.NewName)
		return true
	})
	return edit, nil
}
