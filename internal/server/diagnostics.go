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

	"github.com/SferaDev/vscode-styled-jsx-languageserver/internal/styledjsx"
)

// validate extracts, parses and validates the document's styled-jsx CSS,
// then publishes the result. Documents without styled-jsx templates get
// an empty publish so stale diagnostics clear.
func (s *Server) validate(notify NotifyFunc, uri protocol.DocumentUri) {
	start := time.Now()
	ctx := context.Background()

	doc, err := s.store.Get(uri)
	if err != nil {
		// Closed before a debounce timer fired.
		return
	}

	diagnostics := []protocol.Diagnostic{}
	result := styledjsx.Extract(ctx, doc.Source())
	s.metrics.recordExtraction(ctx, result.Kind)

	if result.Found() {
		sheet, err := s.cache.Get(ctx, result.Doc.URI, result.Doc.Version, result.Doc.Text, s.engine.Parse)
		if err != nil {
			s.logger.Error("stylesheet parse failed", "uri", uri, "error", err)
		} else {
			diagnostics = s.engine.Validate(sheet, s.settingsFor(uri))
		}
	}

	version := protocol.UInteger(doc.Version)
	notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Version:     &version,
		Diagnostics: diagnostics,
	})

	s.metrics.recordValidation(ctx, time.Since(start), len(diagnostics))
	s.logger.Debug("published diagnostics",
		"uri", uri,
		"count", len(diagnostics),
		"duration", time.Since(start))
}
