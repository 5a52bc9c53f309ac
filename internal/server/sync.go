// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package server

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/SferaDev/vscode-styled-jsx-languageserver/internal/cssls"
)

const configurationSection = "styledJsx"

// DidOpen registers a document and validates it immediately.
func (s *Server) DidOpen(notify NotifyFunc, call CallFunc, params *protocol.DidOpenTextDocumentParams) error {
	item := params.TextDocument
	s.store.Open(item.URI, item.LanguageID, item.Version, item.Text)
	s.openSession(item.URI, s.pullSettings(call, item.URI))

	s.logger.Debug("document opened", "uri", item.URI, "languageID", item.LanguageID)
	s.scheduleValidation(notify, item.URI, 0)
	return nil
}

// DidChange applies a full-text update and schedules debounced
// validation.
func (s *Server) DidChange(notify NotifyFunc, params *protocol.DidChangeTextDocumentParams) error {
	text, ok := fullText(params.ContentChanges)
	if !ok {
		s.logger.Warn("didChange without full content", "uri", params.TextDocument.URI)
		return nil
	}

	if _, err := s.store.Update(params.TextDocument.URI, params.TextDocument.Version, text); err != nil {
		return err
	}
	s.scheduleValidation(notify, params.TextDocument.URI, s.cfg.ValidationDelay.Std())
	return nil
}

// DidClose forgets the document and clears its diagnostics.
func (s *Server) DidClose(notify NotifyFunc, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.closeSession(uri)
	s.store.Close(uri)
	s.cache.Invalidate(string(uri))

	notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []protocol.Diagnostic{},
	})
	s.logger.Debug("document closed", "uri", uri)
	return nil
}

// DidChangeConfiguration refreshes the settings of every open session.
func (s *Server) DidChangeConfiguration(notify NotifyFunc, call CallFunc) error {
	s.mu.Lock()
	uris := make([]protocol.DocumentUri, 0, len(s.sessions))
	for uri := range s.sessions {
		uris = append(uris, uri)
	}
	s.mu.Unlock()

	for _, uri := range uris {
		settings := s.pullSettings(call, uri)
		s.mu.Lock()
		if sess, ok := s.sessions[uri]; ok {
			sess.settings = settings
		}
		s.mu.Unlock()
		s.scheduleValidation(notify, uri, 0)
	}
	return nil
}

// pullSettings asks the client for the document's styledJsx settings,
// falling back to the configured defaults when the client does not
// support configuration requests or returns nothing usable.
func (s *Server) pullSettings(call CallFunc, uri protocol.DocumentUri) cssls.Settings {
	if !s.clientConfiguration || call == nil {
		return s.cfg.CSS
	}

	scope := string(uri)
	section := configurationSection
	var results []*cssls.Settings
	call(protocol.ServerWorkspaceConfiguration, protocol.ConfigurationParams{
		Items: []protocol.ConfigurationItem{{ScopeURI: &scope, Section: &section}},
	}, &results)

	if len(results) == 0 || results[0] == nil {
		return s.cfg.CSS
	}
	return *results[0]
}

// fullText extracts the full document text from a change set. Only full
// sync is advertised, so ranged changes are rejected.
func fullText(changes []any) (string, bool) {
	for _, change := range changes {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			return c.Text, true
		case *protocol.TextDocumentContentChangeEventWhole:
			return c.Text, true
		}
	}
	return "", false
}
