// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package server

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Initialize captures client capabilities and advertises the server's.
//
// Description:
//
//	Completion is only advertised when the client supports snippet
//	inserts; properties complete as "name: $0;" and a client that can't
//	place the cursor would end up with literal placeholder text. Rename
//	is handled but deliberately not advertised: renames inside template
//	literals also need the surrounding JS identifiers updated, which is
//	the JS language server's job.
func (s *Server) Initialize(params *protocol.InitializeParams) (protocol.InitializeResult, error) {
	s.clientSnippets = snippetSupport(params.Capabilities)
	if workspace := params.Capabilities.Workspace; workspace != nil && workspace.Configuration != nil {
		s.clientConfiguration = *workspace.Configuration
	}

	s.logger.Info("initializing",
		"snippets", s.clientSnippets,
		"configuration", s.clientConfiguration)

	version := Version
	return protocol.InitializeResult{
		Capabilities: s.capabilities(),
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    Name,
			Version: &version,
		},
	}, nil
}

func (s *Server) capabilities() protocol.ServerCapabilities {
	openClose := true
	change := protocol.TextDocumentSyncKindFull

	capabilities := protocol.ServerCapabilities{
		TextDocumentSync: protocol.TextDocumentSyncOptions{
			OpenClose: &openClose,
			Change:    &change,
		},
		HoverProvider:             true,
		DocumentSymbolProvider:    true,
		DefinitionProvider:        true,
		DocumentHighlightProvider: true,
		ReferencesProvider:        true,
		CodeActionProvider:        true,
		ColorProvider:             true,
	}
	if s.clientSnippets {
		capabilities.CompletionProvider = &protocol.CompletionOptions{
			TriggerCharacters: []string{":", " ", "-"},
		}
	}
	return capabilities
}

func snippetSupport(capabilities protocol.ClientCapabilities) bool {
	textDocument := capabilities.TextDocument
	if textDocument == nil || textDocument.Completion == nil {
		return false
	}
	item := textDocument.Completion.CompletionItem
	if item == nil || item.SnippetSupport == nil {
		return false
	}
	return *item.SnippetSupport
}

// Shutdown drops all sessions. The process exits when the client
// disconnects.
func (s *Server) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for uri, sess := range s.sessions {
		if sess.timer != nil {
			sess.timer.Stop()
		}
		delete(s.sessions, uri)
	}
	s.logger.Info("shutdown")
	return nil
}
