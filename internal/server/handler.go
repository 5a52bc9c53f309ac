// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package server

import (
	"context"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"
)

// NewHandler builds the protocol handler for srv.
//
// Each handler is a thin unwrapping layer; the transport-independent
// work happens on Server methods so dispatch is testable without a
// connection.
func NewHandler(srv *Server) *protocol.Handler {
	handler := &protocol.Handler{}

	handler.Initialize = func(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
		result, err := srv.Initialize(params)
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	handler.Initialized = func(ctx *glsp.Context, params *protocol.InitializedParams) error {
		return nil
	}
	handler.Shutdown = func(ctx *glsp.Context) error {
		return srv.Shutdown()
	}
	handler.SetTrace = func(ctx *glsp.Context, params *protocol.SetTraceParams) error {
		protocol.SetTraceValue(params.Value)
		return nil
	}

	handler.TextDocumentDidOpen = func(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
		return srv.DidOpen(NotifyFunc(ctx.Notify), CallFunc(ctx.Call), params)
	}
	handler.TextDocumentDidChange = func(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
		return srv.DidChange(NotifyFunc(ctx.Notify), params)
	}
	handler.TextDocumentDidClose = func(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
		return srv.DidClose(NotifyFunc(ctx.Notify), params)
	}
	handler.WorkspaceDidChangeConfiguration = func(ctx *glsp.Context, params *protocol.DidChangeConfigurationParams) error {
		return srv.DidChangeConfiguration(NotifyFunc(ctx.Notify), CallFunc(ctx.Call))
	}

	handler.TextDocumentCompletion = func(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
		return srv.Completion(context.Background(), params)
	}
	handler.TextDocumentHover = func(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
		return srv.Hover(context.Background(), params)
	}
	handler.TextDocumentDocumentSymbol = func(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
		return srv.DocumentSymbol(context.Background(), params)
	}
	handler.TextDocumentDefinition = func(ctx *glsp.Context, params *protocol.DefinitionParams) (any, error) {
		return srv.Definition(context.Background(), params)
	}
	handler.TextDocumentDocumentHighlight = func(ctx *glsp.Context, params *protocol.DocumentHighlightParams) ([]protocol.DocumentHighlight, error) {
		return srv.DocumentHighlight(context.Background(), params)
	}
	handler.TextDocumentReferences = func(ctx *glsp.Context, params *protocol.ReferenceParams) ([]protocol.Location, error) {
		return srv.References(context.Background(), params)
	}
	handler.TextDocumentCodeAction = func(ctx *glsp.Context, params *protocol.CodeActionParams) (any, error) {
		return srv.CodeAction(context.Background(), params)
	}
	handler.TextDocumentColor = func(ctx *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
		return srv.DocumentColor(context.Background(), params)
	}
	handler.TextDocumentColorPresentation = func(ctx *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
		return srv.ColorPresentation(context.Background(), params)
	}
	handler.TextDocumentRename = func(ctx *glsp.Context, params *protocol.RenameParams) (*protocol.WorkspaceEdit, error) {
		return srv.Rename(context.Background(), params)
	}

	return handler
}

// RunStdio serves LSP over stdin/stdout until the client disconnects.
func RunStdio(srv *Server, debug bool) error {
	handler := NewHandler(srv)
	return glspserver.NewServer(handler, Name, debug).RunStdio()
}
