// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package server implements the styled-jsx language server.
//
// The protocol surface is a thin layer: glsp handlers unwrap params and
// call methods on Server, which owns the document store, the stylesheet
// cache and per-document sessions. Server methods take notify/call
// functions instead of a transport, so dispatch is testable without a
// client on the wire.
package server

import (
	"log/slog"
	"sync"
	"time"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/SferaDev/vscode-styled-jsx-languageserver/internal/cache"
	"github.com/SferaDev/vscode-styled-jsx-languageserver/internal/config"
	"github.com/SferaDev/vscode-styled-jsx-languageserver/internal/cssls"
	"github.com/SferaDev/vscode-styled-jsx-languageserver/internal/document"
)

// Name and Version identify the server to clients.
const (
	Name    = "styled-jsx-ls"
	Version = "1.0.0"
)

// NotifyFunc sends a server-to-client notification.
type NotifyFunc func(method string, params any)

// CallFunc sends a server-to-client request and decodes the response
// into result.
type CallFunc func(method string, params any, result any)

// session is the per-document state between open and close.
type session struct {
	settings cssls.Settings
	timer    *time.Timer
}

// Server is the language server state.
//
// # Thread Safety
//
// Safe for concurrent use. The session table is guarded by mu; the
// document store and stylesheet cache have their own locks.
type Server struct {
	logger  *slog.Logger
	cfg     config.Config
	store   *document.Store
	cache   *cache.Cache
	engine  *cssls.Engine
	metrics *serverMetrics

	mu       sync.Mutex
	sessions map[protocol.DocumentUri]*session

	// Client capabilities captured at initialize.
	clientSnippets      bool
	clientConfiguration bool
}

// New creates a server.
func New(cfg config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		logger: logger,
		cfg:    cfg,
		store:  document.NewStore(),
		cache: cache.New(
			cache.WithMaxEntries(cfg.CacheEntries),
			cache.WithDisposalDelay(cfg.CacheDisposalDelay.Std()),
		),
		engine:   cssls.NewEngine(),
		metrics:  newServerMetrics(),
		sessions: make(map[protocol.DocumentUri]*session),
	}
}

// settingsFor returns the session settings for uri, falling back to the
// configured defaults for unknown documents.
func (s *Server) settingsFor(uri protocol.DocumentUri) cssls.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[uri]; ok {
		return sess.settings
	}
	return s.cfg.CSS
}

// openSession creates or replaces the session for uri.
func (s *Server) openSession(uri protocol.DocumentUri, settings cssls.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.sessions[uri]; ok && old.timer != nil {
		old.timer.Stop()
	}
	s.sessions[uri] = &session{settings: settings}
}

// closeSession tears down the session for uri.
func (s *Server) closeSession(uri protocol.DocumentUri) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[uri]; ok {
		if sess.timer != nil {
			sess.timer.Stop()
		}
		delete(s.sessions, uri)
	}
}

// scheduleValidation (re)arms the debounce timer for uri. A zero delay
// validates synchronously.
func (s *Server) scheduleValidation(notify NotifyFunc, uri protocol.DocumentUri, delay time.Duration) {
	if delay == 0 {
		s.validate(notify, uri)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[uri]
	if !ok {
		return
	}
	if sess.timer != nil {
		sess.timer.Stop()
	}
	sess.timer = time.AfterFunc(delay, func() {
		s.validate(notify, uri)
	})
}
