// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package document tracks the text of open editor documents.
//
// The store is the single source of truth for document content between
// didOpen and didClose. Positions use byte columns and offsets are byte
// offsets, matching the rest of the server.
package document

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/SferaDev/vscode-styled-jsx-languageserver/internal/styledjsx"
)

// ErrNotOpen indicates a request referenced a document that is not open.
var ErrNotOpen = errors.New("document is not open")

// Document is an open text document.
type Document struct {
	URI        protocol.DocumentUri
	LanguageID string
	Version    int32
	Text       string
}

// Source adapts the document for template extraction.
func (d *Document) Source() styledjsx.Source {
	return styledjsx.Source{
		URI:        string(d.URI),
		Version:    d.Version,
		LanguageID: d.LanguageID,
		Text:       d.Text,
	}
}

// OffsetAt converts a protocol position to a byte offset. Positions past
// the end of a line or the document clamp.
func (d *Document) OffsetAt(pos protocol.Position) int {
	offset := 0
	line := uint32(0)
	for line < pos.Line {
		next := strings.IndexByte(d.Text[offset:], '\n')
		if next < 0 {
			return len(d.Text)
		}
		offset += next + 1
		line++
	}
	end := strings.IndexByte(d.Text[offset:], '\n')
	if end < 0 {
		end = len(d.Text) - offset
	}
	col := int(pos.Character)
	if col > end {
		col = end
	}
	return offset + col
}

// PositionAt converts a byte offset to a protocol position.
func (d *Document) PositionAt(offset int) protocol.Position {
	if offset > len(d.Text) {
		offset = len(d.Text)
	}
	prefix := d.Text[:offset]
	line := strings.Count(prefix, "\n")
	col := offset
	if last := strings.LastIndexByte(prefix, '\n'); last >= 0 {
		col = offset - last - 1
	}
	return protocol.Position{Line: uint32(line), Character: uint32(col)}
}

// Store holds the open documents. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentUri]*Document
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{docs: make(map[protocol.DocumentUri]*Document)}
}

// Open registers a document. Re-opening an already open URI replaces it.
func (s *Store) Open(uri protocol.DocumentUri, languageID string, version int32, text string) *Document {
	doc := &Document{URI: uri, LanguageID: languageID, Version: version, Text: text}
	s.mu.Lock()
	s.docs[uri] = doc
	s.mu.Unlock()
	return doc
}

// Update replaces the full text of an open document.
//
// Outputs:
//
//	*Document - The updated document.
//	error     - ErrNotOpen when the URI was never opened.
func (s *Store) Update(uri protocol.DocumentUri, version int32, text string) (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[uri]; !ok {
		return nil, fmt.Errorf("update %s: %w", uri, ErrNotOpen)
	}
	doc := &Document{
		URI:        uri,
		LanguageID: s.docs[uri].LanguageID,
		Version:    version,
		Text:       text,
	}
	s.docs[uri] = doc
	return doc, nil
}

// Close removes a document from the store.
func (s *Store) Close(uri protocol.DocumentUri) {
	s.mu.Lock()
	delete(s.docs, uri)
	s.mu.Unlock()
}

// Get returns the open document for uri.
func (s *Store) Get(uri protocol.DocumentUri) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	if !ok {
		return nil, fmt.Errorf("get %s: %w", uri, ErrNotOpen)
	}
	return doc, nil
}

// Len returns the number of open documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
