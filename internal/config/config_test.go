// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SferaDev/vscode-styled-jsx-languageserver/internal/cssls"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 500*time.Millisecond, cfg.ValidationDelay.Std())
	assert.Equal(t, 64, cfg.CacheEntries)
	assert.True(t, cfg.CSS.Validate)
	assert.Equal(t, cssls.SeverityWarning, cfg.CSS.Lint.UnknownProperties)
}

func TestLoad_OverridesAndDefaults(t *testing.T) {
	path := writeConfig(t, `
validationDelay: 250ms
css:
  validate: true
  lint:
    unknownProperties: error
    duplicateProperties: warning
    emptyRules: ignore
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.ValidationDelay.Std())
	assert.Equal(t, 64, cfg.CacheEntries, "unset fields keep defaults")
	assert.Equal(t, cssls.SeverityError, cfg.CSS.Lint.UnknownProperties)
	assert.Equal(t, cssls.SeverityIgnore, cfg.CSS.Lint.EmptyRules)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative delay", "validationDelay: -1s\n"},
		{"zero cache", "cacheEntries: 0\n"},
		{"bad severity", "css:\n  lint:\n    unknownProperties: loud\n"},
		{"not yaml", "{{{\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
