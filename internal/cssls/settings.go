// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package cssls

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Severity levels accepted by lint settings.
const (
	SeverityIgnore  = "ignore"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// LintSettings controls the lint rules applied during validation.
// Each field holds a severity string: "ignore", "warning" or "error".
type LintSettings struct {
	UnknownProperties   string `yaml:"unknownProperties" json:"unknownProperties"`
	DuplicateProperties string `yaml:"duplicateProperties" json:"duplicateProperties"`
	EmptyRules          string `yaml:"emptyRules" json:"emptyRules"`
}

// Settings configures the CSS engine per document.
type Settings struct {
	// Validate gates diagnostics entirely. When false, Validate returns
	// an empty (non-nil) slice so stale diagnostics are cleared.
	Validate bool         `yaml:"validate" json:"validate"`
	Lint     LintSettings `yaml:"lint" json:"lint"`
}

// DefaultSettings returns the settings used when the client provides none.
func DefaultSettings() Settings {
	return Settings{
		Validate: true,
		Lint: LintSettings{
			UnknownProperties:   SeverityWarning,
			DuplicateProperties: SeverityIgnore,
			EmptyRules:          SeverityWarning,
		},
	}
}

// severityFor maps a lint severity string to a protocol severity.
// The second return is false for "ignore" and unrecognized values.
func severityFor(level string) (protocol.DiagnosticSeverity, bool) {
	switch level {
	case SeverityError:
		return protocol.DiagnosticSeverityError, true
	case SeverityWarning:
		return protocol.DiagnosticSeverityWarning, true
	default:
		return 0, false
	}
}
