// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package config loads server configuration from a YAML file.
//
// The file configures server-side tuning only. Per-document CSS settings
// still come from the client via workspace/configuration; the lint block
// here is the fallback when the client does not answer.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SferaDev/vscode-styled-jsx-languageserver/internal/cssls"
)

// Duration is a time.Duration that unmarshals from YAML strings like
// "250ms" or "30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the server configuration.
type Config struct {
	// ValidationDelay is how long after the last edit diagnostics run.
	ValidationDelay Duration `yaml:"validationDelay"`

	// CacheEntries caps the stylesheet cache size.
	CacheEntries int `yaml:"cacheEntries"`

	// CacheDisposalDelay defers release of evicted stylesheets.
	CacheDisposalDelay Duration `yaml:"cacheDisposalDelay"`

	// CSS is the fallback per-document settings.
	CSS cssls.Settings `yaml:"css"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		ValidationDelay:    Duration(500 * time.Millisecond),
		CacheEntries:       64,
		CacheDisposalDelay: Duration(30 * time.Second),
		CSS:                cssls.DefaultSettings(),
	}
}

// Load reads and validates a YAML configuration file. Unset fields keep
// their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.ValidationDelay < 0 {
		return fmt.Errorf("validationDelay must not be negative: %v", c.ValidationDelay.Std())
	}
	if c.CacheEntries <= 0 {
		return fmt.Errorf("cacheEntries must be positive: %d", c.CacheEntries)
	}
	if c.CacheDisposalDelay < 0 {
		return fmt.Errorf("cacheDisposalDelay must not be negative: %v", c.CacheDisposalDelay.Std())
	}
	for _, level := range []string{
		c.CSS.Lint.UnknownProperties,
		c.CSS.Lint.DuplicateProperties,
		c.CSS.Lint.EmptyRules,
	} {
		switch level {
		case cssls.SeverityIgnore, cssls.SeverityWarning, cssls.SeverityError:
		default:
			return fmt.Errorf("unknown lint severity: %q", level)
		}
	}
	return nil
}
