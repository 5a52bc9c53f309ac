// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Command styled-jsx-ls is a language server for CSS embedded in
// styled-jsx template literals. It speaks LSP over stdio.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/SferaDev/vscode-styled-jsx-languageserver/internal/config"
	"github.com/SferaDev/vscode-styled-jsx-languageserver/internal/server"
)

var (
	flagConfig  string
	flagDebug   bool
	flagVerbose int
)

var rootCmd = &cobra.Command{
	Use:     "styled-jsx-ls",
	Short:   "Language server for CSS in styled-jsx template literals",
	Version: server.Version,
	Long: `styled-jsx-ls provides CSS diagnostics, completion, hover, symbols,
navigation, colors and code actions for styled-jsx template literals in
JavaScript and TypeScript sources. It communicates over stdio; stdout is
reserved for the protocol and all logging goes to stderr.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries JSON-RPC; everything human-facing goes to stderr.
		commonlog.Configure(flagVerbose, nil)

		level := slog.LevelInfo
		if flagDebug {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		cfg := config.Default()
		if flagConfig != "" {
			loaded, err := config.Load(flagConfig)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			cfg = loaded
		}

		logger.Info("starting",
			"name", server.Name,
			"version", server.Version,
			"validationDelay", cfg.ValidationDelay.Std())

		srv := server.New(cfg, logger)
		if err := server.RunStdio(srv, flagDebug); err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "path to YAML configuration file")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.Flags().IntVarP(&flagVerbose, "verbose", "v", 0, "protocol log verbosity")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
