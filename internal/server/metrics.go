// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package server

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/SferaDev/vscode-styled-jsx-languageserver/internal/styledjsx"
)

// Package-level tracer and meter for feature requests.
var (
	tracer = otel.Tracer("styledjsx.server")
	meter  = otel.Meter("styledjsx.server")
)

// startRequestSpan creates a span for a feature request.
func startRequestSpan(ctx context.Context, method string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Server."+method,
		trace.WithAttributes(attribute.String("lsp.method", method)))
}

// serverMetrics records request, extraction and validation telemetry.
// Instrument creation failures disable recording rather than failing
// requests.
type serverMetrics struct {
	requestLatency    metric.Float64Histogram
	requestTotal      metric.Int64Counter
	extractionTotal   metric.Int64Counter
	diagnosticsCount  metric.Int64Histogram
	validationLatency metric.Float64Histogram

	once sync.Once
	err  error
}

func newServerMetrics() *serverMetrics {
	m := &serverMetrics{}
	m.init()
	return m
}

func (m *serverMetrics) init() {
	m.once.Do(func() {
		set := func(err error) {
			if err != nil && m.err == nil {
				m.err = err
			}
		}
		var err error

		m.requestLatency, err = meter.Float64Histogram(
			"lsp_request_duration_seconds",
			metric.WithDescription("Duration of LSP feature requests"),
			metric.WithUnit("s"),
		)
		set(err)

		m.requestTotal, err = meter.Int64Counter(
			"lsp_request_total",
			metric.WithDescription("Total number of LSP feature requests"),
		)
		set(err)

		m.extractionTotal, err = meter.Int64Counter(
			"styledjsx_extraction_total",
			metric.WithDescription("Template extraction outcomes by kind"),
		)
		set(err)

		m.diagnosticsCount, err = meter.Int64Histogram(
			"styledjsx_diagnostics_count",
			metric.WithDescription("Diagnostics published per validation"),
		)
		set(err)

		m.validationLatency, err = meter.Float64Histogram(
			"styledjsx_validation_duration_seconds",
			metric.WithDescription("Duration of extract-parse-validate cycles"),
			metric.WithUnit("s"),
		)
		set(err)
	})
}

// recordRequest records a completed feature request.
func (m *serverMetrics) recordRequest(ctx context.Context, method string, duration time.Duration, success bool) {
	if m.err != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.Bool("success", success),
	)
	m.requestLatency.Record(ctx, duration.Seconds(), attrs)
	m.requestTotal.Add(ctx, 1, attrs)
}

// recordExtraction records a template extraction outcome.
func (m *serverMetrics) recordExtraction(ctx context.Context, kind styledjsx.ResultKind) {
	if m.err != nil {
		return
	}
	m.extractionTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind.String()),
	))
}

// recordValidation records one extract-parse-validate cycle.
func (m *serverMetrics) recordValidation(ctx context.Context, duration time.Duration, diagnostics int) {
	if m.err != nil {
		return
	}
	m.validationLatency.Record(ctx, duration.Seconds())
	m.diagnosticsCount.Record(ctx, int64(diagnostics))
}
