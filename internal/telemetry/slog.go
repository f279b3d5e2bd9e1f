// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

// Package telemetry correlates log records with the CLI invocation and
// any active trace.
package telemetry

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// correlationHandler wraps a slog.Handler to stamp every record with
// the invocation id, plus trace_id and span_id when a span is active.
type correlationHandler struct {
	inner        slog.Handler
	invocationID string
}

// NewCorrelationHandler creates a slog.Handler that stamps each record
// with a fresh invocation id, tying together the log lines of one CLI
// run, and delegates to inner.
func NewCorrelationHandler(
	inner slog.Handler,
) slog.Handler {
	return &correlationHandler{
		inner:        inner,
		invocationID: uuid.NewString(),
	}
}

// Enabled reports whether the inner handler handles records at the
// given level.
func (h *correlationHandler) Enabled(
	ctx context.Context,
	level slog.Level,
) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle stamps the invocation id, adds trace_id and span_id when the
// context carries a valid span, then delegates to the inner handler.
func (h *correlationHandler) Handle(
	ctx context.Context,
	record slog.Record,
) error {
	record.AddAttrs(slog.String("invocation_id", h.invocationID))

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		record.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}

	return h.inner.Handle(ctx, record)
}

// WithAttrs returns a new handler with the given attributes.
func (h *correlationHandler) WithAttrs(
	attrs []slog.Attr,
) slog.Handler {
	return &correlationHandler{
		inner:        h.inner.WithAttrs(attrs),
		invocationID: h.invocationID,
	}
}

// WithGroup returns a new handler with the given group name.
func (h *correlationHandler) WithGroup(
	name string,
) slog.Handler {
	return &correlationHandler{
		inner:        h.inner.WithGroup(name),
		invocationID: h.invocationID,
	}
}
