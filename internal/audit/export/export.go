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

// Package export drains the audit trail into pluggable destinations,
// paginating through the source in batches.
package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/retr0h/envscope/internal/audit"
)

// DefaultBatchSize is used when the caller passes a non-positive batch
// size.
const DefaultBatchSize = 50

// ProgressFunc is called after each non-empty batch with the running
// exported count and the total.
type ProgressFunc func(exported int, total int)

// ensure audit.MemoryStore satisfies Source at compile time.
var _ Source = (*audit.MemoryStore)(nil)

// Runner drains an audit Source into an Exporter.
type Runner struct {
	logger *slog.Logger
	source Source
}

// NewRunner creates a new Runner.
func NewRunner(
	logger *slog.Logger,
	source Source,
) *Runner {
	return &Runner{
		logger: logger,
		source: source,
	}
}

// Run exports every entry in the source. The exporter is opened before
// the first batch and closed on return, even when a batch fails. On
// mid-run failure the partial Result is returned alongside the error.
func (r *Runner) Run(
	ctx context.Context,
	exporter Exporter,
	batchSize int,
	onProgress ProgressFunc,
) (*Result, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	if err := exporter.Open(ctx); err != nil {
		return nil, fmt.Errorf("opening exporter: %w", err)
	}

	defer func() {
		if closeErr := exporter.Close(ctx); closeErr != nil {
			r.logger.Error("closing exporter", slog.String("error", closeErr.Error()))
		}
	}()

	result := &Result{ByAction: make(map[audit.Action]int)}

	for offset := 0; ; {
		entries, total, err := r.source.List(ctx, batchSize, offset)
		if err != nil {
			return result, fmt.Errorf("listing entries at offset %d: %w", offset, err)
		}

		result.TotalEntries = total
		if len(entries) == 0 {
			break
		}
		result.Batches++

		for _, entry := range entries {
			if err := exporter.Write(ctx, entry); err != nil {
				return result, fmt.Errorf("writing entry %s: %w", entry.ID, err)
			}
			result.ExportedEntries++
			result.ByAction[entry.Action]++
		}

		r.logger.Debug(
			"exported batch",
			slog.Int("batch", result.Batches),
			slog.Int("exported", result.ExportedEntries),
			slog.Int("total", total),
		)

		if onProgress != nil {
			onProgress(result.ExportedEntries, total)
		}

		offset += len(entries)
		if offset >= total {
			break
		}
	}

	return result, nil
}
