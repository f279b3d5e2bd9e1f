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

package export_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/envscope/internal/audit"
	"github.com/retr0h/envscope/internal/audit/export"
)

type ExportPublicTestSuite struct {
	suite.Suite

	ctx    context.Context
	logger *slog.Logger
}

func (suite *ExportPublicTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.logger = slog.Default()
}

func (suite *ExportPublicTestSuite) newEntry(
	user string,
	action audit.Action,
) audit.Entry {
	return audit.Entry{
		ID:           uuid.NewString(),
		VariableID:   "var-1",
		VariableName: "MY_VAR",
		Action:       action,
		User:         user,
		Timestamp:    time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC),
		Scope:        "user",
	}
}

func (suite *ExportPublicTestSuite) TestRun() {
	tests := []struct {
		name         string
		source       export.Source
		exporter     *mockExporter
		batchSize    int
		validateFunc func(exp *mockExporter, result *export.Result, err error)
	}{
		{
			name:      "when no entries returns zero counts",
			source:    &fakeSource{},
			exporter:  &mockExporter{},
			batchSize: 100,
			validateFunc: func(exp *mockExporter, result *export.Result, err error) {
				suite.NoError(err)
				suite.Equal(0, result.TotalEntries)
				suite.Equal(0, result.ExportedEntries)
				suite.Equal(0, result.Batches)
				suite.True(exp.opened)
				suite.True(exp.closed)
			},
		},
		{
			name: "when single page exports all entries",
			source: &fakeSource{entries: []audit.Entry{
				suite.newEntry("alice", audit.ActionCreated),
				suite.newEntry("bob", audit.ActionUpdated),
			}},
			exporter:  &mockExporter{},
			batchSize: 100,
			validateFunc: func(exp *mockExporter, result *export.Result, err error) {
				suite.NoError(err)
				suite.Equal(2, result.TotalEntries)
				suite.Equal(2, result.ExportedEntries)
				suite.Equal(1, result.Batches)
				suite.Equal(1, result.ByAction[audit.ActionCreated])
				suite.Equal(1, result.ByAction[audit.ActionUpdated])
				suite.Len(exp.entries, 2)
				suite.Equal("alice", exp.entries[0].User)
				suite.Equal("bob", exp.entries[1].User)
			},
		},
		{
			name: "when multi-page paginates correctly",
			source: &fakeSource{entries: []audit.Entry{
				suite.newEntry("alice", audit.ActionUpdated),
				suite.newEntry("bob", audit.ActionUpdated),
				suite.newEntry("charlie", audit.ActionDeleted),
			}},
			exporter:  &mockExporter{},
			batchSize: 2,
			validateFunc: func(exp *mockExporter, result *export.Result, err error) {
				suite.NoError(err)
				suite.Equal(3, result.TotalEntries)
				suite.Equal(3, result.ExportedEntries)
				suite.Equal(2, result.Batches)
				suite.Equal(2, result.ByAction[audit.ActionUpdated])
				suite.Equal(1, result.ByAction[audit.ActionDeleted])
				suite.Len(exp.entries, 3)
			},
		},
		{
			name: "when the source errors returns partial result",
			source: &fakeSource{
				entries: []audit.Entry{
					suite.newEntry("alice", audit.ActionCreated),
					suite.newEntry("bob", audit.ActionUpdated),
					suite.newEntry("charlie", audit.ActionDeleted),
				},
				failAtOffset: 1,
			},
			exporter:  &mockExporter{},
			batchSize: 1,
			validateFunc: func(_ *mockExporter, result *export.Result, err error) {
				suite.Error(err)
				suite.Contains(err.Error(), "listing entries at offset 1")
				suite.Contains(err.Error(), "store unavailable")
				suite.Equal(1, result.ExportedEntries)
				suite.Equal(3, result.TotalEntries)
			},
		},
		{
			name: "when write errors returns partial result",
			source: &fakeSource{entries: []audit.Entry{
				suite.newEntry("alice", audit.ActionCreated),
			}},
			exporter:  &mockExporter{writeErr: fmt.Errorf("disk full")},
			batchSize: 100,
			validateFunc: func(_ *mockExporter, result *export.Result, err error) {
				suite.Error(err)
				suite.Contains(err.Error(), "writing entry")
				suite.Equal(0, result.ExportedEntries)
			},
		},
		{
			name:      "when open errors returns nil result",
			source:    &fakeSource{},
			exporter:  &mockExporter{openErr: fmt.Errorf("permission denied")},
			batchSize: 100,
			validateFunc: func(_ *mockExporter, result *export.Result, err error) {
				suite.Error(err)
				suite.Contains(err.Error(), "opening exporter")
				suite.Nil(result)
			},
		},
		{
			name:      "when close errors logs error but returns result",
			source:    &fakeSource{},
			exporter:  &mockExporter{closeErr: fmt.Errorf("close failed")},
			batchSize: 100,
			validateFunc: func(_ *mockExporter, result *export.Result, err error) {
				suite.NoError(err)
				suite.Equal(0, result.TotalEntries)
				suite.Equal(0, result.ExportedEntries)
			},
		},
		{
			name: "when batch size is non-positive the default applies",
			source: &fakeSource{entries: []audit.Entry{
				suite.newEntry("alice", audit.ActionCreated),
				suite.newEntry("bob", audit.ActionUpdated),
			}},
			exporter:  &mockExporter{},
			batchSize: 0,
			validateFunc: func(_ *mockExporter, result *export.Result, err error) {
				suite.NoError(err)
				suite.Equal(2, result.ExportedEntries)
				suite.Equal(1, result.Batches)
			},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			runner := export.NewRunner(suite.logger, tc.source)
			result, err := runner.Run(
				suite.ctx,
				tc.exporter,
				tc.batchSize,
				nil,
			)
			tc.validateFunc(tc.exporter, result, err)
		})
	}
}

func (suite *ExportPublicTestSuite) TestRunProgress() {
	source := &fakeSource{entries: []audit.Entry{
		suite.newEntry("alice", audit.ActionUpdated),
		suite.newEntry("bob", audit.ActionUpdated),
		suite.newEntry("charlie", audit.ActionUpdated),
	}}

	var calls []progressCall
	onProgress := func(exported int, total int) {
		calls = append(calls, progressCall{exported: exported, total: total})
	}

	runner := export.NewRunner(suite.logger, source)
	_, err := runner.Run(
		suite.ctx,
		&mockExporter{},
		2,
		onProgress,
	)
	suite.NoError(err)

	suite.Require().Len(calls, 2)
	suite.Equal(2, calls[0].exported)
	suite.Equal(3, calls[0].total)
	suite.Equal(3, calls[1].exported)
	suite.Equal(3, calls[1].total)
}

func TestExportPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ExportPublicTestSuite))
}

// fakeSource implements export.Source over an in-memory slice,
// optionally failing once a given offset is reached.
type fakeSource struct {
	entries      []audit.Entry
	failAtOffset int
}

var _ export.Source = (*fakeSource)(nil)

func (f *fakeSource) List(
	_ context.Context,
	limit int,
	offset int,
) ([]audit.Entry, int, error) {
	if f.failAtOffset > 0 && offset >= f.failAtOffset {
		return nil, 0, fmt.Errorf("store unavailable")
	}

	total := len(f.entries)
	if offset >= total {
		return nil, total, nil
	}

	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}

	return f.entries[offset:end], total, nil
}

// mockExporter implements export.Exporter for testing.
type mockExporter struct {
	opened   bool
	closed   bool
	entries  []audit.Entry
	openErr  error
	writeErr error
	closeErr error
}

func (m *mockExporter) Open(
	_ context.Context,
) error {
	if m.openErr != nil {
		return m.openErr
	}
	m.opened = true
	return nil
}

func (m *mockExporter) Write(
	_ context.Context,
	entry audit.Entry,
) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockExporter) Close(
	_ context.Context,
) error {
	m.closed = true
	return m.closeErr
}

type progressCall struct {
	exported int
	total    int
}
