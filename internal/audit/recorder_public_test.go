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

package audit_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/envscope/internal/audit"
	"github.com/retr0h/envscope/internal/env"
)

type RecorderTestSuite struct {
	suite.Suite

	ctx      context.Context
	store    *audit.MemoryStore
	recorder *audit.Recorder
	variable *env.Variable
}

func TestRecorderTestSuite(t *testing.T) {
	suite.Run(t, new(RecorderTestSuite))
}

func (suite *RecorderTestSuite) SetupTest() {
	suite.ctx = context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.store = audit.NewMemoryStore(logger)
	suite.recorder = audit.NewRecorder(logger, suite.store)

	v, _, err := env.NewVariable("MY_VAR", "current", env.ScopeUser)
	suite.Require().NoError(err)
	suite.variable = v
}

func (suite *RecorderTestSuite) latest() *audit.Entry {
	entry, err := suite.store.MostRecent(suite.ctx, suite.variable.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	return entry
}

func (suite *RecorderTestSuite) TestRecordCreation() {
	suite.NoError(suite.recorder.RecordCreation(suite.ctx, suite.variable, "alice"))

	entry := suite.latest()
	suite.Equal(audit.ActionCreated, entry.Action)
	suite.Equal(suite.variable.ID, entry.VariableID)
	suite.Equal("MY_VAR", entry.VariableName)
	suite.Equal("user", entry.Scope)
	suite.Equal("alice", entry.User)
	suite.Nil(entry.OldValue)
	suite.Require().NotNil(entry.NewValue)
	suite.Equal("current", *entry.NewValue)
}

func (suite *RecorderTestSuite) TestRecordUpdate() {
	suite.NoError(suite.recorder.RecordUpdate(suite.ctx, suite.variable, "previous", "alice"))

	entry := suite.latest()
	suite.Equal(audit.ActionUpdated, entry.Action)
	suite.Require().NotNil(entry.OldValue)
	suite.Equal("previous", *entry.OldValue)
	suite.Require().NotNil(entry.NewValue)
	suite.Equal("current", *entry.NewValue)
}

func (suite *RecorderTestSuite) TestRecordDeletion() {
	suite.NoError(suite.recorder.RecordDeletion(suite.ctx, suite.variable, "alice"))

	entry := suite.latest()
	suite.Equal(audit.ActionDeleted, entry.Action)
	suite.Require().NotNil(entry.OldValue)
	suite.Equal("current", *entry.OldValue)
	suite.Nil(entry.NewValue)
}

func (suite *RecorderTestSuite) TestRecordAccess() {
	suite.NoError(suite.recorder.RecordAccess(suite.ctx, suite.variable, "alice"))

	entry := suite.latest()
	suite.Equal(audit.ActionAccessed, entry.Action)
	suite.Nil(entry.OldValue)
	suite.Nil(entry.NewValue)
}
