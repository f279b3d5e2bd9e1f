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

package env_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/envscope/internal/env"
)

type ContextManagerTestSuite struct {
	suite.Suite

	ctx      context.Context
	varStore *env.MemoryStore
	manager  *env.ContextManager
}

func TestContextManagerTestSuite(t *testing.T) {
	suite.Run(t, new(ContextManagerTestSuite))
}

func (suite *ContextManagerTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.varStore = env.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.manager = env.NewContextManager(
		logger,
		env.NewMemoryContextStore(),
		suite.varStore,
	)
}

func (suite *ContextManagerTestSuite) newVariable(
	name string,
) *env.Variable {
	v, _, err := env.NewVariable(name, "x", env.ScopeUser)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.varStore.Save(suite.ctx, v))
	return v
}

func (suite *ContextManagerTestSuite) TestCreate() {
	tests := []struct {
		name        string
		contextName string
		description string
		setup       func()
		wantErr     error
	}{
		{
			name:        "when inputs are valid succeeds",
			contextName: "Database Settings",
			description: "connection variables",
		},
		{
			name:        "when the name is taken fails",
			contextName: "Database Settings",
			setup: func() {
				_, err := suite.manager.Create(suite.ctx, "Database Settings", "")
				suite.Require().NoError(err)
			},
			wantErr: env.ErrConflict,
		},
		{
			name:        "when the name is blank fails",
			contextName: "   ",
			wantErr:     env.ErrInvalid,
		},
		{
			name:        "when the name has invalid characters fails",
			contextName: "bad/name",
			wantErr:     env.ErrInvalid,
		},
		{
			name:        "when the description is too long fails",
			contextName: "Verbose",
			description: strings.Repeat("d", env.MaxDescriptionLength+1),
			wantErr:     env.ErrInvalid,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			if tc.setup != nil {
				tc.setup()
			}

			c, err := suite.manager.Create(suite.ctx, tc.contextName, tc.description)
			if tc.wantErr != nil {
				suite.ErrorIs(err, tc.wantErr)
				return
			}

			suite.NoError(err)
			suite.Equal(tc.contextName, c.Name)
			suite.Equal(tc.description, c.Description)
		})
	}
}

func (suite *ContextManagerTestSuite) TestCreateTrimsName() {
	c, err := suite.manager.Create(suite.ctx, "  Staging  ", "")
	suite.NoError(err)
	suite.Equal("Staging", c.Name)

	got, err := suite.manager.GetByName(suite.ctx, "Staging")
	suite.NoError(err)
	suite.Equal(c.ID, got.ID)
}

func (suite *ContextManagerTestSuite) TestAddVariable() {
	suite.Run("when both ends exist adds the reference", func() {
		suite.SetupTest()
		v := suite.newVariable("DB_HOST")
		_, err := suite.manager.Create(suite.ctx, "Database", "")
		suite.Require().NoError(err)

		c, err := suite.manager.AddVariable(suite.ctx, "Database", v.ID)
		suite.NoError(err)
		suite.True(c.ContainsVariable(v.ID))
		suite.Equal(1, c.VariableCount())
	})

	suite.Run("when added twice stays a single reference", func() {
		suite.SetupTest()
		v := suite.newVariable("DB_HOST")
		_, err := suite.manager.Create(suite.ctx, "Database", "")
		suite.Require().NoError(err)

		_, err = suite.manager.AddVariable(suite.ctx, "Database", v.ID)
		suite.Require().NoError(err)
		c, err := suite.manager.AddVariable(suite.ctx, "Database", v.ID)
		suite.NoError(err)
		suite.Equal(1, c.VariableCount())
	})

	suite.Run("when the variable does not exist fails", func() {
		suite.SetupTest()
		_, err := suite.manager.Create(suite.ctx, "Database", "")
		suite.Require().NoError(err)

		_, err = suite.manager.AddVariable(suite.ctx, "Database", "missing-id")
		suite.ErrorIs(err, env.ErrNotFound)
	})

	suite.Run("when the context does not exist fails", func() {
		suite.SetupTest()
		v := suite.newVariable("DB_HOST")

		_, err := suite.manager.AddVariable(suite.ctx, "Missing", v.ID)
		suite.ErrorIs(err, env.ErrNotFound)
	})
}

func (suite *ContextManagerTestSuite) TestRemoveVariable() {
	suite.SetupTest()
	v := suite.newVariable("DB_HOST")
	_, err := suite.manager.Create(suite.ctx, "Database", "")
	suite.Require().NoError(err)
	_, err = suite.manager.AddVariable(suite.ctx, "Database", v.ID)
	suite.Require().NoError(err)

	c, err := suite.manager.RemoveVariable(suite.ctx, "Database", v.ID)
	suite.NoError(err)
	suite.False(c.ContainsVariable(v.ID))

	// Removing again is a quiet no-op.
	c, err = suite.manager.RemoveVariable(suite.ctx, "Database", v.ID)
	suite.NoError(err)
	suite.Equal(0, c.VariableCount())
}

func (suite *ContextManagerTestSuite) TestDeleteKeepsVariables() {
	v := suite.newVariable("DB_HOST")
	_, err := suite.manager.Create(suite.ctx, "Database", "")
	suite.Require().NoError(err)
	_, err = suite.manager.AddVariable(suite.ctx, "Database", v.ID)
	suite.Require().NoError(err)

	suite.NoError(suite.manager.Delete(suite.ctx, "Database"))

	_, err = suite.manager.GetByName(suite.ctx, "Database")
	suite.ErrorIs(err, env.ErrNotFound)

	// The variable itself survives the context deletion.
	got, err := suite.varStore.Get(suite.ctx, v.ID)
	suite.NoError(err)
	suite.Equal("DB_HOST", got.Name)
}

func (suite *ContextManagerTestSuite) TestUpdateDescription() {
	_, err := suite.manager.Create(suite.ctx, "Database", "old")
	suite.Require().NoError(err)

	c, err := suite.manager.UpdateDescription(suite.ctx, "Database", "new")
	suite.NoError(err)
	suite.Equal("new", c.Description)

	got, err := suite.manager.GetByName(suite.ctx, "Database")
	suite.NoError(err)
	suite.Equal("new", got.Description)
}

func (suite *ContextManagerTestSuite) TestContainingVariable() {
	v := suite.newVariable("DB_HOST")
	for _, name := range []string{"Blue", "Green"} {
		_, err := suite.manager.Create(suite.ctx, name, "")
		suite.Require().NoError(err)
		_, err = suite.manager.AddVariable(suite.ctx, name, v.ID)
		suite.Require().NoError(err)
	}
	_, err := suite.manager.Create(suite.ctx, "Empty", "")
	suite.Require().NoError(err)

	got, err := suite.manager.ContainingVariable(suite.ctx, v.ID)
	suite.NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal("Blue", got[0].Name)
	suite.Equal("Green", got[1].Name)
}
