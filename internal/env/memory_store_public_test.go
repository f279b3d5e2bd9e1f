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
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/envscope/internal/env"
)

type MemoryStoreTestSuite struct {
	suite.Suite

	ctx   context.Context
	store *env.MemoryStore
}

func TestMemoryStoreTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreTestSuite))
}

func (suite *MemoryStoreTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = env.NewMemoryStore()
}

func (suite *MemoryStoreTestSuite) newVariable(
	name string,
	value string,
	scope env.Scope,
) *env.Variable {
	v, _, err := env.NewVariable(name, value, scope)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.store.Save(suite.ctx, v))
	return v
}

func (suite *MemoryStoreTestSuite) TestSaveAndGet() {
	v := suite.newVariable("MY_VAR", "one", env.ScopeUser)

	got, err := suite.store.Get(suite.ctx, v.ID)
	suite.NoError(err)
	suite.Equal("one", got.Value)

	got, err = suite.store.GetByNameScope(suite.ctx, "MY_VAR", env.ScopeUser)
	suite.NoError(err)
	suite.Equal(v.ID, got.ID)
}

func (suite *MemoryStoreTestSuite) TestGetReturnsCopies() {
	v := suite.newVariable("MY_VAR", "one", env.ScopeUser)

	got, err := suite.store.Get(suite.ctx, v.ID)
	suite.Require().NoError(err)
	got.Value = "mutated"

	again, err := suite.store.Get(suite.ctx, v.ID)
	suite.NoError(err)
	suite.Equal("one", again.Value)
}

func (suite *MemoryStoreTestSuite) TestSaveMovesNameScopeIndex() {
	v := suite.newVariable("MY_VAR", "one", env.ScopeUser)

	_, err := v.ChangeScope(env.ScopeProcess)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.store.Save(suite.ctx, v))

	// Old key must be released so another variable can claim it.
	exists, err := suite.store.ExistsByNameScope(suite.ctx, "MY_VAR", env.ScopeUser)
	suite.NoError(err)
	suite.False(exists)

	got, err := suite.store.GetByNameScope(suite.ctx, "MY_VAR", env.ScopeProcess)
	suite.NoError(err)
	suite.Equal(v.ID, got.ID)
}

func (suite *MemoryStoreTestSuite) TestGet() {
	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{
			name:    "when id is unknown fails",
			id:      "missing",
			wantErr: env.ErrNotFound,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			_, err := suite.store.Get(suite.ctx, tc.id)
			suite.ErrorIs(err, tc.wantErr)
		})
	}
}

func (suite *MemoryStoreTestSuite) TestDelete() {
	v := suite.newVariable("MY_VAR", "one", env.ScopeUser)

	suite.NoError(suite.store.Delete(suite.ctx, v.ID))

	_, err := suite.store.Get(suite.ctx, v.ID)
	suite.ErrorIs(err, env.ErrNotFound)

	exists, err := suite.store.ExistsByNameScope(suite.ctx, "MY_VAR", env.ScopeUser)
	suite.NoError(err)
	suite.False(exists)

	suite.ErrorIs(suite.store.Delete(suite.ctx, v.ID), env.ErrNotFound)
}

func (suite *MemoryStoreTestSuite) TestList() {
	suite.newVariable("ZED", "z", env.ScopeUser)
	suite.newVariable("ALPHA", "a", env.ScopeUser)
	suite.newVariable("PATH", "/usr/bin", env.ScopeSystem)

	all, err := suite.store.List(suite.ctx)
	suite.NoError(err)
	suite.Len(all, 3)
	suite.Equal("PATH", all[0].Name)
	suite.Equal("ALPHA", all[1].Name)
	suite.Equal("ZED", all[2].Name)

	users, err := suite.store.ByScope(suite.ctx, env.ScopeUser)
	suite.NoError(err)
	suite.Len(users, 2)
	suite.Equal("ALPHA", users[0].Name)
}

func (suite *MemoryStoreTestSuite) TestNamesByScope() {
	suite.newVariable("PATH", "/usr/bin", env.ScopeSystem)
	suite.newVariable("HOME", "/root", env.ScopeSystem)
	suite.newVariable("EDITOR", "vim", env.ScopeUser)

	names, err := suite.store.NamesByScope(suite.ctx, env.ScopeSystem)
	suite.NoError(err)
	suite.Len(names, 2)
	suite.Contains(names, "PATH")
	suite.Contains(names, "HOME")
}
