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

package env

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type VariableTestSuite struct {
	suite.Suite
}

func TestVariableTestSuite(t *testing.T) {
	suite.Run(t, new(VariableTestSuite))
}

func (suite *VariableTestSuite) TearDownTest() {
	nowFn = time.Now
}

func (suite *VariableTestSuite) TestNewVariable() {
	tests := []struct {
		name         string
		varName      string
		value        string
		scope        Scope
		wantErr      error
		validateFunc func(v *Variable, event Event)
	}{
		{
			name:    "when inputs are valid creates variable with creation event",
			varName: "MY_APP_HOME",
			value:   "/opt/my-app",
			scope:   ScopeUser,
			validateFunc: func(v *Variable, event Event) {
				suite.NotEmpty(v.ID)
				suite.Equal("MY_APP_HOME", v.Name)
				suite.Equal(v.CreatedAt, v.UpdatedAt)
				suite.Equal(EventCreated, event.Kind)
				suite.Equal(v.ID, event.VariableID)
				suite.Equal("/opt/my-app", event.NewValue)
			},
		},
		{
			name:    "when user scope value is empty succeeds",
			varName: "EMPTY_OK",
			value:   "",
			scope:   ScopeUser,
			validateFunc: func(v *Variable, _ Event) {
				suite.Equal("", v.Value)
			},
		},
		{
			name:    "when system scope value is empty fails",
			varName: "EMPTY_NOT_OK",
			value:   "",
			scope:   ScopeSystem,
			wantErr: ErrInvalid,
		},
		{
			name:    "when name starts with a digit fails",
			varName: "1BAD",
			value:   "x",
			scope:   ScopeUser,
			wantErr: ErrInvalid,
		},
		{
			name:    "when name contains a hyphen fails",
			varName: "BAD-NAME",
			value:   "x",
			scope:   ScopeUser,
			wantErr: ErrInvalid,
		},
		{
			name:    "when name exceeds the limit fails",
			varName: strings.Repeat("A", MaxNameLength+1),
			value:   "x",
			scope:   ScopeUser,
			wantErr: ErrInvalid,
		},
		{
			name:    "when value exceeds the limit fails",
			varName: "TOO_LONG",
			value:   strings.Repeat("v", MaxValueLength+1),
			scope:   ScopeUser,
			wantErr: ErrInvalid,
		},
		{
			name:    "when scope is unknown fails",
			varName: "GOOD_NAME",
			value:   "x",
			scope:   Scope("global"),
			wantErr: ErrInvalid,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			v, event, err := NewVariable(tc.varName, tc.value, tc.scope)
			if tc.wantErr != nil {
				suite.ErrorIs(err, tc.wantErr)
				suite.Nil(v)
				return
			}

			suite.NoError(err)
			tc.validateFunc(v, event)
		})
	}
}

func (suite *VariableTestSuite) TestUpdateValue() {
	suite.Run("when value changes bumps UpdatedAt strictly later", func() {
		frozen := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
		nowFn = func() time.Time { return frozen }

		v, _, err := NewVariable("MY_VAR", "one", ScopeUser)
		suite.NoError(err)

		// The clock did not advance, the timestamp still must.
		event, err := v.UpdateValue("two")
		suite.NoError(err)
		suite.Equal(EventUpdated, event.Kind)
		suite.Equal("one", event.OldValue)
		suite.Equal("two", event.NewValue)
		suite.True(v.UpdatedAt.After(v.CreatedAt))
	})

	suite.Run("when value is unchanged returns no event", func() {
		v, _, err := NewVariable("MY_VAR", "one", ScopeUser)
		suite.NoError(err)

		before := v.UpdatedAt
		event, err := v.UpdateValue("one")
		suite.NoError(err)
		suite.Empty(event.Kind)
		suite.Equal(before, v.UpdatedAt)
	})

	suite.Run("when system value is emptied fails", func() {
		v, _, err := NewVariable("SYS_VAR", "set", ScopeSystem)
		suite.NoError(err)

		_, err = v.UpdateValue("")
		suite.ErrorIs(err, ErrInvalid)
		suite.Equal("set", v.Value)
	})
}

func (suite *VariableTestSuite) TestChangeScope() {
	suite.Run("when variable is system scoped fails", func() {
		v, _, err := NewVariable("SYS_VAR", "set", ScopeSystem)
		suite.NoError(err)

		_, err = v.ChangeScope(ScopeUser)
		suite.ErrorIs(err, ErrRestricted)
		suite.Equal(ScopeSystem, v.Scope)
	})

	suite.Run("when scope changes records the old scope", func() {
		v, _, err := NewVariable("MY_VAR", "x", ScopeUser)
		suite.NoError(err)

		event, err := v.ChangeScope(ScopeProcess)
		suite.NoError(err)
		suite.Equal(ScopeProcess, v.Scope)
		suite.Equal("user", event.Metadata["old_scope"])
		suite.Equal("true", event.Metadata["scope_changed"])
	})

	suite.Run("when scope is unchanged returns no event", func() {
		v, _, err := NewVariable("MY_VAR", "x", ScopeUser)
		suite.NoError(err)

		event, err := v.ChangeScope(ScopeUser)
		suite.NoError(err)
		suite.Empty(event.Kind)
	})

	suite.Run("when moving an empty value to system scope fails", func() {
		v, _, err := NewVariable("MY_VAR", "", ScopeUser)
		suite.NoError(err)

		_, err = v.ChangeScope(ScopeSystem)
		suite.ErrorIs(err, ErrInvalid)
		suite.Equal(ScopeUser, v.Scope)
	})
}

func (suite *VariableTestSuite) TestString() {
	v, _, err := NewVariable("DB_PASSWORD_FILE", "hunter2-secret", ScopeUser)
	suite.NoError(err)
	suite.Contains(v.String(), "***")
	suite.NotContains(v.String(), "hunter2-secret")
}
