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

package validation_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/envscope/internal/validation"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationTestSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

type varSpec struct {
	Name  string `validate:"required,env_name"`
	Scope string `validate:"required,env_scope"`
}

type ctxSpec struct {
	Name string `validate:"required,context_name"`
}

func (suite *ValidationTestSuite) TestStruct() {
	tests := []struct {
		name    string
		input   any
		wantOK  bool
		wantMsg string
	}{
		{
			name:   "when fields are valid passes",
			input:  varSpec{Name: "MY_VAR", Scope: "user"},
			wantOK: true,
		},
		{
			name:    "when name starts with a digit fails with hint",
			input:   varSpec{Name: "1BAD", Scope: "user"},
			wantMsg: "must start with a letter or underscore",
		},
		{
			name:    "when scope is unknown fails with hint",
			input:   varSpec{Name: "MY_VAR", Scope: "global"},
			wantMsg: "must be one of: system, user, process",
		},
		{
			name:   "when context name has spaces passes",
			input:  ctxSpec{Name: "Database Settings"},
			wantOK: true,
		},
		{
			name:    "when context name has a slash fails with hint",
			input:   ctxSpec{Name: "bad/name"},
			wantMsg: "may only contain alphanumerics, spaces, hyphens, and underscores",
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			msg, ok := validation.Struct(tc.input)
			suite.Equal(tc.wantOK, ok)
			if !tc.wantOK {
				suite.Contains(msg, tc.wantMsg)
			}
		})
	}
}

func (suite *ValidationTestSuite) TestIsEnvName() {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "when uppercase with underscores valid", input: "MY_APP_HOME", want: true},
		{name: "when starting with an underscore valid", input: "_HIDDEN", want: true},
		{name: "when starting with a digit invalid", input: "1BAD", want: false},
		{name: "when containing a hyphen invalid", input: "BAD-NAME", want: false},
		{name: "when containing an equals sign invalid", input: "A=B", want: false},
		{name: "when empty invalid", input: "", want: false},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.Equal(tc.want, validation.IsEnvName(tc.input))
		})
	}
}
