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

package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// envNameRe matches POSIX-style environment variable names.
var envNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// contextNameRe matches human-readable context names.
var contextNameRe = regexp.MustCompile(`^[A-Za-z0-9 _-]+$`)

// validScopes are the accepted environment variable scopes.
var validScopes = map[string]struct{}{
	"system":  {},
	"user":    {},
	"process": {},
}

func init() {
	// Cannot error: tags are non-empty and functions are non-nil.
	_ = instance.RegisterValidation("env_name", validEnvName)
	_ = instance.RegisterValidation("context_name", validContextName)
	_ = instance.RegisterValidation("env_scope", validEnvScope)
}

// validEnvName checks the env_name tag against the POSIX name pattern.
func validEnvName(fl validator.FieldLevel) bool {
	return envNameRe.MatchString(fl.Field().String())
}

// IsEnvName reports whether s is a valid POSIX-style environment
// variable name. Used for cheap checks outside struct validation.
func IsEnvName(s string) bool {
	return envNameRe.MatchString(s)
}

// validContextName checks the context_name tag against the context pattern.
func validContextName(fl validator.FieldLevel) bool {
	return contextNameRe.MatchString(fl.Field().String())
}

// validEnvScope checks the env_scope tag against the scope enum.
func validEnvScope(fl validator.FieldLevel) bool {
	_, ok := validScopes[fl.Field().String()]
	return ok
}
