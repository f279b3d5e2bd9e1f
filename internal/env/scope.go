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
	"fmt"
	"strings"
)

// Scope is the namespace an environment variable belongs to, determining
// accessibility and persistence characteristics.
type Scope string

// Environment variable scopes.
const (
	// ScopeSystem is available to all users and processes on the machine.
	ScopeSystem Scope = "system"
	// ScopeUser is available to all processes of the current user.
	ScopeUser Scope = "user"
	// ScopeProcess is available only to a specific process.
	ScopeProcess Scope = "process"
)

// ParseScope converts a string into a Scope, case-insensitively.
func ParseScope(
	s string,
) (Scope, error) {
	switch Scope(strings.ToLower(s)) {
	case ScopeSystem:
		return ScopeSystem, nil
	case ScopeUser:
		return ScopeUser, nil
	case ScopeProcess:
		return ScopeProcess, nil
	default:
		return "", fmt.Errorf("%w: invalid scope %q", ErrInvalid, s)
	}
}

// RequiresElevation reports whether modifying variables in this scope
// requires elevated privileges.
func (s Scope) RequiresElevation() bool {
	return s == ScopeSystem
}

// PersistenceInfo describes how variables in a scope are persisted.
type PersistenceInfo struct {
	Location        string `json:"location"`
	Permanent       bool   `json:"permanent"`
	RequiresRestart bool   `json:"requires_restart"`
}

// Persistence returns persistence details for the scope.
func (s Scope) Persistence() PersistenceInfo {
	switch s {
	case ScopeSystem:
		return PersistenceInfo{
			Location:        "/etc/environment or registry",
			Permanent:       true,
			RequiresRestart: true,
		}
	case ScopeUser:
		return PersistenceInfo{
			Location:        "~/.bashrc or user registry",
			Permanent:       true,
			RequiresRestart: false,
		}
	default:
		return PersistenceInfo{
			Location:        "process memory",
			Permanent:       false,
			RequiresRestart: false,
		}
	}
}

// String implements fmt.Stringer.
func (s Scope) String() string {
	return string(s)
}
