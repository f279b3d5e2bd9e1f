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

// Package env provides the environment variable and context domain model
// with in-memory storage.
package env

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors returned by the domain and store layers.
var (
	// ErrInvalid indicates user-correctable input that failed validation.
	ErrInvalid = errors.New("validation failed")
	// ErrNotFound indicates a lookup miss.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a uniqueness violation on (name, scope) or a
	// duplicate context name.
	ErrConflict = errors.New("already exists")
	// ErrRestricted indicates an operation forbidden by scope rules, such
	// as rescoping a system variable or touching a restricted system name.
	ErrRestricted = errors.New("operation not permitted")
)

// Limits enforced on variable and context construction.
const (
	MaxNameLength        = 255
	MaxValueLength       = 32767
	MaxContextNameLength = 100
	MaxDescriptionLength = 1000
)

// nowFn is the function used for timestamps (injectable for testing).
var nowFn = time.Now

// Store persists environment variables.
type Store interface {
	// Save inserts or replaces a variable, keeping the (name, scope)
	// index in sync.
	Save(ctx context.Context, v *Variable) error
	// Get retrieves a variable by id. Returns ErrNotFound on a miss.
	Get(ctx context.Context, id string) (*Variable, error)
	// GetByNameScope retrieves a variable by its (name, scope) key.
	GetByNameScope(ctx context.Context, name string, scope Scope) (*Variable, error)
	// ByScope lists all variables in a scope.
	ByScope(ctx context.Context, scope Scope) ([]*Variable, error)
	// List lists all variables.
	List(ctx context.Context) ([]*Variable, error)
	// Delete removes a variable by id. Returns ErrNotFound on a miss.
	Delete(ctx context.Context, id string) error
	// ExistsByNameScope reports whether the (name, scope) key is taken.
	ExistsByNameScope(ctx context.Context, name string, scope Scope) (bool, error)
	// NamesByScope returns the set of variable names in a scope.
	NamesByScope(ctx context.Context, scope Scope) (map[string]struct{}, error)
}

// ContextStore persists environment contexts.
type ContextStore interface {
	// Save inserts or replaces a context, keeping the name index in sync.
	Save(ctx context.Context, c *Context) error
	// Get retrieves a context by id. Returns ErrNotFound on a miss.
	Get(ctx context.Context, id string) (*Context, error)
	// GetByName retrieves a context by name.
	GetByName(ctx context.Context, name string) (*Context, error)
	// List lists all contexts.
	List(ctx context.Context) ([]*Context, error)
	// Delete removes a context by id. Returns ErrNotFound on a miss.
	Delete(ctx context.Context, id string) error
	// ExistsByName reports whether the context name is taken.
	ExistsByName(ctx context.Context, name string) (bool, error)
	// ContainingVariable lists contexts that reference the variable id.
	ContainingVariable(ctx context.Context, variableID string) ([]*Context, error)
}

// AuditRecorder records variable lifecycle actions. Implemented by
// audit.Recorder; declared here so the manager depends on behavior,
// not the audit package.
type AuditRecorder interface {
	RecordCreation(ctx context.Context, v *Variable, user string) error
	RecordUpdate(ctx context.Context, v *Variable, oldValue string, user string) error
	RecordDeletion(ctx context.Context, v *Variable, user string) error
	RecordAccess(ctx context.Context, v *Variable, user string) error
}
