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

// Package audit provides audit logging types and storage.
package audit

import (
	"context"
	"time"
)

// Action identifies the kind of variable operation an entry records.
type Action string

const (
	// ActionCreated records a variable creation.
	ActionCreated Action = "created"
	// ActionUpdated records a value change.
	ActionUpdated Action = "updated"
	// ActionDeleted records a variable deletion.
	ActionDeleted Action = "deleted"
	// ActionAccessed records a variable read.
	ActionAccessed Action = "accessed"
)

// Entry represents a single audit log record. Entries are immutable
// once written.
type Entry struct {
	// ID is the unique identifier for this audit entry.
	ID string `json:"id"`
	// VariableID is the id of the variable the action touched.
	VariableID string `json:"variable_id"`
	// VariableName is the variable name at the time of the action.
	VariableName string `json:"variable_name"`
	// Action is the kind of operation performed.
	Action Action `json:"action"`
	// User is the subject who performed the action.
	User string `json:"user"`
	// Timestamp is when the action was processed.
	Timestamp time.Time `json:"timestamp"`
	// Scope is the variable scope at the time of the action.
	Scope string `json:"scope"`
	// OldValue is the value before an update, when applicable.
	OldValue *string `json:"old_value,omitempty"`
	// NewValue is the value after a create or update, when applicable.
	NewValue *string `json:"new_value,omitempty"`
	// Metadata carries optional action-specific details.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Store persists audit entries. Writes are append-only.
type Store interface {
	// Write persists an audit entry.
	Write(ctx context.Context, entry Entry) error
	// Get retrieves a single audit entry by ID.
	Get(ctx context.Context, id string) (*Entry, error)
	// List retrieves entries newest first with pagination, returning
	// the page and the total count.
	List(ctx context.Context, limit int, offset int) ([]Entry, int, error)
	// ByVariable retrieves entries for one variable, newest first.
	ByVariable(ctx context.Context, variableID string, limit int, offset int) ([]Entry, int, error)
	// ByUser retrieves entries attributed to one user, newest first.
	ByUser(ctx context.Context, user string, limit int, offset int) ([]Entry, int, error)
	// ByRange retrieves entries whose timestamp falls in [from, to],
	// newest first.
	ByRange(ctx context.Context, from time.Time, to time.Time) ([]Entry, error)
	// ByVariableAndRange combines ByVariable and ByRange.
	ByVariableAndRange(
		ctx context.Context,
		variableID string,
		from time.Time,
		to time.Time,
	) ([]Entry, error)
	// Count returns the total number of entries.
	Count(ctx context.Context) (int, error)
	// CountByVariable returns the number of entries for one variable.
	CountByVariable(ctx context.Context, variableID string) (int, error)
	// MostRecent returns the newest entry for a variable, or nil when
	// none exist.
	MostRecent(ctx context.Context, variableID string) (*Entry, error)
}
