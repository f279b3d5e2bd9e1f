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

package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/retr0h/envscope/internal/env"
)

// nowFn is the function used for timestamps (injectable for testing).
var nowFn = time.Now

// ensure Recorder implements env.AuditRecorder at compile time.
var _ env.AuditRecorder = (*Recorder)(nil)

// Recorder builds audit entries from variable lifecycle actions and
// writes them to a Store.
type Recorder struct {
	logger *slog.Logger
	store  Store
}

// NewRecorder creates a new Recorder.
func NewRecorder(
	logger *slog.Logger,
	store Store,
) *Recorder {
	return &Recorder{
		logger: logger,
		store:  store,
	}
}

// RecordCreation writes a created entry with the new value.
func (r *Recorder) RecordCreation(
	ctx context.Context,
	v *env.Variable,
	user string,
) error {
	entry := r.newEntry(v, ActionCreated, user)
	newValue := v.Value
	entry.NewValue = &newValue

	return r.write(ctx, entry)
}

// RecordUpdate writes an updated entry holding both the old and new
// values.
func (r *Recorder) RecordUpdate(
	ctx context.Context,
	v *env.Variable,
	oldValue string,
	user string,
) error {
	entry := r.newEntry(v, ActionUpdated, user)
	newValue := v.Value
	entry.OldValue = &oldValue
	entry.NewValue = &newValue

	return r.write(ctx, entry)
}

// RecordDeletion writes a deleted entry with the last value.
func (r *Recorder) RecordDeletion(
	ctx context.Context,
	v *env.Variable,
	user string,
) error {
	entry := r.newEntry(v, ActionDeleted, user)
	oldValue := v.Value
	entry.OldValue = &oldValue

	return r.write(ctx, entry)
}

// RecordAccess writes an accessed entry. Values are not copied into
// access entries.
func (r *Recorder) RecordAccess(
	ctx context.Context,
	v *env.Variable,
	user string,
) error {
	return r.write(ctx, r.newEntry(v, ActionAccessed, user))
}

// newEntry builds the common fields of an audit entry.
func (r *Recorder) newEntry(
	v *env.Variable,
	action Action,
	user string,
) Entry {
	return Entry{
		ID:           uuid.NewString(),
		VariableID:   v.ID,
		VariableName: v.Name,
		Action:       action,
		User:         user,
		Timestamp:    nowFn(),
		Scope:        v.Scope.String(),
	}
}

func (r *Recorder) write(
	ctx context.Context,
	entry Entry,
) error {
	if err := r.store.Write(ctx, entry); err != nil {
		return fmt.Errorf("writing audit entry: %w", err)
	}

	r.logger.Debug(
		"audit entry written",
		slog.String("id", entry.ID),
		slog.String("action", string(entry.Action)),
		slog.String("variable_id", entry.VariableID),
	)

	return nil
}
