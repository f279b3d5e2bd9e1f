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
	"time"

	"github.com/google/uuid"

	"github.com/retr0h/envscope/internal/validation"
)

// Variable is a persisted environment variable within a scope.
type Variable struct {
	ID        string
	Name      string
	Value     string
	Scope     Scope
	CreatedAt time.Time
	UpdatedAt time.Time
}

// variableSpec is the validated shape of variable inputs.
type variableSpec struct {
	Name  string `validate:"required,max=255,env_name"`
	Value string `validate:"max=32767"`
	Scope string `validate:"required,env_scope"`
}

// NewVariable constructs a validated variable and returns its creation
// event. System-scope variables must have non-empty values.
func NewVariable(
	name string,
	value string,
	scope Scope,
) (*Variable, Event, error) {
	if msg, ok := validation.Struct(variableSpec{
		Name:  name,
		Value: value,
		Scope: string(scope),
	}); !ok {
		return nil, Event{}, fmt.Errorf("%w: %s", ErrInvalid, msg)
	}

	now := nowFn()
	v := &Variable{
		ID:        uuid.New().String(),
		Name:      name,
		Value:     value,
		Scope:     scope,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := v.checkInvariants(); err != nil {
		return nil, Event{}, err
	}

	return v, Event{
		Kind:       EventCreated,
		VariableID: v.ID,
		Name:       v.Name,
		NewValue:   v.Value,
		Scope:      v.Scope,
		Timestamp:  now,
	}, nil
}

// UpdateValue replaces the variable's value, bumping UpdatedAt strictly
// later than the previous timestamp. Equal values are a no-op and return
// no event.
func (v *Variable) UpdateValue(
	newValue string,
) (Event, error) {
	if newValue == v.Value {
		return Event{}, nil
	}

	if msg, ok := validation.Struct(variableSpec{
		Name:  v.Name,
		Value: newValue,
		Scope: string(v.Scope),
	}); !ok {
		return Event{}, fmt.Errorf("%w: %s", ErrInvalid, msg)
	}

	if v.Scope == ScopeSystem && newValue == "" {
		return Event{}, fmt.Errorf(
			"%w: system variables cannot have empty values", ErrInvalid)
	}

	old := v.Value
	v.Value = newValue
	v.UpdatedAt = laterThan(v.UpdatedAt)

	return Event{
		Kind:       EventUpdated,
		VariableID: v.ID,
		Name:       v.Name,
		OldValue:   old,
		NewValue:   v.Value,
		Scope:      v.Scope,
		Timestamp:  v.UpdatedAt,
	}, nil
}

// ChangeScope moves the variable to a new scope. System variables cannot
// be rescoped. Equal scopes are a no-op and return no event.
func (v *Variable) ChangeScope(
	newScope Scope,
) (Event, error) {
	if newScope == v.Scope {
		return Event{}, nil
	}

	if v.Scope == ScopeSystem {
		return Event{}, fmt.Errorf(
			"%w: cannot change scope of system variables", ErrRestricted)
	}

	old := v.Scope
	v.Scope = newScope
	v.UpdatedAt = laterThan(v.UpdatedAt)

	if err := v.checkInvariants(); err != nil {
		v.Scope = old
		return Event{}, err
	}

	return Event{
		Kind:       EventUpdated,
		VariableID: v.ID,
		Name:       v.Name,
		OldValue:   v.Value,
		NewValue:   v.Value,
		Scope:      v.Scope,
		Timestamp:  v.UpdatedAt,
		Metadata: map[string]string{
			"scope_changed": "true",
			"old_scope":     string(old),
		},
	}, nil
}

// DeletionEvent returns the event describing this variable's removal.
// The actual delete is the store's responsibility.
func (v *Variable) DeletionEvent() Event {
	return Event{
		Kind:       EventDeleted,
		VariableID: v.ID,
		Name:       v.Name,
		OldValue:   v.Value,
		Scope:      v.Scope,
		Timestamp:  nowFn(),
	}
}

// checkInvariants enforces cross-field rules after construction or mutation.
func (v *Variable) checkInvariants() error {
	if v.Scope == ScopeSystem && v.Value == "" {
		return fmt.Errorf(
			"%w: system variables cannot have empty values", ErrInvalid)
	}
	return nil
}

// laterThan returns the current time, nudged forward if the clock has not
// advanced past prev. Timestamp ordering is part of the update contract.
func laterThan(
	prev time.Time,
) time.Time {
	now := nowFn()
	if !now.After(prev) {
		return prev.Add(time.Nanosecond)
	}
	return now
}

// String implements fmt.Stringer, masking sensitive-looking values.
func (v *Variable) String() string {
	return fmt.Sprintf("%s=%s (%s)", v.Name, MaskValue(v.Value), v.Scope)
}
