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
	"context"
	"fmt"
	"log/slog"
)

// restrictedSystemNames are system-scope names that cannot be created,
// modified, or deleted through the manager.
var restrictedSystemNames = map[string]struct{}{
	"PATH":  {},
	"HOME":  {},
	"USER":  {},
	"SHELL": {},
}

// Manager coordinates variable lifecycle operations: validation, the
// (name, scope) uniqueness rule, persistence, and audit recording.
type Manager struct {
	logger *slog.Logger
	store  Store
	audit  AuditRecorder
	user   string
}

// NewManager creates a new Manager. The user attributes audit entries
// for every mutation performed through this instance.
func NewManager(
	logger *slog.Logger,
	store Store,
	audit AuditRecorder,
	user string,
) *Manager {
	return &Manager{
		logger: logger,
		store:  store,
		audit:  audit,
		user:   user,
	}
}

// Create validates and persists a new variable. The (name, scope) pair
// must be unused. Returns the created variable and its creation event.
func (m *Manager) Create(
	ctx context.Context,
	name string,
	value string,
	scope Scope,
) (*Variable, Event, error) {
	if err := checkRestricted(name, scope); err != nil {
		return nil, Event{}, err
	}

	taken, err := m.store.ExistsByNameScope(ctx, name, scope)
	if err != nil {
		return nil, Event{}, fmt.Errorf("checking uniqueness: %w", err)
	}
	if taken {
		return nil, Event{}, fmt.Errorf("variable %s in %s scope: %w", name, scope, ErrConflict)
	}

	v, event, err := NewVariable(name, value, scope)
	if err != nil {
		return nil, Event{}, err
	}

	if err := m.store.Save(ctx, v); err != nil {
		return nil, Event{}, fmt.Errorf("saving variable: %w", err)
	}

	if err := m.audit.RecordCreation(ctx, v, m.user); err != nil {
		m.logger.Warn(
			"failed to record creation",
			slog.String("variable_id", v.ID),
			slog.String("error", err.Error()),
		)
	}

	m.logger.Debug(
		"variable created",
		slog.String("variable_id", v.ID),
		slog.String("name", v.Name),
		slog.String("scope", v.Scope.String()),
	)

	return v, event, nil
}

// Update changes the value of the variable identified by (name, scope).
// A no-op update returns the variable unchanged with a zero event.
func (m *Manager) Update(
	ctx context.Context,
	name string,
	scope Scope,
	newValue string,
) (*Variable, Event, error) {
	if err := checkRestricted(name, scope); err != nil {
		return nil, Event{}, err
	}

	v, err := m.store.GetByNameScope(ctx, name, scope)
	if err != nil {
		return nil, Event{}, err
	}

	oldValue := v.Value
	event, err := v.UpdateValue(newValue)
	if err != nil {
		return nil, Event{}, err
	}
	if event.Kind == "" {
		return v, Event{}, nil
	}

	if err := m.store.Save(ctx, v); err != nil {
		return nil, Event{}, fmt.Errorf("saving variable: %w", err)
	}

	if err := m.audit.RecordUpdate(ctx, v, oldValue, m.user); err != nil {
		m.logger.Warn(
			"failed to record update",
			slog.String("variable_id", v.ID),
			slog.String("error", err.Error()),
		)
	}

	return v, event, nil
}

// Set creates the variable when absent and updates its value when
// present.
func (m *Manager) Set(
	ctx context.Context,
	name string,
	value string,
	scope Scope,
) (*Variable, Event, error) {
	taken, err := m.store.ExistsByNameScope(ctx, name, scope)
	if err != nil {
		return nil, Event{}, fmt.Errorf("checking uniqueness: %w", err)
	}

	if taken {
		return m.Update(ctx, name, scope, value)
	}
	return m.Create(ctx, name, value, scope)
}

// Delete removes the variable identified by (name, scope).
func (m *Manager) Delete(
	ctx context.Context,
	name string,
	scope Scope,
) (Event, error) {
	if err := checkRestricted(name, scope); err != nil {
		return Event{}, err
	}

	v, err := m.store.GetByNameScope(ctx, name, scope)
	if err != nil {
		return Event{}, err
	}

	if err := m.store.Delete(ctx, v.ID); err != nil {
		return Event{}, fmt.Errorf("deleting variable: %w", err)
	}

	if err := m.audit.RecordDeletion(ctx, v, m.user); err != nil {
		m.logger.Warn(
			"failed to record deletion",
			slog.String("variable_id", v.ID),
			slog.String("error", err.Error()),
		)
	}

	m.logger.Debug(
		"variable deleted",
		slog.String("variable_id", v.ID),
		slog.String("name", v.Name),
		slog.String("scope", v.Scope.String()),
	)

	return v.DeletionEvent(), nil
}

// Get retrieves a variable by id and records the access.
func (m *Manager) Get(
	ctx context.Context,
	id string,
) (*Variable, error) {
	v, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := m.audit.RecordAccess(ctx, v, m.user); err != nil {
		m.logger.Warn(
			"failed to record access",
			slog.String("variable_id", v.ID),
			slog.String("error", err.Error()),
		)
	}

	return v, nil
}

// GetByNameScope retrieves a variable by its (name, scope) key and
// records the access.
func (m *Manager) GetByNameScope(
	ctx context.Context,
	name string,
	scope Scope,
) (*Variable, error) {
	v, err := m.store.GetByNameScope(ctx, name, scope)
	if err != nil {
		return nil, err
	}

	if err := m.audit.RecordAccess(ctx, v, m.user); err != nil {
		m.logger.Warn(
			"failed to record access",
			slog.String("variable_id", v.ID),
			slog.String("error", err.Error()),
		)
	}

	return v, nil
}

// ByScope lists all variables in a scope, sorted by name.
func (m *Manager) ByScope(
	ctx context.Context,
	scope Scope,
) ([]*Variable, error) {
	return m.store.ByScope(ctx, scope)
}

// List lists all variables across scopes.
func (m *Manager) List(
	ctx context.Context,
) ([]*Variable, error) {
	return m.store.List(ctx)
}

// checkRestricted rejects mutations of restricted names at system scope.
func checkRestricted(
	name string,
	scope Scope,
) error {
	if scope != ScopeSystem {
		return nil
	}
	if _, ok := restrictedSystemNames[name]; ok {
		return fmt.Errorf("system variable %s is restricted: %w", name, ErrRestricted)
	}
	return nil
}
