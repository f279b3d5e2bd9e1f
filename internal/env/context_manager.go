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

// ContextManager coordinates named context lifecycle operations. A
// context groups variable ids without owning the variables.
type ContextManager struct {
	logger   *slog.Logger
	store    ContextStore
	varStore Store
}

// NewContextManager creates a new ContextManager.
func NewContextManager(
	logger *slog.Logger,
	store ContextStore,
	varStore Store,
) *ContextManager {
	return &ContextManager{
		logger:   logger,
		store:    store,
		varStore: varStore,
	}
}

// Create validates and persists a new context. The name must be unused.
func (m *ContextManager) Create(
	ctx context.Context,
	name string,
	description string,
) (*Context, error) {
	c, err := NewContext(name, description)
	if err != nil {
		return nil, err
	}

	taken, err := m.store.ExistsByName(ctx, c.Name)
	if err != nil {
		return nil, fmt.Errorf("checking uniqueness: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("context %q: %w", c.Name, ErrConflict)
	}

	if err := m.store.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("saving context: %w", err)
	}

	m.logger.Debug(
		"context created",
		slog.String("context_id", c.ID),
		slog.String("name", c.Name),
	)

	return c, nil
}

// UpdateDescription changes a context description.
func (m *ContextManager) UpdateDescription(
	ctx context.Context,
	name string,
	description string,
) (*Context, error) {
	c, err := m.store.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	changed, err := c.UpdateDescription(description)
	if err != nil {
		return nil, err
	}
	if !changed {
		return c, nil
	}

	if err := m.store.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("saving context: %w", err)
	}

	return c, nil
}

// Delete removes a context by name. Variables referenced by the context
// are untouched.
func (m *ContextManager) Delete(
	ctx context.Context,
	name string,
) error {
	c, err := m.store.GetByName(ctx, name)
	if err != nil {
		return err
	}

	if err := m.store.Delete(ctx, c.ID); err != nil {
		return fmt.Errorf("deleting context: %w", err)
	}

	m.logger.Debug(
		"context deleted",
		slog.String("context_id", c.ID),
		slog.String("name", c.Name),
	)

	return nil
}

// AddVariable adds a variable to a context. Both the context and the
// variable must exist.
func (m *ContextManager) AddVariable(
	ctx context.Context,
	contextName string,
	variableID string,
) (*Context, error) {
	c, err := m.store.GetByName(ctx, contextName)
	if err != nil {
		return nil, err
	}

	if _, err := m.varStore.Get(ctx, variableID); err != nil {
		return nil, err
	}

	if !c.AddVariable(variableID) {
		return c, nil
	}

	if err := m.store.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("saving context: %w", err)
	}

	return c, nil
}

// RemoveVariable removes a variable from a context. Removing an absent
// variable is a no-op.
func (m *ContextManager) RemoveVariable(
	ctx context.Context,
	contextName string,
	variableID string,
) (*Context, error) {
	c, err := m.store.GetByName(ctx, contextName)
	if err != nil {
		return nil, err
	}

	if !c.RemoveVariable(variableID) {
		return c, nil
	}

	if err := m.store.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("saving context: %w", err)
	}

	return c, nil
}

// Get retrieves a context by id.
func (m *ContextManager) Get(
	ctx context.Context,
	id string,
) (*Context, error) {
	return m.store.Get(ctx, id)
}

// GetByName retrieves a context by name.
func (m *ContextManager) GetByName(
	ctx context.Context,
	name string,
) (*Context, error) {
	return m.store.GetByName(ctx, name)
}

// List lists all contexts sorted by name.
func (m *ContextManager) List(
	ctx context.Context,
) ([]*Context, error) {
	return m.store.List(ctx)
}

// ContainingVariable lists contexts that reference the given variable.
func (m *ContextManager) ContainingVariable(
	ctx context.Context,
	variableID string,
) ([]*Context, error) {
	return m.store.ContainingVariable(ctx, variableID)
}
