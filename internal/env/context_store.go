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
	"sort"
	"sync"
)

// ensure MemoryContextStore implements ContextStore at compile time.
var _ ContextStore = (*MemoryContextStore)(nil)

// MemoryContextStore implements ContextStore with in-process maps. The
// name index enforces lookups by the unique context name.
type MemoryContextStore struct {
	mu     sync.Mutex
	byID   map[string]*Context
	byName map[string]*Context
}

// NewMemoryContextStore creates a new MemoryContextStore.
func NewMemoryContextStore() *MemoryContextStore {
	return &MemoryContextStore{
		byID:   make(map[string]*Context),
		byName: make(map[string]*Context),
	}
}

// Save inserts or replaces a context, keeping the name index in sync. A
// rename clears the old name entry.
func (s *MemoryContextStore) Save(
	_ context.Context,
	c *Context,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.byID[c.ID]; ok {
		delete(s.byName, prev.Name)
	}

	dup := c.clone()
	s.byID[c.ID] = dup
	s.byName[c.Name] = dup

	return nil
}

// Get retrieves a context by id.
func (s *MemoryContextStore) Get(
	_ context.Context,
	id string,
) (*Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("context %s: %w", id, ErrNotFound)
	}

	return c.clone(), nil
}

// GetByName retrieves a context by its unique name.
func (s *MemoryContextStore) GetByName(
	_ context.Context,
	name string,
) (*Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("context %q: %w", name, ErrNotFound)
	}

	return c.clone(), nil
}

// List lists all contexts, sorted by name.
func (s *MemoryContextStore) List(
	_ context.Context,
) ([]*Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Context, 0, len(s.byID))
	for _, c := range s.byID {
		out = append(out, c.clone())
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete removes a context by id, clearing both indexes.
func (s *MemoryContextStore) Delete(
	_ context.Context,
	id string,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("context %s: %w", id, ErrNotFound)
	}

	delete(s.byID, id)
	delete(s.byName, c.Name)

	return nil
}

// ExistsByName reports whether a context name is taken.
func (s *MemoryContextStore) ExistsByName(
	_ context.Context,
	name string,
) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.byName[name]
	return ok, nil
}

// ContainingVariable lists all contexts that include the given variable,
// sorted by name.
func (s *MemoryContextStore) ContainingVariable(
	_ context.Context,
	variableID string,
) ([]*Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Context, 0)
	for _, c := range s.byID {
		if c.ContainsVariable(variableID) {
			out = append(out, c.clone())
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
