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

// ensure MemoryStore implements Store at compile time.
var _ Store = (*MemoryStore)(nil)

// nameScopeKey is the (name, scope) secondary index key.
type nameScopeKey struct {
	name  string
	scope Scope
}

// MemoryStore implements Store with in-process maps. State is lost on
// restart. Guarded by a mutex for concurrent callers.
type MemoryStore struct {
	mu          sync.Mutex
	byID        map[string]*Variable
	byNameScope map[nameScopeKey]*Variable
}

// NewMemoryStore creates a new MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:        make(map[string]*Variable),
		byNameScope: make(map[nameScopeKey]*Variable),
	}
}

// Save inserts or replaces a variable, keeping the (name, scope) index in
// sync. A save that moves a variable to a new key clears the old index
// entry.
func (s *MemoryStore) Save(
	_ context.Context,
	v *Variable,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.byID[v.ID]; ok {
		delete(s.byNameScope, nameScopeKey{prev.Name, prev.Scope})
	}

	dup := *v
	s.byID[v.ID] = &dup
	s.byNameScope[nameScopeKey{v.Name, v.Scope}] = &dup

	return nil
}

// Get retrieves a variable by id.
func (s *MemoryStore) Get(
	_ context.Context,
	id string,
) (*Variable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("variable %s: %w", id, ErrNotFound)
	}

	dup := *v
	return &dup, nil
}

// GetByNameScope retrieves a variable by its (name, scope) key.
func (s *MemoryStore) GetByNameScope(
	_ context.Context,
	name string,
	scope Scope,
) (*Variable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.byNameScope[nameScopeKey{name, scope}]
	if !ok {
		return nil, fmt.Errorf("variable %s in %s scope: %w", name, scope, ErrNotFound)
	}

	dup := *v
	return &dup, nil
}

// ByScope lists all variables in a scope, sorted by name.
func (s *MemoryStore) ByScope(
	_ context.Context,
	scope Scope,
) ([]*Variable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Variable, 0)
	for _, v := range s.byID {
		if v.Scope == scope {
			dup := *v
			out = append(out, &dup)
		}
	}

	sortVariables(out)
	return out, nil
}

// List lists all variables, sorted by scope then name.
func (s *MemoryStore) List(
	_ context.Context,
) ([]*Variable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Variable, 0, len(s.byID))
	for _, v := range s.byID {
		dup := *v
		out = append(out, &dup)
	}

	sortVariables(out)
	return out, nil
}

// Delete removes a variable by id, clearing both indexes.
func (s *MemoryStore) Delete(
	_ context.Context,
	id string,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("variable %s: %w", id, ErrNotFound)
	}

	delete(s.byID, id)
	delete(s.byNameScope, nameScopeKey{v.Name, v.Scope})

	return nil
}

// ExistsByNameScope reports whether the (name, scope) key is taken.
func (s *MemoryStore) ExistsByNameScope(
	_ context.Context,
	name string,
	scope Scope,
) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.byNameScope[nameScopeKey{name, scope}]
	return ok, nil
}

// NamesByScope returns the set of variable names in a scope.
func (s *MemoryStore) NamesByScope(
	_ context.Context,
	scope Scope,
) (map[string]struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make(map[string]struct{})
	for _, v := range s.byID {
		if v.Scope == scope {
			names[v.Name] = struct{}{}
		}
	}

	return names, nil
}

// sortVariables orders variables by scope then name for stable listings.
func sortVariables(
	vars []*Variable,
) {
	sort.Slice(vars, func(i, j int) bool {
		if vars[i].Scope != vars[j].Scope {
			return vars[i].Scope < vars[j].Scope
		}
		return vars[i].Name < vars[j].Name
	})
}
