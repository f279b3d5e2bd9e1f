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
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/retr0h/envscope/internal/validation"
)

// Context is a named grouping of variable references. It holds variable
// ids only; deleting a context never deletes its variables.
type Context struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	variableIDs map[string]struct{}
}

// contextSpec is the validated shape of context inputs.
type contextSpec struct {
	Name        string `validate:"required,max=100,context_name"`
	Description string `validate:"max=1000"`
}

// NewContext constructs a validated context. The name is trimmed of
// surrounding whitespace.
func NewContext(
	name string,
	description string,
) (*Context, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: context name cannot be empty", ErrInvalid)
	}

	if msg, ok := validation.Struct(contextSpec{
		Name:        name,
		Description: description,
	}); !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, msg)
	}

	now := nowFn()
	return &Context{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(name),
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		variableIDs: make(map[string]struct{}),
	}, nil
}

// UpdateDescription replaces the description, reporting whether it
// changed. Equal descriptions are a no-op.
func (c *Context) UpdateDescription(
	description string,
) (bool, error) {
	if description == c.Description {
		return false, nil
	}

	if len(description) > MaxDescriptionLength {
		return false, fmt.Errorf(
			"%w: description cannot exceed %d characters",
			ErrInvalid, MaxDescriptionLength)
	}

	c.Description = description
	c.UpdatedAt = laterThan(c.UpdatedAt)
	return true, nil
}

// AddVariable records a variable id in the context, reporting whether it
// was newly added.
func (c *Context) AddVariable(
	variableID string,
) bool {
	if _, ok := c.variableIDs[variableID]; ok {
		return false
	}
	c.variableIDs[variableID] = struct{}{}
	c.UpdatedAt = laterThan(c.UpdatedAt)
	return true
}

// RemoveVariable drops a variable id from the context, reporting whether
// it was present.
func (c *Context) RemoveVariable(
	variableID string,
) bool {
	if _, ok := c.variableIDs[variableID]; !ok {
		return false
	}
	delete(c.variableIDs, variableID)
	c.UpdatedAt = laterThan(c.UpdatedAt)
	return true
}

// ContainsVariable reports whether the context references the variable id.
func (c *Context) ContainsVariable(
	variableID string,
) bool {
	_, ok := c.variableIDs[variableID]
	return ok
}

// VariableIDs returns the referenced variable ids, sorted for stable
// output.
func (c *Context) VariableIDs() []string {
	ids := make([]string, 0, len(c.variableIDs))
	for id := range c.variableIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// VariableCount returns the number of referenced variables.
func (c *Context) VariableCount() int {
	return len(c.variableIDs)
}

// clone returns a deep copy so store snapshots cannot be mutated by
// callers.
func (c *Context) clone() *Context {
	ids := make(map[string]struct{}, len(c.variableIDs))
	for id := range c.variableIDs {
		ids[id] = struct{}{}
	}
	dup := *c
	dup.variableIDs = ids
	return &dup
}

// String implements fmt.Stringer.
func (c *Context) String() string {
	return fmt.Sprintf("Context %q (%d variables)", c.Name, c.VariableCount())
}
