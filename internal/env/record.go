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
)

// Record is the flat, serializable form of a Variable used at the
// presentation and export boundary.
type Record struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	Scope     string    `json:"scope"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToRecord converts the variable into its serializable form.
func (v *Variable) ToRecord() Record {
	return Record{
		ID:        v.ID,
		Name:      v.Name,
		Value:     v.Value,
		Scope:     string(v.Scope),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// FromRecord rehydrates a Variable from its serialized form. No creation
// event is produced: the record describes an already-existing variable.
func FromRecord(
	r Record,
) (*Variable, error) {
	scope, err := ParseScope(r.Scope)
	if err != nil {
		return nil, err
	}

	if r.ID == "" {
		return nil, fmt.Errorf("%w: record id is required", ErrInvalid)
	}

	v := &Variable{
		ID:        r.ID,
		Name:      r.Name,
		Value:     r.Value,
		Scope:     scope,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}

	if err := v.checkInvariants(); err != nil {
		return nil, err
	}

	return v, nil
}
