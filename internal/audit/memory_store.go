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
	"sort"
	"sync"
	"time"
)

// ensure MemoryStore implements Store at compile time.
var _ Store = (*MemoryStore)(nil)

// MemoryStore implements Store with in-process maps. The by-variable
// and by-user indexes are kept in sync on every write. Entries are
// never mutated or deleted.
type MemoryStore struct {
	mu         sync.Mutex
	logger     *slog.Logger
	byID       map[string]Entry
	byVariable map[string][]string
	byUser     map[string][]string
	order      []string
}

// NewMemoryStore creates a new MemoryStore.
func NewMemoryStore(
	logger *slog.Logger,
) *MemoryStore {
	return &MemoryStore{
		logger:     logger,
		byID:       make(map[string]Entry),
		byVariable: make(map[string][]string),
		byUser:     make(map[string][]string),
	}
}

// Write persists an audit entry and updates all indexes.
func (s *MemoryStore) Write(
	_ context.Context,
	entry Entry,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[entry.ID]; ok {
		return fmt.Errorf("audit entry %s already written", entry.ID)
	}

	s.byID[entry.ID] = entry
	s.byVariable[entry.VariableID] = append(s.byVariable[entry.VariableID], entry.ID)
	s.byUser[entry.User] = append(s.byUser[entry.User], entry.ID)
	s.order = append(s.order, entry.ID)

	return nil
}

// Get retrieves a single audit entry by ID.
func (s *MemoryStore) Get(
	_ context.Context,
	id string,
) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("audit entry %s not found", id)
	}

	return &entry, nil
}

// List retrieves entries newest first with pagination.
func (s *MemoryStore) List(
	_ context.Context,
	limit int,
	offset int,
) ([]Entry, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.page(s.order, limit, offset)
}

// ByVariable retrieves entries for one variable, newest first.
func (s *MemoryStore) ByVariable(
	_ context.Context,
	variableID string,
	limit int,
	offset int,
) ([]Entry, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.page(s.byVariable[variableID], limit, offset)
}

// ByUser retrieves entries attributed to one user, newest first.
func (s *MemoryStore) ByUser(
	_ context.Context,
	user string,
	limit int,
	offset int,
) ([]Entry, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.page(s.byUser[user], limit, offset)
}

// ByRange retrieves entries whose timestamp falls in [from, to],
// newest first.
func (s *MemoryStore) ByRange(
	_ context.Context,
	from time.Time,
	to time.Time,
) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filterRange(s.order, from, to), nil
}

// ByVariableAndRange retrieves entries for one variable whose timestamp
// falls in [from, to], newest first.
func (s *MemoryStore) ByVariableAndRange(
	_ context.Context,
	variableID string,
	from time.Time,
	to time.Time,
) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filterRange(s.byVariable[variableID], from, to), nil
}

// Count returns the total number of entries.
func (s *MemoryStore) Count(
	_ context.Context,
) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.byID), nil
}

// CountByVariable returns the number of entries for one variable.
func (s *MemoryStore) CountByVariable(
	_ context.Context,
	variableID string,
) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.byVariable[variableID]), nil
}

// MostRecent returns the newest entry for a variable, or nil when none
// exist.
func (s *MemoryStore) MostRecent(
	_ context.Context,
	variableID string,
) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.byVariable[variableID]
	if len(ids) == 0 {
		return nil, nil
	}

	entry := s.byID[ids[len(ids)-1]]
	return &entry, nil
}

// page resolves ids to entries, newest first, applying limit/offset.
// Caller must hold the mutex.
func (s *MemoryStore) page(
	ids []string,
	limit int,
	offset int,
) ([]Entry, int, error) {
	total := len(ids)
	entries := s.resolve(ids)

	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []Entry{}, total, nil
	}

	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}

	return entries[offset:end], total, nil
}

// filterRange resolves ids to entries inside [from, to], newest first.
// Caller must hold the mutex.
func (s *MemoryStore) filterRange(
	ids []string,
	from time.Time,
	to time.Time,
) []Entry {
	out := make([]Entry, 0)
	for _, entry := range s.resolve(ids) {
		if entry.Timestamp.Before(from) || entry.Timestamp.After(to) {
			continue
		}
		out = append(out, entry)
	}

	return out
}

// resolve maps ids to entries sorted by timestamp descending. Caller
// must hold the mutex.
func (s *MemoryStore) resolve(
	ids []string,
) []Entry {
	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		entry, ok := s.byID[id]
		if !ok {
			s.logger.Warn(
				"audit index references missing entry",
				slog.String("id", id),
			)
			continue
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	return entries
}
