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

package proc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/retr0h/envscope/internal/provider/ps"
)

// ErrInvalidPID indicates a pid outside the accepted range.
var ErrInvalidPID = errors.New("invalid pid")

// DefaultCacheTTL is how long an enumeration snapshot stays fresh.
const DefaultCacheTTL = 30 * time.Second

// DefaultMaxPID is the upper bound for accepted pids.
const DefaultMaxPID int32 = 4194304

// ScanItem is the outcome of interrogating one pid during enumeration:
// either a process snapshot or the reason the pid was skipped.
type ScanItem struct {
	// PID is the enumerated process id.
	PID int32
	// Process is the snapshot, nil when the pid was skipped.
	Process *Process
	// SkipReason is the tolerated condition that excluded the pid.
	SkipReason error
}

// snapshot is one whole-enumeration cache generation.
type snapshot struct {
	processes []Process
	taken     time.Time
}

// Inspector reads live processes through a Source, caching whole
// enumeration snapshots for a TTL. Reads within the TTL return the
// cached snapshot; a refresh swaps the whole snapshot at once.
type Inspector struct {
	logger *slog.Logger
	source ps.Source
	ttl    time.Duration
	maxPID int32

	mu    sync.Mutex
	cache *snapshot
}

// InspectorOption configures an Inspector.
type InspectorOption func(*Inspector)

// WithCacheTTL overrides the snapshot cache TTL.
func WithCacheTTL(
	ttl time.Duration,
) InspectorOption {
	return func(i *Inspector) {
		i.ttl = ttl
	}
}

// WithMaxPID overrides the pid upper bound.
func WithMaxPID(
	maxPID int32,
) InspectorOption {
	return func(i *Inspector) {
		i.maxPID = maxPID
	}
}

// NewInspector creates a new Inspector.
func NewInspector(
	logger *slog.Logger,
	source ps.Source,
	opts ...InspectorOption,
) *Inspector {
	i := &Inspector{
		logger: logger,
		source: source,
		ttl:    DefaultCacheTTL,
		maxPID: DefaultMaxPID,
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// ListProcesses returns the process snapshot, reusing the cached
// enumeration when it is younger than the TTL.
func (i *Inspector) ListProcesses(
	ctx context.Context,
) ([]Process, error) {
	i.mu.Lock()
	if i.cache != nil && nowFn().Sub(i.cache.taken) < i.ttl {
		processes := i.cache.processes
		i.mu.Unlock()
		return processes, nil
	}
	i.mu.Unlock()

	return i.refresh(ctx)
}

// RefreshCache discards the cached snapshot and re-enumerates.
func (i *Inspector) RefreshCache(
	ctx context.Context,
) ([]Process, error) {
	return i.refresh(ctx)
}

// refresh enumerates all pids and atomically replaces the cache.
func (i *Inspector) refresh(
	ctx context.Context,
) ([]Process, error) {
	items, err := i.Scan(ctx)
	if err != nil {
		return nil, err
	}

	processes := make([]Process, 0, len(items))
	for _, item := range items {
		if item.Process != nil {
			processes = append(processes, *item.Process)
		}
	}

	i.mu.Lock()
	i.cache = &snapshot{processes: processes, taken: nowFn()}
	i.mu.Unlock()

	i.logger.Debug(
		"process snapshot refreshed",
		slog.Int("processes", len(processes)),
		slog.Int("enumerated", len(items)),
	)

	return processes, nil
}

// Scan enumerates every pid and interrogates each one, reporting a
// per-pid outcome. Vanished, denied, and zombie processes are recorded
// as skips, never failures; only enumeration itself can error.
func (i *Inspector) Scan(
	ctx context.Context,
) ([]ScanItem, error) {
	pids, err := i.source.Pids(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerating processes: %w", err)
	}

	items := make([]ScanItem, 0, len(pids))
	for _, pid := range pids {
		if pid < 1 || pid > i.maxPID {
			continue
		}

		info, err := i.source.Info(ctx, pid)
		if err != nil {
			if isSkippable(err) {
				items = append(items, ScanItem{PID: pid, SkipReason: err})
				continue
			}

			i.logger.Warn(
				"skipping unreadable process",
				slog.Int("pid", int(pid)),
				slog.String("error", err.Error()),
			)
			items = append(items, ScanItem{PID: pid, SkipReason: err})
			continue
		}

		p := NewProcess(info)
		items = append(items, ScanItem{PID: pid, Process: &p})
	}

	return items, nil
}

// GetProcess looks up a single pid directly, bypassing the cache.
// Returns nil, nil when the process is gone, denied, or a zombie.
func (i *Inspector) GetProcess(
	ctx context.Context,
	pid int32,
) (*Process, error) {
	if pid < 1 || pid > i.maxPID {
		return nil, fmt.Errorf("pid %d: %w", pid, ErrInvalidPID)
	}

	info, err := i.source.Info(ctx, pid)
	if err != nil {
		if isSkippable(err) {
			return nil, nil
		}
		return nil, err
	}

	p := NewProcess(info)
	return &p, nil
}

// GetEnvironment re-resolves the process then captures its environment
// in a single read. Returns nil, nil when the process is gone, denied,
// or a zombie at either step.
func (i *Inspector) GetEnvironment(
	ctx context.Context,
	pid int32,
) (*Environment, error) {
	p, err := i.GetProcess(ctx, pid)
	if err != nil || p == nil {
		return nil, err
	}

	raw, err := i.source.Environ(ctx, pid)
	if err != nil {
		if isSkippable(err) {
			return nil, nil
		}
		return nil, err
	}

	environment := NewEnvironment(*p, raw)
	return &environment, nil
}

// FindByName returns fresh snapshots whose name contains the substring,
// case-insensitively. Unreadable processes degrade to absence.
func (i *Inspector) FindByName(
	ctx context.Context,
	substr string,
) ([]Process, error) {
	processes, err := i.refresh(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(substr)
	matches := make([]Process, 0)
	for _, p := range processes {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matches = append(matches, p)
		}
	}

	return matches, nil
}

// FindByUser returns fresh snapshots owned by the exact username.
func (i *Inspector) FindByUser(
	ctx context.Context,
	user string,
) ([]Process, error) {
	processes, err := i.refresh(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]Process, 0)
	for _, p := range processes {
		if p.Username == user {
			matches = append(matches, p)
		}
	}

	return matches, nil
}

// IsRunning reports whether the pid is currently alive.
func (i *Inspector) IsRunning(
	ctx context.Context,
	pid int32,
) (bool, error) {
	if pid < 1 || pid > i.maxPID {
		return false, fmt.Errorf("pid %d: %w", pid, ErrInvalidPID)
	}

	return i.source.Exists(ctx, pid)
}

// isSkippable reports whether the error is one of the three tolerated
// per-process conditions.
func isSkippable(
	err error,
) bool {
	return errors.Is(err, ps.ErrNotRunning) ||
		errors.Is(err, ps.ErrAccessDenied) ||
		errors.Is(err, ps.ErrZombie)
}
