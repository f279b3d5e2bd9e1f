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

package ps

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"

	"github.com/shirou/gopsutil/v4/process"
)

// injectable for testing.
var (
	pidsFn       = process.PidsWithContext
	newProcessFn = process.NewProcessWithContext
	pidExistsFn  = process.PidExistsWithContext
)

// ensure GopsutilSource implements Source at compile time.
var _ Source = (*GopsutilSource)(nil)

// GopsutilSource implements Source using gopsutil. OS errors are
// classified into the package sentinels so callers can distinguish the
// tolerable skip conditions from real failures.
type GopsutilSource struct {
	logger *slog.Logger
}

// NewGopsutilSource creates a new GopsutilSource.
func NewGopsutilSource(
	logger *slog.Logger,
) *GopsutilSource {
	return &GopsutilSource{
		logger: logger,
	}
}

// Pids enumerates all process ids.
func (s *GopsutilSource) Pids(
	ctx context.Context,
) ([]int32, error) {
	pids, err := pidsFn(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing pids: %w", err)
	}

	return pids, nil
}

// Info reads one process record.
func (s *GopsutilSource) Info(
	ctx context.Context,
	pid int32,
) (*Info, error) {
	p, err := newProcessFn(ctx, pid)
	if err != nil {
		return nil, classify(pid, err)
	}

	statuses, err := p.StatusWithContext(ctx)
	if err == nil {
		for _, st := range statuses {
			if st == process.Zombie {
				return nil, fmt.Errorf("pid %d: %w", pid, ErrZombie)
			}
		}
	}

	name, err := p.NameWithContext(ctx)
	if err != nil {
		return nil, classify(pid, err)
	}

	info := &Info{
		PID:  pid,
		Name: name,
	}

	// Best effort beyond the name: a process may die or deny access
	// mid-read, the partial record is still useful.
	if cmdline, err := p.CmdlineWithContext(ctx); err == nil {
		info.Cmdline = cmdline
	}
	if ppid, err := p.PpidWithContext(ctx); err == nil {
		info.ParentPID = &ppid
	}
	if username, err := p.UsernameWithContext(ctx); err == nil {
		info.Username = username
	}

	return info, nil
}

// Environ reads one process environment, parsing K=V entries. Entries
// without a separator are skipped.
func (s *GopsutilSource) Environ(
	ctx context.Context,
	pid int32,
) (map[string]string, error) {
	p, err := newProcessFn(ctx, pid)
	if err != nil {
		return nil, classify(pid, err)
	}

	entries, err := p.EnvironWithContext(ctx)
	if err != nil {
		return nil, classify(pid, err)
	}

	environ := make(map[string]string, len(entries))
	for _, entry := range entries {
		name, value, found := strings.Cut(entry, "=")
		if !found || name == "" {
			continue
		}
		environ[name] = value
	}

	return environ, nil
}

// ChildPids lists the direct children of a pid. A pid with no children
// yields an empty slice.
func (s *GopsutilSource) ChildPids(
	ctx context.Context,
	pid int32,
) ([]int32, error) {
	p, err := newProcessFn(ctx, pid)
	if err != nil {
		return nil, classify(pid, err)
	}

	children, err := p.ChildrenWithContext(ctx)
	if err != nil {
		return nil, classify(pid, err)
	}

	pids := make([]int32, 0, len(children))
	for _, child := range children {
		pids = append(pids, child.Pid)
	}

	return pids, nil
}

// Exists reports whether the pid is currently running.
func (s *GopsutilSource) Exists(
	ctx context.Context,
	pid int32,
) (bool, error) {
	exists, err := pidExistsFn(ctx, pid)
	if err != nil {
		return false, fmt.Errorf("checking pid %d: %w", pid, err)
	}

	return exists, nil
}

// classify maps gopsutil and syscall errors onto the package sentinels.
func classify(
	pid int32,
	err error,
) error {
	switch {
	case errors.Is(err, process.ErrorProcessNotRunning),
		errors.Is(err, syscall.ESRCH):
		return fmt.Errorf("pid %d: %w", pid, ErrNotRunning)
	case errors.Is(err, os.ErrPermission),
		errors.Is(err, syscall.EPERM),
		errors.Is(err, syscall.EACCES):
		return fmt.Errorf("pid %d: %w", pid, ErrAccessDenied)
	default:
		return fmt.Errorf("pid %d: %w", pid, err)
	}
}
