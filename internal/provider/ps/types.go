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

// Package ps provides the operating system process source.
package ps

import (
	"context"
	"errors"
)

// Skip conditions a caller is expected to tolerate during enumeration.
var (
	// ErrNotRunning indicates the pid vanished between enumeration and
	// interrogation.
	ErrNotRunning = errors.New("process not running")
	// ErrAccessDenied indicates the caller lacks permission to read the
	// process.
	ErrAccessDenied = errors.New("process access denied")
	// ErrZombie indicates a defunct process with no readable state.
	ErrZombie = errors.New("process is a zombie")
)

// Info is the raw process record read from the operating system.
type Info struct {
	// PID is the operating system process id.
	PID int32 `json:"pid"`
	// Name is the executable name as reported by the OS, unsanitized.
	Name string `json:"name"`
	// Cmdline is the full command line.
	Cmdline string `json:"cmdline"`
	// ParentPID is the parent process id, nil when unavailable.
	ParentPID *int32 `json:"parent_pid,omitempty"`
	// Username is the owning user, empty when unavailable.
	Username string `json:"username,omitempty"`
}

// Source reads processes from the operating system.
type Source interface {
	// Pids enumerates all process ids.
	Pids(ctx context.Context) ([]int32, error)
	// Info reads one process record. Returns ErrNotRunning,
	// ErrAccessDenied, or ErrZombie for the tolerable skip conditions.
	Info(ctx context.Context, pid int32) (*Info, error)
	// Environ reads one process environment as a name to value map.
	Environ(ctx context.Context, pid int32) (map[string]string, error)
	// ChildPids lists the direct children of a pid.
	ChildPids(ctx context.Context, pid int32) ([]int32, error)
	// Exists reports whether the pid is currently running.
	Exists(ctx context.Context, pid int32) (bool, error)
}
