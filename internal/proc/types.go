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

// Package proc provides process inspection, environment capture, and
// environment comparison against managed system variables.
package proc

import (
	"time"

	"github.com/google/uuid"

	"github.com/retr0h/envscope/internal/env"
	"github.com/retr0h/envscope/internal/provider/ps"
	"github.com/retr0h/envscope/internal/validation"
)

// nowFn is the function used for timestamps (injectable for testing).
var nowFn = time.Now

// Process is a point-in-time snapshot of one OS process. Identity is
// the (PID, SnapshotTime) pair, not the pid alone: pids get reused.
type Process struct {
	// SnapshotID uniquely identifies this snapshot.
	SnapshotID string `json:"snapshot_id"`
	// PID is the operating system process id.
	PID int32 `json:"pid"`
	// Name is the sanitized executable name.
	Name string `json:"name"`
	// Cmdline is the full command line.
	Cmdline string `json:"cmdline,omitempty"`
	// ParentPID is the parent process id, nil when unavailable.
	ParentPID *int32 `json:"parent_pid,omitempty"`
	// Username is the owning user, empty when unavailable.
	Username string `json:"username,omitempty"`
	// SnapshotTime is when this snapshot was taken.
	SnapshotTime time.Time `json:"snapshot_time"`
	// Terminated marks a snapshot whose process is known to be gone.
	// Cache bookkeeping only, never blocks reads.
	Terminated bool `json:"terminated,omitempty"`
}

// NewProcess builds a snapshot from a raw OS record, sanitizing the
// name.
func NewProcess(
	info *ps.Info,
) Process {
	return Process{
		SnapshotID:   uuid.NewString(),
		PID:          info.PID,
		Name:         SanitizeName(info.Name),
		Cmdline:      info.Cmdline,
		ParentPID:    info.ParentPID,
		Username:     info.Username,
		SnapshotTime: nowFn(),
	}
}

// MarkTerminated flags the snapshot as belonging to a dead process.
func (p *Process) MarkTerminated() {
	p.Terminated = true
}

// Environment is a captured process environment. Entries that fail
// variable name or value validation are dropped at capture time.
type Environment struct {
	// Process is the snapshot the environment belongs to.
	Process Process `json:"process"`
	// Variables maps validated names to values.
	Variables map[string]string `json:"variables"`
	// CapturedAt is when the environment was read.
	CapturedAt time.Time `json:"captured_at"`
}

// NewEnvironment builds an Environment from raw environ data, keeping
// only entries with a valid name and a value within limits.
func NewEnvironment(
	process Process,
	raw map[string]string,
) Environment {
	variables := make(map[string]string, len(raw))
	for name, value := range raw {
		if len(name) > env.MaxNameLength || !validation.IsEnvName(name) {
			continue
		}
		if len(value) > env.MaxValueLength {
			continue
		}
		variables[name] = value
	}

	return Environment{
		Process:    process,
		Variables:  variables,
		CapturedAt: nowFn(),
	}
}

// VariableCount returns the number of captured variables.
func (e Environment) VariableCount() int {
	return len(e.Variables)
}

// Get returns the value for name and whether it was captured.
func (e Environment) Get(
	name string,
) (string, bool) {
	value, ok := e.Variables[name]
	return value, ok
}

// Stale reports whether the environment was captured before the
// process snapshot was taken. Informational only.
func (e Environment) Stale() bool {
	return e.CapturedAt.Before(e.Process.SnapshotTime)
}
