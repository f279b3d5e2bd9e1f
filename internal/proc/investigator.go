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
	"log/slog"

	"github.com/retr0h/envscope/internal/env"
)

// Summary is a per-process line item for listings.
type Summary struct {
	// Process is the snapshot being summarized.
	Process Process `json:"process"`
	// VariableCount is the environment size, nil when unreadable.
	VariableCount *int `json:"variable_count,omitempty"`
}

// Report is a full environment investigation for one process. A report
// is only produced whole: callers never see partial reports.
type Report struct {
	// Summary identifies the investigated process.
	Summary Summary `json:"summary"`
	// AllVariables is the captured environment.
	AllVariables map[string]string `json:"all_variables"`
	// Inherited relates managed system variables present in the
	// process.
	Inherited []Comparison `json:"inherited"`
	// ProcessSpecific are names the system does not manage.
	ProcessSpecific []string `json:"process_specific"`
}

// Investigator drives process inspection use cases on top of an
// Inspector.
type Investigator struct {
	logger    *slog.Logger
	inspector *Inspector
}

// NewInvestigator creates a new Investigator.
func NewInvestigator(
	logger *slog.Logger,
	inspector *Inspector,
) *Investigator {
	return &Investigator{
		logger:    logger,
		inspector: inspector,
	}
}

// Summaries lists all visible processes with best-effort environment
// sizes. A process whose environment cannot be read still appears,
// with a nil count.
func (v *Investigator) Summaries(
	ctx context.Context,
) ([]Summary, error) {
	processes, err := v.inspector.ListProcesses(ctx)
	if err != nil {
		return nil, err
	}

	return v.summarize(ctx, processes), nil
}

// Report investigates one process environment against the managed
// system variables. Returns nil, nil when the process or its
// environment cannot be resolved.
func (v *Investigator) Report(
	ctx context.Context,
	pid int32,
	sysVars []*env.Variable,
) (*Report, error) {
	environment, err := v.inspector.GetEnvironment(ctx, pid)
	if err != nil || environment == nil {
		return nil, err
	}

	count := environment.VariableCount()
	return &Report{
		Summary: Summary{
			Process:       environment.Process,
			VariableCount: &count,
		},
		AllVariables:    environment.Variables,
		Inherited:       CompareWithSystem(*environment, sysVars),
		ProcessSpecific: ProcessSpecific(*environment, sysVars),
	}, nil
}

// Compare relates one process environment to the managed system
// variables. Returns nil, nil when the environment is unresolvable.
func (v *Investigator) Compare(
	ctx context.Context,
	pid int32,
	sysVars []*env.Variable,
) ([]Comparison, error) {
	environment, err := v.inspector.GetEnvironment(ctx, pid)
	if err != nil || environment == nil {
		return nil, err
	}

	return CompareWithSystem(*environment, sysVars), nil
}

// FindByName lists summaries for processes whose name contains the
// substring, case-insensitively.
func (v *Investigator) FindByName(
	ctx context.Context,
	substr string,
) ([]Summary, error) {
	processes, err := v.inspector.FindByName(ctx, substr)
	if err != nil {
		return nil, err
	}

	return v.summarize(ctx, processes), nil
}

// FindByUser lists summaries for processes owned by the exact user.
func (v *Investigator) FindByUser(
	ctx context.Context,
	user string,
) ([]Summary, error) {
	processes, err := v.inspector.FindByUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return v.summarize(ctx, processes), nil
}

// Tree builds the descendant hierarchy rooted at the pid.
func (v *Investigator) Tree(
	ctx context.Context,
	rootPID int32,
) (*TreeNode, error) {
	return v.inspector.Tree(ctx, rootPID)
}

// Refresh discards the cached snapshot and lists fresh summaries.
func (v *Investigator) Refresh(
	ctx context.Context,
) ([]Summary, error) {
	processes, err := v.inspector.RefreshCache(ctx)
	if err != nil {
		return nil, err
	}

	return v.summarize(ctx, processes), nil
}

// ListAsync lists processes on a fresh goroutine and delivers the
// outcome through done exactly once. The listing is one-shot: once
// started it runs to completion, cancellation only applies up to the
// underlying enumeration calls observing ctx.
func (v *Investigator) ListAsync(
	ctx context.Context,
	done func(summaries []Summary, err error),
) {
	go func() {
		summaries, err := v.Summaries(ctx)
		done(summaries, err)
	}()
}

// summarize attaches best-effort environment counts to snapshots.
func (v *Investigator) summarize(
	ctx context.Context,
	processes []Process,
) []Summary {
	summaries := make([]Summary, 0, len(processes))
	for _, p := range processes {
		summary := Summary{Process: p}

		environment, err := v.inspector.GetEnvironment(ctx, p.PID)
		if err == nil && environment != nil {
			count := environment.VariableCount()
			summary.VariableCount = &count
		}

		summaries = append(summaries, summary)
	}

	return summaries
}
