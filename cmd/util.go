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

package cmd

import (
	"os/user"
	"strconv"

	"github.com/retr0h/envscope/internal/audit"
	"github.com/retr0h/envscope/internal/cli"
	"github.com/retr0h/envscope/internal/env"
	"github.com/retr0h/envscope/internal/proc"
	"github.com/retr0h/envscope/internal/provider/ps"
)

// services holds the one in-process wiring for a single invocation.
type services struct {
	varStore     *env.MemoryStore
	ctxStore     *env.MemoryContextStore
	auditStore   *audit.MemoryStore
	varManager   *env.Manager
	ctxManager   *env.ContextManager
	inspector    *proc.Inspector
	investigator *proc.Investigator
}

// svc is built lazily on first use within a command run.
var svc *services

// getServices wires stores, recorder, managers, inspector, and
// investigator once per invocation.
func getServices() *services {
	if svc != nil {
		return svc
	}

	varStore := env.NewMemoryStore()
	ctxStore := env.NewMemoryContextStore()
	auditStore := audit.NewMemoryStore(logger)
	recorder := audit.NewRecorder(logger, auditStore)

	source := ps.NewGopsutilSource(logger)
	inspector := proc.NewInspector(
		logger,
		source,
		proc.WithCacheTTL(appConfig.CacheTTL()),
		proc.WithMaxPID(appConfig.Process.MaxPID),
	)

	svc = &services{
		varStore:     varStore,
		ctxStore:     ctxStore,
		auditStore:   auditStore,
		varManager:   env.NewManager(logger, varStore, recorder, auditUser()),
		ctxManager:   env.NewContextManager(logger, ctxStore, varStore),
		inspector:    inspector,
		investigator: proc.NewInvestigator(logger, inspector),
	}

	return svc
}

// auditUser resolves the audit subject: configured user first, then
// the OS user, then "unknown".
func auditUser() string {
	if appConfig.User != "" {
		return appConfig.User
	}

	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}

	return "unknown"
}

// parseScopeArg parses a --scope flag value, exiting on invalid input.
func parseScopeArg(
	value string,
) env.Scope {
	scope, err := env.ParseScope(value)
	if err != nil {
		cli.LogFatal(logger, "invalid scope", err, "scope", value)
	}

	return scope
}

// parsePIDArg parses a pid positional argument, exiting on invalid
// input.
func parsePIDArg(
	value string,
) int32 {
	pid, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		cli.LogFatal(logger, "invalid pid", err, "pid", value)
	}

	return int32(pid)
}
