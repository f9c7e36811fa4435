// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package shelltest provides a scripted shell.Runner for tests.
package shelltest

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"sync"

	"github.com/tfctl/envreport/internal/shell"
)

// Response is the scripted result of one command line.
type Response struct {
	Out string
	// Fail makes the command exit non-zero with Out as its output.
	Fail bool
}

// Runner answers commands from a script keyed by the full command line
// ("git rev-parse --abbrev-ref HEAD"). Unscripted commands behave as if the
// executable were absent.
type Runner struct {
	mu        sync.Mutex
	responses map[string]Response
	installed map[string]bool
	calls     []string
}

var _ shell.Runner = (*Runner)(nil)

// New returns an empty Runner.
func New() *Runner {
	return &Runner{
		responses: map[string]Response{},
		installed: map[string]bool{},
	}
}

// On scripts a successful command.
func (r *Runner) On(line, out string) *Runner {
	return r.set(line, Response{Out: out})
}

// Fail scripts a command that runs and exits non-zero.
func (r *Runner) Fail(line, out string) *Runner {
	return r.set(line, Response{Out: out, Fail: true})
}

func (r *Runner) set(line string, resp Response) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[line] = resp
	r.installed[strings.Fields(line)[0]] = true
	return r
}

// Calls returns every command line run so far.
func (r *Runner) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// Run implements shell.Runner.
func (r *Runner) Run(_ context.Context, _ string, name string, args ...string) ([]byte, error) {
	line := shell.C(name, args...).String()

	r.mu.Lock()
	r.calls = append(r.calls, line)
	resp, ok := r.responses[line]
	r.mu.Unlock()

	if !ok {
		return nil, &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	if resp.Fail {
		return []byte(resp.Out), &shell.Error{Cmd: shell.C(name, args...), Output: []byte(resp.Out), Err: errors.New("exit status 1")}
	}
	return []byte(resp.Out), nil
}

// LookPath implements shell.Runner. A name is installed when any command
// line for it has been scripted.
func (r *Runner) LookPath(name string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.installed[name] {
		return "/usr/bin/" + name, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}
