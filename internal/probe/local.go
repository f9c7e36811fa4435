// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"
	"fmt"
	"strings"

	"github.com/tfctl/envreport/internal/log"
	"github.com/tfctl/envreport/internal/report"
	"github.com/tfctl/envreport/internal/shell"
)

var (
	pythonNames    = []string{"python3", "python"}
	pythonVersions = []shell.Cmd{shell.C("python3", "--version"), shell.C("python", "--version")}
)

// OS describes the operating system, falling back to uname when host
// information is unavailable.
func (e *Env) OS(ctx context.Context) report.Result {
	info, err := e.hostInfo(ctx)
	if err == nil && info != nil {
		parts := []string{info.OS}
		if info.Platform != "" {
			parts = append(parts, info.Platform, info.PlatformVersion)
		}
		if info.KernelVersion != "" {
			parts = append(parts, "kernel "+info.KernelVersion)
		}
		if info.KernelArch != "" {
			parts = append(parts, "("+info.KernelArch+")")
		}
		return report.Text(strings.Join(strings.Fields(strings.Join(parts, " ")), " "))
	}
	log.Debugf("host info failed, falling back to uname: err=%v", err)

	return report.From(shell.Output(ctx, e.Runner, e.Dir, shell.C("uname", "-a")))
}

// PythonVersion reports the interpreter version.
func (e *Env) PythonVersion(ctx context.Context) report.Result {
	return report.From(shell.FirstFound(ctx, e.Runner, e.Dir, pythonVersions...))
}

// PythonPath reports where the interpreter resolves on PATH.
func (e *Env) PythonPath(context.Context) report.Result {
	return report.From(shell.LookPathFirst(e.Runner, pythonNames...))
}

// WorkingDir reports the directory being inspected.
func (e *Env) WorkingDir(context.Context) report.Result {
	return report.Text(e.Dir)
}

// User reports the account running the report.
func (e *Env) User(context.Context) report.Result {
	return report.From(e.currentUser())
}

// Terminal reports TERM and whether stdout is attached to a terminal.
func (e *Env) Terminal(context.Context) report.Result {
	kind := "not a terminal"
	if e.isTerminal() {
		kind = "interactive"
	}
	if t := e.getenv("TERM"); t != "" {
		return report.Text(fmt.Sprintf("%s (%s)", t, kind))
	}
	return report.Text(kind)
}
