// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"
	"fmt"
	"strings"

	"github.com/tfctl/envreport/internal/report"
	"github.com/tfctl/envreport/internal/shell"
)

// NoVirtualEnv is shown when VIRTUAL_ENV is unset.
const NoVirtualEnv = "No virtual environment active"

// VirtualEnv reports the active Python virtual environment.
func (e *Env) VirtualEnv(context.Context) report.Result {
	if v := e.getenv("VIRTUAL_ENV"); v != "" {
		return report.Text(v)
	}
	return report.Text(NoVirtualEnv)
}

// Tools reports the version of each configured tool, one per line. A tool
// that fails to run is reported as not installed.
func (e *Env) Tools(ctx context.Context) report.Result {
	lines := make([]string, 0, len(e.Settings.Tools))
	for _, tool := range e.Settings.Tools {
		out, err := shell.Output(ctx, e.Runner, e.Dir, shell.C(tool, "--version"))
		if err != nil || out == "" {
			lines = append(lines, fmt.Sprintf("%s: not installed", tool))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", tool, firstLine(out)))
	}
	return report.Lines(lines)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}
