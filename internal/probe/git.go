// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/tfctl/envreport/internal/report"
	"github.com/tfctl/envreport/internal/shell"
)

// NotGitRepo is the whole git section when the directory has no .git.
const NotGitRepo = "Not a git repository"

var gitQueries = []struct {
	label string
	cmd   shell.Cmd
	empty string
	// unset is true when a silent non-zero exit means the value is not set.
	unset bool
}{
	{"Remote", shell.C("git", "config", "--get", "remote.origin.url"), "none", true},
	{"Branch", shell.C("git", "branch", "--show-current"), "detached HEAD", false},
	{"Last Commit", shell.C("git", "log", "-1", "--oneline"), "no commits", false},
	{"Status", shell.C("git", "status", "--short"), "clean", false},
	{"Remote Branches", shell.C("git", "branch", "-r"), "none", false},
}

// Git summarizes the repository in the working directory. Without a .git
// entry no git command is run at all.
func (e *Env) Git(ctx context.Context) report.Result {
	if _, err := os.Stat(filepath.Join(e.Dir, ".git")); err != nil {
		return report.Text(NotGitRepo)
	}

	var b strings.Builder
	for _, q := range gitQueries {
		out, err := shell.Output(ctx, e.Runner, e.Dir, q.cmd)
		if q.unset && silentExit(err) {
			err = nil
		}
		if err == nil && out == "" {
			out = q.empty
		}
		b.WriteString(report.FormatItem(q.label, report.From(out, err)))
	}

	return report.Text(strings.TrimRight(b.String(), "\n"))
}

// silentExit reports whether err is a command that ran, printed nothing and
// exited non-zero.
func silentExit(err error) bool {
	var se *shell.Error
	if !errors.As(err, &se) || shell.IsNotFound(err) {
		return false
	}
	return strings.TrimSpace(string(se.Output)) == ""
}
