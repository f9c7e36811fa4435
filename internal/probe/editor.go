// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"

	"github.com/tfctl/envreport/internal/aws"
	"github.com/tfctl/envreport/internal/report"
	"github.com/tfctl/envreport/internal/shell"
)

// NoVSCode is shown when the code CLI does not run.
const NoVSCode = "VS Code CLI not installed"

// Editor reports the VS Code version.
func (e *Env) Editor(ctx context.Context) report.Result {
	out, err := shell.Output(ctx, e.Runner, e.Dir, shell.C("code", "--version"))
	if err != nil || out == "" {
		return report.Text(NoVSCode)
	}
	return report.Text(firstLine(out))
}

// AWSProfiles lists the named profiles in the shared AWS files.
func (e *Env) AWSProfiles(context.Context) report.Result {
	profiles, err := aws.Profiles(e.Home)
	if err != nil {
		return report.Failed(err)
	}
	return report.Lines(profiles)
}
