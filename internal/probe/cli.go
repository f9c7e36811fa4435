// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/tfctl/envreport/internal/output"
	"github.com/tfctl/envreport/internal/report"
	"github.com/tfctl/envreport/internal/shell"
)

// CLIVersion reports the installed AWS CLI version.
func (e *Env) CLIVersion(ctx context.Context) report.Result {
	return report.From(shell.Output(ctx, e.Runner, e.Dir, shell.C("aws", "--version")))
}

// Region reports the region the session resolved to.
func (e *Env) Region(context.Context) report.Result {
	if e.Session == nil {
		return report.Failed(e.cloud())
	}
	if e.Session.Region == "" {
		return report.Failed(errNoRegion)
	}
	return report.Text(e.Session.Region)
}

// Profile reports the profile the session resolved to.
func (e *Env) Profile(context.Context) report.Result {
	if e.Session == nil {
		return report.Failed(e.cloud())
	}
	return report.Text(e.Session.Profile)
}

// Identity reports who the ambient credentials belong to.
func (e *Env) Identity(ctx context.Context) report.Result {
	if err := e.cloud(); err != nil {
		return cloudFailed(err)
	}

	out, err := e.Clients.STS.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return cloudFailed(err)
	}

	return report.Lines([]string{
		"Account: " + output.Cell(out.Account),
		"User ID: " + output.Cell(out.UserId),
		"ARN: " + output.Cell(out.Arn),
	})
}
