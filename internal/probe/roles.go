// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/iam"

	"github.com/tfctl/envreport/internal/output"
	"github.com/tfctl/envreport/internal/report"
)

// Roles lists the IAM roles whose names contain any configured substring.
func (e *Env) Roles(ctx context.Context) report.Result {
	if err := e.cloud(); err != nil {
		return cloudFailed(err)
	}

	headers := []string{"Role Name", "ARN"}
	var rows [][]string

	paginator := iam.NewListRolesPaginator(e.Clients.IAM, &iam.ListRolesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return cloudFailed(err)
		}
		for _, role := range page.Roles {
			name := output.Cell(role.RoleName)
			if !matchesAny(name, e.Settings.RoleMatch) {
				continue
			}
			rows = append(rows, []string{name, output.Cell(role.Arn, "-")})
		}
	}
	output.SortRows(headers, rows, "role name")

	return report.Text(output.Table(headers, rows))
}

// matchesAny reports whether s contains any of subs, ignoring case.
func matchesAny(s string, subs []string) bool {
	s = strings.ToLower(s)
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}
