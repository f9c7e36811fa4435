// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/bedrock"

	"github.com/tfctl/envreport/internal/output"
	"github.com/tfctl/envreport/internal/report"
)

// Models lists the first few foundation models in the Bedrock catalog, in
// the order the service returns them.
func (e *Env) Models(ctx context.Context) report.Result {
	if err := e.cloud(); err != nil {
		return cloudFailed(err)
	}

	out, err := e.Clients.Bedrock.ListFoundationModels(ctx, &bedrock.ListFoundationModelsInput{})
	if err != nil {
		return cloudFailed(err)
	}

	summaries := out.ModelSummaries
	if limit := e.Settings.ModelLimit; limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}

	headers := []string{"Model ID", "Model Name"}
	rows := make([][]string, 0, len(summaries))
	for _, m := range summaries {
		rows = append(rows, []string{output.Cell(m.ModelId, "-"), output.Cell(m.ModelName, "-")})
	}

	return report.Text(output.Table(headers, rows))
}
