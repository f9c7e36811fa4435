// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/redshift"

	"github.com/tfctl/envreport/internal/output"
	"github.com/tfctl/envreport/internal/report"
)

// Clusters lists the provisioned Redshift clusters.
func (e *Env) Clusters(ctx context.Context) report.Result {
	if err := e.cloud(); err != nil {
		return cloudFailed(err)
	}

	headers := []string{"Cluster ID", "Status", "Endpoint", "Node Type", "Nodes"}
	var rows [][]string

	paginator := redshift.NewDescribeClustersPaginator(e.Clients.Redshift, &redshift.DescribeClustersInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return cloudFailed(err)
		}
		for _, c := range page.Clusters {
			endpoint := "-"
			if c.Endpoint != nil && c.Endpoint.Address != nil {
				endpoint = output.Cell(c.Endpoint.Address)
				if c.Endpoint.Port != nil {
					endpoint = fmt.Sprintf("%s:%d", endpoint, *c.Endpoint.Port)
				}
			}
			rows = append(rows, []string{
				output.Cell(c.ClusterIdentifier, "-"),
				output.Cell(c.ClusterStatus, "-"),
				endpoint,
				output.Cell(c.NodeType, "-"),
				output.Cell(c.NumberOfNodes, "-"),
			})
		}
	}

	return report.Text(output.Table(headers, rows))
}
