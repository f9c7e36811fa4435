// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/tfctl/envreport/internal/output"
	"github.com/tfctl/envreport/internal/report"
)

// Instances lists the running EC2 instances.
func (e *Env) Instances(ctx context.Context) report.Result {
	if err := e.cloud(); err != nil {
		return cloudFailed(err)
	}

	headers := []string{"Instance ID", "Type", "Public IP", "Private IP", "Key Name", "Launch Time"}
	var rows [][]string

	paginator := ec2.NewDescribeInstancesPaginator(e.Clients.EC2, &ec2.DescribeInstancesInput{
		Filters: []ec2types.Filter{
			{Name: awsv2.String("instance-state-name"), Values: []string{"running"}},
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return cloudFailed(err)
		}
		for _, reservation := range page.Reservations {
			for _, inst := range reservation.Instances {
				rows = append(rows, []string{
					output.Cell(inst.InstanceId, "-"),
					output.Cell(inst.InstanceType, "-"),
					output.Cell(inst.PublicIpAddress, "-"),
					output.Cell(inst.PrivateIpAddress, "-"),
					output.Cell(inst.KeyName, "-"),
					output.Cell(inst.LaunchTime, "-"),
				})
			}
		}
	}

	return report.Text(output.Table(headers, rows))
}
