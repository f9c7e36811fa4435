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

// SecurityGroups lists every security group except the per-VPC defaults.
func (e *Env) SecurityGroups(ctx context.Context) report.Result {
	if err := e.cloud(); err != nil {
		return cloudFailed(err)
	}

	headers := []string{"Group ID", "Name", "VPC", "Description"}
	var rows [][]string

	paginator := ec2.NewDescribeSecurityGroupsPaginator(e.Clients.EC2, &ec2.DescribeSecurityGroupsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return cloudFailed(err)
		}
		for _, sg := range page.SecurityGroups {
			if awsv2.ToString(sg.GroupName) == "default" {
				continue
			}
			rows = append(rows, []string{
				output.Cell(sg.GroupId, "-"),
				output.Cell(sg.GroupName, "-"),
				output.Cell(sg.VpcId, "-"),
				output.Cell(sg.Description, "-"),
			})
		}
	}
	output.SortRows(headers, rows, "name,group id")

	return report.Text(output.Table(headers, rows))
}

// DefaultVPCs lists the default VPC of the region.
func (e *Env) DefaultVPCs(ctx context.Context) report.Result {
	if err := e.cloud(); err != nil {
		return cloudFailed(err)
	}

	out, err := e.Clients.EC2.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{
		Filters: []ec2types.Filter{
			{Name: awsv2.String("isDefault"), Values: []string{"true"}},
		},
	})
	if err != nil {
		return cloudFailed(err)
	}

	headers := []string{"VPC ID", "CIDR"}
	rows := make([][]string, 0, len(out.Vpcs))
	for _, vpc := range out.Vpcs {
		rows = append(rows, []string{output.Cell(vpc.VpcId, "-"), output.Cell(vpc.CidrBlock, "-")})
	}

	return report.Text(output.Table(headers, rows))
}

// DefaultSubnets lists the default subnet of each availability zone.
func (e *Env) DefaultSubnets(ctx context.Context) report.Result {
	if err := e.cloud(); err != nil {
		return cloudFailed(err)
	}

	out, err := e.Clients.EC2.DescribeSubnets(ctx, &ec2.DescribeSubnetsInput{
		Filters: []ec2types.Filter{
			{Name: awsv2.String("default-for-az"), Values: []string{"true"}},
		},
	})
	if err != nil {
		return cloudFailed(err)
	}

	headers := []string{"Subnet ID", "AZ", "CIDR"}
	rows := make([][]string, 0, len(out.Subnets))
	for _, subnet := range out.Subnets {
		rows = append(rows, []string{
			output.Cell(subnet.SubnetId, "-"),
			output.Cell(subnet.AvailabilityZone, "-"),
			output.Cell(subnet.CidrBlock, "-"),
		})
	}
	output.SortRows(headers, rows, "az")

	return report.Text(output.Table(headers, rows))
}
