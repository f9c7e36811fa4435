// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/redshift"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// STSAPI resolves the caller identity.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// EC2API covers the key pair, instance and network listings.
type EC2API interface {
	DescribeKeyPairs(ctx context.Context, params *ec2.DescribeKeyPairsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeKeyPairsOutput, error)
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	DescribeSecurityGroups(ctx context.Context, params *ec2.DescribeSecurityGroupsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error)
	DescribeVpcs(ctx context.Context, params *ec2.DescribeVpcsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error)
	DescribeSubnets(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error)
}

// IAMAPI lists roles.
type IAMAPI interface {
	ListRoles(ctx context.Context, params *iam.ListRolesInput, optFns ...func(*iam.Options)) (*iam.ListRolesOutput, error)
}

// RedshiftAPI lists provisioned clusters.
type RedshiftAPI interface {
	DescribeClusters(ctx context.Context, params *redshift.DescribeClustersInput, optFns ...func(*redshift.Options)) (*redshift.DescribeClustersOutput, error)
}

// BedrockAPI lists the foundation model catalog.
type BedrockAPI interface {
	ListFoundationModels(ctx context.Context, params *bedrock.ListFoundationModelsInput, optFns ...func(*bedrock.Options)) (*bedrock.ListFoundationModelsOutput, error)
}

// S3PutAPI stores a finished report.
type S3PutAPI interface {
	PutObject(ctx context.Context, params *s3v2.PutObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error)
}

// Compile-time checks that the SDK clients satisfy the narrow interfaces and
// the paginator client interfaces they are handed to.
var (
	_ STSAPI      = (*sts.Client)(nil)
	_ EC2API      = (*ec2.Client)(nil)
	_ IAMAPI      = (*iam.Client)(nil)
	_ RedshiftAPI = (*redshift.Client)(nil)
	_ BedrockAPI  = (*bedrock.Client)(nil)
	_ S3PutAPI    = (*s3v2.Client)(nil)

	_ ec2.DescribeInstancesAPIClient      = (EC2API)(nil)
	_ ec2.DescribeSecurityGroupsAPIClient = (EC2API)(nil)
	_ iam.ListRolesAPIClient              = (IAMAPI)(nil)
	_ redshift.DescribeClustersAPIClient  = (RedshiftAPI)(nil)
)

// Clients bundles the control-plane clients built from one Session.
type Clients struct {
	STS      STSAPI
	EC2      EC2API
	IAM      IAMAPI
	Redshift RedshiftAPI
	Bedrock  BedrockAPI
}

// NewClients builds every probe client from the session config.
func (s *Session) NewClients() Clients {
	return Clients{
		STS:      NewSTS(s.Config),
		EC2:      NewEC2(s.Config),
		IAM:      NewIAM(s.Config),
		Redshift: NewRedshift(s.Config),
		Bedrock:  NewBedrock(s.Config),
	}
}
