// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package probe

import (
	"context"
	"errors"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	bedrocktypes "github.com/aws/aws-sdk-go-v2/service/bedrock/types"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/aws-sdk-go-v2/service/redshift"
	redshifttypes "github.com/aws/aws-sdk-go-v2/service/redshift/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/tfctl/envreport/internal/aws"
	"github.com/tfctl/envreport/internal/shell/shelltest"
)

var errDenied = errors.New("operation error STS: GetCallerIdentity, https response error StatusCode: 403, api error InvalidClientTokenId: The security token included in the request is invalid.")

type fakeSTS struct{ err error }

func (f *fakeSTS) GetCallerIdentity(context.Context, *sts.GetCallerIdentityInput, ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &sts.GetCallerIdentityOutput{
		Account: awsv2.String("123456789012"),
		UserId:  awsv2.String("AIDAEXAMPLE"),
		Arn:     awsv2.String("arn:aws:iam::123456789012:user/dev"),
	}, nil
}

type fakeEC2 struct {
	err            error
	keyPairs       []ec2types.KeyPairInfo
	instancePages  [][]ec2types.Instance
	securityGroups []ec2types.SecurityGroup
	vpcs           []ec2types.Vpc
	subnets        []ec2types.Subnet

	instanceFilters []ec2types.Filter
}

func (f *fakeEC2) DescribeKeyPairs(context.Context, *ec2.DescribeKeyPairsInput, ...func(*ec2.Options)) (*ec2.DescribeKeyPairsOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &ec2.DescribeKeyPairsOutput{KeyPairs: f.keyPairs}, nil
}

func (f *fakeEC2) DescribeInstances(_ context.Context, in *ec2.DescribeInstancesInput, _ ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.instanceFilters = in.Filters
	page := pageIndex(in.NextToken)
	out := &ec2.DescribeInstancesOutput{}
	if page < len(f.instancePages) {
		out.Reservations = []ec2types.Reservation{{Instances: f.instancePages[page]}}
	}
	out.NextToken = nextToken(page, len(f.instancePages))
	return out, nil
}

func (f *fakeEC2) DescribeSecurityGroups(context.Context, *ec2.DescribeSecurityGroupsInput, ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &ec2.DescribeSecurityGroupsOutput{SecurityGroups: f.securityGroups}, nil
}

func (f *fakeEC2) DescribeVpcs(context.Context, *ec2.DescribeVpcsInput, ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &ec2.DescribeVpcsOutput{Vpcs: f.vpcs}, nil
}

func (f *fakeEC2) DescribeSubnets(context.Context, *ec2.DescribeSubnetsInput, ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &ec2.DescribeSubnetsOutput{Subnets: f.subnets}, nil
}

type fakeIAM struct {
	err   error
	pages [][]iamtypes.Role
}

func (f *fakeIAM) ListRoles(_ context.Context, in *iam.ListRolesInput, _ ...func(*iam.Options)) (*iam.ListRolesOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	page := pageIndex(in.Marker)
	out := &iam.ListRolesOutput{}
	if page < len(f.pages) {
		out.Roles = f.pages[page]
	}
	out.Marker = nextToken(page, len(f.pages))
	out.IsTruncated = out.Marker != nil
	return out, nil
}

type fakeRedshift struct {
	err      error
	clusters []redshifttypes.Cluster
}

func (f *fakeRedshift) DescribeClusters(context.Context, *redshift.DescribeClustersInput, ...func(*redshift.Options)) (*redshift.DescribeClustersOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &redshift.DescribeClustersOutput{Clusters: f.clusters}, nil
}

type fakeBedrock struct {
	err    error
	models []bedrocktypes.FoundationModelSummary
}

func (f *fakeBedrock) ListFoundationModels(context.Context, *bedrock.ListFoundationModelsInput, ...func(*bedrock.Options)) (*bedrock.ListFoundationModelsOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &bedrock.ListFoundationModelsOutput{ModelSummaries: f.models}, nil
}

// Page tokens are "1", "2", ... and absent on the last page.
func pageIndex(token *string) int {
	if token == nil {
		return 0
	}
	return int((*token)[0] - '0')
}

func nextToken(page, pages int) *string {
	if page+1 >= pages {
		return nil
	}
	return awsv2.String(string(rune('0' + page + 1)))
}

// failingClients returns clients whose every call fails with err.
func failingClients(err error) aws.Clients {
	return aws.Clients{
		STS:      &fakeSTS{err: err},
		EC2:      &fakeEC2{err: err},
		IAM:      &fakeIAM{err: err},
		Redshift: &fakeRedshift{err: err},
		Bedrock:  &fakeBedrock{err: err},
	}
}

// emptyClients returns clients that succeed with no data.
func emptyClients() aws.Clients {
	return aws.Clients{
		STS:      &fakeSTS{},
		EC2:      &fakeEC2{},
		IAM:      &fakeIAM{},
		Redshift: &fakeRedshift{},
		Bedrock:  &fakeBedrock{},
	}
}

var launched = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestEnv returns an Env rooted in temp dirs with a scripted runner and
// a session in us-east-1.
func newTestEnv(dir, home string, runner *shelltest.Runner, clients aws.Clients, vars map[string]string) *Env {
	return &Env{
		Session:  &aws.Session{Profile: "dev", Region: "us-east-1"},
		Clients:  clients,
		Runner:   runner,
		Dir:      dir,
		Home:     home,
		Settings: DefaultSettings(),
		Getenv:   func(k string) string { return vars[k] },
		CurrentUser: func() (string, error) {
			return "tester", nil
		},
		IsTerminal: func() bool { return false },
	}
}
