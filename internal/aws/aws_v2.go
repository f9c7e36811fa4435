// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"os"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/redshift"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/tfctl/envreport/internal/log"
)

// DefaultProfile is reported when neither --profile nor AWS_PROFILE is set.
const DefaultProfile = "default"

// options holds optional overrides for AWS config loading.
type options struct {
	profile string
	region  string
	retryer func() awsv2.Retryer
}

// Option customizes how AWS config is loaded.
// Default behavior (no options) inherits the shell environment and shared
// config chain (AWS_PROFILE, ~/.aws/config, ~/.aws/credentials, IMDS, etc.).
type Option func(*options)

// Session is the credential context shared by every cloud probe. It is
// resolved once and never re-queried.
type Session struct {
	Config  awsv2.Config
	Profile string
	Region  string
}

// LoadAWSConfig loads AWS SDK v2 config. By default it inherits the shell's
// AWS setup (AWS_PROFILE, shared config, env, IMDS). Options can override
// profile, region, and retryer without changing callers.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	o := applyOptions(opts)
	log.Debugf("opts applied: profile=%s, region=%s", o.profile, o.region)

	cfg, err := config.LoadDefaultConfig(ctx, o.loadOptions()...)
	if err != nil {
		log.Debugf("config load err: err=%v", err)
		return awsv2.Config{}, err
	}
	log.Debugf("config loaded: region=%s", cfg.Region)
	return cfg, nil
}

// NewSession loads the config and records which profile and region it
// resolved to. Requests are never retried unless a retryer option says so.
func NewSession(ctx context.Context, opts ...Option) (*Session, error) {
	opts = append([]Option{WithRetryer(NoRetry)}, opts...)
	o := applyOptions(opts)

	cfg, err := LoadAWSConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &Session{
		Config:  cfg,
		Profile: ResolveProfile(o.profile),
		Region:  cfg.Region,
	}, nil
}

// ResolveProfile returns the profile name the default config chain uses.
func ResolveProfile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv("AWS_PROFILE"); p != "" {
		return p
	}
	return DefaultProfile
}

// NoRetry is a retryer that makes a single attempt per request.
func NoRetry() awsv2.Retryer {
	return retry.AddWithMaxAttempts(retry.NewStandard(), 1)
}

// NewS3 constructs a v2 S3 client from the provided config. Additional service
// options can be supplied via optFns.
func NewS3(cfg awsv2.Config, optFns ...func(*s3v2.Options)) *s3v2.Client {
	client := s3v2.NewFromConfig(cfg, optFns...)
	log.Debugf("s3 client created")
	return client
}

// NewSTS constructs an STS client.
func NewSTS(cfg awsv2.Config) *sts.Client {
	client := sts.NewFromConfig(cfg)
	log.Debugf("sts client created")
	return client
}

// NewEC2 constructs an EC2 client.
func NewEC2(cfg awsv2.Config) *ec2.Client {
	client := ec2.NewFromConfig(cfg)
	log.Debugf("ec2 client created")
	return client
}

// NewIAM constructs an IAM client.
func NewIAM(cfg awsv2.Config) *iam.Client {
	client := iam.NewFromConfig(cfg)
	log.Debugf("iam client created")
	return client
}

// NewRedshift constructs a Redshift client.
func NewRedshift(cfg awsv2.Config) *redshift.Client {
	client := redshift.NewFromConfig(cfg)
	log.Debugf("redshift client created")
	return client
}

// NewBedrock constructs a Bedrock control-plane client.
func NewBedrock(cfg awsv2.Config) *bedrock.Client {
	client := bedrock.NewFromConfig(cfg)
	log.Debugf("bedrock client created")
	return client
}

// WithProfile sets the shared config profile. Defaults to AWS_PROFILE/env chain.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override. Defaults to env/profile/metadata chain.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithRetryer injects a custom retryer; if not set, SDK defaults are used.
func WithRetryer(newRetryer func() awsv2.Retryer) Option {
	return func(o *options) { o.retryer = newRetryer }
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) loadOptions() []func(*config.LoadOptions) error {
	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.retryer != nil {
		loadOpts = append(loadOpts, config.WithRetryer(o.retryer))
	}
	log.Debugf("loadOpts built: len=%d", len(loadOpts))
	return loadOpts
}
