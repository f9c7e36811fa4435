// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateSharedConfig points the SDK at empty shared files under a temp dir
// so tests never read the developer's real ~/.aws.
func isolateSharedConfig(t *testing.T, configBody, credentialsBody string) string {
	t.Helper()
	home := t.TempDir()
	dir := filepath.Join(home, ".aws")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	cfgPath := filepath.Join(dir, "config")
	credPath := filepath.Join(dir, "credentials")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configBody), 0o600))
	require.NoError(t, os.WriteFile(credPath, []byte(credentialsBody), 0o600))

	t.Setenv("AWS_CONFIG_FILE", cfgPath)
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", credPath)
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
	return home
}

// TestWithProfile verifies that WithProfile sets the profile option
// correctly.
func TestWithProfile(t *testing.T) {
	tests := []struct {
		name     string
		profile  string
		expected string
	}{
		{name: "empty profile", profile: "", expected: ""},
		{name: "default profile", profile: "default", expected: "default"},
		{name: "custom profile", profile: "analytics", expected: "analytics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts options
			WithProfile(tt.profile)(&opts)
			assert.Equal(t, tt.expected, opts.profile)
		})
	}
}

// TestWithRegion verifies that WithRegion sets the region option correctly.
func TestWithRegion(t *testing.T) {
	tests := []struct {
		name     string
		region   string
		expected string
	}{
		{name: "empty region", region: "", expected: ""},
		{name: "us-east-1", region: "us-east-1", expected: "us-east-1"},
		{name: "eu-west-1", region: "eu-west-1", expected: "eu-west-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts options
			WithRegion(tt.region)(&opts)
			assert.Equal(t, tt.expected, opts.region)
		})
	}
}

// TestWithRetryer verifies that WithRetryer sets the retryer function option.
func TestWithRetryer(t *testing.T) {
	var opts options
	WithRetryer(func() awsv2.Retryer { return retry.NewStandard() })(&opts)

	require.NotNil(t, opts.retryer)
	assert.NotNil(t, opts.retryer())
}

// TestNoRetry verifies that the default session retryer makes one attempt.
func TestNoRetry(t *testing.T) {
	assert.Equal(t, 1, NoRetry().MaxAttempts())
}

// TestLoadOptions verifies that only set options produce load functions.
func TestLoadOptions(t *testing.T) {
	assert.Empty(t, applyOptions(nil).loadOptions())

	o := applyOptions([]Option{WithProfile("p"), WithRegion("r"), WithRetryer(NoRetry)})
	assert.Len(t, o.loadOptions(), 3)
}

// TestLoadAWSConfig_WithRegion verifies that the region option is applied
// during config loading.
func TestLoadAWSConfig_WithRegion(t *testing.T) {
	isolateSharedConfig(t, "", "")

	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-west-2"))
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Region)
}

// TestLoadAWSConfig_OptionsOrder verifies that later options override
// earlier ones.
func TestLoadAWSConfig_OptionsOrder(t *testing.T) {
	isolateSharedConfig(t, "", "")

	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-east-1"), WithRegion("eu-west-1"))
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)
}

// TestLoadAWSConfig_MissingProfile verifies that an unknown profile surfaces
// as a load error rather than a panic.
func TestLoadAWSConfig_MissingProfile(t *testing.T) {
	isolateSharedConfig(t, "[default]\nregion = us-east-1\n", "")

	_, err := LoadAWSConfig(context.Background(), WithProfile("does-not-exist"))
	assert.Error(t, err)
}

// TestNewSession verifies profile and region resolution.
func TestNewSession(t *testing.T) {
	isolateSharedConfig(t, "[default]\nregion = us-east-1\n\n[profile analytics]\nregion = eu-central-1\n", "")

	t.Run("defaults", func(t *testing.T) {
		s, err := NewSession(context.Background())
		require.NoError(t, err)
		assert.Equal(t, DefaultProfile, s.Profile)
		assert.Equal(t, "us-east-1", s.Region)
	})

	t.Run("explicit profile", func(t *testing.T) {
		s, err := NewSession(context.Background(), WithProfile("analytics"))
		require.NoError(t, err)
		assert.Equal(t, "analytics", s.Profile)
		assert.Equal(t, "eu-central-1", s.Region)
	})

	t.Run("env profile", func(t *testing.T) {
		t.Setenv("AWS_PROFILE", "analytics")
		s, err := NewSession(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "analytics", s.Profile)
	})

	t.Run("region override", func(t *testing.T) {
		s, err := NewSession(context.Background(), WithRegion("ap-south-1"))
		require.NoError(t, err)
		assert.Equal(t, "ap-south-1", s.Region)
		assert.Equal(t, 1, s.Config.Retryer().MaxAttempts())
	})
}

// TestNewClients verifies that every probe client is constructed.
func TestNewClients(t *testing.T) {
	isolateSharedConfig(t, "", "")

	s, err := NewSession(context.Background(), WithRegion("us-east-1"))
	require.NoError(t, err)

	c := s.NewClients()
	assert.NotNil(t, c.STS)
	assert.NotNil(t, c.EC2)
	assert.NotNil(t, c.IAM)
	assert.NotNil(t, c.Redshift)
	assert.NotNil(t, c.Bedrock)
	assert.NotNil(t, NewS3(s.Config))
}

func TestResolveProfile(t *testing.T) {
	t.Setenv("AWS_PROFILE", "")
	assert.Equal(t, "default", ResolveProfile(""))
	assert.Equal(t, "x", ResolveProfile("x"))

	t.Setenv("AWS_PROFILE", "from-env")
	assert.Equal(t, "from-env", ResolveProfile(""))
	assert.Equal(t, "x", ResolveProfile("x"))
}
