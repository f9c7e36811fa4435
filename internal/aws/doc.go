// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws resolves the AWS credential, profile and region context once at
// startup and exposes narrow client interfaces for the read-only control-plane
// calls the report makes. It also lists named profiles from the shared config
// files and uploads finished reports to S3.
package aws
