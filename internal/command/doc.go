// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for envreport. It wires flags,
// validators, the report action, and the helper subcommands.
package command
