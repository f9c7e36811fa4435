// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package probe holds the read-only inspections that make up the report and
// the fixed order they run in. Every probe reads what it needs from an Env
// built once at startup and returns a report.Result; none of them can abort
// the run.
package probe
