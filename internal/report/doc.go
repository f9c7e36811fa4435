// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package report renders an ordered list of sections, each made of labeled
// probes, into a plain text report. Probe failures never stop a run: an error
// is rendered as its message in the place the value would have gone.
package report
