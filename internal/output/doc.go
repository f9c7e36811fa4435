// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output turns probe rows into the plain-text tables embedded in the
// report. Tables carry no color or border so the file and the console show
// the same bytes.
package output
