// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package shell runs local inspection commands and captures their combined
// output. A failing command's output is kept as the error text, so callers can
// show exactly what the command printed.
package shell
