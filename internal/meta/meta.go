// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import "github.com/tfctl/envreport/internal/config"

// Meta contains runtime metadata shared by commands: the loaded configuration
// and the directory being inspected.
type Meta struct {
	Config  config.Type
	WorkDir string
}
