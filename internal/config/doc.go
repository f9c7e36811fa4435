// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for envreport's user
// configuration. The configuration is an optional YAML document located at
// $ENVREPORT_CFG_FILE or in the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/envreport.yaml or $HOME/.config/envreport.yaml
//   - macOS: $HOME/Library/Application Support/envreport.yaml
//   - Windows: %APPDATA%/envreport.yaml
//
// Every getter accepts a default, so a missing file simply means defaults.
package config
