// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ParseWorkDir resolves dir to an absolute path. It returns an error if the fs
// entry does not exist, is empty or is not a directory. A leading ~ is
// expanded to the home directory.
func ParseWorkDir(dir string) (string, error) {
	if dir == "" {
		return "", os.ErrInvalid
	}

	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}

	// Relative paths are taken from the current working directory.
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(cwd, dir)
	}

	if r, err := os.Stat(dir); err != nil {
		return "", err
	} else if !r.IsDir() {
		return "", os.ErrInvalid
	}

	return filepath.Clean(dir), nil
}
