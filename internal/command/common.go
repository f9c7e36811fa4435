// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/envreport/internal/meta"
)

// Process exit statuses.
const (
	ExitOK        = 0
	ExitInitError = 1
	ExitWriteFail = 2
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil {
		return meta.Meta{}
	}
	if cmd.Metadata == nil {
		if root := cmd.Root(); root != nil && root != cmd {
			return GetMeta(root)
		}
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// ExitCode maps an error returned from running the app to a process exit
// status. Errors that carry no code are treated as initialization failures.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return ExitInitError
}

// writeFailure wraps err so it exits with ExitWriteFail.
func writeFailure(format string, args ...any) error {
	return cli.Exit(fmt.Sprintf(format, args...), ExitWriteFail)
}

// stdout is where a command prints, honoring a Writer set on the root.
func stdout(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}
