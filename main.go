// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/tfctl/envreport/internal/command"
	"github.com/tfctl/envreport/internal/log"
	"github.com/tfctl/envreport/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args))
}

// handleVersion checks for --version/-v ahead of any subcommand and returns
// whether it was handled.
func handleVersion(args []string, w io.Writer) bool {
	for _, a := range args[min(1, len(args)):] {
		if a == "--" {
			break
		}
		if a == "--version" || a == "-v" {
			fmt.Fprintln(w, version.String())
			return true
		}
	}
	return false
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return command.ExitInitError
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return command.ExitCode(err)
	}

	return command.ExitOK
}

func realMain(args []string) int {
	log.InitLogger()
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args, os.Stdout) {
		return command.ExitOK
	}

	return initAndRunApp(args)
}
