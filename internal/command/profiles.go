// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/envreport/internal/aws"
	"github.com/tfctl/envreport/internal/meta"
)

func profilesCommandAction(_ context.Context, cmd *cli.Command) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	profiles, err := aws.Profiles(home)
	if err != nil {
		return err
	}

	w := stdout(cmd)
	for _, p := range profiles {
		fmt.Fprintln(w, p)
	}
	return nil
}

func profilesCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "profiles",
		Usage:     "list the named AWS profiles in the shared config files",
		UsageText: "envreport profiles",
		Metadata:  map[string]any{"meta": meta},
		Action:    profilesCommandAction,
	}
}
