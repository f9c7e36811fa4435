// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/envreport/internal/config"
	"github.com/tfctl/envreport/internal/meta"
	"github.com/tfctl/envreport/internal/util"
)

// InitApp builds the envreport command tree. Running the root command with no
// subcommand produces the report.
func InitApp() (*cli.Command, error) {
	sd, err := util.ParseWorkDir(".")
	if err != nil {
		return nil, err
	}

	// A missing config file is normal; every setting has a default.
	cfg, _ := config.Load() //nolint
	meta := meta.Meta{
		Config:  cfg,
		WorkDir: sd,
	}

	app := &cli.Command{
		Name:      "envreport",
		Usage:     "Snapshot the local machine and AWS account into a text report",
		UsageText: "envreport [options]",
		Flags: append(NewReportFlags(config.Path()),
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "envreport version info",
				HideDefault: true,
			},
		),
		Metadata: map[string]any{"meta": meta},
		Action:   reportAction,
		// Exit codes are mapped by the caller, never by the cli package.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}

	app.Commands = append(app.Commands,
		sectionsCommandBuilder(meta),
		profilesCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}
