// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/envreport/internal/meta"
	"github.com/tfctl/envreport/internal/probe"
)

func sectionsCommandAction(_ context.Context, cmd *cli.Command) error {
	w := stdout(cmd)
	for _, h := range probe.Headers() {
		fmt.Fprintln(w, h)
	}
	return nil
}

func sectionsCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "sections",
		Usage:     "list the report sections in order",
		UsageText: "envreport sections",
		Metadata:  map[string]any{"meta": meta},
		Action:    sectionsCommandAction,
	}
}
