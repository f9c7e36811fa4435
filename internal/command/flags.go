// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// DefaultOutput is the report file, relative to the current directory.
const DefaultOutput = "environment_report.txt"

// configNS is the config file section flag values are read from.
const configNS = "report"

// NewReportFlags constructs the flags of the report action. Each flag is
// sourced from its env vars first, then from report.<flag> in the config file
// at cfgPath when one exists.
func NewReportFlags(cfgPath string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "report file to create or overwrite",
			Value:   DefaultOutput,
			Sources: sourceChain(cfgPath, "output", "ENVREPORT_OUTPUT"),
			Validator: func(value string) error {
				return FlagValidators(value, NonEmptyValidator)
			},
		},
		&cli.StringFlag{
			Name:    "profile",
			Usage:   "AWS profile to inspect",
			Sources: sourceChain(cfgPath, "profile", "AWS_PROFILE"),
		},
		&cli.StringFlag{
			Name:    "region",
			Usage:   "AWS region to inspect",
			Sources: sourceChain(cfgPath, "region", "AWS_REGION", "AWS_DEFAULT_REGION"),
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "do not echo the report to stdout",
			Sources: sourceChain(cfgPath, "quiet", "ENVREPORT_QUIET"),
		},
		&cli.StringFlag{
			Name:    "s3-uri",
			Usage:   "also upload the report to s3://bucket/key",
			Sources: sourceChain(cfgPath, "s3-uri", "ENVREPORT_S3_URI"),
			Validator: func(value string) error {
				return FlagValidators(value, S3URIValidator)
			},
		},
		&cli.DurationFlag{
			Name:    "probe-timeout",
			Usage:   "bound each probe, 0 to wait as long as it takes",
			Sources: sourceChain(cfgPath, "probe-timeout", "ENVREPORT_PROBE_TIMEOUT"),
		},
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "directory to inspect instead of the current one",
			Sources: sourceChain(cfgPath, "dir"),
			Validator: func(value string) error {
				return FlagValidators(value, DirValidator)
			},
		},
		&cli.StringFlag{
			Name:    "env-file",
			Usage:   "dotenv file loaded before probing, relative to --dir",
			Value:   ".env",
			Sources: sourceChain(cfgPath, "env-file", "ENVREPORT_ENV_FILE"),
		},
	}
}

// sourceChain builds a flag's value sources: env vars in order, then the
// config file.
func sourceChain(cfgPath string, key string, envVars ...string) cli.ValueSourceChain {
	chain := cli.EnvVars(envVars...)
	if cfgPath != "" {
		src := yaml.YAML(configNS+"."+key, altsrc.StringSourcer(cfgPath))
		chain.Chain = append(chain.Chain, src)
	}
	return chain
}
