// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/envreport/internal/aws"
	"github.com/tfctl/envreport/internal/log"
	"github.com/tfctl/envreport/internal/probe"
	"github.com/tfctl/envreport/internal/report"
	"github.com/tfctl/envreport/internal/util"
)

// Seams replaced in tests so a run never reaches AWS.
var (
	newSession  = aws.NewSession
	newS3Client = func(s *aws.Session) aws.S3PutAPI { return aws.NewS3(s.Config) }
	sectionsFor = probe.Sections
)

// reportAction runs every probe and streams the report to the file, stdout
// and S3. Probe failures end up in the report; only sink failures fail the
// command.
func reportAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	workDir := m.WorkDir
	if d := cmd.String("dir"); d != "" {
		wd, err := util.ParseWorkDir(d)
		if err != nil {
			return fmt.Errorf("failed to resolve --dir %s: %w", d, err)
		}
		workDir = wd
	}
	if workDir == "" {
		workDir = "."
	}

	loadDotEnv(workDir, cmd.String("env-file"))

	var opts []aws.Option
	if p := cmd.String("profile"); p != "" {
		opts = append(opts, aws.WithProfile(p))
	}
	if r := cmd.String("region"); r != "" {
		opts = append(opts, aws.WithRegion(r))
	}
	session, awsErr := newSession(ctx, opts...)
	if awsErr != nil {
		log.WithError(awsErr).Warn("AWS config did not load; cloud sections will show the error")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("no home directory: %v", err)
	}

	settings := probe.SettingsFrom(m.Config)
	env := probe.NewEnv(session, awsErr, workDir, home, settings)

	outPath := cmd.String("output")
	f, err := os.Create(outPath)
	if err != nil {
		return writeFailure("failed to create report file: %v", err)
	}
	defer f.Close()

	sinks := []report.Sink{{Name: "file", W: f}}
	if !cmd.Bool("quiet") {
		sinks = append(sinks, report.Sink{Name: "stdout", W: stdout(cmd)})
	}

	var upload *aws.S3Sink
	if uri := cmd.String("s3-uri"); uri != "" {
		if session == nil {
			log.Errorf("skipping upload to %s: %v", uri, awsErr)
		} else if upload, err = aws.NewS3Sink(newS3Client(session), uri, filepath.Base(outPath)); err != nil {
			log.Errorf("skipping upload: %v", err)
			upload = nil
		} else {
			sinks = append(sinks, report.Sink{Name: "s3", W: upload})
		}
	}

	w := report.NewWriter(sinks...)
	g := &report.Generator{
		Title:        settings.Title,
		ProbeTimeout: cmd.Duration("probe-timeout"),
	}

	sum, runErr := g.Run(ctx, sectionsFor(env), w)
	if runErr == nil && !w.Active("file") {
		runErr = errors.Join(w.Dropped()...)
	}
	if runErr != nil {
		return writeFailure("failed to write %s: %v", outPath, runErr)
	}
	if err := f.Close(); err != nil {
		return writeFailure("failed to close %s: %v", outPath, err)
	}
	log.Infof("report written: path=%s sections=%d probes=%d failed=%d bytes=%d",
		outPath, sum.Sections, sum.Probes, sum.Failed, w.Written())

	if upload != nil && w.Active("s3") {
		if err := upload.Flush(ctx); err != nil {
			log.Errorf("%v", err)
		}
	}

	return nil
}

// loadDotEnv loads name, relative to dir, into the process environment.
// Variables already set win. A missing file is not an error.
func loadDotEnv(dir, name string) {
	if name == "" {
		return
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, name)
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debugf("no dotenv file at %s", path)
			return
		}
		log.Warnf("failed to load %s: %v", path, err)
		return
	}
	log.Debugf("loaded dotenv file %s", path)
}
