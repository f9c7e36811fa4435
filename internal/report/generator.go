// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tfctl/envreport/internal/log"
)

// DefaultTitle heads every report unless configured otherwise.
const DefaultTitle = "AWS ENVIRONMENT REPORT"

// Generator runs sections in order and streams the rendered report.
type Generator struct {
	Title string
	// Now stamps the Generated line. Defaults to time.Now.
	Now func() time.Time
	// ProbeTimeout bounds each probe when positive. Zero means probes may
	// block for as long as they need.
	ProbeTimeout time.Duration
}

// Summary counts what a run did.
type Summary struct {
	Sections int
	Probes   int
	Failed   int
}

// Run executes every probe sequentially and writes each result as soon as it
// is known, so an interrupted run leaves a readable prefix. Probe errors and
// panics are rendered inline and never stop the run; only a write failure
// does.
func (g *Generator) Run(ctx context.Context, sections []Section, w io.Writer) (Summary, error) {
	var sum Summary

	title := g.Title
	if title == "" {
		title = DefaultTitle
	}
	now := g.Now
	if now == nil {
		now = time.Now
	}

	if err := WriteTitle(w, title, now()); err != nil {
		return sum, fmt.Errorf("failed to write report title: %w", err)
	}

	for _, section := range sections {
		log.Debugf("section: %s", section.Header)
		if err := WriteHeader(w, section.Header); err != nil {
			return sum, fmt.Errorf("failed to write section %q: %w", section.Header, err)
		}
		sum.Sections++

		for _, item := range section.Items {
			res := g.call(ctx, item)
			sum.Probes++
			if !res.OK() {
				sum.Failed++
				log.Warnf("probe %s/%s failed: %v", section.Header, item.Label, res.Err())
			}
			if err := WriteItem(w, item.Label, res); err != nil {
				return sum, fmt.Errorf("failed to write %s/%s: %w", section.Header, item.Label, err)
			}
		}
	}

	return sum, nil
}

func (g *Generator) call(ctx context.Context, item Item) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Failed(fmt.Errorf("probe panicked: %v", r))
		}
	}()

	if item.Probe == nil {
		return Failed(fmt.Errorf("no probe for %q", item.Label))
	}

	if g.ProbeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.ProbeTimeout)
		defer cancel()
	}
	return item.Probe(ctx)
}
