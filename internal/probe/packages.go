// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/tfctl/envreport/internal/log"
	"github.com/tfctl/envreport/internal/output"
	"github.com/tfctl/envreport/internal/report"
	"github.com/tfctl/envreport/internal/shell"
)

// ErrPipUnavailable is the packages section when neither pip nor pip3 runs.
var ErrPipUnavailable = errors.New("pip not available")

var pipLists = []shell.Cmd{
	shell.C("pip", "list", "--format=json"),
	shell.C("pip3", "list", "--format=json"),
}

// Packages lists the installed versions of the allow-listed packages.
func (e *Env) Packages(ctx context.Context) report.Result {
	out, err := shell.FirstSuccess(ctx, e.Runner, e.Dir, pipLists...)
	if err != nil {
		log.Debugf("pip list: err=%v", err)
		return report.Failed(ErrPipUnavailable)
	}

	list, ok := pipJSON(out)
	if !ok {
		return report.Failed(fmt.Errorf("unexpected pip output: %.80s", out))
	}

	allowed := map[string]bool{}
	for _, p := range e.Settings.Packages {
		allowed[normalizePackage(p)] = true
	}

	headers := []string{"Package", "Version"}
	var rows [][]string
	gjson.Parse(list).ForEach(func(_, pkg gjson.Result) bool {
		name := pkg.Get("name").String()
		if allowed[normalizePackage(name)] {
			rows = append(rows, []string{name, pkg.Get("version").String()})
		}
		return true
	})
	output.SortRows(headers, rows, "package")

	return report.Text(output.Table(headers, rows))
}

// pipJSON picks the JSON array out of pip's combined output, which may also
// carry warnings and upgrade notices.
func pipJSON(out string) (string, bool) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && gjson.Valid(line) {
			return line, true
		}
	}
	return "", false
}

// normalizePackage folds the spellings pip treats as the same distribution.
func normalizePackage(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", "-")
}
