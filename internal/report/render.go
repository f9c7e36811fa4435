// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// RuleWidth is the width of the "=" rules around headers.
const RuleWidth = 60

// TimestampLayout formats the Generated line.
const TimestampLayout = "2006-01-02 15:04:05 MST"

var rule = strings.Repeat("=", RuleWidth)

// WriteTitle writes the report banner. The Generated line is the only line
// that differs between two runs over an unchanged environment.
func WriteTitle(w io.Writer, title string, at time.Time) error {
	_, err := fmt.Fprintf(w, "%s\n%s\nGenerated: %s\n%s\n", rule, title, at.Format(TimestampLayout), rule)
	return err
}

// WriteHeader writes a section header between two rules.
func WriteHeader(w io.Writer, header string) error {
	_, err := fmt.Fprintf(w, "\n%s\n%s\n%s\n", rule, header, rule)
	return err
}

// WriteItem writes one probe result. Single-line text sits beside its label;
// multi-line text starts on the line after it.
func WriteItem(w io.Writer, label string, res Result) error {
	_, err := io.WriteString(w, FormatItem(label, res))
	return err
}

// FormatItem renders what WriteItem writes.
func FormatItem(label string, res Result) string {
	text := res.String()

	var b strings.Builder
	switch {
	case label == "":
		if text == "" {
			return ""
		}
		b.WriteString(text)
	case text == "":
		b.WriteString(label + ":")
	case strings.Contains(text, "\n"):
		b.WriteString(label + ":\n" + text)
	default:
		b.WriteString(label + ": " + text)
	}
	b.WriteString("\n")
	return b.String()
}
