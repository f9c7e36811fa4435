// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"context"
	"fmt"
	"strings"
)

// Result is the outcome of one probe: text on success, an error otherwise.
// Both render the same way, as a block of text.
type Result struct {
	text string
	err  error
}

// Text returns a successful Result.
func Text(s string) Result {
	return Result{text: s}
}

// Textf returns a successful Result built with fmt.Sprintf.
func Textf(format string, args ...any) Result {
	return Result{text: fmt.Sprintf(format, args...)}
}

// Lines returns a successful Result of one line per element.
func Lines(lines []string) Result {
	return Result{text: strings.Join(lines, "\n")}
}

// Failed returns a Result carrying err.
func Failed(err error) Result {
	return Result{err: err}
}

// From picks Text or Failed.
func From(s string, err error) Result {
	if err != nil {
		return Failed(err)
	}
	return Text(s)
}

// Err returns the probe error, if any.
func (r Result) Err() error {
	return r.err
}

// OK reports whether the probe succeeded.
func (r Result) OK() bool {
	return r.err == nil
}

// String is the rendered text: the value, or the error message.
func (r Result) String() string {
	if r.err != nil {
		return strings.TrimRight(r.err.Error(), " \t\r\n")
	}
	return r.text
}

// Probe is one read-only inspection. It takes no input beyond the context.
type Probe func(ctx context.Context) Result

// Static is a probe that echoes a literal value.
func Static(s string) Probe {
	return func(context.Context) Result { return Text(s) }
}

// Item is one labeled probe inside a section. An empty label renders the
// probe text on its own.
type Item struct {
	Label string
	Probe Probe
}

// Section is a header followed by the output of its items, in order.
type Section struct {
	Header string
	Items  []Item
}

// Headers lists the section headers in order.
func Headers(sections []Section) []string {
	headers := make([]string, 0, len(sections))
	for _, s := range sections {
		headers = append(headers, s.Header)
	}
	return headers
}
