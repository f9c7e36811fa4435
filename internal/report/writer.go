// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/tfctl/envreport/internal/log"
)

// ErrNoSinks is returned once every sink has failed.
var ErrNoSinks = errors.New("no writable report sinks left")

// Sink is a named destination for report bytes.
type Sink struct {
	Name string
	W    io.Writer
}

// Writer fans each write out to every sink. A sink that fails is logged and
// dropped so the others keep receiving the report; writing only fails once no
// sink is left.
type Writer struct {
	sinks   []Sink
	written int64
	dropped []error
}

// NewWriter returns a Writer over sinks. Nil writers are skipped.
func NewWriter(sinks ...Sink) *Writer {
	w := &Writer{}
	for _, s := range sinks {
		if s.W != nil {
			w.sinks = append(w.sinks, s)
		}
	}
	return w
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	if len(w.sinks) == 0 {
		return 0, ErrNoSinks
	}

	kept := w.sinks[:0]
	for _, s := range w.sinks {
		n, err := s.W.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			err = fmt.Errorf("sink %s: %w", s.Name, err)
			log.WithError(err).Warn("dropping report sink")
			w.dropped = append(w.dropped, err)
			continue
		}
		kept = append(kept, s)
	}
	w.sinks = kept

	if len(w.sinks) == 0 {
		return 0, errors.Join(append([]error{ErrNoSinks}, w.dropped...)...)
	}
	w.written += int64(len(p))
	return len(p), nil
}

// Written is the number of bytes delivered to the surviving sinks.
func (w *Writer) Written() int64 {
	return w.written
}

// Dropped returns the errors of sinks that were removed.
func (w *Writer) Dropped() []error {
	return w.dropped
}

// Active reports whether the named sink is still receiving writes.
func (w *Writer) Active(name string) bool {
	for _, s := range w.sinks {
		if s.Name == name {
			return true
		}
	}
	return false
}
