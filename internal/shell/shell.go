// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/tfctl/envreport/internal/log"
)

// Runner executes a command in dir and returns its combined stdout and stderr.
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) ([]byte, error)
	LookPath(name string) (string, error)
}

// Cmd is a command name plus arguments.
type Cmd struct {
	Name string
	Args []string
}

// C builds a Cmd.
func C(name string, args ...string) Cmd {
	return Cmd{Name: name, Args: args}
}

func (c Cmd) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Error is a failed command. Its text is whatever the command printed, or the
// underlying exec error when it printed nothing.
type Error struct {
	Cmd    Cmd
	Output []byte
	Err    error
}

func (e *Error) Error() string {
	if out := strings.TrimSpace(string(e.Output)); out != "" {
		return out
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err means the executable is absent.
func IsNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}

// Exec is the Runner backed by os/exec.
type Exec struct{}

var _ Runner = Exec{}

// Run implements Runner.
func (Exec) Run(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	var buf bytes.Buffer
	c.Stdout = &buf
	c.Stderr = &buf

	log.Tracef("exec: dir=%s cmd=%s", dir, C(name, args...))
	if err := c.Run(); err != nil {
		return buf.Bytes(), &Error{Cmd: C(name, args...), Output: buf.Bytes(), Err: err}
	}
	return buf.Bytes(), nil
}

// LookPath implements Runner.
func (Exec) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Output runs cmd and returns its output with trailing whitespace removed.
func Output(ctx context.Context, r Runner, dir string, cmd Cmd) (string, error) {
	out, err := r.Run(ctx, dir, cmd.Name, cmd.Args...)
	if err != nil {
		var se *Error
		if !errors.As(err, &se) {
			err = &Error{Cmd: cmd, Output: out, Err: err}
		}
		return "", err
	}
	return strings.TrimRight(string(out), " \t\r\n"), nil
}

// FirstFound runs the first command whose executable exists. Any other
// failure is returned as is. When none exist the last not-found error is
// returned.
func FirstFound(ctx context.Context, r Runner, dir string, cmds ...Cmd) (string, error) {
	var err error
	for _, cmd := range cmds {
		var out string
		out, err = Output(ctx, r, dir, cmd)
		if err == nil || !IsNotFound(err) {
			return out, err
		}
		log.Debugf("%s not found, trying fallback", cmd.Name)
	}
	if err == nil {
		err = fmt.Errorf("no command given")
	}
	return "", err
}

// FirstSuccess runs cmds in order until one exits cleanly.
func FirstSuccess(ctx context.Context, r Runner, dir string, cmds ...Cmd) (string, error) {
	var err error
	for _, cmd := range cmds {
		var out string
		out, err = Output(ctx, r, dir, cmd)
		if err == nil {
			return out, nil
		}
		log.Debugf("%s failed, trying fallback: err=%v", cmd, err)
	}
	if err == nil {
		err = fmt.Errorf("no command given")
	}
	return "", err
}

// LookPathFirst resolves the first name present on PATH.
func LookPathFirst(r Runner, names ...string) (string, error) {
	var err error
	for _, name := range names {
		var p string
		if p, err = r.LookPath(name); err == nil {
			return p, nil
		}
	}
	if err == nil {
		err = fmt.Errorf("no command given")
	}
	return "", err
}
