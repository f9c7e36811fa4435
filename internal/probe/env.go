// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"
	"errors"
	"net"
	"os"
	"os/user"
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"golang.org/x/term"

	"github.com/tfctl/envreport/internal/aws"
	"github.com/tfctl/envreport/internal/config"
	"github.com/tfctl/envreport/internal/log"
	"github.com/tfctl/envreport/internal/report"
	"github.com/tfctl/envreport/internal/shell"
)

var (
	errNoRegion  = errors.New("region is not configured")
	errNoSession = errors.New("AWS configuration was not loaded")
)

// Env is everything a probe may consult. Function fields left nil fall back
// to the real system.
type Env struct {
	// Session is nil when AWS config failed to load; AWSErr says why.
	Session *aws.Session
	AWSErr  error
	Clients aws.Clients

	Runner   shell.Runner
	Dir      string
	Home     string
	Settings Settings

	Getenv      func(string) string
	HostInfo    func(context.Context) (*host.InfoStat, error)
	CurrentUser func() (string, error)
	IsTerminal  func() bool
	Dial        func(ctx context.Context, network, addr string) (net.Conn, error)
}

// NewEnv builds an Env for the real machine. A nil session is allowed.
func NewEnv(session *aws.Session, awsErr error, dir, home string, settings Settings) *Env {
	env := &Env{
		Session:  session,
		AWSErr:   awsErr,
		Runner:   shell.Exec{},
		Dir:      dir,
		Home:     home,
		Settings: settings,
	}
	if session != nil {
		env.Clients = session.NewClients()
	}
	return env
}

// cloud returns the error every cloud probe reports when it cannot run.
func (e *Env) cloud() error {
	if e.Session == nil {
		if e.AWSErr != nil {
			return e.AWSErr
		}
		return errNoSession
	}
	if e.Session.Region == "" {
		return errNoRegion
	}
	return nil
}

func (e *Env) getenv(key string) string {
	if e.Getenv != nil {
		return e.Getenv(key)
	}
	return os.Getenv(key)
}

// lookupEnv returns the first non-empty value among keys.
func (e *Env) lookupEnv(keys ...string) string {
	for _, k := range keys {
		if v := e.getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func (e *Env) hostInfo(ctx context.Context) (*host.InfoStat, error) {
	if e.HostInfo != nil {
		return e.HostInfo(ctx)
	}
	return host.InfoWithContext(ctx)
}

func (e *Env) currentUser() (string, error) {
	if e.CurrentUser != nil {
		return e.CurrentUser()
	}
	u, err := user.Current()
	if err != nil {
		if name := e.lookupEnv("USER", "USERNAME"); name != "" {
			return name, nil
		}
		return "", err
	}
	return u.Username, nil
}

func (e *Env) isTerminal() bool {
	if e.IsTerminal != nil {
		return e.IsTerminal()
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func (e *Env) dial(ctx context.Context, addr string) (net.Conn, error) {
	if e.Dial != nil {
		return e.Dial(ctx, "tcp", addr)
	}
	d := &net.Dialer{Timeout: e.Settings.DialTimeout}
	return d.DialContext(ctx, "tcp", addr)
}

// Deploy is the fixed deployment target echoed at the end of the report.
type Deploy struct {
	Region      string
	Repository  string
	Description string
}

// Settings are the tunables a config file may override.
type Settings struct {
	Title       string
	RoleMatch   []string
	Packages    []string
	Tools       []string
	ModelLimit  int
	DialTimeout time.Duration
	Deploy      Deploy
}

// DefaultSettings returns the built-in tunables.
func DefaultSettings() Settings {
	return Settings{
		Title:       report.DefaultTitle,
		RoleMatch:   []string{"redshift", "bedrock", "ec2", "sagemaker"},
		Packages:    []string{"boto3", "langchain", "sqlalchemy", "streamlit", "python-dotenv"},
		Tools:       []string{"node", "docker", "git"},
		ModelLimit:  10,
		DialTimeout: 5 * time.Second,
		Deploy: Deploy{
			Region:      "us-east-1",
			Repository:  "amazon-redshift-bedrock-query",
			Description: "Streamlit app that turns natural language questions into Redshift SQL using Amazon Bedrock",
		},
	}
}

// SettingsFrom overlays cfg on DefaultSettings. A malformed key is logged and
// its default kept.
func SettingsFrom(cfg config.Type) Settings {
	s := DefaultSettings()

	str := func(key string, dst *string) {
		v, err := cfg.GetString(key, *dst)
		if err != nil {
			log.Warnf("config %s: %v", key, err)
			return
		}
		*dst = v
	}
	slice := func(key string, dst *[]string) {
		v, err := cfg.GetStringSlice(key, *dst)
		if err != nil {
			log.Warnf("config %s: %v", key, err)
			return
		}
		*dst = v
	}

	str("report.title", &s.Title)
	slice("roles.match", &s.RoleMatch)
	slice("packages.allow", &s.Packages)
	slice("tools", &s.Tools)
	str("deploy.region", &s.Deploy.Region)
	str("deploy.repository", &s.Deploy.Repository)
	str("deploy.description", &s.Deploy.Description)

	if n, err := cfg.GetInt("models.limit", s.ModelLimit); err != nil {
		log.Warnf("config models.limit: %v", err)
	} else if n > 0 {
		s.ModelLimit = n
	}

	return s
}

// cloudFailed renders an SDK error as is. The service error code goes to the
// log so it can be grepped without parsing the message.
func cloudFailed(err error) report.Result {
	if code := aws.ErrorCode(err); code != "" {
		log.Debugf("aws api error: code=%s", code)
	}
	return report.Failed(err)
}
