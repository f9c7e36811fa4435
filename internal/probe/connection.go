// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/tfctl/envreport/internal/report"
)

// DefaultRedshiftPort is used when no port variable is set.
const DefaultRedshiftPort = "5439"

const masked = "***"

// Connection is the Redshift connection a .env file or the shell provides.
// Upper-case variable names win over lower-case ones.
type Connection struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

// Connection reads the Redshift connection variables.
func (e *Env) Connection() Connection {
	c := Connection{
		Host:     e.lookupEnv("REDSHIFT_HOST", "redshift_host"),
		Port:     e.lookupEnv("REDSHIFT_PORT", "redshift_port"),
		Database: e.lookupEnv("REDSHIFT_DB", "redshift_database"),
		User:     e.lookupEnv("REDSHIFT_USER", "redshift_username"),
		Password: e.lookupEnv("REDSHIFT_PASSWORD", "redshift_password"),
	}
	if c.Port == "" || strings.EqualFold(c.Port, "none") {
		c.Port = DefaultRedshiftPort
	}
	return c
}

// Missing names the required variables that are unset.
func (c Connection) Missing() []string {
	var missing []string
	for _, v := range []struct {
		name  string
		value string
	}{
		{"REDSHIFT_HOST", c.Host},
		{"REDSHIFT_DATABASE", c.Database},
		{"REDSHIFT_USERNAME", c.User},
		{"REDSHIFT_PASSWORD", c.Password},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	return missing
}

// URI is the SQLAlchemy style connection string with the password masked.
func (c Connection) URI() string {
	return fmt.Sprintf("redshift+psycopg2://%s:%s@%s/%s", c.User, masked, c.Address(), c.Database)
}

// Address is host:port.
func (c Connection) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

// ConnectionSettings shows the resolved connection variables. The password
// is never shown.
func (e *Env) ConnectionSettings(context.Context) report.Result {
	c := e.Connection()
	password := orUnset(c.Password)
	if c.Password != "" {
		password = masked
	}
	return report.Lines([]string{
		"Host: " + orUnset(c.Host),
		"Port: " + c.Port,
		"Database: " + orUnset(c.Database),
		"User: " + orUnset(c.User),
		"Password: " + password,
	})
}

// ConnectionMissing lists the required variables that are unset.
func (e *Env) ConnectionMissing(context.Context) report.Result {
	missing := e.Connection().Missing()
	if len(missing) == 0 {
		return report.Text("none")
	}
	return report.Failed(fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", ")))
}

// ConnectionURI shows the connection string an application would build.
func (e *Env) ConnectionURI(context.Context) report.Result {
	c := e.Connection()
	if len(c.Missing()) > 0 {
		return report.Failed(fmt.Errorf("incomplete connection settings"))
	}
	return report.Text(c.URI())
}

// ConnectionReachable opens and closes a TCP connection to the cluster.
func (e *Env) ConnectionReachable(ctx context.Context) report.Result {
	c := e.Connection()
	if c.Host == "" {
		return report.Failed(fmt.Errorf("REDSHIFT_HOST is not set"))
	}

	if e.Settings.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Settings.DialTimeout)
		defer cancel()
	}

	conn, err := e.dial(ctx, c.Address())
	if err != nil {
		return report.Failed(err)
	}
	_ = conn.Close()
	return report.Textf("%s reachable", c.Address())
}
