// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/tfctl/envreport/internal/log"
)

// ErrNoSharedConfig is returned by Profiles when neither shared file exists.
var ErrNoSharedConfig = errors.New("no AWS config or credentials file found")

// SharedConfigFiles returns the shared config and credentials paths, honoring
// AWS_CONFIG_FILE and AWS_SHARED_CREDENTIALS_FILE.
func SharedConfigFiles(home string) (configFile, credentialsFile string) {
	configFile = os.Getenv("AWS_CONFIG_FILE")
	if configFile == "" {
		configFile = filepath.Join(home, ".aws", "config")
	}
	credentialsFile = os.Getenv("AWS_SHARED_CREDENTIALS_FILE")
	if credentialsFile == "" {
		credentialsFile = filepath.Join(home, ".aws", "credentials")
	}
	return
}

// Profiles lists the named profiles declared in the shared config and
// credentials files, sorted and de-duplicated. Config file sections are
// "default" or "profile <name>"; sso-session and services sections are not
// profiles.
func Profiles(home string) ([]string, error) {
	configFile, credentialsFile := SharedConfigFiles(home)

	seen := map[string]struct{}{}
	found := false
	for _, f := range []struct {
		path     string
		isConfig bool
	}{
		{configFile, true},
		{credentialsFile, false},
	} {
		if _, err := os.Stat(f.path); err != nil {
			log.Debugf("shared file absent: path=%s", f.path)
			continue
		}
		found = true

		cfg, err := ini.Load(f.path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", f.path, err)
		}
		for _, section := range cfg.Sections() {
			if name, ok := profileName(section.Name(), f.isConfig); ok {
				seen[name] = struct{}{}
			}
		}
	}

	if !found {
		return nil, ErrNoSharedConfig
	}

	profiles := make([]string, 0, len(seen))
	for name := range seen {
		profiles = append(profiles, name)
	}
	sort.Strings(profiles)
	return profiles, nil
}

func profileName(section string, isConfig bool) (string, bool) {
	if section == ini.DefaultSection {
		return "", false
	}
	if !isConfig || section == DefaultProfile {
		return section, true
	}
	if name, ok := strings.CutPrefix(section, "profile "); ok {
		name = strings.TrimSpace(name)
		return name, name != ""
	}
	return "", false
}
