// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/dustin/go-humanize"
	"golang.org/x/crypto/ssh"

	"github.com/tfctl/envreport/internal/output"
	"github.com/tfctl/envreport/internal/report"
)

// NoPemFiles is shown when ~/.ssh holds no .pem files.
const NoPemFiles = "No .pem files found in ~/.ssh"

// KeyPairs lists the EC2 key pairs in the session region.
func (e *Env) KeyPairs(ctx context.Context) report.Result {
	if err := e.cloud(); err != nil {
		return cloudFailed(err)
	}

	out, err := e.Clients.EC2.DescribeKeyPairs(ctx, &ec2.DescribeKeyPairsInput{})
	if err != nil {
		return cloudFailed(err)
	}

	headers := []string{"Name", "Type", "Created"}
	rows := make([][]string, 0, len(out.KeyPairs))
	for _, kp := range out.KeyPairs {
		rows = append(rows, []string{
			output.Cell(kp.KeyName, "-"),
			output.Cell(kp.KeyType, "-"),
			output.Cell(kp.CreateTime, "-"),
		})
	}
	output.SortRows(headers, rows, "name")

	return report.Text(output.Table(headers, rows))
}

// LocalKeys lists the .pem files in ~/.ssh with their size and SHA256
// fingerprint. A key that cannot be parsed shows why in place of the
// fingerprint. Without a known home directory there is nothing to list.
func (e *Env) LocalKeys(context.Context) report.Result {
	if e.Home == "" {
		return report.Text(NoPemFiles)
	}

	matches, err := filepath.Glob(filepath.Join(e.Home, ".ssh", "*.pem"))
	if err != nil || len(matches) == 0 {
		return report.Text(NoPemFiles)
	}
	sort.Strings(matches)

	headers := []string{"File", "Size", "Fingerprint"}
	rows := make([][]string, 0, len(matches))
	for _, path := range matches {
		size := "-"
		if fi, err := os.Stat(path); err == nil {
			size = humanize.Bytes(uint64(fi.Size()))
		}
		rows = append(rows, []string{filepath.Base(path), size, fingerprint(path)})
	}

	return report.Text(output.Table(headers, rows))
}

func fingerprint(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return "unreadable"
	}

	signer, err := ssh.ParsePrivateKey(data)
	if err != nil {
		var missing *ssh.PassphraseMissingError
		if errors.As(err, &missing) && missing.PublicKey != nil {
			return ssh.FingerprintSHA256(missing.PublicKey)
		}
		if errors.As(err, &missing) {
			return "encrypted"
		}
		return "not a private key"
	}
	return ssh.FingerprintSHA256(signer.PublicKey())
}
