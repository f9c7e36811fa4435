// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tfctl/envreport/internal/log"
)

// ParseS3URI splits s3://bucket/key. When the key is empty or names a
// "directory" (trailing slash), defaultName is appended.
func ParseS3URI(uri, defaultName string) (bucket, key string, err error) {
	if !strings.HasPrefix(uri, "s3://") {
		return "", "", fmt.Errorf("S3 URI must start with s3://: %s", uri)
	}
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", fmt.Errorf("invalid S3 URI: %w", err)
	}
	if u.Host == "" {
		return "", "", fmt.Errorf("S3 URI has no bucket: %s", uri)
	}

	key = strings.TrimPrefix(u.Path, "/")
	if key == "" || strings.HasSuffix(key, "/") {
		key = path.Join(key, defaultName)
	}
	return u.Host, key, nil
}

// S3Sink buffers report bytes and stores them as one object on Flush.
type S3Sink struct {
	client S3PutAPI
	bucket string
	key    string
	buf    bytes.Buffer
}

// NewS3Sink validates uri and returns a sink writing to it.
func NewS3Sink(client S3PutAPI, uri, defaultName string) (*S3Sink, error) {
	bucket, key, err := ParseS3URI(uri, defaultName)
	if err != nil {
		return nil, err
	}
	return &S3Sink{client: client, bucket: bucket, key: key}, nil
}

// Write implements io.Writer.
func (s *S3Sink) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// URI returns the destination as s3://bucket/key.
func (s *S3Sink) URI() string {
	return "s3://" + s.bucket + "/" + s.key
}

// Flush uploads everything written so far.
func (s *S3Sink) Flush(ctx context.Context) error {
	_, err := s.client.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket:      awsv2.String(s.bucket),
		Key:         awsv2.String(s.key),
		Body:        bytes.NewReader(s.buf.Bytes()),
		ContentType: awsv2.String("text/plain; charset=utf-8"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload report to %s: %w", s.URI(), err)
	}
	log.Infof("report uploaded: uri=%s bytes=%d", s.URI(), s.buf.Len())
	return nil
}
