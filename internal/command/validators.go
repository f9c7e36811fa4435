// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/tfctl/envreport/internal/aws"
	"github.com/tfctl/envreport/internal/util"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// S3URIValidator accepts "" or s3://bucket[/key].
func S3URIValidator(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, _, err := aws.ParseS3URI(s, DefaultOutput); err != nil {
		return err
	}
	return nil
}

// DirValidator accepts "" or an existing directory.
func DirValidator(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := util.ParseWorkDir(s); err != nil {
		return fmt.Errorf("not a directory: %s", s)
	}
	return nil
}

// NonEmptyValidator rejects an empty string.
func NonEmptyValidator(value any) error {
	if s, _ := value.(string); s == "" {
		return fmt.Errorf("must not be empty")
	}
	return nil
}
