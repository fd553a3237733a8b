// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package artifact

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/aeondiff/aeondiff/internal/aws"
)

// putS3 uploads artifact bytes to an s3://bucket/key destination using the
// ambient AWS credential chain.
func putS3(ctx context.Context, uri string, data []byte) error {
	bucket, key, ok := ParseS3URI(uri)
	if !ok || key == "" {
		return fmt.Errorf("invalid s3 artifact URI: %s", uri)
	}

	cfg, err := aws.LoadConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := aws.NewS3(cfg)
	_, err = client.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket:      awsv2.String(bucket),
		Key:         awsv2.String(key),
		Body:        bytes.NewReader(data),
		ContentType: awsv2.String(contentType(key)),
	})
	if err != nil {
		return fmt.Errorf("failed to upload artifact to %s: %w", uri, err)
	}

	return nil
}

// contentType picks a MIME type from the artifact extension.
func contentType(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".json":
		return "application/json"
	case ".csv":
		return "text/csv"
	case ".md":
		return "text/markdown"
	default:
		return "application/octet-stream"
	}
}
