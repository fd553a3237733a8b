// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package artifact

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/aeondiff/aeondiff/internal/log"
)

const timestampFormat = "20060102-150405"

// Clock supplies timestamps for artifact names. Overridable in tests.
var Clock = time.Now

// WriteDirDiff writes a structural-diff artifact under OUT/diff/ with a
// timestamped name and returns the written path.
func WriteDirDiff(ctx context.Context, outDir string, dd DirDiff) (string, error) {
	name := fmt.Sprintf("diff_%s.json", Clock().Format(timestampFormat))
	return writeJSON(ctx, Join(outDir, "diff", name), dd)
}

// WriteFileDiff writes a per-file diff artifact under OUT/diffed_files/.
// The name carries microseconds so rapid successive single-file runs never
// collide.
func WriteFileDiff(ctx context.Context, outDir string, fd FileDiff) (string, error) {
	now := Clock()
	name := fmt.Sprintf("diff_%s-%06d.json", now.Format(timestampFormat), now.Nanosecond()/1000)
	return writeJSON(ctx, Join(outDir, "diffed_files", name), fd)
}

// WriteCombined writes a combined-diff artifact. outPath may be a .json file
// path, or a directory under which a timestamped name is synthesized.
func WriteCombined(ctx context.Context, outPath string, cd CombinedDiff) (string, error) {
	if !strings.EqualFold(path.Ext(outPath), ".json") {
		name := fmt.Sprintf("diff_all_%s.json", Clock().Format(timestampFormat))
		outPath = Join(outPath, name)
	}
	return writeJSON(ctx, outPath, cd)
}

// Join joins artifact path elements, preserving an s3:// scheme prefix when
// present.
func Join(base string, elems ...string) string {
	if bucket, key, ok := ParseS3URI(base); ok {
		return "s3://" + path.Join(append([]string{bucket, key}, elems...)...)
	}
	return filepath.Join(append([]string{base}, elems...)...)
}

// ParseS3URI splits an s3://bucket/prefix URI into bucket and key parts.
func ParseS3URI(uri string) (bucket, key string, ok bool) {
	rest, found := strings.CutPrefix(uri, "s3://")
	if !found {
		return "", "", false
	}
	bucket, key, _ = strings.Cut(rest, "/")
	return bucket, key, bucket != ""
}

// writeJSON marshals the payload with indentation and hands it to the sink.
func writeJSON(ctx context.Context, outPath string, payload any) (string, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal artifact: %w", err)
	}
	data = append(data, '\n')

	if err := write(ctx, outPath, data); err != nil {
		return "", err
	}
	return outPath, nil
}

// write stores the artifact bytes at the destination, dispatching between
// the local filesystem and the s3:// sink.
func write(ctx context.Context, outPath string, data []byte) error {
	if _, _, ok := ParseS3URI(outPath); ok {
		if err := putS3(ctx, outPath, data); err != nil {
			return err
		}
	} else {
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write artifact: %w", err)
		}
	}

	log.Infof("wrote artifact: path=%s size=%s", outPath, humanize.Bytes(uint64(len(data))))
	return nil
}
