// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aggregate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"

	"github.com/aeondiff/aeondiff/internal/artifact"
	"github.com/aeondiff/aeondiff/internal/differ"
	"github.com/aeondiff/aeondiff/internal/log"
)

// LoadDirDiff reads and validates a structural-diff artifact. Validation is
// fail-fast: a missing key or a wrong shape aborts before any pair is
// processed, since partially processing a malformed contract risks silently
// wrong results.
func LoadDirDiff(path string) (artifact.DirDiff, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return artifact.DirDiff{}, fmt.Errorf("failed to read directory diff: %w", err)
	}

	if !gjson.ValidBytes(data) {
		return artifact.DirDiff{}, fmt.Errorf("invalid directory diff JSON: %s", path)
	}

	doc := gjson.ParseBytes(data)

	dirs := doc.Get("comparison_directories")
	if !dirs.Exists() || !doc.Get("results").Exists() {
		return artifact.DirDiff{}, fmt.Errorf("invalid directory diff JSON: missing required keys")
	}

	oldDir := dirs.Get("old_dir")
	newDir := dirs.Get("new_dir")
	if !oldDir.Exists() || !newDir.Exists() {
		return artifact.DirDiff{}, fmt.Errorf("invalid directory diff JSON: missing old_dir/new_dir in comparison_directories")
	}

	different := doc.Get("results.different")
	if !different.IsArray() {
		return artifact.DirDiff{}, fmt.Errorf("invalid directory diff JSON: 'results.different' must be a list")
	}

	dd := artifact.DirDiff{
		ComparisonDirs: artifact.ComparisonDirs{
			OldDir: oldDir.String(),
			NewDir: newDir.String(),
		},
	}
	for _, rel := range different.Array() {
		dd.Results.Different = append(dd.Results.Different, rel.String())
	}
	for _, rel := range doc.Get("results.old_only").Array() {
		dd.Results.OldOnly = append(dd.Results.OldOnly, rel.String())
	}
	for _, rel := range doc.Get("results.new_only").Array() {
		dd.Results.NewOnly = append(dd.Results.NewOnly, rel.String())
	}
	for _, rel := range doc.Get("results.same").Array() {
		dd.Results.Same = append(dd.Results.Same, rel.String())
	}

	return dd, nil
}

// LoadCombined reads and validates a combined per-file diff artifact, the
// input to the assessment stage.
func LoadCombined(path string) (artifact.CombinedDiff, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return artifact.CombinedDiff{}, fmt.Errorf("failed to read combined diff: %w", err)
	}

	if !gjson.ValidBytes(data) {
		return artifact.CombinedDiff{}, fmt.Errorf("invalid combined diff JSON: %s", path)
	}

	if !gjson.GetBytes(data, "files").IsArray() {
		return artifact.CombinedDiff{}, fmt.Errorf("invalid combined diff JSON: 'files' must be a list")
	}

	var cd artifact.CombinedDiff
	if err := json.Unmarshal(data, &cd); err != nil {
		return artifact.CombinedDiff{}, fmt.Errorf("failed to decode combined diff: %w", err)
	}

	return cd, nil
}

// Run re-runs the file comparator over every path in the structural diff's
// different list, in input order. A missing pair or a comparator failure is
// counted as a skip and the batch continues; one bad pair never aborts the
// rest.
func Run(dd artifact.DirDiff) artifact.CombinedDiff {
	combined := artifact.CombinedDiff{
		ComparisonDirs: dd.ComparisonDirs,
		Files:          []artifact.FileEntry{},
	}

	combined.Summary.Requested = len(dd.Results.Different)

	for _, rel := range dd.Results.Different {
		oldFile := filepath.Join(dd.ComparisonDirs.OldDir, filepath.FromSlash(rel))
		newFile := filepath.Join(dd.ComparisonDirs.NewDir, filepath.FromSlash(rel))

		if !isFile(oldFile) || !isFile(newFile) {
			log.Warnf("skipping missing pair: old=%s new=%s", oldFile, newFile)
			combined.Summary.Skipped++
			continue
		}

		result, err := comparePair(oldFile, newFile)
		if err != nil {
			log.Errorf("error diffing pair: old=%s new=%s err=%v", oldFile, newFile, err)
			combined.Summary.Skipped++
			continue
		}

		combined.Files = append(combined.Files, artifact.FileEntry{
			RelativePath: rel,
			ComparisonFiles: artifact.ComparisonFiles{
				OldFile: oldFile,
				NewFile: newFile,
			},
			Results: result,
		})
		combined.Summary.Processed++
	}

	return combined
}

// comparePair isolates one comparison so an unexpected panic in the diff
// path skips the pair instead of killing the batch.
func comparePair(oldFile, newFile string) (result differ.FileResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("comparison panic: %v", r)
		}
	}()
	return differ.CompareFiles(oldFile, newFile), nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
