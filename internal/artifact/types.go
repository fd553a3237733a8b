// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package artifact

import (
	"github.com/aeondiff/aeondiff/internal/differ"
)

// ComparisonDirs names the two roots a structural diff was computed from.
type ComparisonDirs struct {
	OldDir string `json:"old_dir" yaml:"old_dir"`
	NewDir string `json:"new_dir" yaml:"new_dir"`
}

// ComparisonFiles names the two files a per-file diff was computed from.
type ComparisonFiles struct {
	OldFile string `json:"old_file" yaml:"old_file"`
	NewFile string `json:"new_file" yaml:"new_file"`
}

// DirDiff is the structural-diff artifact written by dd and consumed by ad.
type DirDiff struct {
	ComparisonDirs ComparisonDirs   `json:"comparison_directories" yaml:"comparison_directories"`
	Results        differ.DirResult `json:"results" yaml:"results"`
}

// FileDiff is the per-file diff artifact written by fd.
type FileDiff struct {
	ComparisonFiles ComparisonFiles   `json:"comparison_files" yaml:"comparison_files"`
	Results         differ.FileResult `json:"results" yaml:"results"`
}

// Summary counts the outcome of an aggregation batch. Processed plus Skipped
// always equals Requested.
type Summary struct {
	Requested int `json:"requested" yaml:"requested"`
	Processed int `json:"processed" yaml:"processed"`
	Skipped   int `json:"skipped" yaml:"skipped"`
}

// FileEntry is one per-file result inside a combined diff.
type FileEntry struct {
	RelativePath    string            `json:"relative_path" yaml:"relative_path"`
	ComparisonFiles ComparisonFiles   `json:"comparison_files" yaml:"comparison_files"`
	Results         differ.FileResult `json:"results" yaml:"results"`
}

// CombinedDiff is the combined-diff artifact written by ad and consumed by ca.
type CombinedDiff struct {
	ComparisonDirs ComparisonDirs `json:"comparison_directories" yaml:"comparison_directories"`
	Summary        Summary        `json:"summary" yaml:"summary"`
	Files          []FileEntry    `json:"files" yaml:"files"`
}

// Assessment is one row of the customization-likelihood table. Probability is
// a percentage in [0,100] rounded to one decimal place.
type Assessment struct {
	FilePath    string  `json:"file_path" yaml:"file_path"`
	Probability float64 `json:"probability_of_customization" yaml:"probability_of_customization"`
	Notes       string  `json:"notes" yaml:"notes"`
}
