// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aggregate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeondiff/aeondiff/internal/artifact"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDirDiff(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		json    string
		wantErr string
	}{
		{
			name: "valid",
			json: `{
				"comparison_directories": {"old_dir": "/old", "new_dir": "/new"},
				"results": {"old_only": ["gone.html"], "new_only": [], "different": ["a.html", "b.html"], "same": ["c.css"]}
			}`,
		},
		{
			name:    "not json",
			json:    "not json at all",
			wantErr: "invalid directory diff JSON",
		},
		{
			name:    "missing comparison_directories",
			json:    `{"results": {"different": []}}`,
			wantErr: "missing required keys",
		},
		{
			name:    "missing new_dir",
			json:    `{"comparison_directories": {"old_dir": "/old"}, "results": {"different": []}}`,
			wantErr: "missing old_dir/new_dir",
		},
		{
			name:    "different is not a list",
			json:    `{"comparison_directories": {"old_dir": "/old", "new_dir": "/new"}, "results": {"different": "oops"}}`,
			wantErr: "'results.different' must be a list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.name+".json", tt.json)

			dd, err := LoadDirDiff(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "/old", dd.ComparisonDirs.OldDir)
			assert.Equal(t, "/new", dd.ComparisonDirs.NewDir)
			assert.Equal(t, []string{"a.html", "b.html"}, dd.Results.Different)
			assert.Equal(t, []string{"gone.html"}, dd.Results.OldOnly)
			assert.Equal(t, []string{"c.css"}, dd.Results.Same)
		})
	}
}

func TestLoadDirDiff_MissingFile(t *testing.T) {
	_, err := LoadDirDiff(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadCombined(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		path := writeFile(t, dir, "combined.json", `{
			"comparison_directories": {"old_dir": "/old", "new_dir": "/new"},
			"summary": {"requested": 1, "processed": 1, "skipped": 0},
			"files": [{
				"relative_path": "a.html",
				"comparison_files": {"old_file": "/old/a.html", "new_file": "/new/a.html"},
				"results": {"same": false, "unified_diff_hunks": [["@@ -1 +1 @@", "-x", "+y"]]}
			}]
		}`)

		cd, err := LoadCombined(path)
		require.NoError(t, err)
		assert.Equal(t, "/old", cd.ComparisonDirs.OldDir)
		assert.Equal(t, 1, cd.Summary.Processed)
		require.Len(t, cd.Files, 1)
		assert.Equal(t, "a.html", cd.Files[0].RelativePath)
		assert.Equal(t, [][]string{{"@@ -1 +1 @@", "-x", "+y"}}, cd.Files[0].Results.Hunks)
	})

	t.Run("not json", func(t *testing.T) {
		path := writeFile(t, dir, "bad.json", "not json")
		_, err := LoadCombined(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid combined diff JSON")
	})

	t.Run("files not a list", func(t *testing.T) {
		path := writeFile(t, dir, "nolist.json", `{"files": "oops"}`)
		_, err := LoadCombined(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'files' must be a list")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCombined(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	oldRoot := t.TempDir()
	newRoot := t.TempDir()

	writeFile(t, oldRoot, "a.html", "old a\n")
	writeFile(t, newRoot, "a.html", "new a\n")
	writeFile(t, oldRoot, "sub/b.html", "old b\n")
	writeFile(t, newRoot, "sub/b.html", "new b\n")
	// c.html exists only in the old tree, so the pair is incomplete.
	writeFile(t, oldRoot, "c.html", "orphan\n")

	dd := artifact.DirDiff{
		ComparisonDirs: artifact.ComparisonDirs{OldDir: oldRoot, NewDir: newRoot},
	}
	dd.Results.Different = []string{"a.html", "sub/b.html", "c.html"}

	combined := Run(dd)

	assert.Equal(t, 3, combined.Summary.Requested)
	assert.Equal(t, 2, combined.Summary.Processed)
	assert.Equal(t, 1, combined.Summary.Skipped)
	assert.Equal(t, combined.Summary.Requested, combined.Summary.Processed+combined.Summary.Skipped)

	// Input ordering preserved; skipped pair absent.
	require.Len(t, combined.Files, 2)
	assert.Equal(t, "a.html", combined.Files[0].RelativePath)
	assert.Equal(t, "sub/b.html", combined.Files[1].RelativePath)

	for _, entry := range combined.Files {
		assert.False(t, entry.Results.Same)
		assert.NotEmpty(t, entry.Results.Hunks)
		assert.NotEmpty(t, entry.ComparisonFiles.OldFile)
		assert.NotEmpty(t, entry.ComparisonFiles.NewFile)
	}
}

func TestRun_EmptyDifferentList(t *testing.T) {
	dd := artifact.DirDiff{
		ComparisonDirs: artifact.ComparisonDirs{OldDir: t.TempDir(), NewDir: t.TempDir()},
	}

	combined := Run(dd)
	assert.Equal(t, 0, combined.Summary.Requested)
	assert.Empty(t, combined.Files)
}
