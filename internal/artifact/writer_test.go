// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package artifact

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/aeondiff/aeondiff/internal/differ"
)

var ctx = context.Background()

// freezeClock pins the artifact clock for deterministic names.
func freezeClock(t *testing.T) time.Time {
	t.Helper()
	frozen := time.Date(2025, 8, 27, 21, 44, 10, 123456000, time.UTC)
	Clock = func() time.Time { return frozen }
	t.Cleanup(func() { Clock = time.Now })
	return frozen
}

func TestWriteDirDiff(t *testing.T) {
	freezeClock(t)
	out := t.TempDir()

	dd := DirDiff{
		ComparisonDirs: ComparisonDirs{OldDir: "/old", NewDir: "/new"},
		Results: differ.DirResult{
			OldOnly:   []string{"gone.html"},
			NewOnly:   []string{},
			Different: []string{"a.html"},
			Same:      []string{"b.css"},
		},
	}

	path, err := WriteDirDiff(ctx, out, dd)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "diff", "diff_20250827-214410.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	doc := gjson.ParseBytes(data)
	assert.Equal(t, "/old", doc.Get("comparison_directories.old_dir").String())
	assert.Equal(t, "/new", doc.Get("comparison_directories.new_dir").String())
	assert.Equal(t, "a.html", doc.Get("results.different.0").String())
	assert.True(t, doc.Get("results.new_only").IsArray())
}

func TestWriteFileDiff(t *testing.T) {
	freezeClock(t)
	out := t.TempDir()

	fd := FileDiff{
		ComparisonFiles: ComparisonFiles{OldFile: "/old/a", NewFile: "/new/a"},
		Results: differ.FileResult{
			Same:  false,
			Hunks: [][]string{{"@@ -1 +1 @@", "-x", "+y"}},
		},
	}

	path, err := WriteFileDiff(ctx, out, fd)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "diffed_files", "diff_20250827-214410-123456.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	doc := gjson.ParseBytes(data)
	assert.False(t, doc.Get("results.same").Bool())
	assert.Equal(t, "@@ -1 +1 @@", doc.Get("results.unified_diff_hunks.0.0").String())
}

func TestWriteCombined(t *testing.T) {
	freezeClock(t)
	out := t.TempDir()

	cd := CombinedDiff{
		ComparisonDirs: ComparisonDirs{OldDir: "/old", NewDir: "/new"},
		Summary:        Summary{Requested: 1, Processed: 1},
		Files: []FileEntry{{
			RelativePath:    "a.html",
			ComparisonFiles: ComparisonFiles{OldFile: "/old/a.html", NewFile: "/new/a.html"},
			Results:         differ.FileResult{Hunks: [][]string{{"@@ -1 +1 @@", "-x", "+y"}}},
		}},
	}

	t.Run("explicit json path", func(t *testing.T) {
		path, err := WriteCombined(ctx, filepath.Join(out, "combined.json"), cd)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(out, "combined.json"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		doc := gjson.ParseBytes(data)
		assert.Equal(t, int64(1), doc.Get("summary.requested").Int())
		assert.Equal(t, "a.html", doc.Get("files.0.relative_path").String())
	})

	t.Run("directory synthesizes timestamped name", func(t *testing.T) {
		path, err := WriteCombined(ctx, out, cd)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(out, "diff_all_20250827-214410.json"), path)
	})
}

func TestJoin(t *testing.T) {
	assert.Equal(t, filepath.Join("/out", "diff", "x.json"), Join("/out", "diff", "x.json"))
	assert.Equal(t, "s3://bucket/prefix/diff/x.json", Join("s3://bucket/prefix", "diff", "x.json"))
	assert.Equal(t, "s3://bucket/diff/x.json", Join("s3://bucket", "diff", "x.json"))
}

func TestParseS3URI(t *testing.T) {
	bucket, key, ok := ParseS3URI("s3://my-bucket/some/prefix")
	assert.True(t, ok)
	assert.Equal(t, "my-bucket", bucket)
	assert.Equal(t, "some/prefix", key)

	_, _, ok = ParseS3URI("/local/path")
	assert.False(t, ok)

	_, _, ok = ParseS3URI("s3://")
	assert.False(t, ok)
}

func TestWriteAssessments(t *testing.T) {
	freezeClock(t)
	out := t.TempDir()

	rows := []Assessment{
		{FilePath: "logon.html", Probability: 87.5, Notes: "removed local terms: Brown"},
		{FilePath: "default.css", Probability: 50.0, Notes: ""},
	}

	csvPath, mdPath, err := WriteAssessments(ctx, out, rows)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "aeon_diff_customization_assessment_20250827-214410.csv"), csvPath)
	assert.Equal(t, filepath.Join(out, "aeon_diff_customization_assessment_20250827-214410.md"), mdPath)

	csvData, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(csvData), "file_path,probability_of_customization,notes")
	assert.Contains(t, string(csvData), "logon.html,87.5,removed local terms: Brown")

	mdData, err := os.ReadFile(mdPath)
	require.NoError(t, err)
	md := string(mdData)
	assert.Contains(t, md, "# Aeon diff: customization likelihood report")
	assert.Contains(t, md, "## logon.html")
	assert.Contains(t, md, "- **probability_of_customization**: 87.5%")
	assert.Contains(t, md, "- **notes**: (no notable signals detected)")
}
