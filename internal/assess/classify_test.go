// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package assess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeondiff/aeondiff/internal/artifact"
	"github.com/aeondiff/aeondiff/internal/differ"
)

// report wraps hunk sets into a CombinedDiff with one entry per path.
func report(entries map[string][][]string) artifact.CombinedDiff {
	var files []artifact.FileEntry
	for path, hunks := range entries {
		files = append(files, artifact.FileEntry{
			RelativePath: path,
			Results:      differ.FileResult{Same: false, Hunks: hunks},
		})
	}
	return artifact.CombinedDiff{Files: files}
}

func TestRun_NoSignals(t *testing.T) {
	r := report(map[string][][]string{
		"plain.html": {
			{"@@ -1,2 +1,2 @@", "-an old line", "+a new line", " context"},
		},
	})

	got := Run(DefaultConfig(), r)
	require.Len(t, got, 1)
	assert.Equal(t, 50.0, got[0].Probability)
	assert.Empty(t, got[0].Notes)
}

func TestRun_ZeroHunksIsNeutral(t *testing.T) {
	r := report(map[string][][]string{"crlf-only.html": {}})

	got := Run(DefaultConfig(), r)
	require.Len(t, got, 1)
	assert.Equal(t, 50.0, got[0].Probability)
	assert.Empty(t, got[0].Notes)
}

func TestRun_LocalRemovalOnly(t *testing.T) {
	r := report(map[string][][]string{
		"header.html": {
			{"@@ -1,1 +1,1 @@", "-Visit BruKnow for holdings", "+Visit the catalog for holdings"},
		},
	})

	got := Run(DefaultConfig(), r)
	require.Len(t, got, 1)
	assert.Equal(t, 100.0, got[0].Probability)
	assert.Contains(t, got[0].Notes, "removed local terms: BruKnow")
}

func TestRun_VendorAdditionOnly(t *testing.T) {
	r := report(map[string][][]string{
		"request.html": {
			{"@@ -4,2 +4,3 @@", " context", `+<script src="js/EADRequest.min.js"></script>`},
		},
	})

	got := Run(DefaultConfig(), r)
	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0].Probability)
	assert.Contains(t, got[0].Notes, "vendor features in new version: EADRequest.min.js")
}

func TestRun_TieResolvesToFifty(t *testing.T) {
	r := report(map[string][][]string{
		"mixed.html": {
			{"@@ -1,1 +1,1 @@", "-BruKnow search box", "+transaction-label block"},
		},
	})

	got := Run(DefaultConfig(), r)
	require.Len(t, got, 1)
	assert.Equal(t, 50.0, got[0].Probability)
}

func TestRun_Ordering(t *testing.T) {
	r := artifact.CombinedDiff{Files: []artifact.FileEntry{
		{RelativePath: "b-neutral.html", Results: differ.FileResult{Hunks: [][]string{
			{"@@ -1 +1 @@", "-x", "+y"},
		}}},
		{RelativePath: "a-neutral.html", Results: differ.FileResult{Hunks: [][]string{
			{"@@ -1 +1 @@", "-p", "+q"},
		}}},
		{RelativePath: "vendor.html", Results: differ.FileResult{Hunks: [][]string{
			{"@@ -1 +1 @@", "+custom-select widget"},
		}}},
		{RelativePath: "local.html", Results: differ.FileResult{Hunks: [][]string{
			{"@@ -1 +1 @@", "-Brown Digital Repository link"},
		}}},
	}}

	got := Run(DefaultConfig(), r)
	require.Len(t, got, 4)

	// Descending probability, ascending path on ties.
	assert.Equal(t, "local.html", got[0].FilePath)
	assert.Equal(t, "a-neutral.html", got[1].FilePath)
	assert.Equal(t, "b-neutral.html", got[2].FilePath)
	assert.Equal(t, "vendor.html", got[3].FilePath)
}

func TestProbability(t *testing.T) {
	tests := []struct {
		name    string
		local   int
		vendor  int
		upgrade int
		want    float64
	}{
		{name: "no evidence", local: 0, vendor: 0, upgrade: 0, want: 50.0},
		{name: "local only", local: 2, vendor: 0, upgrade: 0, want: 100.0},
		{name: "vendor only", local: 0, vendor: 3, upgrade: 0, want: 0.0},
		{name: "upgrade only", local: 0, vendor: 0, upgrade: 1, want: 0.0},
		{name: "one against three", local: 1, vendor: 3, upgrade: 0, want: 25.0},
		{name: "two against one", local: 2, vendor: 1, upgrade: 0, want: 66.7},
		{name: "one against one upgrade", local: 1, vendor: 0, upgrade: 1, want: 50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, probability(tt.local, tt.vendor, tt.upgrade))
		})
	}
}

func TestChangedLines(t *testing.T) {
	hunks := [][]string{
		{
			"--- a/file",
			"+++ b/file",
			"@@ -1,2 +1,2 @@",
			"-old line",
			"+new line",
			" context",
			"",
			"+another",
			"+",
			"-",
		},
	}

	added, removed := changedLines(hunks)
	assert.Equal(t, []string{"new line", "another"}, added)
	assert.Equal(t, []string{"old line"}, removed)
}

func TestSignalMatches(t *testing.T) {
	cfg := DefaultConfig()

	var hay Signal
	for _, s := range cfg.Local {
		if s.ID == "hay" {
			hay = s
		}
	}
	require.NotNil(t, hay.Pattern)

	assert.True(t, hay.Matches("the Hay reading room"))
	assert.True(t, hay.Matches("HAY hours"), "matching is case-insensitive")
	assert.False(t, hay.Matches("10 Hay Street, Providence"))
	// One excluded occurrence does not mask a later qualifying one.
	assert.True(t, hay.Matches("Hay Street entrance to the Hay"))
	assert.False(t, hay.Matches("hayloft"), "word boundary is honored")
}

func TestFindMatches_CountsPerLinePerSignal(t *testing.T) {
	cfg := DefaultConfig()

	lines := []string{
		"Brown and BruKnow on one line",
		"Brown again",
		"nothing here",
	}

	hits := findMatches(lines, cfg.Local)
	// Line 1 hits Brown and BruKnow, line 2 hits Brown again.
	require.Len(t, hits, 3)
	assert.Equal(t, "Brown", hits[0].Label)
	assert.Equal(t, "BruKnow", hits[1].Label)
	assert.Equal(t, "Brown", hits[2].Label)
}
