// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package assess

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// sig builds a minimal literal-pattern signal for note tests.
func sig(label string) Signal {
	return Signal{
		ID:      strings.ToLower(label),
		Label:   label,
		Pattern: regexp.MustCompile(regexp.QuoteMeta(label)),
	}
}

func TestBuildNotes_Composition(t *testing.T) {
	removed := []string{"<title>Old Title</title>", "EADRequest.js"}
	added := []string{"<title>New Title</title>", "include_scheduled_date.html"}

	localRemoved := []Signal{sig("Brown")}
	vendorAdded := []Signal{sig("include_scheduled_date.html")}
	upgradeAdded := []Signal{sig("ISO8601")}

	notes := buildNotes(removed, added, localRemoved, vendorAdded, nil, upgradeAdded)

	assert.Contains(t, notes, `title change: "Old Title" → "New Title"`)
	assert.Contains(t, notes, "removed local terms: Brown")
	assert.Contains(t, notes, "vendor features in new version: include_scheduled_date.html")
	assert.Contains(t, notes, "structural changes: ISO8601")
	assert.Contains(t, notes, "switch to minified EADRequest.min.js")
	assert.Contains(t, notes, "adds include_scheduled_date partial")
}

func TestBuildNotes_Empty(t *testing.T) {
	notes := buildNotes([]string{"nothing"}, []string{"else"}, nil, nil, nil, nil)
	assert.Empty(t, notes)
}

func TestBuildNotes_NoMinificationNoteWhenMinAlreadyReferenced(t *testing.T) {
	removed := []string{"EADRequest.js", "EADRequest.min.js v2"}

	notes := buildNotes(removed, nil, nil, nil, nil, nil)
	assert.NotContains(t, notes, "switch to minified")
}

func TestFirstTitle(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "simple title",
			lines: []string{`<head><title>Aeon - Logon</title></head>`},
			want:  "Aeon - Logon",
		},
		{
			name:  "title with attributes",
			lines: []string{`<title class="x">Special Collections</title>`},
			want:  "Special Collections",
		},
		{
			name:  "first of several lines wins",
			lines: []string{"no title here", "<title>First</title>", "<title>Second</title>"},
			want:  "First",
		},
		{
			name:  "no title",
			lines: []string{"plain"},
			want:  "",
		},
		{
			name:  "long title truncated",
			lines: []string{"<title>" + strings.Repeat("x", 200) + "</title>"},
			want:  strings.Repeat("x", 120),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, firstTitle(tt.lines))
		})
	}
}

func TestTermList(t *testing.T) {
	tests := []struct {
		name  string
		terms []string
		want  string
	}{
		{
			name:  "dedupes preserving order",
			terms: []string{"Brown", "JHL", "Brown", "BruKnow", "JHL"},
			want:  "Brown, JHL, BruKnow",
		},
		{
			name:  "caps at six with ellipsis",
			terms: []string{"a", "b", "c", "d", "e", "f", "g"},
			want:  "a, b, c, d, e, f…",
		},
		{
			name:  "exactly six has no ellipsis",
			terms: []string{"a", "b", "c", "d", "e", "f"},
			want:  "a, b, c, d, e, f",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, termList(tt.terms))
		})
	}
}
