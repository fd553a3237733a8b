// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package assess

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	titleOpenRe  = regexp.MustCompile(`(?i).*<title[^>]*>`)
	titleCloseRe = regexp.MustCompile(`(?i)</title>.*`)
)

// maxNoteTerms caps how many distinct labels a single note lists before an
// ellipsis.
const maxNoteTerms = 6

// buildNotes synthesizes the human-readable notes string for one file. Note
// fragments are produced in a fixed order and joined with "; "; an empty
// string means no signal fired at all.
func buildNotes(removed, added []string, localRemoved, vendorAdded, upgradeRemoved, upgradeAdded []Signal) string {
	var notes []string

	if note, ok := titleChangeNote(removed, added); ok {
		notes = append(notes, note)
	}

	if len(localRemoved) > 0 {
		notes = append(notes, "removed local terms: "+termList(labels(localRemoved)))
	}

	if len(vendorAdded) > 0 {
		notes = append(notes, "vendor features in new version: "+termList(labels(vendorAdded)))
	}

	if len(upgradeRemoved)+len(upgradeAdded) > 0 {
		all := append(labels(upgradeRemoved), labels(upgradeAdded)...)
		notes = append(notes, "structural changes: "+termList(all))
	}

	if minificationSwitch(removed) {
		notes = append(notes, "switch to minified EADRequest.min.js")
	}

	if anyContains(added, "include_scheduled_date") {
		notes = append(notes, "adds include_scheduled_date partial (appointment date handling)")
	}

	return strings.Join(notes, "; ")
}

// titleChangeNote reports the first <title> text seen on each side when
// either side has one.
func titleChangeNote(removed, added []string) (string, bool) {
	oldTitle := firstTitle(removed)
	newTitle := firstTitle(added)
	if oldTitle == "" && newTitle == "" {
		return "", false
	}
	return fmt.Sprintf("title change: %q → %q", oldTitle, newTitle), true
}

// firstTitle extracts the inner text of the first line containing an HTML
// title element, truncated to 120 characters.
func firstTitle(lines []string) string {
	for _, line := range lines {
		if !strings.Contains(line, "<title>") && !strings.Contains(line, "<title ") {
			continue
		}
		text := titleOpenRe.ReplaceAllString(line, "")
		text = titleCloseRe.ReplaceAllString(text, "")
		text = strings.TrimSpace(text)
		if len(text) > 120 {
			text = text[:120]
		}
		return text
	}
	return ""
}

// termList deduplicates labels preserving first-seen order, lists up to
// maxNoteTerms, and appends an ellipsis if more were found.
func termList(terms []string) string {
	seen := make(map[string]bool)
	var out []string
	for _, term := range terms {
		if seen[term] {
			continue
		}
		seen[term] = true
		out = append(out, term)
	}

	suffix := ""
	if len(out) > maxNoteTerms {
		out = out[:maxNoteTerms]
		suffix = "…"
	}
	return strings.Join(out, ", ") + suffix
}

// minificationSwitch reports whether removed lines reference the unminified
// EADRequest.js while no removed line mentions the minified counterpart.
func minificationSwitch(removed []string) bool {
	return anyContains(removed, "EADRequest.js") && !anyContains(removed, "EADRequest.min.js")
}

func anyContains(lines []string, substr string) bool {
	for _, line := range lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func labels(signals []Signal) []string {
	out := make([]string, len(signals))
	for i, s := range signals {
		out[i] = s.Label
	}
	return out
}
