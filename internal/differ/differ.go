// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"bytes"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/aeondiff/aeondiff/internal/log"
	"github.com/aeondiff/aeondiff/internal/walker"
)

// FileResult is the outcome of comparing two files. When Same is true, Hunks
// is always empty. When Same is false, Hunks holds the unified diff split
// into hunks; an empty Hunks with Same=false means the files differ at the
// byte level but not at the line level (e.g. CRLF vs LF only).
type FileResult struct {
	Same  bool       `json:"same" yaml:"same"`
	Hunks [][]string `json:"unified_diff_hunks" yaml:"unified_diff_hunks"`
}

// DirResult partitions every relative path present in either tree into
// exactly one of four sorted lists.
type DirResult struct {
	OldOnly   []string `json:"old_only" yaml:"old_only"`
	NewOnly   []string `json:"new_only" yaml:"new_only"`
	Different []string `json:"different" yaml:"different"`
	Same      []string `json:"same" yaml:"same"`
}

// CompareFiles compares two files and returns a sameness flag plus unified
// diff hunks. It never returns an error: an unreadable file is treated as
// unequal for the byte check and as empty for the line diff.
func CompareFiles(oldFile, newFile string) FileResult {
	if bytesEqual(oldFile, newFile) {
		// Identical content. Skip the text-diff path entirely so binary
		// files never get decoded.
		return FileResult{Same: true, Hunks: [][]string{}}
	}

	oldLines := readLines(oldFile)
	newLines := readLines(newFile)

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        terminated(oldLines),
		B:        terminated(newLines),
		FromFile: oldFile,
		ToFile:   newFile,
		Context:  3,
	})
	if err != nil {
		log.Warnf("unified diff failed: old=%s new=%s err=%v", oldFile, newFile, err)
		return FileResult{Same: false, Hunks: [][]string{}}
	}

	return FileResult{Same: false, Hunks: SplitHunks(stripFileHeader(diff))}
}

// stripFileHeader drops the leading ---/+++ label lines from unified diff
// output. The compared file paths are exposed separately in every artifact,
// so the labels would only produce a degenerate headers-only hunk. Only lines
// before the first hunk marker are considered, so removal lines that happen
// to start with "--- " are untouched.
func stripFileHeader(diff string) string {
	var kept []string
	inHeader := true
	for _, line := range splitDiffLines(diff) {
		if strings.HasPrefix(line, "@@ ") {
			inHeader = false
		}
		if inHeader && (strings.HasPrefix(line, "--- ") || strings.HasPrefix(line, "+++ ")) {
			continue
		}
		kept = append(kept, line)
	}
	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, "\n") + "\n"
}

// SplitHunks splits raw unified diff text into hunks at every "@@ " marker
// line. Diff output preceding the first marker (the ---/+++ file header
// lines) forms an implicit leading hunk.
func SplitHunks(diff string) [][]string {
	hunks := [][]string{}
	var current []string

	for _, line := range splitDiffLines(diff) {
		if strings.HasPrefix(line, "@@ ") {
			if current != nil {
				hunks = append(hunks, current)
			}
			current = []string{line}
			continue
		}
		if current != nil {
			current = append(current, line)
		} else {
			current = []string{line}
		}
	}
	if current != nil {
		hunks = append(hunks, current)
	}

	return hunks
}

// CompareDirs walks both roots and partitions every relative path into
// old-only, new-only, different or same. The four lists are sorted
// ascending, so output is deterministic regardless of walk order. A read
// failure while comparing a common path classifies it as different.
func CompareDirs(oldRoot, newRoot string) (DirResult, error) {
	oldIndex, err := walker.Collect(oldRoot)
	if err != nil {
		return DirResult{}, err
	}
	newIndex, err := walker.Collect(newRoot)
	if err != nil {
		return DirResult{}, err
	}

	return CompareIndexes(oldIndex, newIndex), nil
}

// CompareIndexes partitions two walker indexes. Split out from CompareDirs
// so tests can drive it with synthetic indexes.
func CompareIndexes(oldIndex, newIndex map[string]string) DirResult {
	result := DirResult{
		OldOnly:   []string{},
		NewOnly:   []string{},
		Different: []string{},
		Same:      []string{},
	}

	for rel := range oldIndex {
		if _, ok := newIndex[rel]; !ok {
			result.OldOnly = append(result.OldOnly, rel)
		}
	}
	for rel := range newIndex {
		if _, ok := oldIndex[rel]; !ok {
			result.NewOnly = append(result.NewOnly, rel)
		}
	}

	for rel, oldPath := range oldIndex {
		newPath, ok := newIndex[rel]
		if !ok {
			continue
		}
		if bytesEqual(oldPath, newPath) {
			result.Same = append(result.Same, rel)
		} else {
			result.Different = append(result.Different, rel)
		}
	}

	sort.Strings(result.OldOnly)
	sort.Strings(result.NewOnly)
	sort.Strings(result.Different)
	sort.Strings(result.Same)

	return result
}

// bytesEqual reports whether two files have identical content. Any open or
// read failure makes the files unequal rather than surfacing an error.
func bytesEqual(oldFile, newFile string) bool {
	of, err := os.Open(oldFile)
	if err != nil {
		return false
	}
	defer of.Close()

	nf, err := os.Open(newFile)
	if err != nil {
		return false
	}
	defer nf.Close()

	const chunk = 64 * 1024
	oldBuf := make([]byte, chunk)
	newBuf := make([]byte, chunk)

	for {
		on, oerr := io.ReadFull(of, oldBuf)
		nn, nerr := io.ReadFull(nf, newBuf)

		if on != nn || !bytes.Equal(oldBuf[:on], newBuf[:nn]) {
			return false
		}

		oldDone := oerr == io.EOF || oerr == io.ErrUnexpectedEOF
		newDone := nerr == io.EOF || nerr == io.ErrUnexpectedEOF
		if oldDone && newDone {
			return true
		}
		if oerr != nil || nerr != nil {
			// One side ended or errored while the other didn't.
			return false
		}
	}
}

// readLines reads a file as text, replacing invalid UTF-8 and stripping
// trailing line terminators from each line. An unreadable file yields an
// empty line slice.
func readLines(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Debugf("treating unreadable file as empty: path=%s err=%v", path, err)
		return []string{}
	}

	text := strings.ToValidUTF8(string(data), "�")
	if text == "" {
		return []string{}
	}

	raw := strings.Split(text, "\n")
	// A trailing newline produces one empty trailing element; drop it so the
	// line count matches the file's actual lines.
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = strings.TrimRight(line, "\r\n")
	}
	return lines
}

// terminated re-appends a newline to each line for the diff engine, which
// expects terminator-carrying input.
func terminated(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line + "\n"
	}
	return out
}

// splitDiffLines breaks diff engine output into terminator-free lines.
func splitDiffLines(diff string) []string {
	if diff == "" {
		return nil
	}
	lines := strings.Split(diff, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\n")
	}
	return lines
}
