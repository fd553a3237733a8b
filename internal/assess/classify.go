// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package assess

import (
	"math"
	"sort"
	"strings"

	"github.com/aeondiff/aeondiff/internal/artifact"
	"github.com/aeondiff/aeondiff/internal/log"
)

// Run scores every file in the combined report and returns the assessments
// ordered by descending probability, then ascending file path. Files with no
// hunks degrade to the neutral 50.0 score with empty notes.
func Run(cfg Config, report artifact.CombinedDiff) []artifact.Assessment {
	assessments := make([]artifact.Assessment, 0, len(report.Files))

	for _, file := range report.Files {
		added, removed := changedLines(file.Results.Hunks)

		localRemoved := findMatches(removed, cfg.Local)
		vendorAdded := findMatches(added, cfg.Vendor)
		upgradeRemoved := findMatches(removed, cfg.Upgrade)
		upgradeAdded := findMatches(added, cfg.Upgrade)

		p := probability(len(localRemoved), len(vendorAdded), len(upgradeRemoved)+len(upgradeAdded))

		notes := buildNotes(removed, added, localRemoved, vendorAdded, upgradeRemoved, upgradeAdded)

		log.Debugf("assessed: path=%s local=%d vendor=%d upgrade=%d p=%.1f",
			file.RelativePath, len(localRemoved), len(vendorAdded),
			len(upgradeRemoved)+len(upgradeAdded), p)

		assessments = append(assessments, artifact.Assessment{
			FilePath:    file.RelativePath,
			Probability: p,
			Notes:       notes,
		})
	}

	sort.SliceStable(assessments, func(i, j int) bool {
		if assessments[i].Probability != assessments[j].Probability {
			return assessments[i].Probability > assessments[j].Probability
		}
		return assessments[i].FilePath < assessments[j].FilePath
	})

	return assessments
}

// changedLines flattens hunks into added and removed content, excluding hunk
// markers, legacy ---/+++ header lines, and lines whose content is empty
// after the sign is stripped.
func changedLines(hunks [][]string) (added, removed []string) {
	for _, hunk := range hunks {
		for _, line := range hunk {
			if line == "" {
				continue
			}
			if strings.HasPrefix(line, "@@") ||
				strings.HasPrefix(line, "--- ") ||
				strings.HasPrefix(line, "+++ ") {
				continue
			}
			switch line[0] {
			case '+':
				if content := line[1:]; content != "" {
					added = append(added, content)
				}
			case '-':
				if content := line[1:]; content != "" {
					removed = append(removed, content)
				}
			}
		}
	}
	return added, removed
}

// probability turns competing evidence counts into a customization
// percentage. Local hits argue for customization, vendor and upgrade hits
// against. No evidence at all means maximal uncertainty (50.0), never zero.
// The result is a ratio of competing evidence, not a calibrated estimate.
func probability(local, vendor, upgrade int) float64 {
	counter := vendor + upgrade

	var p float64
	if local == 0 && counter == 0 {
		p = 0.5
	} else {
		p = float64(local) / float64(local+counter)
	}

	p = math.Max(0.0, math.Min(1.0, p))

	// Percent, one decimal place.
	return math.Round(p*1000) / 10
}
