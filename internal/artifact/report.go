// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package artifact

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

const (
	csvNameTemplate = "aeon_diff_customization_assessment_%s.csv"
	mdNameTemplate  = "aeon_diff_customization_assessment_%s.md"
)

// WriteAssessments writes the assessment table as CSV and the narrative
// Markdown report under outDir, sharing one timestamp so the pair is
// recognizably from the same run. Returns both written paths.
func WriteAssessments(ctx context.Context, outDir string, rows []Assessment) (csvPath, mdPath string, err error) {
	timestamp := Clock().Format(timestampFormat)

	csvPath = Join(outDir, fmt.Sprintf(csvNameTemplate, timestamp))
	if err = write(ctx, csvPath, assessmentCSV(rows)); err != nil {
		return "", "", err
	}

	mdPath = Join(outDir, fmt.Sprintf(mdNameTemplate, timestamp))
	if err = write(ctx, mdPath, []byte(AssessmentMarkdown(rows))); err != nil {
		return "", "", err
	}

	return csvPath, mdPath, nil
}

// assessmentCSV renders the row-oriented table as delimited text.
func assessmentCSV(rows []Assessment) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"file_path", "probability_of_customization", "notes"})
	for _, row := range rows {
		_ = w.Write([]string{
			row.FilePath,
			strconv.FormatFloat(row.Probability, 'f', 1, 64),
			row.Notes,
		})
	}
	w.Flush()

	return buf.Bytes()
}

// AssessmentMarkdown renders the narrative report, one section per file in
// table order.
func AssessmentMarkdown(rows []Assessment) string {
	var md []string

	md = append(md, "# Aeon diff: customization likelihood report\n")
	md = append(md,
		"This report scores each changed file on the likelihood that differences reflect **local customizations** (vs vendor **upgrade** changes).")
	md = append(md,
		"\n**How to read**: higher percentages suggest text that looks Brown/JHL-specific was removed/changed; lower percentages suggest generic Aeon features were added or structural changes came from upstream.\n")
	md = append(md, "---\n")

	for _, row := range rows {
		md = append(md, fmt.Sprintf("## %s", row.FilePath))
		md = append(md, fmt.Sprintf("- **probability_of_customization**: %.1f%%", row.Probability))
		notes := row.Notes
		if notes == "" {
			notes = "(no notable signals detected)"
		}
		md = append(md, fmt.Sprintf("- **notes**: %s\n", notes))
	}

	return strings.Join(md, "\n")
}
