// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/aeondiff/aeondiff/internal/artifact"
	"github.com/aeondiff/aeondiff/internal/log"
)

// EmitDirDiff writes the structural diff to w per the --output flag: a
// count summary for text, or the full result set for json/yaml.
func EmitDirDiff(dd artifact.DirDiff, cmd *cli.Command, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	switch cmd.String("output") {
	case "json":
		jsonOutput, err := json.MarshalIndent(dd.Results, "", "  ")
		if err != nil {
			log.Errorf("EmitDirDiff json marshal: %v", err)
			return
		}
		fmt.Fprintln(w, string(jsonOutput))
	case "yaml":
		yamlOutput, err := yaml.Marshal(dd.Results)
		if err != nil {
			log.Errorf("EmitDirDiff yaml marshal: %v", err)
			return
		}
		_, _ = w.Write(yamlOutput)
	default:
		fmt.Fprintln(w, "Folder diff results:")
		fmt.Fprintf(w, "- old_only: %s\n", humanize.Comma(int64(len(dd.Results.OldOnly))))
		fmt.Fprintf(w, "- new_only: %s\n", humanize.Comma(int64(len(dd.Results.NewOnly))))
		fmt.Fprintf(w, "- different: %s\n", humanize.Comma(int64(len(dd.Results.Different))))
		fmt.Fprintf(w, "- same: %s\n", humanize.Comma(int64(len(dd.Results.Same))))
	}
}

// EmitAssessments writes the assessment rows to w per the --output flag,
// defaulting to the table renderer.
func EmitAssessments(rows []artifact.Assessment, cmd *cli.Command, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	switch cmd.String("output") {
	case "json":
		jsonOutput, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			log.Errorf("EmitAssessments json marshal: %v", err)
			return
		}
		fmt.Fprintln(w, string(jsonOutput))
	case "yaml":
		yamlOutput, err := yaml.Marshal(rows)
		if err != nil {
			log.Errorf("EmitAssessments yaml marshal: %v", err)
			return
		}
		_, _ = w.Write(yamlOutput)
	default:
		TableWriter(rows, cmd, w)
	}
}
