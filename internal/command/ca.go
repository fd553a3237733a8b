// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/aeondiff/aeondiff/internal/aggregate"
	"github.com/aeondiff/aeondiff/internal/artifact"
	"github.com/aeondiff/aeondiff/internal/assess"
	"github.com/aeondiff/aeondiff/internal/config"
	"github.com/aeondiff/aeondiff/internal/log"
	"github.com/aeondiff/aeondiff/internal/meta"
	"github.com/aeondiff/aeondiff/internal/output"
	"github.com/aeondiff/aeondiff/internal/util"
)

// caCommandAction is the action handler for the "ca" subcommand. It scores
// every file of a combined diff for customization likelihood, writes the CSV
// and Markdown reports, and renders the assessment table. With --interactive
// it opens the hunk browser instead of the table.
func caCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("executing action: args=%v", m.Args[1:])

	config.Config.Namespace = "ca"

	in, err := util.ResolveFile(cmd.String("in"))
	if err != nil {
		return fmt.Errorf("invalid --in file: %w", err)
	}
	out, err := requireOut(cmd)
	if err != nil {
		return err
	}

	report, err := aggregate.LoadCombined(in)
	if err != nil {
		return err
	}

	rows := assess.Run(assess.DefaultConfig(), report)

	csvPath, mdPath, err := artifact.WriteAssessments(ctx, out, rows)
	if err != nil {
		return fmt.Errorf("failed to write assessment reports: %w", err)
	}
	log.Infof("wrote assessment reports: csv=%s md=%s", csvPath, mdPath)

	if cmd.Bool("interactive") {
		return output.Browse(report)
	}

	output.EmitAssessments(rows, cmd, os.Stdout)

	return nil
}

// caCommandBuilder constructs the "ca" subcommand.
func caCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "ca",
		Usage:     "customization assessment",
		UsageText: "aeondiff ca --in COMBINED_JSON [--out DIR]",
		Metadata:  map[string]any{"meta": m},
		Flags: append(NewGlobalFlags("ca"),
			&cli.StringFlag{
				Name:     "in",
				Usage:    "combined-diff artifact produced by ad",
				Required: true,
			},
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "browse hunks interactively instead of printing the table",
				Value:   false,
			},
			NewOutFlag("ca", m.Config.Source),
		),
		Action: caCommandAction,
	}
}
