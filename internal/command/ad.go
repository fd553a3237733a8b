// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/aeondiff/aeondiff/internal/aggregate"
	"github.com/aeondiff/aeondiff/internal/artifact"
	"github.com/aeondiff/aeondiff/internal/config"
	"github.com/aeondiff/aeondiff/internal/log"
	"github.com/aeondiff/aeondiff/internal/meta"
	"github.com/aeondiff/aeondiff/internal/util"
)

// adCommandAction is the action handler for the "ad" subcommand. It re-runs
// the file comparator over every different entry of a structural diff and
// writes the combined artifact. Malformed input is fatal before any pair is
// processed; missing or failing pairs are skipped and counted.
func adCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("executing action: args=%v", m.Args[1:])

	config.Config.Namespace = "ad"

	in, err := util.ResolveFile(cmd.String("in"))
	if err != nil {
		return fmt.Errorf("invalid --in file: %w", err)
	}
	out, err := requireOut(cmd)
	if err != nil {
		return err
	}

	dd, err := aggregate.LoadDirDiff(in)
	if err != nil {
		return err
	}

	combined := aggregate.Run(dd)
	log.Infof("aggregated diffs: requested=%d processed=%d skipped=%d",
		combined.Summary.Requested, combined.Summary.Processed, combined.Summary.Skipped)

	path, err := artifact.WriteCombined(ctx, out, combined)
	if err != nil {
		return fmt.Errorf("failed to write combined artifact: %w", err)
	}
	PrintOutputPath(path)

	return nil
}

// adCommandBuilder constructs the "ad" subcommand.
func adCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "ad",
		Usage:     "aggregate diff",
		UsageText: "aeondiff ad --in DIFF_JSON [--out PATH]",
		Metadata:  map[string]any{"meta": m},
		Flags: append(NewGlobalFlags("ad"),
			&cli.StringFlag{
				Name:     "in",
				Usage:    "structural-diff artifact produced by dd",
				Required: true,
			},
			NewOutFlag("ad", m.Config.Source),
		),
		Action: adCommandAction,
	}
}
