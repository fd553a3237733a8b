// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/aeondiff/aeondiff/internal/artifact"
	"github.com/aeondiff/aeondiff/internal/config"
	"github.com/aeondiff/aeondiff/internal/differ"
	"github.com/aeondiff/aeondiff/internal/log"
	"github.com/aeondiff/aeondiff/internal/meta"
	"github.com/aeondiff/aeondiff/internal/output"
	"github.com/aeondiff/aeondiff/internal/util"
)

// ddCommandAction is the action handler for the "dd" subcommand. It walks the
// old and new trees, partitions their relative paths, prints a summary, and
// writes the structural-diff artifact.
func ddCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("executing action: args=%v", m.Args[1:])

	config.Config.Namespace = "dd"

	oldDir, err := util.ResolveDir(cmd.String("old"))
	if err != nil {
		return fmt.Errorf("invalid --old directory: %w", err)
	}
	newDir, err := util.ResolveDir(cmd.String("new"))
	if err != nil {
		return fmt.Errorf("invalid --new directory: %w", err)
	}
	out, err := requireOut(cmd)
	if err != nil {
		return err
	}

	results, err := differ.CompareDirs(oldDir, newDir)
	if err != nil {
		return fmt.Errorf("failed to diff directories: %w", err)
	}

	dd := artifact.DirDiff{
		ComparisonDirs: artifact.ComparisonDirs{OldDir: oldDir, NewDir: newDir},
		Results:        results,
	}

	output.EmitDirDiff(dd, cmd, os.Stdout)

	path, err := artifact.WriteDirDiff(ctx, out, dd)
	if err != nil {
		return fmt.Errorf("failed to write diff artifact: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Wrote JSON diff to: %s\n", path)

	return nil
}

// ddCommandBuilder constructs the "dd" subcommand.
func ddCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "dd",
		Usage:     "directory diff",
		UsageText: "aeondiff dd --old DIR --new DIR [--out DIR]",
		Metadata:  map[string]any{"meta": m},
		Flags: append(NewGlobalFlags("dd"),
			&cli.StringFlag{
				Name:     "old",
				Usage:    "directory holding the customized (old) snapshot",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "new",
				Usage:    "directory holding the vendor upgrade (new) snapshot",
				Required: true,
			},
			NewOutFlag("dd", m.Config.Source),
		),
		Action: ddCommandAction,
	}
}
