// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/aeondiff/aeondiff/internal/artifact"
	"github.com/aeondiff/aeondiff/internal/config"
	"github.com/aeondiff/aeondiff/internal/differ"
	"github.com/aeondiff/aeondiff/internal/log"
	"github.com/aeondiff/aeondiff/internal/meta"
	"github.com/aeondiff/aeondiff/internal/util"
)

// fdCommandAction is the action handler for the "fd" subcommand. It diffs a
// single file pair and writes the per-file artifact, printing its path as
// JSON for downstream automation.
func fdCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("executing action: args=%v", m.Args[1:])

	config.Config.Namespace = "fd"

	oldFile, err := util.ResolveFile(cmd.String("old"))
	if err != nil {
		return fmt.Errorf("invalid --old file: %w", err)
	}
	newFile, err := util.ResolveFile(cmd.String("new"))
	if err != nil {
		return fmt.Errorf("invalid --new file: %w", err)
	}
	out, err := requireOut(cmd)
	if err != nil {
		return err
	}

	fd := artifact.FileDiff{
		ComparisonFiles: artifact.ComparisonFiles{OldFile: oldFile, NewFile: newFile},
		Results:         differ.CompareFiles(oldFile, newFile),
	}

	path, err := artifact.WriteFileDiff(ctx, out, fd)
	if err != nil {
		return fmt.Errorf("failed to write diff artifact: %w", err)
	}
	PrintOutputPath(path)

	return nil
}

// fdCommandBuilder constructs the "fd" subcommand.
func fdCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "fd",
		Usage:     "file diff",
		UsageText: "aeondiff fd --old FILE --new FILE [--out DIR]",
		Metadata:  map[string]any{"meta": m},
		Flags: append(NewGlobalFlags("fd"),
			&cli.StringFlag{
				Name:     "old",
				Usage:    "customized (old) file",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "new",
				Usage:    "vendor upgrade (new) file",
				Required: true,
			},
			NewOutFlag("fd", m.Config.Source),
		),
		Action: fdCommandAction,
	}
}
