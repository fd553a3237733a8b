// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/aeondiff/aeondiff/internal/meta"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// PrintOutputPath emits the artifact path as a one-line JSON object so that
// downstream automation can chain the pipeline stages.
func PrintOutputPath(path string) {
	payload, _ := json.Marshal(map[string]string{"output_path": path})
	fmt.Fprintln(os.Stdout, string(payload))
}

// requireOut returns the resolved --out value, erroring when neither the
// flag, the environment, nor the config file provided one.
func requireOut(cmd *cli.Command) (string, error) {
	out := cmd.String("out")
	if out == "" {
		return "", fmt.Errorf("no output location: set --out, AEONDIFF_OUT, or an 'out' config key")
	}
	return out, nil
}
