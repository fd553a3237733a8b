// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package walker

import (
	"io/fs"
	"path/filepath"

	"github.com/aeondiff/aeondiff/internal/log"
)

// Collect walks root recursively and returns a mapping of slash-separated
// relative paths to absolute paths. Only regular files are included;
// directories and other entry types are skipped. Unreadable files are still
// included by path, with read failures deferred to the comparator. An error
// is returned only when root itself cannot be walked.
func Collect(root string) (map[string]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	index := make(map[string]string)

	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// The root being unwalkable is fatal. A subdirectory we can't
			// descend into just gets skipped.
			if path == abs {
				return walkErr
			}
			log.Debugf("skipping unwalkable entry: path=%s err=%v", path, walkErr)
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return err
		}
		index[filepath.ToSlash(rel)] = path

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debugf("collected files: root=%s count=%d", abs, len(index))
	return index, nil
}
