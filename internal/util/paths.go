// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolveDir resolves a directory spec to an absolute path. It returns an
// error if the fs entry does not exist, is empty or is not a directory.
func ResolveDir(dir string) (string, error) {
	if dir == "" {
		return "", os.ErrInvalid
	}

	abs, err := absolutize(dir)
	if err != nil {
		return "", err
	}

	if r, err := os.Stat(abs); err != nil {
		return "", err
	} else if !r.IsDir() {
		return "", os.ErrInvalid
	}

	return abs, nil
}

// ResolveFile resolves a file spec to an absolute path. It returns an error
// if the fs entry does not exist, is empty or is a directory.
func ResolveFile(file string) (string, error) {
	if file == "" {
		return "", os.ErrInvalid
	}

	abs, err := absolutize(file)
	if err != nil {
		return "", err
	}

	if r, err := os.Stat(abs); err != nil {
		return "", err
	} else if r.IsDir() {
		return "", os.ErrInvalid
	}

	return abs, nil
}

// absolutize makes a relative path absolute against the CWD. Absolute paths
// are returned unchanged.
func absolutize(path string) (string, error) {
	if strings.HasPrefix(path, "/") {
		return path, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, path), nil
}
