// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	assert.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "absolute dir", in: dir, want: dir},
		{name: "empty", in: "", wantErr: true},
		{name: "missing", in: filepath.Join(dir, "nope"), wantErr: true},
		{name: "file not dir", in: file, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDir(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDir_Relative(t *testing.T) {
	cwd, err := os.Getwd()
	assert.NoError(t, err)

	got, err := ResolveDir("testdata")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "testdata"), got)
}

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	assert.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	got, err := ResolveFile(file)
	assert.NoError(t, err)
	assert.Equal(t, file, got)

	_, err = ResolveFile(dir)
	assert.Error(t, err)

	_, err = ResolveFile("")
	assert.Error(t, err)
}
