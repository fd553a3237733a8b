// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package walker enumerates the regular files of a directory tree into a
// relative-path index consumed by the differ.
package walker
