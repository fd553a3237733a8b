// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders diff and assessment results to stdout as text,
// json, yaml, a styled table, or an interactive hunk browser.
package output
