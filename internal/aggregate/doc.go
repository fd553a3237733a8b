// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aggregate re-runs the file comparator over every "different" path
// of a structural diff and assembles the combined report, skipping unusable
// pairs without aborting the batch.
package aggregate
