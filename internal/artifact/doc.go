// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package artifact defines the JSON/CSV/Markdown artifacts exchanged between
// pipeline stages and writes them to timestamp-named files or an S3 sink.
// Artifacts are immutable once written; a fresh name is synthesized per run.
package artifact
