// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ compares files byte-for-byte and line-by-line, and
// reconciles two directory trees into old-only/new-only/different/same
// partitions.
package differ
