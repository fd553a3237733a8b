// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package assess scores each changed file on the likelihood its differences
// are local customizations rather than vendor upgrade changes, using three
// regex signal families over added and removed diff lines.
package assess
