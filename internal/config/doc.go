// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config loads the optional aeondiff YAML configuration file and
// provides typed getters with per-command namespacing.
package config
