// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the quartz CLI.
//
// Configuration lives in a single JSONC file, located by (in order):
//   - the --config flag passed to the command
//   - the QUARTZ_CONFIG environment variable
//   - ~/.config/quartz/config.json
//
// The file may contain // line comments, /* block comments */, and
// trailing commas; they are stripped before unmarshalling. Files
// written by older versions of the CLI carry a lower "version" field
// and are migrated forward in memory before unmarshalling (see
// migrate.go); the migrated layout is persisted on the next Save.
package config
