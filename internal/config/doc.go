// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for numfield.
//
// Supports TOML, JSON and YAML configuration formats, with sensible defaults,
// environment variable overrides, validation and hot reload.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - FieldConfig: Locale, format options and range of the number field
//   - UIConfig: Terminal UI settings
//   - LoggingConfig: Logger level, encoder and destination
//   - Watcher: Reloads a config file when it changes
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (NUMFIELD_*)
//   - ~/.numfield/config.toml
//   - ~/.numfield/config.json
//   - ~/.numfield/config.yaml
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Build the field:
//
//	f, _ := cfg.Field.Formatter()
//	r, _ := cfg.Field.Range()
//	state, _ := numberfield.New(numberfield.Options{Formatter: f, Range: r})
package config
