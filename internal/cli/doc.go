// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line interface parsing and execution for numfield.
//
// # Key Types
//
//   - Command: Enumeration of all available CLI commands
//   - Args: Parsed command-line arguments with global and command-specific flags
//   - ArgParser: Flag and positional parsing for subcommands and REPL directives
//   - JSONResponse: The envelope every command prints with --json
//
// # Usage
//
//	cmd, args, err := cli.Parse()
//	if err == nil {
//	    err = cli.Run(cmd, args)
//	}
//
// # Commands Overview
//
//   - tui: Interactive field (default)
//   - format: Format numbers for a locale, optionally as parts
//   - parse: Parse localized text
//   - step: Apply increment, decrement, max and min to a start value
//   - repl: Line-mode editing session
//   - config: Show, locate, create and edit the configuration
//
// Global flags (--locale, --style, --currency, --numbering, --min, --max,
// --step) override the configuration file for one run.
package cli
