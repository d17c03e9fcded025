// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for numfield.
//
// # Key Functions
//
// Display Width:
//   - StringWidth: Terminal column width of a string
//   - TruncateWidth: Width-aware truncation with ellipsis
//   - PadLeft, PadRight: Column alignment for formatted numbers
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// # Usage
//
//	// Right-align formatted values in a table column
//	cell := util.PadLeft(formatted, 12)
//
//	// Write files atomically to prevent data loss
//	err := util.AtomicWriteFile(path, data, 0644)
package util
