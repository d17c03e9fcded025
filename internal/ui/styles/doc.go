// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the numfield TUI.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection.

# Color System (colors.go)

## Accent and Semantic Colors

  - Purple - Focused field border
  - Cyan - Labels and key hints
  - Emerald - Committed values
  - Amber - Pending input that has not been committed
  - Rose - Negative values and rejected input

## Part Colors

Formatted numbers are colored per part (integer, fraction, sign, symbol,
literal) through PartColor.

# Theme System (theme.go)

The Theme struct provides runtime color adaptation:

	theme := styles.NewTheme("")
	if theme.IsDark {
		// Dark terminal detected
	}

RenderParts and RenderRangeBar draw a formatted value and its position in
the field's range.
*/
package styles
