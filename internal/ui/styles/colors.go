// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/numfield/internal/numfmt"
)

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Purple - Primary accent, focused field border
var Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// Cyan - Brand color, labels, key hints
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Emerald - Committed values, in-range indicator
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Rose - Negative values, rejected input
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Pending (uncommitted) input, warnings
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE AND TEXT COLORS
// =============================================================================

// SurfaceDim - Header and footer background
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}

// Overlay - Unfocused borders, separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - Labels, less prominent text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}

// TextMuted - Hints, placeholders
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// =============================================================================
// FORMATTED PART COLORS (Catppuccin Latte/Mocha)
// =============================================================================

var PartInteger = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#FAB387"}  // Peach
var PartFraction = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#F9E2AF"} // Yellow
var PartSign = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#F38BA8"}     // Red
var PartSymbol = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"}   // Mauve
var PartLiteral = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#6C7086"}  // Overlay0

// PartColor returns the color used to render a formatted part.
func PartColor(t numfmt.PartType) lipgloss.AdaptiveColor {
	switch t {
	case numfmt.PartInteger, numfmt.PartNaN, numfmt.PartInfinity:
		return PartInteger
	case numfmt.PartFraction:
		return PartFraction
	case numfmt.PartMinusSign, numfmt.PartPlusSign:
		return PartSign
	case numfmt.PartCurrency, numfmt.PartPercentSign, numfmt.PartUnit:
		return PartSymbol
	default:
		return PartLiteral
	}
}

// =============================================================================
// ACCESSIBILITY: Shapes for colorblind users
// =============================================================================

// StatusIndicatorSet contains text indicators for field states.
type StatusIndicatorSet struct {
	Committed string
	Pending   string
	Invalid   string
	ReadOnly  string
}

// StatusIndicators provides ASCII indicators alongside colors.
var StatusIndicators = StatusIndicatorSet{
	Committed: "[OK]",
	Pending:   "[~]",
	Invalid:   "[X]",
	ReadOnly:  "[RO]",
}
