// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/numfield/internal/numfmt"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style

	// ==========================================================================
	// FIELD STYLES
	// ==========================================================================

	Label        lipgloss.Style
	Field        lipgloss.Style
	FieldFocused lipgloss.Style
	FieldInvalid lipgloss.Style
	InputText    lipgloss.Style
	Placeholder  lipgloss.Style
	Committed    lipgloss.Style
	Pending      lipgloss.Style
	Negative     lipgloss.Style
	RangeText    lipgloss.Style

	// ==========================================================================
	// FOOTER STYLES
	// ==========================================================================

	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	ErrorText    lipgloss.Style
}

// NewTheme creates a new theme with all styles configured. name is "dark",
// "light" or empty to follow the terminal background.
func NewTheme(name string) *Theme {
	colorProfile := termenv.ColorProfile()
	isDark := termenv.HasDarkBackground()
	switch name {
	case "dark":
		isDark = true
	case "light":
		isDark = false
	}
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.Label = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)

	t.Field = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.FieldFocused = t.Field.
		BorderForeground(Purple)

	t.FieldInvalid = t.Field.
		BorderForeground(Rose)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.Placeholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.Committed = lipgloss.NewStyle().
		Foreground(Emerald)

	t.Pending = lipgloss.NewStyle().
		Foreground(Amber)

	t.Negative = lipgloss.NewStyle().
		Foreground(Rose)

	t.RangeText = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ErrorText = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)

// =============================================================================
// RENDER HELPERS
// =============================================================================

// RenderParts colors each formatted part by its type.
func RenderParts(parts []numfmt.Part) string {
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(lipgloss.NewStyle().Foreground(PartColor(p.Type)).Render(p.Value))
	}
	return sb.String()
}

// RangeBar characters.
var (
	RangeFull   = "="
	RangeEmpty  = "-"
	RangeMarker = "|"
)

// RenderRangeBar draws the position of a value between the range ends.
// width is the total width in cells; percent is 0-100. Values outside the
// range are pinned to the nearest end.
func RenderRangeBar(width int, percent float64) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	pos := int(float64(width-1) * percent / 100)

	var sb strings.Builder
	sb.Grow(width)
	for i := 0; i < width; i++ {
		switch {
		case i == pos:
			sb.WriteString(RangeMarker)
		case i < pos:
			sb.WriteString(RangeFull)
		default:
			sb.WriteString(RangeEmpty)
		}
	}
	return sb.String()
}
