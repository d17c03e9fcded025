// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/numfield/internal/ui/styles"
	"github.com/jeranaias/numfield/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT - Key hints and transient messages
// =============================================================================

// KeyHint pairs a key with what it does.
type KeyHint struct {
	Key  string
	Desc string
}

// DefaultKeyHints lists the NumberField bindings.
var DefaultKeyHints = []KeyHint{
	{"up/down", "step"},
	{"pgup/pgdn", "max/min"},
	{"enter", "commit"},
	{"tab", "blur"},
	{"esc", "quit"},
}

// StatusBar shows key hints, or a message when one is set.
type StatusBar struct {
	Hints   []KeyHint
	Message string
	IsError bool
	Width   int
	theme   *styles.Theme
}

// NewStatusBar creates a status bar with the default key hints.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Hints: DefaultKeyHints,
		Width: 80,
		theme: theme,
	}
}

// SetMessage shows msg instead of the key hints until cleared.
func (s *StatusBar) SetMessage(msg string, isError bool) {
	s.Message = msg
	s.IsError = isError
}

// ClearMessage restores the key hints.
func (s *StatusBar) ClearMessage() {
	s.Message = ""
	s.IsError = false
}

// View renders the status bar, truncated to its width.
func (s *StatusBar) View() string {
	if s.Message != "" {
		style := s.theme.ShortcutDesc
		if s.IsError {
			style = s.theme.ErrorText
		}
		return style.Render(util.TruncateWidth(s.Message, s.Width))
	}

	var parts []string
	used := 0
	for _, h := range s.Hints {
		plain := h.Key + " " + h.Desc
		if used > 0 {
			used += 2
		}
		if used+util.StringWidth(plain) > s.Width {
			break
		}
		used += util.StringWidth(plain)
		parts = append(parts, s.theme.ShortcutKey.Render(h.Key)+" "+s.theme.ShortcutDesc.Render(h.Desc))
	}
	return lipgloss.NewStyle().MaxWidth(s.Width).Render(strings.Join(parts, "  "))
}
