// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/numfield/internal/numberfield"
	"github.com/jeranaias/numfield/internal/numfmt"
	"github.com/jeranaias/numfield/internal/ui/styles"
)

func newField(t *testing.T, opts numberfield.Options) *NumberField {
	t.Helper()
	state, err := numberfield.New(opts)
	require.NoError(t, err)
	f := NewNumberField(state, styles.NewTheme("dark"))
	f.Focus()
	return f
}

func typeText(f *NumberField, text string) *NumberField {
	for _, r := range text {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return f
}

func press(t *testing.T, f *NumberField, k tea.KeyType) CommittedMsg {
	t.Helper()
	_, cmd := f.Update(tea.KeyMsg{Type: k})
	require.NotNil(t, cmd)
	msg, ok := cmd().(CommittedMsg)
	require.True(t, ok)
	return msg
}

// =============================================================================
// STATUS TESTS
// =============================================================================

func TestFieldStatus(t *testing.T) {
	tests := []struct {
		status FieldStatus
		want   string
		icon   string
	}{
		{FieldCommitted, "Committed", "[OK]"},
		{FieldPending, "Editing", "[~]"},
		{FieldInvalid, "Invalid", "[X]"},
		{FieldReadOnly, "Read-only", "[RO]"},
		{FieldStatus(99), "Unknown", "[OK]"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.status.String())
		assert.Equal(t, tc.icon, tc.status.Icon())
	}
}

// =============================================================================
// EDITING TESTS
// =============================================================================

func TestNumberField_TypeAndCommit(t *testing.T) {
	f := newField(t, numberfield.Options{Range: numberfield.Range{Min: 0, Max: 10000}})

	f = typeText(f, "1234.5")
	assert.Equal(t, "1234.5", f.Value())
	assert.Equal(t, FieldPending, f.Status())
	assert.True(t, math.IsNaN(f.State().Value()))

	msg := press(t, f, tea.KeyEnter)
	assert.Equal(t, 1234.5, msg.Value)
	assert.Equal(t, "1,234.5", msg.Text)
	assert.Equal(t, f.State().ID(), msg.Session)
	assert.Equal(t, "1,234.5", f.Value())
	assert.Equal(t, FieldCommitted, f.Status())
}

func TestNumberField_SanitizesKeystrokes(t *testing.T) {
	f := newField(t, numberfield.Options{Range: numberfield.Range{Min: 0, Max: 100}})

	f = typeText(f, "-")
	assert.Equal(t, "", f.Value(), "minus is not accepted for a non-negative range")
	assert.Equal(t, FieldInvalid, f.Status())

	f = typeText(f, "4a2")
	assert.Equal(t, "42", f.Value())
	assert.Equal(t, FieldPending, f.Status())
}

func TestNumberField_Steps(t *testing.T) {
	f := newField(t, numberfield.Options{Range: numberfield.Range{Min: 0, Max: 10, Step: 0.5}})

	assert.Equal(t, 0.0, press(t, f, tea.KeyUp).Value)
	assert.Equal(t, 0.5, press(t, f, tea.KeyUp).Value)
	assert.Equal(t, 0.0, press(t, f, tea.KeyDown).Value)
	assert.Equal(t, 10.0, press(t, f, tea.KeyPgUp).Value)
	assert.Equal(t, "10", f.Value())
	assert.Equal(t, 0.0, press(t, f, tea.KeyPgDown).Value)
}

func TestNumberField_BlurCommits(t *testing.T) {
	f := newField(t, numberfield.Options{})
	f = typeText(f, "7")

	cmd := f.Blur()
	require.NotNil(t, cmd)
	msg := cmd().(CommittedMsg)
	assert.Equal(t, 7.0, msg.Value)
	assert.False(t, f.Focused())
}

func TestNumberField_IgnoresKeysWhenBlurred(t *testing.T) {
	f := newField(t, numberfield.Options{})
	f.Blur()
	f = typeText(f, "5")
	assert.Equal(t, "", f.Value())
}

func TestNumberField_ReadOnly(t *testing.T) {
	f := newField(t, numberfield.Options{ReadOnly: true, DefaultValue: numberfield.Float(3)})
	f = typeText(f, "9")
	assert.Equal(t, "3", f.Value())
	assert.Equal(t, FieldReadOnly, f.Status())

	press(t, f, tea.KeyUp)
	assert.Equal(t, 3.0, f.State().Value())
}

func TestNumberField_Reconfigure(t *testing.T) {
	f := newField(t, numberfield.Options{DefaultValue: numberfield.Float(1234.5)})
	require.NoError(t, f.Reconfigure(numfmt.MustNew("de-DE", numfmt.Options{}), numberfield.Range{Min: 0, Max: 5000}))
	assert.Equal(t, "1.234,5", f.Value())

	err := f.Reconfigure(numfmt.MustNew("en-US", numfmt.Options{}), numberfield.Range{Min: 5, Max: 1})
	assert.ErrorIs(t, err, numberfield.ErrInvalidRange)
}

// =============================================================================
// VIEW TESTS
// =============================================================================

func TestNumberField_View(t *testing.T) {
	f := newField(t, numberfield.Options{
		Range:        numberfield.Range{Min: 0, Max: 100},
		DefaultValue: numberfield.Float(25),
	})
	f.SetLabel("Quantity")
	f.SetShowParts(true)
	f.SetWidth(40)

	view := f.View()
	assert.Contains(t, view, "Quantity")
	assert.Contains(t, view, "[0, 100]")
	assert.Contains(t, view, "25")
	assert.Contains(t, view, "Committed")
	assert.Contains(t, view, styles.RangeMarker)

	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 200)
	}
}

// =============================================================================
// STATUS BAR TESTS
// =============================================================================

func TestStatusBar(t *testing.T) {
	bar := NewStatusBar(styles.NewTheme("dark"))
	view := bar.View()
	assert.Contains(t, view, "enter")
	assert.Contains(t, view, "commit")

	bar.SetMessage("config reloaded", false)
	assert.Contains(t, bar.View(), "config reloaded")
	assert.NotContains(t, bar.View(), "commit")

	bar.ClearMessage()
	bar.Width = 12
	assert.Contains(t, bar.View(), "up/down")
	assert.NotContains(t, bar.View(), "pgup")
}
