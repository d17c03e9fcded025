// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"math"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/numfield/internal/numberfield"
	"github.com/jeranaias/numfield/internal/numfmt"
	"github.com/jeranaias/numfield/internal/ui/styles"
	"github.com/jeranaias/numfield/internal/util"
)

// =============================================================================
// NUMBER FIELD COMPONENT - Locale-aware numeric input
// =============================================================================

// CommittedMsg is emitted after a commit or step operation.
type CommittedMsg struct {
	Session string
	Value   float64
	Text    string
}

// FieldStatus describes the field's editing state.
type FieldStatus int

const (
	FieldCommitted FieldStatus = iota
	FieldPending
	FieldInvalid
	FieldReadOnly
)

// String returns the display string for the status
func (s FieldStatus) String() string {
	switch s {
	case FieldCommitted:
		return "Committed"
	case FieldPending:
		return "Editing"
	case FieldInvalid:
		return "Invalid"
	case FieldReadOnly:
		return "Read-only"
	default:
		return "Unknown"
	}
}

// Icon returns an ASCII indicator for the status
func (s FieldStatus) Icon() string {
	switch s {
	case FieldPending:
		return styles.StatusIndicators.Pending
	case FieldInvalid:
		return styles.StatusIndicators.Invalid
	case FieldReadOnly:
		return styles.StatusIndicators.ReadOnly
	default:
		return styles.StatusIndicators.Committed
	}
}

// NumberField renders a numberfield.State with a bubbles text input.
// Typing goes through State.SetValue; up/down step, pgup/pgdown jump to the
// range ends, and enter or losing focus commits.
type NumberField struct {
	state     *numberfield.State
	input     textinput.Model
	theme     *styles.Theme
	label     string
	width     int
	focused   bool
	showParts bool
	rejected  bool
	dirty     bool
}

// NewNumberField creates a NumberField bound to state.
func NewNumberField(state *numberfield.State, theme *styles.Theme) *NumberField {
	ti := textinput.New()
	ti.Prompt = "# "
	ti.Placeholder = "enter a number"
	ti.CharLimit = 64

	ti.PromptStyle = lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)
	ti.TextStyle = theme.InputText
	ti.PlaceholderStyle = theme.Placeholder
	ti.Cursor.Style = lipgloss.NewStyle().
		Foreground(styles.Cyan)

	f := &NumberField{
		state: state,
		input: ti,
		theme: theme,
		label: "Value",
	}
	f.SetWidth(24)
	f.input.SetValue(state.InputValue())
	f.input.CursorEnd()
	return f
}

// State returns the underlying editing state.
func (f *NumberField) State() *numberfield.State { return f.state }

// Focus focuses the field
func (f *NumberField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

// Blur removes focus and commits the typed text.
func (f *NumberField) Blur() tea.Cmd {
	f.focused = false
	f.input.Blur()
	return f.apply(f.state.Commit)
}

// Focused returns whether the field is focused
func (f *NumberField) Focused() bool { return f.focused }

// SetLabel sets the label shown above the field.
func (f *NumberField) SetLabel(label string) { f.label = label }

// SetShowParts toggles the formatted parts line.
func (f *NumberField) SetShowParts(show bool) { f.showParts = show }

// SetWidth sets the field width in cells.
func (f *NumberField) SetWidth(width int) {
	if width < 12 {
		width = 12
	}
	f.width = width
	// Account for border, padding and prompt.
	f.input.Width = width - 4 - len(f.input.Prompt)
}

// Value returns the text in the input.
func (f *NumberField) Value() string { return f.input.Value() }

// Status reports the field's editing state.
func (f *NumberField) Status() FieldStatus {
	switch {
	case f.state.ReadOnly():
		return FieldReadOnly
	case f.rejected:
		return FieldInvalid
	case f.dirty:
		return FieldPending
	default:
		return FieldCommitted
	}
}

// Reconfigure swaps the formatter and range, for example after a config
// reload, and redraws the committed value.
func (f *NumberField) Reconfigure(formatter *numfmt.Formatter, r numberfield.Range) error {
	if err := f.state.SetRange(r); err != nil {
		return err
	}
	f.state.SetFormatter(formatter)
	f.reset()
	return nil
}

// Update handles key presses
func (f *NumberField) Update(msg tea.Msg) (*NumberField, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !f.focused {
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return f, cmd
	}

	switch keyMsg.String() {
	case "up":
		return f, f.apply(f.state.Increment)
	case "down":
		return f, f.apply(f.state.Decrement)
	case "pgup":
		return f, f.apply(f.state.IncrementToMax)
	case "pgdown":
		return f, f.apply(f.state.DecrementToMin)
	case "enter":
		return f, f.apply(f.state.Commit)
	}

	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	typed := f.input.Value()
	if typed == before || f.state.ReadOnly() {
		f.input.SetValue(before)
		return f, cmd
	}

	f.rejected = typed != "" && !f.state.Validate(typed)
	f.state.SetValue(typed)
	f.dirty = true
	f.syncTyped(typed)
	return f, cmd
}

// apply runs a committing operation and reports the result.
func (f *NumberField) apply(op func()) tea.Cmd {
	op()
	f.reset()

	msg := CommittedMsg{
		Session: f.state.ID(),
		Value:   f.state.Value(),
		Text:    f.state.TextValue(),
	}
	return func() tea.Msg { return msg }
}

// reset shows the committed display with the cursor at the end.
func (f *NumberField) reset() {
	f.rejected = false
	f.dirty = false
	f.input.SetValue(f.state.InputValue())
	f.input.CursorEnd()
}

// syncTyped replaces the typed text with the sanitized display, keeping the
// cursor next to the character the user just typed.
func (f *NumberField) syncTyped(typed string) {
	display := f.state.InputValue()
	if display == typed {
		return
	}
	pos := f.input.Position() - (len([]rune(typed)) - len([]rune(display)))
	if pos < 0 {
		pos = 0
	}
	f.input.SetValue(display)
	f.input.SetCursor(pos)
}

// View renders the field
func (f *NumberField) View() string {
	rangeText := f.theme.RangeText.Render(f.state.Range().String())
	labelWidth := f.width - lipgloss.Width(rangeText)
	header := f.theme.Label.Render(util.PadRight(util.TruncateWidth(f.label, labelWidth-1), labelWidth)) + rangeText

	box := f.theme.Field
	switch {
	case f.rejected:
		box = f.theme.FieldInvalid
	case f.focused:
		box = f.theme.FieldFocused
	}
	field := box.Width(f.width - 2).Render(f.input.View())

	lines := []string{header, field, f.statusLine()}

	value := f.state.Value()
	if f.showParts && !math.IsNaN(value) {
		lines = append(lines, "  "+styles.RenderParts(f.state.Formatter().FormatToParts(value)))
	}
	if r := f.state.Range(); r.HasMin() && r.HasMax() && r.Max > r.Min && !math.IsNaN(value) {
		percent := (value - r.Min) / (r.Max - r.Min) * 100
		lines = append(lines, "  "+f.theme.RangeText.Render(styles.RenderRangeBar(f.width-4, percent)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// statusLine shows the status indicator and the committed value.
func (f *NumberField) statusLine() string {
	status := f.Status()
	style := f.theme.Committed
	switch status {
	case FieldPending:
		style = f.theme.Pending
	case FieldInvalid:
		style = f.theme.ErrorText
	}

	text := f.state.TextValue()
	if text == "" {
		text = "empty"
	}
	if v := f.state.Value(); v < 0 && status == FieldCommitted {
		style = f.theme.Negative
	}

	left := style.Render(status.Icon() + " " + status.String())
	right := util.PadLeft(text, f.width-lipgloss.Width(left)-1)
	return left + " " + f.theme.InputText.Render(right)
}
