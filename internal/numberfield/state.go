// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package numberfield

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jeranaias/numfield/internal/numeral"
	"github.com/jeranaias/numfield/internal/numfmt"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures a State.
type Options struct {
	// Formatter renders and parses values. Nil selects en-US decimal.
	Formatter *numfmt.Formatter

	// Range bounds the value. The zero Range is read as Unbounded(), so the
	// degenerate range [0, 0] needs a non-zero step, as in
	// Range{Min: 0, Max: 0, Step: 1}.
	Range Range

	// Value makes the field controlled: the canonical value only changes
	// through SetControlledValue, and commits are reported through OnChange.
	Value *float64

	// DefaultValue seeds an uncontrolled field. Nil starts empty (NaN).
	DefaultValue *float64

	// OnChange is called with the new canonical value whenever it changes.
	OnChange func(float64)

	// ReadOnly turns every editing operation into a no-op.
	ReadOnly bool

	// Logger receives debug records for commits and steps.
	Logger *zap.Logger
}

// Float returns a pointer to v, for Options.Value and Options.DefaultValue.
func Float(v float64) *float64 { return &v }

// =============================================================================
// STATE
// =============================================================================

// pendingValue is the best-effort parse of the latest keystroke, consumed by
// the next commit or step.
type pendingValue struct {
	set   bool
	value float64
}

func (p *pendingValue) take() (float64, bool) {
	v, ok := p.value, p.set
	*p = pendingValue{}
	return v, ok
}

// State is the editing state of one numeric field session.
type State struct {
	id     string
	logger *zap.Logger

	formatter *numfmt.Formatter
	parser    *numfmt.Parser
	rng       Range

	// input is the formatter for the numeral system being typed; its
	// parser and symbols read keystrokes.
	input       *numfmt.Formatter
	inputParser *numfmt.Parser
	symbols     Symbols

	value      float64
	inputValue string
	pending    pendingValue
	numeral    numeral.System

	controlled bool
	readOnly   bool
	onChange   func(float64)
}

// New creates a State. It fails only for an invalid range.
func New(opts Options) (*State, error) {
	f := opts.Formatter
	if f == nil {
		var err error
		if f, err = numfmt.New("en-US", numfmt.Options{}); err != nil {
			return nil, fmt.Errorf("default formatter: %w", err)
		}
	}

	rng := opts.Range
	if rng == (Range{}) {
		rng = Unbounded()
	}
	rng = rng.normalize()
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &State{
		id:         uuid.NewString(),
		formatter:  f,
		parser:     numfmt.NewParser(f),
		rng:        rng,
		value:      math.NaN(),
		controlled: opts.Value != nil,
		readOnly:   opts.ReadOnly,
		onChange:   opts.OnChange,
	}
	s.logger = logger.With(zap.String("session", s.id))
	s.useNumeral(f.NumberingSystem())

	switch {
	case opts.Value != nil:
		s.value = *opts.Value
	case opts.DefaultValue != nil:
		s.value = *opts.DefaultValue
	}
	s.inputValue = s.display(s.value)
	return s, nil
}

// =============================================================================
// ACCESSORS
// =============================================================================

// ID identifies the editing session in logs.
func (s *State) ID() string { return s.id }

// Value returns the canonical number, NaN when the field is empty.
func (s *State) Value() float64 { return s.value }

// InputValue returns the text shown in the field.
func (s *State) InputValue() string { return s.inputValue }

// TextValue returns the formatted value for announcements; empty when the
// field is empty.
func (s *State) TextValue() string {
	if math.IsNaN(s.value) {
		return ""
	}
	return s.formatter.Format(s.value)
}

// NumberingSystem returns the numeral system the user is typing in.
func (s *State) NumberingSystem() numeral.System { return s.numeral }

// Symbols returns the currently accepted symbols.
func (s *State) Symbols() Symbols { return s.symbols }

// Range returns the configured range.
func (s *State) Range() Range { return s.rng }

// MinValue returns the lower bound.
func (s *State) MinValue() float64 { return s.rng.Min }

// MaxValue returns the upper bound.
func (s *State) MaxValue() float64 { return s.rng.Max }

// Formatter returns the configured formatter.
func (s *State) Formatter() *numfmt.Formatter { return s.formatter }

// Controlled reports whether the value is owned by the caller.
func (s *State) Controlled() bool { return s.controlled }

// ReadOnly reports whether editing operations are disabled.
func (s *State) ReadOnly() bool { return s.readOnly }

// display formats v in the active numeral system; NaN is the empty string.
func (s *State) display(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return s.input.Format(v)
}

// useNumeral switches keystroke handling and display to sys, using the
// locale's separators for that system.
func (s *State) useNumeral(sys numeral.System) {
	if s.input != nil && sys.ID() == s.numeral.ID() {
		return
	}
	s.numeral = sys
	s.input = s.formatter.WithNumberingSystem(sys)
	s.inputParser = numfmt.NewParser(s.input)
	s.symbols = ResolveSymbols(s.input, s.rng)
}

// canonical round-trips v through the formatter so the stored value is
// exactly what the display shows.
func (s *State) canonical(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	if rounded := s.parser.Parse(s.formatter.Format(v)); !math.IsNaN(rounded) {
		return rounded
	}
	return v
}

// =============================================================================
// CONFIGURATION CHANGES
// =============================================================================

// SetFormatter swaps the formatter, re-derives the symbols and reformats the
// display from the canonical value.
func (s *State) SetFormatter(f *numfmt.Formatter) {
	if f == nil || f == s.formatter {
		return
	}
	s.formatter = f
	s.parser = numfmt.NewParser(f)
	s.input = nil
	s.useNumeral(f.NumberingSystem())
	s.pending = pendingValue{}
	s.inputValue = s.display(s.value)
}

// SetRange replaces the range and re-derives the symbols. The value is not
// re-clamped until the next commit or step.
func (s *State) SetRange(r Range) error {
	r = r.normalize()
	if err := r.Validate(); err != nil {
		return err
	}
	s.rng = r
	s.symbols = ResolveSymbols(s.input, r)
	return nil
}

// SetControlledValue pushes a value in from outside the session. The display
// is reformatted and any pending keystroke value is dropped. OnChange is not
// called.
func (s *State) SetControlledValue(v float64) {
	s.value = v
	s.pending = pendingValue{}
	s.inputValue = s.display(v)
}

// =============================================================================
// EDITING
// =============================================================================

// Validate reports whether text is an acceptable partial number for the
// current formatter and range. Renderers may use it to reject keystrokes.
func (s *State) Validate(text string) bool {
	sys, _ := numeral.Detect(text)
	p := numfmt.NewParser(s.formatter.WithNumberingSystem(sys))
	return p.IsValidPartialNumber(text, s.rng.Min, s.rng.Max)
}

// SetValue records a keystroke. The display text always follows the
// sanitized input; the canonical value never changes here. A parseable
// in-range value is kept as the pending value for the next commit or step.
func (s *State) SetValue(text string) {
	if s.readOnly {
		return
	}
	sys, _ := numeral.Detect(text)
	s.useNumeral(sys)

	display, ready := Sanitize(text, s.symbols, s.numeral)
	s.inputValue = display

	v := s.inputParser.Parse(ready)
	if math.IsNaN(v) || !s.rng.Contains(v) {
		return
	}
	if rounded := s.canonical(v); !math.IsNaN(rounded) {
		s.pending = pendingValue{set: true, value: rounded}
	}
}

// Commit reconciles the display text and the canonical value. Empty text
// empties the field; otherwise the pending value (or the current value) is
// clamped, snapped to the step, formatted and published.
func (s *State) Commit() {
	if s.readOnly {
		return
	}
	if s.inputValue == "" {
		s.pending = pendingValue{}
		s.publish(math.NaN(), "commit")
		return
	}

	v := s.value
	if pending, ok := s.pending.take(); ok {
		v = pending
	}
	if math.IsNaN(v) {
		s.inputValue = s.display(s.value)
		return
	}
	s.publish(s.clampCommit(v), "commit")
}

// Increment adds the step (1 when unset) and commits.
func (s *State) Increment() { s.step(1) }

// Decrement subtracts the step (1 when unset) and commits.
func (s *State) Decrement() { s.step(-1) }

// IncrementToMax commits the largest step-aligned value in range.
func (s *State) IncrementToMax() {
	if s.readOnly {
		return
	}
	s.pending = pendingValue{}
	s.publish(SnapToStep(s.rng.Max, s.rng, s.rng.StepOrDefault()), "increment_to_max")
}

// DecrementToMin commits the smallest step-aligned value in range.
func (s *State) DecrementToMin() {
	if s.readOnly {
		return
	}
	s.pending = pendingValue{}
	s.publish(SnapToStep(s.rng.Min, s.rng, s.rng.StepOrDefault()), "decrement_to_min")
}

// CanIncrement reports whether Increment would move the value.
func (s *State) CanIncrement() bool {
	if s.readOnly {
		return false
	}
	v := s.value
	if math.IsNaN(v) || !s.rng.HasMax() {
		return true
	}
	step := s.rng.StepOrDefault()
	return SnapToStep(v, s.rng, step) > v || AddDecimal(v, step) <= s.rng.Max
}

// CanDecrement reports whether Decrement would move the value.
func (s *State) CanDecrement() bool {
	if s.readOnly {
		return false
	}
	v := s.value
	if math.IsNaN(v) || !s.rng.HasMin() {
		return true
	}
	step := s.rng.StepOrDefault()
	return SnapToStep(v, s.rng, step) < v || SubDecimal(v, step) >= s.rng.Min
}

// step moves the value by one step in direction dir (+1 or -1).
func (s *State) step(dir int) {
	if s.readOnly {
		return
	}
	step := s.rng.StepOrDefault()
	base, seeded := s.stepBase(dir)

	next := base
	if !seeded {
		if dir > 0 {
			next = AddDecimal(base, step)
		} else {
			next = SubDecimal(base, step)
		}
	}
	op := "increment"
	if dir < 0 {
		op = "decrement"
	}
	s.publish(SnapToStep(next, s.rng, step), op)
}

// stepBase picks the value a step starts from. seeded is true when the field
// was empty and the base came from a bound (or 0), in which case the step is
// not applied.
func (s *State) stepBase(dir int) (base float64, seeded bool) {
	if pending, ok := s.pending.take(); ok {
		return pending, false
	}
	if !math.IsNaN(s.value) {
		return s.value, false
	}
	switch {
	case !s.rng.HasMin() && !s.rng.HasMax():
		return 0, true
	case dir > 0 && s.rng.HasMin(), dir < 0 && !s.rng.HasMax():
		return s.rng.Min, true
	default:
		return s.rng.Max, true
	}
}

// clampCommit applies the commit clamp: snap to the step grid when a step is
// configured, plain clamp otherwise.
func (s *State) clampCommit(v float64) float64 {
	if s.rng.Step > 0 {
		return SnapToStep(v, s.rng, s.rng.Step)
	}
	return Clamp(v, s.rng)
}

// publish stores v as the canonical value, reformats the display and
// notifies. A controlled field only notifies; its display follows whatever
// value the caller holds once OnChange returns.
func (s *State) publish(v float64, op string) {
	v = s.canonical(v)
	prev := s.value

	if !s.controlled {
		s.value = v
	}
	s.logger.Debug("numberfield value committed",
		zap.String("op", op),
		zap.Float64("previous", prev),
		zap.Float64("value", v),
	)
	if s.onChange != nil && !sameNumber(prev, v) {
		s.onChange(v)
	}
	s.inputValue = s.display(s.value)
}

// sameNumber treats two NaNs as equal, so emptying an empty field stays
// silent.
func sameNumber(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b
}
