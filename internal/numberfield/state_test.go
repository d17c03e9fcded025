// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package numberfield

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jeranaias/numfield/internal/numeral"
	"github.com/jeranaias/numfield/internal/numfmt"
)

func newState(t *testing.T, opts Options) *State {
	t.Helper()
	s, err := New(opts)
	require.NoError(t, err)
	return s
}

// =============================================================================
// CONSTRUCTION TESTS
// =============================================================================

func TestNew_Defaults(t *testing.T) {
	s := newState(t, Options{})
	assert.True(t, math.IsNaN(s.Value()))
	assert.Equal(t, "", s.InputValue())
	assert.Equal(t, "", s.TextValue())
	assert.Equal(t, Unbounded(), s.Range())
	assert.Equal(t, numeral.Latin.ID(), s.NumberingSystem().ID())
	assert.NotEmpty(t, s.ID())
	assert.False(t, s.Controlled())
}

func TestNew_ZeroRangeMeansUnbounded(t *testing.T) {
	s := newState(t, Options{Range: Range{}})
	assert.Equal(t, Unbounded(), s.Range())

	pinned := newState(t, Options{Range: Range{Min: 0, Max: 0, Step: 1}})
	assert.Equal(t, Range{Min: 0, Max: 0, Step: 1}, pinned.Range())
	pinned.Increment()
	pinned.Increment()
	assert.Equal(t, 0.0, pinned.Value())
	assert.False(t, pinned.CanIncrement())
	assert.False(t, pinned.CanDecrement())
}

func TestNew_DefaultValue(t *testing.T) {
	s := newState(t, Options{DefaultValue: Float(1234.5)})
	assert.Equal(t, 1234.5, s.Value())
	assert.Equal(t, "1,234.5", s.InputValue())
	assert.Equal(t, "1,234.5", s.TextValue())
}

func TestNew_InvalidRange(t *testing.T) {
	_, err := New(Options{Range: Range{Min: 5, Max: 1}})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNew_SessionsAreIndependent(t *testing.T) {
	a := newState(t, Options{})
	b := newState(t, Options{})
	assert.NotEqual(t, a.ID(), b.ID())

	a.SetValue("5")
	b.Commit()
	assert.True(t, math.IsNaN(b.Value()), "pending value must not leak across sessions")
	a.Commit()
	assert.Equal(t, 5.0, a.Value())
}

// =============================================================================
// SETVALUE / COMMIT TESTS
// =============================================================================

func TestSetValue_DoesNotCommit(t *testing.T) {
	s := newState(t, Options{})
	s.SetValue("42")
	assert.Equal(t, "42", s.InputValue())
	assert.True(t, math.IsNaN(s.Value()))

	s.Commit()
	assert.Equal(t, 42.0, s.Value())
	assert.Equal(t, "42", s.InputValue())
}

func TestSetValue_OutOfRangeNeverChangesValue(t *testing.T) {
	s := newState(t, Options{Range: Range{Min: 0, Max: 100}, DefaultValue: Float(10)})
	s.SetValue("150")
	assert.Equal(t, "150", s.InputValue())
	assert.Equal(t, 10.0, s.Value())

	s.Commit()
	assert.Equal(t, 10.0, s.Value(), "out-of-range text is never promoted")
	assert.Equal(t, "10", s.InputValue())
}

func TestSetValue_KeepsLastValidPending(t *testing.T) {
	s := newState(t, Options{Range: Range{Min: 0, Max: 100}})
	s.SetValue("5")
	s.SetValue("5x0")
	assert.Equal(t, "50", s.InputValue())
	s.SetValue("500")
	s.Commit()
	assert.Equal(t, 50.0, s.Value())
}

func TestSetValue_RoundsToFormatterPrecision(t *testing.T) {
	f := numfmt.MustNew("en-US", numfmt.Options{MaximumFractionDigits: numfmt.Int(2)})
	s := newState(t, Options{Formatter: f})
	s.SetValue("1.23456")
	s.Commit()
	assert.Equal(t, 1.23, s.Value())
	assert.Equal(t, "1.23", s.InputValue())
}

func TestCommit_Empty(t *testing.T) {
	s := newState(t, Options{DefaultValue: Float(3)})
	s.SetValue("")
	s.Commit()
	assert.True(t, math.IsNaN(s.Value()))
	assert.Equal(t, "", s.InputValue())
	assert.Equal(t, "", s.TextValue())
}

func TestCommit_UnparseableRestoresDisplay(t *testing.T) {
	s := newState(t, Options{DefaultValue: Float(7)})
	s.SetValue("-")
	assert.Equal(t, "-", s.InputValue())
	s.Commit()
	assert.Equal(t, 7.0, s.Value())
	assert.Equal(t, "7", s.InputValue())
}

func TestCommit_SnapsToStep(t *testing.T) {
	s := newState(t, Options{Range: Range{Min: 0, Max: 10, Step: 0.5}})
	s.SetValue("7.3")
	s.Commit()
	assert.Equal(t, 7.5, s.Value())
	assert.Equal(t, "7.5", s.InputValue())
}

func TestCommit_WithoutStepOnlyClamps(t *testing.T) {
	s := newState(t, Options{Range: Range{Min: 0, Max: 10}})
	s.SetValue("7.3")
	s.Commit()
	assert.Equal(t, 7.3, s.Value())
}

func TestSetValue_StripsMinusWhenRangeIsNonNegative(t *testing.T) {
	s := newState(t, Options{Range: Range{Min: 0, Max: 100}})
	s.SetValue("-")
	assert.Equal(t, "", s.InputValue())
	s.SetValue("-12")
	assert.Equal(t, "12", s.InputValue())
}

func TestSetValue_GermanLocale(t *testing.T) {
	s := newState(t, Options{Formatter: numfmt.MustNew("de-DE", numfmt.Options{})})
	s.SetValue("1.234,5")
	s.Commit()
	assert.Equal(t, 1234.5, s.Value())
	assert.Equal(t, "1.234,5", s.InputValue())
}

func TestSetValue_Currency(t *testing.T) {
	f := numfmt.MustNew("en-US", numfmt.Options{Style: numfmt.StyleCurrency, Currency: "USD"})
	s := newState(t, Options{Formatter: f})
	s.SetValue(f.Format(1234.5))
	s.Commit()
	assert.Equal(t, 1234.5, s.Value())
	assert.Equal(t, f.Format(1234.5), s.InputValue())
}

func TestSetValue_Percent(t *testing.T) {
	f := numfmt.MustNew("en-US", numfmt.Options{Style: numfmt.StylePercent})
	s := newState(t, Options{Formatter: f, Range: Range{Min: 0, Max: 1, Step: 0.01}})
	s.SetValue("45")
	s.Commit()
	assert.Equal(t, 0.45, s.Value())
	assert.Equal(t, "45%", s.InputValue())

	s.Increment()
	assert.Equal(t, 0.46, s.Value())
}

// =============================================================================
// NUMERAL SYSTEM TESTS
// =============================================================================

func TestSetValue_HanDecimalSwitchesNumeralSystem(t *testing.T) {
	s := newState(t, Options{})
	s.SetValue("一二")
	assert.Equal(t, numeral.HanDecimal.ID(), s.NumberingSystem().ID())
	assert.Equal(t, "一二", s.InputValue())

	s.SetValue("一二3")
	assert.Equal(t, numeral.HanDecimal.ID(), s.NumberingSystem().ID())
	assert.Equal(t, "一二", s.InputValue(), "only Han digits survive while typing Han")

	s.Commit()
	assert.Equal(t, 12.0, s.Value())
	assert.Equal(t, "一二", s.InputValue())

	s.Increment()
	assert.Equal(t, 13.0, s.Value())
	assert.Equal(t, "一三", s.InputValue())
}

func TestSetValue_RedetectsFromWholeString(t *testing.T) {
	s := newState(t, Options{})
	s.SetValue("١٢")
	assert.Equal(t, numeral.ArabicIndic.ID(), s.NumberingSystem().ID())

	s.SetValue("12")
	assert.Equal(t, numeral.Latin.ID(), s.NumberingSystem().ID())
}

func TestSetValue_ArabicIndicRoundTrip(t *testing.T) {
	arab := numfmt.MustNew("en-US-u-nu-arab", numfmt.Options{})
	s := newState(t, Options{})

	s.SetValue("١٬٢٣٤")
	assert.Equal(t, "١٬٢٣٤", s.InputValue())
	s.Commit()
	assert.Equal(t, 1234.0, s.Value())
	assert.Equal(t, arab.Format(1234), s.InputValue())
	assert.Equal(t, "١٬٢٣٤", s.InputValue())
	assert.Equal(t, "1,234", s.TextValue())
}

func TestSetValue_ArabicIndicDecimalSeparator(t *testing.T) {
	for _, locale := range []string{"en-US", "ar-EG", "de-DE"} {
		t.Run(locale, func(t *testing.T) {
			s := newState(t, Options{Formatter: numfmt.MustNew(locale, numfmt.Options{})})

			s.SetValue("١٢٫٥")
			assert.Equal(t, "١٢٫٥", s.InputValue())
			assert.Equal(t, numeral.ArabicIndic.ID(), s.NumberingSystem().ID())
			s.Commit()
			assert.Equal(t, 12.5, s.Value())
			assert.Equal(t, numfmt.MustNew(locale+"-u-nu-arab", numfmt.Options{}).Format(12.5), s.InputValue())
		})
	}
}

func TestSetValue_SwitchingBackToLatinRestoresSeparators(t *testing.T) {
	s := newState(t, Options{})
	s.SetValue("١٢٫٥")
	s.SetValue("1.5")
	assert.Equal(t, numeral.Latin.ID(), s.NumberingSystem().ID())
	assert.Equal(t, "1.5", s.InputValue())
	s.Commit()
	assert.Equal(t, 1.5, s.Value())
}

// =============================================================================
// STEP TESTS
// =============================================================================

func TestIncrement_ClampExample(t *testing.T) {
	s := newState(t, Options{Range: Range{Min: 0, Max: 10, Step: 1}})

	s.Increment()
	assert.Equal(t, 0.0, s.Value(), "first increment from empty seeds the minimum")

	for i := 0; i < 9; i++ {
		s.Increment()
	}
	assert.Equal(t, 9.0, s.Value())

	s.Increment()
	assert.Equal(t, 10.0, s.Value())

	s.Increment()
	s.Increment()
	assert.Equal(t, 10.0, s.Value())
	assert.False(t, s.CanIncrement())
	assert.True(t, s.CanDecrement())
}

func TestDecrement_DecimalStep(t *testing.T) {
	s := newState(t, Options{Range: Range{Min: -MaxSafeInteger, Max: MaxSafeInteger, Step: 0.1}, DefaultValue: Float(10)})
	s.Decrement()
	assert.Equal(t, 9.9, s.Value())
	assert.Equal(t, "9.9", s.InputValue())
}

func TestIncrementDecrement_ReturnsExactly(t *testing.T) {
	for _, start := range []float64{0.3, 1.7, -2.2, 100.9, 0.05} {
		for _, step := range []float64{0.1, 0.05, 0.25} {
			r := Range{Min: -1000, Max: 1000, Step: step}
			snapped := SnapToStep(start, r, step)
			s := newState(t, Options{Range: r, DefaultValue: Float(snapped)})

			s.Increment()
			s.Decrement()
			assert.Equal(t, snapped, s.Value(), "start %v step %v", snapped, step)

			s.Decrement()
			s.Increment()
			assert.Equal(t, snapped, s.Value(), "start %v step %v", snapped, step)
		}
	}
}

func TestIncrement_SeedRules(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		inc  bool
		want float64
	}{
		{"unbounded increment", Unbounded(), true, 0},
		{"unbounded decrement", Unbounded(), false, 0},
		{"increment seeds min", Range{Min: 5, Max: 10}, true, 5},
		{"decrement seeds max", Range{Min: 5, Max: 10}, false, 10},
		{"increment without min seeds max", Range{Min: -MaxSafeInteger, Max: 10}, true, 10},
		{"decrement without max seeds min", Range{Min: 5, Max: MaxSafeInteger}, false, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newState(t, Options{Range: tc.r})
			if tc.inc {
				s.Increment()
			} else {
				s.Decrement()
			}
			assert.Equal(t, tc.want, s.Value())
		})
	}
}

func TestIncrement_UsesPendingValue(t *testing.T) {
	s := newState(t, Options{Range: Range{Min: 0, Max: 100}, DefaultValue: Float(1)})
	s.SetValue("41")
	s.Increment()
	assert.Equal(t, 42.0, s.Value())
	assert.Equal(t, "42", s.InputValue())

	// The pending value was consumed.
	s.Increment()
	assert.Equal(t, 43.0, s.Value())
}

func TestIncrementToMaxAndDecrementToMin(t *testing.T) {
	s := newState(t, Options{Range: Range{Min: 1, Max: 10, Step: 2}, DefaultValue: Float(5)})
	s.SetValue("3")

	s.IncrementToMax()
	assert.Equal(t, 9.0, s.Value(), "largest value on the grid from 1 with step 2")

	s.DecrementToMin()
	assert.Equal(t, 1.0, s.Value())
}

func TestReadOnly(t *testing.T) {
	s := newState(t, Options{DefaultValue: Float(5), ReadOnly: true})
	s.SetValue("9")
	s.Commit()
	s.Increment()
	s.DecrementToMin()
	assert.Equal(t, 5.0, s.Value())
	assert.Equal(t, "5", s.InputValue())
	assert.False(t, s.CanIncrement())
	assert.False(t, s.CanDecrement())
}

// =============================================================================
// NOTIFICATION AND CONTROLLED VALUE TESTS
// =============================================================================

func TestOnChange(t *testing.T) {
	var got []float64
	s := newState(t, Options{
		Range:    Range{Min: 0, Max: 10},
		OnChange: func(v float64) { got = append(got, v) },
	})

	s.Commit() // empty -> empty: silent
	s.SetValue("")
	s.Commit() // still silent
	assert.Empty(t, got)

	s.Increment()
	s.Increment()
	s.SetValue("1")
	s.Commit() // 1 -> 1: unchanged, silent
	s.SetValue("")
	s.Commit()
	s.SetValue("")
	s.Commit()

	require.Len(t, got, 3)
	assert.Equal(t, 0.0, got[0])
	assert.Equal(t, 1.0, got[1])
	assert.True(t, math.IsNaN(got[2]))
}

func TestControlled(t *testing.T) {
	var reported []float64
	s := newState(t, Options{
		Value: Float(5),
		OnChange: func(v float64) {
			reported = append(reported, v)
		},
	})
	assert.True(t, s.Controlled())

	s.Increment()
	assert.Equal(t, []float64{6}, reported)
	assert.Equal(t, 5.0, s.Value(), "controlled value only moves from outside")
	assert.Equal(t, "5", s.InputValue())

	s.SetControlledValue(6)
	assert.Equal(t, 6.0, s.Value())
	assert.Equal(t, "6", s.InputValue())
	assert.Len(t, reported, 1, "SetControlledValue does not notify")
}

func TestControlled_OwnerAcceptsChange(t *testing.T) {
	var s *State
	s = newState(t, Options{
		Value:    Float(1),
		OnChange: func(v float64) { s.SetControlledValue(v) },
	})
	s.SetValue("12.5")
	s.Commit()
	assert.Equal(t, 12.5, s.Value())
	assert.Equal(t, "12.5", s.InputValue())
}

// =============================================================================
// CONFIGURATION CHANGE TESTS
// =============================================================================

func TestSetFormatter_Reformats(t *testing.T) {
	s := newState(t, Options{DefaultValue: Float(1234.5)})
	s.SetFormatter(numfmt.MustNew("de-DE", numfmt.Options{}))
	assert.Equal(t, "1.234,5", s.InputValue())
	assert.Equal(t, ",", s.Symbols().Decimal)
}

func TestSetRange_RederivesSymbols(t *testing.T) {
	s := newState(t, Options{})
	assert.Equal(t, "-", s.Symbols().MinusSign)

	require.NoError(t, s.SetRange(Range{Min: 0, Max: 5}))
	assert.Empty(t, s.Symbols().MinusSign)
	assert.Equal(t, 0.0, s.MinValue())
	assert.Equal(t, 5.0, s.MaxValue())

	assert.ErrorIs(t, s.SetRange(Range{Min: 5, Max: 0}), ErrInvalidRange)
}

func TestValidate(t *testing.T) {
	s := newState(t, Options{Range: Range{Min: 0, Max: 100}})
	assert.True(t, s.Validate("12.5"))
	assert.False(t, s.Validate("-1"))
	assert.False(t, s.Validate("1x"))
}

// =============================================================================
// LOGGING TESTS
// =============================================================================

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := newState(t, Options{Logger: zap.New(core)})
	s.Increment()

	entries := logs.FilterMessage("numberfield value committed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "increment", fields["op"])
	assert.Equal(t, s.ID(), fields["session"])
}
