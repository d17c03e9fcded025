// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package numfmt

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"

	"github.com/jeranaias/numfield/internal/numeral"
)

// =============================================================================
// FORMATTER
// =============================================================================

// Formatter renders numbers for one locale and set of options. A Formatter is
// immutable and safe for concurrent use.
type Formatter struct {
	tag     language.Tag
	opts    Options
	sym     localeSymbols
	digits  numeral.System
	cur     currencyInfo
	minFrac int
	maxFrac int
	group   bool
}

// ResolvedOptions describes the settings a Formatter actually uses.
type ResolvedOptions struct {
	Locale                string
	NumberingSystem       string
	Style                 Style
	Currency              string
	MinimumFractionDigits int
	MaximumFractionDigits int
	UseGrouping           bool
	SignDisplay           SignDisplay
}

// New builds a Formatter for the BCP 47 locale. An empty locale means "en-US".
func New(locale string, opts Options) (*Formatter, error) {
	if locale == "" {
		locale = "en-US"
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	f := &Formatter{
		tag:   tag,
		opts:  opts,
		sym:   symbolsFor(tag),
		group: opts.UseGrouping == nil || *opts.UseGrouping,
	}

	f.digits = f.sym.numbering
	nu := opts.NumberingSystem
	if nu == "" {
		nu = tag.TypeForKey("nu")
	}
	if nu != "" {
		sys, ok := numeral.Lookup(nu)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedNumberingSystem, nu)
		}
		f.digits = sys
		f.sym = symbolsFor(numberingTag(tag, sys))
	}

	if opts.Style == StyleCurrency {
		if opts.Currency == "" {
			return nil, ErrMissingCurrency
		}
		f.cur, err = lookupCurrency(tag, opts.Currency, opts.CurrencyDisplay)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrUnknownCurrency, opts.Currency, err)
		}
	}

	f.minFrac, f.maxFrac, err = resolveFractionDigits(opts, f.cur.scale)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// MustNew is like New but panics on error. Intended for tests and fixed
// configurations.
func MustNew(locale string, opts Options) *Formatter {
	f, err := New(locale, opts)
	if err != nil {
		panic(err)
	}
	return f
}

// ResolvedOptions reports the effective settings.
func (f *Formatter) ResolvedOptions() ResolvedOptions {
	return ResolvedOptions{
		Locale:                f.tag.String(),
		NumberingSystem:       f.digits.ID(),
		Style:                 f.opts.Style,
		Currency:              strings.ToUpper(f.opts.Currency),
		MinimumFractionDigits: f.minFrac,
		MaximumFractionDigits: f.maxFrac,
		UseGrouping:           f.group,
		SignDisplay:           f.opts.SignDisplay,
	}
}

// Options returns the options the Formatter was built with.
func (f *Formatter) Options() Options { return f.opts }

// NumberingSystem returns the digit set used for output.
func (f *Formatter) NumberingSystem() numeral.System { return f.digits }

// WithNumberingSystem returns a copy of f rendering digits in sys. The
// separators and signs are those the locale uses with sys, so the copy
// formats exactly like New(locale+"-u-nu-"+sys, ...).
func (f *Formatter) WithNumberingSystem(sys numeral.System) *Formatter {
	if sys.ID() == f.digits.ID() {
		return f
	}
	clone := *f
	clone.digits = sys
	clone.opts.NumberingSystem = sys.ID()
	clone.sym = symbolsFor(numberingTag(f.tag, sys))
	return &clone
}

// numberingTag returns tag with its "nu" extension set to sys.
func numberingTag(tag language.Tag, sys numeral.System) language.Tag {
	if tag.TypeForKey("nu") == sys.ID() {
		return tag
	}
	if t, err := tag.SetTypeForKey("nu", sys.ID()); err == nil {
		return t
	}
	return tag
}

// SymbolProbe returns a copy of f that always renders at least one fraction
// digit, so formatting a non-integer exposes the decimal separator.
func (f *Formatter) SymbolProbe() *Formatter {
	if f.maxFrac > 0 {
		return f
	}
	clone := *f
	clone.maxFrac = 1
	return &clone
}

// Format renders v as a string.
func (f *Formatter) Format(v float64) string {
	var b strings.Builder
	for _, p := range f.FormatToParts(v) {
		b.WriteString(p.Value)
	}
	return b.String()
}

// FormatToParts renders v as a sequence of typed parts.
func (f *Formatter) FormatToParts(v float64) []Part {
	if math.IsNaN(v) {
		return []Part{{Type: PartNaN, Value: "NaN"}}
	}

	var body []Part
	zero := v == 0
	if math.IsInf(v, 0) {
		body = []Part{{Type: PartInfinity, Value: "∞"}}
	} else {
		intPart, fracPart := decimalDigits(v)
		if f.opts.Style == StylePercent {
			intPart, fracPart = shiftPoint(intPart, fracPart, 2)
		}
		intPart, fracPart = roundFraction(intPart, fracPart, f.minFrac, f.maxFrac)
		zero = isZeroDigits(intPart, fracPart)
		body = f.numberParts(intPart, fracPart)
	}

	negative := v < 0 && !zero
	var sign *Part
	switch f.opts.SignDisplay {
	case SignAuto:
		if negative {
			sign = &Part{Type: PartMinusSign, Value: f.sym.minus}
		}
	case SignAlways, SignExceptZero:
		switch {
		case negative:
			sign = &Part{Type: PartMinusSign, Value: f.sym.minus}
		case !zero || f.opts.SignDisplay == SignAlways:
			sign = &Part{Type: PartPlusSign, Value: f.sym.plus}
		}
	}

	accounting := f.opts.Style == StyleCurrency &&
		f.opts.CurrencySign == CurrencySignAccounting &&
		negative && f.opts.SignDisplay != SignNever
	if accounting {
		sign = nil
	}

	var parts []Part
	if sign != nil {
		parts = append(parts, *sign)
	}
	switch f.opts.Style {
	case StylePercent:
		parts = append(parts, affixParts(f.sym.percentPrefix, PartPercentSign, "%")...)
		parts = append(parts, body...)
		parts = append(parts, affixParts(f.sym.percentSuffix, PartPercentSign, "%")...)
	case StyleCurrency:
		cur := Part{Type: PartCurrency, Value: f.cur.label}
		if f.cur.suffix {
			parts = append(parts, body...)
			parts = append(parts, Part{Type: PartLiteral, Value: "\u00a0"}, cur)
		} else {
			parts = append(parts, cur)
			if f.opts.CurrencyDisplay == CurrencyCode {
				parts = append(parts, Part{Type: PartLiteral, Value: "\u00a0"})
			}
			parts = append(parts, body...)
		}
	case StyleUnit:
		parts = append(parts, body...)
		if f.opts.Unit != "" {
			parts = append(parts, Part{Type: PartLiteral, Value: " "}, Part{Type: PartUnit, Value: f.opts.Unit})
		}
	default:
		parts = append(parts, body...)
	}

	if accounting {
		parts = append([]Part{{Type: PartLiteral, Value: "("}}, parts...)
		parts = append(parts, Part{Type: PartLiteral, Value: ")"})
	}
	return parts
}

// numberParts renders the digits with grouping and the decimal separator.
func (f *Formatter) numberParts(intPart, fracPart string) []Part {
	var parts []Part
	groups := []string{intPart}
	if f.group && f.sym.group != "" {
		groups = groupDigits(intPart, f.sym.primaryGroup, f.sym.secondaryGroup)
	}
	for i, g := range groups {
		if i > 0 {
			parts = append(parts, Part{Type: PartGroup, Value: f.sym.group})
		}
		parts = append(parts, Part{Type: PartInteger, Value: numeral.FromLatin(g, f.digits)})
	}
	if fracPart != "" {
		parts = append(parts,
			Part{Type: PartDecimal, Value: f.sym.decimal},
			Part{Type: PartFraction, Value: numeral.FromLatin(fracPart, f.digits)},
		)
	}
	return parts
}

// affixParts splits an affix such as " %" into literal and typed parts.
func affixParts(affix string, typ PartType, marker string) []Part {
	if affix == "" {
		return nil
	}
	i := strings.Index(affix, marker)
	if i < 0 {
		return []Part{{Type: PartLiteral, Value: affix}}
	}
	var parts []Part
	if i > 0 {
		parts = append(parts, Part{Type: PartLiteral, Value: affix[:i]})
	}
	parts = append(parts, Part{Type: typ, Value: marker})
	if rest := affix[i+len(marker):]; rest != "" {
		parts = append(parts, Part{Type: PartLiteral, Value: rest})
	}
	return parts
}
