// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package numfmt

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by New.
var (
	ErrUnknownCurrency            = errors.New("unknown currency")
	ErrMissingCurrency            = errors.New("currency style requires a currency code")
	ErrUnsupportedNumberingSystem = errors.New("unsupported numbering system")
	ErrInvalidFractionDigits      = errors.New("invalid fraction digits")
)

// =============================================================================
// STYLE
// =============================================================================

// Style selects how a number is decorated.
type Style int

const (
	StyleDecimal Style = iota
	StylePercent
	StyleCurrency
	StyleUnit
)

var styleNames = map[Style]string{
	StyleDecimal:  "decimal",
	StylePercent:  "percent",
	StyleCurrency: "currency",
	StyleUnit:     "unit",
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle converts a style name to a Style. The empty string is decimal.
func ParseStyle(name string) (Style, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return StyleDecimal, nil
	}
	for s, n := range styleNames {
		if n == name {
			return s, nil
		}
	}
	return StyleDecimal, fmt.Errorf("unknown style %q (expected decimal, percent, currency or unit)", name)
}

// =============================================================================
// SIGN AND CURRENCY DISPLAY
// =============================================================================

// SignDisplay controls when a sign is rendered.
type SignDisplay int

const (
	// SignAuto shows a sign for negative numbers only.
	SignAuto SignDisplay = iota
	// SignAlways shows a sign for every number, including zero.
	SignAlways
	// SignExceptZero shows a sign for every non-zero number.
	SignExceptZero
	// SignNever never shows a sign.
	SignNever
)

// ParseSignDisplay converts auto, always, exceptZero or never to a SignDisplay.
func ParseSignDisplay(name string) (SignDisplay, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return SignAuto, nil
	case "always":
		return SignAlways, nil
	case "exceptzero", "except_zero":
		return SignExceptZero, nil
	case "never":
		return SignNever, nil
	}
	return SignAuto, fmt.Errorf("unknown sign display %q", name)
}

// CurrencyDisplay selects how the currency is labelled.
type CurrencyDisplay int

const (
	CurrencySymbol CurrencyDisplay = iota
	CurrencyNarrowSymbol
	CurrencyCode
)

// ParseCurrencyDisplay converts symbol, narrowSymbol or code to a CurrencyDisplay.
func ParseCurrencyDisplay(name string) (CurrencyDisplay, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "symbol":
		return CurrencySymbol, nil
	case "narrowsymbol", "narrow_symbol", "narrow":
		return CurrencyNarrowSymbol, nil
	case "code":
		return CurrencyCode, nil
	}
	return CurrencySymbol, fmt.Errorf("unknown currency display %q", name)
}

// CurrencySign selects how negative currency amounts are written.
type CurrencySign int

const (
	// CurrencySignStandard writes negatives with the minus sign.
	CurrencySignStandard CurrencySign = iota
	// CurrencySignAccounting wraps negatives in parentheses.
	CurrencySignAccounting
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures a Formatter. Nil pointer fields take the style default.
type Options struct {
	Style           Style
	Currency        string // ISO 4217 code, required for StyleCurrency
	CurrencyDisplay CurrencyDisplay
	CurrencySign    CurrencySign
	Unit            string // label appended for StyleUnit, e.g. "km"
	SignDisplay     SignDisplay

	MinimumFractionDigits *int
	MaximumFractionDigits *int
	UseGrouping           *bool

	// NumberingSystem is a CLDR id (latn, arab, hanidec). Empty selects the
	// locale's default, which may also be given with a -u-nu- extension.
	NumberingSystem string
}

// Int returns a pointer to n, for the optional Options fields.
func Int(n int) *int { return &n }

// Bool returns a pointer to b, for the optional Options fields.
func Bool(b bool) *bool { return &b }

// fractionDefaults returns the style's default fraction digit bounds.
func fractionDefaults(style Style, currencyScale int) (minFrac, maxFrac int) {
	switch style {
	case StylePercent:
		return 0, 0
	case StyleCurrency:
		return currencyScale, currencyScale
	default:
		return 0, 3
	}
}

// resolveFractionDigits merges explicit fraction digit options over defaults.
func resolveFractionDigits(opts Options, currencyScale int) (int, int, error) {
	minFrac, maxFrac := fractionDefaults(opts.Style, currencyScale)
	switch {
	case opts.MinimumFractionDigits != nil && opts.MaximumFractionDigits != nil:
		minFrac, maxFrac = *opts.MinimumFractionDigits, *opts.MaximumFractionDigits
		if minFrac > maxFrac {
			return 0, 0, fmt.Errorf("%w: minimum %d exceeds maximum %d", ErrInvalidFractionDigits, minFrac, maxFrac)
		}
	case opts.MinimumFractionDigits != nil:
		minFrac = *opts.MinimumFractionDigits
		if maxFrac < minFrac {
			maxFrac = minFrac
		}
	case opts.MaximumFractionDigits != nil:
		maxFrac = *opts.MaximumFractionDigits
		if minFrac > maxFrac {
			minFrac = maxFrac
		}
	}
	if minFrac < 0 || maxFrac > maxFractionDigits {
		return 0, 0, fmt.Errorf("%w: must be within 0..%d", ErrInvalidFractionDigits, maxFractionDigits)
	}
	return minFrac, maxFrac, nil
}

// maxFractionDigits bounds fraction digits to what a float64 can carry.
const maxFractionDigits = 20
