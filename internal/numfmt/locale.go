// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package numfmt

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jeranaias/numfield/internal/numeral"
)

// =============================================================================
// LOCALE SYMBOLS
// =============================================================================

// localeSymbols are the number symbols of one locale, discovered by formatting
// probe values with x/text and taking the output apart.
type localeSymbols struct {
	minus   string
	plus    string
	decimal string
	group   string

	primaryGroup   int
	secondaryGroup int

	percentPrefix string
	percentSuffix string

	numbering numeral.System
}

var rootSymbols = localeSymbols{
	minus:          "-",
	plus:           "+",
	decimal:        ".",
	group:          ",",
	primaryGroup:   3,
	secondaryGroup: 3,
	percentSuffix:  "%",
	numbering:      numeral.Latin,
}

// negativeProbe has a seven digit integer part so both group sizes show up.
const negativeProbe = -1234567.1

var symbolCache sync.Map // language.Tag string -> localeSymbols

func symbolsFor(tag language.Tag) localeSymbols {
	key := tag.String()
	if cached, ok := symbolCache.Load(key); ok {
		return cached.(localeSymbols)
	}
	p := message.NewPrinter(tag)
	sym := decomposeDecimal(p.Sprint(number.Decimal(negativeProbe)))
	sym.percentPrefix, sym.percentSuffix = decomposePercent(p.Sprint(number.Percent(0.25)))
	symbolCache.Store(key, sym)
	return sym
}

func isProbeDigit(r rune) bool {
	if _, ok := numeral.DigitValue(r); ok {
		return true
	}
	return unicode.IsDigit(r)
}

// decomposeDecimal splits a formatted negativeProbe into its symbols.
func decomposeDecimal(s string) localeSymbols {
	var (
		runs   []string
		seps   []string
		prefix strings.Builder
		cur    strings.Builder
		sep    strings.Builder
		inNum  bool
	)
	for _, r := range s {
		switch {
		case isProbeDigit(r):
			if sep.Len() > 0 {
				seps = append(seps, sep.String())
				sep.Reset()
			}
			inNum = true
			cur.WriteRune(r)
		case !inNum:
			prefix.WriteRune(r)
		default:
			if cur.Len() > 0 {
				runs = append(runs, cur.String())
				cur.Reset()
			}
			sep.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		runs = append(runs, cur.String())
	}
	if len(runs) < 2 || len(seps) != len(runs)-1 {
		return rootSymbols
	}

	sym := rootSymbols
	sym.group = ""
	sym.primaryGroup, sym.secondaryGroup = 0, 0
	sym.decimal = seps[len(seps)-1]
	intRuns := runs[:len(runs)-1]
	if len(intRuns) > 1 {
		sym.group = seps[0]
		sym.primaryGroup = len([]rune(intRuns[len(intRuns)-1]))
		sym.secondaryGroup = sym.primaryGroup
		if len(intRuns) > 2 {
			sym.secondaryGroup = len([]rune(intRuns[len(intRuns)-2]))
		}
	}
	if minus := prefix.String(); minus != "" {
		sym.minus = minus
	}
	sym.plus = plusFromMinus(sym.minus)
	if sys, ok := numeral.Detect(s); ok {
		sym.numbering = sys
	}
	return sym
}

// plusFromMinus keeps any directional marks around the minus sign.
func plusFromMinus(minus string) string {
	for _, m := range []string{"-", "\u2212", "\u2012", "\u2013"} {
		if strings.Contains(minus, m) {
			return strings.Replace(minus, m, "+", 1)
		}
	}
	return "+"
}

// decomposePercent returns the text around the digits of a formatted percent.
func decomposePercent(s string) (prefix, suffix string) {
	first, last := -1, -1
	for i, r := range s {
		if isProbeDigit(r) {
			if first < 0 {
				first = i
			}
			last = i + len(string(r))
		}
	}
	if first < 0 {
		return "", "%"
	}
	return s[:first], s[last:]
}

// =============================================================================
// CURRENCY
// =============================================================================

// suffixCurrencyLanguages place the currency symbol after the amount.
var suffixCurrencyLanguages = map[string]bool{
	"bg": true, "cs": true, "da": true, "de": true, "el": true, "es": true,
	"et": true, "fi": true, "fr": true, "hr": true, "hu": true, "is": true,
	"it": true, "lt": true, "lv": true, "nb": true, "no": true, "pl": true,
	"pt": true, "ro": true, "ru": true, "sk": true, "sl": true, "sr": true,
	"sv": true, "uk": true, "vi": true,
}

func currencySuffix(tag language.Tag) bool {
	base, _ := tag.Base()
	if base.String() == "de" {
		// de-CH and de-LI keep the code in front.
		if region, _ := tag.Region(); region.String() == "CH" || region.String() == "LI" {
			return false
		}
	}
	if base.String() == "pt" {
		if region, _ := tag.Region(); region.String() == "BR" {
			return false
		}
	}
	return suffixCurrencyLanguages[base.String()]
}

type currencyInfo struct {
	label  string
	scale  int
	suffix bool
}

func lookupCurrency(tag language.Tag, code string, display CurrencyDisplay) (currencyInfo, error) {
	unit, err := currency.ParseISO(strings.ToUpper(code))
	if err != nil {
		return currencyInfo{}, err
	}
	p := message.NewPrinter(tag)
	var label string
	switch display {
	case CurrencyCode:
		label = unit.String()
	case CurrencyNarrowSymbol:
		label = p.Sprint(currency.NarrowSymbol(unit))
	default:
		label = p.Sprint(currency.Symbol(unit))
	}
	if label == "" {
		label = unit.String()
	}
	scale, _ := currency.Standard.Rounding(unit)
	return currencyInfo{
		label:  label,
		scale:  scale,
		suffix: currencySuffix(tag),
	}, nil
}
