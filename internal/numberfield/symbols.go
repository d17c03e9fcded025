// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package numberfield

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jeranaias/numfield/internal/numfmt"
)

// =============================================================================
// SYMBOL RESOLVER
// =============================================================================

// Symbols are the locale symbols a field accepts while the user types.
type Symbols struct {
	// MinusSign is empty when the range holds no negative value.
	MinusSign string
	// PlusSign is empty when the range holds no positive value or the
	// formatter never writes a plus sign.
	PlusSign string
	Decimal  string

	// AllowedClass is a regexp character class of every non-digit, non-sign
	// character the formatter emits.
	AllowedClass string
	// LiteralClass is AllowedClass without the decimal separator.
	LiteralClass string

	// Accounting is set when negatives are written in parentheses.
	Accounting bool

	allowed *regexp.Regexp
	literal *regexp.Regexp
}

// Probe values used to discover the symbols.
const (
	negativeSymbolProbe = -1000.1
	positiveSymbolProbe = 1000.1
)

// ResolveSymbols derives the accepted symbols from f and r. It has no side
// effects and returns equal results for equal inputs.
func ResolveSymbols(f *numfmt.Formatter, r Range) Symbols {
	probe := f.SymbolProbe()
	negative := probe.FormatToParts(negativeSymbolProbe)
	positive := probe.FormatToParts(positiveSymbolProbe)

	var sym Symbols
	sym.MinusSign, _ = numfmt.FindPart(negative, numfmt.PartMinusSign)
	sym.PlusSign, _ = numfmt.FindPart(positive, numfmt.PartPlusSign)
	sym.Decimal, _ = numfmt.FindPart(positive, numfmt.PartDecimal)

	opts := f.Options()
	if opts.Style == numfmt.StyleCurrency && opts.CurrencySign == numfmt.CurrencySignAccounting {
		sym.Accounting = true
		if sym.MinusSign == "" {
			sym.MinusSign = "-"
		}
	}

	if r.Min >= 0 {
		sym.MinusSign = ""
	}
	if r.Max <= 0 {
		sym.PlusSign = ""
	}

	var allowed, literal []rune
	seen := make(map[rune]bool)
	for _, p := range append(negative, positive...) {
		if p.IsDigits() || p.IsSign() || p.Type == numfmt.PartNaN || p.Type == numfmt.PartInfinity {
			continue
		}
		for _, c := range p.Value {
			if seen[c] {
				continue
			}
			seen[c] = true
			allowed = append(allowed, c)
			if p.Type != numfmt.PartDecimal {
				literal = append(literal, c)
			}
		}
	}

	sym.AllowedClass = characterClass(allowed)
	sym.LiteralClass = characterClass(literal)
	sym.allowed = compileClass(sym.AllowedClass)
	sym.literal = compileClass(sym.LiteralClass)
	return sym
}

// characterClass escapes every rune so separators such as '-' or ']' cannot
// change the meaning of the class.
func characterClass(runes []rune) string {
	if len(runes) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteByte('[')
	for _, r := range runes {
		fmt.Fprintf(&b, `\x{%x}`, r)
	}
	b.WriteByte(']')
	return b.String()
}

func compileClass(class string) *regexp.Regexp {
	if class == "" {
		return nil
	}
	return regexp.MustCompile(class)
}

// IsAllowed reports whether r is a non-digit character the formatter emits.
func (s Symbols) IsAllowed(r rune) bool {
	return s.allowed != nil && s.allowed.MatchString(string(r))
}

// IsLiteral reports whether r is decoration to drop before parsing.
func (s Symbols) IsLiteral(r rune) bool {
	return s.literal != nil && s.literal.MatchString(string(r))
}
