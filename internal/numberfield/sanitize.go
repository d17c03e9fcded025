// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package numberfield

import (
	"strings"
	"unicode/utf8"

	"github.com/jeranaias/numfield/internal/numeral"
)

// =============================================================================
// INPUT SANITIZER
// =============================================================================

type tokenKind int

const (
	tokenOther tokenKind = iota
	tokenMinus
	tokenPlus
	tokenDecimal
)

// nextToken reads one sign, decimal separator or rune from s. A bare ASCII
// '-' or '+' stands for the locale's sign when that sign is accepted.
func nextToken(s string, sym Symbols) (kind tokenKind, text string, size int) {
	switch {
	case sym.MinusSign != "" && strings.HasPrefix(s, sym.MinusSign):
		return tokenMinus, sym.MinusSign, len(sym.MinusSign)
	case sym.PlusSign != "" && strings.HasPrefix(s, sym.PlusSign):
		return tokenPlus, sym.PlusSign, len(sym.PlusSign)
	case sym.Decimal != "" && strings.HasPrefix(s, sym.Decimal):
		return tokenDecimal, sym.Decimal, len(sym.Decimal)
	}
	r, n := utf8.DecodeRuneInString(s)
	switch {
	case r == '-' && sym.MinusSign != "":
		return tokenMinus, sym.MinusSign, n
	case r == '+' && sym.PlusSign != "":
		return tokenPlus, sym.PlusSign, n
	}
	return tokenOther, s[:n], n
}

// Sanitize cleans raw input for display and for parsing.
//
// The display text keeps only digits of sys, the accepted signs and the
// characters in sym.AllowedClass, with every sign and the decimal separator
// reduced to its first occurrence. The parse text additionally drops every
// sym.LiteralClass character, leaving signs, digits and the decimal separator.
func Sanitize(raw string, sym Symbols, sys numeral.System) (display, parse string) {
	var disp, ready strings.Builder
	var seenMinus, seenPlus, seenDecimal, parens bool

	for rest := raw; rest != ""; {
		kind, text, size := nextToken(rest, sym)
		rest = rest[size:]

		switch kind {
		case tokenMinus:
			if !seenMinus {
				seenMinus = true
				disp.WriteString(text)
				ready.WriteString(text)
			}
		case tokenPlus:
			if !seenPlus {
				seenPlus = true
				disp.WriteString(text)
				ready.WriteString(text)
			}
		case tokenDecimal:
			if !seenDecimal {
				seenDecimal = true
				disp.WriteString(text)
				ready.WriteString(text)
			}
		default:
			r, _ := utf8.DecodeRuneInString(text)
			switch {
			case sys.IsDigit(r):
				disp.WriteRune(r)
				ready.WriteRune(r)
			case sym.IsAllowed(r):
				disp.WriteRune(r)
				if r == '(' && sym.Accounting {
					parens = true
				}
				if !sym.IsLiteral(r) {
					ready.WriteRune(r)
				}
			}
		}
	}

	parse = ready.String()
	if parens && !seenMinus && sym.MinusSign != "" {
		parse = "-" + parse
	}
	return disp.String(), parse
}
