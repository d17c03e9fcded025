// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package numfmt

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/jeranaias/numfield/internal/numeral"
)

// =============================================================================
// PARSER
// =============================================================================

// Parser reads text written in a Formatter's locale and style back to a
// number. Digits of any supported numeral system are accepted.
type Parser struct {
	f *Formatter
}

// NewParser returns a Parser for text produced by f.
func NewParser(f *Formatter) *Parser {
	return &Parser{f: f}
}

var (
	directionalMarks = strings.NewReplacer(
		"\u200e", "", "\u200f", "", "\u061c", "",
		"\u202a", "", "\u202b", "", "\u202c", "", "\u2066", "", "\u2067", "", "\u2069", "",
	)
	minusVariants = strings.NewReplacer("\u2212", "-", "\u2012", "-", "\u2013", "-", "\ufe63", "-", "\uff0d", "-")
	plusVariants  = strings.NewReplacer("\ufe62", "+", "\uff0b", "+")
	plainNumber   = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)
)

// sanitize strips everything but signs, digits, group and decimal
// separators. Accounting parentheses are removed and reported as negative.
func (p *Parser) sanitize(text string) (string, bool) {
	f := p.f
	s := strings.TrimSpace(directionalMarks.Replace(text))

	parens := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") && len(s) >= 2 {
		parens = true
		s = s[1 : len(s)-1]
	}

	switch f.opts.Style {
	case StyleCurrency:
		s = strings.ReplaceAll(s, directionalMarks.Replace(f.cur.label), "")
		if code := strings.ToUpper(f.opts.Currency); code != "" {
			s = strings.ReplaceAll(s, code, "")
		}
	case StylePercent:
		s = strings.NewReplacer("%", "", "\u066a", "", "\ufe6a", "", "\uff05", "").Replace(s)
	case StyleUnit:
		if f.opts.Unit != "" {
			s = strings.ReplaceAll(s, f.opts.Unit, "")
		}
	}

	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	if minus := directionalMarks.Replace(f.sym.minus); minus != "" && minus != "-" {
		s = strings.ReplaceAll(s, minus, "-")
	}
	s = minusVariants.Replace(s)
	s = plusVariants.Replace(s)
	return s, parens
}

// separators returns the group and decimal separators with directional
// marks removed. A whitespace group separator is reported as empty since
// sanitize already dropped it.
func (p *Parser) separators() (group, decimal string) {
	group = directionalMarks.Replace(p.f.sym.group)
	if strings.TrimSpace(group) == "" {
		group = ""
	}
	return group, directionalMarks.Replace(p.f.sym.decimal)
}

// Parse returns the number written in text, or NaN when text is not a
// complete number.
func (p *Parser) Parse(text string) float64 {
	s, parens := p.sanitize(text)
	group, decimal := p.separators()
	if group != "" {
		s = strings.ReplaceAll(s, group, "")
	}
	if decimal != "" && decimal != "." {
		s = strings.Replace(s, decimal, ".", 1)
	}
	s = numeral.ToLatin(s)
	if !plainNumber.MatchString(s) {
		return math.NaN()
	}

	negative := parens
	switch s[0] {
	case '-':
		negative = !negative
		s = s[1:]
	case '+':
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if p.f.opts.Style == StylePercent {
		intPart, fracPart = shiftPoint(intPart, fracPart, -2)
	}
	if intPart == "" {
		intPart = "0"
	}
	if fracPart != "" {
		intPart += "." + fracPart
	}
	v, err := strconv.ParseFloat(intPart, 64)
	if err != nil {
		return math.NaN()
	}
	if negative {
		v = -v
	}
	return v
}

// IsValidPartialNumber reports whether text could become a number in
// [min, max] as the user keeps typing. A lone sign or a trailing decimal
// separator is valid; a sign the range cannot hold is not.
func (p *Parser) IsValidPartialNumber(text string, min, max float64) bool {
	s, parens := p.sanitize(text)
	if parens && min >= 0 {
		return false
	}
	group, decimal := p.separators()

	switch {
	case strings.HasPrefix(s, "-"):
		if min >= 0 {
			return false
		}
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		if max <= 0 {
			return false
		}
		s = s[1:]
	}

	if group != "" && strings.HasPrefix(s, group) {
		return false
	}
	if decimal != "" && strings.Contains(s, decimal) && p.f.maxFrac == 0 {
		return false
	}
	if group != "" {
		s = strings.ReplaceAll(s, group, "")
	}
	if decimal != "" {
		s = strings.Replace(s, decimal, "", 1)
	}
	s = strings.Map(func(r rune) rune {
		if _, ok := numeral.DigitValue(r); ok {
			return -1
		}
		return r
	}, s)
	return s == ""
}

// NumberingSystem returns the numeral system text is written in.
func (p *Parser) NumberingSystem(text string) numeral.System {
	sys, _ := numeral.Detect(text)
	return sys
}
