// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package numeral classifies the digit script of numeric text and converts
// digits between the supported numeral systems.
package numeral

import "strings"

// =============================================================================
// NUMERAL SYSTEMS
// =============================================================================

// System is a script's set of ten digit glyphs, indexed 0-9.
type System struct {
	id     string
	name   string
	digits [10]rune
}

var (
	// Latin is the ASCII digit set 0-9.
	Latin = System{
		id:     "latn",
		name:   "Latin",
		digits: [10]rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'},
	}

	// ArabicIndic is the Arabic-Indic digit set ٠-٩.
	ArabicIndic = System{
		id:     "arab",
		name:   "Arabic-Indic",
		digits: [10]rune{'٠', '١', '٢', '٣', '٤', '٥', '٦', '٧', '٨', '٩'},
	}

	// HanDecimal is the positional Han digit set 〇-九.
	HanDecimal = System{
		id:     "hanidec",
		name:   "Han decimal",
		digits: [10]rune{'〇', '一', '二', '三', '四', '五', '六', '七', '八', '九'},
	}
)

// Systems lists every supported system in detection order. Ambiguous strings
// containing several scripts always resolve to the earliest entry.
var Systems = []System{ArabicIndic, HanDecimal, Latin}

// ID returns the CLDR numbering system identifier (latn, arab, hanidec).
func (s System) ID() string { return s.id }

// String returns a human readable name.
func (s System) String() string { return s.name }

// Digits returns the ten glyphs of the system, indexed by value.
func (s System) Digits() [10]rune { return s.digits }

// Digit reports the value of r if it is one of this system's digits.
func (s System) Digit(r rune) (int, bool) {
	for i, d := range s.digits {
		if d == r {
			return i, true
		}
	}
	return 0, false
}

// IsDigit reports whether r belongs to this system.
func (s System) IsDigit(r rune) bool {
	_, ok := s.Digit(r)
	return ok
}

// Lookup returns the system with the given CLDR id. The empty id maps to Latin.
func Lookup(id string) (System, bool) {
	if id == "" {
		return Latin, true
	}
	id = strings.ToLower(id)
	for _, s := range Systems {
		if s.id == id {
			return s, true
		}
	}
	return System{}, false
}

// =============================================================================
// DETECTION
// =============================================================================

// Detect returns the first system in Systems for which any rune of text is a
// digit. The boolean is false, and Latin is returned, when text has no digit
// of any known system.
func Detect(text string) (System, bool) {
	for _, s := range Systems {
		for _, r := range text {
			if s.IsDigit(r) {
				return s, true
			}
		}
	}
	return Latin, false
}

// DigitValue returns the value of r in whichever supported system contains it.
func DigitValue(r rune) (int, bool) {
	for _, s := range Systems {
		if v, ok := s.Digit(r); ok {
			return v, true
		}
	}
	return 0, false
}

// =============================================================================
// TRANSLITERATION
// =============================================================================

// ToLatin rewrites every digit of any supported system as its ASCII digit.
// Other runes are left untouched.
func ToLatin(text string) string {
	return strings.Map(func(r rune) rune {
		if v, ok := DigitValue(r); ok {
			return Latin.digits[v]
		}
		return r
	}, text)
}

// FromLatin rewrites ASCII digits in text with the glyphs of s.
func FromLatin(text string, s System) string {
	if s.id == Latin.id || s.id == "" {
		return text
	}
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return s.digits[r-'0']
		}
		return r
	}, text)
}
