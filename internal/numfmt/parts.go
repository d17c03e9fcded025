// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package numfmt

// PartType classifies a fragment of formatted output.
type PartType string

const (
	PartInteger     PartType = "integer"
	PartFraction    PartType = "fraction"
	PartGroup       PartType = "group"
	PartDecimal     PartType = "decimal"
	PartMinusSign   PartType = "minusSign"
	PartPlusSign    PartType = "plusSign"
	PartCurrency    PartType = "currency"
	PartPercentSign PartType = "percentSign"
	PartLiteral     PartType = "literal"
	PartNaN         PartType = "nan"
	PartInfinity    PartType = "infinity"
	PartUnit        PartType = "unit"
)

// Part is one typed fragment of formatted output.
type Part struct {
	Type  PartType `json:"type"`
	Value string   `json:"value"`
}

// IsDigits reports whether the part carries digits.
func (p Part) IsDigits() bool {
	return p.Type == PartInteger || p.Type == PartFraction
}

// IsSign reports whether the part is a minus or plus sign.
func (p Part) IsSign() bool {
	return p.Type == PartMinusSign || p.Type == PartPlusSign
}

// FindPart returns the value of the first part of type t.
func FindPart(parts []Part, t PartType) (string, bool) {
	for _, p := range parts {
		if p.Type == t {
			return p.Value, true
		}
	}
	return "", false
}
