// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package numberfield

import (
	"math"
	"strconv"
	"strings"
)

// =============================================================================
// DECIMAL-SAFE ARITHMETIC
// =============================================================================

// fractionDigits counts the digits after the point in the shortest decimal
// form of v.
func fractionDigits(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// decimalScale returns 10^d where d is the larger fraction digit count of a
// and b. ok is false when the scaled operands would leave the range where
// float64 holds integers exactly.
func decimalScale(a, b float64) (scale float64, ok bool) {
	d := fractionDigits(a)
	if db := fractionDigits(b); db > d {
		d = db
	}
	scale = math.Pow10(d)
	if math.Abs(a*scale) > MaxSafeInteger || math.Abs(b*scale) > MaxSafeInteger {
		return scale, false
	}
	return scale, true
}

func isInteger(v float64) bool { return v == math.Trunc(v) }

// AddDecimal returns a+b computed on integers scaled by the operands' decimal
// precision, so 0.1+0.2 is 0.3.
func AddDecimal(a, b float64) float64 {
	sum := a + b
	if math.IsNaN(sum) || math.IsInf(sum, 0) || (isInteger(a) && isInteger(b)) {
		return sum
	}
	scale, ok := decimalScale(a, b)
	if !ok {
		return sum
	}
	return (math.Round(a*scale) + math.Round(b*scale)) / scale
}

// SubDecimal returns a-b with the same guarantees as AddDecimal.
func SubDecimal(a, b float64) float64 {
	return AddDecimal(a, -b)
}

// modDecimal returns the remainder of a/b, with the sign of a.
func modDecimal(a, b float64) float64 {
	if isInteger(a) && isInteger(b) {
		return math.Mod(a, b)
	}
	scale, ok := decimalScale(a, b)
	if !ok {
		return math.Mod(a, b)
	}
	return math.Mod(math.Round(a*scale), math.Round(b*scale)) / scale
}

// roundToPrecision rounds v to the given number of fraction digits.
func roundToPrecision(v float64, digits int) float64 {
	if digits <= 0 {
		return math.Round(v)
	}
	pow := math.Pow10(digits)
	if math.Abs(v*pow) > MaxSafeInteger {
		return v
	}
	return math.Round(v*pow) / pow
}
