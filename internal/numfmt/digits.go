// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// decimalDigits splits a non-negative finite float into the integer and
// fraction digits of its shortest round-tripping decimal form.
func decimalDigits(x float64) (intPart, fracPart string) {
	s := strconv.FormatFloat(math.Abs(x), 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// shiftPoint moves the decimal point by n places (right when positive).
func shiftPoint(intPart, fracPart string, n int) (string, string) {
	for ; n > 0; n-- {
		if fracPart == "" {
			intPart += "0"
			continue
		}
		intPart += fracPart[:1]
		fracPart = fracPart[1:]
	}
	for ; n < 0; n++ {
		if intPart == "" {
			fracPart = "0" + fracPart
			continue
		}
		fracPart = intPart[len(intPart)-1:] + fracPart
		intPart = intPart[:len(intPart)-1]
	}
	return trimLeadingZeros(intPart), fracPart
}

func trimLeadingZeros(s string) string {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return s
}

// roundFraction rounds half away from zero to at most maxFrac fraction digits
// and pads to at least minFrac. It operates on digit strings so the result is
// exactly what the shortest decimal form says, not the binary approximation.
func roundFraction(intPart, fracPart string, minFrac, maxFrac int) (string, string) {
	if len(fracPart) > maxFrac {
		roundUp := fracPart[maxFrac] >= '5'
		fracPart = fracPart[:maxFrac]
		if roundUp {
			digits := []byte(intPart + fracPart)
			i := len(digits) - 1
			for ; i >= 0; i-- {
				if digits[i] == '9' {
					digits[i] = '0'
					continue
				}
				digits[i]++
				break
			}
			if i < 0 {
				digits = append([]byte{'1'}, digits...)
			}
			split := len(digits) - len(fracPart)
			intPart, fracPart = string(digits[:split]), string(digits[split:])
		}
	}
	fracPart = strings.TrimRight(fracPart, "0")
	for len(fracPart) < minFrac {
		fracPart += "0"
	}
	return trimLeadingZeros(intPart), fracPart
}

// groupDigits inserts sep into the integer digits using the primary group
// size for the rightmost group and the secondary size for the rest.
func groupDigits(intPart string, primary, secondary int) []string {
	if primary <= 0 || len(intPart) <= primary {
		return []string{intPart}
	}
	if secondary <= 0 {
		secondary = primary
	}
	groups := []string{intPart[len(intPart)-primary:]}
	rest := intPart[:len(intPart)-primary]
	for len(rest) > secondary {
		groups = append([]string{rest[len(rest)-secondary:]}, groups...)
		rest = rest[:len(rest)-secondary]
	}
	return append([]string{rest}, groups...)
}

func isZeroDigits(intPart, fracPart string) bool {
	return strings.Trim(intPart, "0") == "" && strings.Trim(fracPart, "0") == ""
}
