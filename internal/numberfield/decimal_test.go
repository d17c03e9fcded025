// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package numberfield

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// DECIMAL-SAFE ARITHMETIC TESTS
// =============================================================================

func TestAddDecimal(t *testing.T) {
	tests := []struct {
		a, b float64
		want float64
	}{
		{0.1, 0.2, 0.3},
		{1.1, 2.2, 3.3},
		{10, 0.1, 10.1},
		{-0.1, -0.2, -0.3},
		{0.7, 0.1, 0.8},
		{1, 2, 3},
		{1.005, 0.001, 1.006},
		{123456.789, 0.011, 123456.8},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, AddDecimal(tc.a, tc.b), "AddDecimal(%v, %v)", tc.a, tc.b)
	}
}

func TestSubDecimal(t *testing.T) {
	assert.Equal(t, 9.9, SubDecimal(10, 0.1))
	assert.Equal(t, 0.1, SubDecimal(0.3, 0.2))
	assert.Equal(t, -0.1, SubDecimal(0.2, 0.3))
	assert.Equal(t, 1.0, SubDecimal(1.1, 0.1))
}

func TestAddDecimal_RepeatedStepsDoNotDrift(t *testing.T) {
	v := 0.0
	for i := 0; i < 100; i++ {
		v = AddDecimal(v, 0.1)
	}
	assert.Equal(t, 10.0, v)

	for i := 0; i < 100; i++ {
		v = SubDecimal(v, 0.1)
	}
	assert.Equal(t, 0.0, v)
}

func TestAddDecimal_SpecialValues(t *testing.T) {
	assert.True(t, math.IsNaN(AddDecimal(math.NaN(), 0.1)))
	assert.True(t, math.IsInf(AddDecimal(math.Inf(1), 0.1), 1))
	// Operands too precise to scale fall back to float addition.
	assert.InDelta(t, 1e15+0.125, AddDecimal(1e15, 0.125), 1e-3)
}

func TestFractionDigits(t *testing.T) {
	assert.Equal(t, 0, fractionDigits(10))
	assert.Equal(t, 1, fractionDigits(0.1))
	assert.Equal(t, 3, fractionDigits(-2.125))
	assert.Equal(t, 7, fractionDigits(1e-7))
}

func TestModDecimal(t *testing.T) {
	assert.Equal(t, 0.0, modDecimal(9.9, 0.1))
	assert.Equal(t, 0.05, modDecimal(0.35, 0.1))
	assert.Equal(t, -0.5, modDecimal(-2.5, 1))
}
