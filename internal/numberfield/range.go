// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package numberfield

import (
	"errors"
	"fmt"
	"math"
)

// MaxSafeInteger is the largest integer a float64 holds exactly. Unbounded
// range ends are represented by ±MaxSafeInteger.
const MaxSafeInteger = 1<<53 - 1

// ErrInvalidRange is returned for a range with Min > Max, a negative step or
// a NaN bound.
var ErrInvalidRange = errors.New("invalid numeric range")

// Range bounds the values a field accepts. Step 0 means no step was
// configured: commits only clamp, and step operations move by 1.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

// Unbounded returns the range covering every safe value.
func Unbounded() Range {
	return Range{Min: -MaxSafeInteger, Max: MaxSafeInteger}
}

// NewRange builds a validated Range. Use math.Inf for an open end.
func NewRange(min, max, step float64) (Range, error) {
	r := Range{Min: min, Max: max, Step: step}.normalize()
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// normalize replaces infinite bounds with the safe integer sentinels.
func (r Range) normalize() Range {
	if math.IsInf(r.Min, -1) || r.Min < -MaxSafeInteger {
		r.Min = -MaxSafeInteger
	}
	if math.IsInf(r.Max, 1) || r.Max > MaxSafeInteger {
		r.Max = MaxSafeInteger
	}
	return r
}

// Validate reports whether r is a usable range.
func (r Range) Validate() error {
	switch {
	case math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsNaN(r.Step):
		return fmt.Errorf("%w: NaN bound", ErrInvalidRange)
	case r.Min > r.Max:
		return fmt.Errorf("%w: min %v exceeds max %v", ErrInvalidRange, r.Min, r.Max)
	case r.Step < 0 || math.IsInf(r.Step, 0):
		return fmt.Errorf("%w: step %v", ErrInvalidRange, r.Step)
	}
	return nil
}

// HasMin reports whether the lower end is a real bound.
func (r Range) HasMin() bool { return r.Min > -MaxSafeInteger }

// HasMax reports whether the upper end is a real bound.
func (r Range) HasMax() bool { return r.Max < MaxSafeInteger }

// Contains reports whether v lies within [Min, Max].
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// StepOrDefault returns the configured step, or 1.
func (r Range) StepOrDefault() float64 {
	if r.Step > 0 {
		return r.Step
	}
	return 1
}

func (r Range) String() string {
	lo, hi := "-∞", "∞"
	if r.HasMin() {
		lo = fmt.Sprint(r.Min)
	}
	if r.HasMax() {
		hi = fmt.Sprint(r.Max)
	}
	if r.Step > 0 {
		return fmt.Sprintf("[%s, %s] step %v", lo, hi, r.Step)
	}
	return fmt.Sprintf("[%s, %s]", lo, hi)
}
