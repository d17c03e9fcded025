// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package numberfield

import "math"

// =============================================================================
// CLAMP AND STEP SNAPPING
// =============================================================================

// Clamp limits v to [r.Min, r.Max] without snapping.
func Clamp(v float64, r Range) float64 {
	if math.IsNaN(v) {
		return v
	}
	return math.Min(math.Max(v, r.Min), r.Max)
}

// SnapToStep clamps v into r and then moves it to the nearest point of the
// step grid. The grid starts at r.Min, or at 0 when the range has no lower
// bound. Halfway values round away from the grid origin. A snapped value that
// falls outside r is moved one step back inside.
func SnapToStep(v float64, r Range, step float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	v = Clamp(v, r)
	if step <= 0 {
		return v
	}

	origin := 0.0
	if r.HasMin() {
		origin = r.Min
	}
	precision := fractionDigits(step)
	if p := fractionDigits(origin); p > precision {
		precision = p
	}

	remainder := modDecimal(SubDecimal(v, origin), step)
	var snapped float64
	if math.Abs(remainder)*2 >= step {
		snapped = AddDecimal(v, math.Copysign(SubDecimal(step, math.Abs(remainder)), remainder))
	} else {
		snapped = SubDecimal(v, remainder)
	}
	snapped = roundToPrecision(snapped, precision)

	if snapped > r.Max {
		snapped = roundToPrecision(SubDecimal(snapped, step), precision)
	}
	if snapped < r.Min {
		snapped = roundToPrecision(AddDecimal(snapped, step), precision)
	}
	if !r.Contains(snapped) {
		// The step is wider than the range; only the origin is on the grid.
		return Clamp(origin, r)
	}
	return snapped
}
