// seehuhn.de/go/chart - scales, ticks and path geometry for charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package ticks chooses axis increments and enumerates tick positions.
//
// [FindIncr] selects the smallest increment from a catalog whose on-screen
// spacing is at least a given number of pixels.  The split functions then
// list the tick values for a scale range: [Linear] for linear and ordinal
// scales, [Log] for logarithmic scales, [Asinh] for inverse hyperbolic sine
// scales and [Time] for time scales.
package ticks

import (
	"math"

	"seehuhn.de/go/chart/incr"
	"seehuhn.de/go/chart/ranges"
)

// Found is the result of an increment search.
// The zero value means that no increment qualified.
type Found struct {
	Incr  float64 // the increment, in data units
	Space float64 // the distance between adjacent ticks, in pixels
}

// FindIncr returns the smallest increment from cat for which adjacent ticks
// over [min, max] are at least minSpace pixels apart when the range covers
// dim pixels.  Increments which would need more than 17 significant digits
// to print are skipped.
func FindIncr(min, max float64, cat incr.Catalog, dim, minSpace float64) Found {
	delta := max - min
	if !(delta > 0) || !(dim > 0) || math.IsInf(delta, 0) || len(cat) == 0 {
		return Found{}
	}

	digits := intDigits(min)
	if d := intDigits(max); d > digits {
		digits = d
	}
	for i := cat.Closest(minSpace / dim * delta); i < len(cat); i++ {
		step := cat[i]
		space := dim * step.Value / delta
		dec := 0
		if step.Value < 5 {
			dec = step.Dec
		}
		if space >= minSpace && digits+dec <= maxDigits {
			return Found{Incr: step.Value, Space: space}
		}
	}
	return Found{}
}

// intDigits returns the number of digits before the decimal point.
func intDigits(v float64) int {
	a := math.Abs(math.Trunc(v))
	if a < 1 {
		return 1
	}
	return int(math.Floor(ranges.LogBase(a, 10))) + 1
}

// Linear returns the multiples of f.Incr in [min, max].  If forceMin is set,
// the ticks start at min instead.  Tick values are rounded to the precision
// of the increment.
func Linear(min, max float64, f Found, cat incr.Catalog, forceMin bool) []float64 {
	if !(f.Incr > 0) || !(max >= min) {
		return nil
	}
	dec := cat.Dec(f.Incr)

	v := min
	if !forceMin {
		v = ranges.RoundDec(ranges.IncrRoundUp(min, f.Incr), dec)
	}

	var res []float64
	for v <= max {
		res = append(res, v+0) // +0 turns -0 into 0
		next := ranges.RoundDec(v+f.Incr, dec)
		if next <= v {
			break
		}
		v = next
	}
	return res
}

// numeric is used to snap logarithmic steps to their exact decimal values.
var numeric = incr.Numeric()

// snapDecimal returns the numeric catalog entry closest to v.
func snapDecimal(v float64) float64 {
	if v < numeric[0].Value || v > numeric[len(numeric)-1].Value {
		return v
	}
	return numeric[numeric.Closest(v)].Value
}

// Log returns the ticks of a logarithmic scale over [min, max].
//
// The ticks start at min and advance by the power of base just below the
// current tick, giving 1, 2, ..., 9, 10, 20, ... for base 10.  For base 10
// the steps are snapped to exact decimal values at every magnitude.
func Log(min, max, base float64) []float64 {
	if !(min > 0) || !(max >= min) || !(base > 1) || math.IsInf(max, 0) {
		return nil
	}
	decimal := base == 10

	step := ranges.Pow(base, math.Floor(ranges.LogBase(min, base)))
	nextMag := step * base
	if decimal {
		step = snapDecimal(step)
		nextMag = snapDecimal(nextMag)
	}

	var res []float64
	split := min
	for split <= max {
		res = append(res, split)
		next := split + step
		if decimal {
			if _, ok := numeric.Index(next); !ok {
				next = ranges.RoundDec(next, numeric.Dec(step))
			}
		}
		if next <= split {
			break
		}
		split = next

		if split >= nextMag {
			step = split
			nextMag = step * base
			if decimal {
				nextMag = snapDecimal(nextMag)
			}
		}
	}
	return res
}

// Asinh returns the ticks of an inverse hyperbolic sine scale over
// [min, max].
//
// Beyond the linear threshold, ticks are placed as for a logarithmic
// scale, mirrored on the negative side.  The linear region contributes 0
// and the thresholds themselves, where these lie within [min, max].
func Asinh(min, max, base, threshold float64) []float64 {
	if !(max >= min) || !(threshold > 0) || !(base > 1) {
		return nil
	}

	var res []float64
	if min < -threshold {
		neg := Log(math.Max(threshold, -max), -min, base)
		for i := len(neg) - 1; i >= 0; i-- {
			res = append(res, -neg[i])
		}
	} else if -threshold >= min && -threshold <= max {
		res = append(res, -threshold)
	}

	if min <= 0 && max >= 0 {
		res = append(res, 0)
	}

	if max > threshold {
		res = append(res, Log(math.Max(threshold, min), max, base)...)
	} else if threshold >= min && threshold <= max {
		res = append(res, threshold)
	}
	return res
}

// maxDigits is the number of significant decimal digits a float64 can
// represent reliably.
const maxDigits = 17
