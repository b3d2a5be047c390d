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

// Package ranges computes padded and snapped axis extents from data extrema.
//
// [Num] handles linear scales, [Log] and [Asinh] expand extrema to whole
// magnitudes for logarithmic and inverse hyperbolic sine scales.  The
// package also provides the decimal rounding helpers used throughout the
// tick and path code: [RoundDec], [FixFloat] and the increment-aligned
// [IncrRoundUp]/[IncrRoundDn].
package ranges

import (
	"math"

	"seehuhn.de/go/chart/errs"
)

// Span is a closed interval [Min, Max].
type Span struct {
	Min, Max float64
}

// SoftMode controls when a bound snaps to its soft value.
type SoftMode int

const (
	// SoftIgnore disables snapping.
	SoftIgnore SoftMode = iota

	// SoftAlways snaps whenever the data lies within the soft value.
	SoftAlways

	// SoftBeyond snaps only if the padded bound still lies within the
	// soft value.
	SoftBeyond

	// SoftUndershoot snaps only if padding would carry the bound past the
	// soft value.
	SoftUndershoot
)

// Bound is the range policy for one end of an interval.
type Bound struct {
	// Pad is the padding as a fraction of the data range.
	Pad float64

	// Hard is a limit the bound never crosses.  NaN means no limit.
	Hard float64

	// Soft is the value the bound snaps to, subject to Mode.
	// NaN means no soft value.
	Soft float64

	Mode SoftMode
}

// Policy describes how to turn data extrema into an axis range.
type Policy struct {
	Min, Max Bound
}

// DefaultPolicy returns the policy used for value scales: 10% padding on
// both sides, snapping to zero if the padding would cross it.
func DefaultPolicy() Policy {
	b := Bound{Pad: DefaultPad, Hard: math.NaN(), Soft: 0, Mode: SoftUndershoot}
	return Policy{Min: b, Max: b}
}

// PadPolicy returns a policy with equal padding on both sides.  If soft is
// set, bounds snap to zero if the padding would carry them across.
func PadPolicy(pad float64, soft bool) Policy {
	b := Bound{Pad: pad, Hard: math.NaN(), Soft: math.NaN()}
	if soft {
		b.Soft = 0
		b.Mode = SoftUndershoot
	}
	return Policy{Min: b, Max: b}
}

// DefaultPad is the padding fraction of [DefaultPolicy].
const DefaultPad = 0.1

// Num computes the range of a linear scale for data in [min, max].
//
// The padded bounds are rounded outwards to a tenth of the order of
// magnitude of the data range.  Data which is flat, either exactly or up to
// floating point noise, is padded by its own magnitude instead.  If the
// result is [0, 0], Num returns [0, 100].
func Num(min, max float64, p Policy) (Span, error) {
	if err := checkExtrema("ranges.Num", min, max); err != nil {
		return Span{}, err
	}

	padMin, padMax := p.Min.Pad, p.Max.Pad
	hardMin := orInf(p.Min.Hard, math.Inf(-1))
	hardMax := orInf(p.Max.Hard, math.Inf(1))
	softMin := orInf(p.Min.Soft, math.Inf(1))
	softMax := orInf(p.Max.Soft, math.Inf(-1))

	delta := max - min
	scalarMax := math.Max(math.Abs(min), math.Abs(max))
	magGap := math.Abs(LogBase(scalarMax, 10) - LogBase(delta, 10))

	if delta < flatDelta || magGap > noiseMagnitudes {
		delta = 0

		// Zero-flat data pads by a tiny delta, so that a soft bound of
		// mode SoftBeyond is not pushed outwards by the 1e3 fallback.
		if min == 0 || max == 0 {
			delta = flatDelta
			if p.Min.Mode == SoftBeyond && !math.IsInf(softMin, 1) {
				padMin = 0
			}
			if p.Max.Mode == SoftBeyond && !math.IsInf(softMax, -1) {
				padMax = 0
			}
		}
	}

	nonZeroDelta := delta
	if nonZeroDelta == 0 {
		nonZeroDelta = scalarMax
	}
	if nonZeroDelta == 0 {
		nonZeroDelta = 1e3
	}
	base := Pow(10, math.Floor(LogBase(nonZeroDelta, 10)))

	// lower bound
	pad := nonZeroDelta * padMin
	if delta == 0 {
		pad = nonZeroDelta * flatPad(min)
	}
	newMin := RoundDec(IncrRoundDn(min-pad, base/10), 24)
	snapMin := math.Inf(1)
	if min >= softMin && (p.Min.Mode == SoftAlways ||
		p.Min.Mode == SoftUndershoot && newMin <= softMin ||
		p.Min.Mode == SoftBeyond && newMin >= softMin) {
		snapMin = softMin
	}
	var lo float64
	if newMin < snapMin && min >= snapMin {
		lo = snapMin
	} else {
		lo = math.Min(snapMin, newMin)
	}
	lo = math.Max(hardMin, lo)

	// upper bound
	pad = nonZeroDelta * padMax
	if delta == 0 {
		pad = nonZeroDelta * flatPad(max)
	}
	newMax := RoundDec(IncrRoundUp(max+pad, base/10), 24)
	snapMax := math.Inf(-1)
	if max <= softMax && (p.Max.Mode == SoftAlways ||
		p.Max.Mode == SoftUndershoot && newMax >= softMax ||
		p.Max.Mode == SoftBeyond && newMax <= softMax) {
		snapMax = softMax
	}
	var hi float64
	if newMax > snapMax && max <= snapMax {
		hi = snapMax
	} else {
		hi = math.Max(snapMax, newMax)
	}
	hi = math.Min(hardMax, hi)

	if lo == 0 && hi == 0 {
		hi = 100
	}
	return Span{Min: lo + 0, Max: hi + 0}, nil
}

// flatPad is the padding fraction for flat data with extremum v.
func flatPad(v float64) float64 {
	if v == 0 {
		return 0.1
	}
	return 1
}

// Log computes the range of a logarithmic scale for positive data in
// [min, max].
//
// Unless tight is set, both bounds are expanded to whole powers of base.
// Otherwise they are rounded outwards to a multiple of the power of base
// just below them.  Base 2 always uses whole powers.  Flat data is widened
// by one factor of base in each direction.
func Log(min, max, base float64, tight bool) (Span, error) {
	const op = "ranges.Log"
	if err := checkExtrema(op, min, max); err != nil {
		return Span{}, err
	}
	if !(base > 1) || math.IsInf(base, 0) {
		return Span{}, errs.Invalid(op, "base", "must be greater than 1")
	}
	if min <= 0 {
		return Span{}, errs.Invalid(op, "min", "must be positive")
	}
	if base == 2 {
		tight = false
	}

	if min == max {
		min /= base
		max *= base
	}
	return Span{
		Min: bracket(min, base, false, tight),
		Max: bracket(max, base, true, tight),
	}, nil
}

// Asinh computes the range of an inverse hyperbolic sine scale for data in
// [min, max].
//
// Bounds beyond the linear threshold are bracketed as in [Log].  A bound
// inside the linear region expands away from the data: to -threshold for
// negative minima and +threshold for positive maxima, and to 0 otherwise.
// Zero bounds stay at exactly 0.
func Asinh(min, max, base, threshold float64, tight bool) (Span, error) {
	const op = "ranges.Asinh"
	if err := checkExtrema(op, min, max); err != nil {
		return Span{}, err
	}
	if !(base > 1) || math.IsInf(base, 0) {
		return Span{}, errs.Invalid(op, "base", "must be greater than 1")
	}
	if !(threshold > 0) || math.IsInf(threshold, 0) {
		return Span{}, errs.Invalid(op, "threshold", "must be positive")
	}
	if base == 2 {
		tight = false
	}

	if min == max {
		switch {
		case min == 0:
			return Span{Min: -threshold, Max: threshold}, nil
		case min < 0:
			min *= base
			max /= base
		default:
			min /= base
			max *= base
		}
	}

	lo := 0.0
	switch {
	case min == 0:
	case math.Abs(min) < threshold:
		if min < 0 {
			lo = -threshold
		}
	default:
		lo = bracket(min, base, false, tight)
	}

	hi := 0.0
	switch {
	case max == 0:
	case math.Abs(max) < threshold:
		if max > 0 {
			hi = threshold
		}
	default:
		hi = bracket(max, base, true, tight)
	}
	return Span{Min: lo, Max: hi}, nil
}

// bracket expands the non-zero bound v of a logarithmic range outwards,
// downwards for a lower bound and upwards for an upper bound.
func bracket(v, base float64, upper, tight bool) float64 {
	sign := 1.0
	if v < 0 {
		sign = -1
	}
	l := LogBase(math.Abs(v), base)

	// growing outwards means growing the magnitude at a positive upper
	// or a negative lower bound
	var exp float64
	if (sign > 0) == upper {
		exp = math.Ceil(l)
	} else {
		exp = math.Floor(l)
	}
	incr := Pow(base, exp)
	if base == 10 && exp < 0 {
		incr = RoundDec(incr, int(-exp))
	}

	switch {
	case !tight:
		return sign * incr
	case upper:
		return IncrRoundUp(v, incr)
	default:
		return IncrRoundDn(v, incr)
	}
}

func checkExtrema(op string, min, max float64) error {
	switch {
	case math.IsNaN(min) || math.IsInf(min, 0):
		return errs.Invalid(op, "min", "not a finite number")
	case math.IsNaN(max) || math.IsInf(max, 0):
		return errs.Invalid(op, "max", "not a finite number")
	case min > max:
		return errs.Invalid(op, "min", "greater than max")
	}
	return nil
}

// orInf returns def if v is NaN.
func orInf(v, def float64) float64 {
	if math.IsNaN(v) {
		return def
	}
	return v
}

const (
	// flatDelta is the data range below which data is treated as flat.
	flatDelta = 1e-24

	// noiseMagnitudes is the number of orders of magnitude by which the
	// data range may be smaller than the data values before the range
	// is attributed to floating point noise.
	noiseMagnitudes = 10
)
