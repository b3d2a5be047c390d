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

// Package scale maps data values to normalised positions and pixels.
//
// A [Scale] is configured with a distribution and a range policy.  Once
// its domain has been set, using [Scale.SetRange] or [Scale.Fit], values
// can be converted to positions with [Scale.ValToPct] and [Scale.GetPos],
// and back with [Scale.PosToVal].  Path building code, which converts
// many values with the same geometry, uses a [Projector] instead.
package scale

import (
	"fmt"
	"math"

	"seehuhn.de/go/chart/errs"
	"seehuhn.de/go/chart/orient"
	"seehuhn.de/go/chart/ranges"
)

// Distr is the distribution of a scale.
type Distr int

const (
	Linear  Distr = iota + 1 // identity
	Ordinal                  // values are indices
	Log                      // logarithm to LogBase
	Asinh                    // asinh(v/AsinhThreshold)
	Custom                   // user-supplied Forward and Inverse
)

func (d Distr) String() string {
	switch d {
	case Linear:
		return "linear"
	case Ordinal:
		return "ordinal"
	case Log:
		return "log"
	case Asinh:
		return "asinh"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("Distr(%d)", int(d))
	}
}

// Scale describes how data values map to one axis of the plot area.
//
// The configuration fields may be changed freely, but changes only take
// effect at the next call to SetRange or Fit.
type Scale struct {
	Key   string
	Distr Distr

	// LogBase is the base of a Log or Asinh scale, normally 2 or 10.
	LogBase float64

	// AsinhThreshold is the half-width of the linear region of an Asinh
	// scale.
	AsinhThreshold float64

	// Dir is -1 for reversed scales, and +1 otherwise.
	Dir int

	// Ori is the screen direction along which the scale runs.
	Ori orient.Orientation

	// Time marks values as seconds since the epoch.
	Time bool

	// Range is the policy used by Fit for Linear, Ordinal and Custom
	// scales.
	Range ranges.Policy

	// Exact makes Fit use the data extrema without padding.  This is
	// used for key scales.
	Exact bool

	// FullMags makes Fit extend Log and Asinh ranges to whole powers of
	// LogBase.
	FullMags bool

	// Clamp, if set, replaces non-positive values on a Log scale.  It is
	// called with the value and the current domain.
	Clamp func(v, min, max float64) float64

	// Forward and Inverse define a Custom distribution.
	Forward, Inverse func(float64) float64

	state state
}

// state is the cached domain.  It is replaced as a whole by SetRange and
// Reset.
type state struct {
	resolved bool
	min, max float64 // domain
	tMin     float64 // transformed domain
	tMax     float64
}

// New returns a linear scale with the default configuration.
func New(key string) *Scale {
	return &Scale{
		Key:            key,
		Distr:          Linear,
		LogBase:        10,
		AsinhThreshold: 1,
		Dir:            1,
		Range:          ranges.DefaultPolicy(),
	}
}

// Resolved reports whether the domain of the scale is known.
func (s *Scale) Resolved() bool {
	return s.state.resolved
}

// Reset forgets the domain.
func (s *Scale) Reset() {
	s.state = state{}
}

// Min returns the lower end of the domain.
func (s *Scale) Min() float64 {
	return s.state.min
}

// Max returns the upper end of the domain.
func (s *Scale) Max() float64 {
	return s.state.max
}

// Reversed reports whether the scale runs against its screen axis.
func (s *Scale) Reversed() bool {
	return s.Dir == -1
}

// SetRange sets the domain of the scale to [min, max].
func (s *Scale) SetRange(min, max float64) error {
	const op = "scale.SetRange"
	switch {
	case math.IsNaN(min) || math.IsInf(min, 0):
		return errs.Invalid(op, "min", "not a finite number")
	case math.IsNaN(max) || math.IsInf(max, 0):
		return errs.Invalid(op, "max", "not a finite number")
	case min > max:
		return errs.Invalid(op, "min", "greater than max")
	}
	if err := s.check(op); err != nil {
		return err
	}
	if s.Distr == Log && min <= 0 {
		return errs.Scale(op, s.Key, "non-positive domain on log scale")
	}

	tMin, tMax := s.fwd(min), s.fwd(max)
	if math.IsNaN(tMin) || math.IsNaN(tMax) || math.IsInf(tMin, 0) || math.IsInf(tMax, 0) {
		return errs.Scale(op, s.Key, "transformed domain is not finite")
	}
	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	s.state = state{resolved: true, min: min, max: max, tMin: tMin, tMax: tMax}
	return nil
}

// Fit sets the domain from the data extrema, using the range policy for
// the distribution of the scale.
func (s *Scale) Fit(dataMin, dataMax float64) error {
	var span ranges.Span
	var err error
	switch {
	case s.Distr == Log:
		span, err = ranges.Log(dataMin, dataMax, s.LogBase, !s.FullMags)
	case s.Distr == Asinh:
		span, err = ranges.Asinh(dataMin, dataMax, s.LogBase, s.AsinhThreshold, !s.FullMags)
	case s.Exact && dataMin != dataMax:
		span = ranges.Span{Min: dataMin, Max: dataMax}
	case s.Exact:
		span, err = ranges.Num(dataMin, dataMax, ranges.PadPolicy(ranges.DefaultPad, true))
	default:
		span, err = ranges.Num(dataMin, dataMax, s.Range)
	}
	if err != nil {
		return err
	}
	return s.SetRange(span.Min, span.Max)
}

// check validates the configuration.
func (s *Scale) check(op string) error {
	switch s.Distr {
	case Linear, Ordinal:
	case Log:
		if !(s.LogBase > 1) {
			return errs.Invalid(op, "LogBase", "must be greater than 1")
		}
	case Asinh:
		if !(s.LogBase > 1) {
			return errs.Invalid(op, "LogBase", "must be greater than 1")
		}
		if !(s.AsinhThreshold > 0) {
			return errs.Invalid(op, "AsinhThreshold", "must be positive")
		}
	case Custom:
		if s.Forward == nil {
			return errs.Scale(op, s.Key, "custom scale without forward transform")
		}
	default:
		return errs.Invalid(op, "Distr", s.Distr.String())
	}
	if s.Dir != 1 && s.Dir != -1 {
		return errs.Invalid(op, "Dir", "must be 1 or -1")
	}
	return nil
}

// fwd applies the forward transform.  The value must be valid for the
// distribution.
func (s *Scale) fwd(v float64) float64 {
	switch s.Distr {
	case Log:
		return ranges.LogBase(v, s.LogBase)
	case Asinh:
		return math.Asinh(v / s.AsinhThreshold)
	case Custom:
		return s.Forward(v)
	default:
		return v
	}
}

// inv applies the inverse transform.
func (s *Scale) inv(t float64) float64 {
	switch s.Distr {
	case Log:
		return ranges.Pow(s.LogBase, t)
	case Asinh:
		return math.Sinh(t) * s.AsinhThreshold
	case Custom:
		return s.Inverse(t)
	default:
		return t
	}
}

// pct maps a transformed value to [0, 1].
func (st *state) pct(t float64) float64 {
	if st.tMax == st.tMin {
		return 0.5
	}
	return (t - st.tMin) / (st.tMax - st.tMin)
}

// ValToPct returns the relative position of v within the domain, where 0
// corresponds to the minimum and 1 to the maximum.  If the domain is a
// single point, the result is 0.5.
func (s *Scale) ValToPct(v float64) (float64, error) {
	const op = "scale.ValToPct"
	if !s.state.resolved {
		return 0, errs.Scale(op, s.Key, "range not resolved")
	}
	if s.Distr == Custom && s.Forward == nil {
		return 0, errs.Scale(op, s.Key, "custom scale without forward transform")
	}
	if s.Distr == Log && v <= 0 {
		if s.Clamp == nil {
			return 0, errs.Scale(op, s.Key, fmt.Sprintf("log of non-positive value %g", v))
		}
		v = s.Clamp(v, s.state.min, s.state.max)
		if v <= 0 {
			return 0, errs.Scale(op, s.Key, fmt.Sprintf("clamp returned non-positive value %g", v))
		}
	}
	return s.state.pct(s.fwd(v)), nil
}

// GetPos returns the pixel coordinate of v along an axis which starts at
// off and has length dim.  Horizontal scales grow to the right, vertical
// scales grow upwards.  Reversed scales run the other way.
func (s *Scale) GetPos(v, dim, off float64) (float64, error) {
	if !(dim > 0) {
		return 0, errs.Scale("scale.GetPos", s.Key, "zero plot dimension")
	}
	pct, err := s.ValToPct(v)
	if err != nil {
		return 0, err
	}
	if s.flipped() {
		pct = 1 - pct
	}
	return off + dim*pct, nil
}

// PosToVal returns the value at pixel coordinate pos.  Both pos and box
// must be given in the same units.
func (s *Scale) PosToVal(pos float64, box orient.Box) (float64, error) {
	const op = "scale.PosToVal"
	if !s.state.resolved {
		return 0, errs.Scale(op, s.Key, "range not resolved")
	}
	if s.Distr == Custom && s.Inverse == nil {
		return 0, errs.Scale(op, s.Key, "custom scale without inverse transform")
	}
	off, dim := box.Left, box.Width
	if s.Ori == orient.Vertical {
		off, dim = box.Top, box.Height
	}
	if !(dim > 0) {
		return 0, errs.Scale(op, s.Key, "zero plot dimension")
	}

	pct := (pos - off) / dim
	if s.flipped() {
		pct = 1 - pct
	}
	return s.inv(s.state.tMin + (s.state.tMax-s.state.tMin)*pct), nil
}

// flipped reports whether pixel coordinates decrease as values increase.
// This is the case for vertical scales, since screen coordinates grow
// downwards, unless the scale is reversed.
func (s *Scale) flipped() bool {
	return (s.Ori == orient.Vertical) != s.Reversed()
}
