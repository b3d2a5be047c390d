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

// Package paths converts series data into drawable path geometry.
//
// A [Builder] turns the samples of one series into a [Result], which holds
// the stroke and fill outlines together with the clip regions needed to
// mask gaps in the data and to restrict band fills.  Builders are
// available for straight line segments ([Linear]), step functions
// ([Stepped]), bar charts ([Bars]), monotone cubic splines ([Spline]) and
// point markers ([Points]).
//
// All geometry is computed in key/value axis coordinates and mapped to
// the screen by the [orient.Frame] of the input, so that every builder
// works unchanged for horizontal and vertical charts.
package paths

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/chart/errs"
	"seehuhn.de/go/chart/orient"
	"seehuhn.de/go/chart/scale"
)

// Flags tell the renderer which parts of a series are restricted by the
// band clip of the series.
type Flags uint8

const (
	ClipFill Flags = 1 << iota
	ClipStroke
)

// Gap is a range of key-axis pixel positions where the data has a gap.
type Gap struct {
	Lo, Hi float64
}

// Input describes one series for a path builder.
type Input struct {
	Frame orient.Frame

	// X is the key scale and Y the value scale of the series.  Both must
	// be resolved.
	X, Y *scale.Scale

	Keys []float64
	Vals *Column

	// Idx0 and Idx1 give the inclusive range of sample indices to draw.
	Idx0, Idx1 int

	// Width is the stroke width in device pixels.
	Width float64

	// Fill requests a fill outline, closed towards FillTo.
	Fill bool

	// FillTo, if set, overrides the default fill baseline.  It is called
	// with the band fill direction of the series.
	FillTo func(bandFillDir int) float64

	// Role is the part the series plays in the bands of the chart, as
	// computed by [BandDirs].
	Role Role

	// SpanGaps connects the line across null samples.
	SpanGaps bool

	// AlignGaps selects which pixel edges a gap extends to: -1 snaps only
	// the start of a gap to the previous sample, +1 only the end to the
	// next sample, and 0 both.
	AlignGaps int

	// Gaps, if set, can adjust the gaps found in the data.
	Gaps func([]Gap) []Gap

	// PxAlign rounds positions to whole device pixels.
	PxAlign bool

	// Decimate allows Linear to reduce dense data to the extremes of each
	// pixel column.
	Decimate bool
}

// Result is the geometry of one series.
type Result struct {
	Stroke *path.Data
	Fill   *path.Data

	// Clip, if set, is the region outside the gaps of the series.
	Clip *path.Data
	Gaps []Gap

	// Band holds the band clip regions of the series, if the series is
	// the "to" edge of a band: one region for a single direction, two
	// for both.
	Band []*path.Data

	Flags Flags

	// FillByColor and StrokeByColor are set by builders which draw
	// individually colored shapes.
	FillByColor   map[string]*path.Data
	StrokeByColor map[string]*path.Data
}

// A Builder converts a series into path geometry.
type Builder func(in *Input) (*Result, error)

// series is the validated state shared by all builders.
type series struct {
	*Input
	px, py *scale.Projector

	// dir is +1 if key-axis pixels grow with the sample index, and -1
	// otherwise.
	dir int
}

// prepare validates the input and sets up the projections.
func prepare(op string, in *Input) (*series, error) {
	switch {
	case in.Frame.Prims == nil:
		return nil, errs.Invalid(op, "Frame", "missing primitives")
	case in.X == nil:
		return nil, errs.Invalid(op, "X", "missing key scale")
	case in.Y == nil:
		return nil, errs.Invalid(op, "Y", "missing value scale")
	case in.Vals == nil:
		return nil, errs.Invalid(op, "Vals", "missing value column")
	case len(in.Keys) != in.Vals.Len():
		return nil, errs.Invalid(op, "Vals", "length differs from key column")
	case in.Idx0 < 0 || in.Idx1 >= len(in.Keys):
		return nil, errs.Invalid(op, "Idx0", "index range outside the data")
	case math.IsNaN(in.Width) || in.Width < 0:
		return nil, errs.Invalid(op, "Width", "must be non-negative")
	}

	px, err := in.X.Project(in.Frame.XOff, in.Frame.XDim)
	if err != nil {
		return nil, err
	}
	py, err := in.Y.Project(in.Frame.YOff, in.Frame.YDim)
	if err != nil {
		return nil, err
	}
	dir := 1
	if px.Flipped() {
		dir = -1
	}
	return &series{Input: in, px: px, py: py, dir: dir}, nil
}

// round applies pixel alignment.
func (s *series) round(v float64) float64 {
	if s.PxAlign {
		return math.Round(v)
	}
	return v
}

// x returns the key-axis pixel position of sample i.
func (s *series) x(i int) float64 {
	return s.round(s.px.Pos(s.Keys[i]))
}

// y returns the value-axis pixel position of v.
func (s *series) y(v float64) float64 {
	return s.round(s.py.Pos(v))
}

// first and last return the sample indices at the start and end of the
// iteration order.
func (s *series) first(idx0, idx1 int) int {
	if s.dir == 1 {
		return idx0
	}
	return idx1
}

func (s *series) last(idx0, idx1 int) int {
	if s.dir == 1 {
		return idx1
	}
	return idx0
}

// err collects conversion errors from the projections.
func (s *series) err() error {
	if err := s.px.Err(); err != nil {
		return err
	}
	return s.py.Err()
}

// baseline returns the value-axis pixel position towards which fills are
// closed.
func (s *series) baseline() float64 {
	var v float64
	if s.FillTo != nil {
		v = s.FillTo(s.Role.FillDir)
	} else {
		v = FillTo(s.Y, s.Role.FillDir)
	}
	return s.y(v)
}

// wantFill reports whether a fill outline is needed.
func (s *series) wantFill() bool {
	return s.Fill || s.Role.FillDir != 0
}

// gapClip finds the gaps of the series and returns them together with the
// matching clip region.  The offsets are added to the gap edges.  Gaps
// which the offsets or the Gaps hook leave empty are dropped, and the rest
// are sorted and merged.
func (s *series) gapClip(idx0, idx1 int, lo, hi float64) ([]Gap, *path.Data) {
	if s.SpanGaps {
		return nil, nil
	}
	pixel := func(v float64) float64 { return s.round(s.px.Pos(v)) }
	gaps := FindGaps(s.Keys, s.Vals, idx0, idx1, pixel, s.AlignGaps)
	if lo != 0 || hi != 0 {
		for i := range gaps {
			gaps[i].Lo += lo
			gaps[i].Hi += hi
		}
	}
	if s.Gaps != nil {
		gaps = s.Gaps(gaps)
	}
	gaps = mergeGaps(slices.DeleteFunc(gaps, func(g Gap) bool { return !(g.Hi > g.Lo) }))
	if len(gaps) == 0 {
		gaps = nil
	}
	return gaps, ClipGaps(gaps, s.Frame)
}

// empty is the result for a series without drawable samples.
func empty(flags Flags) *Result {
	return &Result{Stroke: &path.Data{}, Flags: flags}
}
