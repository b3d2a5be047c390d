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

package paths

import (
	"math"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/chart/errs"
	"seehuhn.de/go/chart/ranges"
)

// PointOpts configures a [Points] builder.
type PointOpts struct {
	// Size is the outer diameter of a marker, including its outline, in
	// device pixels.
	Size float64

	// Width is the width of the marker outline in device pixels.  If it is
	// zero, the markers are only filled.
	Width float64

	// Filter, if set, lists the sample indices to draw.  Otherwise all
	// defined samples in the index range are drawn.
	Filter []int
}

// Points returns a builder which draws a circular marker at every sample.
// The clip region of the result is the plot area, extended by one marker
// diameter on every side.
func Points(opts PointOpts) Builder {
	return func(in *Input) (*Result, error) {
		const op = "paths.Points"
		if !(opts.Size > 0) || opts.Width < 0 || opts.Width > opts.Size {
			return nil, errs.Invalid(op, "Size", "must be positive and at least the outline width")
		}
		s, err := prepare(op, in)
		if err != nil {
			return nil, err
		}

		width := ranges.RoundDec(opts.Width, 3)
		rad := (opts.Size - opts.Width) / 2
		dia := ranges.RoundDec(2*rad, 3)

		f := s.Frame
		clip := &path.Data{}
		f.Prims.Rect(clip, f.XOff-dia, f.YOff-dia, f.XDim+2*dia, f.YDim+2*dia)

		fill := &path.Data{}
		draw := func(i int) {
			if i < 0 || i >= len(s.Keys) || !s.Vals.Defined(i) {
				return
			}
			x := s.x(i)
			y := s.y(s.Vals.Vals[i])
			f.Prims.Arc(fill, x, y, rad, 0, 2*math.Pi)
			f.Prims.Close(fill)
		}
		if opts.Filter != nil {
			for _, i := range opts.Filter {
				draw(i)
			}
		} else {
			for i := s.Idx0; i <= s.Idx1; i++ {
				draw(i)
			}
		}
		if err := s.err(); err != nil {
			return nil, err
		}

		res := &Result{Fill: fill, Clip: clip, Flags: ClipFill | ClipStroke}
		if width > 0 {
			res.Stroke = fill
		}
		return res, nil
	}
}
