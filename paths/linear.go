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

import "math"

// decimateRatio is the minimum number of samples per key-axis pixel for
// which Linear reduces each pixel column to its extreme values.
const decimateRatio = 4

// Linear connects the samples of a series by straight line segments.
// The line is interrupted at null samples unless SpanGaps is set.
//
// If Decimate is set and the series has at least four samples per pixel
// along the key axis, the samples falling into each pixel column are replaced by their entry,
// minimum, maximum and exit values.  This keeps the size of the output
// proportional to the size of the plot, while preserving the visual
// envelope of the data.
func Linear(in *Input) (*Result, error) {
	s, err := prepare("paths.Linear", in)
	if err != nil {
		return nil, err
	}
	idx0, idx1, ok := s.Vals.defined(s.Idx0, s.Idx1)
	if !ok {
		return empty(ClipFill), nil
	}

	t := newTracer(s.Frame.Prims)
	if s.Decimate && float64(idx1-idx0+1) >= decimateRatio*s.Frame.XDim {
		s.decimate(t, idx0, idx1)
	} else {
		for i := s.first(idx0, idx1); i >= idx0 && i <= idx1; i += s.dir {
			if !s.Vals.Defined(i) {
				if s.Vals.IsNull(i) && !s.SpanGaps {
					t.gap()
				}
				continue
			}
			t.lineTo(s.x(i), s.y(s.Vals.Vals[i]))
		}
	}
	if err := s.err(); err != nil {
		return nil, err
	}

	res := &Result{Stroke: t.p, Flags: ClipFill}
	if s.wantFill() {
		res.Fill = t.fill(s.baseline())
	}
	res.Gaps, res.Clip = s.gapClip(idx0, idx1, 0, 0)
	x0 := t.runs[0].x0
	x1 := t.runs[len(t.runs)-1].x1
	y0 := s.y(s.Vals.Vals[s.first(idx0, idx1)])
	res.Band = bandClips(s, t.p, x0, y0, x1)
	return res, nil
}

// decimate traces the series, merging all samples which fall into the
// same pixel column.
func (s *series) decimate(t *tracer, idx0, idx1 int) {
	var (
		open  bool // the current column has samples
		accX  float64
		inY   float64
		minY  float64
		maxY  float64
		outY  float64
		first = true
	)
	flush := func() {
		if !open {
			return
		}
		open = false
		if minY == maxY {
			return
		}
		if inY != minY && outY != minY {
			t.lineTo(accX, s.y(minY))
		}
		if inY != maxY && outY != maxY {
			t.lineTo(accX, s.y(maxY))
		}
		t.lineTo(accX, s.y(outY))
	}

	for i := s.first(idx0, idx1); i >= idx0 && i <= idx1; i += s.dir {
		x := math.Round(s.px.Pos(s.Keys[i]))
		if first || x != accX {
			flush()
			accX = x
			first = false
		}

		if !s.Vals.Defined(i) {
			if s.Vals.IsNull(i) && !s.SpanGaps {
				flush()
				t.gap()
			}
			continue
		}

		v := s.Vals.Vals[i]
		if !open {
			t.lineTo(x, s.y(v))
			inY, minY, maxY, outY = v, v, v, v
			open = true
			continue
		}
		outY = v
		if v < minY {
			minY = v
		} else if v > maxY {
			maxY = v
		}
	}
	flush()
}
