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

	"seehuhn.de/go/chart/orient"
)

// Spline connects the samples of a series by a monotone cubic spline.
// Between two neighbouring samples the curve never leaves the value range
// spanned by them.  The curve is interrupted at null samples unless
// SpanGaps is set.
func Spline(in *Input) (*Result, error) {
	s, err := prepare("paths.Spline", in)
	if err != nil {
		return nil, err
	}
	idx0, idx1, ok := s.Vals.defined(s.Idx0, s.Idx1)
	if !ok {
		return empty(ClipFill), nil
	}

	t := newTracer(s.Frame.Prims)
	var xs, ys []float64
	flush := func() {
		monotoneCubic(t, xs, ys)
		xs, ys = xs[:0], ys[:0]
	}
	for i := s.first(idx0, idx1); i >= idx0 && i <= idx1; i += s.dir {
		if !s.Vals.Defined(i) {
			if s.Vals.IsNull(i) && !s.SpanGaps && len(xs) > 0 {
				flush()
				t.gap()
			}
			continue
		}
		xs = append(xs, s.x(i))
		ys = append(ys, s.y(s.Vals.Vals[i]))
	}
	flush()
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

// MonotoneCubic returns a monotone cubic spline through the points
// (xs[i], ys[i]), which must be ordered by x.  Two points are joined by a
// straight line.  For fewer than two points the result is nil.
func MonotoneCubic(prims orient.Primitives, xs, ys []float64) *path.Data {
	if len(xs) < 2 {
		return nil
	}
	t := newTracer(prims)
	monotoneCubic(t, xs, ys)
	return t.p
}

// MonotoneTangents returns the slopes of the Fritsch-Carlson monotone
// interpolant at the points (xs[i], ys[i]).
func MonotoneTangents(xs, ys []float64) []float64 {
	n := len(xs)
	if n < 2 {
		return nil
	}
	dxs := make([]float64, n-1)
	ds := make([]float64, n-1)
	for i := range n - 1 {
		dxs[i] = xs[i+1] - xs[i]
		if dxs[i] != 0 {
			ds[i] = (ys[i+1] - ys[i]) / dxs[i]
		}
	}

	ms := make([]float64, n)
	ms[0] = ds[0]
	for i := 1; i < n-1; i++ {
		d0, d1 := ds[i-1], ds[i]
		if d0 == 0 || d1 == 0 || (d0 > 0) != (d1 > 0) {
			continue
		}
		m := 3 * (dxs[i-1] + dxs[i]) / ((2*dxs[i]+dxs[i-1])/d0 + (dxs[i]+2*dxs[i-1])/d1)
		if !math.IsInf(m, 0) && !math.IsNaN(m) {
			ms[i] = m
		}
	}
	ms[n-1] = ds[n-2]
	return ms
}

// monotoneCubic appends a monotone spline through the given points to
// the outline, as a new run.
func monotoneCubic(t *tracer, xs, ys []float64) {
	n := len(xs)
	if n == 0 {
		return
	}
	t.lineTo(xs[0], ys[0])
	switch n {
	case 1:
		return
	case 2:
		t.lineTo(xs[1], ys[1])
		return
	}

	ms := MonotoneTangents(xs, ys)
	for i := range n - 1 {
		dx := (xs[i+1] - xs[i]) / 3
		t.curveTo(
			xs[i]+dx, ys[i]+ms[i]*dx,
			xs[i+1]-dx, ys[i+1]-ms[i+1]*dx,
			xs[i+1], ys[i+1],
		)
	}
}
