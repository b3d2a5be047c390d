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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart/errs"
	"seehuhn.de/go/chart/orient"
)

func TestStepped(t *testing.T) {
	cases := []struct {
		name  string
		align int
		want  []vec.Vec2
	}{
		{"after", 1, []vec.Vec2{{X: 0, Y: 100}, {X: 100, Y: 100}, {X: 100, Y: 0}, {X: 200, Y: 0}, {X: 200, Y: 100}}},
		{"before", -1, []vec.Vec2{{X: 0, Y: 100}, {X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 200, Y: 100}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := newInput(t, 200, 200, [2]float64{0, 2}, [2]float64{0, 2},
				seq(3), []float64{1, 2, 1})
			res, err := Stepped(StepOpts{Align: tc.align})(in)
			require.NoError(t, err)
			assert.Equal(t, 1, subpaths(res.Stroke))
			assert.Equal(t, tc.want, dedup(res.Stroke.Coords))
		})
	}
}

func TestSteppedExtend(t *testing.T) {
	in := newInput(t, 400, 200, [2]float64{0, 4}, [2]float64{0, 2},
		[]float64{1, 2, 3}, []float64{1, 2, 1})
	in.Fill = true
	res, err := Stepped(StepOpts{Extend: true})(in)
	require.NoError(t, err)

	n := len(res.Stroke.Coords)
	assert.Equal(t, vec.Vec2{X: 400, Y: 100}, res.Stroke.Coords[n-1])

	img := rasterize(res.Fill, 400, 200)
	assert.Equal(t, uint8(0xff), img.AlphaAt(350, 150).A)
	assert.Equal(t, uint8(0), img.AlphaAt(50, 150).A)
}

func TestSteppedGaps(t *testing.T) {
	in := newInput(t, 200, 200, [2]float64{0, 2}, [2]float64{0, 2},
		seq(3), []float64{1, math.NaN(), 2})
	in.Width = 2
	res, err := Stepped(StepOpts{})(in)
	require.NoError(t, err)
	assert.Equal(t, 1, subpaths(res.Stroke))
	assert.Equal(t, []Gap{{Lo: 1, Hi: 201}}, res.Gaps)

	res, err = Stepped(StepOpts{Align: -1})(in)
	require.NoError(t, err)
	assert.Equal(t, []Gap{{Lo: -1, Hi: 199}}, res.Gaps)

	_, err = Stepped(StepOpts{Align: 3})(in)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestSteppedNarrowGap(t *testing.T) {
	const n = 1000
	keys := seq(n)
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = 1
	}
	vals[500] = math.NaN()
	in := newInput(t, 100, 100, [2]float64{0, n - 1}, [2]float64{0, 2}, keys, vals)
	in.Width = 10

	// the stroke is wider than the gap, so nothing is left to mask
	res, err := Stepped(StepOpts{AscDesc: true})(in)
	require.NoError(t, err)
	assert.Empty(t, res.Gaps)
	assert.Nil(t, res.Clip)
}

func TestGapsHookNormalized(t *testing.T) {
	in := newInput(t, 100, 100, [2]float64{0, 4}, [2]float64{0, 2},
		seq(5), []float64{1, 1, math.NaN(), 1, 1})
	in.Gaps = func([]Gap) []Gap {
		return []Gap{{Lo: 50, Hi: 10}, {Lo: 30, Hi: 60}, {Lo: 5, Hi: 20}, {Lo: 80, Hi: 80}, {Lo: 15, Hi: 35}}
	}
	for name, build := range map[string]Builder{
		"linear":  Linear,
		"spline":  Spline,
		"stepped": Stepped(StepOpts{}),
	} {
		t.Run(name, func(t *testing.T) {
			res, err := build(in)
			require.NoError(t, err)
			assert.Equal(t, []Gap{{Lo: 5, Hi: 60}}, res.Gaps)
		})
	}
}

// bezier evaluates a cubic Bézier curve at t.
func bezier(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	return p0.Mul(s * s * s).Add(p1.Mul(3 * s * s * t)).Add(p2.Mul(3 * s * t * t)).Add(p3.Mul(t * t * t))
}

func TestMonotoneCubic(t *testing.T) {
	prims := orient.Orient(orient.Horizontal, orient.Box{Width: 100, Height: 100}).Prims
	xs := []float64{0, 1, 2, 5, 6, 8}
	ys := []float64{0, 1, 1.1, 8, 8.2, 8.2}
	p := MonotoneCubic(prims, xs, ys)
	require.NotNil(t, p)
	require.Equal(t, path.CmdMoveTo, p.Cmds[0])

	for i, cmd := range p.Cmds[1:] {
		require.Equal(t, path.CmdCubeTo, cmd)
		p0 := p.Coords[3*i]
		c := p.Coords[3*i+1 : 3*i+4]
		lo := math.Min(p0.Y, c[2].Y)
		hi := math.Max(p0.Y, c[2].Y)
		for k := 0; k <= 20; k++ {
			q := bezier(p0, c[0], c[1], c[2], float64(k)/20)
			assert.GreaterOrEqual(t, q.Y, lo-1e-9, "segment %d", i)
			assert.LessOrEqual(t, q.Y, hi+1e-9, "segment %d", i)
		}
	}

	p = MonotoneCubic(prims, []float64{0, 1}, []float64{0, 1})
	assert.Equal(t, []path.Command{path.CmdMoveTo, path.CmdLineTo}, p.Cmds)
	assert.Nil(t, MonotoneCubic(prims, []float64{0}, []float64{0}))
}

func TestMonotoneTangents(t *testing.T) {
	ms := MonotoneTangents([]float64{0, 1, 2, 3}, []float64{0, 1, 0, 0})
	assert.Equal(t, []float64{1, 0, 0, 0}, ms)

	ms = MonotoneTangents([]float64{0, 1, 2}, []float64{0, 1, 2})
	assert.InDeltaSlice(t, []float64{1, 1, 1}, ms, 1e-12)
}

func TestSplineGap(t *testing.T) {
	in := newInput(t, 600, 100, [2]float64{0, 6}, [2]float64{0, 10},
		seq(7), []float64{1, 2, 3, math.NaN(), 4, 5, 6})
	in.Fill = true
	res, err := Spline(in)
	require.NoError(t, err)
	assert.Equal(t, 2, subpaths(res.Stroke))
	assert.Equal(t, 2, subpaths(res.Fill))
	assert.Len(t, res.Gaps, 1)
	assert.Equal(t, ClipFill, res.Flags)
}

func TestBars(t *testing.T) {
	in := newInput(t, 300, 400, [2]float64{-0.5, 2.5}, [2]float64{0, 4},
		seq(3), []float64{1, 2, 3})
	in.Width = 0
	res, err := Bars(BarOpts{})(in)
	require.NoError(t, err)
	assert.Equal(t, ClipFill|ClipStroke, res.Flags)
	assert.Nil(t, res.Stroke)
	require.NotNil(t, res.Fill)
	assert.Equal(t, 3, subpaths(res.Fill))

	img := rasterize(res.Fill, 300, 400)
	assert.Equal(t, uint8(0xff), img.AlphaAt(50, 350).A)
	assert.Equal(t, uint8(0), img.AlphaAt(50, 250).A)
	assert.Equal(t, uint8(0), img.AlphaAt(10, 350).A)
	assert.Equal(t, uint8(0xff), img.AlphaAt(250, 150).A)
	assert.Equal(t, uint8(0), img.AlphaAt(100, 350).A)
}

func TestBarsColors(t *testing.T) {
	in := newInput(t, 300, 400, [2]float64{-0.5, 2.5}, [2]float64{0, 4},
		seq(3), []float64{1, 2, 3})
	colors := func(i int) (string, string) {
		if i%2 == 0 {
			return "red", "black"
		}
		return "blue", ""
	}
	res, err := Bars(BarOpts{Colors: colors})(in)
	require.NoError(t, err)
	require.Len(t, res.FillByColor, 2)
	assert.Equal(t, 2, subpaths(res.FillByColor["red"]))
	assert.Equal(t, 1, subpaths(res.FillByColor["blue"]))
	require.Len(t, res.StrokeByColor, 1)
	assert.Equal(t, 2, subpaths(res.StrokeByColor["black"]))
	assert.Nil(t, res.Fill)
}

func TestBarsBase(t *testing.T) {
	in := newInput(t, 300, 400, [2]float64{-0.5, 2.5}, [2]float64{0, 4},
		seq(3), []float64{1, 2, 3})
	res, err := Bars(BarOpts{Base: func(i int) float64 { return float64(i + 1) }})(in)
	require.NoError(t, err)
	assert.Empty(t, res.Fill.Cmds)

	res, err = Bars(BarOpts{Base: func(i int) float64 { return 1 }})(in)
	require.NoError(t, err)
	assert.Equal(t, 2, subpaths(res.Fill))
}

func TestBarsLayout(t *testing.T) {
	in := newInput(t, 300, 400, [2]float64{-0.5, 2.5}, [2]float64{0, 4},
		seq(3), []float64{1, 2, 3})
	in.Width = 0
	layout := func(i int) (float64, float64) { return float64(i) / 3, 0.1 }
	res, err := Bars(BarOpts{Layout: layout})(in)
	require.NoError(t, err)

	img := rasterize(res.Fill, 300, 400)
	assert.Equal(t, uint8(0xff), img.AlphaAt(115, 350).A)
	assert.Equal(t, uint8(0), img.AlphaAt(135, 350).A)
}

func TestBarsBand(t *testing.T) {
	in := newInput(t, 300, 400, [2]float64{-0.5, 2.5}, [2]float64{0, 4},
		seq(3), []float64{1, 2, 3})
	in.Role = Role{ClipDir: 1}
	res, err := Bars(BarOpts{})(in)
	require.NoError(t, err)
	require.Len(t, res.Band, 1)
	assert.Equal(t, 3, subpaths(res.Band[0]))

	img := rasterize(res.Band[0], 300, 400)
	assert.Equal(t, uint8(0xff), img.AlphaAt(50, 100).A)
	assert.Equal(t, uint8(0), img.AlphaAt(50, 350).A)
}

func TestBarsInvalid(t *testing.T) {
	in := newInput(t, 300, 400, [2]float64{-0.5, 2.5}, [2]float64{0, 4},
		seq(3), []float64{1, 2, 3})
	_, err := Bars(BarOpts{Size: 2})(in)
	assert.ErrorIs(t, err, errs.ErrValidation)
	_, err = Bars(BarOpts{MinWidth: 10, MaxWidth: 5})(in)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestPoints(t *testing.T) {
	in := newInput(t, 200, 200, [2]float64{0, 2}, [2]float64{0, 2},
		seq(3), []float64{1, math.NaN(), 2})
	res, err := Points(PointOpts{Size: 6, Width: 2})(in)
	require.NoError(t, err)
	assert.Equal(t, 2, subpaths(res.Fill))
	assert.Same(t, res.Fill, res.Stroke)
	assert.Equal(t, ClipFill|ClipStroke, res.Flags)
	assert.InDelta(t, 2, res.Fill.Coords[0].X, 1e-9)
	assert.InDelta(t, 100, res.Fill.Coords[0].Y, 1e-9)

	img := rasterize(res.Clip, 220, 220)
	assert.Equal(t, uint8(0xff), img.AlphaAt(202, 100).A)
	assert.Equal(t, uint8(0), img.AlphaAt(210, 100).A)

	res, err = Points(PointOpts{Size: 4, Filter: []int{2}})(in)
	require.NoError(t, err)
	assert.Equal(t, 1, subpaths(res.Fill))
	assert.Nil(t, res.Stroke)

	_, err = Points(PointOpts{})(in)
	assert.ErrorIs(t, err, errs.ErrValidation)
}
