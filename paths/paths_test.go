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
	"fmt"
	"image"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart/errs"
	"seehuhn.de/go/chart/orient"
	"seehuhn.de/go/chart/scale"
)

// newInput returns the input for a horizontal chart whose plot area has
// the given size, with the key and value scales set to the given ranges.
func newInput(t testing.TB, w, h float64, xr, yr [2]float64, keys, vals []float64) *Input {
	t.Helper()
	x := scale.New("x")
	require.NoError(t, x.SetRange(xr[0], xr[1]))
	y := scale.New("y")
	y.Ori = orient.Vertical
	require.NoError(t, y.SetRange(yr[0], yr[1]))
	return &Input{
		Frame: orient.Orient(orient.Horizontal, orient.Box{Width: w, Height: h}),
		X:     x,
		Y:     y,
		Keys:  keys,
		Vals:  NewColumn(vals),
		Idx0:  0,
		Idx1:  len(keys) - 1,
		Width: 1,
	}
}

func seq(n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = float64(i)
	}
	return res
}

// subpaths returns the number of subpaths in p.
func subpaths(p *path.Data) int {
	n := 0
	for _, cmd := range p.Cmds {
		if cmd == path.CmdMoveTo {
			n++
		}
	}
	return n
}

// dedup removes consecutive duplicate points.
func dedup(pts []vec.Vec2) []vec.Vec2 {
	var res []vec.Vec2
	for _, p := range pts {
		if len(res) > 0 && res[len(res)-1] == p {
			continue
		}
		res = append(res, p)
	}
	return res
}

// rasterize renders the filled outline of p into an alpha mask.
func rasterize(p *path.Data, w, h int) *image.Alpha {
	r := vector.NewRasterizer(w, h)
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			c := p.Coords[k]
			r.MoveTo(float32(c.X), float32(c.Y))
			k++
		case path.CmdLineTo:
			c := p.Coords[k]
			r.LineTo(float32(c.X), float32(c.Y))
			k++
		case path.CmdCubeTo:
			c := p.Coords[k : k+3]
			r.CubeTo(float32(c[0].X), float32(c[0].Y), float32(c[1].X), float32(c[1].Y), float32(c[2].X), float32(c[2].Y))
			k += 3
		case path.CmdClose:
			r.ClosePath()
		}
	}
	r.ClosePath()
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

func TestLinearGap(t *testing.T) {
	in := newInput(t, 500, 100, [2]float64{0, 5}, [2]float64{0, 10},
		seq(6), []float64{1, 2, math.NaN(), math.NaN(), 3, 4})
	res, err := Linear(in)
	require.NoError(t, err)

	want := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdMoveTo, path.CmdLineTo}
	assert.Equal(t, want, res.Stroke.Cmds)
	for _, c := range res.Stroke.Coords {
		assert.False(t, c.X > 100 && c.X < 400, "point %v inside the gap", c)
	}

	assert.Equal(t, []Gap{{Lo: 100, Hi: 400}}, res.Gaps)
	require.NotNil(t, res.Clip)
	assert.Equal(t, 2, subpaths(res.Clip))
	assert.Equal(t, ClipFill, res.Flags)
	assert.Nil(t, res.Fill)
}

func TestLinearSpanGaps(t *testing.T) {
	in := newInput(t, 500, 100, [2]float64{0, 5}, [2]float64{0, 10},
		seq(6), []float64{1, 2, math.NaN(), math.NaN(), 3, 4})
	in.SpanGaps = true
	res, err := Linear(in)
	require.NoError(t, err)
	assert.Equal(t, 1, subpaths(res.Stroke))
	assert.Nil(t, res.Gaps)
	assert.Nil(t, res.Clip)
}

func TestLinearUndefined(t *testing.T) {
	in := newInput(t, 400, 100, [2]float64{0, 4}, [2]float64{0, 10},
		seq(5), []float64{1, 2, 0, 3, 4})
	in.Vals.SetUndef(2)
	res, err := Linear(in)
	require.NoError(t, err)
	assert.Equal(t, 1, subpaths(res.Stroke))
	assert.Len(t, res.Stroke.Coords, 4)
	assert.Empty(t, res.Gaps)
}

func TestLinearEmpty(t *testing.T) {
	in := newInput(t, 100, 100, [2]float64{0, 2}, [2]float64{0, 1},
		seq(3), []float64{math.NaN(), math.NaN(), math.NaN()})
	res, err := Linear(in)
	require.NoError(t, err)
	assert.Empty(t, res.Stroke.Cmds)
}

func TestLinearFill(t *testing.T) {
	in := newInput(t, 100, 100, [2]float64{0, 1}, [2]float64{0, 2},
		seq(2), []float64{1, 1})
	in.Fill = true
	res, err := Linear(in)
	require.NoError(t, err)
	require.NotNil(t, res.Fill)

	img := rasterize(res.Fill, 100, 100)
	assert.Equal(t, uint8(0xff), img.AlphaAt(50, 75).A)
	assert.Equal(t, uint8(0), img.AlphaAt(50, 25).A)
}

func TestLinearFillPerRun(t *testing.T) {
	in := newInput(t, 400, 100, [2]float64{0, 4}, [2]float64{0, 2},
		seq(5), []float64{1, 1, math.NaN(), 1, 1})
	in.Fill = true
	res, err := Linear(in)
	require.NoError(t, err)
	assert.Equal(t, 2, subpaths(res.Fill))

	img := rasterize(res.Fill, 400, 100)
	assert.Equal(t, uint8(0xff), img.AlphaAt(50, 75).A)
	assert.Equal(t, uint8(0), img.AlphaAt(200, 75).A)
	assert.Equal(t, uint8(0xff), img.AlphaAt(350, 75).A)
}

func TestLinearDecimation(t *testing.T) {
	const n = 100_000
	rng := rand.New(rand.NewPCG(1, 2))
	keys := seq(n)
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = math.Sin(float64(i)/5000) + rng.NormFloat64()/10
	}
	in := newInput(t, 500, 300, [2]float64{0, n - 1}, [2]float64{-2, 2}, keys, vals)
	in.Decimate = true
	res, err := Linear(in)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(res.Stroke.Cmds), 4*501+1)

	px, err := in.X.Project(0, 500)
	require.NoError(t, err)
	py, err := in.Y.Project(0, 300)
	require.NoError(t, err)

	type envelope struct{ lo, hi float64 }
	want := map[float64]*envelope{}
	for i, k := range keys {
		col := math.Round(px.Pos(k))
		y := py.Pos(vals[i])
		if e, ok := want[col]; ok {
			e.lo = min(e.lo, y)
			e.hi = max(e.hi, y)
		} else {
			want[col] = &envelope{y, y}
		}
	}
	got := map[float64]*envelope{}
	for _, c := range res.Stroke.Coords {
		if e, ok := got[c.X]; ok {
			e.lo = min(e.lo, c.Y)
			e.hi = max(e.hi, c.Y)
		} else {
			got[c.X] = &envelope{c.Y, c.Y}
		}
	}
	require.Len(t, got, len(want))
	for col, e := range want {
		require.Contains(t, got, col)
		assert.InDelta(t, e.lo, got[col].lo, 1e-9, "column %g", col)
		assert.InDelta(t, e.hi, got[col].hi, 1e-9, "column %g", col)
	}
}

func TestLinearDecimationGap(t *testing.T) {
	const n = 10_000
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = 1
	}
	for i := 4000; i < 6000; i++ {
		vals[i] = math.NaN()
	}
	in := newInput(t, 100, 100, [2]float64{0, n - 1}, [2]float64{0, 2}, seq(n), vals)
	in.Decimate = true
	res, err := Linear(in)
	require.NoError(t, err)
	assert.Equal(t, 2, subpaths(res.Stroke))
	require.Len(t, res.Gaps, 1)
}

func TestLinearDecimationThreshold(t *testing.T) {
	cases := []struct {
		n        int
		decimate bool
		reduced  bool
	}{
		{399, true, false},
		{400, true, true},
		{400, false, false},
		{10_000, false, false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d_%t", tc.n, tc.decimate), func(t *testing.T) {
			keys := seq(tc.n)
			in := newInput(t, 100, 100, [2]float64{0, float64(tc.n - 1)}, [2]float64{0, float64(tc.n)}, keys, keys)
			in.Decimate = tc.decimate
			res, err := Linear(in)
			require.NoError(t, err)
			if tc.reduced {
				assert.Less(t, len(res.Stroke.Coords), tc.n)
			} else {
				assert.Len(t, res.Stroke.Coords, tc.n)
			}
		})
	}
}

func TestLinearVertical(t *testing.T) {
	x := scale.New("x")
	x.Ori = orient.Vertical
	require.NoError(t, x.SetRange(0, 2))
	y := scale.New("y")
	require.NoError(t, y.SetRange(0, 2))
	in := &Input{
		Frame: orient.Orient(orient.Vertical, orient.Box{Width: 200, Height: 200}),
		X:     x,
		Y:     y,
		Keys:  seq(3),
		Vals:  NewColumn([]float64{0, 1, 2}),
		Idx1:  2,
	}
	res, err := Linear(in)
	require.NoError(t, err)
	want := []vec.Vec2{{X: 200, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 200}}
	assert.Equal(t, want, res.Stroke.Coords)
}

func TestInvalidInput(t *testing.T) {
	in := newInput(t, 100, 100, [2]float64{0, 1}, [2]float64{0, 1}, seq(2), []float64{0, 1})
	in.X = nil
	_, err := Linear(in)
	assert.ErrorIs(t, err, errs.ErrValidation)

	in = newInput(t, 100, 100, [2]float64{0, 1}, [2]float64{0, 1}, seq(2), []float64{0, 1})
	in.Idx1 = 5
	_, err = Linear(in)
	assert.ErrorIs(t, err, errs.ErrValidation)

	in = newInput(t, 100, 100, [2]float64{0, 1}, [2]float64{0, 1}, seq(2), []float64{0, 1})
	in.Y.Reset()
	_, err = Linear(in)
	assert.ErrorIs(t, err, errs.ErrScaleCalculation)
}

func TestLogValueError(t *testing.T) {
	in := newInput(t, 100, 100, [2]float64{0, 2}, [2]float64{1, 100}, seq(3), []float64{1, -1, 10})
	in.Y.Distr = scale.Log
	require.NoError(t, in.Y.SetRange(1, 100))
	_, err := Linear(in)
	assert.ErrorIs(t, err, errs.ErrScaleCalculation)

	in.Y.Clamp = func(v, min, max float64) float64 { return min }
	_, err = Linear(in)
	assert.NoError(t, err)
}

func TestFindGaps(t *testing.T) {
	pixel := func(v float64) float64 { return 10 * v }
	col := NewColumn([]float64{1, 0, math.NaN(), 0, 2, 0, 3})
	col.SetUndef(1)
	col.SetUndef(3)
	col.SetUndef(5)
	keys := seq(7)

	assert.Equal(t, []Gap{{Lo: 0, Hi: 40}}, FindGaps(keys, col, 0, 6, pixel, 0))
	assert.Equal(t, []Gap{{Lo: 0, Hi: 30}}, FindGaps(keys, col, 0, 6, pixel, -1))
	assert.Equal(t, []Gap{{Lo: 10, Hi: 40}}, FindGaps(keys, col, 0, 6, pixel, 1))
}

func TestFindGapsMerge(t *testing.T) {
	pixel := func(v float64) float64 { return 10 * v }
	col := NewColumn([]float64{1, math.NaN(), 2, math.NaN(), 3})
	gaps := FindGaps(seq(5), col, 0, 4, pixel, 0)
	assert.Equal(t, []Gap{{Lo: 0, Hi: 40}}, gaps)
}

func TestClipGaps(t *testing.T) {
	f := orient.Orient(orient.Horizontal, orient.Box{Left: 10, Top: 20, Width: 100, Height: 50})
	assert.Nil(t, ClipGaps(nil, f))

	clip := ClipGaps([]Gap{{Lo: 30, Hi: 40}, {Lo: 50, Hi: 50}, {Lo: 60, Hi: 70}}, f)
	require.NotNil(t, clip)
	assert.Equal(t, 3, subpaths(clip))

	img := rasterize(clip, 120, 80)
	assert.Equal(t, uint8(0xff), img.AlphaAt(20, 40).A)
	assert.Equal(t, uint8(0), img.AlphaAt(35, 40).A)
	assert.Equal(t, uint8(0xff), img.AlphaAt(55, 40).A)
	assert.Equal(t, uint8(0), img.AlphaAt(65, 40).A)
	assert.Equal(t, uint8(0xff), img.AlphaAt(100, 40).A)
	assert.Equal(t, uint8(0xff), img.AlphaAt(100, 17).A)
}

func TestBandDirs(t *testing.T) {
	bands := []Band{{From: 0, To: 1, Dir: -1}}
	assert.Equal(t, Role{FillDir: -1}, BandDirs(bands, 0))
	assert.Equal(t, Role{ClipDir: 1}, BandDirs(bands, 1))
	assert.Equal(t, Role{}, BandDirs(bands, 2))

	bands = []Band{{From: 0, To: 1, Dir: 1}}
	assert.Equal(t, Role{ClipDir: -1}, BandDirs(bands, 1))

	bands = []Band{{From: 0, To: 1, Dir: 1}, {From: 2, To: 1, Dir: -1}}
	assert.Equal(t, Role{ClipDir: 2}, BandDirs(bands, 1))
}

func TestFillTo(t *testing.T) {
	s := scale.New("y")
	require.NoError(t, s.SetRange(-5, 20))
	assert.Equal(t, 0.0, FillTo(s, 0))
	assert.Equal(t, -5.0, FillTo(s, -1))
	assert.Equal(t, 20.0, FillTo(s, 1))

	s.Distr = scale.Log
	require.NoError(t, s.SetRange(1, 100))
	assert.Equal(t, 1.0, FillTo(s, 0))
	s.Dir = -1
	assert.Equal(t, 100.0, FillTo(s, 0))
}

func TestLinearBandClip(t *testing.T) {
	in := newInput(t, 200, 100, [2]float64{0, 2}, [2]float64{0, 10},
		seq(3), []float64{2, 6, 4})
	in.Role = BandDirs([]Band{{From: 0, To: 1, Dir: -1}}, 1)
	res, err := Linear(in)
	require.NoError(t, err)
	require.Len(t, res.Band, 1)

	clip := res.Band[0]
	n := len(clip.Coords)
	assert.Equal(t, vec.Vec2{X: 200, Y: 0}, clip.Coords[n-3])
	assert.Equal(t, vec.Vec2{X: 0, Y: 0}, clip.Coords[n-2])
	assert.Equal(t, vec.Vec2{X: 0, Y: 80}, clip.Coords[n-1])

	// The region above the line is kept, the region below is masked.
	img := rasterize(clip, 200, 100)
	assert.Equal(t, uint8(0xff), img.AlphaAt(100, 10).A)
	assert.Equal(t, uint8(0), img.AlphaAt(100, 90).A)

	in.Role = Role{ClipDir: 2}
	res, err = Linear(in)
	require.NoError(t, err)
	assert.Len(t, res.Band, 2)
}
