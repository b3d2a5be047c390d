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

package testcases

import (
	"math"

	"github.com/sirupsen/logrus"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/orient"
	"seehuhn.de/go/chart/paths"
	"seehuhn.de/go/chart/scale"
)

// Margin is the distance between the canvas edge and the plot area, in
// pixels.
const Margin = 10

// TestCase defines a chart used for tests and previews.
type TestCase struct {
	Name   string // lowercase a-z and _ only
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels

	Ori     orient.Orientation
	Time    bool        // keys are seconds since the epoch
	Ordinal bool        // keys are placed at equal distances
	YDistr  scale.Distr // distribution of the value scale (zero means linear)

	Keys   []float64
	Series []Series
	Bands  []paths.Band
}

// Series is one series of a test case.
type Series struct {
	Label    string
	Vals     []float64 // NaN marks a gap
	Undef    []int     // indices of alignment artifacts
	Builder  paths.Builder
	Op       Operation
	Fill     bool
	SpanGaps bool
	Decimate bool
}

// Operation is the rendering operation for the stroke of a series.
type Operation interface {
	isOperation()
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Fill paints the series outline without stroking it.
type Fill struct {
	Rule FillRule
}

func (Fill) isOperation() {}

// Stroke specifies a stroke operation.
type Stroke struct {
	Width      float64                // line width (>0)
	Cap        graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join       graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	MiterLimit float64                // miter limit
	Dash       []float64              // dash pattern (nil for solid)
	DashPhase  float64                // dash phase offset
}

func (Stroke) isOperation() {}

// Plot returns the plot area of the test case.
func (tc TestCase) Plot() orient.Box {
	return orient.Box{
		Left:   Margin,
		Top:    Margin,
		Width:  float64(tc.Width - 2*Margin),
		Height: float64(tc.Height - 2*Margin),
	}
}

// Chart sets up a chart for the test case and computes its geometry.
func (tc TestCase) Chart(log *logrus.Entry) (*chart.Chart, error) {
	c, err := chart.New(chart.Options{
		Ori:     tc.Ori,
		Plot:    tc.Plot(),
		Ordinal: tc.Ordinal,
		Time:    tc.Time,
		Logger:  log,
	})
	if err != nil {
		return nil, err
	}
	if tc.YDistr != 0 {
		y := scale.New("y")
		y.Distr = tc.YDistr
		c.AddScale(y)
	}
	if err := c.AddAxis(&chart.Axis{Scale: chart.KeyScale}); err != nil {
		return nil, err
	}
	if err := c.AddAxis(&chart.Axis{Scale: "y"}); err != nil {
		return nil, err
	}

	cols := make([]*paths.Column, len(tc.Series))
	for i, s := range tc.Series {
		width := 0.0
		if op, ok := s.Op.(Stroke); ok {
			width = op.Width
		}
		c.AddSeries(&chart.Series{
			Label:    s.Label,
			Builder:  s.Builder,
			Width:    width,
			Fill:     s.Fill,
			SpanGaps: s.SpanGaps,
			Decimate: s.Decimate,
		})
		cols[i] = paths.NewColumn(s.Vals)
		for _, j := range s.Undef {
			cols[i].SetUndef(j)
		}
	}
	for _, b := range tc.Bands {
		if err := c.AddBand(b); err != nil {
			return nil, err
		}
	}
	if err := c.SetData(tc.Keys, cols...); err != nil {
		return nil, err
	}
	if err := c.Redraw(); err != nil {
		return nil, err
	}
	return c, nil
}

// line is the stroke used by most test cases.
var line = Stroke{
	Width:      2,
	Cap:        graphics.LineCapRound,
	Join:       graphics.LineJoinRound,
	MiterLimit: 10,
}

// fn evaluates f at every key.
func fn(keys []float64, f func(float64) float64) []float64 {
	res := make([]float64, len(keys))
	for i, k := range keys {
		res[i] = f(k)
	}
	return res
}

// holes replaces the values at the given indices by NaN.
func holes(vals []float64, idx ...int) []float64 {
	for _, i := range idx {
		vals[i] = math.NaN()
	}
	return vals
}
