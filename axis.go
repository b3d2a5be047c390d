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

package chart

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/chart/incr"
	"seehuhn.de/go/chart/orient"
	"seehuhn.de/go/chart/scale"
	"seehuhn.de/go/chart/ticks"
)

// Default minimum distances between ticks, in CSS pixels.
const (
	DefaultKeySpace   = 50
	DefaultValueSpace = 30
)

// Axis computes the ticks and labels for one scale.
type Axis struct {
	Scale string

	// Space returns the minimum distance between ticks in CSS pixels for
	// the domain [min, max] spread over dim CSS pixels.  If Space is nil or
	// returns a non-positive value, DefaultKeySpace or DefaultValueSpace is
	// used.
	Space func(c *Chart, min, max, dim float64) float64

	// Incrs overrides the increment catalog.
	Incrs incr.Catalog

	// Splits, if set, replaces the computed tick values.
	Splits func(min, max float64, f ticks.Found) []float64

	// Filter, if set, is applied to the ticks before labelling.  Ticks
	// which should stay unlabelled are replaced by NaN.  The default hides
	// crowded ticks on log and asinh scales and keeps all others.
	Filter func(splits []float64, f ticks.Found) []float64

	// Values, if set, replaces the computed labels.
	Values func(splits []float64, f ticks.Found) []string

	// Loc is the time zone for time scales.  The default is UTC.
	Loc *time.Location

	state axisState
}

// AxisState is the result of evaluating an axis.  Ticks hidden by the
// label filter of log scales have the value NaN and an empty label.
type AxisState struct {
	Incr   float64
	Space  float64 // distance between ticks in CSS pixels
	Splits []float64
	Labels []string
}

type axisState struct {
	valid bool
	AxisState
}

// State returns the ticks computed by the last Redraw.  The result is the
// zero value if the scale of the axis is unresolved.
func (a *Axis) State() AxisState {
	return a.state.AxisState
}

func (a *Axis) space(c *Chart, key bool, min, max, dim float64) float64 {
	if a.Space != nil {
		if sp := a.Space(c, min, max, dim); sp > 0 {
			return sp
		}
	}
	if key {
		return DefaultKeySpace
	}
	return DefaultValueSpace
}

func (a *Axis) catalog(s *scale.Scale) incr.Catalog {
	switch {
	case a.Incrs != nil:
		return a.Incrs
	case s.Time:
		return incr.Time()
	case s.Distr == scale.Ordinal:
		return incr.Whole()
	default:
		return incr.Numeric()
	}
}

// evalAxis computes the ticks and labels of an axis.
func (c *Chart) evalAxis(a *Axis) error {
	a.state = axisState{valid: true}
	s := c.scales[a.Scale]
	if !s.Resolved() {
		return nil
	}

	dim := c.plot.Width
	if s.Ori == orient.Vertical {
		dim = c.plot.Height
	}
	min, max := s.Min(), s.Max()
	space := a.space(c, s.Key == KeyScale, min, max, dim)
	logLike := s.Distr == scale.Log || s.Distr == scale.Asinh

	var st AxisState
	switch {
	case s.Distr == scale.Log:
		st.Splits = ticks.Log(min, max, s.LogBase)
		st.Space = space
	case s.Distr == scale.Asinh:
		st.Splits = ticks.Asinh(min, max, s.LogBase, s.AsinhThreshold)
		st.Space = space
	default:
		cat := a.catalog(s)
		f := ticks.FindIncr(min, max, cat, dim, space)
		st.Incr, st.Space = f.Incr, f.Space
		if s.Time {
			st.Splits = ticks.Time(min, max, f, space, a.Loc)
		} else {
			st.Splits = ticks.Linear(min, max, f, cat, false)
		}
	}
	f := ticks.Found{Incr: st.Incr, Space: st.Space}
	if a.Splits != nil {
		st.Splits = a.Splits(min, max, f)
	}
	switch {
	case a.Filter != nil:
		st.Splits = a.Filter(st.Splits, f)
	case logLike:
		proj, err := s.Project(0, dim)
		if err != nil {
			return err
		}
		st.Splits = ticks.LogFilter(st.Splits, space, proj.Pos)
	}

	switch {
	case a.Values != nil:
		st.Labels = a.Values(st.Splits, f)
	case s.Time:
		labels, err := ticks.FormatTime(st.Splits, f, a.Loc)
		if err != nil {
			return err
		}
		st.Labels = labels
	case logLike:
		st.Labels = logLabels(st.Splits)
	default:
		st.Labels = ticks.FormatNum(st.Splits, f, a.catalog(s))
	}

	a.state.AxisState = st
	c.log.WithFields(logrus.Fields{
		"scale": a.Scale,
		"incr":  st.Incr,
		"ticks": len(st.Splits),
	}).Debug("axis evaluated")
	return nil
}

// logLabels formats each tick of a log scale with its own precision.
func logLabels(splits []float64) []string {
	cat := incr.Numeric()
	res := make([]string, len(splits))
	for i, v := range splits {
		l := ticks.FormatNum([]float64{v}, ticks.Found{Incr: math.Abs(v)}, cat)
		res[i] = l[0]
	}
	return res
}
