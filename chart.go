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

// Package chart computes the geometry of a chart: scale domains, axis ticks
// and labels, and the paths of all series.
//
// A [Chart] holds the key column shared by all series, the scales, axes,
// series and bands.  Changes to data, size or scale domains only mark the
// affected results as stale; they are recomputed by the next call to
// [Chart.Redraw].  Rendering the resulting geometry is left to the caller.
//
// A Chart must not be used concurrently from several goroutines.
package chart

import (
	"errors"
	"maps"
	"slices"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/sirupsen/logrus"

	"seehuhn.de/go/chart/errs"
	"seehuhn.de/go/chart/orient"
	"seehuhn.de/go/chart/paths"
	"seehuhn.de/go/chart/scale"
)

// KeyScale is the key of the scale used for the key column.
const KeyScale = "x"

// Options configure a new [Chart].
type Options struct {
	// Ori is the direction of the key axis.
	Ori orient.Orientation

	// Plot is the plot area, in CSS pixels.
	Plot orient.Box

	// PxRatio is the number of device pixels per CSS pixel.  The default
	// is 1.
	PxRatio float64

	// Ordinal places the samples at equal distances, ignoring their keys.
	Ordinal bool

	// Time marks the keys as seconds since the epoch.
	Time bool

	// Logger receives debug messages and warnings.  The default is the
	// standard logrus logger.
	Logger *logrus.Entry
}

// Chart holds the state of one chart.
type Chart struct {
	log *logrus.Entry

	ori     orient.Orientation
	plot    orient.Box
	pxRatio float64

	keys   []float64
	scales map[string]*scale.Scale
	fixed  map[string]bool // domains set by SetScale
	axes   []*Axis
	series []*Series
	bands  []paths.Band
}

// New returns an empty chart with a key scale.
func New(opts Options) (*Chart, error) {
	const op = "chart.New"
	if opts.PxRatio == 0 {
		opts.PxRatio = 1
	}
	if !(opts.PxRatio > 0) {
		return nil, errs.Invalid(op, "PxRatio", "must be positive")
	}
	if err := checkBox(op, opts.Plot); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	c := &Chart{
		log:     log.WithField("component", "chart"),
		ori:     opts.Ori,
		plot:    opts.Plot,
		pxRatio: opts.PxRatio,
		scales:  make(map[string]*scale.Scale),
		fixed:   make(map[string]bool),
	}
	x := scale.New(KeyScale)
	x.Exact = true
	x.Time = opts.Time
	if opts.Ordinal {
		x.Distr = scale.Ordinal
	}
	c.AddScale(x)
	return c, nil
}

func checkBox(op string, b orient.Box) error {
	if !(b.Width > 0) || !(b.Height > 0) {
		return errs.Invalid(op, "Plot", "plot area must have positive size")
	}
	return nil
}

// AddScale adds a scale to the chart, replacing any scale with the same
// key.  The orientation of the scale is set from the chart.
func (c *Chart) AddScale(s *scale.Scale) {
	if s.Key == KeyScale {
		s.Ori = c.ori
	} else {
		s.Ori = c.ori.Other()
	}
	c.scales[s.Key] = s
	delete(c.fixed, s.Key)
	c.invalidateScale(s.Key)
}

// Scale returns the scale with the given key, or nil.
func (c *Chart) Scale(key string) *scale.Scale {
	return c.scales[key]
}

// AddAxis adds an axis for an existing scale.
func (c *Chart) AddAxis(a *Axis) error {
	if _, ok := c.scales[a.Scale]; !ok {
		return errs.Invalid("chart.AddAxis", "Scale", "unknown scale "+a.Scale)
	}
	a.state = axisState{}
	c.axes = append(c.axes, a)
	return nil
}

// Axes returns the axes of the chart.
func (c *Chart) Axes() []*Axis {
	return c.axes
}

// AddSeries adds a series and returns its index.  A value scale with
// default settings is created if needed.
func (c *Chart) AddSeries(s *Series) int {
	if s.Scale == "" {
		s.Scale = "y"
	}
	if _, ok := c.scales[s.Scale]; !ok {
		c.AddScale(scale.New(s.Scale))
	}
	s.cache = seriesCache{}
	c.series = append(c.series, s)
	return len(c.series) - 1
}

// Series returns the series of the chart.
func (c *Chart) Series() []*Series {
	return c.series
}

// AddBand adds a band between two series.
func (c *Chart) AddBand(b paths.Band) error {
	const op = "chart.AddBand"
	n := len(c.series)
	switch {
	case b.From < 0 || b.From >= n:
		return errs.Invalid(op, "From", "no such series")
	case b.To < 0 || b.To >= n:
		return errs.Invalid(op, "To", "no such series")
	case b.From == b.To:
		return errs.Invalid(op, "To", "band edges must differ")
	case b.Dir != 1 && b.Dir != -1:
		return errs.Invalid(op, "Dir", "must be 1 or -1")
	}
	c.bands = append(c.bands, b)
	c.series[b.From].cache = seriesCache{}
	c.series[b.To].cache = seriesCache{}
	return nil
}

// SetData replaces the data of the chart.  The keys must be sorted, and
// there must be one column per series, each with one value per key.
// The domains of all scales not fixed by SetScale are recomputed.
func (c *Chart) SetData(keys []float64, cols ...*paths.Column) error {
	const op = "chart.SetData"
	if len(cols) != len(c.series) {
		return errs.Invalid(op, "cols", "need one column per series")
	}
	if !sort.Float64sAreSorted(keys) {
		return errs.Invalid(op, "keys", "not sorted")
	}
	for _, col := range cols {
		if col == nil || col.Len() != len(keys) {
			return errs.Invalid(op, "cols", "column length differs from key column")
		}
	}

	c.keys = keys
	for i, col := range cols {
		c.series[i].vals = col
	}
	for key, s := range c.scales {
		if !c.fixed[key] {
			s.Reset()
		}
	}
	c.invalidate()
	return nil
}

// SetSize changes the plot area and the device pixel ratio.
func (c *Chart) SetSize(plot orient.Box, pxRatio float64) error {
	const op = "chart.SetSize"
	if err := checkBox(op, plot); err != nil {
		return err
	}
	if !(pxRatio > 0) {
		return errs.Invalid(op, "pxRatio", "must be positive")
	}
	c.plot = plot
	c.pxRatio = pxRatio
	c.invalidate()
	return nil
}

// SetScale fixes the domain of a scale.  The domain is kept until the
// scale is released by AutoScale.  Fixing the key scale refits the value
// scales which are not fixed to the samples inside the new key domain.
func (c *Chart) SetScale(key string, min, max float64) error {
	s, ok := c.scales[key]
	if !ok {
		return errs.Invalid("chart.SetScale", "key", "unknown scale "+key)
	}
	if err := s.SetRange(min, max); err != nil {
		return err
	}
	c.fixed[key] = true
	c.invalidateScale(key)
	if key == KeyScale {
		c.resetValueScales()
	}
	c.log.WithFields(logrus.Fields{"scale": key, "min": min, "max": max}).Debug("scale fixed")
	return nil
}

// AutoScale makes the domain of a scale follow the data again.
func (c *Chart) AutoScale(key string) {
	s, ok := c.scales[key]
	if !ok {
		return
	}
	delete(c.fixed, key)
	s.Reset()
	c.invalidateScale(key)
	if key == KeyScale {
		c.resetValueScales()
	}
}

// resetValueScales marks the domains of all value scales not fixed by
// SetScale for refitting.
func (c *Chart) resetValueScales() {
	for key, s := range c.scales {
		if key != KeyScale && !c.fixed[key] {
			s.Reset()
		}
	}
}

// invalidate marks all axes and paths as stale.
func (c *Chart) invalidate() {
	for _, a := range c.axes {
		a.state = axisState{}
	}
	for _, s := range c.series {
		s.cache = seriesCache{}
	}
}

// invalidateScale marks everything which depends on one scale as stale.
func (c *Chart) invalidateScale(key string) {
	if key == KeyScale {
		c.invalidate()
		return
	}
	for _, a := range c.axes {
		if a.Scale == key {
			a.state = axisState{}
		}
	}
	for _, s := range c.series {
		if s.Scale == key {
			s.cache = seriesCache{}
		}
	}
}

// Redraw brings all scales, axes and paths up to date.
//
// Scales without data stay unresolved, and the axes and series using them
// are skipped.  A series whose path builder panics is left without paths
// and a warning is logged.  Errors from path builders are collected and
// returned after all series have been processed.
func (c *Chart) Redraw() error {
	if err := c.resolveScales(); err != nil {
		return err
	}
	for _, a := range c.axes {
		if a.state.valid {
			continue
		}
		if err := c.evalAxis(a); err != nil {
			return err
		}
	}

	var errList []error
	for i, s := range c.series {
		if s.cache.valid {
			continue
		}
		if err := c.buildSeries(i, s); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}

// resolveScales fits the domain of every unresolved scale to its data.
// The key scale comes first, since the value scales only look at the
// samples inside its domain.
func (c *Chart) resolveScales() error {
	keys := slices.DeleteFunc(slices.Sorted(maps.Keys(c.scales)), func(k string) bool {
		return k == KeyScale
	})
	keys = append([]string{KeyScale}, keys...)
	for _, key := range keys {
		s := c.scales[key]
		if s.Resolved() {
			continue
		}
		lo, hi, ok := c.dataBounds(s)
		if !ok {
			c.log.WithField("scale", key).Debug("no data for scale")
			continue
		}
		if err := s.Fit(lo, hi); err != nil {
			return err
		}
		c.log.WithFields(logrus.Fields{
			"scale": key,
			"distr": s.Distr,
			"min":   s.Min(),
			"max":   s.Max(),
		}).Debug("scale resolved")
	}
	return nil
}

// dataBounds returns the extrema of the data shown on scale s.  For value
// scales only samples inside the key scale domain count, and values which
// cannot be shown on a log scale are ignored.
func (c *Chart) dataBounds(s *scale.Scale) (float64, float64, bool) {
	if s.Key == KeyScale {
		if len(c.keys) == 0 {
			return 0, 0, false
		}
		if s.Distr == scale.Ordinal {
			return 0, float64(len(c.keys) - 1), true
		}
		return c.keys[0], c.keys[len(c.keys)-1], true
	}

	i0, i1 := 0, len(c.keys)-1
	if x := c.scales[KeyScale]; x.Resolved() {
		i0, i1 = visible(c.keyValues(), x.Min(), x.Max())
	}
	var xs []float64
	for _, ser := range c.series {
		if ser.Scale != s.Key || ser.vals == nil {
			continue
		}
		for i := i0; i <= i1; i++ {
			v := ser.vals.Vals[i]
			if !ser.vals.Defined(i) || (s.Distr == scale.Log && v <= 0) {
				continue
			}
			xs = append(xs, v)
		}
	}
	if len(xs) == 0 {
		return 0, 0, false
	}
	lo, hi := stats.Bounds(xs)
	return lo, hi, true
}

// keyValues returns the key column as seen by the key scale.
func (c *Chart) keyValues() []float64 {
	if c.scales[KeyScale].Distr != scale.Ordinal {
		return c.keys
	}
	idx := make([]float64, len(c.keys))
	for i := range idx {
		idx[i] = float64(i)
	}
	return idx
}

// window returns the index range of the samples needed to draw the key
// scale domain, including one sample on either side.
func window(keys []float64, min, max float64) (int, int) {
	n := len(keys)
	i0 := sort.SearchFloat64s(keys, min) - 1
	i1 := sort.Search(n, func(i int) bool { return keys[i] > max })
	return clampIdx(i0, n), clampIdx(i1, n)
}

// visible returns the index range of the samples with keys in [min, max].
// The range is empty if i0 > i1.
func visible(keys []float64, min, max float64) (int, int) {
	i0 := sort.SearchFloat64s(keys, min)
	i1 := sort.Search(len(keys), func(i int) bool { return keys[i] > max }) - 1
	return i0, i1
}

func clampIdx(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// box returns the plot area, in device pixels if device is set and in
// CSS pixels otherwise.
func (c *Chart) box(device bool) orient.Box {
	if device {
		return c.plot.Scale(c.pxRatio)
	}
	return c.plot
}

// PosToVal returns the value of scale key at pixel position pos.  The
// position is in device pixels if device is set, and in CSS pixels
// otherwise.
func (c *Chart) PosToVal(pos float64, key string, device bool) (float64, error) {
	s, ok := c.scales[key]
	if !ok {
		return 0, errs.Invalid("chart.PosToVal", "key", "unknown scale "+key)
	}
	return s.PosToVal(pos, c.box(device))
}

// ValToPos returns the pixel position of value v on scale key.
func (c *Chart) ValToPos(v float64, key string, device bool) (float64, error) {
	s, ok := c.scales[key]
	if !ok {
		return 0, errs.Invalid("chart.ValToPos", "key", "unknown scale "+key)
	}
	b := c.box(device)
	if s.Ori == orient.Vertical {
		return s.GetPos(v, b.Height, b.Top)
	}
	return s.GetPos(v, b.Width, b.Left)
}
