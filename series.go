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
	"github.com/sirupsen/logrus"

	"seehuhn.de/go/chart/orient"
	"seehuhn.de/go/chart/paths"
)

// Series is one data series of a chart.
type Series struct {
	Label string

	// Scale is the key of the value scale.  The default is "y".
	Scale string

	// Builder converts the series into paths.  The default is
	// [paths.Linear].
	Builder paths.Builder

	// Width is the stroke width in CSS pixels.
	Width float64

	Fill      bool
	FillTo    func(bandFillDir int) float64
	SpanGaps  bool
	AlignGaps int
	Gaps      func([]paths.Gap) []paths.Gap
	PxAlign   bool

	// Decimate reduces dense data to the extremes of each pixel column.
	Decimate bool

	vals  *paths.Column
	cache seriesCache
}

// seriesCache holds the paths of a series.  A valid cache with nil paths
// means that nothing is drawn.
type seriesCache struct {
	valid bool
	res   *paths.Result
}

// Paths returns the geometry computed by the last Redraw, or nil if the
// series is not drawn.
func (s *Series) Paths() *paths.Result {
	return s.cache.res
}

// Values returns the data column of the series.
func (s *Series) Values() *paths.Column {
	return s.vals
}

// buildSeries computes the paths of series idx.
func (c *Chart) buildSeries(idx int, s *Series) error {
	s.cache = seriesCache{valid: true}
	log := c.log.WithFields(logrus.Fields{"series": idx, "label": s.Label})

	x := c.scales[KeyScale]
	y := c.scales[s.Scale]
	if s.vals == nil || len(c.keys) == 0 || !x.Resolved() || !y.Resolved() {
		log.Debug("series skipped")
		return nil
	}

	keys := c.keyValues()
	idx0, idx1 := window(keys, x.Min(), x.Max())
	in := &paths.Input{
		Frame:     orient.Orient(c.ori, c.box(true)),
		X:         x,
		Y:         y,
		Keys:      keys,
		Vals:      s.vals,
		Idx0:      idx0,
		Idx1:      idx1,
		Width:     s.Width * c.pxRatio,
		Fill:      s.Fill,
		FillTo:    s.FillTo,
		Role:      paths.BandDirs(c.bands, idx),
		SpanGaps:  s.SpanGaps,
		AlignGaps: s.AlignGaps,
		Gaps:      s.Gaps,
		PxAlign:   s.PxAlign,
		Decimate:  s.Decimate,
	}
	build := s.Builder
	if build == nil {
		build = paths.Linear
	}

	res, err := c.runBuilder(log, build, in)
	if err != nil {
		return err
	}
	s.cache.res = res
	if res != nil && res.Stroke != nil {
		log.WithFields(logrus.Fields{
			"samples":  idx1 - idx0 + 1,
			"commands": len(res.Stroke.Cmds),
			"gaps":     len(res.Gaps),
		}).Debug("series built")
	}
	return nil
}

// runBuilder calls a path builder.  If the builder panics, the panic is
// logged and the series is left without paths.
func (c *Chart) runBuilder(log *logrus.Entry, build paths.Builder, in *paths.Input) (res *paths.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Warn("path builder failed")
			res, err = nil, nil
		}
	}()
	return build(in)
}
