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

	"github.com/aclements/go-moremath/mathx"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/chart/errs"
)

// BarOpts configures a [Bars] builder.
type BarOpts struct {
	// Size is the fraction of the column width covered by a bar, and
	// MinWidth and MaxWidth limit the bar width in device pixels.  The
	// zero values select 0.6, 1 and no upper limit.
	Size     float64
	MinWidth float64
	MaxWidth float64

	// Gap is an extra gap between bars, in device pixels.
	Gap float64

	// Align places bars relative to their key: 0 centers them, +1 makes
	// them start at the key, and -1 makes them end there.
	Align int

	// Radius gives the corner radii at the value end and at the base of
	// each bar, as fractions of the bar width.
	Radius [2]float64

	// Colors, if set, returns the fill and stroke color of bar i.  Bars
	// are then collected into one path per color.  An empty string
	// omits the corresponding shape.
	Colors func(i int) (fill, stroke string)

	// Layout, if set, overrides the position and width of bar i.  Both
	// are given as fractions of the key axis length.
	Layout func(i int) (pos, width float64)

	// Base, if set, gives the value from which bar i starts.  Bars of
	// zero height are skipped.
	Base func(i int) float64
}

// Bars returns a builder which draws one rectangle per sample, from the
// fill baseline to the sample value.
func Bars(opts BarOpts) Builder {
	size := opts.Size
	if size == 0 {
		size = 0.6
	}
	minW := opts.MinWidth
	if minW == 0 {
		minW = 1
	}
	maxW := opts.MaxWidth
	if maxW == 0 {
		maxW = math.Inf(1)
	}

	return func(in *Input) (*Result, error) {
		const op = "paths.Bars"
		switch {
		case !(size > 0 && size <= 1):
			return nil, errs.Invalid(op, "Size", "must be in (0, 1]")
		case minW > maxW:
			return nil, errs.Invalid(op, "MinWidth", "greater than MaxWidth")
		case opts.Align < -1 || opts.Align > 1:
			return nil, errs.Invalid(op, "Align", "must be -1, 0 or 1")
		}
		s, err := prepare(op, in)
		if err != nil {
			return nil, err
		}
		flags := ClipFill | ClipStroke
		idx0, idx1, ok := s.Vals.defined(s.Idx0, s.Idx1)
		if !ok {
			return empty(flags), nil
		}

		strokeWidth := s.round(s.Width)
		base := s.baseline()
		var barWid, xShift float64
		if opts.Layout == nil {
			colWid := s.columnWidth()
			fullGap := colWid*(1-size) + opts.Gap
			barWid = s.round(mathx.Clamp(colWid-fullGap, minW, maxW) - strokeWidth)
			switch align := opts.Align; {
			case align == 0:
				xShift = barWid / 2
			case align == s.dir:
				xShift = -strokeWidth / 2
			default:
				xShift = barWid + strokeWidth/2
			}
		} else {
			xShift = -strokeWidth / 2
		}

		res := &Result{Flags: flags}
		var shapes *path.Data
		if opts.Colors != nil {
			res.FillByColor = make(map[string]*path.Data)
			if strokeWidth > 0 {
				res.StrokeByColor = make(map[string]*path.Data)
			}
		} else {
			shapes = &path.Data{}
		}
		var band []*path.Data
		var limits []float64
		switch s.Role.ClipDir {
		case -1, 1:
			limits = []float64{s.y(s.clipLimit(s.Role.ClipDir))}
		case 2:
			limits = []float64{s.y(s.clipLimit(-1)), s.y(s.clipLimit(1))}
		}
		for range limits {
			band = append(band, &path.Data{})
		}

		prims := s.Frame.Prims
		rVal := opts.Radius[0]
		rBase := opts.Radius[1]
		for i := s.first(idx0, idx1); i >= idx0 && i <= idx1; i += s.dir {
			if !s.Vals.Defined(i) {
				continue
			}
			v := s.Vals.Vals[i]
			barBase := base
			if opts.Base != nil {
				b := opts.Base(i)
				if v-b == 0 {
					continue
				}
				barBase = s.y(b)
			}

			xPos := s.px.Pos(s.Keys[i])
			wid := barWid
			if opts.Layout != nil {
				pos, w := opts.Layout(i)
				xPos = s.Frame.XOff + pos*s.Frame.XDim
				wid = s.round(w*s.Frame.XDim - strokeWidth)
				if s.dir == -1 {
					xShift = wid + strokeWidth/2
				}
			}
			yPos := s.py.Pos(v)
			lft := s.round(xPos - xShift)
			lo := s.round(math.Min(yPos, barBase))
			hi := s.round(math.Max(yPos, barBase))
			hgt := hi - lo

			y := lo + math.Floor(strokeWidth/2)
			h := math.Max(0, hgt-strokeWidth)
			rLo, rHi := rBase*wid, rVal*wid
			if yPos < barBase {
				rLo, rHi = rHi, rLo
			}

			if opts.Colors != nil {
				fill, stroke := opts.Colors(i)
				if fill != "" {
					prims.RoundRect(byColor(res.FillByColor, fill), lft, y, wid, h, rLo, rHi)
				}
				if stroke != "" && res.StrokeByColor != nil {
					prims.RoundRect(byColor(res.StrokeByColor, stroke), lft, y, wid, h, rLo, rHi)
				}
			} else {
				prims.RoundRect(shapes, lft, y, wid, h, rLo, rHi)
			}

			for k, limit := range limits {
				bx := lft - strokeWidth/2
				bw := wid + strokeWidth
				edge := s.round(yPos)
				prims.Rect(band[k], bx, math.Min(edge, limit), bw, math.Abs(limit-edge))
			}
		}
		if err := s.err(); err != nil {
			return nil, err
		}

		if shapes != nil {
			res.Fill = shapes
			if strokeWidth > 0 {
				res.Stroke = shapes
			}
		}
		res.Band = band
		return res, nil
	}
}

// columnWidth returns the pixel distance between the two defined samples
// with the smallest key difference, or the plot width if there are fewer
// than two such samples.
func (s *series) columnWidth() float64 {
	colWid := s.Frame.XDim
	minDelta := math.Inf(1)
	prev := -1
	for i, k := range s.Keys {
		if s.Vals.IsUndef(i) {
			continue
		}
		if prev >= 0 {
			if d := math.Abs(k - s.Keys[prev]); d < minDelta {
				minDelta = d
				colWid = math.Abs(s.px.Pos(k) - s.px.Pos(s.Keys[prev]))
			}
		}
		prev = i
	}
	return colWid
}

// clipLimit returns the end of the value scale in direction dir.
func (s *series) clipLimit(dir int) float64 {
	if dir == 1 {
		return s.Y.Max()
	}
	return s.Y.Min()
}

func byColor(m map[string]*path.Data, color string) *path.Data {
	p, ok := m[color]
	if !ok {
		p = &path.Data{}
		m[color] = p
	}
	return p
}
