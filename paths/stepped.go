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

import "seehuhn.de/go/chart/errs"

// StepOpts configures a [Stepped] builder.
type StepOpts struct {
	// Align is +1 (the default) if each step holds the previous value
	// until the next key, and -1 if the new value is taken immediately.
	Align int

	// Extend continues the first or last step to the edge of the plot
	// area.
	Extend bool

	// AscDesc draws the vertical edges of steps next to gaps.
	AscDesc bool
}

// Stepped returns a builder which draws a series as a step function.
//
// The stroke is a single outline; gaps in the data are masked by the
// clip region of the result.
func Stepped(opts StepOpts) Builder {
	align := opts.Align
	if align == 0 {
		align = 1
	}
	return func(in *Input) (*Result, error) {
		const op = "paths.Stepped"
		if align != 1 && align != -1 {
			return nil, errs.Invalid(op, "Align", "must be 1 or -1")
		}
		s, err := prepare(op, in)
		if err != nil {
			return nil, err
		}
		idx0, idx1, ok := s.Vals.defined(s.Idx0, s.Idx1)
		if !ok {
			return empty(ClipFill), nil
		}

		prims := s.Frame.Prims
		t := newTracer(prims)
		fi := s.first(idx0, idx1)
		firstY := s.y(s.Vals.Vals[fi])
		prevY := firstY
		firstX := s.x(fi)
		prevX := firstX

		firstXExt := firstX
		if opts.Extend && align == -1 {
			firstXExt = s.Frame.XOff
			if s.dir == -1 {
				firstXExt = s.Frame.XOff + s.Frame.XDim
			}
			t.lineTo(firstXExt, prevY)
		}
		t.lineTo(firstX, prevY)

		for i := fi; i >= idx0 && i <= idx1; i += s.dir {
			if !s.Vals.Defined(i) {
				continue
			}
			x1 := s.x(i)
			y1 := s.y(s.Vals.Vals[i])
			if align == 1 {
				prims.LineTo(t.p, x1, prevY)
			} else {
				prims.LineTo(t.p, prevX, y1)
			}
			prims.LineTo(t.p, x1, y1)
			prevX, prevY = x1, y1
		}

		lastXExt := prevX
		if opts.Extend && align == 1 {
			lastXExt = s.Frame.XOff + s.Frame.XDim
			if s.dir == -1 {
				lastXExt = s.Frame.XOff
			}
			prims.LineTo(t.p, lastXExt, prevY)
		}
		t.runs[0].x0 = firstXExt
		t.runs[0].x1 = lastXExt
		if err := s.err(); err != nil {
			return nil, err
		}

		res := &Result{Stroke: t.p, Flags: ClipFill}
		if s.wantFill() {
			res.Fill = t.fill(s.baseline())
		}

		halfStroke := s.Width / 2
		startOff, endOff := halfStroke, halfStroke
		if !opts.AscDesc && align == -1 {
			startOff = -halfStroke
		}
		if opts.AscDesc || align == -1 {
			endOff = -halfStroke
		}
		res.Gaps, res.Clip = s.gapClip(idx0, idx1, startOff, endOff)
		res.Band = bandClips(s, t.p, firstXExt, firstY, lastXExt)
		return res, nil
	}
}
