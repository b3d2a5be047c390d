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

package scale

import (
	"fmt"
	"math"

	"seehuhn.de/go/chart/errs"
)

// Projector converts values of one scale to pixel coordinates, and back,
// for a fixed plot geometry.
//
// The configuration is checked once, when the Projector is created.  The
// conversion methods do not check their arguments.  A non-positive value
// on a Log scale without a Clamp function maps to NaN, and the first such
// value is reported by Err.
type Projector struct {
	s        *Scale
	off, dim float64
	flip     bool
	err      error
}

// Project returns a Projector for an axis which starts at off and has
// length dim.
func (s *Scale) Project(off, dim float64) (*Projector, error) {
	const op = "scale.Project"
	if !s.state.resolved {
		return nil, errs.Scale(op, s.Key, "range not resolved")
	}
	if !(dim > 0) {
		return nil, errs.Scale(op, s.Key, "zero plot dimension")
	}
	if s.Distr == Custom && (s.Forward == nil || s.Inverse == nil) {
		return nil, errs.Scale(op, s.Key, "custom scale without forward and inverse transform")
	}
	return &Projector{s: s, off: off, dim: dim, flip: s.flipped()}, nil
}

// Scale returns the underlying scale.
func (p *Projector) Scale() *Scale {
	return p.s
}

// Off returns the pixel offset of the axis.
func (p *Projector) Off() float64 {
	return p.off
}

// Dim returns the pixel length of the axis.
func (p *Projector) Dim() float64 {
	return p.dim
}

// Flipped reports whether pixel coordinates decrease as values increase.
func (p *Projector) Flipped() bool {
	return p.flip
}

// Min returns the lower end of the domain.
func (p *Projector) Min() float64 {
	return p.s.state.min
}

// Max returns the upper end of the domain.
func (p *Projector) Max() float64 {
	return p.s.state.max
}

// Pos returns the pixel coordinate of v.
func (p *Projector) Pos(v float64) float64 {
	s := p.s
	if s.Distr == Log && v <= 0 {
		if s.Clamp != nil {
			v = s.Clamp(v, s.state.min, s.state.max)
		}
		if v <= 0 {
			if p.err == nil {
				p.err = errs.Scale("scale.Pos", s.Key, fmt.Sprintf("log of non-positive value %g", v))
			}
			return math.NaN()
		}
	}
	pct := s.state.pct(s.fwd(v))
	if p.flip {
		pct = 1 - pct
	}
	return p.off + p.dim*pct
}

// Val returns the value at pixel coordinate pos.
func (p *Projector) Val(pos float64) float64 {
	pct := (pos - p.off) / p.dim
	if p.flip {
		pct = 1 - pct
	}
	st := &p.s.state
	return p.s.inv(st.tMin + (st.tMax-st.tMin)*pct)
}

// Err returns the first conversion error, if any.
func (p *Projector) Err() error {
	return p.err
}
