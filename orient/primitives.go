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

package orient

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// transformed implements Primitives by applying an affine map to every
// coordinate.  Both orientations share this code; only the matrix differs.
type transformed struct {
	m matrix.Matrix
}

func (t *transformed) Matrix() matrix.Matrix {
	return t.m
}

func (t *transformed) Point(x, y float64) vec.Vec2 {
	return vec.Vec2{
		X: t.m[0]*x + t.m[2]*y + t.m[4],
		Y: t.m[1]*x + t.m[3]*y + t.m[5],
	}
}

func (t *transformed) MoveTo(p *path.Data, x, y float64) {
	moveTo(p, t.Point(x, y))
}

func (t *transformed) LineTo(p *path.Data, x, y float64) {
	lineTo(p, t.Point(x, y))
}

func (t *transformed) BezierCurveTo(p *path.Data, c1x, c1y, c2x, c2y, x, y float64) {
	c1, c2, end := t.Point(c1x, c1y), t.Point(c2x, c2y), t.Point(x, y)
	if _, ok := current(p); !ok {
		moveTo(p, c1)
	}
	p.Cmds = append(p.Cmds, path.CmdCubeTo)
	p.Coords = append(p.Coords, c1, c2, end)
}

func (t *transformed) Rect(p *path.Data, x, y, w, h float64) {
	a := t.Point(x, y)
	b := t.Point(x+w, y+h)
	llx, urx := min(a.X, b.X), max(a.X, b.X)
	lly, ury := min(a.Y, b.Y), max(a.Y, b.Y)

	moveTo(p, vec.Vec2{X: llx, Y: lly})
	lineTo(p, vec.Vec2{X: urx, Y: lly})
	lineTo(p, vec.Vec2{X: urx, Y: ury})
	lineTo(p, vec.Vec2{X: llx, Y: ury})
	closePath(p)
}

func (t *transformed) RoundRect(p *path.Data, x, y, w, h, rLo, rHi float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
		rLo, rHi = rHi, rLo
	}
	rMax := min(w, h) / 2
	rLo = min(max(rLo, 0), rMax)
	rHi = min(max(rHi, 0), rMax)
	if rLo == 0 && rHi == 0 {
		t.Rect(p, x, y, w, h)
		return
	}

	t.MoveTo(p, x+rLo, y)
	t.ArcTo(p, x+w, y, x+w, y+h, rLo)
	t.ArcTo(p, x+w, y+h, x, y+h, rHi)
	t.ArcTo(p, x, y+h, x, y, rHi)
	t.ArcTo(p, x, y, x+w, y, rLo)
	closePath(p)
}

func (t *transformed) Arc(p *path.Data, x, y, r, start, end float64) {
	c := t.Point(x, y)
	at := func(a float64) vec.Vec2 {
		return vec.Vec2{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}

	p0 := at(start)
	if cur, ok := current(p); !ok {
		moveTo(p, p0)
	} else if cur.Sub(p0).Length() > zeroLength {
		lineTo(p, p0)
	}

	sweep := end - start
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if n == 0 {
		return
	}
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4) * r
	a0 := start
	for range n {
		a1 := a0 + step
		q0, q3 := at(a0), at(a1)
		c1 := q0.Add(vec.Vec2{X: -math.Sin(a0), Y: math.Cos(a0)}.Mul(k))
		c2 := q3.Sub(vec.Vec2{X: -math.Sin(a1), Y: math.Cos(a1)}.Mul(k))
		p.Cmds = append(p.Cmds, path.CmdCubeTo)
		p.Coords = append(p.Coords, c1, c2, q3)
		a0 = a1
	}
}

func (t *transformed) ArcTo(p *path.Data, x1, y1, x2, y2, r float64) {
	p1 := t.Point(x1, y1)
	p0, ok := current(p)
	if !ok {
		moveTo(p, p1)
		return
	}
	p2 := t.Point(x2, y2)

	d0 := p0.Sub(p1)
	d2 := p2.Sub(p1)
	l0, l2 := d0.Length(), d2.Length()
	if r <= 0 || l0 < zeroLength || l2 < zeroLength {
		lineTo(p, p1)
		return
	}
	u0 := d0.Mul(1 / l0)
	u2 := d2.Mul(1 / l2)
	cos := u0.Dot(u2)
	if math.Abs(cos) > 1-collinearity {
		lineTo(p, p1)
		return
	}

	// theta is the interior angle at the corner, dist the distance from
	// the corner to the two tangent points.
	theta := math.Acos(cos)
	dist := r / math.Tan(theta/2)
	sweep := math.Pi - theta
	k := 4.0 / 3.0 * math.Tan(sweep/4) * r

	t0 := p1.Add(u0.Mul(dist))
	t2 := p1.Add(u2.Mul(dist))
	lineTo(p, t0)
	p.Cmds = append(p.Cmds, path.CmdCubeTo)
	p.Coords = append(p.Coords, t0.Sub(u0.Mul(k)), t2.Sub(u2.Mul(k)), t2)
}

func (t *transformed) Close(p *path.Data) {
	closePath(p)
}

// current returns the end point of the open subpath.
// After a ClosePath, there is no current point.
func current(p *path.Data) (vec.Vec2, bool) {
	n := len(p.Cmds)
	if n == 0 || p.Cmds[n-1] == path.CmdClose {
		return vec.Vec2{}, false
	}
	return p.Coords[len(p.Coords)-1], true
}

func moveTo(p *path.Data, pt vec.Vec2) {
	p.Cmds = append(p.Cmds, path.CmdMoveTo)
	p.Coords = append(p.Coords, pt)
}

func lineTo(p *path.Data, pt vec.Vec2) {
	if _, ok := current(p); !ok {
		moveTo(p, pt)
		return
	}
	p.Cmds = append(p.Cmds, path.CmdLineTo)
	p.Coords = append(p.Coords, pt)
}

func closePath(p *path.Data) {
	if _, ok := current(p); ok {
		p.Cmds = append(p.Cmds, path.CmdClose)
	}
}

// Numerical tolerances.
const (
	// zeroLength is the distance below which two points are considered
	// equal.
	zeroLength = 1e-9

	// collinearity is the tolerance for treating the two legs of an ArcTo
	// corner as collinear.
	collinearity = 1e-9
)
