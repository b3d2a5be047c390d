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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart/orient"
)

// tracer builds a stroke outline which may consist of several runs,
// separated by gaps in the data.
type tracer struct {
	prims orient.Primitives
	p     *path.Data
	runs  []run

	// broken is set when the next point must start a new run.
	broken bool
}

// run is one subpath of the outline.
type run struct {
	cmd, coord int // first command and coordinate of the run
	x0, x1     float64
}

func newTracer(prims orient.Primitives) *tracer {
	return &tracer{prims: prims, p: &path.Data{}}
}

// start makes sure that a run is open, beginning at (x, y).  It reports
// whether a new run was started.
func (t *tracer) start(x, y float64) bool {
	if len(t.runs) > 0 && !t.broken {
		return false
	}
	t.runs = append(t.runs, run{cmd: len(t.p.Cmds), coord: len(t.p.Coords), x0: x, x1: x})
	t.prims.MoveTo(t.p, x, y)
	t.broken = false
	return true
}

func (t *tracer) lineTo(x, y float64) {
	if t.start(x, y) {
		return
	}
	t.prims.LineTo(t.p, x, y)
	t.runs[len(t.runs)-1].x1 = x
}

func (t *tracer) curveTo(c1x, c1y, c2x, c2y, x, y float64) {
	t.prims.BezierCurveTo(t.p, c1x, c1y, c2x, c2y, x, y)
	t.runs[len(t.runs)-1].x1 = x
}

// gap ends the current run.
func (t *tracer) gap() {
	t.broken = true
}

// fill returns the outline with every run closed towards the value-axis
// position base.
func (t *tracer) fill(base float64) *path.Data {
	fill := &path.Data{
		Cmds:   make([]path.Command, 0, len(t.p.Cmds)+3*len(t.runs)),
		Coords: make([]vec.Vec2, 0, len(t.p.Coords)+2*len(t.runs)),
	}
	for i, r := range t.runs {
		endCmd, endCoord := len(t.p.Cmds), len(t.p.Coords)
		if i+1 < len(t.runs) {
			endCmd, endCoord = t.runs[i+1].cmd, t.runs[i+1].coord
		}
		fill.Cmds = append(fill.Cmds, t.p.Cmds[r.cmd:endCmd]...)
		fill.Coords = append(fill.Coords, t.p.Coords[r.coord:endCoord]...)
		t.prims.LineTo(fill, r.x1, base)
		t.prims.LineTo(fill, r.x0, base)
		t.prims.Close(fill)
	}
	return fill
}
