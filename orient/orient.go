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

// Package orient provides orientation-invariant path construction.
//
// Path algorithms are written once in terms of a key axis ("x", the axis
// of the key scale) and a value axis ("y").  A [Frame] supplies the
// plot-area offsets and dimensions in these terms together with a
// [Primitives] implementation which maps the coordinates to the screen.
// For horizontal charts the mapping is the identity; for vertical charts
// the two axes are swapped.
package orient

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Orientation determines which screen axis the key scale runs along.
type Orientation int

const (
	// Horizontal charts have the key scale along the screen x-axis.
	Horizontal Orientation = iota

	// Vertical charts have the key scale along the screen y-axis.
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Other returns the orientation of the cross axis.
func (o Orientation) Other() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

// Box is a rectangle in screen coordinates, with y growing downwards.
type Box struct {
	Left, Top     float64
	Width, Height float64
}

// Scale returns the box with all coordinates multiplied by f.
// This converts between CSS pixels and device pixels.
func (b Box) Scale(f float64) Box {
	return Box{Left: b.Left * f, Top: b.Top * f, Width: b.Width * f, Height: b.Height * f}
}

// Rect returns the box as a rectangle.
func (b Box) Rect() rect.Rect {
	return rect.Rect{LLx: b.Left, LLy: b.Top, URx: b.Left + b.Width, URy: b.Top + b.Height}
}

// Frame describes the plot area in key/value axis terms.
type Frame struct {
	Prims Primitives

	// XOff and XDim give the offset and size of the plot area along the
	// key axis, YOff and YDim along the value axis.
	XOff, XDim float64
	YOff, YDim float64
}

// Orient returns the frame for a chart with the given orientation and
// plot area.
func Orient(o Orientation, b Box) Frame {
	if o == Vertical {
		return Frame{
			Prims: vertical,
			XOff:  b.Top,
			XDim:  b.Height,
			YOff:  b.Left,
			YDim:  b.Width,
		}
	}
	return Frame{
		Prims: horizontal,
		XOff:  b.Left,
		XDim:  b.Width,
		YOff:  b.Top,
		YDim:  b.Height,
	}
}

// Vertical reports whether the frame swaps the key and value axes.
func (f Frame) Vertical() bool {
	return f.Prims == vertical
}

// Primitives appends path segments to a path, interpreting coordinates as
// (key axis, value axis) positions.  All coordinates are device pixels.
type Primitives interface {
	// MoveTo starts a new subpath.
	MoveTo(p *path.Data, x, y float64)

	// LineTo adds a straight segment.  On an empty path it starts a new
	// subpath instead.
	LineTo(p *path.Data, x, y float64)

	// BezierCurveTo adds a cubic Bézier segment with control points
	// (c1x, c1y), (c2x, c2y) and end point (x, y).
	BezierCurveTo(p *path.Data, c1x, c1y, c2x, c2y, x, y float64)

	// Rect adds a closed rectangle with corner (x, y) and size w × h.
	Rect(p *path.Data, x, y, w, h float64)

	// RoundRect adds a closed rectangle whose corners at the low value
	// side (y) have radius rLo and whose corners at the high value side
	// (y+h) have radius rHi.
	RoundRect(p *path.Data, x, y, w, h, rLo, rHi float64)

	// Arc adds a circular arc around (x, y), starting at angle start and
	// ending at angle end (radians, measured in screen space).  A line
	// segment connects the current point to the start of the arc.
	Arc(p *path.Data, x, y, r, start, end float64)

	// ArcTo adds a rounded corner of radius r between the current point,
	// the corner (x1, y1) and the direction towards (x2, y2).
	ArcTo(p *path.Data, x1, y1, x2, y2, r float64)

	// Close closes the current subpath.
	Close(p *path.Data)

	// Point maps key/value axis coordinates to the screen.
	Point(x, y float64) vec.Vec2

	// Matrix returns the transformation from key/value axis coordinates
	// to screen coordinates.
	Matrix() matrix.Matrix
}

var (
	horizontal Primitives = &transformed{m: matrix.Identity}
	vertical   Primitives = &transformed{m: matrix.Matrix{0, 1, 1, 0, 0, 0}}
)
