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

	"seehuhn.de/go/chart/scale"
)

// Band fills the area between two series.  The fill of the From series
// is closed towards the Dir side of the value scale, and is clipped by
// the region beyond the To series.
type Band struct {
	From, To int

	// Dir is +1 if the band lies above the To series, and -1 if it lies
	// below.
	Dir int
}

// Role is the part one series plays in the bands of a chart.
type Role struct {
	// FillDir is the direction of the band fill, if the series is the
	// From edge of a band, and 0 otherwise.
	FillDir int

	// ClipDir is the side of the series which must be masked from band
	// fills: -1 or +1 for one side, 2 for both sides, and 0 if the series
	// is not the To edge of a band.
	ClipDir int
}

// BandDirs returns the role of series idx in the given bands.
func BandDirs(bands []Band, idx int) Role {
	var r Role
	var clip int
	for _, b := range bands {
		if b.From == idx {
			r.FillDir = b.Dir
		} else if b.To == idx {
			if b.Dir == 1 {
				clip |= 1
			} else {
				clip |= 2
			}
		}
	}
	switch clip {
	case 1:
		r.ClipDir = -1
	case 2:
		r.ClipDir = 1
	case 3:
		r.ClipDir = 2
	}
	return r
}

// FillTo returns the default fill baseline for a series on the value
// scale s.  Band fills extend to the end of the scale, log scales to the
// end nearest the axis and all other scales to zero.
func FillTo(s *scale.Scale, bandFillDir int) float64 {
	switch {
	case bandFillDir == -1:
		return s.Min()
	case bandFillDir == 1:
		return s.Max()
	case s.Distr == scale.Log && s.Dir == 1:
		return s.Min()
	case s.Distr == scale.Log:
		return s.Max()
	}
	return 0
}

// clipBand extends the outline of a series to the edge of the plot area.
// For clipDir +1 the result covers the region between the line and the
// maximum of the value scale, otherwise the region towards the minimum.
//
// Subpaths of the outline are joined into a single line.  The points
// (x0, y0) and x1 are the key-axis start of the line, its value-axis start
// and its key-axis end.
func clipBand(s *series, line *path.Data, x0, y0, x1 float64, clipDir int) *path.Data {
	if line == nil || clipDir == 0 || len(line.Cmds) == 0 {
		return nil
	}
	yLimit := s.y(s.clipLimit(clipDir))

	clip := &path.Data{
		Cmds:   make([]path.Command, 0, len(line.Cmds)+3),
		Coords: make([]vec.Vec2, 0, len(line.Coords)+3),
	}
	for i, cmd := range line.Cmds {
		if i > 0 && cmd == path.CmdMoveTo {
			cmd = path.CmdLineTo
		}
		if cmd == path.CmdClose {
			continue
		}
		clip.Cmds = append(clip.Cmds, cmd)
	}
	clip.Coords = append(clip.Coords, line.Coords...)

	p := s.Frame.Prims
	p.LineTo(clip, x1, yLimit)
	p.LineTo(clip, x0, yLimit)
	p.LineTo(clip, x0, y0)
	return clip
}

// bandClips returns the band clip regions for a series.
func bandClips(s *series, line *path.Data, x0, y0, x1 float64) []*path.Data {
	switch s.Role.ClipDir {
	case 0:
		return nil
	case 2:
		return []*path.Data{
			clipBand(s, line, x0, y0, x1, -1),
			clipBand(s, line, x0, y0, x1, 1),
		}
	default:
		return []*path.Data{clipBand(s, line, x0, y0, x1, s.Role.ClipDir)}
	}
}
