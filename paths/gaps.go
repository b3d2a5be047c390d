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
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/chart/orient"
)

// maxStrokeWidth is the padding added around the clip regions on the
// value axis, so that thick strokes near the edge of the plot area are
// not cut off.
const maxStrokeWidth = 10

// FindGaps returns the key-axis pixel ranges covered by the null samples
// in [idx0, idx1], sorted and with touching ranges merged.
//
// Undefined samples next to a null sample belong to the gap.  A gap
// extends to the pixel positions of the defined samples on either side,
// as selected by align (see [Input.AlignGaps]).
func FindGaps(keys []float64, vals *Column, idx0, idx1 int, pixel func(float64) float64, align int) []Gap {
	var gaps []Gap
	n := len(keys)
	for i := idx0; i <= idx1; i++ {
		if !vals.IsNull(i) {
			continue
		}
		fr := i
		for fr > idx0 && vals.IsUndef(fr-1) {
			fr--
		}
		to := i
		for to < idx1 && !vals.Defined(to+1) {
			to++
		}
		i = to

		frPx := pixel(keys[fr])
		toPx := frPx
		if to != fr {
			toPx = pixel(keys[to])
		}
		if align <= 0 && fr > 0 {
			frPx = pixel(keys[fr-1])
		}
		if align >= 0 && to+1 < n {
			toPx = pixel(keys[to+1])
		}
		if toPx < frPx {
			frPx, toPx = toPx, frPx
		}
		gaps = append(gaps, Gap{Lo: frPx, Hi: toPx})
	}
	return mergeGaps(gaps)
}

// mergeGaps sorts gaps and combines ranges which touch or overlap.
func mergeGaps(gaps []Gap) []Gap {
	if len(gaps) < 2 {
		return gaps
	}
	slices.SortFunc(gaps, func(a, b Gap) int {
		switch {
		case a.Lo < b.Lo:
			return -1
		case a.Lo > b.Lo:
			return 1
		}
		return 0
	})
	res := gaps[:1]
	for _, g := range gaps[1:] {
		last := &res[len(res)-1]
		if g.Lo <= last.Hi {
			last.Hi = max(last.Hi, g.Hi)
			continue
		}
		res = append(res, g)
	}
	return res
}

// ClipGaps returns the region of the plot area outside the given gaps,
// or nil if there are no gaps.  Gaps of zero width are ignored.
func ClipGaps(gaps []Gap, f orient.Frame) *path.Data {
	if len(gaps) == 0 {
		return nil
	}
	clip := &path.Data{}
	top := f.YOff - maxStrokeWidth/2
	hgt := f.YDim + maxStrokeWidth

	prevEnd := f.XOff
	for _, g := range gaps {
		if g.Hi <= g.Lo {
			continue
		}
		if w := g.Lo - prevEnd; w > 0 {
			f.Prims.Rect(clip, prevEnd, top, w, hgt)
		}
		prevEnd = g.Hi
	}
	if w := f.XOff + f.XDim - prevEnd; w > 0 {
		f.Prims.Rect(clip, prevEnd, top, w, hgt)
	}
	return clip
}
