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

package testcases

import (
	"math"

	"github.com/aclements/go-moremath/vec"

	"seehuhn.de/go/chart/paths"
)

// noisyKeys has many more samples than the plot has pixels, so that the
// series are decimated.
var noisyKeys = vec.Linspace(0, 100, 20000)

func noisy(k float64) float64 {
	return math.Sin(k/10) + 0.3*math.Sin(k*37) + 0.1*math.Sin(k*1013)
}

var decimateCases = []TestCase{
	{
		Name:   "envelope",
		Width:  220,
		Height: 120,
		Keys:   noisyKeys,
		Series: []Series{
			{Label: "noise", Vals: fn(noisyKeys, noisy), Builder: paths.Linear, Op: Stroke{Width: 1, MiterLimit: 10}, Decimate: true},
		},
	},
	{
		Name:   "envelope_gap",
		Width:  220,
		Height: 120,
		Keys:   noisyKeys,
		Series: []Series{
			{
				Label:    "noise",
				Vals:     holes(fn(noisyKeys, noisy), seqInts(8000, 9000)...),
				Builder:  paths.Linear,
				Op:       Stroke{Width: 1, MiterLimit: 10},
				Decimate: true,
			},
		},
	},
}

// seqInts returns the integers in [from, to).
func seqInts(from, to int) []int {
	res := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		res = append(res, i)
	}
	return res
}
