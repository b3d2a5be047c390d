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

var sineKeys = vec.Linspace(0, 2*math.Pi, 40)

var lineCases = []TestCase{
	{
		Name:   "sine",
		Width:  200,
		Height: 120,
		Keys:   sineKeys,
		Series: []Series{
			{Label: "sin", Vals: fn(sineKeys, math.Sin), Builder: paths.Linear, Op: line},
		},
	},
	{
		Name:   "sine_fill",
		Width:  200,
		Height: 120,
		Keys:   sineKeys,
		Series: []Series{
			{Label: "sin", Vals: fn(sineKeys, math.Sin), Builder: paths.Linear, Op: Fill{}, Fill: true},
		},
	},
	{
		Name:   "two_series",
		Width:  200,
		Height: 120,
		Keys:   sineKeys,
		Series: []Series{
			{Label: "sin", Vals: fn(sineKeys, math.Sin), Builder: paths.Linear, Op: line},
			{Label: "cos", Vals: fn(sineKeys, math.Cos), Builder: paths.Linear, Op: Stroke{Width: 1, MiterLimit: 10}},
		},
	},
	{
		Name:   "points",
		Width:  200,
		Height: 120,
		Keys:   sineKeys,
		Series: []Series{
			{
				Label:   "sin",
				Vals:    fn(sineKeys, math.Sin),
				Builder: paths.Points(paths.PointOpts{Size: 6, Width: 1}),
				Op:      Stroke{Width: 1, MiterLimit: 10},
			},
		},
	},
	{
		// overlapping markers leave holes under the even-odd rule
		Name:   "points_overlap",
		Width:  200,
		Height: 120,
		Keys:   sineKeys,
		Series: []Series{
			{
				Label:   "sin",
				Vals:    fn(sineKeys, math.Sin),
				Builder: paths.Points(paths.PointOpts{Size: 14}),
				Op:      Fill{Rule: EvenOdd},
			},
		},
	},
}
