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

	"seehuhn.de/go/chart/paths"
)

var bandCases = []TestCase{
	{
		Name:   "between",
		Width:  200,
		Height: 120,
		Keys:   sineKeys,
		Series: []Series{
			{Label: "upper", Vals: fn(sineKeys, func(k float64) float64 { return math.Sin(k) + 1.5 }), Builder: paths.Linear, Op: Fill{}},
			{Label: "lower", Vals: fn(sineKeys, func(k float64) float64 { return math.Sin(k) - 0.5 }), Builder: paths.Linear, Op: line},
		},
		Bands: []paths.Band{{From: 0, To: 1, Dir: -1}},
	},
	{
		Name:   "crossing",
		Width:  200,
		Height: 120,
		Keys:   sineKeys,
		Series: []Series{
			{Label: "sin", Vals: fn(sineKeys, math.Sin), Builder: paths.Spline, Op: Fill{}},
			{Label: "cos", Vals: fn(sineKeys, math.Cos), Builder: paths.Spline, Op: line},
		},
		Bands: []paths.Band{{From: 0, To: 1, Dir: 1}},
	},
}
