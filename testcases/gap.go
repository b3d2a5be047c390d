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

var gapKeys = []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

func gapVals() []float64 {
	return holes(fn(gapKeys, func(k float64) float64 { return math.Sqrt(k) }), 3, 4, 8)
}

var gapCases = []TestCase{
	{
		Name:   "linear",
		Width:  200,
		Height: 120,
		Keys:   gapKeys,
		Series: []Series{
			{Label: "sqrt", Vals: gapVals(), Builder: paths.Linear, Op: line},
		},
	},
	{
		Name:   "linear_fill",
		Width:  200,
		Height: 120,
		Keys:   gapKeys,
		Series: []Series{
			{Label: "sqrt", Vals: gapVals(), Builder: paths.Linear, Op: Fill{}, Fill: true},
		},
	},
	{
		Name:   "span",
		Width:  200,
		Height: 120,
		Keys:   gapKeys,
		Series: []Series{
			{Label: "sqrt", Vals: gapVals(), Builder: paths.Linear, Op: line, SpanGaps: true},
		},
	},
	{
		Name:   "undefined",
		Width:  200,
		Height: 120,
		Keys:   gapKeys,
		Series: []Series{
			{Label: "sqrt", Vals: gapVals(), Undef: []int{2, 5, 10}, Builder: paths.Linear, Op: line},
		},
	},
	{
		Name:   "stepped",
		Width:  200,
		Height: 120,
		Keys:   gapKeys,
		Series: []Series{
			{Label: "sqrt", Vals: gapVals(), Builder: paths.Stepped(paths.StepOpts{}), Op: line},
		},
	},
}
