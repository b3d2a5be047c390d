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

	"seehuhn.de/go/chart/orient"
	"seehuhn.de/go/chart/paths"
)

var orientCases = []TestCase{
	{
		Name:   "vertical_line",
		Width:  120,
		Height: 200,
		Ori:    orient.Vertical,
		Keys:   sineKeys,
		Series: []Series{
			{Label: "sin", Vals: fn(sineKeys, math.Sin), Builder: paths.Linear, Op: line},
		},
	},
	{
		Name:   "vertical_bars",
		Width:  120,
		Height: 200,
		Ori:    orient.Vertical,
		Keys:   barKeys,
		Series: []Series{
			{
				Label:   "n",
				Vals:    []float64{3, 5, 2, 8, 6, 4},
				Builder: paths.Bars(paths.BarOpts{Radius: [2]float64{0.5, 0}}),
				Op:      Fill{},
			},
		},
	},
	{
		Name:   "vertical_step",
		Width:  120,
		Height: 200,
		Ori:    orient.Vertical,
		Keys:   stepKeys,
		Series: []Series{
			{Label: "s", Vals: stepVals, Builder: paths.Stepped(paths.StepOpts{Align: 1}), Op: line},
		},
	},
}
