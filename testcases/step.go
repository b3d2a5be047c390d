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
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/chart/paths"
)

var stepKeys = []float64{0, 1, 2, 3, 4, 5, 6}
var stepVals = []float64{1, 3, 2, 2, 5, 4, 1}

// dashed is a thin dashed stroke with miter joins, to make the corners of
// the steps visible.
var dashed = Stroke{
	Width:      1.5,
	Cap:        graphics.LineCapButt,
	Join:       graphics.LineJoinMiter,
	MiterLimit: 10,
	Dash:       []float64{6, 3},
}

var stepCases = []TestCase{
	{
		Name:   "after",
		Width:  200,
		Height: 120,
		Keys:   stepKeys,
		Series: []Series{
			{Label: "s", Vals: stepVals, Builder: paths.Stepped(paths.StepOpts{Align: 1}), Op: line},
		},
	},
	{
		Name:   "before",
		Width:  200,
		Height: 120,
		Keys:   stepKeys,
		Series: []Series{
			{Label: "s", Vals: stepVals, Builder: paths.Stepped(paths.StepOpts{Align: -1}), Op: dashed},
		},
	},
	{
		Name:   "extend_fill",
		Width:  200,
		Height: 120,
		Keys:   stepKeys,
		Series: []Series{
			{
				Label:   "s",
				Vals:    stepVals,
				Builder: paths.Stepped(paths.StepOpts{Align: 1, Extend: true}),
				Op:      Fill{},
				Fill:    true,
			},
		},
	},
}
