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
	"seehuhn.de/go/chart/paths"
)

var barKeys = []float64{1, 2, 3, 4, 5, 6}

var barCases = []TestCase{
	{
		Name:   "simple",
		Width:  200,
		Height: 120,
		Keys:   barKeys,
		Series: []Series{
			{Label: "n", Vals: []float64{3, 5, 2, 8, 6, 4}, Builder: paths.Bars(paths.BarOpts{}), Op: Fill{}},
		},
	},
	{
		Name:   "negative",
		Width:  200,
		Height: 120,
		Keys:   barKeys,
		Series: []Series{
			{Label: "n", Vals: []float64{3, -5, 2, -8, 6, -4}, Builder: paths.Bars(paths.BarOpts{}), Op: Fill{}},
		},
	},
	{
		Name:   "rounded",
		Width:  200,
		Height: 120,
		Keys:   barKeys,
		Series: []Series{
			{
				Label:   "n",
				Vals:    []float64{3, -5, 2, -8, 6, -4},
				Builder: paths.Bars(paths.BarOpts{Size: 0.8, Radius: [2]float64{0.3, 0}}),
				Op:      Stroke{Width: 1, MiterLimit: 10},
			},
		},
	},
	{
		Name:   "gap",
		Width:  200,
		Height: 120,
		Keys:   barKeys,
		Series: []Series{
			{
				Label:   "n",
				Vals:    holes([]float64{3, 5, 2, 8, 6, 4}, 2),
				Builder: paths.Bars(paths.BarOpts{Gap: 4, MaxWidth: 20}),
				Op:      Fill{},
			},
		},
	},
}
