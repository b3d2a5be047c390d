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
	"github.com/aclements/go-moremath/vec"

	"seehuhn.de/go/chart/paths"
)

var stairKeys = vec.Linspace(0, 9, 10)

var splineCases = []TestCase{
	{
		Name:   "monotone",
		Width:  200,
		Height: 120,
		Keys:   stairKeys,
		Series: []Series{
			{
				Label:   "stairs",
				Vals:    []float64{0, 0, 1, 1, 5, 5.5, 6, 9, 9, 9},
				Builder: paths.Spline,
				Op:      line,
			},
		},
	},
	{
		Name:   "monotone_fill",
		Width:  200,
		Height: 120,
		Keys:   stairKeys,
		Series: []Series{
			{
				Label:   "stairs",
				Vals:    []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3},
				Builder: paths.Spline,
				Op:      Fill{},
				Fill:    true,
			},
		},
	},
	{
		Name:   "gap",
		Width:  200,
		Height: 120,
		Keys:   stairKeys,
		Series: []Series{
			{
				Label:   "stairs",
				Vals:    holes([]float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}, 4),
				Builder: paths.Spline,
				Op:      line,
			},
		},
	},
}
