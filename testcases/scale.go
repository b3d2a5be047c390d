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
	"time"

	"github.com/aclements/go-moremath/vec"

	"seehuhn.de/go/chart/paths"
	"seehuhn.de/go/chart/scale"
)

var decadeKeys = vec.Linspace(0, 5, 26)

// hourKeys covers two days in 30-minute steps.
var hourKeys = fn(vec.Linspace(0, 95, 96), func(i float64) float64 {
	return float64(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC).Unix()) + 1800*i
})

var scaleCases = []TestCase{
	{
		Name:   "log",
		Width:  200,
		Height: 160,
		YDistr: scale.Log,
		Keys:   decadeKeys,
		Series: []Series{
			{Label: "exp", Vals: fn(decadeKeys, func(k float64) float64 { return math.Pow(10, k) }), Builder: paths.Linear, Op: line},
		},
	},
	{
		Name:   "asinh",
		Width:  200,
		Height: 160,
		YDistr: scale.Asinh,
		Keys:   decadeKeys,
		Series: []Series{
			{Label: "sinh", Vals: fn(decadeKeys, func(k float64) float64 { return 100 * math.Sinh(2*k-5) }), Builder: paths.Spline, Op: line},
		},
	},
	{
		Name:    "ordinal",
		Width:   200,
		Height:  120,
		Ordinal: true,
		Keys:    []float64{1, 2, 5, 10, 20, 50, 100},
		Series: []Series{
			{Label: "n", Vals: []float64{4, 2, 5, 1, 3, 6, 2}, Builder: paths.Bars(paths.BarOpts{}), Op: Fill{}},
		},
	},
	{
		Name:   "time",
		Width:  300,
		Height: 120,
		Time:   true,
		Keys:   hourKeys,
		Series: []Series{
			{Label: "t", Vals: fn(hourKeys, func(k float64) float64 { return math.Sin(k / 20000) }), Builder: paths.Linear, Op: line},
		},
	},
}
