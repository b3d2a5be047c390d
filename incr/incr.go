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

// Package incr provides catalogs of "nice" tick increments.
//
// A [Catalog] is an ascending list of candidate increments, each tagged
// with the number of decimal places needed to print multiples of it
// exactly.  [Numeric] covers mantissas 1, 2, 2.5 and 5 at every power of
// ten from 1e-16 to 5e15.  [Time] covers durations in seconds, from one
// millisecond to a century, aligned to calendar units.
package incr

import (
	"math"
	"slices"
	"strconv"

	"seehuhn.de/go/chart/ranges"
)

// Step is one catalog entry.
type Step struct {
	Value float64
	Dec   int // decimal places needed to print multiples of Value
}

// Catalog is an ascending list of increments.
//
// Catalogs returned by this package are fresh copies and may be modified
// by the caller.
type Catalog []Step

// Mults are the mantissas of the numeric catalog.
var Mults = []float64{1, 2, 2.5, 5}

// Gen generates the increments m·base^e for all exponents e with
// minExp ≤ e < maxExp and all mantissas m in mults.  The mantissas must be
// ascending and less than base.
func Gen(base float64, minExp, maxExp int, mults []float64) Catalog {
	multDec := make([]int, len(mults))
	for i, m := range mults {
		multDec[i] = ranges.GuessDec(m)
	}

	var res Catalog
	for exp := minExp; exp < maxExp; exp++ {
		expa := max(exp, -exp)
		mag := ranges.RoundDec(ranges.Pow(base, float64(exp)), expa)
		for i, m := range mults {
			dec := multDec[i]
			if exp >= multDec[i] {
				dec = 0
			}
			if exp < 0 {
				dec += expa
			}

			var v float64
			if base == 10 {
				// parse the decimal form to get the closest float64
				s := strconv.FormatFloat(m, 'f', -1, 64) + "e" + strconv.Itoa(exp)
				v, _ = strconv.ParseFloat(s, 64)
			} else {
				v = ranges.RoundDec(m*mag, dec)
			}
			res = append(res, Step{Value: v, Dec: dec})
		}
	}
	return res
}

var (
	numeric = append(Gen(10, -16, 0, Mults), Gen(10, 0, 16, Mults)...)
	whole   = filterWhole(numeric)
	times   = genTime()
)

// Numeric returns the catalog for numeric axes.
func Numeric() Catalog {
	return slices.Clone(numeric)
}

// Whole returns the integer entries of the numeric catalog.
// This is used for ordinal axes, where fractional ticks make no sense.
func Whole() Catalog {
	return slices.Clone(whole)
}

// Time returns the catalog for time axes, in seconds.
func Time() Catalog {
	return slices.Clone(times)
}

func filterWhole(c Catalog) Catalog {
	var res Catalog
	for _, s := range c {
		if s.Value >= 1 && s.Value == math.Trunc(s.Value) {
			res = append(res, s)
		}
	}
	return res
}

// Units of time, in seconds.  Months and years are nominal lengths; tick
// placement for these increments uses calendar arithmetic.
const (
	Second = 1.0
	Minute = 60 * Second
	Hour   = 60 * Minute
	Day    = 24 * Hour
	Month  = 30 * Day
	Year   = 365 * Day
)

func genTime() Catalog {
	res := Gen(10, -3, 0, Mults)
	units := []struct {
		unit  float64
		mults []float64
	}{
		{Second, []float64{1, 5, 10, 15, 30}},
		{Minute, []float64{1, 5, 10, 15, 30}},
		{Hour, []float64{1, 2, 3, 4, 6, 8, 12}},
		{Day, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 15}},
		{Month, []float64{1, 2, 3, 4, 6}},
		{Year, []float64{1, 2, 5, 10, 25, 50, 100}},
	}
	for _, u := range units {
		for _, m := range u.mults {
			res = append(res, Step{Value: m * u.unit})
		}
	}
	return res
}

// Values returns the increments without precision tags.
func (c Catalog) Values() []float64 {
	res := make([]float64, len(c))
	for i, s := range c {
		res[i] = s.Value
	}
	return res
}

// Index returns the position of v in the catalog.
func (c Catalog) Index(v float64) (int, bool) {
	return slices.BinarySearchFunc(c, v, func(s Step, v float64) int {
		switch {
		case s.Value < v:
			return -1
		case s.Value > v:
			return 1
		}
		return 0
	})
}

// Dec returns the number of decimal places needed to print multiples of v.
// Values not in the catalog fall back to their shortest decimal form.
func (c Catalog) Dec(v float64) int {
	if i, ok := c.Index(v); ok {
		return c[i].Dec
	}
	return ranges.GuessDec(v)
}

// Closest returns the index of the entry closest to v.  Ties go to the
// smaller entry.  Closest returns -1 for an empty catalog.
func (c Catalog) Closest(v float64) int {
	if len(c) == 0 {
		return -1
	}
	lo, hi := 0, len(c)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if c[mid].Value < v {
			lo = mid
		} else {
			hi = mid
		}
	}
	if v-c[lo].Value <= c[hi].Value-v {
		return lo
	}
	return hi
}
