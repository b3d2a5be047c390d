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

package ranges

import (
	"math"
	"strconv"
	"strings"
)

// RoundDec rounds v to dec decimal places.  Ties are rounded towards
// positive infinity.  Integers and values whose scaled magnitude exceeds
// the float64 mantissa are returned unchanged.
func RoundDec(v float64, dec int) float64 {
	if v == math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	p := math.Pow10(dec)
	n := v * p * (1 + epsilon)
	if math.Abs(n) >= maxExact {
		return v
	}
	return math.Floor(n+0.5) / p
}

// FixFloat removes binary representation noise from v.
//
// If the shortest decimal form of v carries close to the full float64
// precision and contains a run of repeating 9s or 0s after its first
// significant digit, the value is re-rounded at the position where the run
// starts.  The rounded value is only used if it differs from v in the last
// few bits of the mantissa.  This turns 17999.204999999998 into 17999.205 and
// 0.30000000000000004 into 0.3.
func FixFloat(v float64) float64 {
	if v == math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return v
	}

	// locate the first significant digit
	first := 0
	for first < len(s) && (s[first] == '0' || s[first] == '.') {
		first++
	}
	sig := len(s) - first
	if first < dot {
		sig-- // the decimal point
	}
	if sig < noiseDigits {
		return v
	}

	run := 0
	var prev byte
	for i := max(first, dot+1); i < len(s); i++ {
		c := s[i]
		if (c == '9' || c == '0') && c == prev {
			run++
		} else if c == '9' || c == '0' {
			run = 1
		} else {
			run = 0
		}
		prev = c
		if run == noiseRun {
			start := i - noiseRun + 1
			if fixed := RoundDec(v, start-dot-1); math.Abs(fixed-v) <= noiseTol*math.Abs(v) {
				return fixed
			}
		}
	}
	return v
}

// IncrRound rounds v to the nearest multiple of incr.
func IncrRound(v, incr float64) float64 {
	return FixFloat(math.Floor(FixFloat(v/incr)+0.5) * incr)
}

// IncrRoundUp rounds v up to a multiple of incr.
func IncrRoundUp(v, incr float64) float64 {
	return FixFloat(math.Ceil(FixFloat(v/incr)) * incr)
}

// IncrRoundDn rounds v down to a multiple of incr.
func IncrRoundDn(v, incr float64) float64 {
	return FixFloat(math.Floor(FixFloat(v/incr)) * incr)
}

// GuessDec returns the number of decimal places in the shortest decimal
// representation of v.
func GuessDec(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		return len(s) - dot - 1
	}
	return 0
}

// LogBase returns the logarithm of v to the given base.  The result is an
// exact integer whenever v is an integral power of base.
func LogBase(v, base float64) float64 {
	var l float64
	switch base {
	case 10:
		l = math.Log10(v)
	case 2:
		return math.Log2(v)
	default:
		l = math.Log(v) / math.Log(base)
	}
	if r := math.Round(l); r != l && math.Abs(l-r) < logSnap && Pow(base, r) == v {
		return r
	}
	return l
}

// Pow returns base**exp.  For base 10 and integral exp the result is the
// float64 closest to the decimal power.
func Pow(base, exp float64) float64 {
	if base == 10 && exp == math.Trunc(exp) && math.Abs(exp) < 300 {
		return math.Pow10(int(exp))
	}
	return math.Pow(base, exp)
}

const (
	// epsilon nudges exact ties upwards before rounding, so that values
	// like 1.005 round as their decimal form suggests.
	epsilon = 2.220446049250313e-16

	// maxExact is the magnitude above which every float64 is an integer.
	maxExact = 1 << 52

	// noiseDigits is the minimal number of significant digits for which
	// FixFloat suspects representation noise.
	noiseDigits = 15

	// noiseRun is the run length of repeated 9s or 0s which FixFloat
	// treats as noise.
	noiseRun = 6

	// noiseTol is the largest relative change FixFloat makes.
	noiseTol = 1e-12

	// logSnap is the distance from an integer within which LogBase checks
	// for an exact power.
	logSnap = 1e-9
)
