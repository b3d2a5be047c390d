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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/chart/errs"
)

func TestNumZero(t *testing.T) {
	got, err := Num(0, 0, DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, Span{Min: 0, Max: 100}, got)
	assert.False(t, math.Signbit(got.Min), "negative zero")
}

func TestNum(t *testing.T) {
	cases := []struct {
		name     string
		min, max float64
		policy   Policy
		want     Span
	}{
		{"positive", 0, 100, DefaultPolicy(), Span{0, 110}},
		{"negative", -100, 0, DefaultPolicy(), Span{-110, 0}},
		{"straddle", -50, 50, DefaultPolicy(), Span{-60, 60}},
		{"flat", 5, 5, DefaultPolicy(), Span{0, 10}},
		{"flatNoSoft", 5, 5, PadPolicy(0.1, false), Span{0, 10}},
		{"small", 0.2, 0.8, PadPolicy(0, false), Span{0.2, 0.8}},
		{"offset", 1001, 1009, PadPolicy(0.1, false), Span{1000.2, 1009.8}},
		{"hard", 0, 100, Policy{
			Min: Bound{Pad: 0.1, Hard: math.NaN(), Soft: math.NaN()},
			Max: Bound{Pad: 0.1, Hard: 105, Soft: math.NaN()},
		}, Span{-10, 105}},
		{"softAlways", 10, 20, Policy{
			Min: Bound{Pad: 0, Hard: math.NaN(), Soft: 0, Mode: SoftAlways},
			Max: Bound{Pad: 0, Hard: math.NaN(), Soft: math.NaN()},
		}, Span{0, 20}},
		{"softUndershootNoSnap", 10, 20, DefaultPolicy(), Span{9, 21}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Num(tc.min, tc.max, tc.policy)
			require.NoError(t, err)
			assert.InDelta(t, tc.want.Min, got.Min, 1e-12)
			assert.InDelta(t, tc.want.Max, got.Max, 1e-12)
		})
	}
}

func TestNumIdempotent(t *testing.T) {
	inputs := [][2]float64{
		{0, 100}, {-3.2, 7.9}, {0.001, 0.0042}, {1e6, 1.5e6}, {-1, -1}, {0, 0},
		{89.7, 89.69999999999999},
	}
	for _, in := range inputs {
		lo, hi := math.Min(in[0], in[1]), math.Max(in[0], in[1])
		for _, p := range []Policy{DefaultPolicy(), PadPolicy(0, false), PadPolicy(0.05, true)} {
			a, err := Num(lo, hi, p)
			require.NoError(t, err)
			b, err := Num(a.Min, a.Max, p)
			require.NoError(t, err)
			assert.LessOrEqual(t, b.Min, a.Min, "%v", in)
			assert.GreaterOrEqual(t, b.Max, a.Max, "%v", in)
			assert.LessOrEqual(t, a.Min, lo)
			assert.GreaterOrEqual(t, a.Max, hi)
		}
	}
}

func TestNumInvalid(t *testing.T) {
	_, err := Num(math.NaN(), 1, DefaultPolicy())
	assert.ErrorIs(t, err, errs.ErrValidation)
	_, err = Num(0, math.Inf(1), DefaultPolicy())
	assert.ErrorIs(t, err, errs.ErrValidation)
	_, err = Num(2, 1, DefaultPolicy())
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestLog(t *testing.T) {
	cases := []struct {
		name     string
		min, max float64
		base     float64
		tight    bool
		wantLo   float64
		wantHi   float64
	}{
		{"decades", 3, 870, 10, false, 1, 1000},
		{"exact", 1, 1000, 10, false, 1, 1000},
		{"tight", 3.5, 870, 10, true, 3, 1000},
		{"fraction", 0.003, 0.2, 10, false, 0.001, 1},
		{"flat", 10, 10, 10, false, 1, 100},
		{"base2", 3, 9, 2, true, 2, 16},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Log(tc.min, tc.max, tc.base, tc.tight)
			require.NoError(t, err)
			assert.Equal(t, tc.wantLo, got.Min)
			assert.Equal(t, tc.wantHi, got.Max)
		})
	}

	_, err := Log(0, 10, 10, false)
	assert.ErrorIs(t, err, errs.ErrValidation)
	_, err = Log(1, 10, 1, false)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestAsinh(t *testing.T) {
	cases := []struct {
		name     string
		min, max float64
		wantLo   float64
		wantHi   float64
	}{
		{"straddle", -350, 42, -1000, 100},
		{"zeroMin", 0, 42, 0, 100},
		{"zeroMax", -42, 0, -100, 0},
		{"linear", -0.5, 0.5, -1, 1},
		{"positiveLinear", 0.5, 42, 0, 100},
		{"zeroFlat", 0, 0, -1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Asinh(tc.min, tc.max, 10, 1, false)
			require.NoError(t, err)
			assert.Equal(t, tc.wantLo, got.Min)
			assert.Equal(t, tc.wantHi, got.Max)
		})
	}
}

func TestRoundDec(t *testing.T) {
	assert.Equal(t, 17999.205, RoundDec(17999.204999999998, 3))
	assert.Equal(t, 3.0, RoundDec(3, 5))
	assert.Equal(t, 3.0, RoundDec(2.5, 0))
	assert.Equal(t, 0.1, RoundDec(0.1, 24))
}

func TestFixFloat(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{17999.204999999998, 17999.205},
		{0.1 + 0.2, 0.3},
		{1.0000000000000002, 1},
		{0.7999999999999999, 0.8},
		{-0.30000000000000004, -0.3},
		{1e-20, 1e-20},
		{123.456, 123.456},
		{1234.5000001, 1234.5000001},
		{12.0000001234567, 12.0000001234567},
		{3.9999999123456, 3.9999999123456},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FixFloat(tc.in), "%v", tc.in)
	}
}

func TestIncrRound(t *testing.T) {
	assert.Equal(t, 0.3, IncrRoundUp(0.21, 0.1))
	assert.Equal(t, 0.2, IncrRoundDn(0.29, 0.1))
	assert.Equal(t, -10.0, IncrRoundDn(-10, 10))
	assert.Equal(t, 0.7, IncrRoundUp(0.7, 0.1))
	assert.Equal(t, 25.0, IncrRound(24, 5))
	assert.Equal(t, 13.0, IncrRoundUp(12.0000001234567, 1))
	assert.Equal(t, 3.0, IncrRoundDn(3.9999999123456, 1))
}

func TestIncrRoundBrackets(t *testing.T) {
	vals := []float64{12.0000001234567, 0.30000000000000004, 17999.204999999998,
		-4.0000000999999, 1e6 + 1e-7, 0.0999999912345678}
	incrs := []float64{1, 0.1, 0.25, 5, 1e-3}
	for _, v := range vals {
		for _, inc := range incrs {
			up := IncrRoundUp(v, inc)
			dn := IncrRoundDn(v, inc)
			// noise removal may move a value by a few ulps only
			tol := 1e-12 * math.Abs(v)
			assert.GreaterOrEqual(t, up+tol, v, "up(%v, %v)", v, inc)
			assert.LessOrEqual(t, dn-tol, v, "dn(%v, %v)", v, inc)
		}
	}
}

func TestGuessDec(t *testing.T) {
	assert.Equal(t, 0, GuessDec(100))
	assert.Equal(t, 3, GuessDec(0.025))
	assert.Equal(t, 1, GuessDec(-2.5))
}

func TestLogBase(t *testing.T) {
	for e := -10; e <= 15; e++ {
		assert.Equal(t, float64(e), LogBase(math.Pow10(e), 10), "10^%d", e)
	}
	assert.Equal(t, 10.0, LogBase(1024, 2))
}
