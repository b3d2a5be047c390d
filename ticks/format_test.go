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

package ticks

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/chart/incr"
)

func TestFormatNum(t *testing.T) {
	got := FormatNum([]float64{1000, 2500, -0.5, math.NaN(), 1234567.5}, Found{Incr: 0.5}, incr.Numeric())
	assert.Equal(t, []string{"1,000", "2,500", "-0.5", "", "1,234,567.5"}, got)

	got = FormatNum([]float64{0.30000000000000004}, Found{Incr: 0.1}, incr.Numeric())
	assert.Equal(t, []string{"0.3"}, got)
}

func TestFormatTimeDays(t *testing.T) {
	splits := []float64{
		unix(time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC)),
		unix(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)),
		unix(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
	}
	got, err := FormatTime(splits, Found{Incr: incr.Day}, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []string{"01/30\n2024", "01/31", "02/01"}, got)
}

func TestFormatTimeHours(t *testing.T) {
	splits := []float64{
		unix(time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC)),
		unix(time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)),
		unix(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)),
	}
	got, err := FormatTime(splits, Found{Incr: incr.Hour}, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []string{"10PM\n01/01/24", "11PM", "12AM\n01/02"}, got)
}

func TestFormatTimeMillis(t *testing.T) {
	got, err := FormatTime([]float64{1.25, 1.5}, Found{Incr: 0.25}, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []string{":01.250\n01/01/70 12:00AM", ":01.500"}, got)
}

func TestFormatTimeYears(t *testing.T) {
	splits := []float64{
		unix(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
		unix(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
	got, err := FormatTime(splits, Found{Incr: 10 * incr.Year}, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []string{"2020", "2030"}, got)
}

// nanToMinus makes NaN entries comparable.
func nanToMinus(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		if math.IsNaN(x) {
			x = -1
		}
		res[i] = x
	}
	return res
}

func TestLogFilter(t *testing.T) {
	splits := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	wide := func(v float64) float64 { return 1000 * math.Log10(v) }
	assert.Equal(t, splits, LogFilter(splits, 5, wide))

	medium := func(v float64) float64 { return 100 * math.Log10(v) }
	got := LogFilter(splits, 5, medium)
	assert.Equal(t, []float64{1, 2, 3, -1, 5, -1, 7, -1, -1, 10}, nanToMinus(got))

	narrow := func(v float64) float64 { return 3 * math.Log10(v) }
	got = LogFilter([]float64{1, 10, 100, 1000}, 5, narrow)
	assert.Equal(t, []float64{-1, 10, -1, 1000}, nanToMinus(got))
}

func TestLogFilterKeepsZero(t *testing.T) {
	pos := func(v float64) float64 { return 3 * math.Asinh(v) }
	got := LogFilter([]float64{-10, -1, 0, 1, 10}, 50, pos)
	assert.Equal(t, 0.0, got[2])
}
