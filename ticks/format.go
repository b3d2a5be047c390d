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
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/tebeka/strftime"

	"seehuhn.de/go/chart/incr"
	"seehuhn.de/go/chart/ranges"
)

// FormatNum returns labels for numeric ticks, rounded to the precision of
// the increment and with thousands separators.  NaN ticks get an empty
// label.
func FormatNum(splits []float64, f Found, cat incr.Catalog) []string {
	dec := cat.Dec(f.Incr)
	res := make([]string, len(splits))
	for i, v := range splits {
		if math.IsNaN(v) {
			continue
		}
		res[i] = humanize.Commaf(ranges.RoundDec(v, dec) + 0)
	}
	return res
}

// stamp describes the labels used for one range of time increments.
// A label consists of the base format, followed by a roll-over suffix
// when the year, day or minute differs from the previous tick.
type stamp struct {
	minIncr float64
	base    string
	millis  bool // append milliseconds to base
	year    string
	day     string
	minute  string
}

// stamps is ordered by decreasing minIncr.
var stamps = []stamp{
	{minIncr: incr.Year, base: "%Y"},
	{minIncr: 28 * incr.Day, base: "%b", year: "\n%Y"},
	{minIncr: incr.Day, base: "%m/%d", year: "\n%Y"},
	{minIncr: incr.Hour, base: "%I%p", year: "\n%m/%d/%y", day: "\n%m/%d"},
	{minIncr: incr.Minute, base: "%I:%M%p", year: "\n%m/%d/%y", day: "\n%m/%d"},
	{minIncr: incr.Second, base: ":%S",
		year: "\n%m/%d/%y %I:%M%p", day: "\n%m/%d %I:%M%p", minute: "\n%I:%M%p"},
	{minIncr: 0.001, base: ":%S", millis: true,
		year: "\n%m/%d/%y %I:%M%p", day: "\n%m/%d %I:%M%p", minute: "\n%I:%M%p"},
}

func findStamp(step float64) stamp {
	for _, s := range stamps {
		if step >= s.minIncr {
			return s
		}
	}
	return stamps[len(stamps)-1]
}

// FormatTime returns labels for time ticks, given in seconds since the
// epoch.  The format depends on the increment.  The first tick, and every
// tick where a larger unit rolls over, gets a second line giving the
// context.  NaN ticks get an empty label.
func FormatTime(splits []float64, f Found, loc *time.Location) ([]string, error) {
	if loc == nil {
		loc = time.UTC
	}
	s := findStamp(f.Incr)

	res := make([]string, len(splits))
	var prev time.Time
	first := true
	for i, v := range splits {
		if math.IsNaN(v) {
			continue
		}
		t := toTime(v, loc)

		label, err := strftime.Format(s.base, t)
		if err != nil {
			return nil, err
		}
		if s.millis {
			label += fmt.Sprintf(".%03d", t.Nanosecond()/1e6)
		}

		var suffix string
		switch {
		case first || t.Year() != prev.Year():
			suffix = s.year
		case t.YearDay() != prev.YearDay():
			suffix = s.day
		case t.Hour() != prev.Hour() || t.Minute() != prev.Minute():
			suffix = s.minute
		}
		if suffix != "" {
			more, err := strftime.Format(suffix, t)
			if err != nil {
				return nil, err
			}
			label += more
		}

		res[i] = label
		prev = t
		first = false
	}
	return res, nil
}

// LogFilter hides ticks of a logarithmic axis which would crowd each
// other, by replacing them with NaN.
//
// The decision is based on the distance between the positions of 9, 7 and
// 5 and the position of 10, as returned by pos: if 9 fits, all ticks are
// shown, otherwise only those with leading digit 1, 2, 3, 5 and 7, then 1,
// 2 and 5, and finally only powers of ten.  If even the powers of ten are
// too close, only every n-th of them is kept, counting from the top.  Zero
// is always kept.
func LogFilter(splits []float64, minSpace float64, pos func(float64) float64) []float64 {
	p10 := pos(10)
	fits := func(v float64) bool {
		return math.Abs(pos(v)-p10) >= minSpace
	}

	var keep string
	switch {
	case fits(9):
		keep = "123456789"
	case fits(7):
		keep = "12357"
	case fits(5):
		keep = "125"
	default:
		keep = "1"
	}

	every := 1
	if keep == "1" {
		magSpace := math.Abs(pos(1) - p10)
		if magSpace > 0 && magSpace < minSpace {
			every = int(math.Ceil(minSpace / magSpace))
		}
	}

	res := make([]float64, len(splits))
	n := 0
	for i := len(splits) - 1; i >= 0; i-- {
		v := splits[i]
		res[i] = math.NaN()
		switch {
		case v == 0:
			res[i] = 0
		case math.IsNaN(v):
		case strings.IndexByte(keep, leadingDigit(v)) >= 0:
			if n%every == 0 {
				res[i] = v
			}
			n++
		}
	}
	return res
}

func leadingDigit(v float64) byte {
	return strconv.FormatFloat(math.Abs(v), 'e', -1, 64)[0]
}
