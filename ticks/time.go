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
	"time"

	"seehuhn.de/go/chart/incr"
	"seehuhn.de/go/chart/ranges"
)

// Time returns the ticks of a time scale over [min, max].  Values are
// seconds since the Unix epoch, ticks are aligned to the wall clock in loc.
//
// Increments of a month or more advance by calendar months or years.
// Shorter increments advance by a fixed duration.  When a step of more
// than an hour crosses a daylight saving transition, the tick is moved by
// one hour to stay on the expected wall-clock hour.  Only shifts of one
// hour are corrected.  A tick which ends up closer to its predecessor
// than 70% of minSpace is dropped.
func Time(min, max float64, f Found, minSpace float64, loc *time.Location) []float64 {
	if !(f.Incr > 0) || !(max >= min) {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}
	if f.Incr >= incr.Month {
		return calendarSplits(min, max, f.Incr, loc)
	}

	t0 := toTime(min, loc)
	wall := float64(t0.Hour()*3600+t0.Minute()*60+t0.Second()) +
		float64(t0.Nanosecond())/1e9
	split := ranges.RoundDec(min-wall+ranges.IncrRoundUp(wall, math.Min(f.Incr, incr.Day)), 3)
	if split > max {
		return nil
	}
	res := []float64{split}

	t := toTime(split, loc)
	prevHour := float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
	incrHours := f.Incr / incr.Hour
	pctSpace := math.Inf(1)
	if minSpace > 0 {
		pctSpace = f.Space / minSpace
	}

	for {
		next := ranges.RoundDec(split+f.Incr, 3)
		if next <= split {
			break
		}
		split = next
		if split > max {
			break
		}
		if incrHours <= 1 {
			res = append(res, split)
			continue
		}

		expected := int(math.Floor(ranges.RoundDec(prevHour+incrHours, 6))) % 24
		shift := toTime(split, loc).Hour() - expected
		if shift > 1 {
			shift = -1
		} else if shift < -1 {
			shift = 1
		}
		split -= float64(shift) * incr.Hour
		prevHour = math.Mod(prevHour+incrHours, 24)

		prev := res[len(res)-1]
		if ranges.RoundDec((split-prev)/f.Incr, 3)*pctSpace >= minSpacing {
			res = append(res, split)
		}
	}
	return res
}

func calendarSplits(min, max, step float64, loc *time.Location) []float64 {
	var years, months int
	if step >= incr.Year {
		years = int(math.Round(step / incr.Year))
	} else {
		months = int(math.Round(step / incr.Month))
	}

	t0 := toTime(min, loc)
	month := t0.Month()
	if years > 0 {
		month = time.January
	}
	start := time.Date(t0.Year(), month, 1, 0, 0, 0, 0, loc)
	if fromTime(start) != min {
		start = time.Date(start.Year()+years, start.Month()+time.Month(months), 1, 0, 0, 0, 0, loc)
	}

	var res []float64
	for i := 0; ; i++ {
		// time.Date normalises month overflow and applies the offset
		// which is valid at the resulting wall-clock time
		next := time.Date(start.Year()+years*i, start.Month()+time.Month(months*i), 1, 0, 0, 0, 0, loc)
		v := fromTime(next)
		if v > max {
			break
		}
		res = append(res, v)
	}
	return res
}

// toTime converts seconds since the epoch to a time in loc, rounded to
// the millisecond.
func toTime(v float64, loc *time.Location) time.Time {
	return time.UnixMilli(int64(math.Round(v * 1000))).In(loc)
}

func fromTime(t time.Time) float64 {
	return float64(t.UnixMilli()) / 1000
}

// minSpacing is the fraction of the minimal label spacing below which a
// tick after a daylight saving correction is dropped.
const minSpacing = 0.7
