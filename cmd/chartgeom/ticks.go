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

package main

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"seehuhn.de/go/chart/incr"
	"seehuhn.de/go/chart/ticks"
)

var (
	ticksDim   float64
	ticksSpace float64
	ticksTime  bool
	ticksWhole bool
	ticksLog   float64
	ticksZone  string
)

func init() {
	f := ticksCmd.Flags()
	f.Float64Var(&ticksDim, "dim", 400, "Axis length in pixels")
	f.Float64Var(&ticksSpace, "space", 50, "Minimum distance between ticks in pixels")
	f.BoolVar(&ticksTime, "time", false, "Interpret the range as seconds since the epoch")
	f.BoolVar(&ticksWhole, "whole", false, "Use whole number increments only")
	f.Float64Var(&ticksLog, "log", 0, "Logarithm base for a log axis (0 for linear)")
	f.StringVar(&ticksZone, "zone", "UTC", "Time zone for time axes")
}

var ticksCmd = &cobra.Command{
	Use:   "ticks MIN MAX",
	Short: "Print the ticks and labels of an axis",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		min, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return err
		}
		max, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return err
		}
		splits, labels, f, err := axisTicks(min, max)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "increment %g, spacing %.1fpx\n", f.Incr, f.Space)
		for i, v := range splits {
			fmt.Fprintf(out, "%-16g %s\n", v, labels[i])
		}
		return nil
	},
}

func axisTicks(min, max float64) ([]float64, []string, ticks.Found, error) {
	if ticksLog > 0 {
		splits := ticks.Log(min, max, ticksLog)
		labels := make([]string, len(splits))
		for i, v := range splits {
			labels[i] = ticks.FormatNum([]float64{v}, ticks.Found{Incr: math.Abs(v)}, incr.Numeric())[0]
		}
		return splits, labels, ticks.Found{}, nil
	}

	cat := incr.Numeric()
	switch {
	case ticksTime:
		cat = incr.Time()
	case ticksWhole:
		cat = incr.Whole()
	}
	f := ticks.FindIncr(min, max, cat, ticksDim, ticksSpace)
	if !ticksTime {
		splits := ticks.Linear(min, max, f, cat, false)
		return splits, ticks.FormatNum(splits, f, cat), f, nil
	}

	loc, err := time.LoadLocation(ticksZone)
	if err != nil {
		return nil, nil, f, err
	}
	splits := ticks.Time(min, max, f, ticksSpace, loc)
	labels, err := ticks.FormatTime(splits, f, loc)
	if err != nil {
		return nil, nil, f, err
	}
	return splits, labels, f, nil
}
