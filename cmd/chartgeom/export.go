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
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/paths"
	"seehuhn.de/go/chart/testcases"
	"seehuhn.de/go/geom/path"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the geometry of all test cases as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		var out struct {
			TestCases []jsonTestCase `json:"testcases"`
		}
		for _, category := range conf.categories() {
			for _, tc := range testcases.All[category] {
				name := category + "_" + tc.Name
				c, err := tc.Chart(log.WithField("testcase", name))
				if err != nil {
					return err
				}
				out.TestCases = append(out.TestCases, toJSON(name, tc, c))
			}
		}

		if err := os.MkdirAll(conf.OutDir, 0755); err != nil {
			return err
		}
		fname := filepath.Join(conf.OutDir, "testcases.json")
		f, err := os.Create(fname)
		if err != nil {
			return err
		}
		defer f.Close()

		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
		log.WithFields(log.Fields{"file": fname, "count": len(out.TestCases)}).Info("geometry written")
		return nil
	},
}

type jsonTestCase struct {
	Name   string       `json:"name"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Axes   []jsonAxis   `json:"axes"`
	Series []jsonSeries `json:"series"`
}

type jsonAxis struct {
	Scale  string    `json:"scale"`
	Min    float64   `json:"min"`
	Max    float64   `json:"max"`
	Incr   float64   `json:"incr"`
	Splits []float64 `json:"splits"`
	Labels []string  `json:"labels"`
}

type jsonSeries struct {
	Label  string          `json:"label"`
	Stroke []jsonSegment   `json:"stroke,omitempty"`
	Fill   []jsonSegment   `json:"fill,omitempty"`
	Clip   []jsonSegment   `json:"clip,omitempty"`
	Band   [][]jsonSegment `json:"band,omitempty"`
	Gaps   [][2]float64    `json:"gaps,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(name string, tc testcases.TestCase, c *chart.Chart) jsonTestCase {
	jtc := jsonTestCase{
		Name:   name,
		Width:  tc.Width,
		Height: tc.Height,
	}
	for _, a := range c.Axes() {
		st := a.State()
		s := c.Scale(a.Scale)
		jtc.Axes = append(jtc.Axes, jsonAxis{
			Scale:  a.Scale,
			Min:    s.Min(),
			Max:    s.Max(),
			Incr:   st.Incr,
			Splits: finite(st.Splits),
			Labels: st.Labels,
		})
	}
	for _, s := range c.Series() {
		js := jsonSeries{Label: s.Label}
		if res := s.Paths(); res != nil {
			js.Stroke = pathToJSON(res.Stroke)
			js.Fill = pathToJSON(res.Fill)
			js.Clip = pathToJSON(res.Clip)
			for _, b := range res.Band {
				js.Band = append(js.Band, pathToJSON(b))
			}
			js.Gaps = gapsToJSON(res.Gaps)
		}
		jtc.Series = append(jtc.Series, js)
	}
	return jtc
}

// finite replaces the hidden ticks of log axes, which JSON cannot
// represent, by zero.
func finite(splits []float64) []float64 {
	res := make([]float64, len(splits))
	for i, v := range splits {
		if !math.IsNaN(v) {
			res[i] = v
		}
	}
	return res
}

func gapsToJSON(gaps []paths.Gap) [][2]float64 {
	var res [][2]float64
	for _, g := range gaps {
		res = append(res, [2]float64{g.Lo, g.Hi})
	}
	return res
}

func pathToJSON(p *path.Data) []jsonSegment {
	if p == nil {
		return nil
	}
	var segs []jsonSegment
	for cmd, pts := range p.Iter() {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
