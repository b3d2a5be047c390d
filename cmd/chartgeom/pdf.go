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
	"os"
	"os/exec"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/orient"
	"seehuhn.de/go/chart/testcases"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Draw every test case into a PDF file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(conf.OutDir, 0755); err != nil {
			return err
		}
		for _, category := range conf.categories() {
			for _, tc := range testcases.All[category] {
				name := category + "_" + tc.Name
				pdfPath := filepath.Join(conf.OutDir, name+".pdf")
				c, err := tc.Chart(log.WithField("testcase", name))
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				if err := generatePDF(tc, c, pdfPath); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				if conf.Render {
					pngPath := filepath.Join(conf.OutDir, name+".png")
					if err := renderPNG(pdfPath, pngPath); err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
				}
				log.WithField("file", pdfPath).Debug("preview written")
			}
		}
		return nil
	},
}

func generatePDF(tc testcases.TestCase, c *chart.Chart, pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Chart geometry uses a top-left origin.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	plot := tc.Plot()
	page.SetStrokeColor(color.DeviceGray(0.5))
	page.SetLineWidth(0.5)
	page.Rectangle(plot.Left, plot.Top, plot.Width, plot.Height)
	page.Stroke()
	if conf.Grid {
		drawTicks(page.Writer, c, plot)
	}

	for i, s := range c.Series() {
		res := s.Paths()
		if res == nil {
			continue
		}
		gray := 0.6 * float64(i) / float64(len(c.Series()))

		for _, band := range res.Band {
			page.SetFillColor(color.DeviceGray(0.85))
			drawPath(page.Writer, band)
			page.Fill()
		}

		page.PushGraphicsState()
		if res.Clip != nil {
			drawPath(page.Writer, res.Clip)
			page.ClipNonZero()
			page.EndPath()
		}
		if res.Fill != nil {
			page.SetFillColor(color.DeviceGray(gray + 0.3))
			drawPath(page.Writer, res.Fill)
			if op, ok := tc.Series[i].Op.(testcases.Fill); ok && op.Rule == testcases.EvenOdd {
				page.FillEvenOdd()
			} else {
				page.Fill()
			}
		}
		if op, ok := tc.Series[i].Op.(testcases.Stroke); ok && res.Stroke != nil {
			page.SetStrokeColor(color.DeviceGray(gray))
			page.SetLineWidth(op.Width)
			page.SetLineCap(op.Cap)
			page.SetLineJoin(op.Join)
			page.SetMiterLimit(op.MiterLimit)
			if len(op.Dash) > 0 {
				page.SetLineDash(op.Dash, op.DashPhase)
			}
			drawPath(page.Writer, res.Stroke)
			page.Stroke()
		}
		page.PopGraphicsState()
	}

	return page.Close()
}

// drawTicks draws short tick marks along the left and bottom plot edges.
func drawTicks(w *graphics.Writer, c *chart.Chart, plot orient.Box) {
	w.SetStrokeColor(color.DeviceGray(0))
	w.SetLineWidth(0.5)
	for _, a := range c.Axes() {
		s := c.Scale(a.Scale)
		for _, v := range a.State().Splits {
			pos, err := c.ValToPos(v, a.Scale, false)
			if err != nil || math.IsNaN(pos) {
				continue
			}
			if s.Ori == orient.Horizontal {
				y := plot.Top + plot.Height
				w.MoveTo(pos, y)
				w.LineTo(pos, y+4)
			} else {
				w.MoveTo(plot.Left, pos)
				w.LineTo(plot.Left-4, pos)
			}
		}
	}
	w.Stroke()
}

func drawPath(w *graphics.Writer, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			w.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			w.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			w.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			w.ClosePath()
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	cmd := exec.Command(
		conf.GhostPath, "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
