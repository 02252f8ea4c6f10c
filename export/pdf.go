// seehuhn.de/go/plotting - rasterize implicit curves
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

package export

import (
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/plotting"
)

// writePDF writes s as a single page PDF file, one point per pixel.
// The page content is drawn in plane coordinates, so that the file can be
// enlarged without loss.  Horizontal runs of curve pixels are merged into
// a single rectangle each.
func writePDF(w io.Writer, s *plotting.Snapshot) (err error) {
	tmp, err := os.CreateTemp("", "plotting-*.pdf")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if err := tmp.Close(); err != nil {
		return err
	}
	defer os.Remove(tmpName)

	if err := generatePDF(s, tmpName); err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	f, err := os.Open(tmpName)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}

func generatePDF(s *plotting.Snapshot, pdfPath string) error {
	m := s.Mapper()
	size := float64(s.Size())
	paper := &pdf.Rectangle{
		URx: size,
		URy: size,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfcolor.DeviceGray(1))
	page.Rectangle(0, 0, size, size)
	page.Fill()

	// PDF origin is bottom-left, like the pixel grid: no flip is needed.
	page.Transform(m.Matrix())

	dom := m.Domain()
	axes := (&path.Data{}).
		MoveTo(vec.Vec2{X: dom.LLx, Y: 0}).
		LineTo(vec.Vec2{X: dom.URx, Y: 0}).
		MoveTo(vec.Vec2{X: 0, Y: dom.LLy}).
		LineTo(vec.Vec2{X: 0, Y: dom.URy})
	page.SetStrokeColor(pdfcolor.DeviceGray(0.5))
	page.SetLineWidth(m.PixelsToUnits(1))
	page.SetLineCap(graphics.LineCapButt)
	coordIdx := 0
	for _, cmd := range axes.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(axes.Coords[coordIdx].X, axes.Coords[coordIdx].Y)
			coordIdx++
		case path.CmdLineTo:
			page.LineTo(axes.Coords[coordIdx].X, axes.Coords[coordIdx].Y)
			coordIdx++
		}
	}
	page.Stroke()

	runs := rowRuns(s)
	if len(runs) > 0 {
		pixel := m.PixelsToUnits(1)
		page.SetFillColor(pdfcolor.DeviceGray(0))
		for _, r := range runs {
			p := m.Point(r.X0, r.Y)
			page.Rectangle(p.X, p.Y, float64(r.X1-r.X0+1)*pixel, pixel)
		}
		page.Fill()
	}

	return page.Close()
}

// run is a horizontal sequence of curve pixels.
type run struct {
	Y, X0, X1 int // X1 is inclusive
}

// rowRuns returns the runs of set pixels of s, row by row.
func rowRuns(s *plotting.Snapshot) []run {
	var runs []run
	s.Accept(func(x, y int, value bool) {
		if !value {
			return
		}
		if k := len(runs) - 1; k >= 0 && runs[k].Y == y && runs[k].X1 == x-1 {
			runs[k].X1 = x
			return
		}
		runs = append(runs, run{Y: y, X0: x, X1: x})
	})
	return runs
}
