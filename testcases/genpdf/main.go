// seehuhn.de/go/canvas - a line rasterizer for RGBA pixel buffers
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

// Command genpdf writes every test case as a vector PDF file, with the
// lines stroked one unit wide.  Viewing the PDF next to the rendered
// output of cmd/linedraw shows where pixels deviate from the ideal line.
//
// With -png, the PDF files are additionally rendered to PNG using
// Ghostscript.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/canvas/testcases"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

var (
	outDir  = flag.String("dir", "testdata/reference", "output directory")
	withPNG = flag.Bool("png", false, "also render PNG files using Ghostscript")
)

func main() {
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		slog.Error("could not create output directory", "dir", *outDir, "error", err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")

			if err := generatePDF(tc, pdfPath); err != nil {
				slog.Error("could not write PDF", "case", name, "error", err)
				os.Exit(1)
			}

			if *withPNG {
				pngPath := filepath.Join(*outDir, name+".png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					slog.Error("could not render PNG", "case", name, "error", err)
					os.Exit(1)
				}
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF has y pointing up, like the canvas, so only a shift is needed.
	// The extra half unit moves integer points to pixel centers.
	page.Transform(matrix.Matrix{
		1, 0,
		0, 1,
		float64(tc.Width)/2 + 0.5, float64(tc.Height)/2 - 0.5,
	})

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1)
	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinMiter)

	for _, l := range tc.Lines {
		page.MoveTo(float64(l.X0), float64(l.Y0))
		page.LineTo(float64(l.X1), float64(l.Y1))
	}

	if tc.Path != nil {
		for cmd, pts := range tc.Path {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
				// curves are drawn as chords, like the canvas does
				p := pts[len(pts)-1]
				page.LineTo(p.X, p.Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}

	if len(tc.Lines) > 0 || tc.Path != nil {
		page.Stroke()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("gs: %w", err)
	}
	return nil
}
