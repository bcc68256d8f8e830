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

package main

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync/atomic"

	"seehuhn.de/go/canvas"
	"seehuhn.de/go/canvas/internal/parallel"
	"seehuhn.de/go/canvas/testcases"
)

// CasesCmd renders every entry of the test case table into image files.
type CasesCmd struct {
	Dir     string `help:"Output directory." default:"cases"`
	Format  string `help:"Output format." enum:"png,bmp,tiff" default:"png"`
	Workers int    `help:"Number of workers, 0 for one per CPU." default:"0"`
}

func (c *CasesCmd) Run() error {
	format, err := canvas.ParseFormat(c.Format)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return fmt.Errorf("unable to create output folder %q: %w", c.Dir, err)
	}

	pool := parallel.Start(c.Workers)

	var renderedCount, errCount atomic.Uint64
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pool.Do(func() {
				logger := slog.Default().With("case", name)

				cv, err := renderCase(tc)
				if err != nil {
					errCount.Add(1)
					logger.Error("could not render case", "error", err)
					return
				}

				file := filepath.Join(c.Dir, name+format.Ext())
				if err := writeFrame(cv, file, format); err != nil {
					errCount.Add(1)
					logger.Error("could not write image", "file", file, "error", err)
					return
				}
				if cv.Dropped() != tc.Dropped {
					logger.Warn("unexpected number of dropped pixels",
						"dropped", cv.Dropped(), "want", tc.Dropped)
				}
				renderedCount.Add(1)
			})
		}
	}

	pool.Wait(true)

	rendered := renderedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "rendered", rendered, "errors", errors,
		"total", rendered+errors)

	if errors > 0 {
		return fmt.Errorf("error rendering %d cases", errors)
	}
	return nil
}

// renderCase draws a test case into a new canvas.
func renderCase(tc testcases.TestCase) (*canvas.Canvas, error) {
	cv, err := canvas.New(tc.Width, tc.Height)
	if err != nil {
		return nil, err
	}
	for _, l := range tc.Lines {
		cv.DrawLine(canvas.Point{X: l.X0, Y: l.Y0}, canvas.Point{X: l.X1, Y: l.Y1})
	}
	if tc.Path != nil {
		cv.DrawPath(tc.Path)
	}
	return cv, nil
}
