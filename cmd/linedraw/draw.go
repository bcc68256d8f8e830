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
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"seehuhn.de/go/canvas"
)

// DrawCmd draws the lines given on the command line into one image file.
type DrawCmd struct {
	Width  int      `help:"Canvas width in pixels." default:"200"`
	Height int      `help:"Canvas height in pixels." default:"200"`
	Out    string   `help:"Output file." short:"o" required:""`
	Format string   `help:"Output format (png, bmp, tiff). Derived from the output file name if not given."`
	Lines  []string `arg:"" name:"line" help:"Line as x0,y0:x1,y1 in centered coordinates." optional:""`

	format canvas.Format
	lines  []canvas.Line
}

func (c *DrawCmd) Validate(kctx *kong.Context) error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", c.Width, c.Height)
	}

	name := c.Format
	if name == "" {
		name = strings.TrimPrefix(filepath.Ext(c.Out), ".")
	}
	format, err := canvas.ParseFormat(name)
	if err != nil {
		return err
	}
	c.format = format

	c.lines = c.lines[:0]
	for _, s := range c.Lines {
		l, err := parseLine(s)
		if err != nil {
			return err
		}
		c.lines = append(c.lines, l)
	}
	return nil
}

func (c *DrawCmd) Run() error {
	cv, err := canvas.New(c.Width, c.Height)
	if err != nil {
		return err
	}
	cv.DrawLines(c.lines...)

	if err := writeFrame(cv, c.Out, c.format); err != nil {
		return err
	}
	slog.Info("wrote image", "file", c.Out, "lines", len(c.lines), "dropped", cv.Dropped())
	return nil
}

// parseLine parses a line given as "x0,y0:x1,y1".
func parseLine(s string) (canvas.Line, error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return canvas.Line{}, fmt.Errorf("invalid line %q: missing ':'", s)
	}
	p0, err := parsePoint(a)
	if err != nil {
		return canvas.Line{}, fmt.Errorf("invalid line %q: %w", s, err)
	}
	p1, err := parsePoint(b)
	if err != nil {
		return canvas.Line{}, fmt.Errorf("invalid line %q: %w", s, err)
	}
	return canvas.Line{P0: p0, P1: p1}, nil
}

// parsePoint parses a point given as "x,y".
func parsePoint(s string) (canvas.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return canvas.Point{}, fmt.Errorf("invalid point %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return canvas.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return canvas.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return canvas.Point{X: x, Y: y}, nil
}
