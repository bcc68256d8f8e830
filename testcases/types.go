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

// Package testcases holds a table of line drawing examples together with
// the pixels they are expected to produce.
//
// All coordinates in Lines and Path use the centered coordinate system of
// the canvas package: (0,0) is the middle of the buffer and y grows
// upwards.  The expected pixels in Want are buffer coordinates, with
// (0,0) at the top-left corner.
package testcases

import (
	"image"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name    string        // lowercase a-z and _ only
	Width   int           // canvas width in pixels
	Height  int           // canvas height in pixels
	Lines   []Line        // lines to draw, in order
	Path    path.Path     // drawn after Lines (may be nil)
	Want    []image.Point // buffer pixels which end up black
	Dropped int           // number of writes outside the buffer
}

// Line is a line between two integer points.
type Line struct {
	X0, Y0 int
	X1, Y1 int
}

// pixels builds a list of buffer points from x, y pairs.
func pixels(xy ...int) []image.Point {
	if len(xy)%2 != 0 {
		panic("odd number of coordinates")
	}
	res := make([]image.Point, 0, len(xy)/2)
	for i := 0; i < len(xy); i += 2 {
		res = append(res, image.Point{X: xy[i], Y: xy[i+1]})
	}
	return res
}

// row lists the buffer pixels x0, ..., x1-1 in row y.
func row(y, x0, x1 int) []image.Point {
	var res []image.Point
	for x := x0; x < x1; x++ {
		res = append(res, image.Point{X: x, Y: y})
	}
	return res
}

// column lists the buffer pixels y0, ..., y1-1 in column x.
func column(x, y0, y1 int) []image.Point {
	var res []image.Point
	for y := y0; y < y1; y++ {
		res = append(res, image.Point{X: x, Y: y})
	}
	return res
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// segment is one path command together with its points.
type segment struct {
	cmd path.Command
	pts []vec.Vec2
}

// makePath returns a path which yields the given segments in order.
func makePath(segs ...segment) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, s := range segs {
			if !yield(s.cmd, s.pts) {
				return
			}
		}
	}
}

func moveTo(p vec.Vec2) segment { return segment{path.CmdMoveTo, []vec.Vec2{p}} }
func lineTo(p vec.Vec2) segment { return segment{path.CmdLineTo, []vec.Vec2{p}} }
func quadTo(c, p vec.Vec2) segment { return segment{path.CmdQuadTo, []vec.Vec2{c, p}} }
func cubeTo(c1, c2, p vec.Vec2) segment { return segment{path.CmdCubeTo, []vec.Vec2{c1, c2, p}} }
func closePath() segment { return segment{cmd: path.CmdClose} }
