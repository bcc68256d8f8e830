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

package canvas

import (
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// Color is a packed 0xRRGGBBAA value with non-premultiplied alpha.
type Color uint32

// Black is the color used for all line drawing.
const Black Color = 0x000000ff

// NewColor packs the given channel values into a Color.
func NewColor(r, g, b, a uint8) Color {
	return Color(r)<<24 | Color(g)<<16 | Color(b)<<8 | Color(a)
}

// Bytes returns the four channels in buffer order.
func (c Color) Bytes() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	cr, cg, cb, ca := c.Bytes()
	return color.NRGBA{R: cr, G: cg, B: cb, A: ca}.RGBA()
}

// Point is an integer point in the centered coordinate system.
type Point struct {
	X, Y int
}

// Vec converts p to a vector.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// PointOf returns the integer point nearest to v.
func PointOf(v vec.Vec2) Point {
	return Point{
		X: int(roundHalfUp(v.X)),
		Y: int(roundHalfUp(v.Y)),
	}
}

// Line is a straight line between two points.
type Line struct {
	P0, P1 Point
}

var _ color.Color = Color(0)
