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
	"errors"
	"fmt"
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrInvalidSize is returned by [New] for non-positive dimensions.
var ErrInvalidSize = errors.New("invalid canvas size")

// MaxSpan is the largest extent, in pixels along either axis, of a line
// which [Canvas.DrawLine] will draw.
const MaxSpan = 1 << 24

// Canvas is an off-screen RGBA pixel buffer with a centered coordinate
// system: (0,0) is the middle of the buffer, x grows to the right and y
// grows upwards.
//
// The buffer holds 4 bytes per pixel (R, G, B, A) in row-major order,
// starting with the top row.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	pix    []byte

	// toBuffer maps centered coordinates to buffer coordinates.
	toBuffer matrix.Matrix

	// bounds is the buffer area in buffer coordinates.
	bounds rect.Rect

	dropped int // out-of-range writes since the last Allocate
}

// New returns a canvas of the given size with a freshly allocated,
// zero-filled buffer.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidSize)
	}

	c := &Canvas{
		width:  width,
		height: height,
		toBuffer: matrix.Matrix{
			1, 0,
			0, -1,
			float64(width) / 2, float64(height) / 2,
		},
		bounds: rect.Rect{
			LLx: 0,
			LLy: 0,
			URx: float64(width),
			URy: float64(height),
		},
	}
	c.Allocate()
	return c, nil
}

// Allocate replaces the pixel buffer by a zero-filled one.
// This starts a new frame.
func (c *Canvas) Allocate() {
	c.pix = make([]byte, c.width*c.height*4)
	c.dropped = 0
}

// Width returns the buffer width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the buffer height in pixels.
func (c *Canvas) Height() int { return c.height }

// Pix returns the live pixel buffer.
func (c *Canvas) Pix() []byte { return c.pix }

// Dropped returns the number of pixel writes which were skipped since the
// last call to Allocate, because they fell outside the buffer.
func (c *Canvas) Dropped() int { return c.dropped }

// Image returns an image.RGBA which shares the pixel buffer of c.
// The image becomes stale after the next call to Allocate.
func (c *Canvas) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    c.pix,
		Stride: 4 * c.width,
		Rect:   image.Rect(0, 0, c.width, c.height),
	}
}

// At returns the color of the pixel at buffer coordinates (sx, sy).
// Pixels outside the buffer are reported as zero.
func (c *Canvas) At(sx, sy int) Color {
	if sx < 0 || sx >= c.width || sy < 0 || sy >= c.height {
		return 0
	}
	i := 4*sx + 4*c.width*sy
	return NewColor(c.pix[i], c.pix[i+1], c.pix[i+2], c.pix[i+3])
}

// Present copies the pixel buffer to the surface s, with the top-left
// corner of the buffer at the origin of the surface.
func (c *Canvas) Present(s Surface) error {
	err := s.PutImageData(c.pix, c.width, c.height, image.Point{})
	if err != nil {
		return fmt.Errorf("present %dx%d frame: %w", c.width, c.height, err)
	}
	return nil
}

// Interpolate returns the values of the dependent variable for each
// integer step of the independent variable, from i0 up to but excluding i1.
// The line passes through (i0, d0) and (i1, d1).
//
// If i0 == i1 the result is the single value d0.
// If i0 > i1, or if i1-i0 overflows an int, the result is empty.
func Interpolate(i0 int, d0 float64, i1 int, d1 float64) []float64 {
	if i0 == i1 {
		return []float64{d0}
	}
	n, ok := span(i0, i1)
	if i0 > i1 || !ok {
		return nil
	}

	values := make([]float64, 0, n)
	a := (d1 - d0) / float64(n)
	d := d0
	for i := i0; i < i1; i++ {
		values = append(values, d)
		d += a
	}
	return values
}

// DrawLine draws an opaque black line from p0 towards p1.
// One pixel is set for every integer step along the longer axis;
// the end point p1 itself is not drawn, unless p0 == p1 in which case
// exactly one pixel is set.
//
// Lines extending more than [MaxSpan] pixels along either axis are
// skipped with a warning.
func (c *Canvas) DrawLine(p0, p1 Point) {
	if p0 == p1 {
		c.PutPixel(float64(p0.X), float64(p0.Y))
		return
	}

	dx, okX := span(p0.X, p1.X)
	dy, okY := span(p0.Y, p1.Y)
	if !okX || !okY || dx > MaxSpan || dy > MaxSpan {
		Logger().Warn("line too long", "p0", p0, "p1", p1)
		return
	}

	if dx > dy {
		// horizontal-ish: step x, interpolate y
		if p0.X > p1.X {
			p0, p1 = p1, p0
		}
		ys := Interpolate(p0.X, float64(p0.Y), p1.X, float64(p1.Y))
		for x := p0.X; x < p1.X; x++ {
			c.PutPixel(float64(x), ys[x-p0.X])
		}
	} else {
		// vertical-ish: step y, interpolate x
		if p0.Y > p1.Y {
			p0, p1 = p1, p0
		}
		xs := Interpolate(p0.Y, float64(p0.X), p1.Y, float64(p1.X))
		for y := p0.Y; y < p1.Y; y++ {
			c.PutPixel(xs[y-p0.Y], float64(y))
		}
	}
}

// DrawLines draws each of the given lines.
func (c *Canvas) DrawLines(lines ...Line) {
	for _, l := range lines {
		c.DrawLine(l.P0, l.P1)
	}
}

// DrawPath draws the straight segments of a path.
// Path coordinates are in the centered coordinate system and are rounded
// to the nearest integer point.  Quadratic and cubic segments are drawn
// as a straight line to their end point.
func (c *Canvas) DrawPath(p path.Path) {
	var current vec.Vec2 // current point
	var subpath vec.Vec2 // subpath start

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			subpath = current

		case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
			next := pts[len(pts)-1]
			c.DrawLine(PointOf(current), PointOf(next))
			current = next

		case path.CmdClose:
			if current != subpath {
				c.DrawLine(PointOf(current), PointOf(subpath))
			}
			current = subpath
		}
	}
}

// PutPixel sets the pixel at centered coordinates (x, y) to opaque black.
//
// Writes which fall outside the buffer are skipped.  They are logged at
// warning level and counted, see [Canvas.Dropped].
func (c *Canvas) PutPixel(x, y float64) {
	fx, fy := c.transform(x, y)

	// written as a negation so that NaN coordinates are rejected
	if !(fx >= c.bounds.LLx && fx < c.bounds.URx && fy >= c.bounds.LLy && fy < c.bounds.URy) {
		c.dropped++
		Logger().Warn("pixel out of range", "x", x, "y", y, "sx", fx, "sy", fy)
		return
	}

	c.set(int(fx), int(fy), Black)
}

// ToBuffer maps centered coordinates to buffer coordinates.
// The result may lie outside the buffer.
func (c *Canvas) ToBuffer(x, y float64) (sx, sy int) {
	fx, fy := c.transform(x, y)
	return int(fx), int(fy)
}

// transform applies toBuffer and rounds the result to whole pixels.
func (c *Canvas) transform(x, y float64) (float64, float64) {
	m := c.toBuffer
	bx := m[0]*x + m[2]*y + m[4]
	by := m[1]*x + m[3]*y + m[5]
	return roundHalfUp(bx), roundHalfUp(by)
}

// set writes col to the pixel at buffer coordinates (sx, sy),
// which must be inside the buffer.
func (c *Canvas) set(sx, sy int, col Color) {
	offset := 4*sx + 4*c.width*sy
	r, g, b, a := col.Bytes()
	c.pix[offset] = r
	c.pix[offset+1] = g
	c.pix[offset+2] = b
	c.pix[offset+3] = a
}

// roundHalfUp rounds to the nearest integer, with halves rounded towards
// positive infinity: -0.5 becomes 0, not -1 as with math.Round.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// span returns |b-a|.  The second result is false if the difference
// does not fit into an int.
func span(a, b int) (int, bool) {
	if a > b {
		a, b = b, a
	}
	d := b - a
	return d, d >= 0
}
