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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestColorBytes(t *testing.T) {
	cases := []struct {
		r, g, b, a uint8
		packed     Color
	}{
		{0, 0, 0, 255, Black},
		{0x12, 0x34, 0x56, 0x78, 0x12345678},
		{255, 255, 255, 255, 0xffffffff},
		{0, 0, 0, 0, 0},
	}
	for _, tc := range cases {
		c := NewColor(tc.r, tc.g, tc.b, tc.a)
		if c != tc.packed {
			t.Errorf("NewColor(%d, %d, %d, %d) = %#08x, want %#08x",
				tc.r, tc.g, tc.b, tc.a, uint32(c), uint32(tc.packed))
		}
		r, g, b, a := c.Bytes()
		if r != tc.r || g != tc.g || b != tc.b || a != tc.a {
			t.Errorf("%#08x.Bytes() = %d %d %d %d", uint32(c), r, g, b, a)
		}
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Black.RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("Black.RGBA() = %d %d %d %d", r, g, b, a)
	}

	// non-premultiplied storage, premultiplied result
	r, _, _, a = NewColor(255, 0, 0, 128).RGBA()
	if a != 128*0x101 || r != a {
		t.Errorf("half transparent red: r=%d a=%d", r, a)
	}
}

func TestPointOf(t *testing.T) {
	cases := []struct {
		v      vec.Vec2
		expect Point
	}{
		{vec.Vec2{X: 0, Y: 0}, Point{0, 0}},
		{vec.Vec2{X: 0.5, Y: -0.5}, Point{1, 0}},
		{vec.Vec2{X: -1.5, Y: 1.49}, Point{-1, 1}},
		{vec.Vec2{X: 2.51, Y: -2.51}, Point{3, -3}},
	}
	for _, tc := range cases {
		if got := PointOf(tc.v); got != tc.expect {
			t.Errorf("PointOf(%v) = %v, want %v", tc.v, got, tc.expect)
		}
	}
}

func TestPointVec(t *testing.T) {
	p := Point{X: -3, Y: 7}
	if got := PointOf(p.Vec()); got != p {
		t.Errorf("PointOf(%v.Vec()) = %v", p, got)
	}
}
