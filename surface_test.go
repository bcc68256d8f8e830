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
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestPresentImageSurface(t *testing.T) {
	c, err := New(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	c.DrawLine(Point{X: -2, Y: 0}, Point{X: 2, Y: 0})

	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if err := c.Present(NewImageSurface(dst)); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dst.Pix, c.Pix()) {
		t.Error("surface content differs from the canvas buffer")
	}
}

func TestImageSurfaceReplaces(t *testing.T) {
	// the destination starts out white; unset canvas pixels are
	// transparent and must replace, not blend
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range dst.Pix {
		dst.Pix[i] = 255
	}

	c, err := New(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	c.PutPixel(0, 0) // buffer pixel (1,1)

	s := NewImageSurface(dst)
	if err := s.PutImageData(c.Pix(), 2, 2, image.Point{X: 1, Y: 1}); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		x, y   int
		expect color.RGBA
	}{
		{0, 0, color.RGBA{255, 255, 255, 255}},
		{1, 1, color.RGBA{}},
		{2, 2, color.RGBA{A: 255}},
		{3, 3, color.RGBA{255, 255, 255, 255}},
	}
	for _, tc := range cases {
		if got := dst.RGBAAt(tc.x, tc.y); got != tc.expect {
			t.Errorf("pixel (%d,%d) = %v, want %v", tc.x, tc.y, got, tc.expect)
		}
	}
}

func TestImageSurfaceClips(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 3, 3))
	c, err := New(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	c.DrawLine(Point{X: -2, Y: 1}, Point{X: 2, Y: 1})

	s := NewImageSurface(dst)
	if err := s.PutImageData(c.Pix(), 4, 4, image.Point{X: 1, Y: 0}); err != nil {
		t.Fatal(err)
	}
	// buffer row 1, columns 0 and 1 land on dst columns 1 and 2
	for x := 1; x < 3; x++ {
		if got := dst.RGBAAt(x, 1); got != (color.RGBA{A: 255}) {
			t.Errorf("pixel (%d,1) = %v, want opaque black", x, got)
		}
	}
}

func TestSurfaceBufferSize(t *testing.T) {
	surfaces := []Surface{
		NewImageSurface(image.NewRGBA(image.Rect(0, 0, 4, 4))),
		&EncoderSurface{W: io.Discard, Format: PNG},
	}
	for _, s := range surfaces {
		err := s.PutImageData(make([]byte, 15), 2, 2, image.Point{})
		if !errors.Is(err, ErrBufferSize) {
			t.Errorf("%T: got %v, want ErrBufferSize", s, err)
		}
		err = s.PutImageData(nil, 0, 0, image.Point{})
		if !errors.Is(err, ErrBufferSize) {
			t.Errorf("%T: got %v, want ErrBufferSize for empty frame", s, err)
		}
	}
}

func TestEncoderSurface(t *testing.T) {
	decoders := map[Format]func(io.Reader) (image.Image, error){
		PNG:  png.Decode,
		BMP:  bmp.Decode,
		TIFF: tiff.Decode,
	}

	// an opaque frame: white background with a black line
	const w, h = 8, 6
	c, err := New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	for i := range c.Pix() {
		c.Pix()[i] = 255
	}
	c.DrawLine(Point{X: -3, Y: 1}, Point{X: 3, Y: 1})

	for format, decode := range decoders {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := c.Present(&EncoderSurface{W: &buf, Format: format}); err != nil {
				t.Fatal(err)
			}

			img, err := decode(&buf)
			if err != nil {
				t.Fatal(err)
			}
			if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
				t.Fatalf("decoded size %v", img.Bounds())
			}
			for y := range h {
				for x := range w {
					r, g, b, a := img.At(x, y).RGBA()
					expect := c.At(x, y)
					er, eg, eb, ea := expect.RGBA()
					if r != er || g != eg || b != eb || a != ea {
						t.Errorf("pixel (%d,%d) = %d %d %d %d, want %d %d %d %d",
							x, y, r, g, b, a, er, eg, eb, ea)
					}
				}
			}
		})
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestEncoderSurfaceErrors(t *testing.T) {
	c, err := New(2, 2)
	if err != nil {
		t.Fatal(err)
	}

	err = c.Present(&EncoderSurface{W: io.Discard, Format: Format(99)})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("got %v, want ErrUnknownFormat", err)
	}

	err = c.Present(&EncoderSurface{W: failingWriter{}, Format: PNG})
	if !errors.Is(err, errWrite) {
		t.Errorf("got %v, want write error", err)
	}
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		name   string
		expect Format
	}{
		{"png", PNG},
		{"PNG", PNG},
		{"bmp", BMP},
		{"tif", TIFF},
		{"tiff", TIFF},
	}
	for _, tc := range cases {
		got, err := ParseFormat(tc.name)
		if err != nil || got != tc.expect {
			t.Errorf("ParseFormat(%q) = %v, %v", tc.name, got, err)
		}
	}

	for _, name := range []string{"", "gif", "jpeg"} {
		if _, err := ParseFormat(name); !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("ParseFormat(%q): got %v, want ErrUnknownFormat", name, err)
		}
	}

	if ext := TIFF.Ext(); ext != ".tiff" {
		t.Errorf("TIFF.Ext() = %q", ext)
	}
}
