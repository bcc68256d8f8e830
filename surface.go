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
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// A Surface receives finished frames.
//
// PutImageData places a width×height RGBA frame with its top-left corner at
// the given point of the surface.  pix holds 4 bytes per pixel in
// row-major order.  Implementations must not retain pix after returning.
type Surface interface {
	PutImageData(pix []byte, width, height int, at image.Point) error
}

// ErrBufferSize is returned when a frame buffer does not match its
// declared dimensions.
var ErrBufferSize = errors.New("buffer size does not match dimensions")

// frame wraps pix as an image without copying.
func frame(pix []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || len(pix) != width*height*4 {
		return nil, fmt.Errorf("%d bytes for %dx%d: %w", len(pix), width, height, ErrBufferSize)
	}
	return &image.RGBA{
		Pix:    pix,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// ImageSurface presents frames by copying them into an image.
// Pixels are replaced, not blended.  Parts of the frame which fall outside
// the bounds of Dst are clipped.
type ImageSurface struct {
	Dst draw.Image
}

// NewImageSurface returns a surface which draws into dst.
func NewImageSurface(dst draw.Image) *ImageSurface {
	return &ImageSurface{Dst: dst}
}

// PutImageData implements the [Surface] interface.
func (s *ImageSurface) PutImageData(pix []byte, width, height int, at image.Point) error {
	src, err := frame(pix, width, height)
	if err != nil {
		return err
	}
	r := image.Rectangle{Min: at, Max: at.Add(src.Rect.Size())}
	draw.Draw(s.Dst, r, src, image.Point{}, draw.Src)
	return nil
}

// Format is an image file format supported by [EncoderSurface].
type Format int

// These are the supported file formats.
const (
	PNG Format = iota
	BMP
	TIFF
)

// ErrUnknownFormat is returned by [ParseFormat] for unsupported names.
var ErrUnknownFormat = errors.New("unknown image format")

// ParseFormat converts a format name like "png" to a Format.
// Names are case-insensitive.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext returns the usual file name extension for f, including the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// EncoderSurface presents frames by encoding them as image files.
// Each call to PutImageData writes one complete file to W.
// Image files have no origin, so the placement point is ignored.
type EncoderSurface struct {
	W      io.Writer
	Format Format
}

// PutImageData implements the [Surface] interface.
func (s *EncoderSurface) PutImageData(pix []byte, width, height int, _ image.Point) error {
	img, err := frame(pix, width, height)
	if err != nil {
		return err
	}

	switch s.Format {
	case PNG:
		err = png.Encode(s.W, img)
	case BMP:
		err = bmp.Encode(s.W, img)
	case TIFF:
		err = tiff.Encode(s.W, img, nil)
	default:
		return fmt.Errorf("%s: %w", s.Format, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.Format, err)
	}
	return nil
}
