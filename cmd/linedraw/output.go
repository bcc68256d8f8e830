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
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"seehuhn.de/go/canvas"
)

// writeFrame presents cv to an image file.  The file is written under a
// temporary name and renamed once complete, so that an existing file is
// never left half-written.
func writeFrame(cv *canvas.Canvas, name string, format canvas.Format) (err error) {
	out, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", name, err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("could not close %q: %w", out.Name(), cerr)
		}
		if err == nil {
			err = os.Rename(out.Name(), name)
		}
		if err != nil {
			os.Remove(out.Name())
		}
	}()

	w := bufio.NewWriter(out)
	if err := cv.Present(&canvas.EncoderSurface{W: w, Format: format}); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("could not write %q: %w", out.Name(), err)
	}
	return out.Sync()
}
