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
	"log/slog"
	"testing"
)

func TestLoggerDefault(t *testing.T) {
	SetLogger(nil)
	if Logger() != slog.Default() {
		t.Error("Logger() is not slog.Default() when unset")
	}
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	l := slog.New(slog.DiscardHandler)
	SetLogger(l)
	if Logger() != l {
		t.Error("Logger() does not return the installed logger")
	}

	SetLogger(nil)
	if Logger() != slog.Default() {
		t.Error("SetLogger(nil) did not restore the default")
	}
}
