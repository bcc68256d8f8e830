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
	"sync/atomic"
)

// loggerPtr holds the logger installed by SetLogger, or nil.
var loggerPtr atomic.Pointer[slog.Logger]

// SetLogger sets the logger used for diagnostics, such as pixel writes
// outside the buffer.  Pass nil to go back to [slog.Default].
//
// To silence the package, use
//
//	canvas.SetLogger(slog.New(slog.DiscardHandler))
func SetLogger(l *slog.Logger) {
	loggerPtr.Store(l)
}

// Logger returns the logger used by the package.
func Logger() *slog.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}
	return slog.Default()
}
