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

// Command linedraw renders lines into image files.
//
//	linedraw draw -o out.png 0,0:50,20 -30,-40:10,60
//	linedraw cases --dir cases --format bmp
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"seehuhn.de/go/canvas"
)

// CLI is the top-level command line of linedraw.
type CLI struct {
	LogLevel string `help:"Log level" enum:"debug,info,warn,error" default:"info"`

	Draw  DrawCmd  `cmd:"" help:"Draw lines into an image file."`
	Cases CasesCmd `cmd:"" help:"Render all built-in test cases."`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("linedraw"),
		kong.Description("Draw anti-alias-free lines into RGBA images."),
		kong.UsageOnError(),
	)

	logger, err := newLogger(cli.LogLevel)
	kctx.FatalIfErrorf(err)
	slog.SetDefault(logger)
	canvas.SetLogger(logger)

	err = kctx.Run()
	kctx.FatalIfErrorf(err)
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return slog.New(h), nil
}
