// Command export writes the test case table to JSON, for use by external
// tools.  Run from the go-canvas module root directory.
package main

import (
	"encoding/json"
	"log/slog"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/canvas/testcases"
	"seehuhn.de/go/geom/path"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := write("testdata/testcases.json", out); err != nil {
		slog.Error("could not write test cases", "error", err)
		os.Exit(1)
	}
	slog.Info("wrote test cases", "count", len(out.TestCases))
}

func write(name string, v any) (err error) {
	if err := os.MkdirAll("testdata", 0755); err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type jsonTestCase struct {
	Name    string        `json:"name"`
	Width   int           `json:"width"`
	Height  int           `json:"height"`
	Lines   [][4]int      `json:"lines,omitempty"`
	Path    []jsonSegment `json:"path,omitempty"`
	Want    [][2]int      `json:"want"`
	Dropped int           `json:"dropped,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:    category + "_" + tc.Name,
		Width:   tc.Width,
		Height:  tc.Height,
		Want:    make([][2]int, 0, len(tc.Want)),
		Dropped: tc.Dropped,
	}
	for _, l := range tc.Lines {
		jtc.Lines = append(jtc.Lines, [4]int{l.X0, l.Y0, l.X1, l.Y1})
	}
	if tc.Path != nil {
		jtc.Path = pathToJSON(tc.Path)
	}
	for _, p := range tc.Want {
		jtc.Want = append(jtc.Want, [2]int{p.X, p.Y})
	}
	return jtc
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		var seg jsonSegment
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		seg.Pts = make([][]float64, len(pts))
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
