package testcases

import "slices"

var pathCases = []TestCase{
	{
		// the base, the right side and the left side; (2,8) is shared
		Name:   "triangle",
		Width:  10,
		Height: 10,
		Path: makePath(
			moveTo(pt(-3, -3)),
			lineTo(pt(3, -3)),
			lineTo(pt(0, 3)),
			closePath(),
		),
		Want: slices.Concat(
			row(8, 2, 8),
			pixels(8, 8, 8, 7, 7, 6, 7, 5, 6, 4, 6, 3),
			pixels(3, 7, 3, 6, 4, 5, 4, 4, 5, 3),
		),
	},
	{
		// the final end point (4,-4) is not drawn
		Name:   "open_polyline",
		Width:  12,
		Height: 12,
		Path: makePath(
			moveTo(pt(-4, 4)),
			lineTo(pt(4, 4)),
			lineTo(pt(4, -4)),
		),
		Want: append(row(2, 2, 10), column(10, 3, 11)...),
	},
	{
		// non-integer vertices are rounded before drawing
		Name:   "rounded_vertices",
		Width:  10,
		Height: 10,
		Path: makePath(
			moveTo(pt(-2.4, 0.2)),
			lineTo(pt(1.6, -0.3)),
		),
		Want: row(5, 3, 7),
	},
	{
		// curves are drawn as chords; the control points are not visited
		Name:   "curve_chords",
		Width:  10,
		Height: 10,
		Path: makePath(
			moveTo(pt(-3, 0)),
			quadTo(pt(0, 4), pt(3, 0)),
			cubeTo(pt(2, 2), pt(1, 2), pt(0, -3)),
		),
		Want: slices.Concat(row(5, 2, 8), pixels(7, 6, 6, 7, 5, 8)),
	},
}
