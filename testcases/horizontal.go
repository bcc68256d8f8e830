package testcases

import "slices"

var horizontalCases = []TestCase{
	{
		Name:   "center_row",
		Width:  10,
		Height: 10,
		Lines:  []Line{{X0: -2, Y0: 0, X1: 2, Y1: 0}},
		Want:   row(5, 3, 7),
	},
	{
		Name:   "reversed",
		Width:  10,
		Height: 10,
		Lines:  []Line{{X0: 2, Y0: 0, X1: -2, Y1: 0}},
		Want:   row(5, 3, 7),
	},
	{
		// slope 1/2: y takes the values 0, 0.5, 1, 1.5
		Name:   "gentle_slope",
		Width:  10,
		Height: 10,
		Lines:  []Line{{X0: 0, Y0: 0, X1: 4, Y1: 2}},
		Want:   pixels(5, 5, 6, 5, 7, 4, 8, 4),
	},
	{
		// slope 1/4, stepping up every other pixel
		Name:   "shallow",
		Width:  16,
		Height: 16,
		Lines:  []Line{{X0: -6, Y0: -1, X1: 6, Y1: 2}},
		Want: slices.Concat(
			row(9, 2, 5),
			row(8, 5, 9),
			row(7, 9, 13),
			pixels(13, 6),
		),
	},
}
