package testcases

var degenerateCases = []TestCase{
	{
		Name:   "single_point",
		Width:  10,
		Height: 10,
		Lines:  []Line{{X0: 1, Y0: 1, X1: 1, Y1: 1}},
		Want:   pixels(6, 4),
	},
	{
		Name:   "unit_step",
		Width:  10,
		Height: 10,
		Lines:  []Line{{X0: 0, Y0: 0, X1: 1, Y1: 0}},
		Want:   pixels(5, 5),
	},
	{
		// The center is at 4.5, so the leftmost pixel sits exactly
		// half way between buffer columns -1 and 0.
		Name:   "odd_size",
		Width:  9,
		Height: 9,
		Lines:  []Line{{X0: -5, Y0: 0, X1: 4, Y1: 0}},
		Want:   row(5, 0, 9),
	},
	{
		Name:   "drawn_twice",
		Width:  10,
		Height: 10,
		Lines: []Line{
			{X0: 0, Y0: 0, X1: 4, Y1: 2},
			{X0: 0, Y0: 0, X1: 4, Y1: 2},
		},
		Want: pixels(5, 5, 6, 5, 7, 4, 8, 4),
	},
}
