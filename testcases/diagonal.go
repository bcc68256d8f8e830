package testcases

var diagonalCases = []TestCase{
	{
		// |dx| == |dy| is stepped along y
		Name:   "rising",
		Width:  10,
		Height: 10,
		Lines:  []Line{{X0: -3, Y0: -3, X1: 3, Y1: 3}},
		Want:   pixels(2, 8, 3, 7, 4, 6, 5, 5, 6, 4, 7, 3),
	},
	{
		Name:   "falling",
		Width:  10,
		Height: 10,
		Lines:  []Line{{X0: -3, Y0: 3, X1: 3, Y1: -3}},
		Want:   pixels(8, 8, 7, 7, 6, 6, 5, 5, 4, 4, 3, 3),
	},
	{
		Name:   "cross",
		Width:  10,
		Height: 10,
		Lines: []Line{
			{X0: -4, Y0: 0, X1: 4, Y1: 0},
			{X0: 0, Y0: -4, X1: 0, Y1: 4},
		},
		Want: append(row(5, 1, 9), pixels(5, 2, 5, 3, 5, 4, 5, 6, 5, 7, 5, 8, 5, 9)...),
	},
}
