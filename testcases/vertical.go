package testcases

var verticalCases = []TestCase{
	{
		Name:   "center_column",
		Width:  10,
		Height: 10,
		Lines:  []Line{{X0: 0, Y0: -3, X1: 0, Y1: 3}},
		Want:   column(5, 3, 9),
	},
	{
		// x steps by 0.1; the switch to the next column happens
		// once the accumulated value reaches 0.5
		Name:   "steep",
		Width:  24,
		Height: 24,
		Lines:  []Line{{X0: 0, Y0: 0, X1: 1, Y1: 10}},
		Want:   append(column(13, 3, 8), column(12, 8, 13)...),
	},
	{
		Name:   "steep_reversed",
		Width:  24,
		Height: 24,
		Lines:  []Line{{X0: 1, Y0: 10, X1: 0, Y1: 0}},
		Want:   append(column(13, 3, 8), column(12, 8, 13)...),
	},
}
