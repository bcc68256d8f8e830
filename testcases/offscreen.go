package testcases

var offscreenCases = []TestCase{
	{
		Name:    "partly_outside",
		Width:   10,
		Height:  10,
		Lines:   []Line{{X0: -8, Y0: 0, X1: 8, Y1: 0}},
		Want:    row(5, 0, 10),
		Dropped: 6,
	},
	{
		Name:    "fully_outside",
		Width:   10,
		Height:  10,
		Lines:   []Line{{X0: 20, Y0: 20, X1: 30, Y1: 20}},
		Dropped: 10,
	},
	{
		// y = -5 maps to buffer row 10, one past the bottom
		Name:    "column_clipped",
		Width:   10,
		Height:  10,
		Lines:   []Line{{X0: 0, Y0: 5, X1: 0, Y1: -5}},
		Want:    column(5, 1, 10),
		Dropped: 1,
	},
}
