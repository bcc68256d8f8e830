package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]TestCase{
	"horizontal": horizontalCases,
	"vertical":   verticalCases,
	"diagonal":   diagonalCases,
	"degenerate": degenerateCases,
	"offscreen":  offscreenCases,
	"path":       pathCases,
}
