package testcases

// All contains the scenes, grouped by category.  Category and scene name
// together form the file name of exported scenes.
var All = map[string][]TestCase{
	"fill":      fillCases,
	"stroke":    strokeCases,
	"curve":     curveCases,
	"transform": transformCases,
}
