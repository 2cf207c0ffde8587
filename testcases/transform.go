package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
)

var transformCases = []TestCase{
	{
		Name:   "scale",
		Path:   rectangle(0, 0, 20, 20),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Scale(2, 2).Translate(12, 12),
	},
	{
		Name:   "rotate",
		Path:   rectangle(-12, -12, 12, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
	},
	{
		Name:   "shear",
		Path:   star(0, 0, 20),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Matrix{1, 0, 0.4, 1, 32, 32},
	},
	{
		Name:   "translate_stroke",
		Path:   polyline(0, 0, 30, 0, 30, 20),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Cap: graphics.LineCapSquare, Join: graphics.LineJoinMiter, MiterLimit: 4},
		CTM:    matrix.Matrix{1, 0, 0, 1, 16, 20},
	},
}
