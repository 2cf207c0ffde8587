package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var curveCases = []TestCase{
	{
		Name:   "circle",
		Path:   circle(32, 32, 24),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "ring",
		Path:   ring(32, 32, 26, 14),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "nested_evenodd",
		Path:   nested(32, 32, 26, 14),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name: "quadratic",
		Path: (&path.Data{}).
			MoveTo(pt(8, 56)).
			QuadTo(pt(32, -8), pt(56, 56)).
			Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name: "cubic_stroke",
		Path: (&path.Data{}).
			MoveTo(pt(8, 48)).
			CubeTo(pt(16, 0), pt(48, 64), pt(56, 16)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 3, Cap: graphics.LineCapRound, Join: graphics.LineJoinRound, MiterLimit: 4},
	},
}
