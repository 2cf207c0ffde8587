package testcases

import "seehuhn.de/go/pdf/graphics"

func zigzag() TestCase {
	return TestCase{
		Path:   polyline(8, 48, 20, 16, 32, 48, 44, 16, 56, 48),
		Width:  64,
		Height: 64,
	}
}

func withStroke(tc TestCase, name string, op Stroke) TestCase {
	tc.Name = name
	tc.Op = op
	return tc
}

var strokeCases = []TestCase{
	{
		Name:   "hairline",
		Path:   polyline(8, 32, 56, 32),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 1, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 4},
	},
	{
		Name:   "line_round",
		Path:   polyline(12, 12, 52, 40),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: graphics.LineCapRound, Join: graphics.LineJoinMiter, MiterLimit: 4},
	},
	{
		Name:   "line_square",
		Path:   polyline(12, 12, 52, 40),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: graphics.LineCapSquare, Join: graphics.LineJoinMiter, MiterLimit: 4},
	},
	withStroke(zigzag(), "zigzag_miter",
		Stroke{Width: 4, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10}),
	withStroke(zigzag(), "zigzag_miter_limited",
		Stroke{Width: 4, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 1.5}),
	withStroke(zigzag(), "zigzag_round",
		Stroke{Width: 4, Cap: graphics.LineCapRound, Join: graphics.LineJoinRound, MiterLimit: 4}),
	withStroke(zigzag(), "zigzag_bevel",
		Stroke{Width: 4, Cap: graphics.LineCapSquare, Join: graphics.LineJoinBevel, MiterLimit: 4}),
	{
		Name:   "closed_square",
		Path:   rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 6, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 4},
	},
	{
		Name:   "reversal",
		Path:   polyline(10, 32, 50, 32, 20, 32),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 6, Cap: graphics.LineCapRound, Join: graphics.LineJoinRound, MiterLimit: 4},
	},
	{
		Name:   "dot",
		Path:   polyline(32, 32, 32, 32),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 12, Cap: graphics.LineCapRound, Join: graphics.LineJoinRound, MiterLimit: 4},
	},
}
