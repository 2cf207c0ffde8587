package testcases

var fillCases = []TestCase{
	{
		Name:   "triangle",
		Path:   polygon(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "rectangle_fractional",
		Path:   rectangle(10.25, 10.5, 43.75, 44.2),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "star_nonzero",
		Path:   star(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "star_evenodd",
		Path:   star(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "open_polygon",
		Path:   polyline(8, 8, 56, 20, 20, 56),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "outside_left",
		Path:   rectangle(-30, 16, 20, 48),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "large_triangle",
		Path:   polygon(4, 300, 200, 4, 396, 396),
		Width:  400,
		Height: 400,
		Op:     Fill{Rule: NonZero},
	},
}
