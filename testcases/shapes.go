package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
)

// kappa places the control points of a cubic quarter circle.
const kappa = 0.5522847498

func polygon(xy ...float64) *path.Data {
	p := (&path.Data{}).MoveTo(pt(xy[0], xy[1]))
	for i := 2; i+1 < len(xy); i += 2 {
		p = p.LineTo(pt(xy[i], xy[i+1]))
	}
	return p.Close()
}

func polyline(xy ...float64) *path.Data {
	p := (&path.Data{}).MoveTo(pt(xy[0], xy[1]))
	for i := 2; i+1 < len(xy); i += 2 {
		p = p.LineTo(pt(xy[i], xy[i+1]))
	}
	return p
}

func rectangle(x0, y0, x1, y1 float64) *path.Data {
	return polygon(x0, y0, x1, y0, x1, y1, x0, y1)
}

// star connects every second corner of a regular pentagon, so that the
// path crosses itself.
func star(cx, cy, r float64) *path.Data {
	var xy []float64
	for _, i := range []int{0, 2, 4, 1, 3} {
		a := float64(i)*2*math.Pi/5 - math.Pi/2
		xy = append(xy, cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	return polygon(xy...)
}

// addCircle appends a circle made of four cubic curves.  Clockwise
// circles are traversed in the opposite direction.
func addCircle(p *path.Data, cx, cy, r float64, clockwise bool) *path.Data {
	k := r * kappa
	s := 1.0
	if clockwise {
		s = -1
	}
	return p.
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-s*k), pt(cx+k, cy-s*r), pt(cx, cy-s*r)).
		CubeTo(pt(cx-k, cy-s*r), pt(cx-r, cy-s*k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+s*k), pt(cx-k, cy+s*r), pt(cx, cy+s*r)).
		CubeTo(pt(cx+k, cy+s*r), pt(cx+r, cy+s*k), pt(cx+r, cy)).
		Close()
}

func circle(cx, cy, r float64) *path.Data {
	return addCircle(&path.Data{}, cx, cy, r, false)
}

// ring is a disc with a hole; the inner circle runs backwards.
func ring(cx, cy, rOuter, rInner float64) *path.Data {
	p := addCircle(&path.Data{}, cx, cy, rOuter, false)
	return addCircle(p, cx, cy, rInner, true)
}

// nested has two circles in the same direction, so that nonzero and
// even-odd filling differ.
func nested(cx, cy, rOuter, rInner float64) *path.Data {
	p := addCircle(&path.Data{}, cx, cy, rOuter, false)
	return addCircle(p, cx, cy, rInner, false)
}
