// seehuhn.de/go/canvas - a 2D drawing library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package canvas

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Symbol is reusable geometry, parsed from SVG-like path data.
// Symbols are immutable and can be shared between goroutines.
type Symbol struct {
	path  *Path
	scale float64
}

// ParseSymbol parses path data.  The syntax is a subset of the SVG path
// syntax:
//
//	M x y          move to
//	L x y          line to
//	H x            horizontal line to
//	V y            vertical line to
//	C x1 y1 x2 y2 x y   cubic Bézier curve
//	S x2 y2 x y    smooth cubic curve, reflecting the previous control point
//	Q x1 y1 x y    quadratic Bézier curve
//	T x y          smooth quadratic curve
//	Z              close the subpath
//
// Lowercase letters give coordinates relative to the current point.
// Numbers are separated by white space or commas.  A command letter may
// be followed by several groups of numbers, which repeats the command;
// repeated moves become lines.
//
// Errors are of type [*ParseError].
func ParseSymbol(data string) (*Symbol, error) {
	return ParseSymbolScale(data, 1)
}

// ParseSymbolScale is like [ParseSymbol], but multiplies all numbers by
// scale.
func ParseSymbolScale(data string, scale float64) (*Symbol, error) {
	sp := &symbolParser{buf: []byte(data), scale: scale, p: &Path{}}
	if err := sp.parse(); err != nil {
		return nil, err
	}
	return &Symbol{path: sp.p, scale: scale}, nil
}

// Scale returns the scale factor which was applied during parsing.
func (s *Symbol) Scale() float64 { return s.scale }

// Coords returns the vertices of the symbol, see [Path.Coords].
func (s *Symbol) Coords() []float64 { return s.path.Coords() }

// Len returns the number of vertices of the symbol.
func (s *Symbol) Len() int { return s.path.Len() }

// Data returns a copy of the symbol's path data, with curves intact.
func (s *Symbol) Data() *path.Data { return s.path.Data() }

// lines implements the [Shape] interface.
func (s *Symbol) lines() (*path.Data, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil symbol", ErrType)
	}
	return &s.path.flat, nil
}

// argCount gives the number of arguments of each command.
var argCount = map[byte]int{
	'M': 2,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'Z': 0,
}

type symbolParser struct {
	buf   []byte
	pos   int
	scale float64
	p     *Path

	args [6]float64
	prev byte     // previous command, as written
	ctrl vec.Vec2 // last control point of a C, S, Q or T command
}

func (sp *symbolParser) parse() error {
	for {
		sp.skipSeparators()
		if sp.pos >= len(sp.buf) {
			return nil
		}

		c := sp.buf[sp.pos]
		var cmd byte
		switch {
		case isNumberStart(c):
			switch sp.prev {
			case 0:
				return sp.errorf("path data must start with a command")
			case 'Z', 'z':
				return sp.errorf("unexpected number after '%c'", sp.prev)
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			default:
				cmd = sp.prev
			}
		case isLetter(c):
			if _, ok := argCount[upper(c)]; !ok {
				return sp.errorf("unknown command '%c'", c)
			}
			cmd = c
			sp.pos++
		default:
			return sp.errorf("unexpected character %q", c)
		}

		if err := sp.readArgs(cmd); err != nil {
			return err
		}
		sp.apply(cmd)
		sp.prev = cmd
	}
}

// readArgs reads the numbers for one instance of cmd into sp.args.
func (sp *symbolParser) readArgs(cmd byte) error {
	n := argCount[upper(cmd)]
	for j := range n {
		sp.skipSeparators()
		if sp.pos >= len(sp.buf) || isLetter(sp.buf[sp.pos]) {
			return sp.errorf("command '%c' needs %d numbers, got %d", cmd, n, j)
		}
		x, k := strconv.ParseFloat(sp.buf[sp.pos:])
		if k == 0 {
			return sp.errorf("malformed number")
		}
		sp.args[j] = x * sp.scale
		sp.pos += k
	}
	return nil
}

func (sp *symbolParser) apply(cmd byte) {
	p := sp.p
	cur := p.cur
	a := sp.args
	pt := func(i int) vec.Vec2 {
		v := vec.Vec2{X: a[i], Y: a[i+1]}
		if isLower(cmd) {
			v = v.Add(cur)
		}
		return v
	}

	switch upper(cmd) {
	case 'M':
		p.moveTo(pt(0))
	case 'L':
		p.lineTo(pt(0))
	case 'H':
		v := vec.Vec2{X: a[0], Y: cur.Y}
		if isLower(cmd) {
			v.X += cur.X
		}
		p.lineTo(v)
	case 'V':
		v := vec.Vec2{X: cur.X, Y: a[0]}
		if isLower(cmd) {
			v.Y += cur.Y
		}
		p.lineTo(v)
	case 'C':
		c2 := pt(2)
		p.curveTo(pt(0), c2, pt(4))
		sp.ctrl = c2
	case 'S':
		c1 := cur
		if prev := upper(sp.prev); prev == 'C' || prev == 'S' {
			c1 = cur.Mul(2).Sub(sp.ctrl)
		}
		c2 := pt(0)
		p.curveTo(c1, c2, pt(2))
		sp.ctrl = c2
	case 'Q':
		c := pt(0)
		p.quadTo(c, pt(2))
		sp.ctrl = c
	case 'T':
		c := cur
		if prev := upper(sp.prev); prev == 'Q' || prev == 'T' {
			c = cur.Mul(2).Sub(sp.ctrl)
		}
		p.quadTo(c, pt(0))
		sp.ctrl = c
	case 'Z':
		p.Close()
	}
}

func (sp *symbolParser) skipSeparators() {
	for sp.pos < len(sp.buf) {
		switch sp.buf[sp.pos] {
		case ' ', ',', '\t', '\n', '\r', '\f':
			sp.pos++
		default:
			return
		}
	}
}

func (sp *symbolParser) errorf(format string, args ...any) error {
	return &ParseError{Offset: sp.pos, Msg: fmt.Sprintf(format, args...)}
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func upper(c byte) byte {
	if isLower(c) {
		return c - 'a' + 'A'
	}
	return c
}
