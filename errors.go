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
	"errors"
	"fmt"
)

// These errors classify the failures reported by this package.  Every
// returned error wraps exactly one of them, so that callers can test
// with [errors.Is].
var (
	// ErrInvalidColor indicates a color specification which cannot be
	// parsed, or which has components out of range.
	ErrInvalidColor = errors.New("invalid color")

	// ErrParse indicates malformed symbol path data.
	ErrParse = errors.New("malformed path data")

	// ErrValue indicates an argument of the right kind but with an
	// unusable value, for example coordinates of odd length.
	ErrValue = errors.New("invalid value")

	// ErrType indicates an argument of the wrong kind, for example a
	// brush passed to a line.
	ErrType = errors.New("invalid argument type")
)

// ParseError describes a syntax error in symbol path data.
type ParseError struct {
	// Offset is the byte position in the input where the error was
	// detected.
	Offset int

	// Msg describes the problem.
	Msg string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("canvas: symbol: %s at offset %d", err.Msg, err.Offset)
}

// Unwrap allows ParseError values to match [ErrParse].
func (err *ParseError) Unwrap() error {
	return ErrParse
}
