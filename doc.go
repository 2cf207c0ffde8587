// Package canvas draws anti-aliased vector graphics onto in-memory images.
//
// Drawing happens on a [Surface], which either allocates a new image
// ([New]) or operates on the pixels of an existing one ([Adopt]).
// Primitives like [Surface.Line], [Surface.Polygon] or [Surface.Ellipse]
// take their geometry as a [Shape] and are painted by a [Pen], a [Brush],
// or both.  When both are given, the shape is filled first and then
// outlined, regardless of the order of the arguments.
//
// Geometry can be given as flat coordinate lists ([Coords]), built up
// command by command ([Path]), or parsed from SVG-like path data
// ([ParseSymbol]).  All coordinates are mapped through the surface
// transformation set by [Surface.SetTransform] before they are
// rasterized.
//
// Coverage of edge pixels is computed exactly from the signed area of the
// shape inside each pixel, see the [seehuhn.de/go/canvas/raster] package.
package canvas

//go:generate go run ./testcases/export
