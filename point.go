package easel

import "github.com/gogpu/gg"

// Point is a 2D position or vector. Canvas-space and screen-space values
// share the type; which space a value lives in is fixed by the API that
// produced it.
type Point = gg.Point

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return gg.Pt(x, y)
}

// Size is a width/height pair in canvas units. Components may be zero but
// never negative once a Shape has been built.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle in canvas units.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r. Edges are inclusive.
func (r Rect) Contains(p Point) bool {
	return r.X <= p.X && p.X <= r.X+r.W &&
		r.Y <= p.Y && p.Y <= r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Pt(r.X+r.W/2, r.Y+r.H/2)
}
