package easel

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"github.com/google/uuid"
)

// ShapeKind is the closed set of parametric shapes.
type ShapeKind uint8

// Shape kinds.
const (
	ShapeRectangle ShapeKind = iota
	ShapeSquare
	ShapeEllipse
	ShapeCircle
	ShapeTriangle
)

var shapeKindNames = [...]string{
	ShapeRectangle: "rectangle",
	ShapeSquare:    "square",
	ShapeEllipse:   "ellipse",
	ShapeCircle:    "circle",
	ShapeTriangle:  "triangle",
}

// String returns the lower-case kind name.
func (k ShapeKind) String() string {
	if int(k) < len(shapeKindNames) {
		return shapeKindNames[k]
	}
	return fmt.Sprintf("ShapeKind(%d)", uint8(k))
}

// ParseShapeKind resolves a kind name, ignoring case.
func ParseShapeKind(s string) (ShapeKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range shapeKindNames {
		if n == name {
			return ShapeKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

// symmetric reports whether the kind derives a single side from max(w, h).
func (k ShapeKind) symmetric() bool {
	return k == ShapeSquare || k == ShapeCircle
}

// Shape is a placed parametric shape.
//
// Size holds the raw drag extent. Square and circle keep an asymmetric
// size as dragged and derive max(W, H) whenever they are drawn or
// hit-tested. Origin and Size are canvas units.
type Shape struct {
	ID      string
	Kind    ShapeKind
	Origin  Point
	Size    Size
	Color   gg.RGBA
	Stroked bool
}

// ShapeFromDrag builds a shape from a drag between two canvas points.
// The drag is normalized so Origin is the top-left corner and Size is
// non-negative. It returns false when the drag has no visible extent:
// square and circle need a non-zero dominant side, the other kinds need
// both sides non-zero.
func ShapeFromDrag(kind ShapeKind, start, end Point, c gg.RGBA, stroked bool) (Shape, bool) {
	s, ok := fromDrag(kind, start, end, c, stroked)
	if !ok {
		return Shape{}, false
	}
	s.ID = uuid.NewString()
	return s, true
}

func fromDrag(kind ShapeKind, start, end Point, c gg.RGBA, stroked bool) (Shape, bool) {
	s := Shape{
		Kind:    kind,
		Origin:  Pt(min(start.X, end.X), min(start.Y, end.Y)),
		Size:    Size{W: math.Abs(end.X - start.X), H: math.Abs(end.Y - start.Y)},
		Color:   c,
		Stroked: stroked,
	}
	if kind.symmetric() {
		if max(s.Size.W, s.Size.H) == 0 {
			return Shape{}, false
		}
	} else if s.Size.W == 0 || s.Size.H == 0 {
		return Shape{}, false
	}
	return s, true
}

// side is the symmetric dimension used by square and circle.
func (s Shape) side() float64 {
	return max(s.Size.W, s.Size.H)
}

// Bounds returns the box the shape is drawn in. Square and circle use the
// symmetric box anchored at Origin.
func (s Shape) Bounds() Rect {
	if s.Kind.symmetric() {
		d := s.side()
		return Rect{X: s.Origin.X, Y: s.Origin.Y, W: d, H: d}
	}
	return Rect{X: s.Origin.X, Y: s.Origin.Y, W: s.Size.W, H: s.Size.H}
}

// Radius returns the circle radius, max(W, H) / 2.
func (s Shape) Radius() float64 {
	return s.side() / 2
}

// Draw renders the shape. Stroked shapes are outlined with strokeWidth,
// the rest are filled.
func (s Shape) Draw(d Drawer, strokeWidth float64) error {
	setColor(d, s.Color)
	b := s.Bounds()
	switch s.Kind {
	case ShapeRectangle, ShapeSquare:
		d.DrawRectangle(b.X, b.Y, b.W, b.H)
	case ShapeEllipse:
		c := b.Center()
		d.DrawEllipse(c.X, c.Y, b.W/2, b.H/2)
	case ShapeCircle:
		r := s.Radius()
		d.DrawCircle(s.Origin.X+r, s.Origin.Y+r, r)
	case ShapeTriangle:
		d.MoveTo(b.X, b.Y+b.H)
		d.LineTo(b.X+b.W/2, b.Y)
		d.LineTo(b.X+b.W, b.Y+b.H)
		d.ClosePath()
	default:
		return fmt.Errorf("easel: draw %v: %w", s.Kind, ErrUnknownShape)
	}
	if s.Stroked {
		d.SetLineWidth(strokeWidth)
		return d.Stroke()
	}
	return d.Fill()
}

// HitTest reports whether the canvas point p selects the shape.
//
// Circles test the true distance to the center. Every other kind tests
// its bounding box, including ellipse and triangle. Boundaries are
// inclusive.
func (s Shape) HitTest(p Point) bool {
	switch s.Kind {
	case ShapeCircle:
		r := s.Radius()
		dx := p.X - (s.Origin.X + r)
		dy := p.Y - (s.Origin.Y + r)
		return dx*dx+dy*dy <= r*r
	case ShapeRectangle, ShapeSquare, ShapeEllipse, ShapeTriangle:
		return s.Bounds().Contains(p)
	default:
		return false
	}
}

// DrawPreview renders the shape a drag from start to end would commit,
// without creating it. Degenerate drags draw nothing.
func DrawPreview(d Drawer, kind ShapeKind, start, end Point, c gg.RGBA, stroked bool, strokeWidth float64) error {
	s, ok := fromDrag(kind, start, end, c, stroked)
	if !ok {
		return nil
	}
	return s.Draw(d, strokeWidth)
}
