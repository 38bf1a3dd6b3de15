package easel

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

// recorder is a Drawer that logs each call instead of rasterizing.
type recorder struct {
	calls []string
	color gg.RGBA
	width float64
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) SetRGBA(cr, cg, cb, ca float64) {
	r.color = gg.RGBA{R: cr, G: cg, B: cb, A: ca}
}
func (r *recorder) SetLineWidth(w float64) { r.width = w }
func (r *recorder) MoveTo(x, y float64)     { r.add("MoveTo(%g,%g)", x, y) }
func (r *recorder) LineTo(x, y float64)     { r.add("LineTo(%g,%g)", x, y) }
func (r *recorder) ClosePath()              { r.add("ClosePath") }
func (r *recorder) DrawLine(x1, y1, x2, y2 float64) {
	r.add("Line(%g,%g,%g,%g)", x1, y1, x2, y2)
}
func (r *recorder) DrawRectangle(x, y, w, h float64) {
	r.add("Rect(%g,%g,%g,%g)", x, y, w, h)
}
func (r *recorder) DrawCircle(x, y, radius float64) {
	r.add("Circle(%g,%g,%g)", x, y, radius)
}
func (r *recorder) DrawEllipse(x, y, rx, ry float64) {
	r.add("Ellipse(%g,%g,%g,%g)", x, y, rx, ry)
}
func (r *recorder) Fill() error {
	r.add("Fill a=%.3f", r.color.A)
	return nil
}
func (r *recorder) Stroke() error {
	r.add("Stroke w=%g", r.width)
	return nil
}

func equalCalls(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// newTestEditor returns a 100x100 editor whose screen and canvas
// coordinates coincide.
func newTestEditor(t *testing.T, opts ...Option) *Editor {
	t.Helper()
	opts = append([]Option{WithToolbarHeight(0)}, opts...)
	ed, err := NewEditor(100, 100, opts...)
	if err != nil {
		t.Fatalf("NewEditor() error = %v", err)
	}
	return ed
}

// drag runs a full primary-button gesture through the given points.
func drag(ed *Editor, pts ...Point) {
	ed.PointerDown(pts[0], ButtonPrimary)
	for _, p := range pts[1:] {
		ed.PointerMove(p)
	}
	ed.PointerUp(ButtonPrimary)
}

func near(a, b gg.RGBA, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol && math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol && math.Abs(a.A-b.A) <= tol
}

func assertPixel(t *testing.T, pm *gg.Pixmap, x, y int, want gg.RGBA) {
	t.Helper()
	if got := pm.GetPixel(x, y); !near(got, want, 0.02) {
		t.Errorf("pixel(%d,%d) = %+v, want %+v", x, y, got, want)
	}
}

// rebuiltCopy returns the raster bytes and the bytes a fresh rebuild
// produces, restoring nothing: after the call the raster holds the
// rebuilt state.
func rebuiltCopy(ed *Editor) (before, after []byte) {
	before = bytes.Clone(ed.Raster().Data())
	ed.Rebuild()
	after = bytes.Clone(ed.Raster().Data())
	return before, after
}
