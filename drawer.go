package easel

import "github.com/gogpu/gg"

// Drawer is the subset of *gg.Context that shapes and strokes render
// through. Every Drawer call on the Editor's raster goes to a
// *gg.Context backed by the raster pixmap; tests substitute a recorder.
type Drawer interface {
	SetRGBA(r, g, b, a float64)
	SetLineWidth(width float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()

	DrawLine(x1, y1, x2, y2 float64)
	DrawRectangle(x, y, w, h float64)
	DrawCircle(x, y, r float64)
	DrawEllipse(x, y, rx, ry float64)

	Fill() error
	Stroke() error
}

var _ Drawer = (*gg.Context)(nil)

func setColor(d Drawer, c gg.RGBA) {
	d.SetRGBA(c.R, c.G, c.B, c.A)
}
