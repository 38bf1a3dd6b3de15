package easel

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

// Screen colors used by RenderView.
var (
	BackdropColor = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	ToolbarColor  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// Preview returns the transient overlay for the current frame in canvas
// coordinates: the shape a drag in progress would place, then the text
// layer. The pixmap is reused and is only valid until the next call.
func (e *Editor) Preview() *gg.Pixmap {
	if e.preview == nil {
		w, h := e.Width(), e.Height()
		e.preview = gg.NewPixmap(w, h)
		e.previewDC = gg.NewContext(w, h, gg.WithPixmap(e.preview))
	}
	e.preview.Clear(gg.Transparent)

	if kind, ok := e.tool.ShapeKind(); ok && e.gesture == GestureDrawing {
		if err := DrawPreview(e.previewDC, kind, e.start, e.last, e.color, !e.fill, e.brush); err != nil {
			Logger().Warn("preview draw failed", "err", err)
		}
	}

	dst := rgbaView(e.preview)
	xdraw.Draw(dst, dst.Bounds(), rgbaView(e.text.Pixmap()), image.Point{}, xdraw.Over)
	return e.preview
}

// RenderView composites one frame of the viewport into dst, which is in
// screen coordinates: backdrop, the raster and the preview under the
// current pan and zoom, then the toolbar strip.
func (e *Editor) RenderView(dst xdraw.Image) {
	b := dst.Bounds()
	xdraw.Draw(dst, b, image.NewUniform(BackdropColor), image.Point{}, xdraw.Src)

	tl := e.view.ToScreen(Pt(0, 0))
	br := e.view.ToScreen(Pt(float64(e.Width()), float64(e.Height())))
	dr := image.Rect(
		int(math.Round(tl.X)), int(math.Round(tl.Y)),
		int(math.Round(br.X)), int(math.Round(br.Y)),
	)
	if !dr.Empty() {
		blit(dst, dr, rgbaView(e.raster.Pixmap()))
		blit(dst, dr, rgbaView(e.Preview()))
	}

	if e.view.ToolbarHeight > 0 {
		strip := image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+int(e.view.ToolbarHeight))
		xdraw.Draw(dst, strip.Intersect(b), image.NewUniform(ToolbarColor), image.Point{}, xdraw.Src)
	}
}

// blit draws src over dst scaled into dr, skipping the resampler when the
// size is unchanged.
func blit(dst xdraw.Image, dr image.Rectangle, src *image.RGBA) {
	if dr.Size() == src.Bounds().Size() {
		xdraw.Draw(dst, dr, src, src.Bounds().Min, xdraw.Over)
		return
	}
	xdraw.ApproxBiLinear.Scale(dst, dr, src, src.Bounds(), xdraw.Over, nil)
}

// Cursor describes the brush decoration drawn at the pointer, in screen
// coordinates.
type Cursor struct {
	Pos    Point
	Radius float64
	Color  gg.RGBA
	Filled bool
}

// Cursor returns the decoration for the active tool. It reports false
// when none should be drawn: for tools other than pen, brush and marker,
// and while a gesture is in progress.
func (e *Editor) Cursor() (Cursor, bool) {
	if !e.tool.IsFreehand() || e.gesture != GestureIdle {
		return Cursor{}, false
	}
	c := Cursor{Pos: e.pointer, Color: e.color}
	switch e.tool {
	case ToolPen:
		c.Radius = 2
	case ToolBrush:
		c.Radius = e.brush
	case ToolMarker:
		c.Radius = 2 * e.brush
		c.Color.A = MarkerAlpha
		c.Filled = true
	}
	return c, true
}

// Draw renders the decoration: a 1px ring, or a filled disc for the
// marker.
func (c Cursor) Draw(d Drawer) error {
	setColor(d, c.Color)
	d.DrawCircle(c.Pos.X, c.Pos.Y, c.Radius)
	if c.Filled {
		return d.Fill()
	}
	d.SetLineWidth(1)
	return d.Stroke()
}
