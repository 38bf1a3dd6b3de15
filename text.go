package easel

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// TextLayer is the single transparent overlay that holds placed text.
//
// It sits above the raster, is not part of undo snapshots and survives
// Clear. Save flattens it into the output.
type TextLayer struct {
	pm *gg.Pixmap
	dc *gg.Context
}

func newTextLayer(width, height int, face text.Face) *TextLayer {
	pm := gg.NewPixmap(width, height)
	dc := gg.NewContext(width, height, gg.WithPixmap(pm))
	if face != nil {
		dc.SetFont(face)
	}
	return &TextLayer{pm: pm, dc: dc}
}

// Pixmap returns the layer pixels. Untouched pixels are transparent.
func (t *TextLayer) Pixmap() *gg.Pixmap { return t.pm }

// HasFont reports whether text can be placed.
func (t *TextLayer) HasFont() bool { return t.dc.Font() != nil }

// Place draws s with its baseline starting at p. It reports false when
// the layer has no font or s is empty.
func (t *TextLayer) Place(p Point, s string, c gg.RGBA) bool {
	if s == "" || !t.HasFont() {
		return false
	}
	t.dc.SetRGBA(c.R, c.G, c.B, c.A)
	t.dc.DrawString(s, p.X, p.Y)
	return true
}

// Measure returns the width and height s would occupy.
func (t *TextLayer) Measure(s string) (w, h float64) {
	face := t.dc.Font()
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face)
}
