package easel

import (
	"fmt"
	"image"
	"slices"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

// Raster is the committed pixel buffer in canvas dimensions.
//
// Its base is what a rebuild starts from: the base fill, plus any image
// composited by a load. Everything above the base is derived from shapes
// and strokes and may be thrown away by Reset.
type Raster struct {
	pm   *gg.Pixmap
	dc   *gg.Context
	fill gg.RGBA
	base []uint8 // nil means a plain fill
}

// NewRaster returns a raster of the given size cleared to fill.
func NewRaster(width, height int, fill gg.RGBA) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	pm := gg.NewPixmap(width, height)
	r := &Raster{
		pm:   pm,
		dc:   gg.NewContext(width, height, gg.WithPixmap(pm)),
		fill: fill,
	}
	r.Reset()
	return r, nil
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.pm.Width() }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.pm.Height() }

// Pixmap returns the live pixel buffer.
func (r *Raster) Pixmap() *gg.Pixmap { return r.pm }

// Drawer returns the context that draws into the raster.
func (r *Raster) Drawer() Drawer { return r.dc }

// Reset overwrites every pixel with the base.
func (r *Raster) Reset() {
	if r.base != nil {
		copy(r.pm.Data(), r.base)
		return
	}
	r.pm.Clear(r.fill)
}

// ResetBase drops any loaded image from the base and resets the raster to
// the plain fill.
func (r *Raster) ResetBase() {
	r.base = nil
	r.Reset()
}

// CompositeBase draws img over the base with its top-left corner at the
// canvas origin and leaves the raster holding the new base. Parts of img
// outside the canvas are clipped.
func (r *Raster) CompositeBase(img image.Image) {
	r.Reset()
	dst := r.view()
	xdraw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, xdraw.Over)
	r.base = slices.Clone(r.pm.Data())
}

// Image returns a copy of the raster as an *image.RGBA.
func (r *Raster) Image() *image.RGBA {
	return r.pm.ToImage()
}

// pixels returns a copy of the raster bytes.
func (r *Raster) pixels() []uint8 {
	return slices.Clone(r.pm.Data())
}

// restore puts back pixels and base taken from a snapshot.
func (r *Raster) restore(pixels, base []uint8) {
	copy(r.pm.Data(), pixels)
	r.base = base
}

// view aliases the pixmap as an *image.RGBA. The pixmap stores
// premultiplied RGBA, which is what image.RGBA expects.
func (r *Raster) view() *image.RGBA {
	return rgbaView(r.pm)
}

func rgbaView(pm *gg.Pixmap) *image.RGBA {
	return &image.RGBA{
		Pix:    pm.Data(),
		Stride: 4 * pm.Width(),
		Rect:   image.Rect(0, 0, pm.Width(), pm.Height()),
	}
}
