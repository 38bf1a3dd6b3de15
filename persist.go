package easel

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
	xdraw "golang.org/x/image/draw"

	// Decoders accepted by Load.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Flatten returns the raster with the text layer composited on top. This
// is the image Save and SavePDF write; undo history and vector state are
// not kept.
func (e *Editor) Flatten() *image.RGBA {
	img := e.raster.Image()
	xdraw.Draw(img, img.Bounds(), rgbaView(e.text.Pixmap()), image.Point{}, xdraw.Over)
	return img
}

// Save writes the flattened canvas as PNG.
func (e *Editor) Save(w io.Writer) error {
	if err := png.Encode(w, e.Flatten()); err != nil {
		return fmt.Errorf("easel: save png: %w", err)
	}
	return nil
}

// SavePDF writes the flattened canvas as a single-page PDF whose page is
// the canvas size in points.
func (e *Editor) SavePDF(w io.Writer) error {
	var page bytes.Buffer
	if err := png.Encode(&page, e.Flatten()); err != nil {
		return fmt.Errorf("easel: save pdf: %w", err)
	}

	wd, ht := float64(e.Width()), float64(e.Height())
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("canvas", opt, &page)
	pdf.ImageOptions("canvas", 0, 0, wd, ht, false, opt, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("easel: save pdf: %w", err)
	}
	return nil
}

// DecodeImage decodes any format Load accepts. Failures wrap ErrDecode.
func DecodeImage(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return img, format, nil
}

// Load composites a saved image onto the base at the canvas origin and
// rebuilds shapes and strokes above it. The load is undoable.
//
// Load is best effort: a decode failure is logged and reported as false
// with the editor unchanged. It also reports false while a gesture is in
// progress.
func (e *Editor) Load(r io.Reader) bool {
	if e.gesture != GestureIdle {
		return false
	}
	img, format, err := DecodeImage(r)
	if err != nil {
		Logger().Warn("image load failed", "err", err)
		return false
	}
	e.commit()
	e.raster.CompositeBase(img)
	e.Rebuild()
	Logger().Debug("image loaded", "format", format, "size", img.Bounds().Size())
	return true
}
