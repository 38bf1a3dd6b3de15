package easel

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Option configures an Editor during creation.
//
// Example:
//
//	ed, err := easel.NewEditor(900, 600,
//	    easel.WithBaseColor(gg.Hex("#fdf6e3")),
//	    easel.WithZoomRange(0.5, 8),
//	)
type Option func(*options)

// options holds optional configuration for Editor creation.
type options struct {
	base          gg.RGBA
	minZoom       float64
	maxZoom       float64
	zoomStep      float64
	toolbarHeight float64
	brushSize     float64
	historyLimit  int
	palette       []gg.RGBA
	face          text.Face
}

// Defaults mirror the classic toolbar-on-top paint layout.
const (
	DefaultMinZoom       = 0.2
	DefaultMaxZoom       = 4.0
	DefaultZoomStep      = 1.1
	DefaultToolbarHeight = 100
	DefaultBrushSize     = 5
	DefaultHistoryLimit  = 50

	MinBrushSize = 1
	MaxBrushSize = 100
)

// DefaultPalette is the color row offered by the toolbar.
var DefaultPalette = []gg.RGBA{
	gg.Black,
	gg.RGB(1, 0, 0),
	gg.RGB(0, 1, 0),
	gg.RGB(0, 0, 1),
	gg.RGB(1, 1, 0),
	gg.RGB(1, 165.0/255, 0),
	gg.RGB(128.0/255, 0, 128.0/255),
}

func defaultOptions() options {
	return options{
		base:          gg.White,
		minZoom:       DefaultMinZoom,
		maxZoom:       DefaultMaxZoom,
		zoomStep:      DefaultZoomStep,
		toolbarHeight: DefaultToolbarHeight,
		brushSize:     DefaultBrushSize,
		historyLimit:  DefaultHistoryLimit,
		palette:       DefaultPalette,
	}
}

// WithBaseColor sets the fill the raster is reset to on clear and rebuild.
func WithBaseColor(c gg.RGBA) Option {
	return func(o *options) {
		o.base = c
	}
}

// WithZoomRange sets the zoom clamp. Ranges with min <= 0 or max < min are
// ignored.
func WithZoomRange(minZoom, maxZoom float64) Option {
	return func(o *options) {
		if minZoom <= 0 || maxZoom < minZoom {
			return
		}
		o.minZoom = minZoom
		o.maxZoom = maxZoom
	}
}

// WithZoomStep sets the multiplicative factor applied per wheel notch.
// Steps <= 1 are ignored.
func WithZoomStep(step float64) Option {
	return func(o *options) {
		if step > 1 {
			o.zoomStep = step
		}
	}
}

// WithToolbarHeight sets the height of the screen strip above the canvas.
func WithToolbarHeight(h float64) Option {
	return func(o *options) {
		if h >= 0 {
			o.toolbarHeight = h
		}
	}
}

// WithBrushSize sets the initial brush size, clamped to
// [MinBrushSize, MaxBrushSize].
func WithBrushSize(size float64) Option {
	return func(o *options) {
		o.brushSize = clampBrush(size)
	}
}

// WithHistoryLimit bounds the number of undo snapshots kept.
// A limit of 0 keeps every snapshot.
func WithHistoryLimit(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.historyLimit = n
		}
	}
}

// WithPalette replaces the default palette. The first entry becomes the
// initial drawing color. An empty palette is ignored.
func WithPalette(colors ...gg.RGBA) Option {
	return func(o *options) {
		if len(colors) > 0 {
			o.palette = append([]gg.RGBA(nil), colors...)
		}
	}
}

// WithFont sets the face used by the text overlay. Without a face,
// PlaceText does nothing.
//
// Example:
//
//	src, _ := text.NewFontSource(goregular.TTF)
//	ed, _ := easel.NewEditor(800, 600, easel.WithFont(src.Face(18)))
func WithFont(face text.Face) Option {
	return func(o *options) {
		o.face = face
	}
}

func clampBrush(size float64) float64 {
	return min(MaxBrushSize, max(MinBrushSize, size))
}
