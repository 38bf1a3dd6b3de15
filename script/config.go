// Package script drives an easel.Editor from YAML: a Config describing the
// canvas, view and logging, and a Script of gesture steps replayed through
// an easel.Loop. It backs the easel command and headless tests.
package script

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/easel"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration of an editor session.
type Config struct {
	Canvas       CanvasConfig `yaml:"canvas"`
	View         ViewConfig   `yaml:"view"`
	BrushSize    float64      `yaml:"brush_size"`
	HistoryLimit int          `yaml:"history_limit"`
	Palette      []string     `yaml:"palette"`
	Font         FontConfig   `yaml:"font"`
	Log          LogConfig    `yaml:"log"`
}

// CanvasConfig sets the raster size and base fill.
type CanvasConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`
}

// ViewConfig sets the screen layout and zoom limits.
type ViewConfig struct {
	ToolbarHeight float64 `yaml:"toolbar_height"`
	MinZoom       float64 `yaml:"min_zoom"`
	MaxZoom       float64 `yaml:"max_zoom"`
	ZoomStep      float64 `yaml:"zoom_step"`
}

// FontConfig selects the text layer face. An empty Path uses Go Regular.
// A zero Size disables text.
type FontConfig struct {
	Path string  `yaml:"path"`
	Size float64 `yaml:"size"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Defaults returns the classic 900x700 window layout: a 900x600 canvas
// below a 100px toolbar.
func Defaults() *Config {
	return &Config{
		Canvas: CanvasConfig{Width: 900, Height: 600, Background: "#ffffff"},
		View: ViewConfig{
			ToolbarHeight: easel.DefaultToolbarHeight,
			MinZoom:       easel.DefaultMinZoom,
			MaxZoom:       easel.DefaultMaxZoom,
			ZoomStep:      easel.DefaultZoomStep,
		},
		BrushSize:    easel.DefaultBrushSize,
		HistoryLimit: easel.DefaultHistoryLimit,
		Font:         FontConfig{Size: 20},
		Log:          LogConfig{Level: "info", Format: "text"},
	}
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("script: invalid config")

// LoadConfig reads a YAML config file over the defaults. A missing file
// yields the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over the defaults and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values easel would otherwise silently clamp or
// ignore.
func (c *Config) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: canvas size %dx%d", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height))
	}
	if _, err := ParseColor(c.Canvas.Background); err != nil {
		errs = append(errs, fmt.Errorf("%w: background: %w", ErrInvalidConfig, err))
	}
	if c.View.MinZoom <= 0 || c.View.MaxZoom < c.View.MinZoom {
		errs = append(errs, fmt.Errorf("%w: zoom range [%v, %v]", ErrInvalidConfig, c.View.MinZoom, c.View.MaxZoom))
	}
	if c.View.ZoomStep <= 1 {
		errs = append(errs, fmt.Errorf("%w: zoom step %v", ErrInvalidConfig, c.View.ZoomStep))
	}
	if c.View.ToolbarHeight < 0 {
		errs = append(errs, fmt.Errorf("%w: toolbar height %v", ErrInvalidConfig, c.View.ToolbarHeight))
	}
	if c.HistoryLimit < 0 {
		errs = append(errs, fmt.Errorf("%w: history limit %d", ErrInvalidConfig, c.HistoryLimit))
	}
	for i, s := range c.Palette {
		if _, err := ParseColor(s); err != nil {
			errs = append(errs, fmt.Errorf("%w: palette[%d]: %w", ErrInvalidConfig, i, err))
		}
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format))
	}
	return errors.Join(errs...)
}

// Options converts the config to editor options. It fails only when a
// configured font file cannot be read.
func (c *Config) Options() ([]easel.Option, error) {
	base, err := ParseColor(c.Canvas.Background)
	if err != nil {
		return nil, err
	}
	opts := []easel.Option{
		easel.WithBaseColor(base),
		easel.WithToolbarHeight(c.View.ToolbarHeight),
		easel.WithZoomRange(c.View.MinZoom, c.View.MaxZoom),
		easel.WithZoomStep(c.View.ZoomStep),
		easel.WithBrushSize(c.BrushSize),
		easel.WithHistoryLimit(c.HistoryLimit),
	}

	if len(c.Palette) > 0 {
		palette := make([]gg.RGBA, 0, len(c.Palette))
		for _, s := range c.Palette {
			col, err := ParseColor(s)
			if err != nil {
				return nil, err
			}
			palette = append(palette, col)
		}
		opts = append(opts, easel.WithPalette(palette...))
	}

	if c.Font.Size > 0 {
		face, err := c.Font.face()
		if err != nil {
			return nil, err
		}
		opts = append(opts, easel.WithFont(face))
	}
	return opts, nil
}

func (f FontConfig) face() (text.Face, error) {
	var (
		src *text.FontSource
		err error
	)
	if f.Path != "" {
		src, err = text.NewFontSourceFromFile(f.Path)
	} else {
		src, err = text.NewFontSource(goregular.TTF)
	}
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return src.Face(f.Size), nil
}

// NewEditor builds an editor from the config.
func (c *Config) NewEditor() (*easel.Editor, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return easel.NewEditor(c.Canvas.Width, c.Canvas.Height, opts...)
}

// ScreenSize returns the window size that shows the whole canvas at zoom
// 1 below the toolbar.
func (c *Config) ScreenSize() (w, h int) {
	return c.Canvas.Width, c.Canvas.Height + int(c.View.ToolbarHeight)
}

// NewLogger builds a text or JSON slog logger writing to w.
func NewLogger(cfg LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var namedColors = map[string]gg.RGBA{
	"black":  gg.Black,
	"white":  gg.White,
	"red":    easel.DefaultPalette[1],
	"green":  easel.DefaultPalette[2],
	"blue":   easel.DefaultPalette[3],
	"yellow": easel.DefaultPalette[4],
	"orange": easel.DefaultPalette[5],
	"purple": easel.DefaultPalette[6],
}

// ParseColor accepts a palette name (black, red, green, blue, yellow,
// orange, purple, white) or a hex color in #RGB, #RGBA, #RRGGBB or
// #RRGGBBAA form.
func ParseColor(s string) (gg.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return gg.RGBA{}, fmt.Errorf("bad color %q", s)
		}
	}
	return gg.Hex(hex), nil
}
