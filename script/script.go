package script

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/easel"
	"gopkg.in/yaml.v3"
)

// Point is an [x, y] pair in screen coordinates.
type Point [2]float64

// UnmarshalYAML accepts a two-element flow sequence.
func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	var xy []float64
	if err := node.Decode(&xy); err != nil {
		return err
	}
	if len(xy) != 2 {
		return fmt.Errorf("line %d: point needs 2 coordinates, got %d", node.Line, len(xy))
	}
	p[0], p[1] = xy[0], xy[1]
	return nil
}

func (p Point) pt() easel.Point { return easel.Pt(p[0], p[1]) }

// Step is one scripted action. A step may combine settings with one
// gesture; the parts run in field order: settings, pointer input, keys,
// wheel, text, history, load.
//
//	steps:
//	  - tool: rectangle
//	    color: red
//	    fill: true
//	  - drag: [[50, 150], [150, 200]]
//	  - undo: 1
type Step struct {
	Tool    string  `yaml:"tool,omitempty"`
	Color   string  `yaml:"color,omitempty"`
	Palette *int    `yaml:"palette,omitempty"`
	Fill    *bool   `yaml:"fill,omitempty"`
	Select  bool    `yaml:"select,omitempty"`
	Brush   float64 `yaml:"brush,omitempty"`

	Down   *Point  `yaml:"down,omitempty"`
	Button string  `yaml:"button,omitempty"`
	Move   []Point `yaml:"move,omitempty"`
	Up     bool    `yaml:"up,omitempty"`
	Drag   []Point `yaml:"drag,omitempty"`

	Key   string `yaml:"key,omitempty"`
	Wheel int    `yaml:"wheel,omitempty"`

	Text string `yaml:"text,omitempty"`
	At   *Point `yaml:"at,omitempty"`

	Undo  int    `yaml:"undo,omitempty"`
	Redo  int    `yaml:"redo,omitempty"`
	Clear bool   `yaml:"clear,omitempty"`
	Load  string `yaml:"load,omitempty"`
}

// Script is an ordered list of steps. Each step is one loop tick.
type Script struct {
	Steps []Step `yaml:"steps"`

	// dir resolves relative load paths.
	dir string
}

// LoadScript reads a script file. Relative load paths in it are resolved
// against the file's directory.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, err
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// ParseScript decodes a YAML script and checks every step.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for i, st := range s.Steps {
		if _, err := st.Events(""); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return &s, nil
}

// Events translates the step into editor events. dir resolves a relative
// load path.
func (st Step) Events(dir string) ([]easel.Event, error) {
	var evs []easel.Event
	cmd := func(fn func(*easel.Editor)) {
		evs = append(evs, easel.CommandEvent(fn))
	}

	if st.Tool != "" {
		tool, err := easel.ParseTool(st.Tool)
		if err != nil {
			return nil, err
		}
		cmd(func(e *easel.Editor) { e.SetTool(tool) })
	}
	if st.Color != "" {
		c, err := ParseColor(st.Color)
		if err != nil {
			return nil, err
		}
		cmd(func(e *easel.Editor) { e.SetColor(c) })
	}
	if st.Palette != nil {
		i := *st.Palette
		cmd(func(e *easel.Editor) {
			if !e.SelectPaletteColor(i) {
				easel.Logger().Warn("palette index out of range", "index", i)
			}
		})
	}
	if st.Fill != nil {
		want := *st.Fill
		cmd(func(e *easel.Editor) {
			if e.Fill() != want {
				e.ToggleFill()
			}
		})
	}
	if st.Select {
		cmd((*easel.Editor).ToggleSelect)
	}
	if st.Brush != 0 {
		size := st.Brush
		cmd(func(e *easel.Editor) { e.SetBrushSize(size) })
	}

	button, err := parseButton(st.Button)
	if err != nil {
		return nil, err
	}
	if len(st.Drag) > 0 {
		if st.Down != nil || st.Up || len(st.Move) > 0 {
			return nil, fmt.Errorf("drag cannot be combined with down, move or up")
		}
		evs = append(evs, easel.PointerDownEvent(st.Drag[0].pt(), button))
		for _, p := range st.Drag[1:] {
			evs = append(evs, easel.PointerMoveEvent(p.pt()))
		}
		evs = append(evs, easel.PointerUpEvent(button))
	} else {
		if st.Down != nil {
			evs = append(evs, easel.PointerDownEvent(st.Down.pt(), button))
		}
		for _, p := range st.Move {
			evs = append(evs, easel.PointerMoveEvent(p.pt()))
		}
		if st.Up {
			evs = append(evs, easel.PointerUpEvent(button))
		}
	}

	if st.Key != "" {
		k, err := parseKey(st.Key)
		if err != nil {
			return nil, err
		}
		evs = append(evs, easel.KeyEvent(k))
	}
	if st.Wheel != 0 {
		dir := 1
		if st.Wheel < 0 {
			dir = -1
		}
		for range abs(st.Wheel) {
			evs = append(evs, easel.WheelEvent(dir))
		}
	}

	if st.Text != "" {
		s := st.Text
		if st.At != nil {
			at := st.At.pt()
			cmd(func(e *easel.Editor) {
				e.PlaceText(e.View().ToCanvas(at), s)
			})
		} else {
			cmd(func(e *easel.Editor) { e.TypeText(s) })
		}
	}

	for range st.Undo {
		cmd(func(e *easel.Editor) { e.Undo() })
	}
	for range st.Redo {
		cmd(func(e *easel.Editor) { e.Redo() })
	}
	if st.Clear {
		cmd((*easel.Editor).Clear)
	}
	if st.Load != "" {
		path := st.Load
		if !filepath.IsAbs(path) && dir != "" {
			path = filepath.Join(dir, path)
		}
		cmd(func(e *easel.Editor) { loadFile(e, path) })
	}
	return evs, nil
}

func loadFile(e *easel.Editor, path string) {
	f, err := os.Open(path)
	if err != nil {
		easel.Logger().Warn("image load failed", "path", path, "err", err)
		return
	}
	defer f.Close()
	e.Load(f)
}

// Run replays the script on ed, one tick per step. render, if not nil,
// runs after every tick. Run stops early when ctx is done.
func (s *Script) Run(ctx context.Context, ed *easel.Editor, render func(*easel.Editor)) error {
	loop := easel.NewLoop(ed, render)
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		evs, err := st.Events(s.dir)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		loop.Post(evs...)
		loop.Tick()
	}
	return nil
}

func parseButton(s string) (easel.Button, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "primary", "left":
		return easel.ButtonPrimary, nil
	case "middle":
		return easel.ButtonMiddle, nil
	case "secondary", "right":
		return easel.ButtonSecondary, nil
	default:
		return 0, fmt.Errorf("unknown button %q", s)
	}
}

func parseKey(s string) (easel.Key, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return easel.KeyArrowUp, nil
	case "down":
		return easel.KeyArrowDown, nil
	default:
		return easel.KeyNone, fmt.Errorf("unknown key %q", s)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
