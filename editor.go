package easel

import (
	"slices"

	"github.com/gogpu/gg"
)

// Editor owns one canvas: its raster, vector state, undo history, view
// and tool settings.
//
// Shapes and strokes are authoritative. The raster is kept equal to
// base, then shapes in order, then strokes in order, by drawing
// incrementally when that order allows it and rebuilding otherwise.
//
// Editor is not safe for concurrent use. Feed it from one goroutine, or
// queue events through a Loop.
type Editor struct {
	opts    options
	raster  *Raster
	history *History
	shapes  []Shape
	strokes StrokeLog
	text    *TextLayer
	view    View

	tool  Tool
	color gg.RGBA
	fill  bool
	brush float64

	gesture  Gesture
	start    Point
	last     Point
	selected string
	grab     Point
	panning  bool
	pointer  Point

	anchor    Point
	hasAnchor bool

	preview   *gg.Pixmap
	previewDC *gg.Context
}

// NewEditor creates an editor with a width x height canvas cleared to the
// base color. It returns ErrInvalidSize for non-positive dimensions.
//
// Example:
//
//	ed, err := easel.NewEditor(800, 600, easel.WithToolbarHeight(0))
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewEditor(width, height int, opts ...Option) (*Editor, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r, err := NewRaster(width, height, o.base)
	if err != nil {
		return nil, err
	}

	v := NewView(o.toolbarHeight)
	v.MinZoom, v.MaxZoom, v.ZoomStep = o.minZoom, o.maxZoom, o.zoomStep

	return &Editor{
		opts:    o,
		raster:  r,
		history: NewHistory(o.historyLimit),
		text:    newTextLayer(width, height, o.face),
		view:    v,
		tool:    ToolPen,
		color:   o.palette[0],
		brush:   o.brushSize,
	}, nil
}

// Width returns the canvas width.
func (e *Editor) Width() int { return e.raster.Width() }

// Height returns the canvas height.
func (e *Editor) Height() int { return e.raster.Height() }

// Raster returns the committed canvas pixels. The pixmap is live: it
// changes with every edit.
func (e *Editor) Raster() *gg.Pixmap { return e.raster.Pixmap() }

// TextLayer returns the text overlay.
func (e *Editor) TextLayer() *TextLayer { return e.text }

// View returns the current view transform.
func (e *Editor) View() View { return e.view }

// Shapes returns a copy of the placed shapes, bottom first.
func (e *Editor) Shapes() []Shape { return slices.Clone(e.shapes) }

// Strokes returns a copy of the stroke log, oldest first.
func (e *Editor) Strokes() []Stroke { return e.strokes.Strokes() }

// Gesture returns the pointer state.
func (e *Editor) Gesture() Gesture { return e.gesture }

// Panning reports whether a secondary-button drag is panning the view.
func (e *Editor) Panning() bool { return e.panning }

// Selected returns the ID of the shape being moved.
func (e *Editor) Selected() (string, bool) {
	return e.selected, e.selected != ""
}

// HistoryLen returns the depth of the undo and redo stacks.
func (e *Editor) HistoryLen() (undo, redo int) { return e.history.Len() }

// CanUndo reports whether Undo would change anything now.
func (e *Editor) CanUndo() bool { return e.gesture == GestureIdle && e.history.CanUndo() }

// CanRedo reports whether Redo would change anything now.
func (e *Editor) CanRedo() bool { return e.gesture == GestureIdle && e.history.CanRedo() }

// Tool returns the active tool.
func (e *Editor) Tool() Tool { return e.tool }

// SelectMode reports whether presses select shapes instead of drawing.
func (e *Editor) SelectMode() bool { return e.tool == ToolSelect }

// Color returns the drawing color.
func (e *Editor) Color() gg.RGBA { return e.color }

// Fill reports whether new shapes are filled rather than outlined.
func (e *Editor) Fill() bool { return e.fill }

// BrushSize returns the brush size used by new strokes and by every
// outlined shape.
func (e *Editor) BrushSize() float64 { return e.brush }

// Palette returns a copy of the configured palette.
func (e *Editor) Palette() []gg.RGBA { return slices.Clone(e.opts.palette) }

// SetTool switches tools and drops any selection. A gesture in progress
// ends as if the pointer had been released.
func (e *Editor) SetTool(t Tool) {
	e.endGesture()
	e.tool = t
	e.hasAnchor = false
	Logger().Debug("tool changed", "tool", t.Label())
}

// ToggleSelect enters select mode, or returns to the pen when already in
// it.
func (e *Editor) ToggleSelect() {
	if e.tool == ToolSelect {
		e.SetTool(ToolPen)
		return
	}
	e.SetTool(ToolSelect)
}

// SetColor sets the drawing color.
func (e *Editor) SetColor(c gg.RGBA) { e.color = c }

// SelectPaletteColor sets the drawing color to palette entry i. It
// reports false for an out-of-range index.
func (e *Editor) SelectPaletteColor(i int) bool {
	if i < 0 || i >= len(e.opts.palette) {
		return false
	}
	e.color = e.opts.palette[i]
	return true
}

// ToggleFill flips between filled and outlined shapes and returns the new
// setting.
func (e *Editor) ToggleFill() bool {
	e.fill = !e.fill
	return e.fill
}

// SetBrushSize sets the brush size, clamped to [MinBrushSize,
// MaxBrushSize]. Outlined shapes use the current size, so the raster is
// rebuilt when any exists.
func (e *Editor) SetBrushSize(size float64) {
	size = clampBrush(size)
	if size == e.brush {
		return
	}
	e.brush = size
	if slices.ContainsFunc(e.shapes, func(s Shape) bool { return s.Stroked }) {
		e.Rebuild()
	}
}

// KeyPress handles a key: arrow up grows the brush by one, arrow down
// shrinks it.
func (e *Editor) KeyPress(k Key) {
	switch k {
	case KeyArrowUp:
		e.SetBrushSize(e.brush + 1)
	case KeyArrowDown:
		e.SetBrushSize(e.brush - 1)
	}
}

// Wheel zooms in for dir > 0 and out for dir < 0.
func (e *Editor) Wheel(dir int) {
	switch {
	case dir > 0:
		e.view.ZoomIn()
	case dir < 0:
		e.view.ZoomOut()
	}
}

// SetView replaces the view transform, re-clamping its zoom.
func (e *Editor) SetView(v View) {
	e.view = v
	e.view.SetZoom(v.Zoom)
}

// PointerDown handles a button press at a screen position.
//
// The secondary button starts panning. The primary button, outside the
// toolbar strip, either selects the topmost shape under the pointer (in
// select mode), anchors text (text tool), or snapshots the canvas and
// starts drawing.
func (e *Editor) PointerDown(screen Point, b Button) {
	e.pointer = screen
	switch b {
	case ButtonSecondary:
		e.panning = true
		return
	case ButtonPrimary:
	default:
		return
	}
	if e.gesture != GestureIdle || e.view.InToolbar(screen) {
		return
	}

	p := e.view.ToCanvas(screen)
	switch {
	case e.tool == ToolSelect:
		e.beginMove(p)
	case e.tool == ToolText:
		e.anchor, e.hasAnchor = p, true
	default:
		e.commit()
		e.gesture = GestureDrawing
		e.start, e.last = p, p
		if e.tool.IsFreehand() {
			e.strokes.Begin(e.tool, e.color, e.brush, p)
		}
		Logger().Debug("gesture started", "tool", e.tool, "at", p)
	}
}

func (e *Editor) beginMove(p Point) {
	for i := len(e.shapes) - 1; i >= 0; i-- {
		s := e.shapes[i]
		if s.HitTest(p) {
			e.selected = s.ID
			e.grab = p.Sub(s.Origin)
			e.gesture = GestureMoving
			Logger().Debug("shape selected", "id", s.ID, "kind", s.Kind)
			return
		}
	}
}

// PointerMove handles pointer motion to a screen position.
func (e *Editor) PointerMove(screen Point) {
	delta := screen.Sub(e.pointer)
	e.pointer = screen
	if e.panning {
		e.view.PanBy(delta)
	}

	p := e.view.ToCanvas(screen)
	switch e.gesture {
	case GestureMoving:
		i := e.shapeIndex(e.selected)
		if i < 0 {
			return
		}
		e.shapes[i].Origin = p.Sub(e.grab)
		e.Rebuild()
	case GestureDrawing:
		e.last = p
		if e.tool.IsFreehand() && e.strokes.Append(p) {
			if err := e.strokes.DrawTail(e.raster.Drawer()); err != nil {
				Logger().Warn("stroke segment failed", "err", err)
			}
		}
	}
}

// PointerUp handles a button release at the last pointer position.
func (e *Editor) PointerUp(b Button) {
	switch b {
	case ButtonSecondary:
		e.panning = false
	case ButtonPrimary:
		e.last = e.view.ToCanvas(e.pointer)
		e.endGesture()
	}
}

// endGesture finishes the current gesture and returns to idle.
func (e *Editor) endGesture() {
	switch e.gesture {
	case GestureDrawing:
		if kind, ok := e.tool.ShapeKind(); ok {
			e.placeShape(kind)
		} else {
			e.strokes.Seal()
		}
	case GestureMoving:
		Logger().Debug("shape moved", "id", e.selected)
	}
	e.gesture = GestureIdle
	e.selected = ""
}

func (e *Editor) placeShape(kind ShapeKind) {
	s, ok := ShapeFromDrag(kind, e.start, e.last, e.color, !e.fill)
	if !ok {
		Logger().Debug("degenerate shape dropped", "kind", kind, "from", e.start, "to", e.last)
		return
	}
	e.shapes = append(e.shapes, s)
	if e.strokes.Len() > 0 {
		e.Rebuild()
		return
	}
	if err := s.Draw(e.raster.Drawer(), e.brush); err != nil {
		Logger().Warn("shape draw failed", "kind", kind, "err", err)
	}
}

func (e *Editor) shapeIndex(id string) int {
	return slices.IndexFunc(e.shapes, func(s Shape) bool { return s.ID == id })
}

// Rebuild recomposes the raster from the base, the shapes and the
// strokes.
func (e *Editor) Rebuild() {
	e.raster.Reset()
	d := e.raster.Drawer()
	for _, s := range e.shapes {
		if err := s.Draw(d, e.brush); err != nil {
			Logger().Warn("shape draw failed", "id", s.ID, "err", err)
		}
	}
	if err := e.strokes.ReplayAll(d); err != nil {
		Logger().Warn("stroke replay failed", "err", err)
	}
	Logger().Debug("raster rebuilt", "shapes", len(e.shapes), "strokes", e.strokes.Len())
}

// Undo restores the state saved before the last destructive gesture. It
// reports false when there is nothing to undo or a gesture is in
// progress.
func (e *Editor) Undo() bool {
	if e.gesture != GestureIdle {
		return false
	}
	s, ok := e.history.Undo(e.snapshot())
	if !ok {
		return false
	}
	e.restore(s)
	Logger().Debug("undo")
	return true
}

// Redo reapplies the last undone state. It reports false when there is
// nothing to redo or a gesture is in progress.
func (e *Editor) Redo() bool {
	if e.gesture != GestureIdle {
		return false
	}
	s, ok := e.history.Redo(e.snapshot())
	if !ok {
		return false
	}
	e.restore(s)
	Logger().Debug("redo")
	return true
}

// Clear resets the raster to the base fill and drops every shape and
// stroke. It is not undoable and leaves the history and the text layer
// alone.
func (e *Editor) Clear() {
	e.gesture = GestureIdle
	e.selected = ""
	e.shapes = nil
	e.strokes.Reset()
	e.raster.ResetBase()
	Logger().Debug("canvas cleared")
}

// PlaceText draws s on the text layer with its baseline at the canvas
// point p, in the drawing color. It reports false when no font is
// configured or s is empty.
func (e *Editor) PlaceText(p Point, s string) bool {
	return e.text.Place(p, s, e.color)
}

// TypeText places s at the point last clicked with the text tool.
func (e *Editor) TypeText(s string) bool {
	if !e.hasAnchor {
		return false
	}
	return e.PlaceText(e.anchor, s)
}

// commit pushes the current state onto the undo stack.
func (e *Editor) commit() {
	e.history.Push(e.snapshot())
	undo, _ := e.history.Len()
	Logger().Debug("snapshot committed", "depth", undo)
}

func (e *Editor) snapshot() Snapshot {
	return Snapshot{
		Pixels:  e.raster.pixels(),
		Base:    e.raster.base,
		Shapes:  slices.Clone(e.shapes),
		Strokes: e.strokes.Strokes(),
	}
}

// restore brings back the shapes and strokes listed in s. Moves are not
// history entries, so a shape that still exists keeps its current
// geometry.
func (e *Editor) restore(s Snapshot) {
	e.raster.restore(s.Pixels, s.Base)
	e.shapes = keepCurrent(s.Shapes, e.shapes)
	e.strokes.restore(s.Strokes)
	e.Rebuild()
}

// keepCurrent returns saved with each entry replaced by the shape of the
// same ID in current, when there is one.
func keepCurrent(saved, current []Shape) []Shape {
	live := make(map[string]Shape, len(current))
	for _, s := range current {
		live[s.ID] = s
	}
	out := make([]Shape, len(saved))
	for i, s := range saved {
		if c, ok := live[s.ID]; ok {
			s = c
		}
		out[i] = s
	}
	return out
}
