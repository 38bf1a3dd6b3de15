package easel

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/gg"
)

var red = gg.RGB(1, 0, 0)

func TestNewEditorInvalidSize(t *testing.T) {
	if _, err := NewEditor(0, 10); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("NewEditor(0, 10) error = %v, want ErrInvalidSize", err)
	}
}

func TestNewEditorDefaults(t *testing.T) {
	ed, err := NewEditor(40, 30)
	if err != nil {
		t.Fatal(err)
	}
	if ed.Width() != 40 || ed.Height() != 30 {
		t.Errorf("size = %dx%d, want 40x30", ed.Width(), ed.Height())
	}
	if ed.Tool() != ToolPen {
		t.Errorf("Tool() = %v, want pen", ed.Tool())
	}
	if ed.BrushSize() != DefaultBrushSize {
		t.Errorf("BrushSize() = %v, want %v", ed.BrushSize(), DefaultBrushSize)
	}
	if ed.Color() != gg.Black {
		t.Errorf("Color() = %v, want black", ed.Color())
	}
	if ed.Fill() {
		t.Error("Fill() = true, want false")
	}
	v := ed.View()
	if v.Zoom != 1 || v.ToolbarHeight != DefaultToolbarHeight {
		t.Errorf("View() = %+v", v)
	}
	assertPixel(t, ed.Raster(), 20, 15, gg.White)
}

func TestShapeGestureOutline(t *testing.T) {
	ed, err := NewEditor(200, 200, WithToolbarHeight(0))
	if err != nil {
		t.Fatal(err)
	}
	ed.SetTool(ToolRectangle)
	drag(ed, Pt(50, 50), Pt(100, 80), Pt(150, 100))

	shapes := ed.Shapes()
	if len(shapes) != 1 {
		t.Fatalf("len(Shapes()) = %d, want 1", len(shapes))
	}
	s := shapes[0]
	if s.Kind != ShapeRectangle || s.Origin != Pt(50, 50) || s.Size != (Size{W: 100, H: 50}) || !s.Stroked {
		t.Errorf("shape = %+v", s)
	}
	if !s.HitTest(Pt(60, 60)) || s.HitTest(Pt(200, 200)) {
		t.Error("hit-test mismatch")
	}
	// Outline drawn, interior untouched.
	assertPixel(t, ed.Raster(), 50, 75, gg.Black)
	assertPixel(t, ed.Raster(), 100, 75, gg.White)
}

func TestUndoThenStrokeClearsRedo(t *testing.T) {
	ed := newTestEditor(t)
	ed.SetTool(ToolRectangle)
	ed.ToggleFill()
	ed.SetColor(red)
	drag(ed, Pt(10, 10), Pt(30, 30))
	ed.SetColor(gg.RGB(0, 0, 1))
	drag(ed, Pt(50, 50), Pt(80, 80))

	if !ed.Undo() {
		t.Fatal("Undo() = false")
	}
	if n := len(ed.Shapes()); n != 1 {
		t.Fatalf("len(Shapes()) after undo = %d, want 1", n)
	}

	ed.SetTool(ToolBrush)
	drag(ed, Pt(5, 90), Pt(50, 90), Pt(90, 90))

	if ed.Redo() {
		t.Error("Redo() after new stroke = true, want false")
	}
	ed.Rebuild()
	assertPixel(t, ed.Raster(), 20, 20, red)
	assertPixel(t, ed.Raster(), 65, 65, gg.White)
	assertPixel(t, ed.Raster(), 50, 90, gg.Black)
}

func TestMoveShapeKeepsStrokes(t *testing.T) {
	ed, err := NewEditor(200, 200, WithToolbarHeight(0))
	if err != nil {
		t.Fatal(err)
	}
	ed.SetTool(ToolBrush)
	ed.SetBrushSize(3)
	drag(ed, Pt(70, 10), Pt(80, 10), Pt(90, 10))

	ed.SetTool(ToolRectangle)
	ed.ToggleFill()
	ed.SetColor(red)
	drag(ed, Pt(50, 50), Pt(70, 70))
	undoDepth, _ := ed.HistoryLen()

	ed.ToggleSelect()
	ed.PointerDown(Pt(55, 55), ButtonPrimary)
	if ed.Gesture() != GestureMoving {
		t.Fatalf("Gesture() = %v, want moving", ed.Gesture())
	}
	if _, ok := ed.Selected(); !ok {
		t.Fatal("Selected() ok = false")
	}
	ed.PointerMove(Pt(70, 80))
	ed.PointerMove(Pt(80, 90))
	ed.PointerUp(ButtonPrimary)

	s := ed.Shapes()[0]
	if want := Pt(80, 90).Sub(Pt(5, 5)); s.Origin != want {
		t.Errorf("Origin = %v, want %v", s.Origin, want)
	}
	if _, ok := ed.Selected(); ok {
		t.Error("selection kept after pointer-up")
	}
	if d, _ := ed.HistoryLen(); d != undoDepth {
		t.Errorf("undo depth = %d, want %d (move is not undoable)", d, undoDepth)
	}

	pm := ed.Raster()
	assertPixel(t, pm, 80, 10, gg.Black)
	assertPixel(t, pm, 90, 10, gg.Black)
	assertPixel(t, pm, 85, 95, red)
	assertPixel(t, pm, 55, 55, gg.White)
}

func TestSelectMissStaysIdle(t *testing.T) {
	ed := newTestEditor(t)
	ed.SetTool(ToolCircle)
	drag(ed, Pt(10, 10), Pt(30, 30))
	ed.ToggleSelect()
	before, _ := ed.HistoryLen()

	// Inside the circle's box but outside the circle.
	ed.PointerDown(Pt(10, 10), ButtonPrimary)
	if ed.Gesture() != GestureIdle {
		t.Errorf("Gesture() = %v, want idle", ed.Gesture())
	}
	ed.PointerUp(ButtonPrimary)
	if after, _ := ed.HistoryLen(); after != before {
		t.Errorf("undo depth changed from %d to %d", before, after)
	}
}

func TestSelectPicksTopmost(t *testing.T) {
	ed := newTestEditor(t)
	ed.SetTool(ToolRectangle)
	drag(ed, Pt(10, 10), Pt(50, 50))
	drag(ed, Pt(30, 30), Pt(70, 70))
	top := ed.Shapes()[1].ID

	ed.ToggleSelect()
	ed.PointerDown(Pt(40, 40), ButtonPrimary)
	if id, _ := ed.Selected(); id != top {
		t.Errorf("Selected() = %q, want topmost %q", id, top)
	}
}

func TestToggleSelect(t *testing.T) {
	ed := newTestEditor(t)
	ed.SetTool(ToolMarker)
	ed.ToggleSelect()
	if !ed.SelectMode() || ed.Tool() != ToolSelect {
		t.Errorf("after toggle on: tool = %v", ed.Tool())
	}
	ed.ToggleSelect()
	if ed.SelectMode() || ed.Tool() != ToolPen {
		t.Errorf("after toggle off: tool = %v, want pen", ed.Tool())
	}
}

func TestCompositingInvariant(t *testing.T) {
	ed := newTestEditor(t)
	steps := []struct {
		name string
		do   func()
	}{
		{"filled shape", func() {
			ed.SetTool(ToolEllipse)
			ed.ToggleFill()
			drag(ed, Pt(10, 10), Pt(60, 40))
		}},
		{"pen stroke", func() {
			ed.SetTool(ToolPen)
			drag(ed, Pt(5, 5), Pt(50, 50), Pt(90, 20))
		}},
		{"shape over strokes", func() {
			ed.SetTool(ToolTriangle)
			ed.ToggleFill()
			drag(ed, Pt(40, 40), Pt(90, 90))
		}},
		{"marker stroke", func() {
			ed.SetTool(ToolMarker)
			drag(ed, Pt(20, 80), Pt(25, 80), Pt(30, 80), Pt(35, 82))
		}},
		{"move", func() {
			ed.ToggleSelect()
			drag(ed, Pt(30, 25), Pt(45, 30), Pt(50, 35))
		}},
		{"brush size", func() { ed.KeyPress(KeyArrowUp) }},
		{"undo", func() { ed.Undo() }},
		{"redo", func() { ed.Redo() }},
	}
	for _, st := range steps {
		st.do()
		before, after := rebuiltCopy(ed)
		if !bytes.Equal(before, after) {
			t.Errorf("after %s: raster differs from rebuild", st.name)
		}
	}
}

func TestUndoInverseLaw(t *testing.T) {
	ed := newTestEditor(t)
	ed.SetTool(ToolRectangle)
	drag(ed, Pt(10, 10), Pt(40, 40))
	ed.SetTool(ToolBrush)
	drag(ed, Pt(50, 50), Pt(60, 60))
	want := bytes.Clone(ed.Raster().Data())
	wantShapes, wantStrokes := len(ed.Shapes()), len(ed.Strokes())

	ed.SetTool(ToolSquare)
	drag(ed, Pt(20, 60), Pt(45, 90))
	if !ed.Undo() {
		t.Fatal("Undo() = false")
	}
	if !bytes.Equal(ed.Raster().Data(), want) {
		t.Error("raster after undo differs from state before the edit")
	}
	if len(ed.Shapes()) != wantShapes || len(ed.Strokes()) != wantStrokes {
		t.Errorf("vector state = %d shapes %d strokes, want %d %d",
			len(ed.Shapes()), len(ed.Strokes()), wantShapes, wantStrokes)
	}

	if !ed.Redo() {
		t.Fatal("Redo() = false")
	}
	if len(ed.Shapes()) != wantShapes+1 {
		t.Errorf("len(Shapes()) after redo = %d, want %d", len(ed.Shapes()), wantShapes+1)
	}
}

func TestUndoEmptyIsNoop(t *testing.T) {
	ed := newTestEditor(t)
	want := bytes.Clone(ed.Raster().Data())
	if ed.Undo() || ed.Redo() {
		t.Error("Undo()/Redo() on fresh editor = true")
	}
	if !bytes.Equal(ed.Raster().Data(), want) {
		t.Error("raster changed")
	}
}

func TestUndoDuringGestureIsNoop(t *testing.T) {
	ed := newTestEditor(t)
	drag(ed, Pt(1, 1), Pt(2, 2))
	ed.PointerDown(Pt(10, 10), ButtonPrimary)
	if ed.Undo() {
		t.Error("Undo() during a gesture = true")
	}
	ed.PointerUp(ButtonPrimary)
	if !ed.Undo() {
		t.Error("Undo() after the gesture = false")
	}
}

func TestDegenerateShapeLeavesNoTrace(t *testing.T) {
	ed := newTestEditor(t)
	want := bytes.Clone(ed.Raster().Data())
	for _, tool := range []Tool{ToolRectangle, ToolSquare, ToolCircle, ToolEllipse, ToolTriangle} {
		ed.SetTool(tool)
		drag(ed, Pt(40, 40), Pt(40, 40))
	}
	ed.SetTool(ToolEllipse)
	drag(ed, Pt(10, 10), Pt(60, 10))

	if n := len(ed.Shapes()); n != 0 {
		t.Errorf("len(Shapes()) = %d, want 0", n)
	}
	if !bytes.Equal(ed.Raster().Data(), want) {
		t.Error("degenerate drag changed the raster")
	}
}

func TestClear(t *testing.T) {
	ed := newTestEditor(t)
	ed.SetTool(ToolRectangle)
	ed.ToggleFill()
	drag(ed, Pt(10, 10), Pt(50, 50))
	ed.SetTool(ToolBrush)
	drag(ed, Pt(60, 60), Pt(70, 70))
	depth, _ := ed.HistoryLen()

	ed.Clear()
	if len(ed.Shapes()) != 0 || len(ed.Strokes()) != 0 {
		t.Error("Clear() kept vector state")
	}
	assertPixel(t, ed.Raster(), 30, 30, gg.White)
	assertPixel(t, ed.Raster(), 70, 70, gg.White)
	if d, _ := ed.HistoryLen(); d != depth {
		t.Errorf("undo depth = %d, want %d", d, depth)
	}
}

func TestPanWithSecondaryButton(t *testing.T) {
	ed := newTestEditor(t)
	want := bytes.Clone(ed.Raster().Data())

	ed.PointerDown(Pt(10, 10), ButtonSecondary)
	if !ed.Panning() {
		t.Fatal("Panning() = false after secondary press")
	}
	ed.PointerMove(Pt(30, 25))
	ed.PointerUp(ButtonSecondary)
	ed.PointerMove(Pt(90, 90))

	if got := ed.View().Pan; got != Pt(20, 15) {
		t.Errorf("Pan = %v, want (20,15)", got)
	}
	if !bytes.Equal(ed.Raster().Data(), want) {
		t.Error("panning changed the raster")
	}
	if d, _ := ed.HistoryLen(); d != 0 {
		t.Errorf("undo depth = %d, want 0", d)
	}
}

func TestDrawingUsesViewTransform(t *testing.T) {
	ed := newTestEditor(t, WithToolbarHeight(20))
	ed.Wheel(1)
	ed.SetView(View{Zoom: 2, Pan: Pt(10, 0), ToolbarHeight: 20, MinZoom: 0.2, MaxZoom: 4, ZoomStep: 1.1})
	ed.SetTool(ToolRectangle)
	drag(ed, Pt(30, 40), Pt(70, 80))

	s := ed.Shapes()[0]
	if s.Origin != Pt(10, 10) || s.Size != (Size{W: 20, H: 20}) {
		t.Errorf("shape = origin %v size %v, want (10,10) {20 20}", s.Origin, s.Size)
	}
}

func TestToolbarPressIgnored(t *testing.T) {
	ed, err := NewEditor(50, 50)
	if err != nil {
		t.Fatal(err)
	}
	for _, y := range []float64{50, 100} {
		ed.PointerDown(Pt(10, y), ButtonPrimary)
		if ed.Gesture() != GestureIdle {
			t.Errorf("press at y=%v: Gesture() = %v, want idle", y, ed.Gesture())
		}
	}
	if d, _ := ed.HistoryLen(); d != 0 {
		t.Errorf("undo depth = %d, want 0", d)
	}

	ed.PointerDown(Pt(10, 101), ButtonPrimary)
	if ed.Gesture() != GestureDrawing {
		t.Errorf("press below the strip: Gesture() = %v, want drawing", ed.Gesture())
	}
	ed.PointerUp(ButtonPrimary)
}

func TestWheelZoom(t *testing.T) {
	ed := newTestEditor(t)
	for range 100 {
		ed.Wheel(1)
	}
	if z := ed.View().Zoom; z != DefaultMaxZoom {
		t.Errorf("Zoom = %v, want %v", z, DefaultMaxZoom)
	}
	for range 100 {
		ed.Wheel(-1)
	}
	if z := ed.View().Zoom; z != DefaultMinZoom {
		t.Errorf("Zoom = %v, want %v", z, DefaultMinZoom)
	}
	ed.Wheel(0)
	if z := ed.View().Zoom; z != DefaultMinZoom {
		t.Errorf("Wheel(0) changed zoom to %v", z)
	}
}

func TestBrushSizeKeys(t *testing.T) {
	ed := newTestEditor(t)
	ed.KeyPress(KeyArrowUp)
	if ed.BrushSize() != 6 {
		t.Errorf("BrushSize() = %v, want 6", ed.BrushSize())
	}
	for range 200 {
		ed.KeyPress(KeyArrowUp)
	}
	if ed.BrushSize() != MaxBrushSize {
		t.Errorf("BrushSize() = %v, want %v", ed.BrushSize(), MaxBrushSize)
	}
	for range 200 {
		ed.KeyPress(KeyArrowDown)
	}
	if ed.BrushSize() != MinBrushSize {
		t.Errorf("BrushSize() = %v, want %v", ed.BrushSize(), MinBrushSize)
	}
	ed.KeyPress(KeyNone)
	if ed.BrushSize() != MinBrushSize {
		t.Errorf("KeyNone changed brush to %v", ed.BrushSize())
	}
}

func TestBrushSizeRebuildsOutlines(t *testing.T) {
	ed := newTestEditor(t)
	ed.SetTool(ToolRectangle)
	drag(ed, Pt(20, 20), Pt(80, 80))
	assertPixel(t, ed.Raster(), 27, 50, gg.White)

	ed.SetBrushSize(20)
	assertPixel(t, ed.Raster(), 27, 50, gg.Black)
}

func TestSetToolEndsGesture(t *testing.T) {
	ed := newTestEditor(t)
	ed.SetTool(ToolRectangle)
	ed.PointerDown(Pt(10, 10), ButtonPrimary)
	ed.PointerMove(Pt(40, 40))
	ed.SetTool(ToolPen)

	if ed.Gesture() != GestureIdle {
		t.Errorf("Gesture() = %v, want idle", ed.Gesture())
	}
	if n := len(ed.Shapes()); n != 1 {
		t.Errorf("len(Shapes()) = %d, want 1", n)
	}
}

func TestFreehandStrokeRecorded(t *testing.T) {
	ed := newTestEditor(t)
	ed.SetTool(ToolBrush)
	ed.SetColor(red)
	drag(ed, Pt(10, 10), Pt(20, 10), Pt(30, 10))

	strokes := ed.Strokes()
	if len(strokes) != 1 {
		t.Fatalf("len(Strokes()) = %d, want 1", len(strokes))
	}
	s := strokes[0]
	if s.Tool != ToolBrush || s.Width != DefaultBrushSize || len(s.Points) != 3 || s.Color != red {
		t.Errorf("stroke = %+v", s)
	}
	assertPixel(t, ed.Raster(), 20, 10, red)
	assertPixel(t, ed.Raster(), 30, 10, red)
}

func TestPaletteSelection(t *testing.T) {
	ed := newTestEditor(t)
	if !ed.SelectPaletteColor(1) || ed.Color() != red {
		t.Errorf("palette[1] -> %v, want red", ed.Color())
	}
	if ed.SelectPaletteColor(len(DefaultPalette)) {
		t.Error("SelectPaletteColor(out of range) = true")
	}

	custom := newTestEditor(t, WithPalette(red))
	if custom.Color() != red || len(custom.Palette()) != 1 {
		t.Errorf("custom palette: color %v, len %d", custom.Color(), len(custom.Palette()))
	}
}

func TestUndoKeepsMovedShape(t *testing.T) {
	ed := newTestEditor(t)
	ed.SetTool(ToolRectangle)
	ed.ToggleFill()
	ed.SetColor(red)
	drag(ed, Pt(10, 10), Pt(30, 30))
	drag(ed, Pt(10, 70), Pt(30, 90))

	ed.ToggleSelect()
	drag(ed, Pt(15, 15), Pt(55, 65))
	if got := ed.Shapes()[0].Origin; got != Pt(50, 60) {
		t.Fatalf("Origin after move = %v, want (50,60)", got)
	}

	if !ed.Undo() {
		t.Fatal("Undo() = false")
	}
	shapes := ed.Shapes()
	if len(shapes) != 1 {
		t.Fatalf("len(Shapes()) after undo = %d, want 1", len(shapes))
	}
	if shapes[0].Origin != Pt(50, 60) {
		t.Errorf("Origin after undo = %v, want (50,60)", shapes[0].Origin)
	}
	assertPixel(t, ed.Raster(), 55, 65, red)
	assertPixel(t, ed.Raster(), 15, 15, gg.White)
	assertPixel(t, ed.Raster(), 15, 75, gg.White)

	if !ed.Redo() {
		t.Fatal("Redo() = false")
	}
	shapes = ed.Shapes()
	if len(shapes) != 2 {
		t.Fatalf("len(Shapes()) after redo = %d, want 2", len(shapes))
	}
	if shapes[0].Origin != Pt(50, 60) || shapes[1].Origin != Pt(10, 70) {
		t.Errorf("origins after redo = %v, %v", shapes[0].Origin, shapes[1].Origin)
	}
	assertPixel(t, ed.Raster(), 15, 75, red)
}

func TestCanUndoCanRedo(t *testing.T) {
	ed := newTestEditor(t)
	if ed.CanUndo() || ed.CanRedo() {
		t.Fatal("fresh editor reports history")
	}
	drag(ed, Pt(10, 10), Pt(20, 20))
	if !ed.CanUndo() || ed.CanRedo() {
		t.Errorf("after stroke: CanUndo() = %v, CanRedo() = %v", ed.CanUndo(), ed.CanRedo())
	}

	ed.PointerDown(Pt(30, 30), ButtonPrimary)
	if ed.CanUndo() {
		t.Error("CanUndo() = true during a gesture")
	}
	ed.PointerUp(ButtonPrimary)

	ed.Undo()
	if !ed.CanRedo() {
		t.Error("CanRedo() = false after Undo")
	}
}
