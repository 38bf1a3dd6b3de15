package easel

import (
	"errors"

	"github.com/gogpu/gg"
	"github.com/google/uuid"
)

// MarkerAlpha is the opacity of a single marker dab. Overlapping dabs
// accumulate.
const MarkerAlpha = 80.0 / 255

// Stroke is one freehand gesture.
//
// Points grow only while the stroke is the active stroke of a StrokeLog.
type Stroke struct {
	ID     string
	Tool   Tool
	Color  gg.RGBA
	Width  float64
	Points []Point
}

// Draw replays every segment of the stroke. A stroke with fewer than two
// points draws nothing.
func (s Stroke) Draw(d Drawer) error {
	var errs []error
	for i := 1; i < len(s.Points); i++ {
		if err := s.drawSegment(d, s.Points[i-1], s.Points[i]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// drawSegment renders the pair (a, b). Incremental drawing and replay both
// go through it, so a rebuilt raster matches the live one.
func (s Stroke) drawSegment(d Drawer, a, b Point) error {
	switch s.Tool {
	case ToolPen:
		setColor(d, s.Color)
		d.SetLineWidth(1)
		d.DrawLine(a.X, a.Y, b.X, b.Y)
		return d.Stroke()
	case ToolBrush:
		setColor(d, s.Color)
		d.DrawCircle(b.X, b.Y, s.Width)
		return d.Fill()
	case ToolMarker:
		d.SetRGBA(s.Color.R, s.Color.G, s.Color.B, MarkerAlpha)
		d.DrawCircle(b.X, b.Y, 2*s.Width)
		return d.Fill()
	default:
		return nil
	}
}

// StrokeLog is the ordered list of freehand strokes, with at most one
// active stroke at its tail.
type StrokeLog struct {
	strokes []Stroke
	active  bool
}

// Begin starts a new active stroke at first, sealing any stroke still
// active. It returns the new stroke ID.
func (l *StrokeLog) Begin(tool Tool, c gg.RGBA, width float64, first Point) string {
	l.Seal()
	s := Stroke{
		ID:     uuid.NewString(),
		Tool:   tool,
		Color:  c,
		Width:  width,
		Points: []Point{first},
	}
	l.strokes = append(l.strokes, s)
	l.active = true
	return s.ID
}

// Append adds p to the active stroke. It reports false when no stroke is
// active.
func (l *StrokeLog) Append(p Point) bool {
	if !l.active {
		return false
	}
	s := &l.strokes[len(l.strokes)-1]
	s.Points = append(s.Points, p)
	return true
}

// DrawTail draws only the newest segment of the active stroke.
func (l *StrokeLog) DrawTail(d Drawer) error {
	if !l.active {
		return nil
	}
	s := l.strokes[len(l.strokes)-1]
	n := len(s.Points)
	if n < 2 {
		return nil
	}
	return s.drawSegment(d, s.Points[n-2], s.Points[n-1])
}

// Seal closes the active stroke. It is a no-op when none is active.
func (l *StrokeLog) Seal() {
	l.active = false
}

// Active reports whether a stroke is receiving points.
func (l *StrokeLog) Active() bool {
	return l.active
}

// Len returns the number of strokes, including the active one.
func (l *StrokeLog) Len() int {
	return len(l.strokes)
}

// Strokes returns a copy of the log in drawing order.
func (l *StrokeLog) Strokes() []Stroke {
	return cloneStrokes(l.strokes)
}

// ReplayAll redraws every stroke in order. It keeps drawing after a
// failed segment and returns the joined errors.
func (l *StrokeLog) ReplayAll(d Drawer) error {
	var errs []error
	for _, s := range l.strokes {
		if err := s.Draw(d); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Reset empties the log.
func (l *StrokeLog) Reset() {
	l.strokes = nil
	l.active = false
}

// restore replaces the log with a sealed copy of strokes.
func (l *StrokeLog) restore(strokes []Stroke) {
	l.strokes = cloneStrokes(strokes)
	l.active = false
}

func cloneStrokes(src []Stroke) []Stroke {
	if len(src) == 0 {
		return nil
	}
	dst := make([]Stroke, len(src))
	for i, s := range src {
		s.Points = append([]Point(nil), s.Points...)
		dst[i] = s
	}
	return dst
}
