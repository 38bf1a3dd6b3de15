package easel

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tool is the active input tool.
type Tool uint8

// Tools. Pen, Brush and Marker are freehand; the shape tools map onto a
// ShapeKind; Select and Text change what a primary press does.
const (
	ToolPen Tool = iota
	ToolBrush
	ToolMarker
	ToolRectangle
	ToolSquare
	ToolCircle
	ToolEllipse
	ToolTriangle
	ToolSelect
	ToolText
)

var toolNames = [...]string{
	ToolPen:       "pen",
	ToolBrush:     "brush",
	ToolMarker:    "marker",
	ToolRectangle: "rectangle",
	ToolSquare:    "square",
	ToolCircle:    "circle",
	ToolEllipse:   "ellipse",
	ToolTriangle:  "triangle",
	ToolSelect:    "select",
	ToolText:      "text",
}

// String returns the lower-case tool name.
func (t Tool) String() string {
	if int(t) < len(toolNames) {
		return toolNames[t]
	}
	return fmt.Sprintf("Tool(%d)", uint8(t))
}

// Label returns the tool name as shown on a toolbar button.
func (t Tool) Label() string {
	return cases.Title(language.English).String(t.String())
}

// IsFreehand reports whether t records a Stroke.
func (t Tool) IsFreehand() bool {
	return t == ToolPen || t == ToolBrush || t == ToolMarker
}

// ShapeKind returns the shape drawn by t, if t is a shape tool.
func (t Tool) ShapeKind() (ShapeKind, bool) {
	switch t {
	case ToolRectangle:
		return ShapeRectangle, true
	case ToolSquare:
		return ShapeSquare, true
	case ToolCircle:
		return ShapeCircle, true
	case ToolEllipse:
		return ShapeEllipse, true
	case ToolTriangle:
		return ShapeTriangle, true
	default:
		return 0, false
	}
}

// ParseTool resolves a tool name, ignoring case and surrounding space.
func ParseTool(s string) (Tool, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range toolNames {
		if n == name {
			return Tool(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTool, s)
}
