package easel

// View maps between screen space and canvas space.
//
// The canvas is drawn at Pan + (0, ToolbarHeight) on screen and scaled by
// Zoom. View is a value type: it is never part of an undo snapshot.
type View struct {
	Zoom          float64
	Pan           Point
	ToolbarHeight float64

	MinZoom  float64
	MaxZoom  float64
	ZoomStep float64
}

// NewView returns an unzoomed, unpanned view with the default zoom range.
func NewView(toolbarHeight float64) View {
	return View{
		Zoom:          1,
		ToolbarHeight: toolbarHeight,
		MinZoom:       DefaultMinZoom,
		MaxZoom:       DefaultMaxZoom,
		ZoomStep:      DefaultZoomStep,
	}
}

// ToCanvas converts a screen position to canvas space:
// (screen - pan - toolbar) / zoom.
func (v View) ToCanvas(screen Point) Point {
	return screen.Sub(v.Pan).Sub(Pt(0, v.ToolbarHeight)).Div(v.Zoom)
}

// InToolbar reports whether a screen point falls on the toolbar strip,
// including its bottom edge row. Without a toolbar only points above the
// screen do.
func (v View) InToolbar(screen Point) bool {
	if v.ToolbarHeight <= 0 {
		return screen.Y < 0
	}
	return screen.Y <= v.ToolbarHeight
}

// ToScreen is the inverse of ToCanvas. It is used only for rendering.
func (v View) ToScreen(canvas Point) Point {
	return canvas.Mul(v.Zoom).Add(v.Pan).Add(Pt(0, v.ToolbarHeight))
}

// ZoomIn multiplies the zoom by ZoomStep, clamped to MaxZoom.
func (v *View) ZoomIn() {
	v.SetZoom(v.Zoom * v.ZoomStep)
}

// ZoomOut divides the zoom by ZoomStep, clamped to MinZoom.
//
// Zooming in and out by equal counts is not guaranteed to land exactly on
// the starting value; the float drift is kept as is.
func (v *View) ZoomOut() {
	v.SetZoom(v.Zoom / v.ZoomStep)
}

// SetZoom sets the zoom, clamped to [MinZoom, MaxZoom].
func (v *View) SetZoom(z float64) {
	v.Zoom = min(v.MaxZoom, max(v.MinZoom, z))
}

// PanBy moves the canvas by a screen-space delta.
func (v *View) PanBy(delta Point) {
	v.Pan = v.Pan.Add(delta)
}
