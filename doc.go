// Package easel is the canvas state and compositing engine of an interactive
// raster painting surface.
//
// # Overview
//
// An [Editor] owns one canvas-sized raster, the vector state painted into it
// (parametric [Shape] values and freehand [Stroke] records), an undo/redo
// [History] of full snapshots and a [View] that maps screen coordinates to
// canvas coordinates under pan and zoom.
//
// The vector state is authoritative. The raster is a cache that always equals
//
//	base  +  shapes in creation order  +  strokes in creation order
//
// whenever no gesture is in progress. Undo, redo and shape moves restore or
// mutate the vector state and then rebuild the raster from scratch.
//
// # Quick Start
//
//	ed, err := easel.NewEditor(800, 600)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ed.SetTool(easel.ToolRectangle)
//	ed.PointerDown(easel.Pt(50, 150), easel.ButtonPrimary)
//	ed.PointerMove(easel.Pt(150, 200))
//	ed.PointerUp(easel.ButtonPrimary)
//
//	f, _ := os.Create("out.png")
//	defer f.Close()
//	_ = ed.Save(f)
//
// Pointer positions passed to the Editor are in screen space; the default
// view reserves a 100 pixel toolbar strip at the top of the screen.
//
// # Rendering
//
// All rasterization goes through [github.com/gogpu/gg]. Shapes and strokes
// draw through the small [Drawer] interface, which *gg.Context satisfies.
//
// # Concurrency
//
// An Editor is not safe for concurrent use. Feed it from one goroutine, for
// example through a [Loop], which drains queued events and then runs exactly
// one render step per tick.
package easel
