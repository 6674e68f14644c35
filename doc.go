// Package pix implements the pixel-manipulation core of a raster image
// editor.
//
// # Overview
//
// pix turns pointer input and fill requests into exact sets of modified
// pixels, and records enough history to undo and redo those modifications
// deterministically. It is the engine behind a pixel editor, not the
// editor itself: windowing, rendering and image codecs live with the
// caller.
//
// The package has three moving parts:
//
//   - Brush: a stateful stroke tracker. It rasterizes a sequence of
//     pointer positions into pixel coordinates with Bresenham's line
//     algorithm, optionally cleans up staircase corners (pixel-perfect
//     pencil mode), and expands each pixel into paint heads according to
//     the active mirror and multi-frame modifiers.
//   - Fill: a scanline flood fill. Given a starting pixel and a
//     replacement color it computes the connected region of same-colored
//     pixels and returns it as a minimal set of horizontal runs.
//   - History: a cursor-addressed list of LZ4-compressed canvas
//     snapshots with undo, redo and redo-branch truncation.
//
// Both the brush and the fill produce []Shape — colored rectangles the
// caller composites into its pixel buffer (see Pixmap.Apply).
//
// # Quick Start
//
//	import "github.com/gogpu/pix"
//
//	pm := pix.NewPixmap(64, 64)
//	extent := pix.ViewExtent{FrameWidth: 64, FrameHeight: 64, FrameCount: 1}
//
//	b := pix.NewBrush()
//	pm.Apply(b.BeginStroke(pix.Pt(4, 4), pix.Red, extent))
//	pm.Apply(b.ExtendStroke(pix.Pt(32, 18)))
//	pm.Apply(b.EndStroke())
//
//	h := pix.NewHistory(pm.Data(), extent)
//	h.MarkEdited()
//	h.Push(pm.Data(), extent)
//
// # Coordinate System
//
// Origin (0,0) at the top-left, X increases right, Y increases down.
// A canvas is laid out as FrameCount frames of identical size placed
// side by side; mirror and multi-frame modifiers operate per frame.
//
// # Concurrency
//
// All operations are synchronous and none spawn goroutines. A Brush, a
// Pixmap and a History are each owned by a single canvas and must be
// driven in input-event order; they are not safe for concurrent use.
package pix

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
