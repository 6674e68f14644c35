package pix

import "fmt"

// ViewExtent describes the layout of a canvas: FrameCount frames of
// identical size placed side by side along the x axis.
type ViewExtent struct {
	FrameWidth  int
	FrameHeight int
	FrameCount  int
}

// Extent is a convenience function to create a ViewExtent.
func Extent(fw, fh, nframes int) ViewExtent {
	return ViewExtent{FrameWidth: fw, FrameHeight: fh, FrameCount: nframes}
}

// Validate checks the extent invariant: positive frame dimensions and
// at least one frame.
func (e ViewExtent) Validate() error {
	if e.FrameWidth <= 0 || e.FrameHeight <= 0 {
		return fmt.Errorf("pix: invalid frame size %dx%d", e.FrameWidth, e.FrameHeight)
	}
	if e.FrameCount < 1 {
		return fmt.Errorf("pix: invalid frame count %d", e.FrameCount)
	}
	return nil
}

// Width returns the total canvas width across all frames.
func (e ViewExtent) Width() int {
	return e.FrameWidth * e.FrameCount
}

// Height returns the canvas height.
func (e ViewExtent) Height() int {
	return e.FrameHeight
}

// Bounds returns the canvas rectangle at the origin.
func (e ViewExtent) Bounds() Rect {
	return Rect{W: e.Width(), H: e.Height()}
}

// FrameRect returns the rectangle of the i-th frame.
func (e ViewExtent) FrameRect(i int) Rect {
	return Rect{X: i * e.FrameWidth, W: e.FrameWidth, H: e.FrameHeight}
}

// PixelCount returns the number of pixels the canvas holds.
func (e ViewExtent) PixelCount() int {
	return e.Width() * e.Height()
}

// String returns a readable representation of the extent.
func (e ViewExtent) String() string {
	return fmt.Sprintf("%dx%d*%d", e.FrameWidth, e.FrameHeight, e.FrameCount)
}
