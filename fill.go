package pix

// This algorithm fills horizontally from the starting point, looking
// for edges above and below. An "edge" is a place where a solid pixel
// changes to a fillable one, "solid" meaning not equal to the old
// color. At such a transition the next point is pushed onto the stack
// and, later, a new horizontal scan starts from it. One seed is pushed
// per contiguous fillable run in the adjacent row, which keeps the fill
// linear in the number of filled pixels.

type bucket struct {
	oldColor RGBA8
	newColor RGBA8
	stack    []Point
	pixels   *Pixmap
}

// trySetColor overwrites the pixel at (x, y) if it matches the old
// color, reporting whether the scan can continue past it.
func (b *bucket) trySetColor(x, y int) bool {
	if c, ok := b.pixels.Get(x, y); ok && c == b.oldColor {
		b.pixels.Set(x, y, b.newColor)
		return true
	}
	return false
}

// pushOnChange seeds a new scan at (x, y) if the pixel is fillable and
// we are coming off a solid run in that row.
func (b *bucket) pushOnChange(x, y int, edge *bool) {
	if c, ok := b.pixels.Get(x, y); ok && c == b.oldColor {
		if *edge {
			// We're at an edge, we'll come back to this point in the
			// next loop to start a new horizontal span.
			b.stack = append(b.stack, Point{X: x, Y: y})
			*edge = false
		}
		return
	}
	*edge = true
}

// lookAround inspects the pixels directly above and below (x, y).
func (b *bucket) lookAround(x, y int, up, down *bool) {
	if y > 0 {
		b.pushOnChange(x, y-1, up)
	}
	if y < b.pixels.height-1 {
		b.pushOnChange(x, y+1, down)
	}
}

// Fill flood-fills the 4-connected region of pixels matching the color
// at origin with the replacement color, mutating pm in place, and
// returns the filled area as one horizontal-run Shape per scan. An
// origin outside the buffer or already holding the replacement color is
// a no-op returning nil.
func Fill(pm *Pixmap, origin Point, color RGBA8) []Shape {
	oldColor, ok := pm.Get(origin.X, origin.Y)
	if !ok {
		return nil
	}
	if oldColor == color {
		return nil
	}

	b := &bucket{
		oldColor: oldColor,
		newColor: color,
		stack:    []Point{origin},
		pixels:   pm,
	}
	var shapes []Shape

	for len(b.stack) > 0 {
		seed := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		x, y := seed.X, seed.Y

		left, right := x, x

		// Whether the pixels above/below are transitioning from solid
		// to fillable. True while we're in (above/below) a solid
		// region, false once past it.
		upEdge, downEdge := true, true

		// Scan right.
		for sx := x; sx <= b.pixels.width; sx++ {
			right = sx

			if !b.trySetColor(sx, y) {
				break
			}
			b.lookAround(sx, y, &upEdge, &downEdge)
		}

		// Scan left.
		for sx := x - 1; sx >= 0; sx-- {
			left = sx

			if !b.trySetColor(sx, y) {
				left++
				break
			}
			b.lookAround(sx, y, &upEdge, &downEdge)
		}

		shapes = append(shapes, Shape{
			Rect:  Rect{X: left, Y: y, W: right - left, H: 1},
			Color: color,
		})
	}

	return shapes
}
