package pix

import (
	"fmt"
	"math"
	"strings"
)

// Mode selects how the brush turns pointer input into a stroke.
// Exactly one mode is active at a time.
type Mode int

const (
	// ModeNormal is the plain brush.
	ModeNormal Mode = iota
	// ModeErase paints transparent pixels.
	ModeErase
	// ModePencil is pixel-perfect mode: staircase corners are removed
	// from the stroke as it is drawn.
	ModePencil
	// ModeLine constrains the stroke to a straight line from the
	// starting point, rubber-banded to the current pointer position.
	ModeLine
)

// String returns the mode's display name.
func (m Mode) String() string {
	switch m {
	case ModeErase:
		return "erase"
	case ModePencil:
		return "pencil"
	case ModeLine:
		return "line"
	default:
		return "brush"
	}
}

// Modifier is a set of independently toggleable brush flags. Any
// combination may be active at once.
type Modifier uint8

const (
	// ModifierMulti replicates the stroke across all later frames.
	ModifierMulti Modifier = 1 << iota
	// ModifierMirrorX mirrors the stroke horizontally within its frame.
	ModifierMirrorX
	// ModifierMirrorY mirrors the stroke vertically.
	ModifierMirrorY
)

// String returns the modifier set's display name.
func (m Modifier) String() string {
	var parts []string
	if m&ModifierMulti != 0 {
		parts = append(parts, "multi")
	}
	if m&ModifierMirrorX != 0 {
		parts = append(parts, "mirror/x")
	}
	if m&ModifierMirrorY != 0 {
		parts = append(parts, "mirror/y")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// drawing is the brush state while a pointer gesture is in progress.
// The extent is captured at stroke start: resizing the canvas mid-stroke
// does not affect the stroke being drawn.
type drawing struct {
	prev   Point
	extent ViewExtent
}

// Brush tracks one pointer-down-to-pointer-up stroke at a time and
// converts it into the shapes that must be painted. A brush belongs to
// a single canvas and is driven in input-event order.
type Brush struct {
	size      int
	state     *drawing
	stroke    []Point
	color     RGBA8
	mode      Mode
	prevMode  Mode
	hasPrev   bool
	snap      int // line snap angle in degrees, 0 disables snapping
	modifiers Modifier
}

// NewBrush creates a size-1 brush in normal mode.
func NewBrush(opts ...BrushOption) *Brush {
	b := &Brush{size: 1}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Size returns the brush size in pixels.
func (b *Brush) Size() int {
	return b.size
}

// SetSize sets the side length of the square paint head. Sizes below 1
// are clamped to 1.
func (b *Brush) SetSize(n int) {
	b.size = max(n, 1)
}

// Mode returns the active brush mode.
func (b *Brush) Mode() Mode {
	return b.mode
}

// SetMode sets the brush mode. Setting the mode it is already in
// switches back to the previous mode, so a mode key can act as a
// toggle.
func (b *Brush) SetMode(m Mode) {
	if b.mode == m {
		if b.hasPrev {
			b.mode = b.prevMode
		}
		return
	}
	b.prevMode = b.mode
	b.hasPrev = true
	b.mode = m
}

// SnapAngle returns the line-mode snap angle in degrees (0 = off).
func (b *Brush) SnapAngle() int {
	return b.snap
}

// SetSnapAngle sets the line-mode snap angle in degrees. Zero disables
// snapping.
func (b *Brush) SetSnapAngle(degrees int) {
	b.snap = max(degrees, 0)
}

// String returns the brush's status-line display name: the mode name,
// or "N degree snap line" in line mode with a snap angle set.
func (b *Brush) String() string {
	if b.mode == ModeLine && b.snap > 0 {
		return fmt.Sprintf("%d degree snap line", b.snap)
	}
	return b.mode.String()
}

// Color returns the color committed at stroke start.
func (b *Brush) Color() RGBA8 {
	return b.color
}

// IsSet reports whether all given modifier flags are active.
func (b *Brush) IsSet(m Modifier) bool {
	return b.modifiers&m == m
}

// Toggle flips the given modifier flags.
func (b *Brush) Toggle(m Modifier) {
	b.modifiers ^= m
}

// Modifiers returns the active modifier set.
func (b *Brush) Modifiers() Modifier {
	return b.modifiers
}

// ResetModifiers clears all modifiers.
func (b *Brush) ResetModifiers() {
	b.modifiers = 0
}

// IsDrawing reports whether a stroke is in progress.
func (b *Brush) IsDrawing() bool {
	return b.state != nil
}

// BeginStroke starts a stroke at origin. The color and canvas extent
// are captured for the stroke's duration. Called on pointer-down.
func (b *Brush) BeginStroke(origin Point, color RGBA8, extent ViewExtent) []Shape {
	b.state = &drawing{prev: origin, extent: extent}
	b.color = color
	b.stroke = append(b.stroke[:0], origin)

	Logger().Debug("stroke begin", "origin", origin, "mode", b.mode, "extent", extent)

	return b.shapes()
}

// ExtendStroke advances the stroke to the given pointer position and
// returns the shapes for the entire current stroke. Callers repaint the
// whole stroke each call, since pencil filtering may retroactively
// change earlier points. Calling while no stroke is in progress is a
// no-op returning nil.
func (b *Brush) ExtendStroke(point Point) []Shape {
	if b.state == nil {
		return nil
	}

	if b.mode == ModeLine {
		start := point
		if len(b.stroke) > 0 {
			start = b.stroke[0]
		}
		end := point
		if b.snap > 0 {
			end = snapLineEnd(start, point, b.snap)
		}
		b.stroke = appendLine(b.stroke[:0], start, end)
	} else {
		b.stroke = appendLine(b.stroke, b.state.prev, point)
		b.stroke = dedup(b.stroke)

		if b.mode == ModePencil {
			b.stroke = pixelPerfect(b.stroke)
		}
	}

	b.state.prev = point
	return b.shapes()
}

// EndStroke finishes the stroke and returns its final shapes. Called on
// pointer-up. Calling EndStroke while no stroke is in progress is a
// contract violation and panics: it means the caller broke the
// pointer-down/up discipline.
func (b *Brush) EndStroke() []Shape {
	if b.state == nil {
		panic("pix: EndStroke called while not drawing")
	}

	shapes := b.shapes()

	Logger().Debug("stroke end", "points", len(b.stroke))

	b.state = nil
	b.stroke = b.stroke[:0]

	return shapes
}

// shapes expands the accumulated stroke through the active modifiers
// and returns one paint rectangle per expanded point.
func (b *Brush) shapes() []Shape {
	if b.state == nil {
		return nil
	}

	var points []Point
	for _, p := range b.stroke {
		points = b.expand(points, p, b.state.extent)
	}

	shapes := make([]Shape, len(points))
	for i, p := range points {
		shapes[i] = b.paint(p)
	}
	return shapes
}

// expand appends every point that must be painted for one stroke point,
// given the active modifiers. Each modifier step operates on the list
// accumulated by the previous steps, so combinations compose: mirror
// plus multi replicates both the original and the mirrored point across
// frames.
func (b *Brush) expand(dst []Point, p Point, extent ViewExtent) []Point {
	start := len(dst)
	dst = append(dst, p)
	fw, fh := extent.FrameWidth, extent.FrameHeight

	if b.IsSet(ModifierMirrorX) {
		for _, q := range dst[start:len(dst):len(dst)] {
			frame := q.X / fw
			dst = append(dst, Point{
				X: (frame+1)*fw - (q.X - frame*fw) - 1,
				Y: q.Y,
			})
		}
	}

	if b.IsSet(ModifierMirrorY) {
		for _, q := range dst[start:len(dst):len(dst)] {
			dst = append(dst, Point{X: q.X, Y: fh - q.Y - 1})
		}
	}

	if b.IsSet(ModifierMulti) {
		for _, q := range dst[start:len(dst):len(dst)] {
			frame := q.X / fw
			for i := 1; i < extent.FrameCount-frame; i++ {
				dst = append(dst, Point{X: q.X + i*fw, Y: q.Y})
			}
		}
	}

	return dst
}

// paint returns the shape painted for one expanded stroke point: a
// size x size square anchored so that size/2 pixels extend in the
// negative direction from the point.
func (b *Brush) paint(p Point) Shape {
	offset := b.size / 2
	color := b.color
	if b.mode == ModeErase {
		color = Transparent
	}
	return Shape{
		Rect:  Rect{X: p.X - offset, Y: p.Y - offset, W: b.size, H: b.size},
		Color: color,
	}
}

// Line rasterizes an inclusive 8-connected line from p0 to p1 using
// Bresenham's algorithm. Consecutive points differ by at most 1 in each
// axis.
func Line(p0, p1 Point) []Point {
	return appendLine(nil, p0, p1)
}

// appendLine appends the Bresenham line from p0 to p1 to dst. The error
// tie-break (err > -dx advances x, err < dy advances y) is load-bearing:
// changing it changes stroke shapes pixel for pixel.
func appendLine(dst []Point, p0, p1 Point) []Point {
	dx := abs(p1.X - p0.X)
	dy := abs(p1.Y - p0.Y)
	sx := 1
	if p0.X >= p1.X {
		sx = -1
	}
	sy := 1
	if p0.Y >= p1.Y {
		sy = -1
	}

	err1 := dx / 2
	if dx <= dy {
		err1 = -dy / 2
	}

	for {
		dst = append(dst, p0)

		if p0 == p1 {
			break
		}
		err2 := err1

		if err2 > -dx {
			err1 -= dy
			p0.X += sx
		}
		if err2 < dy {
			err1 += dx
			p0.Y += sy
		}
	}
	return dst
}

// snapLineEnd projects the start-to-point distance along the nearest
// multiple of the snap angle (vertical is angle zero) and rounds each
// axis to the nearest pixel.
func snapLineEnd(start, point Point, degrees int) Point {
	snapRad := float64(degrees) * math.Pi / 180

	cx, cy := float64(point.X), float64(point.Y)
	sx, sy := float64(start.X), float64(start.Y)

	dist := math.Hypot(cx-sx, cy-sy)
	angle := math.Atan2(cx-sx, sy-cy) - math.Pi/2
	angle = math.Round(angle/snapRad) * snapRad

	return Point{
		X: int(math.Round(sx + math.Cos(angle)*dist)),
		Y: int(math.Round(sy + math.Sin(angle)*dist)),
	}
}

// pixelPerfect removes single-pixel L-corners from a stroke. A single
// left-to-right pass: when the window (prev, curr, next) forms an
// L-corner, curr is dropped and the window skips past next. Only one
// level of corner is removed per pass, so back-to-back corners can
// survive a call; strokes with no corners come back unchanged.
func pixelPerfect(stroke []Point) []Point {
	if len(stroke) < 3 {
		return stroke
	}

	filtered := make([]Point, 0, len(stroke))
	filtered = append(filtered, stroke[0])

	for i := 1; i+1 < len(stroke); i++ {
		prev, curr, next := stroke[i-1], stroke[i], stroke[i+1]

		if (prev.Y == curr.Y && next.X == curr.X) || (prev.X == curr.X && next.Y == curr.Y) {
			filtered = append(filtered, next)
			i++ // skip the pair just consumed
		} else {
			filtered = append(filtered, curr)
		}
	}

	if last := stroke[len(stroke)-1]; filtered[len(filtered)-1] != last {
		filtered = append(filtered, last)
	}
	return filtered
}

// dedup removes consecutive duplicate points in place.
func dedup(points []Point) []Point {
	if len(points) < 2 {
		return points
	}
	out := points[:1]
	for _, p := range points[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
