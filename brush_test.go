package pix

import (
	"reflect"
	"testing"
)

func chebyshev(p, q Point) int {
	return max(abs(p.X-q.X), abs(p.Y-q.Y))
}

// TestLine tests Bresenham endpoints and 8-connectivity for a range of
// segments.
func TestLine(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 Point
	}{
		{"single point", Pt(3, 3), Pt(3, 3)},
		{"horizontal", Pt(0, 0), Pt(7, 0)},
		{"horizontal reverse", Pt(7, 0), Pt(0, 0)},
		{"vertical", Pt(2, -3), Pt(2, 9)},
		{"diagonal", Pt(0, 0), Pt(5, 5)},
		{"shallow", Pt(0, 0), Pt(10, 3)},
		{"steep", Pt(0, 0), Pt(3, 10)},
		{"negative quadrant", Pt(-2, -2), Pt(-9, -6)},
		{"mixed signs", Pt(4, -1), Pt(-3, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Line(tt.p0, tt.p1)
			if len(got) == 0 {
				t.Fatal("Line() returned no points")
			}
			if got[0] != tt.p0 {
				t.Errorf("Line() starts at %v, want %v", got[0], tt.p0)
			}
			if got[len(got)-1] != tt.p1 {
				t.Errorf("Line() ends at %v, want %v", got[len(got)-1], tt.p1)
			}
			for i := 1; i < len(got); i++ {
				if d := chebyshev(got[i-1], got[i]); d != 1 {
					t.Errorf("Line() step %d: %v -> %v has Chebyshev distance %d, want 1",
						i, got[i-1], got[i], d)
				}
			}
		})
	}
}

// TestLineShape pins the exact rasterization of a shallow segment; the
// error tie-break must not drift.
func TestLineShape(t *testing.T) {
	got := Line(Pt(0, 0), Pt(4, 2))
	want := []Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Line((0,0),(4,2)) = %v, want %v", got, want)
	}
}

func TestPixelPerfect(t *testing.T) {
	tests := []struct {
		name   string
		stroke []Point
		want   []Point
	}{
		{
			"straight run unchanged",
			[]Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
			[]Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		},
		{
			"diagonal unchanged",
			[]Point{{0, 0}, {1, 1}, {2, 2}},
			[]Point{{0, 0}, {1, 1}, {2, 2}},
		},
		{
			"two-pixel L",
			[]Point{{0, 0}, {1, 0}, {1, 1}},
			[]Point{{0, 0}, {1, 1}},
		},
		{
			"vertical-then-horizontal L",
			[]Point{{0, 0}, {0, 1}, {1, 1}},
			[]Point{{0, 0}, {1, 1}},
		},
		{
			"corner mid-stroke",
			[]Point{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
			[]Point{{0, 0}, {1, 1}, {1, 2}},
		},
		{
			"short strokes unchanged",
			[]Point{{0, 0}, {1, 0}},
			[]Point{{0, 0}, {1, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pixelPerfect(tt.stroke)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("pixelPerfect(%v) = %v, want %v", tt.stroke, got, tt.want)
			}
		})
	}
}

// TestPixelPerfectIdempotent verifies that filtering an already
// filtered stroke leaves it unchanged.
func TestPixelPerfectIdempotent(t *testing.T) {
	stroke := []Point{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 2}}
	once := pixelPerfect(stroke)
	twice := pixelPerfect(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second pass changed the stroke: %v -> %v", once, twice)
	}
}

func TestExpand(t *testing.T) {
	extent := Extent(10, 10, 1)

	tests := []struct {
		name      string
		modifiers Modifier
		extent    ViewExtent
		point     Point
		want      []Point
	}{
		{
			"no modifiers",
			0, extent, Pt(2, 3),
			[]Point{{2, 3}},
		},
		{
			"mirror x",
			ModifierMirrorX, extent, Pt(2, 3),
			[]Point{{2, 3}, {7, 3}},
		},
		{
			"mirror y",
			ModifierMirrorY, extent, Pt(2, 3),
			[]Point{{2, 3}, {2, 6}},
		},
		{
			"mirror x and y",
			ModifierMirrorX | ModifierMirrorY, extent, Pt(2, 3),
			[]Point{{2, 3}, {7, 3}, {2, 6}, {7, 6}},
		},
		{
			"mirror x in second frame",
			ModifierMirrorX, Extent(10, 10, 3), Pt(12, 3),
			[]Point{{12, 3}, {17, 3}},
		},
		{
			"multi replicates across later frames",
			ModifierMulti, Extent(4, 4, 3), Pt(1, 2),
			[]Point{{1, 2}, {5, 2}, {9, 2}},
		},
		{
			"mirror x plus multi",
			ModifierMirrorX | ModifierMulti, Extent(4, 4, 2), Pt(1, 2),
			[]Point{{1, 2}, {2, 2}, {5, 2}, {6, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBrush()
			b.Toggle(tt.modifiers)
			got := b.expand(nil, tt.point, tt.extent)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expand(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

// TestStrokeHorizontalRun draws a 4-pixel horizontal stroke and checks
// the painted shapes form a contiguous run.
func TestStrokeHorizontalRun(t *testing.T) {
	b := NewBrush()
	extent := Extent(4, 4, 1)

	b.BeginStroke(Pt(0, 0), Red, extent)
	shapes := b.ExtendStroke(Pt(3, 0))

	if len(shapes) != 4 {
		t.Fatalf("ExtendStroke() returned %d shapes, want 4", len(shapes))
	}
	for i, s := range shapes {
		want := Shape{Rect: RectXYWH(i, 0, 1, 1), Color: Red}
		if s != want {
			t.Errorf("shape %d = %+v, want %+v", i, s, want)
		}
	}

	final := b.EndStroke()
	if len(final) != 4 {
		t.Errorf("EndStroke() returned %d shapes, want 4", len(final))
	}
	if b.IsDrawing() {
		t.Error("IsDrawing() = true after EndStroke")
	}
}

func TestBrushSizeAnchor(t *testing.T) {
	tests := []struct {
		size int
		want Rect
	}{
		{1, RectXYWH(5, 5, 1, 1)},
		{2, RectXYWH(4, 4, 2, 2)},
		{3, RectXYWH(4, 4, 3, 3)},
		{4, RectXYWH(3, 3, 4, 4)},
	}

	for _, tt := range tests {
		b := NewBrush(WithBrushSize(tt.size))
		shapes := b.BeginStroke(Pt(5, 5), White, Extent(16, 16, 1))
		if len(shapes) != 1 {
			t.Fatalf("size %d: got %d shapes, want 1", tt.size, len(shapes))
		}
		if shapes[0].Rect != tt.want {
			t.Errorf("size %d: rect = %+v, want %+v", tt.size, shapes[0].Rect, tt.want)
		}
		b.EndStroke()
	}
}

func TestExtendStrokeNotDrawing(t *testing.T) {
	b := NewBrush()
	if got := b.ExtendStroke(Pt(1, 1)); got != nil {
		t.Errorf("ExtendStroke() while not drawing = %v, want nil", got)
	}
}

func TestEndStrokeNotDrawingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("EndStroke() while not drawing did not panic")
		}
	}()
	NewBrush().EndStroke()
}

// TestLineModeRubberBand checks that line mode recomputes the stroke
// from the original start on every extension.
func TestLineModeRubberBand(t *testing.T) {
	b := NewBrush(WithBrushMode(ModeLine))
	extent := Extent(16, 16, 1)

	b.BeginStroke(Pt(0, 0), Red, extent)
	b.ExtendStroke(Pt(9, 9))

	// Band back to a short horizontal line; the diagonal must be gone.
	shapes := b.ExtendStroke(Pt(3, 0))
	want := []Shape{
		{Rect: RectXYWH(0, 0, 1, 1), Color: Red},
		{Rect: RectXYWH(1, 0, 1, 1), Color: Red},
		{Rect: RectXYWH(2, 0, 1, 1), Color: Red},
		{Rect: RectXYWH(3, 0, 1, 1), Color: Red},
	}
	if !reflect.DeepEqual(shapes, want) {
		t.Errorf("line mode shapes = %v, want %v", shapes, want)
	}
	b.EndStroke()
}

// TestLineModeSnap checks angle snapping: with a 90 degree snap a
// near-horizontal drag collapses onto the x axis.
func TestLineModeSnap(t *testing.T) {
	b := NewBrush(WithBrushMode(ModeLine))
	b.SetSnapAngle(90)
	extent := Extent(32, 32, 1)

	b.BeginStroke(Pt(0, 0), Red, extent)
	shapes := b.ExtendStroke(Pt(10, 1))
	b.EndStroke()

	for _, s := range shapes {
		if s.Rect.Y != 0 {
			t.Fatalf("snapped line left the x axis: %+v", s.Rect)
		}
	}
	if len(shapes) != 11 {
		t.Errorf("snapped line has %d points, want 11", len(shapes))
	}
}

func TestPencilModeFiltersCorners(t *testing.T) {
	b := NewBrush(WithBrushMode(ModePencil))
	extent := Extent(8, 8, 1)

	b.BeginStroke(Pt(0, 0), Black, extent)
	b.ExtendStroke(Pt(1, 0))
	shapes := b.ExtendStroke(Pt(1, 1))
	b.EndStroke()

	want := []Shape{
		{Rect: RectXYWH(0, 0, 1, 1), Color: Black},
		{Rect: RectXYWH(1, 1, 1, 1), Color: Black},
	}
	if !reflect.DeepEqual(shapes, want) {
		t.Errorf("pencil shapes = %v, want %v", shapes, want)
	}
}

func TestEraseModePaintsTransparent(t *testing.T) {
	b := NewBrush(WithBrushMode(ModeErase))
	shapes := b.BeginStroke(Pt(2, 2), Red, Extent(8, 8, 1))
	b.EndStroke()

	if len(shapes) != 1 {
		t.Fatalf("got %d shapes, want 1", len(shapes))
	}
	if shapes[0].Color != Transparent {
		t.Errorf("erase shape color = %v, want transparent", shapes[0].Color)
	}
}

// TestExtentCapturedAtStrokeStart checks that a stroke keeps using the
// extent it began with.
func TestExtentCapturedAtStrokeStart(t *testing.T) {
	b := NewBrush()
	b.Toggle(ModifierMirrorY)

	b.BeginStroke(Pt(1, 1), Red, Extent(10, 10, 1))
	shapes := b.ExtendStroke(Pt(1, 2))
	b.EndStroke()

	// Mirrored against frame height 10, not whatever the canvas may
	// have been resized to since.
	found := false
	for _, s := range shapes {
		if s.Rect.Y == 8 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a mirror head at y=8, got %v", shapes)
	}
}

func TestSetModeToggleBack(t *testing.T) {
	b := NewBrush()

	b.SetMode(ModeErase)
	if b.Mode() != ModeErase {
		t.Fatalf("Mode() = %v, want erase", b.Mode())
	}
	// Setting the active mode again reverts to the previous one.
	b.SetMode(ModeErase)
	if b.Mode() != ModeNormal {
		t.Errorf("Mode() after toggle-back = %v, want brush", b.Mode())
	}
}

func TestModifierToggle(t *testing.T) {
	b := NewBrush()

	b.Toggle(ModifierMulti)
	if !b.IsSet(ModifierMulti) {
		t.Error("IsSet(Multi) = false after Toggle")
	}
	b.Toggle(ModifierMulti)
	if b.IsSet(ModifierMulti) {
		t.Error("IsSet(Multi) = true after second Toggle")
	}

	b.Toggle(ModifierMirrorX | ModifierMirrorY)
	b.ResetModifiers()
	if b.Modifiers() != 0 {
		t.Errorf("Modifiers() = %v after reset, want none", b.Modifiers())
	}
}

func TestModeStrings(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeNormal, "brush"},
		{ModeErase, "erase"},
		{ModePencil, "pencil"},
		{ModeLine, "line"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestBrushString(t *testing.T) {
	tests := []struct {
		mode Mode
		snap int
		want string
	}{
		{ModeNormal, 0, "brush"},
		{ModeNormal, 45, "brush"},
		{ModeLine, 0, "line"},
		{ModeLine, 15, "15 degree snap line"},
		{ModeLine, 90, "90 degree snap line"},
	}
	for _, tt := range tests {
		b := NewBrush(WithBrushMode(tt.mode))
		b.SetSnapAngle(tt.snap)
		if got := b.String(); got != tt.want {
			t.Errorf("%v snap %d: String() = %q, want %q", tt.mode, tt.snap, got, tt.want)
		}
	}
}

func TestModifierStrings(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{0, "none"},
		{ModifierMulti, "multi"},
		{ModifierMirrorX, "mirror/x"},
		{ModifierMirrorY, "mirror/y"},
		{ModifierMulti | ModifierMirrorX, "multi+mirror/x"},
	}
	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%b).String() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestDedup(t *testing.T) {
	got := dedup([]Point{{0, 0}, {0, 0}, {1, 0}, {1, 0}, {1, 0}, {2, 0}})
	want := []Point{{0, 0}, {1, 0}, {2, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("dedup() = %v, want %v", got, want)
	}
}
