package pix

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Pixmap represents a rectangular pixel buffer with byte-exact
// non-premultiplied RGBA cells. It is the canvas buffer the brush and
// flood fill shapes are composited into.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// NewPixmapExtent creates a new transparent pixmap covering the extent.
func NewPixmapExtent(e ViewExtent) *Pixmap {
	return NewPixmap(e.Width(), e.Height())
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format). The slice aliases the
// pixmap's storage.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetData replaces the pixel data. The input must hold exactly
// width*height*4 bytes; it is copied, not aliased.
func (p *Pixmap) SetData(data []uint8) error {
	if len(data) != len(p.data) {
		return fmt.Errorf("pix: pixel data is %d bytes, want %d", len(data), len(p.data))
	}
	copy(p.data, data)
	return nil
}

// Set sets the color of a single pixel. Out-of-bounds writes are
// silently dropped.
func (p *Pixmap) Set(x, y int, c RGBA8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// Get returns the color of a single pixel and whether the coordinate is
// inside the buffer.
func (p *Pixmap) Get(x, y int) (RGBA8, bool) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent, false
	}
	i := (y*p.width + x) * 4
	return RGBA8{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}, true
}

// Pixel returns the color of a single pixel, or Transparent when the
// coordinate is outside the buffer.
func (p *Pixmap) Pixel(x, y int) RGBA8 {
	c, _ := p.Get(x, y)
	return c
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA8) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	q := NewPixmap(p.width, p.height)
	copy(q.data, p.data)
	return q
}

// FillRect fills a rectangle with a color, clipped to the buffer.
func (p *Pixmap) FillRect(r Rect, c RGBA8) {
	r = r.Intersect(Rect{W: p.width, H: p.height})
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			i := (y*p.width + x) * 4
			p.data[i+0] = c.R
			p.data[i+1] = c.G
			p.data[i+2] = c.B
			p.data[i+3] = c.A
		}
	}
}

// Apply composites shapes into the pixmap. This is how the rectangles
// returned by the brush engine and the flood fill become pixels.
func (p *Pixmap) Apply(shapes []Shape) {
	for _, s := range shapes {
		p.FillRect(s.Rect, s.Color)
	}
}

// Resize rescales the pixmap into a new extent using nearest-neighbour
// sampling, preserving hard pixel edges. The receiver is unchanged;
// callers typically snapshot the returned buffer.
func (p *Pixmap) Resize(e ViewExtent) *Pixmap {
	q := NewPixmapExtent(e)
	dst := image.NewNRGBA(image.Rect(0, 0, q.width, q.height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), p, p.Bounds(), xdraw.Src, nil)
	copy(q.data, dst.Pix)
	return q
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			pm.Set(x, y, FromColor(c))
		}
	}

	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	img := p.ToImage()
	return png.Encode(f, img)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.Pixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
