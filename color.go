package pix

import (
	"fmt"
	"image/color"
)

// RGBA8 is a non-premultiplied 8-bit-per-channel color cell. Pixel
// comparisons in the editor core are byte-exact, so RGBA8 is a plain
// comparable struct rather than a float color.
type RGBA8 struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Transparent = RGBA8{}
	Black       = RGBA8{A: 0xff}
	White       = RGBA8{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Red         = RGBA8{R: 0xff, A: 0xff}
	Green       = RGBA8{G: 0xff, A: 0xff}
	Blue        = RGBA8{B: 0xff, A: 0xff}
	Grey        = RGBA8{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

// Color converts RGBA8 to the standard color.Color interface.
func (c RGBA8) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard color.Color to RGBA8.
func FromColor(c color.Color) RGBA8 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA8{R: n.R, G: n.G, B: n.B, A: n.A}
}

// String returns the color as a "#rrggbbaa" hex string.
func (c RGBA8) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseHex parses a "#rrggbb" or "#rrggbbaa" hex string. The leading
// '#' is optional. An omitted alpha component defaults to opaque.
func ParseHex(s string) (RGBA8, error) {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var c RGBA8
	switch len(s) {
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return RGBA8{}, fmt.Errorf("pix: invalid hex color %q: %w", s, err)
		}
		c.A = 0xff
	case 8:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A); err != nil {
			return RGBA8{}, fmt.Errorf("pix: invalid hex color %q: %w", s, err)
		}
	default:
		return RGBA8{}, fmt.Errorf("pix: invalid hex color %q: want rrggbb or rrggbbaa", s)
	}
	return c, nil
}
