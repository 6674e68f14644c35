package pix

// BrushOption configures a Brush during creation.
//
// Example:
//
//	// Default: size 1, normal mode
//	b := pix.NewBrush()
//
//	// A 3-pixel pixel-perfect pencil
//	b := pix.NewBrush(pix.WithBrushSize(3), pix.WithBrushMode(pix.ModePencil))
type BrushOption func(*Brush)

// WithBrushSize sets the initial brush size.
func WithBrushSize(n int) BrushOption {
	return func(b *Brush) {
		b.SetSize(n)
	}
}

// WithBrushMode sets the initial brush mode.
func WithBrushMode(m Mode) BrushOption {
	return func(b *Brush) {
		b.mode = m
	}
}

// HistoryOption configures a History during creation.
type HistoryOption func(*History)

// WithCompressor sets the snapshot codec. Any lossless byte compressor
// satisfies the contract; the default is [LZ4].
//
// Example:
//
//	h := pix.NewHistory(pixels, extent, pix.WithCompressor(myCodec))
func WithCompressor(c Compressor) HistoryOption {
	return func(h *History) {
		h.comp = c
	}
}
