package pix

import (
	"fmt"
	"slices"
)

// Snapshot is one compressed, immutable copy of the full canvas pixel
// buffer at a point in edit history.
type Snapshot struct {
	id     int
	extent ViewExtent
	data   []byte
	comp   Compressor
}

func newSnapshot(id int, pixels []uint8, extent ViewExtent, comp Compressor) *Snapshot {
	return &Snapshot{
		id:     id,
		extent: extent,
		data:   comp.Compress(pixels),
		comp:   comp,
	}
}

// ID returns the snapshot's position in its history.
func (s *Snapshot) ID() int {
	return s.id
}

// String returns the snapshot id as shown in a status line, "#0" being
// the initial state.
func (s *Snapshot) String() string {
	return fmt.Sprintf("#%d", s.id)
}

// Extent returns the canvas layout the snapshot was taken with.
func (s *Snapshot) Extent() ViewExtent {
	return s.extent
}

// Size returns the compressed size of the snapshot in bytes.
func (s *Snapshot) Size() int {
	return len(s.data)
}

// Pixels decompresses and returns the snapshot's pixel buffer. A
// snapshot that was stored but cannot be restored means the history
// invariant is broken, so decompression failure panics rather than
// silently producing wrong pixels.
func (s *Snapshot) Pixels() []uint8 {
	pixels, err := s.comp.Decompress(s.data)
	if err != nil {
		panic(fmt.Sprintf("pix: snapshot corrupted: %v", err))
	}
	return pixels
}

// History is a per-canvas, cursor-addressed list of compressed pixel
// snapshots supporting undo and redo with redo-branch truncation. The
// snapshot at the cursor is what the canvas currently shows; History
// keeps its decompressed pixels cached for fast reads.
//
// A History is exclusively owned by one canvas. Push, Undo and Redo
// must not be called while a stroke is being drawn on that canvas.
type History struct {
	snapshots []*Snapshot
	cursor    int
	comp      Compressor
	pixels    []uint8
}

// NewHistory creates a history holding the initial canvas state.
func NewHistory(pixels []uint8, extent ViewExtent, opts ...HistoryOption) *History {
	h := &History{comp: LZ4{}}
	for _, opt := range opts {
		opt(h)
	}
	h.snapshots = []*Snapshot{newSnapshot(0, pixels, extent, h.comp)}
	h.pixels = slices.Clone(pixels)
	return h
}

// Len returns the number of snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}

// Cursor returns the index of the current snapshot.
func (h *History) Cursor() int {
	return h.cursor
}

// Current returns the snapshot at the cursor.
func (h *History) Current() *Snapshot {
	return h.snapshots[h.cursor]
}

// Pixels returns the decompressed pixel cache of the current snapshot.
// The slice aliases the cache; callers copy it into their canvas
// buffer.
func (h *History) Pixels() []uint8 {
	return h.pixels
}

// MarkEdited records that the canvas has just been mutated. If the
// cursor is not at the tip (the user undid some edits and then made a
// fresh one), the abandoned redo branch is discarded. Must be called
// before every Push so that Push only ever appends at the end.
func (h *History) MarkEdited() {
	if h.cursor != len(h.snapshots)-1 {
		h.snapshots = h.snapshots[:h.cursor+1]
		h.cursor = len(h.snapshots) - 1
	}
}

// Push compresses pixels into a new snapshot, appends it, and moves the
// cursor to it, returning the new cursor. Calling Push with the cursor
// away from the tip is a contract violation and panics: the caller must
// call MarkEdited first.
func (h *History) Push(pixels []uint8, extent ViewExtent) int {
	// Guaranteed as long as MarkEdited is called before every Push.
	if h.cursor != len(h.snapshots)-1 {
		panic(fmt.Sprintf("pix: Push with cursor %d not at tip %d; MarkEdited was skipped",
			h.cursor, len(h.snapshots)-1))
	}

	h.snapshots = append(h.snapshots, newSnapshot(len(h.snapshots), pixels, extent, h.comp))
	h.cursor++
	h.pixels = slices.Clone(pixels)

	Logger().Debug("snapshot", "cursor", h.cursor, "size", h.Current().Size())

	return h.cursor
}

// Undo moves the cursor one snapshot back and returns it, refreshing
// the pixel cache. At the oldest snapshot it returns (nil, false).
func (h *History) Undo() (*Snapshot, bool) {
	if h.cursor == 0 {
		return nil, false
	}
	h.cursor--
	s := h.snapshots[h.cursor]
	h.pixels = s.Pixels()

	Logger().Debug("undo", "cursor", h.cursor, "len", len(h.snapshots))

	return s, true
}

// Redo moves the cursor one snapshot forward and returns it, refreshing
// the pixel cache. At the newest snapshot it returns (nil, false).
func (h *History) Redo() (*Snapshot, bool) {
	if h.cursor == len(h.snapshots)-1 {
		return nil, false
	}
	h.cursor++
	s := h.snapshots[h.cursor]
	h.pixels = s.Pixels()

	Logger().Debug("redo", "cursor", h.cursor, "len", len(h.snapshots))

	return s, true
}
