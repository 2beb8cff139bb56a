package command

import (
	"fmt"

	"github.com/gogpu/richtext"
	"github.com/gogpu/richtext/resource"
)

// Rect is an axis-aligned rectangle in layout coordinates.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Union returns the smallest rectangle containing r and o.
// An empty rectangle does not contribute.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.X+r.Width, o.X+o.Width), max(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Stream is an append-only buffer of fixed-size command records produced by
// a layout pass and read back by renderers and hit-testers.
//
// Records live in one contiguous byte slice. An offsets table gives O(1)
// access by record index. The cursor is the index of the record the next
// read returns; every write appends at the end and leaves the cursor at
// Count.
//
// Stream is not safe for concurrent use.
type Stream struct {
	buf     []byte
	offsets []uint32
	pos     int

	registry *resource.Registry
	strict   bool
	nesting  nestingState

	// acquired is the pointer acquisition depth. Writes panic while it is
	// non-zero.
	acquired int
	// generation changes whenever buf moves or is discarded.
	generation uint64

	// blockOffset is the Offset of the last BlockInfo written.
	blockOffset float32

	bounds         Rect
	actualWidth    float32
	actualHeight   float32
	lengthInSource int
	lengthInShaped int
	lengthInGlyphs int
	lineCount      int
	multipleStyles bool

	cursor     int
	hasCursor  bool
	activeLink uint16
	hasLink    bool
}

// NewStream creates an empty stream.
func NewStream(opts ...Option) *Stream {
	config := defaultStreamConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.registry == nil {
		config.registry = resource.NewRegistry()
	}
	return &Stream{
		buf:      make([]byte, 0, config.capacity),
		offsets:  make([]uint32, 0, config.capacity/8),
		registry: config.registry,
		strict:   config.strict,
	}
}

// Registry returns the registry the stream's indices refer to.
func (s *Stream) Registry() *resource.Registry {
	return s.registry
}

// Count returns the number of records.
func (s *Stream) Count() int {
	return len(s.offsets)
}

// Len returns the size of the encoded records in bytes.
func (s *Stream) Len() int {
	return len(s.buf)
}

// Position returns the cursor as a record index.
func (s *Stream) Position() int {
	return s.pos
}

// PositionInBytes returns the cursor as a byte offset into the buffer.
func (s *Stream) PositionInBytes() int {
	if s.pos >= len(s.offsets) {
		return len(s.buf)
	}
	return int(s.offsets[s.pos])
}

// Bounds returns the union of all line rectangles.
func (s *Stream) Bounds() Rect { return s.bounds }

// ActualWidth returns the width of the widest line.
func (s *Stream) ActualWidth() float32 { return s.actualWidth }

// ActualHeight returns the sum of all line heights.
func (s *Stream) ActualHeight() float32 { return s.actualHeight }

// LengthInSource returns the total source length of all lines.
func (s *Stream) LengthInSource() int { return s.lengthInSource }

// LengthInShaped returns the total number of characters placed by Text records.
func (s *Stream) LengthInShaped() int { return s.lengthInShaped }

// LengthInGlyphs returns the total glyph length of all lines.
func (s *Stream) LengthInGlyphs() int { return s.lengthInGlyphs }

// LineCount returns the number of LineInfo records written.
func (s *Stream) LineCount() int { return s.lineCount }

// HasMultipleFontStyles reports whether any style, font, link or toggle
// record has been written.
func (s *Stream) HasMultipleFontStyles() bool { return s.multipleStyles }

// CursorPosition returns the caret position set by the consumer.
func (s *Stream) CursorPosition() (int, bool) {
	return s.cursor, s.hasCursor
}

// SetCursorPosition sets the caret position in source characters.
func (s *Stream) SetCursorPosition(pos int) error {
	if pos < 0 || pos > s.lengthInSource {
		return &richtext.RangeError{Op: "SetCursorPosition", Index: pos, Len: s.lengthInSource + 1}
	}
	s.cursor, s.hasCursor = pos, true
	return nil
}

// ClearCursorPosition removes the caret.
func (s *Stream) ClearCursorPosition() {
	s.cursor, s.hasCursor = 0, false
}

// ActiveLinkIndex returns the registry index of the highlighted link.
func (s *Stream) ActiveLinkIndex() (uint16, bool) {
	return s.activeLink, s.hasLink
}

// ActivateLink highlights the link at index of the registry.
func (s *Stream) ActivateLink(index uint16) error {
	if _, err := s.registry.Link(index); err != nil {
		return fmt.Errorf("command: ActivateLink: %w", err)
	}
	s.activeLink, s.hasLink = index, true
	return nil
}

// DeactivateLink removes the link highlight.
func (s *Stream) DeactivateLink() {
	s.activeLink, s.hasLink = 0, false
}

// Reset discards all records and layout metadata but keeps the buffer and
// the registry. Views taken before Reset become stale.
func (s *Stream) Reset() {
	s.checkWritable("Reset")
	s.buf = s.buf[:0]
	s.offsets = s.offsets[:0]
	s.pos = 0
	s.generation++
	s.nesting = nestingState{}
	s.blockOffset = 0
	s.bounds = Rect{}
	s.actualWidth, s.actualHeight = 0, 0
	s.lengthInSource, s.lengthInShaped, s.lengthInGlyphs = 0, 0, 0
	s.lineCount = 0
	s.multipleStyles = false
	s.ClearCursorPosition()
	s.DeactivateLink()
}

// Clear is Reset that also clears the registry.
func (s *Stream) Clear() {
	s.Reset()
	s.registry.Clear()
}

// String implements fmt.Stringer.
func (s *Stream) String() string {
	return fmt.Sprintf("Stream(records=%d, bytes=%d, lines=%d)", len(s.offsets), len(s.buf), s.lineCount)
}
