package text

import "math"

// SubpixelScale is the number of ShapedChar offset/advance units per pixel.
const SubpixelScale = 16

// specialMarker is the offset/advance value shared by all three fields of a
// special character record.
const specialMarker = math.MaxInt16

// ShapedChar is the placement of one glyph produced by shaping.
// It is 16 bytes and is always passed by value.
//
// OffsetX, OffsetY and Advance are expressed in 1/SubpixelScale pixels.
// A record whose three placement fields all equal math.MaxInt16 is a special
// character (tab or newline); its rune is stored in GlyphIndex.
type ShapedChar struct {
	// GlyphIndex is the glyph identifier within the face that shaped it.
	GlyphIndex int32

	// SourceIndex is the index of the source character that produced this
	// glyph. Several glyphs may share one source index.
	SourceIndex int32

	OffsetX int16
	OffsetY int16
	Advance int16
}

// Tab and Newline are the special-character records for '\t' and '\n'.
var (
	Tab     = NewSpecialChar('\t', 0)
	Newline = NewSpecialChar('\n', 0)
)

// NewSpecialChar returns the special-character record for r.
func NewSpecialChar(r rune, sourceIndex int32) ShapedChar {
	return ShapedChar{
		GlyphIndex:  r,
		SourceIndex: sourceIndex,
		OffsetX:     specialMarker,
		OffsetY:     specialMarker,
		Advance:     specialMarker,
	}
}

// IsSpecial reports whether c is a special-character record.
func (c ShapedChar) IsSpecial() bool {
	return c.OffsetX == specialMarker && c.OffsetY == specialMarker && c.Advance == specialMarker
}

// SpecialCharacter returns the rune of a special-character record, or 0 for
// an ordinary glyph.
func (c ShapedChar) SpecialCharacter() rune {
	if !c.IsSpecial() {
		return 0
	}
	return c.GlyphIndex
}

// AdvancePixels returns the advance in pixels. Special characters advance by 0.
func (c ShapedChar) AdvancePixels() float64 {
	if c.IsSpecial() {
		return 0
	}
	return FromSubpixel(c.Advance)
}

// ToSubpixel converts a pixel distance to ShapedChar units.
// The result is clamped so that an ordinary glyph never carries the
// special-character marker.
func ToSubpixel(px float64) int16 {
	v := math.Round(px * SubpixelScale)
	switch {
	case v >= specialMarker:
		return specialMarker - 1
	case v < math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}

// FromSubpixel converts ShapedChar units to pixels.
func FromSubpixel(v int16) float64 {
	return float64(v) / SubpixelScale
}
