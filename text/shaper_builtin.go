package text

// BuiltinShaper shapes text using the font's glyph metrics through
// golang.org/x/image/font. It places one glyph per rune, left to right,
// without ligatures, kerning or reordering.
//
// For complex scripts use GoTextShaper.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(text string, face Face) []ShapedChar {
	if text == "" || face == nil || face.Source() == nil {
		return nil
	}
	parsed := face.Source().Parsed()
	if parsed == nil {
		return nil
	}

	size := face.Size()
	result := make([]ShapedChar, 0, len(text))
	index := 0
	for _, r := range text {
		if c, ok := specialFor(r, index); ok {
			result = append(result, c)
			index++
			continue
		}
		gid := parsed.GlyphIndex(r)
		result = append(result, ShapedChar{
			GlyphIndex:  int32(gid),
			SourceIndex: int32(index), //nolint:gosec // rune indices fit in int32
			Advance:     ToSubpixel(parsed.GlyphAdvance(gid, size)),
		})
		index++
	}
	return result
}
