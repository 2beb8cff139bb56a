// Package text holds the shaped-character model of richtext and the shaping
// collaborators that produce it.
//
// # Shaped characters
//
// A ShapedChar is the 16-byte placement of one glyph: glyph index, the
// source index that produced it, sub-pixel offsets and an advance. Tabs and
// newlines are stored as special-character records (see Tab, Newline and
// ShapedChar.SpecialCharacter).
//
// ShapedString is immutable and owns its characters. ShapedStringBuilder is
// its growable counterpart. Both implement Source, and Segment provides
// substring views over any Source without copying.
//
// # Shaping
//
// The Shaper interface is the boundary to the shaping engine:
//   - BuiltinShaper: one glyph per rune via golang.org/x/image/font
//   - GoTextShaper: HarfBuzz shaping via go-text/typesetting
//   - CachedShaper: memoizes another shaper
//
// Fonts are loaded with NewFontSource and sized with FontSource.Face.
//
//	source, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//	    return err
//	}
//	face := source.Face(14)
//	s, err := text.ShapeString("Hello", face)
package text
