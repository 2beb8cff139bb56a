package resource

import (
	"image"
	"image/color"

	"github.com/gogpu/richtext/text"
)

// Style is a named bundle of text attributes pushed with PushStyle.
type Style struct {
	Name     string
	Color    color.RGBA
	FontName string
	// Size is the font size in pixels; 0 keeps the current size.
	Size float64

	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
}

// Icon is an inline image placed in the text flow.
type Icon struct {
	Name  string
	Image image.Image

	// Width and Height are the laid-out size in pixels. Advance is the
	// horizontal space the icon takes on its line.
	Width, Height float64
	Advance       float64
}

// Size returns the laid-out size, falling back to the image bounds when
// Width or Height is zero.
func (i *Icon) Size() (w, h float64) {
	w, h = i.Width, i.Height
	if i.Image != nil {
		b := i.Image.Bounds()
		if w == 0 {
			w = float64(b.Dx())
		}
		if h == 0 {
			h = float64(b.Dy())
		}
	}
	return w, h
}

// Link is the target of a PushLink command.
type Link struct {
	Href  string
	Title string
}

// GlyphShader recolors glyphs drawn between PushGlyphShader and
// PopGlyphShader. index counts glyphs from the push.
type GlyphShader interface {
	Shade(glyph text.ShapedChar, index int, base color.RGBA) color.RGBA
}

// GlyphShaderFunc adapts a function to the GlyphShader interface.
type GlyphShaderFunc func(glyph text.ShapedChar, index int, base color.RGBA) color.RGBA

// Shade calls f.
func (f GlyphShaderFunc) Shade(glyph text.ShapedChar, index int, base color.RGBA) color.RGBA {
	return f(glyph, index, base)
}
