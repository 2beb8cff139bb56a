package text

import (
	"github.com/go-text/typesetting/language"
)

// Face is a font face at a specific size. It is the font resource that
// command streams intern and that shapers consume.
//
// Face is safe for concurrent use.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Advance returns the total advance width of the text in pixels
	// without any shaping.
	Advance(text string) float64

	// HasGlyph reports whether the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// Direction returns the writing direction forced on this face.
	Direction() Direction

	// Language returns the language tag used when shaping with this face.
	Language() language.Language

	// Hinting returns the hinting mode of the face.
	Hinting() Hinting

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the size of this face in pixels per em.
	Size() float64

	// private prevents external implementation
	private()
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig
}

func (f *sourceFace) Metrics() Metrics {
	return f.source.Parsed().Metrics(f.size)
}

func (f *sourceFace) Advance(text string) float64 {
	parsed := f.source.Parsed()
	total := 0.0
	for _, r := range text {
		total += parsed.GlyphAdvance(parsed.GlyphIndex(r), f.size)
	}
	return total
}

func (f *sourceFace) HasGlyph(r rune) bool {
	return f.source.Parsed().GlyphIndex(r) != 0
}

func (f *sourceFace) Direction() Direction {
	return f.config.direction
}

func (f *sourceFace) Language() language.Language {
	return language.NewLanguage(f.config.language)
}

func (f *sourceFace) Hinting() Hinting {
	return f.config.hinting
}

func (f *sourceFace) Source() *FontSource {
	return f.source
}

func (f *sourceFace) Size() float64 {
	return f.size
}

func (f *sourceFace) private() {}
