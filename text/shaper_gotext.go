package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/richtext"
)

// GoTextShaper provides HarfBuzz-level shaping using go-text/typesetting:
// ligatures, kerning, contextual alternates, right-to-left and complex
// scripts.
//
//	shaper := text.NewGoTextShaper()
//	text.SetShaper(shaper)
//	defer text.SetShaper(nil)
//
// GoTextShaper is safe for concurrent use. Parsed font.Font values are
// cached per FontSource; HarfbuzzShaper instances are pooled because they
// are not safe for concurrent use.
type GoTextShaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewGoTextShaper creates a GoTextShaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Shape implements the Shaper interface. Tabs and newlines split the text
// into separately shaped pieces and are emitted as special characters.
func (s *GoTextShaper) Shape(text string, face Face) []ShapedChar {
	if text == "" || face == nil || face.Source() == nil {
		return nil
	}
	goTextFont, err := s.fontFor(face.Source())
	if err != nil {
		richtext.Logger().Warn("text: go-text parse failed, using builtin shaper",
			"font", face.Source().Name(), "err", err)
		return (&BuiltinShaper{}).Shape(text, face)
	}

	runes := []rune(text)
	result := make([]ShapedChar, 0, len(runes))
	start := 0
	for i, r := range runes {
		c, ok := specialFor(r, i)
		if !ok {
			continue
		}
		result = s.shapeRun(result, runes, start, i, goTextFont, face)
		result = append(result, c)
		start = i + 1
	}
	return s.shapeRun(result, runes, start, len(runes), goTextFont, face)
}

// shapeRun shapes runes[start:end] and appends the glyphs to dst.
func (s *GoTextShaper) shapeRun(dst []ShapedChar, runes []rune, start, end int, f *font.Font, face Face) []ShapedChar {
	if start >= end {
		return dst
	}
	dir := face.Direction()
	if dir == DirectionLTR {
		dir = DetectDirection(string(runes[start:end]))
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  start,
		RunEnd:    end,
		Direction: dir.toDI(),
		Face:      font.NewFace(f),
		Size:      floatToFixed(face.Size()),
		Script:    detectScript(runes[start:end]),
		Language:  face.Language(),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	for _, g := range output.Glyphs {
		dst = append(dst, ShapedChar{
			GlyphIndex:  int32(g.GlyphID),
			SourceIndex: int32(g.TextIndex()), //nolint:gosec // rune indices fit in int32
			OffsetX:     ToSubpixel(fixedToFloat(g.XOffset)),
			OffsetY:     ToSubpixel(fixedToFloat(g.YOffset)),
			Advance:     ToSubpixel(fixedToFloat(g.Advance)),
		})
	}
	return dst
}

// fontFor returns the cached go-text font for source, parsing it on first use.
func (s *GoTextShaper) fontFor(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}
	face, err := font.ParseTTF(bytes.NewReader(source.Data()))
	if err != nil {
		return nil, err
	}
	s.fontCache[source] = face.Font
	return face.Font, nil
}

// RemoveSource drops the cached parsed font for source.
func (s *GoTextShaper) RemoveSource(source *FontSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fontCache, source)
}
