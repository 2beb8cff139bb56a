package text

import (
	"fmt"
	"os"
	"sync"
)

// FontSource is a loaded font file. One FontSource creates any number of
// Face values at different sizes and is meant to be shared.
//
// FontSource is safe for concurrent use and must not be copied after
// creation.
type FontSource struct {
	// addr points to the FontSource itself and detects copies.
	addr *FontSource

	mu     sync.RWMutex
	data   []byte
	parsed ParsedFont
	name   string
}

// NewFontSource creates a FontSource from TTF or OTF data.
// The data slice is copied and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	parsed, err := getParser(config.parserName).Parse(data)
	if err != nil {
		return nil, err
	}
	s := &FontSource{
		data:   append([]byte(nil), data...),
		parsed: parsed,
		name:   fontName(parsed),
	}
	s.addr = s
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- font file path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Face creates a Face of the given size in pixels per em.
// It panics if s is nil.
func (s *FontSource) Face(size float64, opts ...FaceOption) Face {
	if s == nil {
		panic("text: FontSource is nil")
	}
	s.copyCheck()
	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &sourceFace{source: s, size: size, config: config}
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parsed returns the parsed font.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed
}

// Data returns the raw font bytes. Callers must not modify them.
func (s *FontSource) Data() []byte {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Close releases the font data. Faces created from s become invalid.
func (s *FontSource) Close() error {
	s.copyCheck()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.parsed = nil
	return nil
}

func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// fontName prefers the family name, then the full name.
func fontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	if name := parsed.FullName(); name != "" {
		return name
	}
	return "Unknown Font"
}
