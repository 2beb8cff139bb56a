package command

import (
	"fmt"

	"github.com/gogpu/richtext"
)

// scope identifies one push/pop stack.
type scope uint8

const (
	scopeStyle scope = iota
	scopeFont
	scopeLink
	scopeColor
	scopeGlyphShader
	numScopes
)

var scopeNames = [numScopes]string{"style", "font", "link", "color", "glyph shader"}

func scopeOf(t Type) scope {
	switch t {
	case TypePushStyle, TypePopStyle:
		return scopeStyle
	case TypePushFont, TypePopFont:
		return scopeFont
	case TypePushLink, TypePopLink:
		return scopeLink
	case TypePushColor, TypePopColor:
		return scopeColor
	case TypePushGlyphShader, TypePopGlyphShader:
		return scopeGlyphShader
	}
	panic(fmt.Sprintf("command: %v has no scope", t))
}

// nestingState tracks the open depth of every scope while writing.
type nestingState struct {
	depth [numScopes]int
}

func (s *Stream) pushScope(t Type) {
	s.nesting.depth[scopeOf(t)]++
}

// popScope records a pop. Unmatched pops panic in strict mode and are
// logged otherwise; the record is still written.
func (s *Stream) popScope(t Type) {
	sc := scopeOf(t)
	if s.nesting.depth[sc] > 0 {
		s.nesting.depth[sc]--
		return
	}
	if s.strict {
		panic(fmt.Errorf("command: %s at record %d without matching push: %w", t, len(s.offsets), richtext.ErrMalformed))
	}
	richtext.Logger().Warn("command: unbalanced pop", "type", t.String(), "record", len(s.offsets))
}

// OpenScopes returns the number of pushes of each kind that have not been
// popped yet, keyed by the push type.
func (s *Stream) OpenScopes() map[Type]int {
	pushes := [numScopes]Type{TypePushStyle, TypePushFont, TypePushLink, TypePushColor, TypePushGlyphShader}
	open := make(map[Type]int)
	for sc, d := range s.nesting.depth {
		if d > 0 {
			open[pushes[sc]] = d
		}
	}
	return open
}

// CheckNesting verifies that every pop has a matching push and that every
// push is popped by the end of the stream.
func (s *Stream) CheckNesting() error {
	defer s.borrow()()
	var depth [numScopes]int
	for i := range s.offsets {
		t := s.typeAt(i)
		switch {
		case t.IsPush():
			depth[scopeOf(t)]++
		case t.IsPop():
			sc := scopeOf(t)
			if depth[sc] == 0 {
				return fmt.Errorf("command: %s at record %d without matching push: %w", t, i, richtext.ErrMalformed)
			}
			depth[sc]--
		}
	}
	for sc, d := range depth {
		if d > 0 {
			return fmt.Errorf("command: %d unclosed %s scope(s): %w", d, scopeNames[sc], richtext.ErrMalformed)
		}
	}
	return nil
}
