package text

import (
	"fmt"

	"github.com/go-text/typesetting/language"

	"github.com/gogpu/richtext"
)

// Props describes how a run of characters was shaped.
type Props struct {
	// Face is the face the run was shaped with. It may be nil for runs that
	// were assembled by hand.
	Face Face

	// Language is the BCP 47 language tag used for shaping.
	Language language.Language

	// Script is the Unicode script of the run.
	Script language.Script

	// Direction is the writing direction of the run.
	Direction Direction
}

// ShapedString is an immutable sequence of shaped characters together with
// the properties used to shape them.
//
// The characters are copied in at construction; Substring and Copy always
// allocate a new buffer, so a ShapedString never aliases another buffer.
type ShapedString struct {
	chars []ShapedChar
	props Props
}

// NewShapedString copies chars into a new ShapedString.
func NewShapedString(chars []ShapedChar, props Props) *ShapedString {
	owned := make([]ShapedChar, len(chars))
	copy(owned, chars)
	return &ShapedString{chars: owned, props: props}
}

// NewShapedStringRange copies chars[start:start+count] into a new ShapedString.
func NewShapedStringRange(chars []ShapedChar, start, count int, props Props) (*ShapedString, error) {
	if err := richtext.CheckRange("NewShapedStringRange", start, count, len(chars)); err != nil {
		return nil, err
	}
	return NewShapedString(chars[start:start+count], props), nil
}

// Len returns the number of characters. A nil *ShapedString is empty.
func (s *ShapedString) Len() int {
	if s == nil {
		return 0
	}
	return len(s.chars)
}

// At returns the character at index i.
// It panics with a *richtext.RangeError if i is out of range.
func (s *ShapedString) At(i int) ShapedChar {
	if err := richtext.CheckIndex("ShapedString.At", i, len(s.chars)); err != nil {
		panic(err)
	}
	return s.chars[i]
}

// Props returns the shaping properties.
func (s *ShapedString) Props() Props {
	return s.props
}

// Chars returns a copy of the characters.
func (s *ShapedString) Chars() []ShapedChar {
	return s.AppendTo(nil)
}

// AppendTo appends the characters to dst and returns the extended slice.
func (s *ShapedString) AppendTo(dst []ShapedChar) []ShapedChar {
	return append(dst, s.chars...)
}

// Advance returns the sum of the advances in pixels.
func (s *ShapedString) Advance() float64 {
	var total float64
	for _, c := range s.chars {
		total += c.AdvancePixels()
	}
	return total
}

// Substring returns a new ShapedString holding a copy of [start, start+length).
func (s *ShapedString) Substring(start, length int) (*ShapedString, error) {
	if err := richtext.CheckRange("ShapedString.Substring", start, length, len(s.chars)); err != nil {
		return nil, err
	}
	return NewShapedString(s.chars[start:start+length], s.props), nil
}

// Copy returns a new ShapedString with its own buffer.
func (s *ShapedString) Copy() *ShapedString {
	return NewShapedString(s.chars, s.props)
}

// Segment returns a view of [start, start+length) that shares this string.
func (s *ShapedString) Segment(start, length int) (Segment, error) {
	return NewSegment(s, start, length)
}

// Equal reports whether s and other contain equal characters.
func (s *ShapedString) Equal(other Source) bool {
	return Equal(s, other)
}

// Hash returns the hash of the characters.
func (s *ShapedString) Hash() uint32 {
	return Hash(s)
}

// String implements fmt.Stringer.
func (s *ShapedString) String() string {
	return fmt.Sprintf("ShapedString(len=%d, dir=%v)", len(s.chars), s.props.Direction)
}
