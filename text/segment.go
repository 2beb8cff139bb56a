package text

import (
	"fmt"

	"github.com/gogpu/richtext"
)

// Source is a read-only sequence of shaped characters. ShapedString,
// ShapedStringBuilder and Segment implement it.
type Source interface {
	// Len returns the number of characters.
	Len() int
	// At returns the character at index i. It panics if i is out of range.
	At(i int) ShapedChar
}

// propsSource is implemented by sources that know how they were shaped.
type propsSource interface {
	Props() Props
}

// hashMultiplier is used for every container kind so that equal sequences
// hash equally regardless of their backing store.
const hashMultiplier = 31

// Equal reports whether a and b have the same length and element-wise equal
// characters.
func Equal(a, b Source) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	n := a.Len()
	if n != b.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

// Hash returns a polynomial hash over the characters of s.
func Hash(s Source) uint32 {
	if s == nil {
		return 0
	}
	var h uint32 = 1
	for i, n := 0, s.Len(); i < n; i++ {
		h = h*hashMultiplier + hashChar(s.At(i))
	}
	return h
}

func hashChar(c ShapedChar) uint32 {
	h := uint32(c.GlyphIndex)
	h = h*hashMultiplier + uint32(c.SourceIndex)
	h = h*hashMultiplier + uint32(uint16(c.OffsetX))
	h = h*hashMultiplier + uint32(uint16(c.OffsetY))
	h = h*hashMultiplier + uint32(uint16(c.Advance))
	return h
}

// Segment is a view over a range of a Source. It never copies the
// underlying characters.
type Segment struct {
	src    Source
	start  int
	length int
}

// NewSegment returns a view of src covering [start, start+length).
func NewSegment(src Source, start, length int) (Segment, error) {
	if src == nil {
		return Segment{}, fmt.Errorf("text: NewSegment: nil source: %w", richtext.ErrInvalidArgument)
	}
	if err := richtext.CheckRange("NewSegment", start, length, src.Len()); err != nil {
		return Segment{}, err
	}
	return Segment{src: src, start: start, length: length}, nil
}

// Len returns the number of characters in the segment.
func (s Segment) Len() int {
	return s.length
}

// Start returns the offset of the segment within its source.
func (s Segment) Start() int {
	return s.start
}

// Source returns the source the segment views.
func (s Segment) Source() Source {
	return s.src
}

// At returns the character at index i of the segment.
// It panics with a *richtext.RangeError if i is out of range.
func (s Segment) At(i int) ShapedChar {
	if err := richtext.CheckIndex("Segment.At", i, s.length); err != nil {
		panic(err)
	}
	return s.src.At(s.start + i)
}

// Substring returns a narrower view sharing the same source.
func (s Segment) Substring(start, length int) (Segment, error) {
	if err := richtext.CheckRange("Segment.Substring", start, length, s.length); err != nil {
		return Segment{}, err
	}
	return Segment{src: s.src, start: s.start + start, length: length}, nil
}

// Props returns the shaping properties of the underlying source, if any.
func (s Segment) Props() Props {
	if ps, ok := s.src.(propsSource); ok {
		return ps.Props()
	}
	return Props{}
}

// ToShapedString copies the segment into a new ShapedString.
func (s Segment) ToShapedString() *ShapedString {
	chars := make([]ShapedChar, s.length)
	for i := range chars {
		chars[i] = s.src.At(s.start + i)
	}
	return &ShapedString{chars: chars, props: s.Props()}
}

// Equal reports whether s and other contain equal characters.
func (s Segment) Equal(other Source) bool {
	return Equal(s, other)
}

// Hash returns the hash of the segment's characters.
func (s Segment) Hash() uint32 {
	return Hash(s)
}

// String implements fmt.Stringer.
func (s Segment) String() string {
	return fmt.Sprintf("Segment[%d:%d]", s.start, s.start+s.length)
}
