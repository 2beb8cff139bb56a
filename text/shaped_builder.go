package text

import (
	"fmt"

	"github.com/go-text/typesetting/language"

	"github.com/gogpu/richtext"
)

// ShapedStringBuilder is a growable buffer of shaped characters.
//
// The builder keeps a logical length no greater than its capacity. When an
// append needs more room the capacity becomes max(needed, capacity*3/2).
//
// ShapedStringBuilder is not safe for concurrent use.
type ShapedStringBuilder struct {
	// buf holds capacity elements; only buf[:length] is meaningful.
	buf    []ShapedChar
	length int
	props  Props
}

// NewShapedStringBuilder creates an empty builder with the given capacity.
func NewShapedStringBuilder(capacity int) *ShapedStringBuilder {
	if capacity < 0 {
		capacity = 0
	}
	return &ShapedStringBuilder{buf: make([]ShapedChar, capacity)}
}

// Len returns the logical length. A nil builder is empty.
func (b *ShapedStringBuilder) Len() int {
	if b == nil {
		return 0
	}
	return b.length
}

// Cap returns the capacity.
func (b *ShapedStringBuilder) Cap() int {
	return len(b.buf)
}

// SetLength changes the logical length. Shrinking truncates without
// reallocating; growing appends zeroed characters.
func (b *ShapedStringBuilder) SetLength(n int) error {
	if n < 0 {
		return fmt.Errorf("text: SetLength(%d): negative length: %w", n, richtext.ErrInvalidArgument)
	}
	if n > b.length {
		b.grow(n)
		clear(b.buf[b.length:n])
	}
	b.length = n
	return nil
}

// SetCapacity reallocates the buffer to exactly n elements.
// It fails if n is below the current length.
func (b *ShapedStringBuilder) SetCapacity(n int) error {
	if n < b.length {
		return fmt.Errorf("text: SetCapacity(%d) below length %d: %w", n, b.length, richtext.ErrInvalidArgument)
	}
	if n == len(b.buf) {
		return nil
	}
	buf := make([]ShapedChar, n)
	copy(buf, b.buf[:b.length])
	b.buf = buf
	return nil
}

// grow makes room for at least needed elements.
func (b *ShapedStringBuilder) grow(needed int) {
	if needed <= len(b.buf) {
		return
	}
	newCap := max(needed, len(b.buf)*3/2)
	buf := make([]ShapedChar, newCap)
	copy(buf, b.buf[:b.length])
	b.buf = buf
}

// At returns the character at index i.
// It panics with a *richtext.RangeError if i >= Len.
func (b *ShapedStringBuilder) At(i int) ShapedChar {
	if err := richtext.CheckIndex("ShapedStringBuilder.At", i, b.length); err != nil {
		panic(err)
	}
	return b.buf[i]
}

// Set replaces the character at index i.
// It panics with a *richtext.RangeError if i >= Len.
func (b *ShapedStringBuilder) Set(i int, c ShapedChar) {
	if err := richtext.CheckIndex("ShapedStringBuilder.Set", i, b.length); err != nil {
		panic(err)
	}
	b.buf[i] = c
}

// Append appends one character.
func (b *ShapedStringBuilder) Append(c ShapedChar) {
	b.grow(b.length + 1)
	b.buf[b.length] = c
	b.length++
}

// AppendRepeat appends c count times. Non-positive counts are a no-op.
func (b *ShapedStringBuilder) AppendRepeat(c ShapedChar, count int) {
	if count <= 0 {
		return
	}
	b.grow(b.length + count)
	for i := b.length; i < b.length+count; i++ {
		b.buf[i] = c
	}
	b.length += count
}

// AppendSource appends every character of src.
func (b *ShapedStringBuilder) AppendSource(src Source) {
	n := src.Len()
	if n == 0 {
		return
	}
	b.grow(b.length + n)
	if s, ok := src.(*ShapedString); ok {
		copy(b.buf[b.length:], s.chars)
	} else {
		for i := 0; i < n; i++ {
			b.buf[b.length+i] = src.At(i)
		}
	}
	b.length += n
}

// AppendText shapes text with face using the current Shaper and appends
// the result. Source indices of the new characters are offset by
// sourceStart. The first shaped run also sets the builder's properties.
func (b *ShapedStringBuilder) AppendText(text string, sourceStart int, face Face) error {
	if face == nil {
		return fmt.Errorf("text: AppendText: %w", ErrNilFace)
	}
	chars := GetShaper().Shape(text, face)
	b.grow(b.length + len(chars))
	for i, c := range chars {
		c.SourceIndex += int32(sourceStart) //nolint:gosec // source offsets fit in int32
		b.buf[b.length+i] = c
	}
	b.length += len(chars)
	if b.props.Face == nil {
		b.props = propsFor(text, face)
	}
	return nil
}

// CopyTo copies count characters starting at sourceIndex into
// dst[destinationIndex:].
func (b *ShapedStringBuilder) CopyTo(sourceIndex int, dst []ShapedChar, destinationIndex, count int) error {
	if sourceIndex < 0 || count < 0 || sourceIndex+count > b.length {
		return fmt.Errorf("text: CopyTo: range [%d:%d] exceeds length %d: %w",
			sourceIndex, sourceIndex+count, b.length, richtext.ErrInvalidArgument)
	}
	if destinationIndex < 0 || destinationIndex+count > len(dst) {
		return fmt.Errorf("text: CopyTo: destination range [%d:%d] exceeds %d: %w",
			destinationIndex, destinationIndex+count, len(dst), richtext.ErrInvalidArgument)
	}
	copy(dst[destinationIndex:], b.buf[sourceIndex:sourceIndex+count])
	return nil
}

// AppendTo appends the builder's characters to dst and returns the extended slice.
func (b *ShapedStringBuilder) AppendTo(dst []ShapedChar) []ShapedChar {
	return append(dst, b.buf[:b.length]...)
}

// ToShapedString copies the characters into a new immutable ShapedString.
func (b *ShapedStringBuilder) ToShapedString() *ShapedString {
	return NewShapedString(b.buf[:b.length], b.props)
}

// Segment returns a view of [start, start+length). The view observes later
// mutations of the builder.
func (b *ShapedStringBuilder) Segment(start, length int) (Segment, error) {
	return NewSegment(b, start, length)
}

// Props returns the builder's shaping properties.
func (b *ShapedStringBuilder) Props() Props {
	return b.props
}

// SetProps replaces the builder's shaping properties.
func (b *ShapedStringBuilder) SetProps(p Props) {
	b.props = p
}

// Reset sets the length to zero and keeps the buffer.
func (b *ShapedStringBuilder) Reset() {
	b.length = 0
	b.props = Props{}
}

// Equal reports whether b and other contain equal characters.
func (b *ShapedStringBuilder) Equal(other Source) bool {
	return Equal(b, other)
}

// Hash returns the hash of the characters.
func (b *ShapedStringBuilder) Hash() uint32 {
	return Hash(b)
}

// propsFor derives the shaping properties of text shaped with face.
func propsFor(text string, face Face) Props {
	dir := face.Direction()
	if dir == DirectionLTR {
		dir = DetectDirection(text)
	}
	return Props{
		Face:      face,
		Language:  face.Language(),
		Script:    detectScript([]rune(text)),
		Direction: dir,
	}
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
