package text

import (
	"errors"
	"testing"

	"github.com/gogpu/richtext"
)

func makeChars(n int) []ShapedChar {
	chars := make([]ShapedChar, n)
	for i := range chars {
		chars[i] = ShapedChar{GlyphIndex: int32(i + 1), SourceIndex: int32(i), Advance: int16(16 * (i + 1))}
	}
	return chars
}

func TestNewSegment(t *testing.T) {
	s := NewShapedString(makeChars(5), Props{})
	tests := []struct {
		name          string
		start, length int
		wantErr       bool
	}{
		{"whole", 0, 5, false},
		{"empty at end", 5, 0, false},
		{"middle", 1, 3, false},
		{"negative start", -1, 2, true},
		{"past end", 3, 3, true},
		{"negative length", 0, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg, err := NewSegment(s, tt.start, tt.length)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewSegment(%d, %d) error = %v, wantErr %v", tt.start, tt.length, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, richtext.ErrOutOfRange) {
					t.Errorf("error %v does not wrap ErrOutOfRange", err)
				}
				return
			}
			if seg.Len() != tt.length {
				t.Errorf("Len() = %d, want %d", seg.Len(), tt.length)
			}
		})
	}
}

func TestNewSegmentNilSource(t *testing.T) {
	if _, err := NewSegment(nil, 0, 0); !errors.Is(err, richtext.ErrInvalidArgument) {
		t.Errorf("NewSegment(nil) error = %v, want ErrInvalidArgument", err)
	}
}

func TestSegmentAt(t *testing.T) {
	s := NewShapedString(makeChars(6), Props{})
	seg, err := NewSegment(s, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < seg.Len(); i++ {
		if got, want := seg.At(i), s.At(i+2); got != want {
			t.Errorf("At(%d) = %+v, want %+v", i, got, want)
		}
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("At(3) did not panic")
		}
		var re *richtext.RangeError
		if err, ok := r.(error); !ok || !errors.As(err, &re) {
			t.Errorf("panic value %v is not a *RangeError", r)
		}
	}()
	seg.At(3)
}

func TestSegmentSubstring(t *testing.T) {
	s := NewShapedString(makeChars(8), Props{})
	seg, _ := NewSegment(s, 2, 5)
	sub, err := seg.Substring(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if sub.Start() != 3 || sub.Len() != 2 {
		t.Errorf("Substring(1, 2) = [%d:+%d], want [3:+2]", sub.Start(), sub.Len())
	}
	if sub.Source() != Source(s) {
		t.Error("Substring does not share the source")
	}
	if _, err := seg.Substring(4, 2); err == nil {
		t.Error("Substring(4, 2) on length 5: expected error")
	}
}

func TestSegmentObservesBuilder(t *testing.T) {
	b := NewShapedStringBuilder(4)
	b.AppendRepeat(ShapedChar{GlyphIndex: 1}, 3)
	seg, err := b.Segment(0, 3)
	if err != nil {
		t.Fatal(err)
	}
	b.Set(1, ShapedChar{GlyphIndex: 9})
	if got := seg.At(1).GlyphIndex; got != 9 {
		t.Errorf("segment At(1).GlyphIndex = %d, want 9", got)
	}
}

func TestEqualAndHashAcrossKinds(t *testing.T) {
	chars := makeChars(4)
	s := NewShapedString(chars, Props{})
	b := NewShapedStringBuilder(0)
	for _, c := range chars {
		b.Append(c)
	}
	wide := NewShapedString(append([]ShapedChar{{GlyphIndex: 99}}, chars...), Props{})
	seg, _ := NewSegment(wide, 1, 4)

	sources := []Source{s, b, seg}
	for i, a := range sources {
		for j, other := range sources {
			if !Equal(a, other) {
				t.Errorf("Equal(sources[%d], sources[%d]) = false", i, j)
			}
			if Hash(a) != Hash(other) {
				t.Errorf("Hash(sources[%d]) = %d, Hash(sources[%d]) = %d", i, Hash(a), j, Hash(other))
			}
		}
	}
}

func TestEqualDiffers(t *testing.T) {
	a := NewShapedString(makeChars(3), Props{})
	shorter := NewShapedString(makeChars(2), Props{})
	changed := makeChars(3)
	changed[2].OffsetY = 4
	c := NewShapedString(changed, Props{})

	if Equal(a, shorter) {
		t.Error("Equal() = true for different lengths")
	}
	if Equal(a, c) {
		t.Error("Equal() = true for different offsets")
	}
	if Equal(a, nil) {
		t.Error("Equal(a, nil) = true")
	}
	if !Equal(nil, nil) {
		t.Error("Equal(nil, nil) = false")
	}
}

func TestNilPointersAreEmpty(t *testing.T) {
	var s *ShapedString
	var b *ShapedStringBuilder
	empty := NewShapedString(nil, Props{})

	if !Equal(s, empty) || !Equal(empty, b) {
		t.Error("Equal() = false for a nil pointer and an empty string")
	}
	if Equal(s, NewShapedString(makeChars(1), Props{})) {
		t.Error("Equal() = true for a nil pointer and a non-empty string")
	}
	if got := Hash(s); got != 1 {
		t.Errorf("Hash(nil *ShapedString) = %d, want 1", got)
	}
}

func TestHashEmpty(t *testing.T) {
	if got := Hash(NewShapedString(nil, Props{})); got != 1 {
		t.Errorf("Hash(empty) = %d, want 1", got)
	}
}

func TestSegmentToShapedString(t *testing.T) {
	props := Props{Direction: DirectionRTL}
	s := NewShapedString(makeChars(5), props)
	seg, _ := s.Segment(1, 3)
	copied := seg.ToShapedString()
	if !copied.Equal(seg) {
		t.Error("ToShapedString() differs from segment")
	}
	if copied.Props().Direction != DirectionRTL {
		t.Errorf("Props().Direction = %v, want RTL", copied.Props().Direction)
	}
}
