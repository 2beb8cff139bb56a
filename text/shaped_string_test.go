package text

import (
	"errors"
	"testing"

	"github.com/gogpu/richtext"
)

func TestNewShapedStringCopies(t *testing.T) {
	chars := makeChars(3)
	s := NewShapedString(chars, Props{})
	chars[0].GlyphIndex = 500
	if s.At(0).GlyphIndex == 500 {
		t.Error("NewShapedString aliases its input")
	}
	out := s.Chars()
	out[1].GlyphIndex = 500
	if s.At(1).GlyphIndex == 500 {
		t.Error("Chars() aliases the string")
	}
}

func TestNewShapedStringRange(t *testing.T) {
	chars := makeChars(6)
	s, err := NewShapedStringRange(chars, 2, 3, Props{})
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 3 || s.At(0) != chars[2] {
		t.Errorf("NewShapedStringRange(2, 3) = len %d first %+v", s.Len(), s.At(0))
	}
	if _, err := NewShapedStringRange(chars, 5, 2, Props{}); !errors.Is(err, richtext.ErrOutOfRange) {
		t.Errorf("NewShapedStringRange(5, 2) error = %v, want ErrOutOfRange", err)
	}
}

func TestShapedStringSubstring(t *testing.T) {
	s := NewShapedString(makeChars(10), Props{})

	tests := []struct {
		name          string
		start, length int
		wantErr       bool
	}{
		{"prefix", 0, 4, false},
		{"suffix", 6, 4, false},
		{"empty", 10, 0, false},
		{"overflow", 8, 3, true},
		{"negative", -1, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := s.Substring(tt.start, tt.length)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Substring(%d, %d) error = %v, wantErr %v", tt.start, tt.length, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			seg, _ := s.Segment(tt.start, tt.length)
			if !sub.Equal(seg) {
				t.Error("Substring() differs from the equivalent segment")
			}
		})
	}
}

func TestShapedStringSubstringOfSubstring(t *testing.T) {
	s := NewShapedString(makeChars(10), Props{})
	a, _ := s.Substring(2, 6)
	b, _ := a.Substring(1, 3)
	direct, _ := s.Substring(3, 3)
	if !b.Equal(direct) || b.Hash() != direct.Hash() {
		t.Error("nested Substring differs from direct Substring")
	}
}

func TestShapedStringCopy(t *testing.T) {
	s := NewShapedString(makeChars(4), Props{Direction: DirectionRTL})
	c := s.Copy()
	if c == s {
		t.Fatal("Copy() returned the same pointer")
	}
	if !c.Equal(s) || c.Hash() != s.Hash() {
		t.Error("Copy() is not equal to the original")
	}
	if c.Props() != s.Props() {
		t.Error("Copy() lost props")
	}
}

func TestShapedStringAtPanics(t *testing.T) {
	s := NewShapedString(makeChars(2), Props{})
	defer func() {
		if recover() == nil {
			t.Error("At(2) did not panic")
		}
	}()
	s.At(2)
}

func TestShapedStringAdvance(t *testing.T) {
	chars := []ShapedChar{
		{Advance: ToSubpixel(5)},
		Tab,
		{Advance: ToSubpixel(2.5)},
	}
	s := NewShapedString(chars, Props{})
	if got := s.Advance(); got != 7.5 {
		t.Errorf("Advance() = %v, want 7.5", got)
	}
}
