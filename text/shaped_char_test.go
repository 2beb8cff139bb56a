package text

import (
	"math"
	"testing"
	"unsafe"
)

func TestShapedCharSize(t *testing.T) {
	if got := unsafe.Sizeof(ShapedChar{}); got != 16 {
		t.Errorf("unsafe.Sizeof(ShapedChar{}) = %d, want 16", got)
	}
}

func TestSpecialCharacters(t *testing.T) {
	tests := []struct {
		name string
		c    ShapedChar
		want rune
	}{
		{"tab", Tab, '\t'},
		{"newline", Newline, '\n'},
		{"custom", NewSpecialChar(0x2028, 7), 0x2028},
		{"ordinary", ShapedChar{GlyphIndex: 42, Advance: 160}, 0},
		{"zero", ShapedChar{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.SpecialCharacter(); got != tt.want {
				t.Errorf("SpecialCharacter() = %q, want %q", got, tt.want)
			}
			if got := tt.c.IsSpecial(); got != (tt.want != 0) {
				t.Errorf("IsSpecial() = %v, want %v", got, tt.want != 0)
			}
		})
	}
}

func TestSpecialCharacterNeedsAllMarkers(t *testing.T) {
	c := ShapedChar{GlyphIndex: '\t', OffsetX: math.MaxInt16, OffsetY: math.MaxInt16, Advance: 10}
	if c.IsSpecial() {
		t.Error("IsSpecial() = true with only two marker fields")
	}
}

func TestSpecialCharKeepsSourceIndex(t *testing.T) {
	c := NewSpecialChar('\n', 12)
	if c.SourceIndex != 12 {
		t.Errorf("SourceIndex = %d, want 12", c.SourceIndex)
	}
	if c.AdvancePixels() != 0 {
		t.Errorf("AdvancePixels() = %v, want 0", c.AdvancePixels())
	}
}

func TestToSubpixel(t *testing.T) {
	tests := []struct {
		px   float64
		want int16
	}{
		{0, 0},
		{1, 16},
		{0.5, 8},
		{-2.25, -36},
		{1e6, math.MaxInt16 - 1},
		{-1e6, math.MinInt16},
	}
	for _, tt := range tests {
		if got := ToSubpixel(tt.px); got != tt.want {
			t.Errorf("ToSubpixel(%v) = %d, want %d", tt.px, got, tt.want)
		}
	}
}

func TestSubpixelRoundTrip(t *testing.T) {
	for _, px := range []float64{0, 1, 7.5, -3.0625, 100.25} {
		if got := FromSubpixel(ToSubpixel(px)); got != px {
			t.Errorf("FromSubpixel(ToSubpixel(%v)) = %v", px, got)
		}
	}
}

func TestClampedAdvanceIsNotSpecial(t *testing.T) {
	big := ToSubpixel(1e9)
	c := ShapedChar{OffsetX: big, OffsetY: big, Advance: big}
	if c.IsSpecial() {
		t.Error("clamped glyph reported as special")
	}
}
