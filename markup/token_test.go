package markup

import (
	"errors"
	"testing"

	"github.com/gogpu/richtext"
)

func TestTokenTypeString(t *testing.T) {
	tests := []struct {
		typ  TokenType
		want string
	}{
		{TokenText, "Text"},
		{TokenNewline, "Newline"},
		{TokenPushLink, "PushLink"},
		{TokenCustom, "Custom"},
		{numTokenTypes, "TokenType(16)"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("TokenType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestTokenTypeIsBreakable(t *testing.T) {
	for typ := TokenType(0); typ < numTokenTypes; typ++ {
		want := typ == TokenWhitespace || typ == TokenTab || typ == TokenNewline
		if got := typ.IsBreakable(); got != want {
			t.Errorf("%v.IsBreakable() = %v, want %v", typ, got, want)
		}
	}
}

func TestNewSegment(t *testing.T) {
	src := "hello world"
	seg, err := NewSegment(src, 6, 5)
	if err != nil {
		t.Fatalf("NewSegment: %v", err)
	}
	if seg.String() != "world" || seg.Len() != 5 || seg.Offset() != 6 || seg.Source() != src {
		t.Errorf("segment = %q len %d off %d", seg.String(), seg.Len(), seg.Offset())
	}

	bad := []struct{ off, n int }{{-1, 1}, {12, 0}, {6, 6}, {0, -1}}
	for _, b := range bad {
		if _, err := NewSegment(src, b.off, b.n); !errors.Is(err, richtext.ErrOutOfRange) {
			t.Errorf("NewSegment(%d, %d) error = %v, want ErrOutOfRange", b.off, b.n, err)
		}
	}

	empty, err := NewSegment(src, 11, 0)
	if err != nil || !empty.IsEmpty() || empty.String() != "" {
		t.Errorf("empty segment at end = %q, %v", empty.String(), err)
	}
}

func TestSegmentOf(t *testing.T) {
	seg := SegmentOf("abc")
	if seg.String() != "abc" || seg.Offset() != 0 || seg.Len() != 3 {
		t.Errorf("SegmentOf = %q off %d len %d", seg.String(), seg.Offset(), seg.Len())
	}
	var zero Segment
	if !zero.IsEmpty() || zero.String() != "" {
		t.Error("zero Segment should be empty")
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Type: TokenText, Text: SegmentOf("hi"), SourceOffset: 3, SourceLength: 2}
	if got, want := tok.String(), `Text("hi" @3+2)`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if tok.SourceEnd() != 5 {
		t.Errorf("SourceEnd() = %d, want 5", tok.SourceEnd())
	}
}
