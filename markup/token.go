package markup

import (
	"fmt"

	"github.com/gogpu/richtext"
)

// TokenType classifies a token.
type TokenType uint8

const (
	// TokenText is a run of visible text.
	TokenText TokenType = iota
	// TokenWhitespace is a run of breaking spaces.
	TokenWhitespace
	// TokenTab is a single tab.
	TokenTab
	// TokenNewline is a hard line break.
	TokenNewline

	// Markup tokens, produced by markup parsers. Push tokens carry their
	// argument in Text.

	// TokenToggleBold flips bold.
	TokenToggleBold
	// TokenToggleItalic flips italic.
	TokenToggleItalic
	// TokenPushStyle applies a named style.
	TokenPushStyle
	// TokenPopStyle ends a style.
	TokenPopStyle
	// TokenPushFont selects a named font.
	TokenPushFont
	// TokenPopFont ends a font.
	TokenPopFont
	// TokenPushLink starts a link to the target in Text.
	TokenPushLink
	// TokenPopLink ends a link.
	TokenPopLink
	// TokenPushColor sets the color given in Text.
	TokenPushColor
	// TokenPopColor restores the previous color.
	TokenPopColor
	// TokenIcon places a named icon.
	TokenIcon
	// TokenCustom is an application-defined marker.
	TokenCustom

	numTokenTypes
)

var tokenTypeNames = [numTokenTypes]string{
	"Text", "Whitespace", "Tab", "Newline",
	"ToggleBold", "ToggleItalic",
	"PushStyle", "PopStyle", "PushFont", "PopFont",
	"PushLink", "PopLink", "PushColor", "PopColor",
	"Icon", "Custom",
}

// String returns the token type name.
func (t TokenType) String() string {
	if t < numTokenTypes {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// IsBreakable reports whether a line may break at a token of this type.
func (t TokenType) IsBreakable() bool {
	return t == TokenWhitespace || t == TokenTab || t == TokenNewline
}

// Segment is a view of part of a string.
type Segment struct {
	src    string
	offset int
	length int
}

// NewSegment returns a view of src[offset:offset+length] in bytes.
func NewSegment(src string, offset, length int) (Segment, error) {
	if err := richtext.CheckRange("markup.NewSegment", offset, length, len(src)); err != nil {
		return Segment{}, err
	}
	return Segment{src: src, offset: offset, length: length}, nil
}

// SegmentOf returns a view of the whole string.
func SegmentOf(s string) Segment {
	return Segment{src: s, length: len(s)}
}

// Offset returns the byte offset of the view.
func (s Segment) Offset() int { return s.offset }

// Len returns the length of the view in bytes.
func (s Segment) Len() int { return s.length }

// IsEmpty reports whether the view has no bytes.
func (s Segment) IsEmpty() bool { return s.length == 0 }

// Source returns the viewed string.
func (s Segment) Source() string { return s.src }

// String returns the viewed text. It shares memory with the source.
func (s Segment) String() string {
	return s.src[s.offset : s.offset+s.length]
}

// Token is one lexical unit of parsed markup.
type Token struct {
	Type TokenType

	// Text is the token text. For markup tokens it holds the argument,
	// such as a style name or link target.
	Text Segment

	// SourceOffset and SourceLength locate the token in the parsed
	// source, in bytes.
	SourceOffset int
	SourceLength int

	// NonBreaking is set on text containing non-breaking spaces.
	NonBreaking bool
}

// SourceEnd returns the byte offset just past the token.
func (t Token) SourceEnd() int {
	return t.SourceOffset + t.SourceLength
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q @%d+%d)", t.Type, t.Text.String(), t.SourceOffset, t.SourceLength)
}
