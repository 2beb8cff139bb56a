package command

import (
	"encoding/binary"
	"fmt"
	"image/color"
	"math"
)

// Record is the decoded form of one command. Every record type of the
// stream has a matching struct implementing Record.
type Record interface {
	// Type returns the discriminator of the record.
	Type() Type

	// encode stores the payload in b, which excludes the type byte.
	encode(b []byte)
}

// Alignment is the horizontal alignment of a block.
type Alignment uint8

const (
	// AlignStart aligns lines to the start edge.
	AlignStart Alignment = iota
	// AlignCenter centers lines.
	AlignCenter
	// AlignEnd aligns lines to the end edge.
	AlignEnd
	// AlignJustify stretches lines to the block width.
	AlignJustify
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "Start"
	case AlignCenter:
		return "Center"
	case AlignEnd:
		return "End"
	case AlignJustify:
		return "Justify"
	}
	return fmt.Sprintf("Alignment(%d)", a)
}

// BlockInfo opens a laid-out block. Offset is the block's vertical
// position; lines stack downward from it.
type BlockInfo struct {
	Offset    float32
	Indent    float32
	MaxWidth  float32
	Alignment Alignment
}

// Line is the stored header of one line. The line covers the
// LengthInCommands records that follow it.
type Line struct {
	X        float32
	Width    float32
	Height   float32
	Baseline float32

	LengthInCommands uint32
	LengthInSource   uint32
	LengthInGlyphs   uint32

	// BreakLength is the number of trailing source characters, counted in
	// LengthInSource, that form the line terminator. It is 0 when the line
	// does not end with a break.
	BreakLength uint8
}

// TextKind selects the registry table a Text record points into.
type TextKind uint8

const (
	// TextSourceString refers to a registered source string.
	TextSourceString TextKind = iota
	// TextSourceBuilder refers to a registered source builder.
	TextSourceBuilder
	// TextShapedString refers to a registered text.ShapedString.
	TextShapedString
	// TextShapedBuilder refers to a registered text.ShapedStringBuilder.
	TextShapedBuilder
)

// String returns the kind name.
func (k TextKind) String() string {
	switch k {
	case TextSourceString:
		return "SourceString"
	case TextSourceBuilder:
		return "SourceBuilder"
	case TextShapedString:
		return "ShapedString"
	case TextShapedBuilder:
		return "ShapedBuilder"
	}
	return fmt.Sprintf("TextKind(%d)", k)
}

// IsShaped reports whether the resource holds shaped characters.
func (k TextKind) IsShaped() bool {
	return k == TextShapedString || k == TextShapedBuilder
}

// Text places Length characters starting at Start of a registered
// resource. SourceStart and SourceLength locate the run in the
// unshaped source.
type Text struct {
	Kind     TextKind
	Resource uint16

	X, Y  float32
	Width float32

	Start        uint32
	Length       uint32
	SourceStart  uint32
	SourceLength uint32
}

// LineBreak terminates a line. Hard breaks come from the source text,
// soft breaks from wrapping.
type LineBreak struct {
	SourceLength uint16
	Hard         bool
}

// Icon places a registered icon.
type Icon struct {
	Icon          uint16
	X, Y          float32
	Width, Height float32
	SourceIndex   uint32
}

// Custom is an application-defined marker located between glyphs.
type Custom struct {
	ID    uint32
	Arg0  int32
	Arg1  int32
	Value float32
}

type (
	// ToggleBold flips the bold attribute.
	ToggleBold struct{}
	// ToggleItalic flips the italic attribute.
	ToggleItalic struct{}

	// PushStyle applies the registered style at index Style.
	PushStyle struct{ Style uint16 }
	// PopStyle restores the style in effect before the matching PushStyle.
	PopStyle struct{}

	// PushFont switches to the registered font at index Font.
	PushFont struct{ Font uint16 }
	// PopFont restores the previous font.
	PopFont struct{}

	// PushLink starts a run linking to the registered target at index Link.
	PushLink struct{ Link uint16 }
	// PopLink ends the current link run.
	PopLink struct{}

	// PushColor sets the text color.
	PushColor struct{ Color color.RGBA }
	// PopColor restores the previous text color.
	PopColor struct{}

	// PushGlyphShader applies the registered glyph shader at index Shader.
	PushGlyphShader struct{ Shader uint16 }
	// PopGlyphShader removes the current glyph shader.
	PopGlyphShader struct{}
)

// Type returns TypeBlockInfo.
func (BlockInfo) Type() Type { return TypeBlockInfo }

// Type returns TypeLineInfo.
func (Line) Type() Type { return TypeLineInfo }

// Type returns TypeText.
func (Text) Type() Type { return TypeText }

// Type returns TypeLineBreak.
func (LineBreak) Type() Type { return TypeLineBreak }

// Type returns TypeIcon.
func (Icon) Type() Type { return TypeIcon }

// Type returns TypeCustom.
func (Custom) Type() Type { return TypeCustom }

// Type returns TypeToggleBold.
func (ToggleBold) Type() Type { return TypeToggleBold }

// Type returns TypeToggleItalic.
func (ToggleItalic) Type() Type { return TypeToggleItalic }

// Type returns TypePushStyle.
func (PushStyle) Type() Type { return TypePushStyle }

// Type returns TypePopStyle.
func (PopStyle) Type() Type { return TypePopStyle }

// Type returns TypePushFont.
func (PushFont) Type() Type { return TypePushFont }

// Type returns TypePopFont.
func (PopFont) Type() Type { return TypePopFont }

// Type returns TypePushLink.
func (PushLink) Type() Type { return TypePushLink }

// Type returns TypePopLink.
func (PopLink) Type() Type { return TypePopLink }

// Type returns TypePushColor.
func (PushColor) Type() Type { return TypePushColor }

// Type returns TypePopColor.
func (PopColor) Type() Type { return TypePopColor }

// Type returns TypePushGlyphShader.
func (PushGlyphShader) Type() Type { return TypePushGlyphShader }

// Type returns TypePopGlyphShader.
func (PopGlyphShader) Type() Type { return TypePopGlyphShader }

var bo = binary.LittleEndian

func putFloat(b []byte, v float32) {
	bo.PutUint32(b, math.Float32bits(v))
}

func getFloat(b []byte) float32 {
	return math.Float32frombits(bo.Uint32(b))
}

func putBool(b []byte, v bool) {
	if v {
		b[0] = 1
	}
}

func (r BlockInfo) encode(b []byte) {
	putFloat(b[0:], r.Offset)
	putFloat(b[4:], r.Indent)
	putFloat(b[8:], r.MaxWidth)
	b[12] = byte(r.Alignment)
}

func decodeBlockInfo(b []byte) BlockInfo {
	return BlockInfo{
		Offset:    getFloat(b[0:]),
		Indent:    getFloat(b[4:]),
		MaxWidth:  getFloat(b[8:]),
		Alignment: Alignment(b[12]),
	}
}

func (r Line) encode(b []byte) {
	putFloat(b[0:], r.X)
	putFloat(b[4:], r.Width)
	putFloat(b[8:], r.Height)
	putFloat(b[12:], r.Baseline)
	bo.PutUint32(b[16:], r.LengthInCommands)
	bo.PutUint32(b[20:], r.LengthInSource)
	bo.PutUint32(b[24:], r.LengthInGlyphs)
	b[28] = r.BreakLength
}

func decodeLine(b []byte) Line {
	return Line{
		X:                getFloat(b[0:]),
		Width:            getFloat(b[4:]),
		Height:           getFloat(b[8:]),
		Baseline:         getFloat(b[12:]),
		LengthInCommands: bo.Uint32(b[16:]),
		LengthInSource:   bo.Uint32(b[20:]),
		LengthInGlyphs:   bo.Uint32(b[24:]),
		BreakLength:      b[28],
	}
}

func (r Text) encode(b []byte) {
	b[0] = byte(r.Kind)
	bo.PutUint16(b[1:], r.Resource)
	putFloat(b[3:], r.X)
	putFloat(b[7:], r.Y)
	putFloat(b[11:], r.Width)
	bo.PutUint32(b[15:], r.Start)
	bo.PutUint32(b[19:], r.Length)
	bo.PutUint32(b[23:], r.SourceStart)
	bo.PutUint32(b[27:], r.SourceLength)
}

func decodeText(b []byte) Text {
	return Text{
		Kind:         TextKind(b[0]),
		Resource:     bo.Uint16(b[1:]),
		X:            getFloat(b[3:]),
		Y:            getFloat(b[7:]),
		Width:        getFloat(b[11:]),
		Start:        bo.Uint32(b[15:]),
		Length:       bo.Uint32(b[19:]),
		SourceStart:  bo.Uint32(b[23:]),
		SourceLength: bo.Uint32(b[27:]),
	}
}

func (r LineBreak) encode(b []byte) {
	bo.PutUint16(b[0:], r.SourceLength)
	putBool(b[2:], r.Hard)
}

func decodeLineBreak(b []byte) LineBreak {
	return LineBreak{SourceLength: bo.Uint16(b[0:]), Hard: b[2] != 0}
}

func (r Icon) encode(b []byte) {
	bo.PutUint16(b[0:], r.Icon)
	putFloat(b[2:], r.X)
	putFloat(b[6:], r.Y)
	putFloat(b[10:], r.Width)
	putFloat(b[14:], r.Height)
	bo.PutUint32(b[18:], r.SourceIndex)
}

func decodeIcon(b []byte) Icon {
	return Icon{
		Icon:        bo.Uint16(b[0:]),
		X:           getFloat(b[2:]),
		Y:           getFloat(b[6:]),
		Width:       getFloat(b[10:]),
		Height:      getFloat(b[14:]),
		SourceIndex: bo.Uint32(b[18:]),
	}
}

func (r Custom) encode(b []byte) {
	bo.PutUint32(b[0:], r.ID)
	bo.PutUint32(b[4:], uint32(r.Arg0)) //nolint:gosec // bit reinterpretation
	bo.PutUint32(b[8:], uint32(r.Arg1)) //nolint:gosec // bit reinterpretation
	putFloat(b[12:], r.Value)
}

func decodeCustom(b []byte) Custom {
	return Custom{
		ID:    bo.Uint32(b[0:]),
		Arg0:  int32(bo.Uint32(b[4:])), //nolint:gosec // bit reinterpretation
		Arg1:  int32(bo.Uint32(b[8:])), //nolint:gosec // bit reinterpretation
		Value: getFloat(b[12:]),
	}
}

func (r PushStyle) encode(b []byte)       { bo.PutUint16(b, r.Style) }
func (r PushFont) encode(b []byte)        { bo.PutUint16(b, r.Font) }
func (r PushLink) encode(b []byte)        { bo.PutUint16(b, r.Link) }
func (r PushGlyphShader) encode(b []byte) { bo.PutUint16(b, r.Shader) }

func (r PushColor) encode(b []byte) {
	b[0], b[1], b[2], b[3] = r.Color.R, r.Color.G, r.Color.B, r.Color.A
}

func (ToggleBold) encode([]byte)     {}
func (ToggleItalic) encode([]byte)   {}
func (PopStyle) encode([]byte)       {}
func (PopFont) encode([]byte)        {}
func (PopLink) encode([]byte)        {}
func (PopColor) encode([]byte)       {}
func (PopGlyphShader) encode([]byte) {}

// decode decodes a full record, type byte included.
func decode(rec []byte) Record {
	b := rec[1:]
	switch Type(rec[0]) {
	case TypeBlockInfo:
		return decodeBlockInfo(b)
	case TypeLineInfo:
		return decodeLine(b)
	case TypeText:
		return decodeText(b)
	case TypeLineBreak:
		return decodeLineBreak(b)
	case TypeIcon:
		return decodeIcon(b)
	case TypeCustom:
		return decodeCustom(b)
	case TypeToggleBold:
		return ToggleBold{}
	case TypeToggleItalic:
		return ToggleItalic{}
	case TypePushStyle:
		return PushStyle{Style: bo.Uint16(b)}
	case TypePopStyle:
		return PopStyle{}
	case TypePushFont:
		return PushFont{Font: bo.Uint16(b)}
	case TypePopFont:
		return PopFont{}
	case TypePushLink:
		return PushLink{Link: bo.Uint16(b)}
	case TypePopLink:
		return PopLink{}
	case TypePushColor:
		return PushColor{Color: color.RGBA{R: b[0], G: b[1], B: b[2], A: b[3]}}
	case TypePopColor:
		return PopColor{}
	case TypePushGlyphShader:
		return PushGlyphShader{Shader: bo.Uint16(b)}
	case TypePopGlyphShader:
		return PopGlyphShader{}
	}
	panic(fmt.Sprintf("command: invalid record type %d", rec[0]))
}
