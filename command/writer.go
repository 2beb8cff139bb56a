package command

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/richtext"
)

// Write appends r and moves the cursor to the end of the stream.
// It panics with richtext.ErrBorrowed while pointers are acquired.
func (s *Stream) Write(r Record) {
	t := r.Type()
	s.checkWritable("Write" + t.String())
	if t.IsPop() {
		s.popScope(t)
	} else if t.IsPush() {
		s.pushScope(t)
	}

	rec := s.reserve(t)
	r.encode(rec[1:])
	rec[0] = byte(t)
	s.pos = len(s.offsets)

	if t.changesFontStyle() {
		s.multipleStyles = true
	}
	switch r := r.(type) {
	case BlockInfo:
		s.blockOffset = r.Offset
	case Line:
		s.addLine(r)
	case Text:
		s.lengthInShaped += int(r.Length)
	}
}

// reserve appends a zeroed record of type t and returns it.
func (s *Stream) reserve(t Type) []byte {
	n := t.Size()
	off := len(s.buf)
	if uint64(off+n) > math.MaxUint32 {
		panic(fmt.Errorf("command: stream exceeds 4 GiB: %w", richtext.ErrOutOfRange))
	}
	if off+n > cap(s.buf) {
		s.grow(n)
	}
	s.buf = s.buf[:off+n]
	rec := s.buf[off : off+n]
	clear(rec)
	s.offsets = append(s.offsets, uint32(off)) //nolint:gosec // checked above
	return rec
}

// grow reallocates buf so that n more bytes fit. Existing views become stale.
func (s *Stream) grow(n int) {
	newCap := max(len(s.buf)+n, cap(s.buf)*2)
	buf := make([]byte, len(s.buf), newCap)
	copy(buf, s.buf)
	s.buf = buf
	s.generation++
	richtext.Logger().Debug("command: buffer grown", "len", len(buf), "cap", newCap)
}

// addLine folds a line header into the stream metadata.
func (s *Stream) addLine(l Line) {
	r := Rect{X: l.X, Y: s.blockOffset + s.actualHeight, Width: l.Width, Height: l.Height}
	s.bounds = s.bounds.Union(r)
	s.actualHeight += l.Height
	s.actualWidth = max(s.actualWidth, l.Width)
	s.lengthInSource += int(l.LengthInSource)
	s.lengthInGlyphs += int(l.LengthInGlyphs)
	s.lineCount++
}

// WriteBlockInfo appends a BlockInfo record.
func (s *Stream) WriteBlockInfo(b BlockInfo) { s.Write(b) }

// WriteLineInfo appends a line header and accumulates line count,
// lengths, actual size and bounds.
func (s *Stream) WriteLineInfo(l Line) { s.Write(l) }

// WriteText appends a Text record.
func (s *Stream) WriteText(t Text) { s.Write(t) }

// WriteLineBreak appends a LineBreak record.
func (s *Stream) WriteLineBreak(b LineBreak) { s.Write(b) }

// WriteIcon appends an Icon record.
func (s *Stream) WriteIcon(i Icon) { s.Write(i) }

// WriteCustom appends a Custom record.
func (s *Stream) WriteCustom(c Custom) { s.Write(c) }

// WriteToggleBold appends a ToggleBold record.
func (s *Stream) WriteToggleBold() { s.Write(ToggleBold{}) }

// WriteToggleItalic appends a ToggleItalic record.
func (s *Stream) WriteToggleItalic() { s.Write(ToggleItalic{}) }

// WritePushStyle pushes the registered style at index.
func (s *Stream) WritePushStyle(style uint16) { s.Write(PushStyle{Style: style}) }

// WritePopStyle ends the innermost PushStyle.
func (s *Stream) WritePopStyle() { s.Write(PopStyle{}) }

// WritePushFont pushes the registered font at index.
func (s *Stream) WritePushFont(font uint16) { s.Write(PushFont{Font: font}) }

// WritePopFont ends the innermost PushFont.
func (s *Stream) WritePopFont() { s.Write(PopFont{}) }

// WritePushLink pushes the registered link target at index.
func (s *Stream) WritePushLink(link uint16) { s.Write(PushLink{Link: link}) }

// WritePopLink ends the innermost PushLink.
func (s *Stream) WritePopLink() { s.Write(PopLink{}) }

// WritePushColor pushes a text color.
func (s *Stream) WritePushColor(c color.RGBA) { s.Write(PushColor{Color: c}) }

// WritePopColor ends the innermost PushColor.
func (s *Stream) WritePopColor() { s.Write(PopColor{}) }

// WritePushGlyphShader pushes the registered glyph shader at index.
func (s *Stream) WritePushGlyphShader(shader uint16) { s.Write(PushGlyphShader{Shader: shader}) }

// WritePopGlyphShader ends the innermost PushGlyphShader.
func (s *Stream) WritePopGlyphShader() { s.Write(PopGlyphShader{}) }
