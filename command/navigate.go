package command

import (
	"fmt"
	"image/color"

	"github.com/gogpu/richtext"
)

// Seek moves the cursor to the record at index and returns its type.
// Seeking to Count is allowed and returns TypeNone.
func (s *Stream) Seek(index int) (Type, error) {
	if index < 0 || index > len(s.offsets) {
		return TypeNone, &richtext.RangeError{Op: "Seek", Index: index, Len: len(s.offsets) + 1}
	}
	s.pos = index
	return s.Peek(), nil
}

// Peek returns the type of the record at the cursor, or TypeNone at the end.
func (s *Stream) Peek() Type {
	if s.pos >= len(s.offsets) {
		return TypeNone
	}
	defer s.borrow()()
	return s.typeAt(s.pos)
}

// SeekNextCommand moves the cursor to the next record. It returns false,
// without moving, when the cursor is on the last record or at the end.
func (s *Stream) SeekNextCommand() bool {
	if s.pos+1 >= len(s.offsets) {
		return false
	}
	s.pos++
	return true
}

// SeekPreviousCommand moves the cursor to the previous record. It returns
// false, without moving, at the first record.
func (s *Stream) SeekPreviousCommand() bool {
	if s.pos <= 0 {
		return false
	}
	s.pos--
	return true
}

// SeekNextLine moves the cursor to the next LineInfo record. On a LineInfo
// record the search starts past the line's command span; elsewhere it starts
// at the following record. It returns false, without moving, if no further
// line exists.
func (s *Stream) SeekNextLine() bool {
	defer s.borrow()()
	start := s.pos + 1
	if s.pos < len(s.offsets) && s.typeAt(s.pos) == TypeLineInfo {
		start = s.pos + int(decodeLine(s.record(s.pos)[1:]).LengthInCommands) + 1
	}
	for i := start; i < len(s.offsets); i++ {
		if s.typeAt(i) == TypeLineInfo {
			s.pos = i
			return true
		}
	}
	return false
}

// SeekLine moves the cursor to the LineInfo record of line index.
// Lines are not indexed, so this walks index lines from the first one.
func (s *Stream) SeekLine(index int) error {
	defer s.borrow()()
	i, err := s.lineOffset("SeekLine", index, nil)
	if err != nil {
		return err
	}
	s.pos = i
	return nil
}

// firstLine returns the index of the first LineInfo record, or -1.
func (s *Stream) firstLine() int {
	for i := range s.offsets {
		if s.typeAt(i) == TypeLineInfo {
			return i
		}
	}
	return -1
}

// lineOffset walks to line index and returns its record index. visit, if
// not nil, is called with every line header before the target.
// Caller must hold a borrow.
func (s *Stream) lineOffset(op string, index int, visit func(Line)) (int, error) {
	if index < 0 {
		return 0, &richtext.RangeError{Op: op, Index: index, Len: s.lineCount}
	}
	i := s.firstLine()
	if i < 0 {
		return 0, &richtext.RangeError{Op: op, Index: index, Len: 0}
	}
	for n := 0; n < index; n++ {
		l := decodeLine(s.record(i)[1:])
		if visit != nil {
			visit(l)
		}
		i += int(l.LengthInCommands) + 1
		if i >= len(s.offsets) || s.typeAt(i) != TypeLineInfo {
			return 0, &richtext.RangeError{Op: op, Index: index, Len: n + 1}
		}
	}
	return i, nil
}

// At decodes the record at index without moving the cursor.
func (s *Stream) At(index int) (Record, error) {
	if err := richtext.CheckIndex("At", index, len(s.offsets)); err != nil {
		return nil, err
	}
	defer s.borrow()()
	return decode(s.record(index)), nil
}

// ReadRecord decodes the record at the cursor and advances past it.
func (s *Stream) ReadRecord() (Record, error) {
	r, err := s.At(s.pos)
	if err != nil {
		return nil, err
	}
	s.pos++
	return r, nil
}

// readAs decodes the record at the cursor as want and advances past it.
func readAs[R Record](s *Stream, want Type) (R, error) {
	var zero R
	if err := richtext.CheckIndex("Read"+want.String(), s.pos, len(s.offsets)); err != nil {
		return zero, err
	}
	defer s.borrow()()
	rec := s.record(s.pos)
	if got := Type(rec[0]); got != want {
		return zero, fmt.Errorf("command: Read%s at record %d: found %s: %w", want, s.pos, got, richtext.ErrMalformed)
	}
	s.pos++
	return decode(rec).(R), nil
}

// ReadBlockInfo decodes the BlockInfo record at the cursor and advances.
func (s *Stream) ReadBlockInfo() (BlockInfo, error) { return readAs[BlockInfo](s, TypeBlockInfo) }

// ReadLineInfo decodes the LineInfo record at the cursor and advances.
func (s *Stream) ReadLineInfo() (Line, error) { return readAs[Line](s, TypeLineInfo) }

// ReadText decodes the Text record at the cursor and advances.
func (s *Stream) ReadText() (Text, error) { return readAs[Text](s, TypeText) }

// ReadLineBreak decodes the LineBreak record at the cursor and advances.
func (s *Stream) ReadLineBreak() (LineBreak, error) { return readAs[LineBreak](s, TypeLineBreak) }

// ReadIcon decodes the Icon record at the cursor and advances.
func (s *Stream) ReadIcon() (Icon, error) { return readAs[Icon](s, TypeIcon) }

// ReadCustom decodes the Custom record at the cursor and advances.
func (s *Stream) ReadCustom() (Custom, error) { return readAs[Custom](s, TypeCustom) }

// ReadToggleBold consumes the ToggleBold record at the cursor.
func (s *Stream) ReadToggleBold() error {
	_, err := readAs[ToggleBold](s, TypeToggleBold)
	return err
}

// ReadToggleItalic consumes the ToggleItalic record at the cursor.
func (s *Stream) ReadToggleItalic() error {
	_, err := readAs[ToggleItalic](s, TypeToggleItalic)
	return err
}

// ReadPushStyle returns the style index of a PushStyle record.
func (s *Stream) ReadPushStyle() (uint16, error) {
	r, err := readAs[PushStyle](s, TypePushStyle)
	return r.Style, err
}

// ReadPopStyle consumes the PopStyle record at the cursor.
func (s *Stream) ReadPopStyle() error {
	_, err := readAs[PopStyle](s, TypePopStyle)
	return err
}

// ReadPushFont returns the font index of a PushFont record.
func (s *Stream) ReadPushFont() (uint16, error) {
	r, err := readAs[PushFont](s, TypePushFont)
	return r.Font, err
}

// ReadPopFont consumes the PopFont record at the cursor.
func (s *Stream) ReadPopFont() error {
	_, err := readAs[PopFont](s, TypePopFont)
	return err
}

// ReadPushLink returns the link index of a PushLink record.
func (s *Stream) ReadPushLink() (uint16, error) {
	r, err := readAs[PushLink](s, TypePushLink)
	return r.Link, err
}

// ReadPopLink consumes the PopLink record at the cursor.
func (s *Stream) ReadPopLink() error {
	_, err := readAs[PopLink](s, TypePopLink)
	return err
}

// ReadPushColor returns the color of a PushColor record.
func (s *Stream) ReadPushColor() (color.RGBA, error) {
	r, err := readAs[PushColor](s, TypePushColor)
	return r.Color, err
}

// ReadPopColor consumes the PopColor record at the cursor.
func (s *Stream) ReadPopColor() error {
	_, err := readAs[PopColor](s, TypePopColor)
	return err
}

// ReadPushGlyphShader returns the shader index of a PushGlyphShader record.
func (s *Stream) ReadPushGlyphShader() (uint16, error) {
	r, err := readAs[PushGlyphShader](s, TypePushGlyphShader)
	return r.Shader, err
}

// ReadPopGlyphShader consumes the PopGlyphShader record at the cursor.
func (s *Stream) ReadPopGlyphShader() error {
	_, err := readAs[PopGlyphShader](s, TypePopGlyphShader)
	return err
}
