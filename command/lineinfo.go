package command

import (
	"fmt"
	"iter"

	"github.com/gogpu/richtext"
)

// LineInfo describes one line of a stream. It is computed from the
// records on demand and refers back to the stream it came from.
type LineInfo struct {
	Index int

	// OffsetInCommands is the record index of the line header.
	OffsetInCommands int
	OffsetInSource   int
	OffsetInGlyphs   int

	X, Y          float32
	Width, Height float32
	Baseline      float32

	LengthInCommands int
	LengthInSource   int
	LengthInGlyphs   int
	BreakLength      int

	Source *Stream
}

// Rect returns the line rectangle.
func (l LineInfo) Rect() Rect {
	return Rect{X: l.X, Y: l.Y, Width: l.Width, Height: l.Height}
}

// ContainsSource reports whether source index i falls inside the line.
// LengthInSource includes the BreakLength characters of the terminator.
func (l LineInfo) ContainsSource(i int) bool {
	return i >= l.OffsetInSource && i < l.OffsetInSource+l.LengthInSource
}

func makeLineInfo(s *Stream, index, offset int, l Line) LineInfo {
	return LineInfo{
		Index:            index,
		OffsetInCommands: offset,
		X:                l.X,
		Width:            l.Width,
		Height:           l.Height,
		Baseline:         l.Baseline,
		LengthInCommands: int(l.LengthInCommands),
		LengthInSource:   int(l.LengthInSource),
		LengthInGlyphs:   int(l.LengthInGlyphs),
		BreakLength:      int(l.BreakLength),
		Source:           s,
	}
}

// GetLineInfo returns line index. It walks from the first line, summing
// heights and lengths, so it costs O(index). The first record of the
// stream must be a BlockInfo.
func (s *Stream) GetLineInfo(index int) (LineInfo, error) {
	defer s.borrow()()
	if len(s.offsets) == 0 || s.typeAt(0) != TypeBlockInfo {
		return LineInfo{}, fmt.Errorf("command: GetLineInfo: stream does not start with BlockInfo: %w", richtext.ErrMalformed)
	}
	block := decodeBlockInfo(s.record(0)[1:])

	y := block.Offset
	var src, glyphs int
	i, err := s.lineOffset("GetLineInfo", index, func(l Line) {
		y += l.Height
		src += int(l.LengthInSource)
		glyphs += int(l.LengthInGlyphs)
	})
	if err != nil {
		return LineInfo{}, err
	}
	info := makeLineInfo(s, index, i, decodeLine(s.record(i)[1:]))
	info.Y = y
	info.OffsetInSource = src
	info.OffsetInGlyphs = glyphs
	return info, nil
}

// GetNextLineInfo returns the line after prev in O(1).
// prev must come from this stream.
func (s *Stream) GetNextLineInfo(prev LineInfo) (LineInfo, error) {
	var next LineInfo
	ok, err := s.NextLineInfo(&prev, &next)
	if err != nil {
		return LineInfo{}, err
	}
	if !ok {
		return LineInfo{}, &richtext.RangeError{Op: "GetNextLineInfo", Index: prev.Index + 1, Len: prev.Index + 1}
	}
	return next, nil
}

// NextLineInfo stores the line after prev in next. It returns false when
// prev is the last line. prev and next may point to the same value.
func (s *Stream) NextLineInfo(prev, next *LineInfo) (bool, error) {
	if prev == nil || next == nil {
		return false, fmt.Errorf("command: NextLineInfo: nil LineInfo: %w", richtext.ErrInvalidArgument)
	}
	if prev.Source != s {
		return false, fmt.Errorf("command: NextLineInfo: line belongs to another stream: %w", richtext.ErrInvalidArgument)
	}
	if prev.OffsetInCommands < 0 || prev.LengthInCommands < 0 {
		return false, &richtext.RangeError{Op: "command.NextLineInfo", Index: prev.OffsetInCommands, Len: len(s.offsets)}
	}
	defer s.borrow()()
	i := prev.OffsetInCommands + prev.LengthInCommands + 1
	if i >= len(s.offsets) || s.typeAt(i) != TypeLineInfo {
		return false, nil
	}
	info := makeLineInfo(s, prev.Index+1, i, decodeLine(s.record(i)[1:]))
	info.Y = prev.Y + prev.Height
	info.OffsetInSource = prev.OffsetInSource + prev.LengthInSource
	info.OffsetInGlyphs = prev.OffsetInGlyphs + prev.LengthInGlyphs
	*next = info
	return true, nil
}

// Lines iterates over all lines in order.
func (s *Stream) Lines() iter.Seq[LineInfo] {
	return func(yield func(LineInfo) bool) {
		line, err := s.GetLineInfo(0)
		if err != nil {
			return
		}
		for {
			if !yield(line) {
				return
			}
			if ok, _ := s.NextLineInfo(&line, &line); !ok {
				return
			}
		}
	}
}

// LineAtY returns the line whose vertical extent contains y.
func (s *Stream) LineAtY(y float32) (LineInfo, bool) {
	for line := range s.Lines() {
		if y >= line.Y && y < line.Y+line.Height {
			return line, true
		}
	}
	return LineInfo{}, false
}
