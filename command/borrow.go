package command

import (
	"fmt"

	"github.com/gogpu/richtext"
)

// AcquirePointers opens a window in which raw record slices obtained with
// RawRecord stay valid. Any write, Reset or Clear inside the window panics.
// Calls nest; every AcquirePointers needs a matching ReleasePointers.
func (s *Stream) AcquirePointers() {
	s.acquired++
}

// ReleasePointers closes the innermost acquisition window.
// It panics if no window is open.
func (s *Stream) ReleasePointers() {
	if s.acquired == 0 {
		panic("command: ReleasePointers without AcquirePointers")
	}
	s.acquired--
}

// PointersAcquired reports whether an acquisition window is open.
func (s *Stream) PointersAcquired() bool {
	return s.acquired > 0
}

// borrow brackets an internal raw read. It returns the matching release.
//
//	defer s.borrow()()
func (s *Stream) borrow() func() {
	s.acquired++
	return s.ReleasePointers
}

func (s *Stream) checkWritable(op string) {
	if s.acquired > 0 {
		panic(fmt.Errorf("command: %s with %d pointer acquisitions open: %w", op, s.acquired, richtext.ErrBorrowed))
	}
}

// View is a handle to one record. It stays usable until the stream buffer
// is reallocated, reset or cleared.
type View struct {
	index      int
	offset     uint32
	generation uint64
}

// Index returns the record index the view refers to.
func (v View) Index() int {
	return v.index
}

// ViewAt returns a view of the record at index.
func (s *Stream) ViewAt(index int) (View, error) {
	if err := richtext.CheckIndex("ViewAt", index, len(s.offsets)); err != nil {
		return View{}, err
	}
	return View{index: index, offset: s.offsets[index], generation: s.generation}, nil
}

// Valid reports whether v still refers to the current buffer.
func (s *Stream) Valid(v View) bool {
	return v.generation == s.generation && v.index < len(s.offsets)
}

// RawRecord returns the encoded bytes of the record behind v, type byte
// first. The slice aliases the stream buffer and may only be used until the
// enclosing ReleasePointers.
func (s *Stream) RawRecord(v View) ([]byte, error) {
	if s.acquired == 0 {
		return nil, fmt.Errorf("command: RawRecord: %w", richtext.ErrNotAcquired)
	}
	if !s.Valid(v) {
		return nil, fmt.Errorf("command: RawRecord(%d): %w", v.index, richtext.ErrStaleView)
	}
	return s.record(v.index), nil
}

// record returns the raw bytes of record i with capacity clipped to its size.
func (s *Stream) record(i int) []byte {
	off := int(s.offsets[i])
	end := off + Type(s.buf[off]).Size()
	return s.buf[off:end:end]
}

// typeAt returns the type of record i.
func (s *Stream) typeAt(i int) Type {
	return Type(s.buf[s.offsets[i]])
}
