package command

import (
	"errors"
	"testing"

	"github.com/gogpu/richtext"
)

func expectBorrowPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, richtext.ErrBorrowed) {
			t.Errorf("%s: recovered %v, want ErrBorrowed", name, r)
		}
	}()
	fn()
}

func TestWriteWhileAcquiredPanics(t *testing.T) {
	s := NewStream()
	s.AcquirePointers()
	defer s.ReleasePointers()

	expectBorrowPanic(t, "WriteToggleBold", s.WriteToggleBold)
	expectBorrowPanic(t, "WriteText", func() { s.WriteText(Text{}) })
	expectBorrowPanic(t, "Reset", s.Reset)
	expectBorrowPanic(t, "Clear", s.Clear)
	if s.Count() != 0 {
		t.Errorf("Count() = %d, want 0", s.Count())
	}
}

func TestAcquireIsReentrant(t *testing.T) {
	s := NewStream()
	s.WriteBlockInfo(BlockInfo{})

	s.AcquirePointers()
	s.AcquirePointers()
	s.ReleasePointers()
	if !s.PointersAcquired() {
		t.Error("inner release closed the outer window")
	}
	// Public reads bracket themselves and restore the outer state.
	if _, err := s.At(0); err != nil {
		t.Fatal(err)
	}
	if !s.PointersAcquired() {
		t.Error("At closed the caller's window")
	}
	s.ReleasePointers()
	if s.PointersAcquired() {
		t.Error("PointersAcquired() = true after final release")
	}

	if _, err := s.GetLineInfo(0); err == nil {
		t.Error("GetLineInfo without lines: expected error")
	}
	if s.PointersAcquired() {
		t.Error("failed GetLineInfo leaked an acquisition")
	}
}

func TestReleaseWithoutAcquirePanics(t *testing.T) {
	s := NewStream()
	defer func() {
		if recover() == nil {
			t.Error("ReleasePointers without AcquirePointers did not panic")
		}
	}()
	s.ReleasePointers()
}

func TestRawRecord(t *testing.T) {
	s := NewStream()
	s.WriteBlockInfo(BlockInfo{Offset: 1})
	s.WritePushStyle(9)

	v, err := s.ViewAt(1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.RawRecord(v); !errors.Is(err, richtext.ErrNotAcquired) {
		t.Errorf("RawRecord outside bracket error = %v, want ErrNotAcquired", err)
	}

	s.AcquirePointers()
	raw, err := s.RawRecord(v)
	s.ReleasePointers()
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != PushIndexLen || Type(raw[0]) != TypePushStyle || raw[1] != 9 {
		t.Errorf("RawRecord = %v", raw)
	}
	if cap(raw) != len(raw) {
		t.Errorf("RawRecord cap = %d, want %d", cap(raw), len(raw))
	}

	if _, err := s.ViewAt(2); !errors.Is(err, richtext.ErrOutOfRange) {
		t.Errorf("ViewAt(2) error = %v, want ErrOutOfRange", err)
	}
}

func TestViewStaleAfterGrowth(t *testing.T) {
	s := NewStream(WithCapacity(BlockInfoLen))
	s.WriteBlockInfo(BlockInfo{})
	v, err := s.ViewAt(0)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Valid(v) {
		t.Fatal("fresh view is not valid")
	}

	s.WriteText(Text{})
	if s.Valid(v) {
		t.Error("view still valid after the buffer grew")
	}
	s.AcquirePointers()
	defer s.ReleasePointers()
	if _, err := s.RawRecord(v); !errors.Is(err, richtext.ErrStaleView) {
		t.Errorf("RawRecord(stale) error = %v, want ErrStaleView", err)
	}

	fresh, err := s.ViewAt(0)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := s.RawRecord(fresh)
	if err != nil || Type(raw[0]) != TypeBlockInfo {
		t.Errorf("RawRecord(fresh) = %v, %v", raw, err)
	}
}

func TestViewSurvivesWriteWithinCapacity(t *testing.T) {
	s := NewStream(WithCapacity(1024))
	s.WriteToggleBold()
	v, _ := s.ViewAt(0)
	s.WriteToggleItalic()
	if !s.Valid(v) {
		t.Error("view invalidated by a write that did not reallocate")
	}
}

func TestViewStaleAfterReset(t *testing.T) {
	s := NewStream()
	s.WriteToggleBold()
	v, _ := s.ViewAt(0)
	s.Reset()
	s.WriteToggleBold()
	if s.Valid(v) {
		t.Error("view valid after Reset")
	}
	if v.Index() != 0 {
		t.Errorf("Index() = %d, want 0", v.Index())
	}
}
