package text

import "sync"

// Shaper is the shaping collaborator: it converts source text into shaped
// characters for a face.
//
// SourceIndex of every returned character is the rune index within text
// that produced it. Tabs and newlines are returned as special-character
// records (see NewSpecialChar).
type Shaper interface {
	Shape(text string, face Face) []ShapedChar
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = &BuiltinShaper{}
)

// SetShaper sets the shaper used by ShapeString and
// ShapedStringBuilder.AppendText. Pass nil to restore the BuiltinShaper.
//
//	text.SetShaper(text.NewGoTextShaper())
//	defer text.SetShaper(nil)
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = &BuiltinShaper{}
	}
	globalShaper = s
}

// GetShaper returns the current shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// ShapeString shapes text with face using the current shaper and returns
// an immutable ShapedString carrying the face, language, script and
// direction of the run.
func ShapeString(text string, face Face) (*ShapedString, error) {
	if face == nil {
		return nil, ErrNilFace
	}
	chars := GetShaper().Shape(text, face)
	return &ShapedString{chars: chars, props: propsFor(text, face)}, nil
}

// specialFor returns the special-character record for r, if r is one.
func specialFor(r rune, sourceIndex int) (ShapedChar, bool) {
	switch r {
	case '\t', '\n':
		return NewSpecialChar(r, int32(sourceIndex)), true //nolint:gosec // rune indices fit in int32
	}
	return ShapedChar{}, false
}
