package text

import (
	"errors"
	"fmt"

	"github.com/gogpu/richtext"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNilFace is returned when an operation needs a face and got nil.
	ErrNilFace = fmt.Errorf("text: nil face: %w", richtext.ErrInvalidArgument)
)
