package resource

import (
	"fmt"

	"github.com/gogpu/richtext"
)

// MaxEntries is the number of entries a single kind can hold.
const MaxEntries = 1 << 16

// ErrTableFull is returned when a kind already holds MaxEntries values.
var ErrTableFull = fmt.Errorf("resource: table full: %w", richtext.ErrOutOfRange)
