package resource

import (
	"fmt"

	"github.com/gogpu/richtext"
)

// table is the storage of one kind. A nil *table means the kind was never
// registered.
type table[T any] struct {
	items []T
	// names is nil for kinds without name lookup.
	names map[string]uint16
}

// register appends v to *tp, creating the table on first use.
// An empty name registers the value without a name.
func register[T any](tp **table[T], kind Kind, name string, v T) (uint16, error) {
	t := *tp
	if t == nil {
		t = &table[T]{items: make([]T, 0, 4)}
		if kind.Named() {
			t.names = make(map[string]uint16)
		}
		*tp = t
		richtext.Logger().Debug("resource: table created", "kind", kind)
	}
	if len(t.items) >= MaxEntries {
		return 0, fmt.Errorf("resource: Register%s: %w", kind, ErrTableFull)
	}
	index := uint16(len(t.items)) //nolint:gosec // bounded by MaxEntries
	t.items = append(t.items, v)
	if name != "" && t.names != nil {
		t.names[name] = index
	}
	return index, nil
}

// lookup returns the entry at index.
func lookup[T any](t *table[T], kind Kind, index uint16) (T, error) {
	var zero T
	if t == nil {
		return zero, fmt.Errorf("resource: %s(%d): %w", kind, index, richtext.ErrUnregistered)
	}
	if err := richtext.CheckIndex(kind.String(), int(index), len(t.items)); err != nil {
		return zero, err
	}
	return t.items[index], nil
}

// indexOf returns the index registered under name.
func indexOf[T any](t *table[T], name string) (uint16, bool) {
	if t == nil || t.names == nil {
		return 0, false
	}
	index, ok := t.names[name]
	return index, ok
}

// byName returns the entry registered under name.
func byName[T any](t *table[T], name string) (T, bool) {
	index, ok := indexOf(t, name)
	if !ok {
		var zero T
		return zero, false
	}
	return t.items[index], true
}

func (t *table[T]) len() int {
	if t == nil {
		return 0
	}
	return len(t.items)
}
