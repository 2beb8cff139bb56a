package command

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Dump writes one line per record: index, byte offset, type and fields.
func (s *Stream) Dump(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	defer s.borrow()()
	for i := range s.offsets {
		r := decode(s.record(i))
		if _, err := fmt.Fprintf(tw, "%d\t@%d\t%s\t%+v\n", i, s.offsets[i], r.Type(), r); err != nil {
			return err
		}
	}
	return tw.Flush()
}
