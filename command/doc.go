// Package command implements the layout command stream: an append-only
// buffer of fixed-size binary records describing laid-out text.
//
// A layout pass writes records in order:
//
//	s := command.NewStream()
//	run, _ := s.Registry().RegisterShapedString(shaped)
//	s.WriteBlockInfo(command.BlockInfo{Offset: 10})
//	s.WriteLineInfo(command.Line{Width: 50, Height: 12, LengthInCommands: 1, LengthInSource: 5})
//	s.WriteText(command.Text{Kind: command.TextShapedString, Resource: run, Length: 5, SourceLength: 5})
//
// Renderers then read it back, either sequentially with Seek and the
// Read methods, or line by line:
//
//	for line := range s.Lines() {
//	    ...
//	}
//
// # Record layout
//
// Every record starts with its Type byte; the payload follows in little
// endian order. Sizes are fixed per type (see Type.Size), and variable
// content lives in the stream's resource.Registry and is referenced by
// 16-bit index.
//
// # Pointer acquisition
//
// RawRecord hands out slices that alias the buffer. They are only valid
// between AcquirePointers and ReleasePointers; writing inside that window
// panics with richtext.ErrBorrowed. A View obtained with ViewAt becomes
// stale once the buffer grows or the stream is reset.
package command
