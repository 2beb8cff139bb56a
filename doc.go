// Package richtext is the formatted-text layout command stream.
//
// # Overview
//
// A text layout pass produces line breaks, glyph runs, style/link/font pushes
// and icons. richtext stores that output in a compact append-only binary
// stream and provides the machinery to write it, navigate it randomly and
// reconcile three coordinate spaces: source characters, shaped characters
// and rendered glyphs.
//
// # Architecture
//
// The module is organized into:
//   - text: ShapedChar records, immutable ShapedString, growable ShapedStringBuilder,
//     Segment views and the shaping collaborators (x/image and go-text/typesetting)
//   - resource: the registry interning strings, styles, icons, fonts, glyph shaders
//     and link targets behind 16-bit indices
//   - command: the command stream writer, navigation, LineInfo and custom-command search
//   - markup: the parser token stream consumed by a layout algorithm
//
// Data flows from raw text to a markup.TokenStream, through an external layout
// algorithm that emits records into a command.Stream, to a renderer or
// hit-tester that reads the finished stream back.
//
// # Logging
//
// All packages log through the logger installed with SetLogger. The default
// logger discards everything.
//
// # Errors
//
// Errors wrap the sentinels declared here (ErrOutOfRange, ErrInvalidArgument,
// ErrUnregistered, ...). They report programming errors and are never retried.
package richtext
