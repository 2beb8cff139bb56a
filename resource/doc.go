// Package resource interns the reference-typed values that command streams
// point at by 16-bit index: source strings and builders, shaped strings and
// builders, styles, icons, fonts, glyph shaders and link targets.
//
// Each kind has its own table, created on first registration. Looking up an
// index in a kind that was never registered fails with
// richtext.ErrUnregistered; an index past the end fails with a
// *richtext.RangeError. Styles, icons, fonts and glyph shaders can also be
// found by case-sensitive name.
//
//	reg := resource.NewRegistry()
//	idx, err := reg.RegisterStyle("heading", &resource.Style{Size: 24, Bold: true})
//	...
//	style, err := reg.Style(idx)
//
// Registry is not safe for concurrent use.
package resource
