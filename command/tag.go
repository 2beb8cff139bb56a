package command

// Type is the discriminator stored in the first byte of every record.
// Every type has a fixed record size, see Size.
type Type uint8

// TypeNone is returned by Seek and Peek at the end of the stream.
const TypeNone Type = 0

// Start at a high number so that a zeroed byte never decodes as a record.
const firstType = 200

const (
	// TypeBlockInfo opens a block.
	// Data: Offset f32, Indent f32, MaxWidth f32, Alignment u8
	TypeBlockInfo Type = iota + firstType

	// TypeLineInfo opens a line spanning the next LengthInCommands records.
	// Data: X f32, Width f32, Height f32, Baseline f32, LengthInCommands u32,
	// LengthInSource u32, LengthInGlyphs u32, BreakLength u8
	TypeLineInfo

	// TypeText places a run of text held by the registry.
	// Data: Kind u8, Resource u16, X f32, Y f32, Width f32, Start u32,
	// Length u32, SourceStart u32, SourceLength u32
	TypeText

	// TypeLineBreak ends a line.
	// Data: SourceLength u16, Hard u8
	TypeLineBreak

	// TypeIcon places an inline icon.
	// Data: Icon u16, X f32, Y f32, Width f32, Height f32, SourceIndex u32
	TypeIcon

	// TypeCustom carries an application-defined marker.
	// Data: ID u32, Arg0 i32, Arg1 i32, Value f32
	TypeCustom

	// TypeToggleBold and TypeToggleItalic flip a font style. Data: none
	TypeToggleBold
	TypeToggleItalic

	// Push records carry a registry index or a color; pops carry nothing.
	TypePushStyle
	TypePopStyle
	TypePushFont
	TypePopFont
	TypePushLink
	TypePopLink
	TypePushColor
	TypePopColor
	TypePushGlyphShader
	TypePopGlyphShader

	typeEnd
)

// Record sizes in bytes, including the type byte.
const (
	BlockInfoLen = 1 + 4*3 + 1
	LineInfoLen  = 1 + 4*4 + 4*3 + 1
	TextLen      = 1 + 1 + 2 + 4*3 + 4*4
	LineBreakLen = 1 + 2 + 1
	IconLen      = 1 + 2 + 4*4 + 4
	CustomLen    = 1 + 4*4
	ToggleLen    = 1
	PushIndexLen = 1 + 2
	PushColorLen = 1 + 4
	PopLen       = 1
)

var typeSizes = [typeEnd - firstType]int{
	TypeBlockInfo - firstType:       BlockInfoLen,
	TypeLineInfo - firstType:        LineInfoLen,
	TypeText - firstType:            TextLen,
	TypeLineBreak - firstType:       LineBreakLen,
	TypeIcon - firstType:            IconLen,
	TypeCustom - firstType:          CustomLen,
	TypeToggleBold - firstType:      ToggleLen,
	TypeToggleItalic - firstType:    ToggleLen,
	TypePushStyle - firstType:       PushIndexLen,
	TypePopStyle - firstType:        PopLen,
	TypePushFont - firstType:        PushIndexLen,
	TypePopFont - firstType:         PopLen,
	TypePushLink - firstType:        PushIndexLen,
	TypePopLink - firstType:         PopLen,
	TypePushColor - firstType:       PushColorLen,
	TypePopColor - firstType:        PopLen,
	TypePushGlyphShader - firstType: PushIndexLen,
	TypePopGlyphShader - firstType:  PopLen,
}

var typeNames = [typeEnd - firstType]string{
	TypeBlockInfo - firstType:       "BlockInfo",
	TypeLineInfo - firstType:        "LineInfo",
	TypeText - firstType:            "Text",
	TypeLineBreak - firstType:       "LineBreak",
	TypeIcon - firstType:            "Icon",
	TypeCustom - firstType:          "Custom",
	TypeToggleBold - firstType:      "ToggleBold",
	TypeToggleItalic - firstType:    "ToggleItalic",
	TypePushStyle - firstType:       "PushStyle",
	TypePopStyle - firstType:        "PopStyle",
	TypePushFont - firstType:        "PushFont",
	TypePopFont - firstType:         "PopFont",
	TypePushLink - firstType:        "PushLink",
	TypePopLink - firstType:         "PopLink",
	TypePushColor - firstType:       "PushColor",
	TypePopColor - firstType:        "PopColor",
	TypePushGlyphShader - firstType: "PushGlyphShader",
	TypePopGlyphShader - firstType:  "PopGlyphShader",
}

// Valid reports whether t is a record type.
func (t Type) Valid() bool {
	return t >= firstType && t < typeEnd
}

// Size returns the record size of t in bytes, or 0 for an invalid type.
func (t Type) Size() int {
	if !t.Valid() {
		return 0
	}
	return typeSizes[t-firstType]
}

// String returns a human-readable name for the type.
func (t Type) String() string {
	if t == TypeNone {
		return "None"
	}
	if !t.Valid() {
		return "Unknown"
	}
	return typeNames[t-firstType]
}

// IsPush reports whether t opens a nested scope.
func (t Type) IsPush() bool {
	switch t {
	case TypePushStyle, TypePushFont, TypePushLink, TypePushColor, TypePushGlyphShader:
		return true
	}
	return false
}

// IsPop reports whether t closes a nested scope.
func (t Type) IsPop() bool {
	switch t {
	case TypePopStyle, TypePopFont, TypePopLink, TypePopColor, TypePopGlyphShader:
		return true
	}
	return false
}

// changesFontStyle reports whether writing t marks the stream as using
// more than one font style.
func (t Type) changesFontStyle() bool {
	switch t {
	case TypeToggleBold, TypeToggleItalic,
		TypePushStyle, TypePopStyle,
		TypePushFont, TypePopFont,
		TypePushLink, TypePopLink:
		return true
	}
	return false
}
