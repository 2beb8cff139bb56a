package resource

import "fmt"

// Kind identifies one table of a Registry.
type Kind uint8

const (
	// KindSourceString holds unshaped strings.
	KindSourceString Kind = iota
	// KindSourceBuilder holds *strings.Builder values.
	KindSourceBuilder
	// KindShapedString holds *text.ShapedString values.
	KindShapedString
	// KindShapedBuilder holds *text.ShapedStringBuilder values.
	KindShapedBuilder
	// KindStyle holds named *Style values.
	KindStyle
	// KindIcon holds named *Icon values.
	KindIcon
	// KindFont holds named text.Face values.
	KindFont
	// KindGlyphShader holds named GlyphShader values.
	KindGlyphShader
	// KindLink holds *Link targets.
	KindLink

	numKinds
)

var kindNames = [numKinds]string{
	KindSourceString:  "SourceString",
	KindSourceBuilder: "SourceBuilder",
	KindShapedString:  "ShapedString",
	KindShapedBuilder: "ShapedBuilder",
	KindStyle:         "Style",
	KindIcon:          "Icon",
	KindFont:          "Font",
	KindGlyphShader:   "GlyphShader",
	KindLink:          "Link",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Named reports whether entries of this kind can be looked up by name.
func (k Kind) Named() bool {
	switch k {
	case KindStyle, KindIcon, KindFont, KindGlyphShader:
		return true
	}
	return false
}
