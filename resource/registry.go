package resource

import (
	"strings"

	"github.com/gogpu/richtext/text"
)

// Registry stores the resources referenced by command records.
// Tables are created lazily and indices stay stable until Clear.
//
// Registering the same value twice creates two entries. Registering a
// second value under an existing name keeps both entries and moves the
// name to the newer one.
type Registry struct {
	sourceStrings  *table[string]
	sourceBuilders *table[*strings.Builder]
	shapedStrings  *table[*text.ShapedString]
	shapedBuilders *table[*text.ShapedStringBuilder]
	styles         *table[*Style]
	icons          *table[*Icon]
	fonts          *table[text.Face]
	shaders        *table[GlyphShader]
	links          *table[*Link]
}

// NewRegistry creates an empty registry. No table exists until the first
// registration of its kind.
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterSourceString interns an unshaped source string.
func (r *Registry) RegisterSourceString(s string) (uint16, error) {
	return register(&r.sourceStrings, KindSourceString, "", s)
}

// SourceString returns the source string at index.
func (r *Registry) SourceString(index uint16) (string, error) {
	return lookup(r.sourceStrings, KindSourceString, index)
}

// RegisterSourceBuilder interns a mutable source buffer.
func (r *Registry) RegisterSourceBuilder(b *strings.Builder) (uint16, error) {
	return register(&r.sourceBuilders, KindSourceBuilder, "", b)
}

// SourceBuilder returns the source builder at index.
func (r *Registry) SourceBuilder(index uint16) (*strings.Builder, error) {
	return lookup(r.sourceBuilders, KindSourceBuilder, index)
}

// RegisterShapedString interns a shaped string.
func (r *Registry) RegisterShapedString(s *text.ShapedString) (uint16, error) {
	return register(&r.shapedStrings, KindShapedString, "", s)
}

// ShapedString returns the shaped string at index.
func (r *Registry) ShapedString(index uint16) (*text.ShapedString, error) {
	return lookup(r.shapedStrings, KindShapedString, index)
}

// RegisterShapedBuilder interns a shaped string builder.
func (r *Registry) RegisterShapedBuilder(b *text.ShapedStringBuilder) (uint16, error) {
	return register(&r.shapedBuilders, KindShapedBuilder, "", b)
}

// ShapedBuilder returns the shaped string builder at index.
func (r *Registry) ShapedBuilder(index uint16) (*text.ShapedStringBuilder, error) {
	return lookup(r.shapedBuilders, KindShapedBuilder, index)
}

// RegisterStyle interns a style. An empty name falls back to s.Name.
func (r *Registry) RegisterStyle(name string, s *Style) (uint16, error) {
	if name == "" && s != nil {
		name = s.Name
	}
	return register(&r.styles, KindStyle, name, s)
}

// Style returns the style at index.
func (r *Registry) Style(index uint16) (*Style, error) {
	return lookup(r.styles, KindStyle, index)
}

// StyleByName returns the style registered under name.
func (r *Registry) StyleByName(name string) (*Style, bool) {
	return byName(r.styles, name)
}

// StyleIndex returns the index of the style registered under name.
func (r *Registry) StyleIndex(name string) (uint16, bool) {
	return indexOf(r.styles, name)
}

// RegisterIcon interns an icon. An empty name falls back to icon.Name.
func (r *Registry) RegisterIcon(name string, icon *Icon) (uint16, error) {
	if name == "" && icon != nil {
		name = icon.Name
	}
	return register(&r.icons, KindIcon, name, icon)
}

// Icon returns the icon at index.
func (r *Registry) Icon(index uint16) (*Icon, error) {
	return lookup(r.icons, KindIcon, index)
}

// IconByName returns the icon registered under name.
func (r *Registry) IconByName(name string) (*Icon, bool) {
	return byName(r.icons, name)
}

// IconIndex returns the index of the icon registered under name.
func (r *Registry) IconIndex(name string) (uint16, bool) {
	return indexOf(r.icons, name)
}

// RegisterFont interns a font face. An empty name falls back to the
// family name of the face's source.
func (r *Registry) RegisterFont(name string, face text.Face) (uint16, error) {
	if name == "" && face != nil && face.Source() != nil {
		name = face.Source().Name()
	}
	return register(&r.fonts, KindFont, name, face)
}

// Font returns the face at index.
func (r *Registry) Font(index uint16) (text.Face, error) {
	return lookup(r.fonts, KindFont, index)
}

// FontByName returns the face registered under name.
func (r *Registry) FontByName(name string) (text.Face, bool) {
	return byName(r.fonts, name)
}

// FontIndex returns the index of the face registered under name.
func (r *Registry) FontIndex(name string) (uint16, bool) {
	return indexOf(r.fonts, name)
}

// RegisterGlyphShader interns a glyph shader.
func (r *Registry) RegisterGlyphShader(name string, shader GlyphShader) (uint16, error) {
	return register(&r.shaders, KindGlyphShader, name, shader)
}

// GlyphShader returns the shader at index.
func (r *Registry) GlyphShader(index uint16) (GlyphShader, error) {
	return lookup(r.shaders, KindGlyphShader, index)
}

// GlyphShaderByName returns the shader registered under name.
func (r *Registry) GlyphShaderByName(name string) (GlyphShader, bool) {
	return byName(r.shaders, name)
}

// GlyphShaderIndex returns the index of the shader registered under name.
func (r *Registry) GlyphShaderIndex(name string) (uint16, bool) {
	return indexOf(r.shaders, name)
}

// RegisterLink interns a link target.
func (r *Registry) RegisterLink(link *Link) (uint16, error) {
	return register(&r.links, KindLink, "", link)
}

// Link returns the link target at index.
func (r *Registry) Link(index uint16) (*Link, error) {
	return lookup(r.links, KindLink, index)
}

// Count returns the number of entries of kind.
func (r *Registry) Count(kind Kind) int {
	switch kind {
	case KindSourceString:
		return r.sourceStrings.len()
	case KindSourceBuilder:
		return r.sourceBuilders.len()
	case KindShapedString:
		return r.shapedStrings.len()
	case KindShapedBuilder:
		return r.shapedBuilders.len()
	case KindStyle:
		return r.styles.len()
	case KindIcon:
		return r.icons.len()
	case KindFont:
		return r.fonts.len()
	case KindGlyphShader:
		return r.shaders.len()
	case KindLink:
		return r.links.len()
	}
	return 0
}

// Has reports whether the table for kind has been created.
func (r *Registry) Has(kind Kind) bool {
	switch kind {
	case KindSourceString:
		return r.sourceStrings != nil
	case KindSourceBuilder:
		return r.sourceBuilders != nil
	case KindShapedString:
		return r.shapedStrings != nil
	case KindShapedBuilder:
		return r.shapedBuilders != nil
	case KindStyle:
		return r.styles != nil
	case KindIcon:
		return r.icons != nil
	case KindFont:
		return r.fonts != nil
	case KindGlyphShader:
		return r.shaders != nil
	case KindLink:
		return r.links != nil
	}
	return false
}

// Clear discards every table. Lookups fail with richtext.ErrUnregistered
// until the kind is registered again.
func (r *Registry) Clear() {
	*r = Registry{}
}
