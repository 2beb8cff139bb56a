package resource

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/gogpu/richtext"
	"github.com/gogpu/richtext/text"
	"golang.org/x/image/font/gofont/goregular"
)

func TestRegistryLazyKinds(t *testing.T) {
	r := NewRegistry()
	for k := Kind(0); k < numKinds; k++ {
		if r.Has(k) {
			t.Errorf("Has(%v) = true on empty registry", k)
		}
	}

	if _, err := r.Style(0); !errors.Is(err, richtext.ErrUnregistered) {
		t.Errorf("Style(0) error = %v, want ErrUnregistered", err)
	}
	// Unregistered lookups are reported as out of range.
	if _, err := r.Link(0); !errors.Is(err, richtext.ErrOutOfRange) {
		t.Errorf("Link(0) error = %v, want ErrOutOfRange", err)
	}

	if _, err := r.RegisterLink(&Link{Href: "https://example.com"}); err != nil {
		t.Fatal(err)
	}
	if !r.Has(KindLink) {
		t.Error("Has(KindLink) = false after RegisterLink")
	}
	if r.Has(KindStyle) {
		t.Error("RegisterLink created the style table")
	}
}

func TestRegistryIndices(t *testing.T) {
	r := NewRegistry()
	for i, s := range []string{"alpha", "beta", "alpha"} {
		idx, err := r.RegisterSourceString(s)
		if err != nil {
			t.Fatal(err)
		}
		if int(idx) != i {
			t.Errorf("RegisterSourceString(%q) = %d, want %d", s, idx, i)
		}
	}
	if got := r.Count(KindSourceString); got != 3 {
		t.Errorf("Count(SourceString) = %d, want 3", got)
	}

	tests := []struct {
		index uint16
		want  string
	}{
		{0, "alpha"},
		{1, "beta"},
		{2, "alpha"},
	}
	for _, tt := range tests {
		got, err := r.SourceString(tt.index)
		if err != nil {
			t.Fatalf("SourceString(%d): %v", tt.index, err)
		}
		if got != tt.want {
			t.Errorf("SourceString(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}

	_, err := r.SourceString(3)
	var re *richtext.RangeError
	if !errors.As(err, &re) {
		t.Fatalf("SourceString(3) error = %v, want *RangeError", err)
	}
	if re.Index != 3 || re.Len != 3 {
		t.Errorf("RangeError = %+v", re)
	}
}

func TestRegistryNames(t *testing.T) {
	r := NewRegistry()
	bold := &Style{Name: "bold", Bold: true}
	idx, err := r.RegisterStyle("", bold)
	if err != nil {
		t.Fatal(err)
	}

	got, ok := r.StyleByName("bold")
	if !ok || got != bold {
		t.Errorf("StyleByName(bold) = %v, %v", got, ok)
	}
	if i, ok := r.StyleIndex("bold"); !ok || i != idx {
		t.Errorf("StyleIndex(bold) = %d, %v, want %d, true", i, ok, idx)
	}
	if _, ok := r.StyleByName("Bold"); ok {
		t.Error("StyleByName is not case sensitive")
	}
	if _, ok := r.IconByName("bold"); ok {
		t.Error("IconByName found a style")
	}

	other := &Style{Italic: true}
	idx2, _ := r.RegisterStyle("bold", other)
	if i, _ := r.StyleIndex("bold"); i != idx2 {
		t.Errorf("StyleIndex(bold) = %d after re-register, want %d", i, idx2)
	}
	if s, _ := r.Style(idx); s != bold {
		t.Error("re-registering a name replaced the old entry")
	}
}

func TestRegistryAllKinds(t *testing.T) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	face := source.Face(12)
	shaped := text.NewShapedString([]text.ShapedChar{{GlyphIndex: 1}}, text.Props{})
	builder := text.NewShapedStringBuilder(2)
	var sb strings.Builder
	sb.WriteString("source")
	icon := &Icon{Name: "star", Image: image.NewRGBA(image.Rect(0, 0, 8, 6))}
	shader := GlyphShaderFunc(func(_ text.ShapedChar, _ int, base color.RGBA) color.RGBA { return base })

	r := NewRegistry()
	registrations := []struct {
		kind Kind
		fn   func() (uint16, error)
	}{
		{KindSourceBuilder, func() (uint16, error) { return r.RegisterSourceBuilder(&sb) }},
		{KindShapedString, func() (uint16, error) { return r.RegisterShapedString(shaped) }},
		{KindShapedBuilder, func() (uint16, error) { return r.RegisterShapedBuilder(builder) }},
		{KindIcon, func() (uint16, error) { return r.RegisterIcon("", icon) }},
		{KindFont, func() (uint16, error) { return r.RegisterFont("", face) }},
		{KindGlyphShader, func() (uint16, error) { return r.RegisterGlyphShader("identity", shader) }},
	}
	for _, reg := range registrations {
		idx, err := reg.fn()
		if err != nil {
			t.Fatalf("Register%v: %v", reg.kind, err)
		}
		if idx != 0 {
			t.Errorf("Register%v = %d, want 0", reg.kind, idx)
		}
		if r.Count(reg.kind) != 1 {
			t.Errorf("Count(%v) = %d, want 1", reg.kind, r.Count(reg.kind))
		}
	}

	if b, _ := r.SourceBuilder(0); b.String() != "source" {
		t.Errorf("SourceBuilder(0) = %q", b.String())
	}
	if s, _ := r.ShapedString(0); s != shaped {
		t.Error("ShapedString(0) mismatch")
	}
	if b, _ := r.ShapedBuilder(0); b != builder {
		t.Error("ShapedBuilder(0) mismatch")
	}
	if ic, ok := r.IconByName("star"); !ok || ic != icon {
		t.Error("IconByName(star) mismatch")
	}
	if f, ok := r.FontByName(source.Name()); !ok || f != face {
		t.Errorf("FontByName(%q) mismatch", source.Name())
	}
	if _, ok := r.FontIndex(source.Name()); !ok {
		t.Error("FontIndex missing")
	}
	if sh, ok := r.GlyphShaderByName("identity"); !ok || sh == nil {
		t.Error("GlyphShaderByName(identity) missing")
	}
	if i, ok := r.GlyphShaderIndex("identity"); !ok || i != 0 {
		t.Errorf("GlyphShaderIndex(identity) = %d, %v", i, ok)
	}
	if _, ok := r.IconIndex("star"); !ok {
		t.Error("IconIndex(star) missing")
	}
	if w, h := icon.Size(); w != 8 || h != 6 {
		t.Errorf("Icon.Size() = %v, %v, want 8, 6", w, h)
	}
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry()
	_, _ = r.RegisterStyle("a", &Style{})
	_, _ = r.RegisterSourceString("x")
	r.Clear()

	if r.Count(KindStyle) != 0 || r.Count(KindSourceString) != 0 {
		t.Error("Clear left entries")
	}
	if _, err := r.Style(0); !errors.Is(err, richtext.ErrUnregistered) {
		t.Errorf("Style(0) after Clear error = %v, want ErrUnregistered", err)
	}
	if _, ok := r.StyleByName("a"); ok {
		t.Error("StyleByName(a) found after Clear")
	}
}

func TestRegistryFull(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < MaxEntries; i++ {
		if _, err := r.RegisterLink(nil); err != nil {
			t.Fatalf("RegisterLink #%d: %v", i, err)
		}
	}
	if _, err := r.RegisterLink(nil); !errors.Is(err, ErrTableFull) {
		t.Errorf("RegisterLink past MaxEntries error = %v, want ErrTableFull", err)
	}
	if l, err := r.Link(MaxEntries - 1); err != nil || l != nil {
		t.Errorf("Link(last) = %v, %v", l, err)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindSourceString, "SourceString"},
		{KindGlyphShader, "GlyphShader"},
		{KindLink, "Link"},
		{Kind(42), "Kind(42)"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind.String() = %q, want %q", got, tt.want)
		}
	}
}
