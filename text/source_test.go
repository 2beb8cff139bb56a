package text

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFontSource(t *testing.T) {
	source := loadTestFont(t)
	if source.Name() == "" {
		t.Error("Name() is empty")
	}
	if source.Parsed() == nil {
		t.Fatal("Parsed() = nil")
	}
	if source.Parsed().NumGlyphs() == 0 {
		t.Error("NumGlyphs() = 0")
	}
}

func TestNewFontSourceCopiesData(t *testing.T) {
	data := append([]byte(nil), goregular.TTF...)
	source, err := NewFontSource(data)
	if err != nil {
		t.Fatal(err)
	}
	data[0] ^= 0xff
	if source.Data()[0] == data[0] {
		t.Error("NewFontSource kept a reference to the caller's slice")
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	source, err := NewFontSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile: %v", err)
	}
	defer source.Close()

	if _, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNewFontSourceErrors(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte("not a font")); err == nil {
		t.Error("NewFontSource(garbage) succeeded")
	}
	if _, err := NewFontSource(goregular.TTF, WithParser("missing")); err != nil {
		t.Errorf("unknown parser should fall back to the default, got %v", err)
	}
}

func TestFontSourceCopyProtection(t *testing.T) {
	source := loadTestFont(t)
	defer func() {
		if recover() == nil {
			t.Error("expected panic when using a copied FontSource")
		}
	}()
	copied := &FontSource{addr: source}
	copied.Name()
}

func TestFontSourceClose(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if err := source.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if source.Parsed() != nil {
		t.Error("Parsed() != nil after Close")
	}
}
