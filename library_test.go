package hzk

import "os"
import "errors"
import "path/filepath"
import "testing"

import "github.com/bitglyph/hzk/store"

func TestLibraryAddGetRemove(t *testing.T) {
	library := NewLibrary()
	if library.Size() != 0 { t.Fatalf("expected 0 fonts, got %d", library.Size()) }

	font := New("unused", 16)
	err := library.AddFont("hzk16", font)
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	if !library.HasFont("hzk16") { t.Fatal("expected to find font") }
	if library.GetFont("hzk16") != font { t.Fatal("wrong font") }
	if library.GetFont("missing") != nil { t.Fatal("expected nil font") }

	err = library.AddFont("hzk16", New("other", 16))
	if !errors.Is(err, ErrAlreadyPresent) {
		t.Fatalf("expected ErrAlreadyPresent, got %v", err)
	}

	if !library.RemoveFont("hzk16") { t.Fatal("expected removal") }
	if library.RemoveFont("hzk16") { t.Fatal("expected no removal") }
}

func TestLibraryEachFont(t *testing.T) {
	library := NewLibrary()
	_ = library.AddFont("a", New("unused", 12))
	_ = library.AddFont("b", New("unused", 16))

	seen := make(map[string]int)
	err := library.EachFont(func(name string, font *Font) error {
		seen[name] = font.Size()
		return nil
	})
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	if len(seen) != 2 || seen["a"] != 12 || seen["b"] != 16 {
		t.Fatalf("unexpected fonts seen: %v", seen)
	}

	stop := errors.New("stop")
	err = library.EachFont(func(string, *Font) error { return stop })
	if !errors.Is(err, stop) { t.Fatalf("expected stop error, got %v", err) }
}

func TestLibraryLoadManifest(t *testing.T) {
	size := 16
	record := make([]byte, store.RecordSize(size))
	fontPath := writeFontFixture(t, size, map[uint16][]byte{
		store.GlyphCode(0xA1, 0xA1): record,
	})

	manifest := "fonts:\n" +
		"  - name: hzk16\n" +
		"    path: " + fontPath + "\n" +
		"    size: 16\n"
	manifestPath := filepath.Join(t.TempDir(), "fonts.yaml")
	err := os.WriteFile(manifestPath, []byte(manifest), 0o644)
	if err != nil { t.Fatal(err) }

	library := NewLibrary()
	added, err := library.LoadManifest(manifestPath)
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	if added != 1 { t.Fatalf("expected 1 font added, got %d", added) }

	font := library.GetFont("hzk16")
	if font == nil { t.Fatal("expected to find font") }
	if font.Size() != 16 { t.Fatalf("expected size 16, got %d", font.Size()) }
	if font.Path() != fontPath { t.Fatalf("expected path %q, got %q", fontPath, font.Path()) }
	_ = font.Close()
}

func TestLibraryLoadManifestInvalidSpec(t *testing.T) {
	manifestPath := filepath.Join(t.TempDir(), "fonts.yaml")
	err := os.WriteFile(manifestPath, []byte("fonts:\n  - name: broken\n    size: 16\n"), 0o644)
	if err != nil { t.Fatal(err) }

	library := NewLibrary()
	added, err := library.LoadManifest(manifestPath)
	if err == nil { t.Fatal("expected an error") }
	if added != 0 { t.Fatalf("expected 0 fonts added, got %d", added) }
}

func TestLibraryLoadManifestMissingFile(t *testing.T) {
	library := NewLibrary()
	_, err := library.LoadManifest(filepath.Join(t.TempDir(), "no-such-manifest"))
	if err == nil { t.Fatal("expected an error") }
}

func TestFontSpecValidate(t *testing.T) {
	spec := FontSpec{Name: "x", Path: "y", Size: 16}
	if spec.Validate() != nil { t.Fatal("expected valid spec") }
	if (&FontSpec{Path: "y", Size: 16}).Validate() == nil { t.Fatal("expected error") }
	if (&FontSpec{Name: "x", Size: 16}).Validate() == nil { t.Fatal("expected error") }
	if (&FontSpec{Name: "x", Path: "y"}).Validate() == nil { t.Fatal("expected error") }
}
