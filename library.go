package hzk

import "os"
import "fmt"
import "errors"

import "gopkg.in/yaml.v3"

// Returned by [Library.AddFont] when a font with the same name is
// already present.
var ErrAlreadyPresent = errors.New("font already present in the library")

// A collection of fonts accessible by name.
//
// The goal of a Library is to make it easy to set up the fonts of an
// application in bulk, typically from a YAML manifest (see
// [Library.LoadManifest]), and keep them all in a single place.
//
// A Library doesn't register anything with a host GUI; dispatching
// draw calls to the right engine stays the caller's business.
type Library struct {
	fonts map[string]*Font
}

// NewLibrary creates a new, empty font [Library].
func NewLibrary() *Library {
	return &Library{
		fonts: make(map[string]*Font),
	}
}

// Size returns the current number of fonts in the library.
func (self *Library) Size() int { return len(self.fonts) }

// HasFont reports whether a font with the given name exists in the
// library.
func (self *Library) HasFont(name string) bool {
	_, found := self.fonts[name]
	return found
}

// GetFont returns the font with the given name, or nil if not found.
func (self *Library) GetFont(name string) *Font {
	font, found := self.fonts[name]
	if found { return font }
	return nil
}

// AddFont adds the given font under the given name. If another font
// with the same name is already present, [ErrAlreadyPresent] is
// returned. Nil fonts panic.
func (self *Library) AddFont(name string, font *Font) error {
	if font == nil { panic("nil font") }
	if self.HasFont(name) {
		return fmt.Errorf("%q: %w", name, ErrAlreadyPresent)
	}
	self.fonts[name] = font
	return nil
}

// RemoveFont removes the named font, returning false if it wasn't
// found. The font's resources are not closed.
func (self *Library) RemoveFont(name string) bool {
	_, found := self.fonts[name]
	if !found { return false }
	delete(self.fonts, name)
	return true
}

// EachFont calls the given function once per font in the library,
// until the function returns a non-nil error, which is then returned.
// Iteration order is undefined.
func (self *Library) EachFont(fn func(name string, font *Font) error) error {
	for name, font := range self.fonts {
		err := fn(name, font)
		if err != nil { return err }
	}
	return nil
}

// A FontSpec is one entry of a library manifest.
type FontSpec struct {
	// Name the font is registered under.
	Name string `yaml:"name"`

	// Path of the HZK glyph file.
	Path string `yaml:"path"`

	// Size is the glyph pixel size.
	Size int `yaml:"size"`
}

// Validate checks the spec for missing or nonsensical fields.
func (self *FontSpec) Validate() error {
	if self.Name == "" { return errors.New("font spec: missing name") }
	if self.Path == "" { return fmt.Errorf("font spec %q: missing path", self.Name) }
	if self.Size <= 0 { return fmt.Errorf("font spec %q: size must be positive", self.Name) }
	return nil
}

type libraryManifest struct {
	Fonts []FontSpec `yaml:"fonts"`
}

// LoadManifest reads a YAML manifest of the form
//
//	fonts:
//	  - name: hzk16
//	    path: assets/HZK16
//	    size: 16
//
// creating and adding one font per entry. Each font's file is opened
// best-effort through [Font.Load]: open failures are logged and the
// font is still added, drawing blank cells until the file appears.
// Returns the number of fonts added and the first manifest error.
func (self *Library) LoadManifest(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("hzk manifest: %w", err)
	}

	var manifest libraryManifest
	err = yaml.Unmarshal(data, &manifest)
	if err != nil {
		return 0, fmt.Errorf("hzk manifest: %w", err)
	}

	added := 0
	for i := range manifest.Fonts {
		spec := &manifest.Fonts[i]
		err := spec.Validate()
		if err != nil { return added, err }
		font := New(spec.Path, spec.Size)
		err = self.AddFont(spec.Name, font)
		if err != nil { return added, err }
		_ = font.Load() // best-effort, already logged
		added += 1
	}
	return added, nil
}
