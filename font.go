package hzk

import "log"

import "github.com/bitglyph/hzk/cache"
import "github.com/bitglyph/hzk/store"

// A Font is one loaded HZK bitmap font: a path to a fixed-record glyph
// file, a pixel size, and a bounded in-memory cache of glyph records.
//
// Fonts are safe for concurrent use. The zero value is not usable;
// create fonts through [New].
type Font struct {
	size int
	store *store.Store
	cache cache.GlyphCache
	ascii Engine
	logger *log.Logger
}

// New creates a [Font] for the HZK file at the given path, with glyphs
// of the given pixel size (both height and nominal width). The file is
// not opened until [Font.Load] or the first draw.
func New(path string, size int) *Font {
	fileStore := store.New(path, store.RecordSize(size))
	return &Font{
		size: size,
		store: fileStore,
		cache: cache.New(fileStore, cache.DefaultCapacity),
	}
}

// Size returns the font's pixel size.
func (self *Font) Size() int { return self.size }

// Path returns the font file path.
func (self *Font) Path() string { return self.store.Path() }

// SetASCIIEngine replaces the engine used for single-byte spans inside
// mixed text. Passing nil restores the built-in basicfont engine.
func (self *Font) SetASCIIEngine(engine Engine) { self.ascii = engine }

// SetCache replaces the font's glyph cache. Passing nil restores a
// default bounded cache over the font's file store.
func (self *Font) SetCache(glyphCache cache.GlyphCache) {
	if glyphCache == nil {
		glyphCache = cache.New(self.store, cache.DefaultCapacity)
	}
	self.cache = glyphCache
}

// SetLogger replaces the logger used for load diagnostics. The default
// is [log.Default].
func (self *Font) SetLogger(logger *log.Logger) { self.logger = logger }

func (self *Font) logf(format string, args ...any) {
	logger := self.logger
	if logger == nil { logger = log.Default() }
	logger.Printf(format, args...)
}

// Load opens the font file. Failure is logged and returned, but it is
// not fatal: draws on an unloadable font simply leave glyph cells
// blank (or background-filled), and the open is retried on the next
// glyph load.
func (self *Font) Load() error {
	err := self.store.Open()
	if err != nil {
		self.logf("hzk: could not open font file %q: %v", self.store.Path(), err)
	}
	return err
}

// Close releases the font's file handle. The font remains usable; the
// next glyph load reopens the file.
func (self *Font) Close() error {
	return self.store.Close()
}

// asciiEngine returns the engine for single-byte spans.
func (self *Font) asciiEngine() Engine {
	if self.ascii != nil { return self.ascii }
	return defaultASCIIEngine(self.size)
}
