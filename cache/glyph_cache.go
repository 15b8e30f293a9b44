package cache

// A Loader produces the bitmap record for a glyph code on a cache
// miss. Implementations are expected to block on I/O; the cache never
// calls a loader while holding its lock.
type Loader interface {
	LoadGlyph(code uint16) ([]byte, error)
}

// The LoaderFunc type adapts a plain function to the [Loader]
// interface.
type LoaderFunc func(code uint16) ([]byte, error)

func (self LoaderFunc) LoadGlyph(code uint16) ([]byte, error) { return self(code) }

// A GlyphCache serves glyph bitmap records by code, loading missing
// records through an underlying [Loader] and keeping a bounded working
// set in memory.
//
// Implementations must be concurrent-safe; the returned bitmap must be
// treated as read-only by callers.
type GlyphCache interface {
	// Gets the bitmap record for the given glyph code. The bool is
	// false when the record can't be provided (load failure, code
	// outside the font file); callers should skip the glyph rather
	// than abort the whole draw.
	Get(code uint16) ([]byte, bool)

	// Returns the current number of cached records.
	Len() int
}
