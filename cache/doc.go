// The cache subpackage defines the [GlyphCache] interface used within
// hzk and provides a bounded default implementation.
//
// Reading glyph records from disk on every draw would make text
// rendering I/O bound, so fonts keep a small working set of decoded
// records in memory. The default cache is bounded by entry count
// ([DefaultCapacity]) rather than bytes: every record of a given font
// has the same size, so counting entries is counting bytes.
package cache
