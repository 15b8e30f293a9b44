package hzk

import "github.com/bitglyph/hzk/gbenc"

// Widths reported by [Font.Metrics] saturate at this value instead of
// overflowing the 16-bit coordinates small displays use.
const MaxMetricsWidth = 0x7FFF

// Metrics estimates the extent of the given text without drawing it.
// Height is the font size. Width is size/2 per transcoded byte,
// saturating at [MaxMetricsWidth].
//
// This is a coarse fixed-pitch estimate and it does not match
// [Font.DrawText]'s advance model exactly: the rasterizer advances a
// full size per double-byte glyph and size/2 per ASCII byte, so the
// two agree only because a double-byte glyph contributes two
// transcoded bytes. Callers that need exact layout of text the ASCII
// engine renders proportionally must measure by replaying the draw,
// not through this estimate.
func (self *Font) Metrics(text string) (width, height int) {
	encoded, err := gbenc.Encode(text)
	if err != nil { return 0, 0 }
	width = self.size / 2 * len(encoded)
	if width >= MaxMetricsWidth { width = MaxMetricsWidth }
	return width, self.size
}
