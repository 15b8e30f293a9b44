package hzk

import "image"

import "github.com/bitglyph/hzk/store"

// drawRun blits one double-byte run. Each byte pair addresses a glyph
// record through the cache; set bits become foreground points, unset
// bits become background points when the surface style asks for them.
// Bits are tested most-significant-first, rows padded to whole bytes.
//
// The cursor (rect.Min.X) advances by the font size per glyph, whether
// or not the glyph could be loaded, and drawing stops once it reaches
// the right edge. Only the foreground branch clips against the right
// edge; background fill spills past it, as the engine contract
// documents. A trailing unpaired byte is an incomplete glyph and is
// skipped.
func (self *Font) drawRun(target Surface, run []byte, rect *image.Rectangle) {
	style := target.TextStyle()
	background := target.BackgroundColor()

	// drawing height, clipped to the rectangle
	height := self.size
	if rect.Min.Y+self.size > rect.Max.Y { height = rect.Max.Y - rect.Min.Y }
	rowBytes := (self.size + 7) / 8

	for len(run) >= 2 && rect.Min.X < rect.Max.X {
		record, found := self.cache.Get(store.GlyphCode(run[0], run[1]))
		if found {
			for row := 0; row < height; row++ {
				for col := 0; col < rowBytes; col++ {
					bits := record[row*rowBytes+col]
					for bit := 0; bit < 8; bit++ {
						x := rect.Min.X + 8*col + bit
						if (bits>>(7-bit))&0x01 != 0 && x < rect.Max.X {
							target.DrawPoint(x, rect.Min.Y+row)
						} else if style&StyleDrawBackground != 0 {
							target.DrawColorPoint(x, rect.Min.Y+row, background)
						}
					}
				}
			}
		}

		rect.Min.X += self.size
		run = run[2:]
	}
}
