package hzk

import "image"

import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"

import "github.com/bitglyph/hzk/gbenc"
import "github.com/bitglyph/hzk/store"

// A Face exposes a [Font] as a golang.org/x/image/font.Face, so HZK
// glyphs can be drawn with font.Drawer and friends. Only runes with a
// two-byte GB2312 encoding are covered; ASCII runes report !ok and
// should be handled by a different face.
//
// The whole glyph cell sits above the baseline: ascent equals the font
// size and descent is zero.
//
// As usual for font.Face implementations, a Face reuses an internal
// mask buffer and is not safe for concurrent use; create one Face per
// goroutine over the same Font instead.
type Face struct {
	font *Font
	mask *image.Alpha
}

// NewFace creates a font.Face view over the font.
func (self *Font) NewFace() *Face {
	return &Face{
		font: self,
		mask: image.NewAlpha(image.Rect(0, 0, self.size, self.size)),
	}
}

// Close implements font.Face. The underlying [Font] stays open; close
// it separately through [Font.Close].
func (self *Face) Close() error { return nil }

// Glyph implements font.Face.
func (self *Face) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	record, ok := self.lookup(r)
	if !ok { return }

	size := self.font.size
	rowBytes := (size + 7) / 8
	for i := range self.mask.Pix {
		self.mask.Pix[i] = 0
	}
	for row := 0; row < size; row++ {
		for col := 0; col < rowBytes; col++ {
			bits := record[row*rowBytes+col]
			for bit := 0; bit < 8; bit++ {
				x := 8*col + bit
				if x >= size { break }
				if (bits>>(7-bit))&0x01 != 0 {
					self.mask.Pix[row*self.mask.Stride+x] = 0xFF
				}
			}
		}
	}

	x, y := dot.X.Floor(), dot.Y.Floor()
	dr = image.Rect(x, y-size, x+size, y)
	return dr, self.mask, image.Point{}, fixed.I(size), true
}

// GlyphBounds implements font.Face.
func (self *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	_, ok = self.lookup(r)
	if !ok { return }
	size := self.font.size
	return fixed.R(0, -size, size, 0), fixed.I(size), true
}

// GlyphAdvance implements font.Face.
func (self *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	_, _, ok = gbenc.EncodeRune(r)
	if !ok { return 0, false }
	return fixed.I(self.font.size), true
}

// Kern implements font.Face. Cell fonts have no kerning.
func (self *Face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

// Metrics implements font.Face.
func (self *Face) Metrics() font.Metrics {
	size := fixed.I(self.font.size)
	return font.Metrics{
		Height: size,
		Ascent: size,
		Descent: 0,
		XHeight: size,
		CapHeight: size,
	}
}

func (self *Face) lookup(r rune) ([]byte, bool) {
	b0, b1, ok := gbenc.EncodeRune(r)
	if !ok { return nil, false }
	return self.font.cache.Get(store.GlyphCode(b0, b1))
}
