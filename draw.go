package hzk

import "image"

import "github.com/bitglyph/hzk/gbenc"

// DrawText draws the given UTF-8 text into rect, advancing rect.Min.X
// as it goes. The text is transcoded to GB2312 and split into runs:
// single-byte runs are handed to the ASCII engine, double-byte runs
// are rasterized from the font's glyph records.
//
// The cursor advance for an ASCII run is fixed at size/2 per byte and
// applied here, regardless of what the ASCII engine reports; the
// engine draws into a scratch copy of the rectangle. Double-byte
// glyphs advance by the full font size each.
//
// A text that cannot be transcoded is not drawn at all. Individual
// glyphs that cannot be loaded are skipped without stopping the run.
func (self *Font) DrawText(target Surface, text string, rect *image.Rectangle) {
	encoded, err := gbenc.Encode(text)
	if err != nil { return }

	ascii := self.asciiEngine()
	var runs runIterator
	for runs.HasNext(encoded) {
		kind, run := runs.Next(encoded)
		if kind == runASCII {
			asciiRect := *rect
			ascii.DrawText(target, string(run), &asciiRect)
			rect.Min.X += self.size / 2 * len(run)
		} else {
			self.drawRun(target, run, rect)
		}
	}
}
