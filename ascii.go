package hzk

import "image"
import "image/color"

import "golang.org/x/image/font"
import "golang.org/x/image/font/basicfont"
import "golang.org/x/image/math/fixed"

// A BasicASCIIEngine renders single-byte spans through an
// x/image/font.Face at a fixed pitch of half the ideograph size, so
// two ASCII cells line up with one ideograph cell. It is the engine
// [Font] falls back to when no other ASCII engine is configured.
type BasicASCIIEngine struct {
	face font.Face
	size int
}

// NewBasicASCIIEngine creates an ASCII engine over the given face,
// matched to ideographs of the given pixel size.
func NewBasicASCIIEngine(face font.Face, size int) *BasicASCIIEngine {
	return &BasicASCIIEngine{ face: face, size: size }
}

func defaultASCIIEngine(size int) Engine {
	return &BasicASCIIEngine{ face: basicfont.Face7x13, size: size }
}

// Load implements [Engine]. Faces carry no deferred resources, so
// this never fails.
func (self *BasicASCIIEngine) Load() error { return nil }

// DrawText draws the given ASCII text into rect at a fixed pitch of
// size/2 pixels per character, advancing rect.Min.X accordingly.
func (self *BasicASCIIEngine) DrawText(target Surface, text string, rect *image.Rectangle) {
	style := target.TextStyle()
	background := target.BackgroundColor()
	pitch := self.size / 2
	ascent := self.face.Metrics().Ascent.Ceil()

	for i := 0; i < len(text) && rect.Min.X < rect.Max.X; i++ {
		if style&StyleDrawBackground != 0 {
			self.fillCell(target, rect, pitch, background)
		}

		dot := fixed.P(rect.Min.X, rect.Min.Y+ascent)
		dr, mask, maskp, _, ok := self.face.Glyph(dot, rune(text[i]))
		if ok {
			for y := dr.Min.Y; y < dr.Max.Y && y < rect.Max.Y; y++ {
				for x := dr.Min.X; x < dr.Max.X && x < rect.Max.X; x++ {
					_, _, _, alpha := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
					if alpha >= 0x8000 {
						target.DrawPoint(x, y)
					}
				}
			}
		}

		rect.Min.X += pitch
	}
}

func (self *BasicASCIIEngine) fillCell(target Surface, rect *image.Rectangle, pitch int, background color.Color) {
	for y := rect.Min.Y; y < rect.Min.Y+self.size && y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Min.X+pitch && x < rect.Max.X; x++ {
			target.DrawColorPoint(x, y, background)
		}
	}
}

// Metrics reports size/2 per character and the ideograph size as
// height, consistent with the fixed-pitch draw model.
func (self *BasicASCIIEngine) Metrics(text string) (width, height int) {
	width = self.size / 2 * len(text)
	if width >= MaxMetricsWidth { width = MaxMetricsWidth }
	return width, self.size
}
