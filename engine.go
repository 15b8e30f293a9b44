package hzk

import "image"
import "image/color"

// TextStyle carries the drawing flags a [Surface] exposes to font
// engines.
type TextStyle uint16

const (
	// StyleDrawBackground requests that unset glyph bits be painted
	// with the surface's background color instead of being left
	// untouched.
	StyleDrawBackground TextStyle = 1 << 0
)

// A Surface is the pixel-level drawing target font engines paint on.
// It exposes only what glyph blitting needs: a foreground point
// primitive, an explicit-color point primitive and read access to the
// active text style and background color.
//
// [ImageSurface] adapts any draw.Image to this interface.
type Surface interface {
	// Paints one pixel with the surface's current foreground color.
	DrawPoint(x, y int)

	// Paints one pixel with the given color.
	DrawColorPoint(x, y int, clr color.Color)

	// Returns the active text style flags.
	TextStyle() TextStyle

	// Returns the active background color.
	BackgroundColor() color.Color
}

// An Engine is a font engine: it can acquire its resources, draw text
// into a clip rectangle and estimate text extents. [Font] implements
// Engine for GB2312 text; ASCII spans are delegated to a secondary
// Engine (see [Font.SetASCIIEngine]).
//
// DrawText advances rect.Min.X as it draws, leaving the cursor where a
// subsequent draw should continue. Drawing clips against rect and
// never errors; glyphs that can't be produced are skipped.
type Engine interface {
	Load() error
	DrawText(target Surface, text string, rect *image.Rectangle)
	Metrics(text string) (width, height int)
}
