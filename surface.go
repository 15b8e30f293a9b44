package hzk

import "image/color"
import "image/draw"

// An ImageSurface adapts any draw.Image to the [Surface] interface,
// painting foreground points with a fixed color.
type ImageSurface struct {
	target draw.Image
	foreground color.Color
	background color.Color
	style TextStyle
}

// NewImageSurface wraps the given image as a drawing surface with the
// given foreground and background colors and no style flags set.
func NewImageSurface(target draw.Image, foreground, background color.Color) *ImageSurface {
	return &ImageSurface{
		target: target,
		foreground: foreground,
		background: background,
	}
}

// SetStyle replaces the surface's text style flags.
func (self *ImageSurface) SetStyle(style TextStyle) { self.style = style }

// Target returns the wrapped image.
func (self *ImageSurface) Target() draw.Image { return self.target }

func (self *ImageSurface) DrawPoint(x, y int) {
	self.target.Set(x, y, self.foreground)
}

func (self *ImageSurface) DrawColorPoint(x, y int, clr color.Color) {
	self.target.Set(x, y, clr)
}

func (self *ImageSurface) TextStyle() TextStyle { return self.style }

func (self *ImageSurface) BackgroundColor() color.Color { return self.background }
