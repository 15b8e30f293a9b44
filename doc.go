// hzk is a package for rendering GB2312 ideographic text from HZK
// bitmap font files: flat files of fixed-size 1-bit glyph records,
// one per GB2312 code point, addressed by the classic 94-cells-per-area
// layout.
//
// Common usage only needs a [Font] and something to draw on:
//   font := hzk.New("assets/HZK16", 16)
//   if err := font.Load(); err != nil { ... } // best-effort, see Load docs
//   surface := hzk.NewImageSurface(img, color.Black, color.White)
//   rect := img.Bounds()
//   font.DrawText(surface, "你好, world", &rect)
//
// Glyph records are read lazily from disk and kept in a small bounded
// cache (see the cache subpackage), so drawing the same text twice
// only hits the file once. ASCII spans inside the text are delegated
// to a separate single-byte engine, replaceable via
// [Font.SetASCIIEngine].
//
// Fonts can also be exposed to the golang.org/x/image/font ecosystem
// through [Font.NewFace], and loaded in bulk from a YAML manifest with
// a [Library].
package hzk
