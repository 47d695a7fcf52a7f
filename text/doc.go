// Package text turns strings into positioned glyph coverage bitmaps and
// composites them onto an RGBA buffer.
//
// The pipeline has three stages:
//
//   - FontSource: an immutable, parsed TTF/OTF font, loaded once and shared
//   - Shaper: maps a string to glyph IDs and pen positions
//     (BuiltinShaper by default, GoTextShaper for HarfBuzz shaping)
//   - Layout: rasterizes every shaped glyph into an 8-bit coverage mask
//     positioned relative to the top-left corner of the line box
//
// Draw then blends each coverage byte as an alpha multiplier of the text
// color.
//
// # Example usage
//
//	src, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	l := text.LayoutText(src, nil, "Hello", 24)
//	text.Draw(img, l, 10, 10, color.NRGBA{A: 255})
package text
