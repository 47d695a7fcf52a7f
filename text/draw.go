package text

import (
	"image"
	"image/color"

	"github.com/gogpu/offscreen/internal/blend"
)

// Draw composites l onto dst with the top-left corner of the line box at
// (x, y). Each coverage byte v scales the color's alpha to c.A*v/255;
// pixels outside dst are clipped. Negative x and y are allowed.
func Draw(dst *image.NRGBA, l *Layout, x, y int, c color.NRGBA) {
	if l == nil || c.A == 0 {
		return
	}
	for i := range l.Glyphs {
		g := &l.Glyphs[i]
		if g.Mask == nil {
			continue
		}
		w, h := g.Width(), g.Height()
		for dy := 0; dy < h; dy++ {
			row := g.Mask.Pix[dy*g.Mask.Stride : dy*g.Mask.Stride+w]
			for dx, v := range row {
				if v == 0 {
					continue
				}
				p := c
				p.A = uint8(uint32(c.A) * uint32(v) / 255)
				blend.Pixel(dst, x+g.X+dx, y+g.Y+dy, p)
			}
		}
	}
}
