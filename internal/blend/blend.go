// Package blend implements the single compositing rule used by every
// drawing operation: straight-alpha "source over".
//
// All values are non-premultiplied 8-bit channels. Pixel is the only function
// in the module that writes into a canvas buffer.
package blend

import (
	"image"
	"image/color"
)

// Over composites src over dst and returns the result.
//
//	outA = sA + dA*(1-sA)
//	outC = (sC*sA + dC*dA*(1-sA)) / outA
//
// A fully transparent src leaves dst unchanged and a fully opaque src
// replaces it exactly.
func Over(dst, src color.NRGBA) color.NRGBA {
	switch src.A {
	case 0:
		return dst
	case 0xff:
		return src
	}

	srcA := float64(src.A) / 255
	dstA := float64(dst.A) / 255
	invSrcA := 1 - srcA

	outA := srcA + dstA*invSrcA
	if outA == 0 {
		return color.NRGBA{}
	}

	mix := func(s, d uint8) uint8 {
		v := (float64(s)*srcA + float64(d)*dstA*invSrcA) / outA
		return clampByte(v)
	}

	return color.NRGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: clampByte(outA * 255),
	}
}

// Pixel blends c into dst at (x, y). Coordinates outside dst.Bounds() are
// silently ignored.
func Pixel(dst *image.NRGBA, x, y int, c color.NRGBA) {
	if !(image.Point{X: x, Y: y}).In(dst.Rect) {
		return
	}
	if c.A == 0 {
		return
	}
	i := dst.PixOffset(x, y)
	p := dst.Pix[i : i+4 : i+4]
	out := Over(color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}, c)
	p[0] = out.R
	p[1] = out.G
	p[2] = out.B
	p[3] = out.A
}

// clampByte rounds v to the nearest integer in [0, 255].
func clampByte(v float64) uint8 {
	v += 0.5
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
