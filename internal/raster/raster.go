// Package raster provides integer scan conversion for the canvas primitives:
// lines, rectangles and circles.
//
// Every visited pixel is clipped and composited through blend.Pixel; nothing
// in this package writes to a buffer directly.
package raster

import (
	"image"
	"image/color"

	"github.com/gogpu/offscreen/internal/blend"
)

// StrokeLine draws a 1px line from p0 to p1, both endpoints included.
func StrokeLine(dst *image.NRGBA, p0, p1 image.Point, c color.NRGBA) {
	for p := range Line(p0, p1) {
		blend.Pixel(dst, p.X, p.Y, c)
	}
}

// FillRect blends c into every pixel of r that lies inside dst.
func FillRect(dst *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	clip := r.Intersect(dst.Rect)
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			blend.Pixel(dst, x, y, c)
		}
	}
}

// StrokeRect outlines r with four lines along its outermost pixel rows and
// columns (Min..Max-1 on both axes). r is used as given: when Max < Min the
// "right" or "bottom" edge lies to the left of or above the opposite one.
func StrokeRect(dst *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	left, top := r.Min.X, r.Min.Y
	right, bottom := r.Max.X-1, r.Max.Y-1

	StrokeLine(dst, image.Pt(left, top), image.Pt(right, top), c)
	StrokeLine(dst, image.Pt(left, bottom), image.Pt(right, bottom), c)
	StrokeLine(dst, image.Pt(left, top), image.Pt(left, bottom), c)
	StrokeLine(dst, image.Pt(right, top), image.Pt(right, bottom), c)
}
