package raster

import (
	"image"
	"image/color"

	"github.com/gogpu/offscreen/internal/blend"
)

// midpoint walks one octant of the midpoint circle of the given radius and
// calls step for every (x, y) offset with x <= y. A negative radius produces
// no steps; radius 0 produces the single offset (0, 0).
func midpoint(radius int, step func(x, y int)) {
	x, y := 0, radius
	p := 1 - radius
	for x <= y {
		step(x, y)
		x++
		if p < 0 {
			p += 2*x + 1
		} else {
			y--
			p += 2*(x-y) + 1
		}
	}
}

// StrokeCircle draws the outline of a circle by mirroring each octant point
// into the other seven.
func StrokeCircle(dst *image.NRGBA, center image.Point, radius int, c color.NRGBA) {
	x0, y0 := center.X, center.Y
	midpoint(radius, func(x, y int) {
		blend.Pixel(dst, x0+x, y0+y, c)
		blend.Pixel(dst, x0+y, y0+x, c)
		blend.Pixel(dst, x0-y, y0+x, c)
		blend.Pixel(dst, x0-x, y0+y, c)
		blend.Pixel(dst, x0-x, y0-y, c)
		blend.Pixel(dst, x0-y, y0-x, c)
		blend.Pixel(dst, x0+y, y0-x, c)
		blend.Pixel(dst, x0+x, y0-y, c)
	})
}

// FillCircle fills a circle with four horizontal chords per octant step.
// Chords may overlap between steps, so translucent colors accumulate on the
// overlapping rows.
func FillCircle(dst *image.NRGBA, center image.Point, radius int, c color.NRGBA) {
	x0, y0 := center.X, center.Y
	midpoint(radius, func(x, y int) {
		StrokeLine(dst, image.Pt(x0-x, y0+y), image.Pt(x0+x, y0+y), c)
		StrokeLine(dst, image.Pt(x0-y, y0+x), image.Pt(x0+y, y0+x), c)
		StrokeLine(dst, image.Pt(x0-x, y0-y), image.Pt(x0+x, y0-y), c)
		StrokeLine(dst, image.Pt(x0-y, y0-x), image.Pt(x0+y, y0-x), c)
	})
}
