package raster

import (
	"image"
	"iter"
)

// Line returns the Bresenham scan conversion of the segment p0→p1.
// The sequence starts at p0 and ends at p1, works for any slope and direction
// and visits max(|dx|, |dy|)+1 points.
func Line(p0, p1 image.Point) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		dx := abs(p1.X - p0.X)
		dy := -abs(p1.Y - p0.Y)
		sx, sy := 1, 1
		if p0.X > p1.X {
			sx = -1
		}
		if p0.Y > p1.Y {
			sy = -1
		}

		err := dx + dy
		x, y := p0.X, p0.Y
		for {
			if !yield(image.Point{X: x, Y: y}) {
				return
			}
			if x == p1.X && y == p1.Y {
				return
			}
			e2 := 2 * err
			if e2 >= dy {
				err += dy
				x += sx
			}
			if e2 <= dx {
				err += dx
				y += sy
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
