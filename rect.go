package offscreen

import "image"

// Rect is an axis-aligned integer rectangle. Right and Bottom are exclusive
// when the rectangle is used as a pixel region.
//
// Rect is never normalized: Width and Height are negative when Right < Left
// or Bottom < Top, and every method works on the edges as given.
type Rect struct {
	Left, Top, Right, Bottom int
}

// NewRect creates a Rect from its four edges.
func NewRect(left, top, right, bottom int) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// RectFrom creates a Rect from its top-left corner and size.
func RectFrom(x, y, width, height int) Rect {
	return Rect{Left: x, Top: y, Right: x + width, Bottom: y + height}
}

// Width returns Right - Left.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns Bottom - Top.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Inflate grows r by dx on the left and right and by dy on the top and bottom.
func (r *Rect) Inflate(dx, dy int) {
	r.Left -= dx
	r.Right += dx
	r.Top -= dy
	r.Bottom += dy
}

// Deflate shrinks r by dx on the left and right and by dy on the top and bottom.
func (r *Rect) Deflate(dx, dy int) {
	r.Left += dx
	r.Right -= dx
	r.Top += dy
	r.Bottom -= dy
}

// Offset translates r by (dx, dy).
func (r *Rect) Offset(dx, dy int) {
	r.Left += dx
	r.Right += dx
	r.Top += dy
	r.Bottom += dy
}

// Contain reports whether (x, y) lies in r, all four edges included.
func (r Rect) Contain(x, y int) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// Center returns (Left + Width/2, Top + Height/2) using integer division,
// so odd sizes round toward the top-left.
func (r Rect) Center() (x, y int) {
	return r.Left + r.Width()/2, r.Top + r.Height()/2
}

// SetCenter moves r so that it is centered on (cx, cy), keeping the
// integer half width and half height. Odd sizes lose one pixel.
func (r *Rect) SetCenter(cx, cy int) {
	hw := r.Width() / 2
	hh := r.Height() / 2
	r.Left = cx - hw
	r.Right = cx + hw
	r.Top = cy - hh
	r.Bottom = cy + hh
}

// SetPosition moves the top-left corner to (left, top), keeping the size.
func (r *Rect) SetPosition(left, top int) {
	w, h := r.Width(), r.Height()
	r.Left = left
	r.Right = left + w
	r.Top = top
	r.Bottom = top + h
}

// SetSize resizes r around its integer midpoint. Odd sizes lose one pixel.
func (r *Rect) SetSize(width, height int) {
	cx := (r.Left + r.Right) / 2
	cy := (r.Top + r.Bottom) / 2
	r.Left = cx - width/2
	r.Right = cx + width/2
	r.Top = cy - height/2
	r.Bottom = cy + height/2
}

// Intersect returns the overlap of r and o. ok is false when the rectangles
// do not overlap; rectangles that only touch intersect with zero area.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	out := Rect{
		Left:   max(r.Left, o.Left),
		Top:    max(r.Top, o.Top),
		Right:  min(r.Right, o.Right),
		Bottom: min(r.Bottom, o.Bottom),
	}
	if out.Right < out.Left || out.Bottom < out.Top {
		return Rect{}, false
	}
	return out, true
}

// ImageRect converts r to an image.Rectangle without canonicalizing it.
func (r Rect) ImageRect() image.Rectangle {
	return image.Rectangle{
		Min: image.Point{X: r.Left, Y: r.Top},
		Max: image.Point{X: r.Right, Y: r.Bottom},
	}
}
