package image

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/offscreen/internal/blend"
)

// Crop copies the region r of src into a new zero-origin bitmap.
//
// r must lie within src.Bounds(); a region crossing the boundary is a caller
// error and panics.
func Crop(src *image.NRGBA, r image.Rectangle) *image.NRGBA {
	if r.Dx() < 0 || r.Dy() < 0 || !r.In(src.Bounds()) {
		panic(fmt.Sprintf("image: crop rectangle %v outside source bounds %v", r, src.Bounds()))
	}
	if r.Empty() {
		return image.NewNRGBA(image.Rectangle{})
	}
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := 0; y < r.Dy(); y++ {
		s := src.PixOffset(r.Min.X, r.Min.Y+y)
		copy(dst.Pix[y*dst.Stride:(y+1)*dst.Stride], src.Pix[s:s+r.Dx()*4])
	}
	return dst
}

// Resize resamples src to width×height with the given filter.
// A non-positive target dimension yields an empty bitmap.
//
// FilterNearest copies source pixels unchanged. Kernel filters resample in
// 16-bit premultiplied space, so straight-alpha colors of uniform
// translucent regions survive the round trip.
func Resize(src *image.NRGBA, width, height int, filter Filter) *image.NRGBA {
	if width <= 0 || height <= 0 || src.Bounds().Empty() {
		return image.NewNRGBA(image.Rectangle{})
	}
	if filter == FilterNearest {
		return resizeNearest(src, width, height)
	}
	tmp := image.NewRGBA64(image.Rect(0, 0, width, height))
	filter.kernel().Scale(tmp, tmp.Bounds(), src, src.Bounds(), draw.Src, nil)
	return ToNRGBA(tmp)
}

// resizeNearest maps each destination pixel center to the source pixel
// containing it and copies its bytes.
func resizeNearest(src *image.NRGBA, width, height int) *image.NRGBA {
	b := src.Bounds()
	sw, sh := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	for dy := 0; dy < height; dy++ {
		sy := b.Min.Y + (2*dy+1)*sh/(2*height)
		row := dst.Pix[dy*dst.Stride : dy*dst.Stride+width*4]
		for dx := 0; dx < width; dx++ {
			sx := b.Min.X + (2*dx+1)*sw/(2*width)
			i := src.PixOffset(sx, sy)
			copy(row[dx*4:dx*4+4], src.Pix[i:i+4])
		}
	}
	return dst
}

// Rotate turns src by theta radians about (cx, cy), given in src pixel
// coordinates. The result has the same dimensions as src; pixels whose
// preimage lies outside src are set to fill.
func Rotate(src *image.NRGBA, cx, cy, theta float64, interp Interpolation, fill color.NRGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if b.Empty() {
		return dst
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)

	s2d := RotateAt(theta, cx, cy).Multiply(Translate(float64(-b.Min.X), float64(-b.Min.Y)))
	interp.interpolator().Transform(dst, s2d.Aff3(), src, b, draw.Src, nil)
	return dst
}

// Overlay composites src onto dst with its top-left corner at (x, y).
// Source pixels falling outside dst are dropped.
func Overlay(dst, src *image.NRGBA, x, y int) {
	b := src.Bounds()
	// Skip rows and columns that cannot land inside dst.
	x0 := max(b.Min.X, dst.Rect.Min.X-x+b.Min.X)
	y0 := max(b.Min.Y, dst.Rect.Min.Y-y+b.Min.Y)
	x1 := min(b.Max.X, dst.Rect.Max.X-x+b.Min.X)
	y1 := min(b.Max.Y, dst.Rect.Max.Y-y+b.Min.Y)
	for sy := y0; sy < y1; sy++ {
		for sx := x0; sx < x1; sx++ {
			blend.Pixel(dst, x+sx-b.Min.X, y+sy-b.Min.Y, src.NRGBAAt(sx, sy))
		}
	}
}

// ToNRGBA returns img as a zero-origin *image.NRGBA. The result never aliases
// img's pixel memory.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if n, ok := img.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			s := n.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:(y+1)*dst.Stride], n.Pix[s:s+b.Dx()*4])
		}
		return dst
	}
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
