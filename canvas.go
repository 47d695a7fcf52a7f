package offscreen

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/offscreen/internal/blend"
	intImage "github.com/gogpu/offscreen/internal/image"
	"github.com/gogpu/offscreen/internal/raster"
	"github.com/gogpu/offscreen/text"
)

// Canvas is an offscreen RGBA drawing surface.
//
// A Canvas owns its pixel buffer and holds a read-only reference to a font.
// Its size is fixed at creation. Every drawing method clips silently to the
// buffer and never fails.
//
// Canvas is not safe for concurrent use; callers must serialize drawing.
type Canvas struct {
	img    *image.NRGBA
	font   *text.FontSource
	shaper text.Shaper
}

// NewCanvas creates a width×height canvas filled with transparent black.
// font may be nil, in which case text methods draw nothing and measure zero.
// Negative dimensions are treated as zero.
func NewCanvas(width, height int, font *text.FontSource, opts ...CanvasOption) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		img:    image.NewNRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		font:   font,
		shaper: o.shaper,
	}
	if o.background != Transparent {
		c.Clear(o.background)
	}
	Logger().Debug("canvas created", "width", c.Width(), "height", c.Height())
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Bounds returns the canvas rectangle (0, 0, Width, Height).
func (c *Canvas) Bounds() Rect {
	return RectFrom(0, 0, c.Width(), c.Height())
}

// Font returns the canvas font.
func (c *Canvas) Font() *text.FontSource {
	return c.font
}

// Image returns the pixel buffer. The buffer is shared, not copied: writes
// through it are visible to the canvas, and the caller must not use it
// concurrently with drawing.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// Pixel returns the color at (x, y), or Transparent outside the canvas.
func (c *Canvas) Pixel(x, y int) color.NRGBA {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return Transparent
	}
	return c.img.NRGBAAt(x, y)
}

// PixelRGB565 returns the color at (x, y) packed as RGB565.
func (c *Canvas) PixelRGB565(x, y int) uint16 {
	return RGB565(c.Pixel(x, y))
}

// Clear composites col over every pixel. An opaque color replaces the
// content; a translucent one is blended like any other fill.
func (c *Canvas) Clear(col color.NRGBA) {
	c.FillRect(c.Bounds(), col)
}

// FillRect fills r, clipped to the canvas. A rectangle entirely off the
// canvas performs no writes.
func (c *Canvas) FillRect(r Rect, col color.NRGBA) {
	clip, ok := r.Intersect(c.Bounds())
	if !ok {
		return
	}
	raster.FillRect(c.img, clip.ImageRect(), col)
}

// StrokeRect outlines r with 1px lines along its outermost pixels.
func (c *Canvas) StrokeRect(r Rect, col color.NRGBA) {
	raster.StrokeRect(c.img, r.ImageRect(), col)
}

// StrokeLine draws a 1px line from start to end, both endpoints included.
func (c *Canvas) StrokeLine(start, end image.Point, col color.NRGBA) {
	raster.StrokeLine(c.img, start, end, col)
}

// FillCircle fills a circle of the given radius.
func (c *Canvas) FillCircle(center image.Point, radius int, col color.NRGBA) {
	raster.FillCircle(c.img, center, radius, col)
}

// StrokeCircle outlines a circle of the given radius.
func (c *Canvas) StrokeCircle(center image.Point, radius int, col color.NRGBA) {
	raster.StrokeCircle(c.img, center, radius, col)
}

// SetPixel blends col into the single pixel (x, y).
func (c *Canvas) SetPixel(x, y int, col color.NRGBA) {
	blend.Pixel(c.img, x, y, col)
}

// DrawImageAt composites src with its top-left corner at (x, y).
// When resize is non-nil src is resampled first; when rotate is non-nil the
// (possibly resized) bitmap is then rotated.
func (c *Canvas) DrawImageAt(src *image.NRGBA, x, y int, resize *ResizeOption, rotate *RotateOption) {
	img := src
	if resize != nil {
		img = intImage.Resize(img, resize.Width, resize.Height, resize.Filter)
	}
	if rotate != nil {
		img = intImage.Rotate(img, rotate.CenterX, rotate.CenterY, rotate.Theta, rotate.Interpolation, rotate.Fill)
	}
	intImage.Overlay(c.img, img, x, y)
}

// DrawImageWithSizeAt resamples src to width×height and draws it at (x, y).
func (c *Canvas) DrawImageWithSizeAt(src *image.NRGBA, x, y, width, height int, filter Filter) {
	c.DrawImageAt(src, x, y, &ResizeOption{Width: width, Height: height, Filter: filter}, nil)
}

// DrawImageWithRotationAt rotates src and draws it at (x, y).
func (c *Canvas) DrawImageWithRotationAt(src *image.NRGBA, x, y int, rotate RotateOption) {
	c.DrawImageAt(src, x, y, nil, &rotate)
}

// DrawImageWithSrcAndDst draws the srcRect region of src scaled to fill
// dstRect.
//
// srcRect must lie within src's bounds; a region crossing the boundary
// panics.
func (c *Canvas) DrawImageWithSrcAndDst(src *image.NRGBA, srcRect, dstRect Rect, filter Filter) {
	sub := intImage.Crop(src, srcRect.ImageRect())
	c.DrawImageWithSizeAt(sub, dstRect.Left, dstRect.Top, dstRect.Width(), dstRect.Height(), filter)
}

// DrawImageWithSrcAndDstAndRotation is DrawImageWithSrcAndDst followed by a
// rotation. The resize filter is derived from the rotation interpolation
// (nearest→Nearest, bilinear→Triangle, bicubic→Lanczos3) so both stages
// resample alike.
//
// srcRect must lie within src's bounds; a region crossing the boundary
// panics.
func (c *Canvas) DrawImageWithSrcAndDstAndRotation(src *image.NRGBA, srcRect, dstRect Rect, rotate RotateOption) {
	sub := intImage.Crop(src, srcRect.ImageRect())
	resize := ResizeOption{
		Width:  dstRect.Width(),
		Height: dstRect.Height(),
		Filter: rotate.Interpolation.ResizeFilter(),
	}
	c.DrawImageAt(sub, dstRect.Left, dstRect.Top, &resize, &rotate)
}

// MeasureText returns the size of s at px pixels per em as a zero-origin
// Rect. The empty string measures zero.
func (c *Canvas) MeasureText(s string, px float64) Rect {
	w, h := text.Measure(c.font, c.shaper, s, px)
	return RectFrom(0, 0, w, h)
}

// DrawText draws s with the top-left corner of its line box at (x, y).
// Coordinates may be negative; glyph pixels off the canvas are clipped.
func (c *Canvas) DrawText(s string, col color.NRGBA, px float64, x, y int) {
	if c.font == nil {
		return
	}
	l := text.LayoutText(c.font, c.shaper, s, px)
	text.Draw(c.img, l, x, y, col)
}

// DrawTextCentered draws s so that its measured box is centered on
// (centerX, centerY), rounding toward the top-left.
func (c *Canvas) DrawTextCentered(s string, col color.NRGBA, px float64, centerX, centerY int) {
	r := c.MeasureText(s, px)
	c.DrawText(s, col, px, centerX-r.Width()/2, centerY-r.Height()/2)
}

// EncodePNG writes the canvas to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return intImage.EncodePNG(w, c.img)
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return intImage.SavePNG(path, c.img)
}

// MeasureText measures s at px pixels per em with font and the process-wide
// shaper.
func MeasureText(s string, px float64, font *text.FontSource) Rect {
	w, h := text.Measure(font, nil, s, px)
	return RectFrom(0, 0, w, h)
}
