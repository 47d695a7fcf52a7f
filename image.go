package offscreen

import (
	"image"
	"image/color"

	intImage "github.com/gogpu/offscreen/internal/image"
	"github.com/gogpu/offscreen/text"
)

// Filter selects the resampling kernel used when resizing a bitmap.
type Filter = intImage.Filter

// Resize filters.
const (
	// FilterNearest picks the closest source pixel.
	FilterNearest = intImage.FilterNearest

	// FilterTriangle is a linear (tent) kernel.
	FilterTriangle = intImage.FilterTriangle

	// FilterCatmullRom is a sharp cubic kernel.
	FilterCatmullRom = intImage.FilterCatmullRom

	// FilterGaussian is a soft Gaussian kernel.
	FilterGaussian = intImage.FilterGaussian

	// FilterLanczos3 is a windowed sinc kernel with three lobes.
	FilterLanczos3 = intImage.FilterLanczos3
)

// Interpolation selects how pixels are sampled during rotation.
type Interpolation = intImage.Interpolation

// Rotation interpolation modes.
const (
	InterpNearest  = intImage.InterpNearest
	InterpBilinear = intImage.InterpBilinear
	InterpBicubic  = intImage.InterpBicubic
)

// Load errors. Decode and font failures are distinct so callers can pick a
// different recovery for each.
var (
	ErrDecode        = intImage.ErrDecode
	ErrEmptyData     = intImage.ErrEmptyData
	ErrFontLoad      = text.ErrFontLoad
	ErrEmptyFontData = text.ErrEmptyFontData
)

// ResizeOption resamples a bitmap to Width×Height before it is drawn.
type ResizeOption struct {
	Width, Height int
	Filter        Filter
}

// RotateOption rotates a bitmap by Theta radians (clockwise on screen) about
// (CenterX, CenterY) in bitmap pixel coordinates. Pixels that rotate in from
// outside the bitmap take the Fill color. The rotated bitmap keeps its size.
type RotateOption struct {
	CenterX, CenterY float64
	Theta            float64
	Interpolation    Interpolation
	Fill             color.NRGBA
}

// NewRotateOption returns a RotateOption with nearest-neighbor sampling and a
// transparent fill.
func NewRotateOption(cx, cy, theta float64) RotateOption {
	return RotateOption{
		CenterX:       cx,
		CenterY:       cy,
		Theta:         theta,
		Interpolation: InterpNearest,
		Fill:          Transparent,
	}
}

// LoadPNG decodes in-memory PNG data into a straight-alpha bitmap.
func LoadPNG(data []byte) (*image.NRGBA, error) {
	return intImage.LoadPNG(data)
}

// LoadImage decodes in-memory image data, detecting PNG, JPEG, GIF, BMP,
// TIFF and WebP from the content.
func LoadImage(data []byte) (*image.NRGBA, error) {
	return intImage.LoadFromBytes(data)
}

// OpenImage loads an image file in any format LoadImage understands.
func OpenImage(path string) (*image.NRGBA, error) {
	return intImage.Open(path)
}

// LoadFont parses TTF or OTF font data.
func LoadFont(data []byte) (*text.FontSource, error) {
	return text.NewFontSource(data)
}
