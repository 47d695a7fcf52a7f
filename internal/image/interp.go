package image

import (
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
)

// Filter selects the resampling kernel used when resizing a bitmap.
type Filter uint8

const (
	// FilterNearest picks the closest source pixel. Scaling up looks blocky.
	FilterNearest Filter = iota

	// FilterTriangle is a linear (tent) kernel.
	FilterTriangle

	// FilterCatmullRom is a cubic kernel with sharp results.
	FilterCatmullRom

	// FilterGaussian is a soft Gaussian kernel.
	FilterGaussian

	// FilterLanczos3 is a windowed sinc kernel with three lobes.
	FilterLanczos3
)

// String returns a string representation of the filter.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "Nearest"
	case FilterTriangle:
		return "Triangle"
	case FilterCatmullRom:
		return "CatmullRom"
	case FilterGaussian:
		return "Gaussian"
	case FilterLanczos3:
		return "Lanczos3"
	default:
		return "Unknown"
	}
}

// kernel adapts the bild filter definition to an x/image/draw kernel.
func (f Filter) kernel() *draw.Kernel {
	rf := f.resample()
	return &draw.Kernel{Support: rf.Support, At: rf.Fn}
}

func (f Filter) resample() transform.ResampleFilter {
	switch f {
	case FilterTriangle:
		return transform.Linear
	case FilterCatmullRom:
		return transform.CatmullRom
	case FilterGaussian:
		return transform.Gaussian
	case FilterLanczos3:
		return transform.Lanczos
	default:
		return transform.NearestNeighbor
	}
}

// Interpolation defines how source pixels are sampled during rotation.
type Interpolation uint8

const (
	// InterpNearest selects the closest pixel (no interpolation).
	InterpNearest Interpolation = iota

	// InterpBilinear interpolates linearly between 4 neighboring pixels.
	InterpBilinear

	// InterpBicubic interpolates over a 4x4 neighborhood.
	InterpBicubic
)

// String returns a string representation of the interpolation mode.
func (m Interpolation) String() string {
	switch m {
	case InterpNearest:
		return "Nearest"
	case InterpBilinear:
		return "Bilinear"
	case InterpBicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// ResizeFilter returns the resize filter of the same family, so a crop that is
// both resized and rotated is resampled consistently by both stages.
func (m Interpolation) ResizeFilter() Filter {
	switch m {
	case InterpBilinear:
		return FilterTriangle
	case InterpBicubic:
		return FilterLanczos3
	default:
		return FilterNearest
	}
}

func (m Interpolation) interpolator() draw.Interpolator {
	switch m {
	case InterpBilinear:
		return draw.BiLinear
	case InterpBicubic:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}
