package offscreen

import (
	"image/color"

	"github.com/gogpu/offscreen/text"
)

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	cv := offscreen.NewCanvas(320, 240, font,
//	    offscreen.WithShaper(text.NewGoTextShaper()),
//	    offscreen.WithBackground(offscreen.Black),
//	)
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	shaper     text.Shaper
	background color.NRGBA
}

func defaultOptions() canvasOptions {
	return canvasOptions{
		shaper:     nil, // text.GetShaper() at draw time
		background: Transparent,
	}
}

// WithShaper sets the text shaper used by the canvas. Without it the canvas
// uses the process-wide text.GetShaper().
func WithShaper(s text.Shaper) CanvasOption {
	return func(o *canvasOptions) {
		o.shaper = s
	}
}

// WithBackground fills the new canvas with c instead of transparent black.
func WithBackground(c color.NRGBA) CanvasOption {
	return func(o *canvasOptions) {
		o.background = c
	}
}
