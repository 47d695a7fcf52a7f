package text

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// rasterizer turns glyph outlines into 8-bit coverage masks. It reuses one
// sfnt.Buffer and one vector.Rasterizer, so it must not be shared between
// goroutines.
type rasterizer struct {
	src  *FontSource
	ppem fixed.Int26_6
	buf  sfnt.Buffer
	z    vector.Rasterizer
}

func newRasterizer(src *FontSource, px float64) *rasterizer {
	return &rasterizer{src: src, ppem: toFixed(px)}
}

// glyph rasterizes gid with its origin at dot. It returns the pixel-aligned
// bounds of the coverage mask in the same coordinate space as dot, and a
// zero-origin mask of that size. Glyphs without ink return a nil mask.
func (r *rasterizer) glyph(gid GlyphID, dot fixed.Point26_6) (image.Rectangle, *image.Alpha, error) {
	segs, err := r.src.font.LoadGlyph(&r.buf, sfnt.GlyphIndex(gid), r.ppem, nil)
	if err != nil {
		return image.Rectangle{}, nil, err
	}

	b := segs.Bounds().Add(dot)
	rect := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
	if rect.Empty() {
		return rect, nil, nil
	}

	// Outline coordinates relative to the mask's top-left corner.
	biasX := dot.X - fixed.I(rect.Min.X)
	biasY := dot.Y - fixed.I(rect.Min.Y)
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X+biasX) / 64, float32(p.Y+biasY) / 64
	}

	r.z.Reset(rect.Dx(), rect.Dy())
	r.z.DrawOp = draw.Src
	for i, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if i > 0 {
				r.z.ClosePath()
			}
			r.z.MoveTo(pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			r.z.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			r.z.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			r.z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	r.z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	r.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return rect, mask, nil
}
