package text

import (
	"image"
	"math"

	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/offscreen/internal/logger"
)

// Glyph is a rasterized glyph placed within a Layout.
type Glyph struct {
	GID     GlyphID
	Cluster int

	// X and Y locate the top-left corner of Mask relative to the top-left
	// corner of the line box.
	X, Y int

	// Advance is the horizontal pen advance in pixels.
	Advance float64

	// Mask holds 8-bit coverage with bounds (0,0)-(w,h).
	// It is nil for glyphs without ink, such as spaces.
	Mask *image.Alpha
}

// Width returns the coverage bitmap width.
func (g *Glyph) Width() int {
	if g.Mask == nil {
		return 0
	}
	return g.Mask.Rect.Dx()
}

// Height returns the coverage bitmap height.
func (g *Glyph) Height() int {
	if g.Mask == nil {
		return 0
	}
	return g.Mask.Rect.Dy()
}

// Layout is a single line of text laid out at a fixed pixel size.
type Layout struct {
	Glyphs []Glyph

	// Width is the total pen advance rounded up to whole pixels.
	Width int

	// Height is the line box height (Metrics.BoxHeight).
	Height int

	// Baseline is the distance from the top of the line box to the baseline.
	Baseline int
}

// LayoutText shapes s with shaper (GetShaper() when nil) at px pixels per
// em and rasterizes every glyph. The text is NFC-normalized first.
//
// An empty string, a nil source or a non-positive size yield an empty
// Layout with zero width and height.
func LayoutText(src *FontSource, shaper Shaper, s string, px float64) *Layout {
	l := &Layout{}
	if src == nil || s == "" || !(px > 0) {
		return l
	}
	if shaper == nil {
		shaper = GetShaper()
	}

	s = norm.NFC.String(s)
	shaped := shaper.Shape(src, s, px)
	if len(shaped) == 0 {
		return l
	}

	m := src.Metrics(px)
	l.Baseline = int(math.Ceil(m.Ascent))
	l.Height = m.BoxHeight()

	r := newRasterizer(src, px)
	l.Glyphs = make([]Glyph, 0, len(shaped))
	var advance float64
	for _, sg := range shaped {
		dot := fixed.Point26_6{
			X: toFixed(sg.X),
			Y: fixed.I(l.Baseline) + toFixed(sg.Y),
		}
		g := Glyph{GID: sg.GID, Cluster: sg.Cluster, Advance: sg.XAdvance}
		rect, mask, err := r.glyph(sg.GID, dot)
		if err != nil {
			logger.Load().Debug("glyph rasterization skipped", "gid", sg.GID, "err", err)
		} else if mask != nil {
			g.X, g.Y, g.Mask = rect.Min.X, rect.Min.Y, mask
		}
		l.Glyphs = append(l.Glyphs, g)
		advance = max(advance, sg.X+sg.XAdvance)
	}
	l.Width = int(math.Ceil(advance))
	return l
}

// Measure returns the size of s at px pixels per em as laid out by
// LayoutText. The empty string measures (0, 0).
func Measure(src *FontSource, shaper Shaper, s string, px float64) (width, height int) {
	if src == nil || s == "" || !(px > 0) {
		return 0, 0
	}
	if shaper == nil {
		shaper = GetShaper()
	}
	shaped := shaper.Shape(src, norm.NFC.String(s), px)
	if len(shaped) == 0 {
		return 0, 0
	}
	var advance float64
	for _, sg := range shaped {
		advance = max(advance, sg.X+sg.XAdvance)
	}
	return int(math.Ceil(advance)), src.Metrics(px).BoxHeight()
}
