package text

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// GlyphID is a glyph index within a font.
type GlyphID uint16

// ShapedGlyph is a glyph positioned on a single line.
// X and Y are pen offsets in pixels relative to the line origin on the
// baseline.
type ShapedGlyph struct {
	GID      GlyphID
	Cluster  int // byte offset of the source text that produced the glyph
	X, Y     float64
	XAdvance float64
}

// Shaper converts text to positioned glyphs.
// Implementations must lay glyphs out left to right on one line.
type Shaper interface {
	Shape(src *FontSource, text string, px float64) []ShapedGlyph
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = &BuiltinShaper{}
)

// SetShaper sets the process-wide default shaper.
// Pass nil to reset to BuiltinShaper.
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = &BuiltinShaper{}
	}
	globalShaper = s
}

// GetShaper returns the process-wide default shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// BuiltinShaper positions glyphs with the font's advance widths and its
// kern table, one glyph per rune. No ligatures, contextual forms or
// reordering are applied.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(src *FontSource, text string, px float64) []ShapedGlyph {
	if text == "" || src == nil {
		return nil
	}

	var buf sfnt.Buffer
	ppem := toFixed(px)
	result := make([]ShapedGlyph, 0, len(text))

	var pen fixed.Int26_6
	var prev sfnt.GlyphIndex
	for i, r := range text {
		gid, err := src.font.GlyphIndex(&buf, r)
		if err != nil {
			gid = 0
		}
		if len(result) > 0 {
			// ErrNotFound just means the font has no kern pair.
			if k, err := src.font.Kern(&buf, prev, gid, ppem, font.HintingNone); err == nil {
				pen += k
			}
		}
		adv, err := src.font.GlyphAdvance(&buf, gid, ppem, font.HintingNone)
		if err != nil {
			adv = 0
		}
		result = append(result, ShapedGlyph{
			GID:      GlyphID(gid),
			Cluster:  i,
			X:        fixedToFloat(pen),
			XAdvance: fixedToFloat(adv),
		})
		pen += adv
		prev = gid
	}
	return result
}
