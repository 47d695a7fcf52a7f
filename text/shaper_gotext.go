package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/offscreen/internal/logger"
)

// GoTextShaper provides HarfBuzz-level shaping using go-text/typesetting:
// ligatures, GPOS kerning and contextual alternates. Output is still laid out
// left to right on a single line.
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font objects
// (which are read-only) and pools HarfbuzzShaper instances, which are not.
type GoTextShaper struct {
	shaperPool sync.Pool

	// mu protects fontCache.
	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewGoTextShaper creates a new GoTextShaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Shape implements the Shaper interface. Fonts go-text cannot parse fall back
// to BuiltinShaper.
func (s *GoTextShaper) Shape(src *FontSource, text string, px float64) []ShapedGlyph {
	if text == "" || src == nil {
		return nil
	}

	goTextFont, err := s.getOrCreateFont(src)
	if err != nil {
		logger.Load().Warn("go-text font parse failed, using builtin shaper", "font", src.Name(), "err", err)
		return (&BuiltinShaper{}).Shape(src, text, px)
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(goTextFont),
		Size:      toFixed(px),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	return convertGlyphs(output.Glyphs, runeOffsets(text))
}

// getOrCreateFont returns the cached go-text font for src, parsing it on
// first use.
func (s *GoTextShaper) getOrCreateFont(src *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[src]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[src]; ok {
		return f, nil
	}
	face, err := font.ParseTTF(bytes.NewReader(src.data))
	if err != nil {
		return nil, err
	}
	s.fontCache[src] = face.Font
	return face.Font, nil
}

// RemoveSource drops the cached parsed font for src.
func (s *GoTextShaper) RemoveSource(src *FontSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fontCache, src)
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// runeOffsets maps rune indexes to byte offsets in text.
func runeOffsets(text string) []int {
	offs := make([]int, 0, len(text))
	for i := range text {
		offs = append(offs, i)
	}
	return offs
}

// convertGlyphs converts go-text output glyphs to ShapedGlyph values.
func convertGlyphs(glyphs []shaping.Glyph, offs []int) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]ShapedGlyph, len(glyphs))
	var x float64
	for i, g := range glyphs {
		cluster := 0
		if idx := g.TextIndex(); idx >= 0 && idx < len(offs) {
			cluster = offs[idx]
		}
		adv := fixedToFloat(g.Advance)
		result[i] = ShapedGlyph{
			GID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // sfnt glyph indexes are 16-bit
			Cluster:  cluster,
			X:        x + fixedToFloat(g.XOffset),
			Y:        -fixedToFloat(g.YOffset),
			XAdvance: adv,
		}
		x += adv
	}
	return result
}
