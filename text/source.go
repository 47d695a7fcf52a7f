package text

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/offscreen/internal/logger"
)

// FontSource represents a loaded font file.
//
// A FontSource is immutable after construction. It is safe to share one
// FontSource between canvases and goroutines: every query allocates its own
// sfnt.Buffer.
type FontSource struct {
	data []byte
	font *sfnt.Font
	name string
}

// NewFontSource parses font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontLoad, err)
	}

	s := &FontSource{data: dataCopy, font: f}
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	logger.Load().Debug("font loaded", "name", s.name, "glyphs", f.NumGlyphs(), "bytes", len(dataCopy))
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Name returns the font family name, or "" if the font has none.
func (s *FontSource) Name() string {
	return s.name
}

// NumGlyphs returns the number of glyphs in the font.
func (s *FontSource) NumGlyphs() int {
	return s.font.NumGlyphs()
}

// Metrics returns the font metrics at px pixels per em.
func (s *FontSource) Metrics(px float64) Metrics {
	var buf sfnt.Buffer
	m, err := s.font.Metrics(&buf, toFixed(px), font.HintingNone)
	if err != nil {
		return Metrics{}
	}
	ascent := fixedToFloat(m.Ascent)
	descent := math.Abs(fixedToFloat(m.Descent))
	return Metrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: max(0, fixedToFloat(m.Height)-ascent-descent),
	}
}

// toFixed converts a pixel size to fixed.Int26_6.
func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
