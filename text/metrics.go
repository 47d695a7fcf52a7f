package text

import "math"

// Metrics holds font metrics at a specific pixel size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font
	// (positive, below baseline).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64
}

// LineHeight returns ascent + descent + line gap.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// BoxHeight returns the integer height of a single line box: the ascent and
// descent each rounded up to whole pixels.
func (m Metrics) BoxHeight() int {
	return int(math.Ceil(m.Ascent)) + int(math.Ceil(m.Descent))
}
