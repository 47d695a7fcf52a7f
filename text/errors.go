package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontLoad is returned when font data cannot be parsed.
	ErrFontLoad = errors.New("text: font load failed")
)
