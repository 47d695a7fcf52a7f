package offscreen

import (
	"errors"
	"fmt"
	"image/color"
)

// Named colors. All are straight-alpha and fully opaque except Transparent.
// They are values: mutating a copy never affects the package.
var (
	White       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Black       = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	Red         = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	Green       = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	Blue        = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	Transparent = color.NRGBA{}
)

// ErrInvalidHex is returned by Hex for malformed color strings.
var ErrInvalidHex = errors.New("offscreen: invalid hex color")

// RGB565 packs the color channels of c into 5-6-5 bits by truncation.
// Alpha is ignored.
func RGB565(c color.NRGBA) uint16 {
	r := uint16(c.R>>3) & 0x1f
	g := uint16(c.G>>2) & 0x3f
	b := uint16(c.B>>3) & 0x1f
	return r<<11 | g<<5 | b
}

// Hex creates a color from a hex string with an optional leading '#'.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
func Hex(s string) (color.NRGBA, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint8
	a := uint8(255)
	ok := true

	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b) &&
			parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b) &&
			parseHex(hex[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// parseHex reads one or two hex digits into val.
func parseHex(s string, val *uint8) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += c - '0'
		case 'a' <= c && c <= 'f':
			*val += c - 'a' + 10
		case 'A' <= c && c <= 'F':
			*val += c - 'A' + 10
		default:
			return false
		}
	}
	return true
}
