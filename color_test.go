package offscreen

import (
	"errors"
	"image/color"
	"testing"
)

func TestRGB565(t *testing.T) {
	tests := []struct {
		c    color.NRGBA
		want uint16
	}{
		{White, 0xFFFF},
		{Black, 0x0000},
		{Red, 0xF800},
		{Green, 0x07E0},
		{Blue, 0x001F},
		{color.NRGBA{R: 8, G: 4, B: 8, A: 255}, 0x0821},
		{color.NRGBA{R: 7, G: 3, B: 7, A: 255}, 0x0000},
		{color.NRGBA{R: 255, G: 255, B: 255, A: 0}, 0xFFFF},
	}
	for _, tt := range tests {
		if got := RGB565(tt.c); got != tt.want {
			t.Errorf("RGB565(%v) = %#04x, want %#04x", tt.c, got, tt.want)
		}
	}
}

func TestNamedColors_AreValues(t *testing.T) {
	c := Red
	c.G = 200
	if Red.G != 0 {
		t.Errorf("mutating a copy changed Red to %v", Red)
	}
	if Transparent.A != 0 {
		t.Errorf("Transparent.A = %d, want 0", Transparent.A)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#ff0000", Red},
		{"00ff00", Green},
		{"#00f", Blue},
		{"#F00", Red},
		{"#f008", color.NRGBA{R: 255, A: 0x88}},
		{"#11223344", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}},
		{"AbCdEf", color.NRGBA{R: 0xab, G: 0xcd, B: 0xef, A: 255}},
	}
	for _, tt := range tests {
		got, err := Hex(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("Hex(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestHex_Invalid(t *testing.T) {
	for _, s := range []string{"", "#", "#12345", "#gggggg", "red", "#1234567890"} {
		if _, err := Hex(s); !errors.Is(err, ErrInvalidHex) {
			t.Errorf("Hex(%q) err = %v, want ErrInvalidHex", s, err)
		}
	}
}
