package offscreen

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/offscreen/text"
)

type countingShaper struct {
	calls int
}

func (s *countingShaper) Shape(src *text.FontSource, str string, px float64) []text.ShapedGlyph {
	s.calls++
	return (&text.BuiltinShaper{}).Shape(src, str, px)
}

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.shaper != nil {
		t.Error("default shaper should defer to text.GetShaper")
	}
	if o.background != Transparent {
		t.Errorf("default background = %v, want transparent", o.background)
	}
}

func TestWithShaper(t *testing.T) {
	font, err := LoadFont(goregular.TTF)
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	s := &countingShaper{}
	cv := NewCanvas(50, 30, font, WithShaper(s))
	cv.MeasureText("hi", 12)
	cv.DrawText("hi", Black, 12, 0, 0)
	if s.calls != 2 {
		t.Errorf("shaper calls = %d, want 2", s.calls)
	}
}

func TestWithBackground(t *testing.T) {
	cv := NewCanvas(3, 2, nil, WithBackground(Blue))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := cv.Pixel(x, y); got != Blue {
				t.Fatalf("Pixel(%d,%d) = %v, want blue", x, y, got)
			}
		}
	}
}
