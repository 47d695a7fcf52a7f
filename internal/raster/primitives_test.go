package raster

import (
	"image"
	"image/color"
	"slices"
	"testing"
)

var opaqueRed = color.NRGBA{R: 255, A: 255}

func collect(p0, p1 image.Point) []image.Point {
	return slices.Collect(Line(p0, p1))
}

// painted returns the set of pixels that differ from transparent.
func painted(img *image.NRGBA) map[image.Point]bool {
	out := make(map[image.Point]bool)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y).A != 0 {
				out[image.Pt(x, y)] = true
			}
		}
	}
	return out
}

func TestLine_Horizontal(t *testing.T) {
	pts := collect(image.Pt(0, 0), image.Pt(10, 0))
	if len(pts) != 11 {
		t.Fatalf("len = %d, want 11", len(pts))
	}
	for i, p := range pts {
		if p != image.Pt(i, 0) {
			t.Errorf("pts[%d] = %v, want (%d,0)", i, p, i)
		}
	}
}

func TestLine_Endpoints(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 image.Point
		count  int
	}{
		{"single point", image.Pt(3, 3), image.Pt(3, 3), 1},
		{"vertical down", image.Pt(2, 0), image.Pt(2, 7), 8},
		{"vertical up", image.Pt(2, 7), image.Pt(2, 0), 8},
		{"diagonal", image.Pt(0, 0), image.Pt(5, 5), 6},
		{"reverse diagonal", image.Pt(5, 0), image.Pt(0, 5), 6},
		{"shallow", image.Pt(0, 0), image.Pt(9, 3), 10},
		{"steep negative", image.Pt(4, 9), image.Pt(1, -2), 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := collect(tt.p0, tt.p1)
			if len(pts) != tt.count {
				t.Errorf("len = %d, want %d", len(pts), tt.count)
			}
			if pts[0] != tt.p0 {
				t.Errorf("first = %v, want %v", pts[0], tt.p0)
			}
			if pts[len(pts)-1] != tt.p1 {
				t.Errorf("last = %v, want %v", pts[len(pts)-1], tt.p1)
			}
			for i := 1; i < len(pts); i++ {
				d := pts[i].Sub(pts[i-1])
				if abs(d.X) > 1 || abs(d.Y) > 1 {
					t.Errorf("gap between %v and %v", pts[i-1], pts[i])
				}
			}
		})
	}
}

func TestLine_EarlyStop(t *testing.T) {
	n := 0
	for range Line(image.Pt(0, 0), image.Pt(100, 0)) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("n = %d, want 3", n)
	}
}

func TestStrokeLine_Clipped(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 5, 5))
	StrokeLine(img, image.Pt(-10, 2), image.Pt(20, 2), opaqueRed)
	got := painted(img)
	if len(got) != 5 {
		t.Fatalf("painted %d pixels, want 5", len(got))
	}
	for x := 0; x < 5; x++ {
		if !got[image.Pt(x, 2)] {
			t.Errorf("pixel (%d,2) not painted", x)
		}
	}
}

func TestFillRect(t *testing.T) {
	tests := []struct {
		name string
		r    image.Rectangle
		want int
	}{
		{"inside", image.Rect(1, 1, 4, 3), 6},
		{"partially off", image.Rect(-2, -2, 2, 2), 4},
		{"covers all", image.Rect(-100, -100, 100, 100), 100},
		{"entirely off right", image.Rect(20, 0, 30, 10), 0},
		{"entirely off negative", image.Rect(-30, -30, -20, -20), 0},
		{"touching edge", image.Rect(10, 0, 15, 10), 0},
		{"inverted", image.Rectangle{Min: image.Pt(5, 5), Max: image.Pt(2, 2)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
			FillRect(img, tt.r, opaqueRed)
			if got := len(painted(img)); got != tt.want {
				t.Errorf("painted %d pixels, want %d", got, tt.want)
			}
		})
	}
}

func TestStrokeRect(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	StrokeRect(img, image.Rect(2, 2, 6, 5), opaqueRed)
	got := painted(img)

	// 4x3 outline: every pixel of the footprint except the interior 2x1.
	if len(got) != 10 {
		t.Errorf("painted %d pixels, want 10", len(got))
	}
	for _, p := range []image.Point{{2, 2}, {5, 2}, {2, 4}, {5, 4}} {
		if !got[p] {
			t.Errorf("corner %v not painted", p)
		}
	}
	for _, p := range []image.Point{{3, 3}, {4, 3}, {6, 2}, {2, 5}} {
		if got[p] {
			t.Errorf("pixel %v should not be painted", p)
		}
	}
}

func TestStrokeCircle(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 21, 21))
	StrokeCircle(img, image.Pt(10, 10), 5, opaqueRed)
	got := painted(img)
	for _, p := range []image.Point{{15, 10}, {5, 10}, {10, 15}, {10, 5}} {
		if !got[p] {
			t.Errorf("extreme point %v not painted", p)
		}
	}
	if got[image.Pt(10, 10)] {
		t.Error("center should not be painted on a stroked circle")
	}
	for p := range got {
		d := p.Sub(image.Pt(10, 10))
		r2 := d.X*d.X + d.Y*d.Y
		if r2 < 16 || r2 > 36 {
			t.Errorf("pixel %v too far from radius 5 (r²=%d)", p, r2)
		}
	}
}

func TestCircle_DegenerateRadius(t *testing.T) {
	t.Run("stroke radius 0", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 5, 5))
		StrokeCircle(img, image.Pt(2, 2), 0, opaqueRed)
		got := painted(img)
		if len(got) != 1 || !got[image.Pt(2, 2)] {
			t.Errorf("painted %v, want only the center", got)
		}
	})
	t.Run("fill radius 0", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 5, 5))
		FillCircle(img, image.Pt(2, 2), 0, opaqueRed)
		got := painted(img)
		if len(got) != 1 || !got[image.Pt(2, 2)] {
			t.Errorf("painted %v, want only the center", got)
		}
	})
	t.Run("negative radius", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 5, 5))
		StrokeCircle(img, image.Pt(2, 2), -3, opaqueRed)
		FillCircle(img, image.Pt(2, 2), -3, opaqueRed)
		if got := painted(img); len(got) != 0 {
			t.Errorf("painted %d pixels, want 0", len(got))
		}
	})
}

func TestFillCircle_Solid(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 41, 41))
	FillCircle(img, image.Pt(20, 20), 15, opaqueRed)
	got := painted(img)
	for y := 0; y < 41; y++ {
		for x := 0; x < 41; x++ {
			d := image.Pt(x-20, y-20)
			r2 := d.X*d.X + d.Y*d.Y
			if r2 <= 13*13 && !got[image.Pt(x, y)] {
				t.Errorf("interior pixel (%d,%d) not filled", x, y)
			}
			if r2 > 17*17 && got[image.Pt(x, y)] {
				t.Errorf("exterior pixel (%d,%d) filled", x, y)
			}
		}
	}
}

func TestFillCircle_Clipped(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	FillCircle(img, image.Pt(0, 0), 50, opaqueRed)
	if got := len(painted(img)); got != 100 {
		t.Errorf("painted %d pixels, want 100", got)
	}
}
