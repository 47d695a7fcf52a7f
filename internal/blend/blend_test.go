package blend

import (
	"image"
	"image/color"
	"testing"
)

func TestOver_OpaqueReplaces(t *testing.T) {
	dst := color.NRGBA{R: 10, G: 20, B: 30, A: 40}
	src := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	if got := Over(dst, src); got != src {
		t.Errorf("Over(opaque) = %v, want %v", got, src)
	}
}

func TestOver_TransparentIsNoop(t *testing.T) {
	dsts := []color.NRGBA{
		{},
		{R: 255, G: 255, B: 255, A: 255},
		{R: 12, G: 34, B: 56, A: 78},
	}
	srcs := []color.NRGBA{
		{},
		{R: 255, A: 0},
		{R: 1, G: 2, B: 3, A: 0},
	}
	for _, d := range dsts {
		for _, s := range srcs {
			if got := Over(d, s); got != d {
				t.Errorf("Over(%v, %v) = %v, want dst unchanged", d, s, got)
			}
		}
	}
}

func TestOver_HalfAlpha(t *testing.T) {
	tests := []struct {
		name string
		dst  color.NRGBA
		src  color.NRGBA
		want color.NRGBA
	}{
		{
			name: "red over opaque white",
			dst:  color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			src:  color.NRGBA{R: 255, A: 128},
			want: color.NRGBA{R: 255, G: 127, B: 127, A: 255},
		},
		{
			name: "red over transparent keeps color",
			dst:  color.NRGBA{},
			src:  color.NRGBA{R: 255, A: 128},
			want: color.NRGBA{R: 255, A: 128},
		},
		{
			name: "half over half",
			dst:  color.NRGBA{B: 255, A: 128},
			src:  color.NRGBA{R: 255, A: 128},
			want: color.NRGBA{R: 170, B: 85, A: 192},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Over(tt.dst, tt.src)
			if !near(got, tt.want, 1) {
				t.Errorf("Over() = %v, want %v (±1)", got, tt.want)
			}
		})
	}
}

func TestPixel_ClipsOutOfBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}} {
		Pixel(img, p.X, p.Y, color.NRGBA{R: 255, A: 255})
	}
	for i, v := range img.Pix {
		if v != 0 {
			t.Fatalf("out-of-bounds write modified Pix[%d] = %d", i, v)
		}
	}
}

func TestPixel_Writes(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	c := color.NRGBA{R: 1, G: 2, B: 3, A: 255}
	Pixel(img, 2, 3, c)
	if got := img.NRGBAAt(2, 3); got != c {
		t.Errorf("NRGBAAt(2,3) = %v, want %v", got, c)
	}
	if got := img.NRGBAAt(3, 2); got != (color.NRGBA{}) {
		t.Errorf("neighbor modified: %v", got)
	}
}

func near(a, b color.NRGBA, tol int) bool {
	d := func(x, y uint8) bool {
		v := int(x) - int(y)
		return v >= -tol && v <= tol
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}
