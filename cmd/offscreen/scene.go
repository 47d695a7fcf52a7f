package main

import (
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/offscreen"
	"github.com/gogpu/offscreen/text"
)

type scene struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
	Font       string `toml:"font"`
	Shaper     string `toml:"shaper"`

	Rects   []rectItem   `toml:"rect"`
	Lines   []lineItem   `toml:"line"`
	Circles []circleItem `toml:"circle"`
	Images  []imageItem  `toml:"image"`
	Texts   []textItem   `toml:"text"`

	// dir resolves relative font and image paths.
	dir string
}

type rectItem struct {
	X     int    `toml:"x"`
	Y     int    `toml:"y"`
	W     int    `toml:"w"`
	H     int    `toml:"h"`
	Color string `toml:"color"`
	Fill  bool   `toml:"fill"`
}

type lineItem struct {
	X0    int    `toml:"x0"`
	Y0    int    `toml:"y0"`
	X1    int    `toml:"x1"`
	Y1    int    `toml:"y1"`
	Color string `toml:"color"`
}

type circleItem struct {
	X     int    `toml:"x"`
	Y     int    `toml:"y"`
	R     int    `toml:"r"`
	Color string `toml:"color"`
	Fill  bool   `toml:"fill"`
}

type imageItem struct {
	Path   string  `toml:"path"`
	X      int     `toml:"x"`
	Y      int     `toml:"y"`
	W      int     `toml:"w"`
	H      int     `toml:"h"`
	Filter string  `toml:"filter"`
	Angle  float64 `toml:"angle"` // degrees, clockwise
}

type textItem struct {
	Text     string  `toml:"text"`
	X        int     `toml:"x"`
	Y        int     `toml:"y"`
	Size     float64 `toml:"size"`
	Color    string  `toml:"color"`
	Centered bool    `toml:"centered"`
}

func loadScene(path string) (*scene, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sc, err := decodeScene(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sc.dir = filepath.Dir(path)
	return sc, nil
}

func decodeScene(r io.Reader) (*scene, error) {
	var sc scene
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&sc); err != nil {
		return nil, err
	}
	if sc.Width <= 0 || sc.Height <= 0 {
		return nil, fmt.Errorf("scene size %dx%d must be positive", sc.Width, sc.Height)
	}
	return &sc, nil
}

func (sc *scene) path(p string) string {
	if filepath.IsAbs(p) || sc.dir == "" {
		return p
	}
	return filepath.Join(sc.dir, p)
}

func (sc *scene) render() (*offscreen.Canvas, error) {
	font, err := sc.loadFont()
	if err != nil {
		return nil, err
	}

	var opts []offscreen.CanvasOption
	if sc.Background != "" {
		bg, err := offscreen.Hex(sc.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		opts = append(opts, offscreen.WithBackground(bg))
	}
	switch sc.Shaper {
	case "", "builtin":
	case "gotext":
		opts = append(opts, offscreen.WithShaper(text.NewGoTextShaper()))
	default:
		return nil, fmt.Errorf("unknown shaper %q", sc.Shaper)
	}

	cv := offscreen.NewCanvas(sc.Width, sc.Height, font, opts...)

	for i, it := range sc.Rects {
		c, err := offscreen.Hex(it.Color)
		if err != nil {
			return nil, fmt.Errorf("rect %d: %w", i, err)
		}
		r := offscreen.RectFrom(it.X, it.Y, it.W, it.H)
		if it.Fill {
			cv.FillRect(r, c)
		} else {
			cv.StrokeRect(r, c)
		}
	}
	for i, it := range sc.Lines {
		c, err := offscreen.Hex(it.Color)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		cv.StrokeLine(image.Pt(it.X0, it.Y0), image.Pt(it.X1, it.Y1), c)
	}
	for i, it := range sc.Circles {
		c, err := offscreen.Hex(it.Color)
		if err != nil {
			return nil, fmt.Errorf("circle %d: %w", i, err)
		}
		if it.Fill {
			cv.FillCircle(image.Pt(it.X, it.Y), it.R, c)
		} else {
			cv.StrokeCircle(image.Pt(it.X, it.Y), it.R, c)
		}
	}
	for i, it := range sc.Images {
		if err := sc.drawImage(cv, it); err != nil {
			return nil, fmt.Errorf("image %d: %w", i, err)
		}
	}
	for i, it := range sc.Texts {
		c, err := offscreen.Hex(it.Color)
		if err != nil {
			return nil, fmt.Errorf("text %d: %w", i, err)
		}
		size := it.Size
		if size == 0 {
			size = 16
		}
		if it.Centered {
			cv.DrawTextCentered(it.Text, c, size, it.X, it.Y)
		} else {
			cv.DrawText(it.Text, c, size, it.X, it.Y)
		}
	}
	return cv, nil
}

func (sc *scene) loadFont() (*text.FontSource, error) {
	if sc.Font == "" {
		return offscreen.LoadFont(goregular.TTF)
	}
	return text.NewFontSourceFromFile(sc.path(sc.Font))
}

func (sc *scene) drawImage(cv *offscreen.Canvas, it imageItem) error {
	src, err := offscreen.OpenImage(sc.path(it.Path))
	if err != nil {
		return err
	}
	filter, err := parseFilter(it.Filter)
	if err != nil {
		return err
	}

	var resize *offscreen.ResizeOption
	if it.W > 0 && it.H > 0 {
		resize = &offscreen.ResizeOption{Width: it.W, Height: it.H, Filter: filter}
	}
	var rotate *offscreen.RotateOption
	if it.Angle != 0 {
		w, h := src.Bounds().Dx(), src.Bounds().Dy()
		if resize != nil {
			w, h = resize.Width, resize.Height
		}
		rot := offscreen.NewRotateOption(float64(w)/2, float64(h)/2, it.Angle*math.Pi/180)
		rot.Interpolation = offscreen.InterpBilinear
		rotate = &rot
	}
	cv.DrawImageAt(src, it.X, it.Y, resize, rotate)
	return nil
}

func parseFilter(s string) (offscreen.Filter, error) {
	switch strings.ToLower(s) {
	case "", "nearest":
		return offscreen.FilterNearest, nil
	case "triangle", "linear":
		return offscreen.FilterTriangle, nil
	case "catmullrom":
		return offscreen.FilterCatmullRom, nil
	case "gaussian":
		return offscreen.FilterGaussian, nil
	case "lanczos3", "lanczos":
		return offscreen.FilterLanczos3, nil
	}
	return 0, fmt.Errorf("unknown filter %q", s)
}

func demoScene(width, height int) *scene {
	cx, cy := width/2, height/2
	return &scene{
		Width:      width,
		Height:     height,
		Background: "#1e1e2e",
		Rects: []rectItem{
			{X: 20, Y: 20, W: width - 40, H: height - 40, Color: "#cdd6f4"},
			{X: 40, Y: 40, W: width / 4, H: height / 4, Color: "#f38ba8c0", Fill: true},
			{X: 40 + width/8, Y: 40 + height/8, W: width / 4, H: height / 4, Color: "#89b4fac0", Fill: true},
		},
		Lines: []lineItem{
			{X0: 20, Y0: height - 21, X1: width - 21, Y1: 20, Color: "#a6e3a1"},
		},
		Circles: []circleItem{
			{X: width - 90, Y: height - 90, R: 50, Color: "#f9e2af", Fill: true},
			{X: width - 90, Y: height - 90, R: 60, Color: "#fab387"},
		},
		Texts: []textItem{
			{Text: "offscreen", X: cx, Y: cy, Size: 32, Color: "#ffffff", Centered: true},
		},
	}
}
