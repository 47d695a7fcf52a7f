// Command offscreen renders a scene to a PNG file.
//
// Without -scene it draws a built-in demo. With -scene it reads a TOML file:
//
//	width = 320
//	height = 200
//	background = "#1e1e2e"
//
//	[[rect]]
//	x = 10
//	y = 10
//	w = 100
//	h = 60
//	color = "#f38ba8"
//	fill = true
//
//	[[text]]
//	text = "hello"
//	x = 160
//	y = 100
//	size = 24
//	color = "#ffffff"
//	centered = true
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/offscreen"
)

func main() {
	var (
		width     = flag.Int("width", 480, "image width (ignored with -scene)")
		height    = flag.Int("height", 320, "image height (ignored with -scene)")
		output    = flag.String("output", "offscreen.png", "output file")
		scenePath = flag.String("scene", "", "TOML scene file")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		offscreen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	sc := demoScene(*width, *height)
	if *scenePath != "" {
		var err error
		sc, err = loadScene(*scenePath)
		if err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
	}

	cv, err := sc.render()
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := cv.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Saved %s (%dx%d)\n", *output, cv.Width(), cv.Height())
}
