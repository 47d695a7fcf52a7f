// Package offscreen provides an immediate-mode RGBA canvas for composing
// bitmaps, 1px vector primitives and text into a single pixel buffer.
//
// # Quick Start
//
//	font, err := offscreen.LoadFont(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cv := offscreen.NewCanvas(300, 200, font, offscreen.WithBackground(offscreen.Black))
//	cv.FillCircle(image.Pt(150, 100), 60, offscreen.Red)
//	cv.DrawTextCentered("hello", offscreen.White, 24, 150, 100)
//	if err := cv.SavePNG("out.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Compositing
//
// Every drawing operation funnels through one straight-alpha "source over"
// rule. An opaque color overwrites the pixel exactly; a fully transparent
// one leaves it untouched.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rotation angles in radians, positive turns clockwise on screen
//
// # Clipping and Errors
//
// Drawing never fails: coordinates outside the canvas are clipped. Errors
// only come from loading images (ErrDecode) and fonts (ErrFontLoad).
// Cropping outside a source bitmap is a programming error and panics.
//
// # Concurrency
//
// A Canvas must be used from one goroutine at a time. A text.FontSource is
// immutable and may be shared freely.
package offscreen
