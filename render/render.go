// Package render maps simulation world coordinates onto a pixel
// buffer and accumulates a sequence of frames into an animated GIF.
//
// The affine world->pixel map is a uniform scale plus a recentering
// offset; frames accumulate directly into a gif.GIF via the standard
// library's image/gif, rather than through a separate helper package.
package render

import (
	"image"
	"image/color"
	"image/gif"

	"github.com/ollenurb/nbody"
	"gonum.org/v1/gonum/spatial/r2"
)

// Transform maps a world-space point in [-extent, extent]^2 onto a
// canvasSize x canvasSize pixel grid, centering the origin and
// flipping Y so that positive world-Y still reads "up" on screen.
type Transform struct {
	Extent     float64
	CanvasSize int
}

// Apply maps a world coordinate to a pixel coordinate. Points outside
// [-extent, extent]^2 map outside the canvas; callers should clip
// before plotting.
func (t Transform) Apply(p barneshut.Vec2) r2.Vec {
	scale := float64(t.CanvasSize) / (2 * t.Extent)
	half := float64(t.CanvasSize) / 2
	return r2.Vec{
		X: half + p.X*scale,
		Y: half - p.Y*scale,
	}
}

// Frame plots bodies onto a canvasSize x canvasSize paletted image,
// one filled 3x3 pixel square per body, using a black background and
// a single foreground color. Body carries no color field, so every
// body is drawn the same shade; a caller that wants per-body color
// should build its own image.Image directly from BodiesSnapshot and
// Transform.Apply.
func Frame(bodies []barneshut.Body, extent float64, canvasSize int) *image.Paletted {
	palette := color.Palette{color.Black, color.RGBA{R: 0x48, G: 0xb2, B: 0xe8, A: 0xff}}
	img := image.NewPaletted(image.Rect(0, 0, canvasSize, canvasSize), palette)

	tr := Transform{Extent: extent, CanvasSize: canvasSize}
	for _, b := range bodies {
		p := tr.Apply(b.Position)
		plotDot(img, int(p.X), int(p.Y))
	}
	return img
}

// plotDot fills a small square centered on (x, y) so that single
// bodies remain visible even after palette-quantization and frame
// scaling.
func plotDot(img *image.Paletted, x, y int) {
	const r = 1
	bounds := img.Bounds()
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			px, py := x+dx, y+dy
			if image.Pt(px, py).In(bounds) {
				img.SetColorIndex(px, py, 1)
			}
		}
	}
}

// Animate samples history (one body slice per completed tick) every
// frequency ticks and renders each sample into a gif.GIF. World units
// are mapped into pixels by Transform, driven directly by extent and
// canvasSize.
func Animate(history [][]barneshut.Body, extent float64, canvasSize, frequency int) *gif.GIF {
	if frequency <= 0 {
		frequency = 1
	}
	out := &gif.GIF{}
	for i, bodies := range history {
		if i%frequency != 0 {
			continue
		}
		out.Image = append(out.Image, Frame(bodies, extent, canvasSize))
		out.Delay = append(out.Delay, 2)
	}
	return out
}
