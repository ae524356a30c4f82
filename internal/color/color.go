// Package color implements the renderer's 8-bit RGBA color tuple and the
// lighting-scalar multiply the wall/sprite/floor passes apply per pixel.
package color

import (
	stdcolor "image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a four-channel 8-bit color tuple.
type Color struct {
	R, G, B, A uint8
}

// RGBA builds a Color from integer channels, clamping each into [0,255].
func RGBA(r, g, b, a int) Color {
	return Color{R: clamp8(r), G: clamp8(g), B: clamp8(b), A: clamp8(a)}
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clampf(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// StdColor converts to the standard library's color.RGBA, for interop with
// ecosystem image/drawing code (e.g. golang.org/x/image/draw targets).
func (c Color) StdColor() stdcolor.RGBA {
	return stdcolor.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Scaled multiplies each color channel by a lighting factor and writes
// alpha as fully opaque (255), per §4.7/§4.5's literal formula: pixels are
// written as floor(channel * factor), never blended.
func (c Color) Scaled(rf, gf, bf float64) Color {
	return Color{
		R: clampf(float64(c.R) * rf),
		G: clampf(float64(c.G) * gf),
		B: clampf(float64(c.B) * bf),
		A: 255,
	}
}

// Blend interpolates between c and o in CIE L*u*v* space, t in [0,1], and
// returns an opaque color. A flat per-channel mix would look muddier.
func (c Color) Blend(o Color, t float64) Color {
	ca, _ := colorful.MakeColor(c.StdColor())
	cb, _ := colorful.MakeColor(o.StdColor())
	mixed := ca.BlendLuv(cb, t).Clamped()
	return Color{
		R: clampf(mixed.R * 255),
		G: clampf(mixed.G * 255),
		B: clampf(mixed.B * 255),
		A: 255,
	}
}
