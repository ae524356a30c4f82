// Package texture implements the immutable RGBA raster the renderer samples
// from. A Texture starts unloaded with a fallback color; Load is the one-shot
// publish barrier an external, possibly-asynchronous loader uses to hand over
// decoded pixels (§5: the load flag acts as the publish barrier).
package texture

import (
	"fmt"

	"raycastengine/internal/color"
)

// Texture is an immutable-once-loaded RGBA raster.
type Texture struct {
	Source   string
	W, H     int
	Pixels   []byte // row-major RGBA, length 4*W*H, top-left origin
	Loaded   bool
	Fallback color.Color
}

// New creates an unloaded texture identified by source, using fallback as
// its substitute color until Load is called.
func New(source string, fallback color.Color) *Texture {
	return &Texture{Source: source, Fallback: fallback}
}

// Load publishes decoded pixels. It is a configuration error (§7) to load
// pixels whose length doesn't match 4*w*h, or non-positive dimensions.
func (t *Texture) Load(pixels []byte, w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("texture %q: invalid dimensions %dx%d", t.Source, w, h)
	}
	if len(pixels) != 4*w*h {
		return fmt.Errorf("texture %q: pixel buffer length %d does not match 4*%d*%d", t.Source, len(pixels), w, h)
	}
	t.W, t.H = w, h
	t.Pixels = pixels
	t.Loaded = true
	return nil
}

// Sample returns the color at pixel (x,y), clamping into bounds so callers
// never read out-of-range (§8 invariant 5: 0 <= texX < texW, 0 <= texY < texH).
// If the texture is not yet loaded, Fallback is returned regardless of (x,y).
func (t *Texture) Sample(x, y int) color.Color {
	if !t.Loaded {
		return t.Fallback
	}
	if x < 0 {
		x = 0
	} else if x >= t.W {
		x = t.W - 1
	}
	if y < 0 {
		y = 0
	} else if y >= t.H {
		y = t.H - 1
	}
	i := (y*t.W + x) * 4
	return color.Color{R: t.Pixels[i], G: t.Pixels[i+1], B: t.Pixels[i+2], A: t.Pixels[i+3]}
}
