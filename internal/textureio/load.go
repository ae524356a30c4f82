// Package textureio is the ambient asset-loading collaborator: it decodes
// image files from disk into the row-major RGBA byte buffers
// texture.Texture.Load expects, falling back to a generated placeholder
// when nothing can be decoded. It is kept entirely separate from the core
// render packages (vector, color, texture, screen, camera, scene, raycast,
// render) so that decoding concerns and their image/os dependencies never
// leak into the pixel-pushing hot path.
package textureio

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"

	"raycastengine/internal/color"
	"raycastengine/internal/rlog"
	"raycastengine/internal/texture"
)

// logger is nil by default, matching §1/§5's expectation that the core
// packages are silent unless a host opts in via SetLogger.
var logger *rlog.Logger

// SetLogger installs the logger textureio uses for fallback diagnostics.
// Passing nil (the default) silences it again.
func SetLogger(l *rlog.Logger) {
	logger = l
}

// Load decodes the image file at path and returns a loaded texture.Texture
// whose fallback color is used only if the texture is sampled before being
// (re)loaded. Decoding always normalizes the source raster to a tightly
// packed RGBA buffer via x/image/draw, regardless of the source file's
// native color model.
func Load(path string, fallback color.Color) (*texture.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("textureio: open %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("textureio: decode %s: %w", path, err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)

	tex := texture.New(path, fallback)
	if err := tex.Load(dst.Pix, w, h); err != nil {
		return nil, fmt.Errorf("textureio: publish %s: %w", path, err)
	}
	return tex, nil
}

// LoadFromSearchPaths tries each candidate path in order and returns the
// first one that decodes successfully. If none decode, it returns a
// placeholder texture filled with fallback instead of an error: a missing
// or malformed asset degrades visually rather than aborting a render.
func LoadFromSearchPaths(searchPaths []string, fallback color.Color) *texture.Texture {
	for _, path := range searchPaths {
		tex, err := Load(path, fallback)
		if err == nil {
			return tex
		}
		logger.Debugf("search path %s did not decode: %v", path, err)
	}
	logger.Warnf("no search path decoded out of %v, degrading to fallback color %v", searchPaths, fallback)
	return Placeholder("", fallback)
}

// Placeholder returns a 1x1 texture that always samples as fallback,
// matching the degrade-gracefully behavior of a missing asset without ever
// touching the filesystem.
func Placeholder(source string, fallback color.Color) *texture.Texture {
	tex := texture.New(source, fallback)
	_ = tex.Load([]byte{fallback.R, fallback.G, fallback.B, fallback.A}, 1, 1)
	return tex
}
