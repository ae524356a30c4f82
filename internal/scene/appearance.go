package scene

import (
	"raycastengine/internal/color"
	"raycastengine/internal/texture"
)

// Appearance is the tagged Color-or-Texture variant named in §3/§9: a nil
// Texture means "solid color", a non-nil Texture (possibly still unloaded,
// in which case its own Fallback color is used) means "textured". Modeling
// it as a two-field struct instead of an interface lets the renderer branch
// once per column/row (§9 Design notes) rather than via a per-pixel dynamic
// dispatch.
type Appearance struct {
	Texture *texture.Texture
	color   color.Color
}

// Solid builds a flat-color appearance.
func Solid(c color.Color) Appearance {
	return Appearance{color: c}
}

// Textured builds a texture-backed appearance.
func Textured(t *texture.Texture) Appearance {
	return Appearance{Texture: t}
}

// IsTextured reports whether this appearance is backed by a Texture.
func (a Appearance) IsTextured() bool {
	return a.Texture != nil
}

// Color returns the appearance's flat color: the texture's fallback color
// when this appearance is textured (loaded or not), the explicit solid
// color otherwise.
func (a Appearance) Color() color.Color {
	if a.Texture != nil {
		return a.Texture.Fallback
	}
	return a.color
}

// IsZero reports whether this appearance was never assigned (neither a
// solid color nor a texture) — used by NewWorldMap to reject malformed
// cellInfo entries.
func (a Appearance) IsZero() bool {
	return a.Texture == nil && a.color == color.Color{}
}
