package render

import (
	"raycastengine/internal/color"
	"raycastengine/internal/screen"
	"raycastengine/internal/texture"
)

func writePixel(s *screen.Screen, index int, c color.Color) {
	i := index * 4
	s.Pixels[i] = c.R
	s.Pixels[i+1] = c.G
	s.Pixels[i+2] = c.B
	s.Pixels[i+3] = 255
}

// drawColoredColumn implements §4.5's drawColoredColumn: clip [startY,endY)
// to the screen, and for each row whose depth test passes, write the
// lighting-scaled color and (when writeDepth) update the depth buffer.
func drawColoredColumn(s *screen.Screen, x int, c color.Color, depth float64, startY, endY int, r, g, b float64, writeDepth bool) {
	if startY < 0 {
		startY = 0
	}
	if endY > s.Height() {
		endY = s.Height()
	}
	scaled := c.Scaled(r, g, b)
	for y := startY; y < endY; y++ {
		idx := s.Index(x, y)
		if depth < s.Depth[idx] {
			writePixel(s, idx, scaled)
			if writeDepth {
				s.Depth[idx] = depth
			}
		}
	}
}

// drawTexturedColumn implements §4.5's drawTexturedColumn. lineHeight is the
// column's unclipped height (drawEnd-drawStart before occlusion clipping) so
// texture stepping never stretches when a nearer wall clips the draw range.
// Transparent texels (alpha != 255) are skipped without touching the depth
// buffer, matching the sprite pass's occlusion rules.
func drawTexturedColumn(s *screen.Screen, x int, tex *texture.Texture, texX int, depth float64, startY, endY int, lineHeight float64, r, g, b float64, writeDepth bool) {
	if lineHeight <= 0 {
		return
	}
	step := float64(tex.H) / lineHeight

	texPosY := 0.0
	if startY < 0 {
		texPosY = float64(-startY) * step
	}

	clippedStart := startY
	if clippedStart < 0 {
		clippedStart = 0
	}
	clippedEnd := endY
	if clippedEnd > s.Height() {
		clippedEnd = s.Height()
	}

	for y := clippedStart; y < clippedEnd; y++ {
		texY := int(texPosY)
		texPosY += step

		idx := s.Index(x, y)
		if depth >= s.Depth[idx] {
			continue
		}
		px := tex.Sample(texX, texY)
		if px.A != 255 {
			continue
		}
		writePixel(s, idx, px.Scaled(r, g, b))
		if writeDepth {
			s.Depth[idx] = depth
		}
	}
}
