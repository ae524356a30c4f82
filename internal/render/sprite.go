package render

import (
	"raycastengine/internal/camera"
	"raycastengine/internal/scene"
	"raycastengine/internal/screen"
	"raycastengine/internal/workpool"
)

// runSprites implements §4.3: billboard each entity into camera space and
// draw its visible columns, depth-testing against transformY (the entity's
// perpendicular depth). Entities are processed one at a time in draw order
// so a NoDepthWrite entity never races a later entity's depth test on the
// same pixel; within one entity's column range, columns may still be
// partitioned across the pool.
func runSprites(s *screen.Screen, sc *scene.Scene, cam *camera.Camera, pool *workpool.Pool) {
	w, h := s.Width(), s.Height()
	aspect := s.Aspect()

	d := cam.Direction
	p := cam.Plane.Scale(aspect / 2)
	invDet := 1 / (p.X*d.Y - d.X*p.Y)

	for _, e := range sc.Entities {
		dx := e.Position.X - cam.Position.X
		dy := e.Position.Y - cam.Position.Y

		transformX := invDet * (d.Y*dx - d.X*dy)
		transformY := invDet * (-p.Y*dx + p.X*dy)
		if transformY <= 0 {
			continue
		}

		sx := (transformX/transformY + 1) / 2 * float64(w)
		sy := (float64(h)/2+float64(cam.Pitch)) - (e.Position.Z+(e.Size.Y-1)/2-(cam.Position.Z-0.5))/transformY*float64(h)

		height := e.Size.Y / transformY * float64(h)
		width := e.Size.X / transformY * float64(w) / aspect

		startXf := sx - width/2
		endXf := sx + width/2
		startY := int(sy - height/2)
		endY := int(sy + height/2)

		startX := int(startXf)
		endX := int(endXf)

		clampedStart := startX
		if clampedStart < 0 {
			clampedStart = 0
		}
		clampedEnd := endX
		if clampedEnd > w {
			clampedEnd = w
		}
		if clampedStart >= clampedEnd {
			continue
		}

		r, g, b := 1.0, 1.0, 1.0
		if !e.Flags.Has(scene.FullBright) {
			r, g, b = lightingScalar(sc.Lighting, cam.Lighting, transformY, 0)
		}
		writeDepth := !e.Flags.Has(scene.NoDepthWrite)
		appearance := e.Appearance
		lineHeight := float64(endY - startY)

		pool.ForEach(clampedStart, clampedEnd, func(x int) {
			if !appearance.IsTextured() || !appearance.Texture.Loaded {
				drawColoredColumn(s, x, appearance.Color(), transformY, startY, endY, r, g, b, writeDepth)
				return
			}
			tex := appearance.Texture
			texX := int((float64(x) - startXf) / (endXf - startXf) * float64(tex.W))
			if texX < 0 {
				texX = 0
			} else if texX >= tex.W {
				texX = tex.W - 1
			}
			drawTexturedColumn(s, x, tex, texX, transformY, startY, endY, lineHeight, r, g, b, writeDepth)
		})
	}
}
