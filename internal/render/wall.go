package render

import (
	"math"

	"raycastengine/internal/camera"
	"raycastengine/internal/raycast"
	"raycastengine/internal/scene"
	"raycastengine/internal/screen"
	"raycastengine/internal/workpool"
)

// runWalls implements §4.2: for each column, repeatedly cast the same ray
// object, drawing every hit that is at least as tall as the running
// "smallestTop" topmost row already drawn, until the ray exits the grid.
func runWalls(s *screen.Screen, sc *scene.Scene, cam *camera.Camera, pool *workpool.Pool) {
	w, h := s.Width(), s.Height()
	aspect := s.Aspect()
	grid := sc.WorldMap

	pool.ForEach(0, w, func(x int) {
		cameraX := float64(x)/float64(w) - 0.5
		rayDirX := cam.Direction.X + cam.Plane.X*aspect*cameraX
		rayDirY := cam.Direction.Y + cam.Plane.Y*aspect*cameraX

		ray := raycast.New(cam.Position.X, cam.Position.Y, rayDirX, rayDirY, 1)
		smallestTop := math.Inf(1)

		for {
			ray.Cast(grid)
			if ray.Hit == 0 {
				break
			}

			info, ok := grid.Cell(ray.Hit)
			if !ok {
				continue
			}

			lineHeight := float64(h) / ray.Distance
			center := (float64(h)/2 + float64(cam.Pitch)) + float64(h)*(cam.Position.Z-0.5)/ray.Distance
			drawStart := int(math.Floor(center - (lineHeight*info.Height - lineHeight/2)))
			drawEnd := int(math.Floor(center + lineHeight/2))

			if float64(drawStart) > smallestTop {
				continue
			}

			trueEnd := drawEnd
			if !math.IsInf(smallestTop, 1) {
				trueEnd = int(smallestTop)
			}
			smallestTop = float64(drawStart)

			r, g, b := lightingScalar(sc.Lighting, cam.Lighting, ray.Distance, ray.Side)
			appearance := info.Appearance

			if appearance.IsTextured() && appearance.Texture.Loaded {
				tex := appearance.Texture
				var wallX float64
				if ray.Side == 0 {
					wallX = cam.Position.Y + ray.Distance*rayDirY
				} else {
					wallX = cam.Position.X + ray.Distance*rayDirX
				}
				wallX -= math.Floor(wallX)

				texX := int(wallX * float64(tex.W))
				if (ray.Side == 0 && rayDirX > 0) || (ray.Side == 1 && rayDirY < 0) {
					texX = tex.W - texX - 1
				}

				drawTexturedColumn(s, x, tex, texX, ray.Distance, drawStart, trueEnd, float64(drawEnd-drawStart), r, g, b, true)
			} else {
				drawColoredColumn(s, x, appearance.Color(), ray.Distance, drawStart, drawEnd, r, g, b, true)
			}
		}
	})
}
