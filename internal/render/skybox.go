package render

import (
	"math"

	"raycastengine/internal/camera"
	"raycastengine/internal/raycast"
	"raycastengine/internal/scene"
	"raycastengine/internal/screen"
	"raycastengine/internal/workpool"
)

// runSkybox implements §4.6, the first pass. It writes pixels only, never
// depth, so every later pass freely draws over the sky.
func runSkybox(s *screen.Screen, sc *scene.Scene, cam *camera.Camera, pool *workpool.Pool) {
	w, h := s.Width(), s.Height()
	aspect := s.Aspect()
	horizon := int(math.Floor(float64(h)/2 + float64(cam.Pitch)))
	if horizon < 0 {
		horizon = 0
	}
	if horizon > h {
		horizon = h
	}

	appearance := sc.Skybox.Appearance
	ambient := ambientScalar(sc.Lighting)

	if !appearance.IsTextured() || !appearance.Texture.Loaded {
		c := appearance.Color().Scaled(ambient, ambient, ambient)
		pool.ForEach(0, w, func(x int) {
			for y := 0; y < horizon; y++ {
				writePixel(s, s.Index(x, y), c)
			}
		})
		return
	}

	tex := appearance.Texture
	pool.ForEach(0, w, func(x int) {
		cameraX := float64(x)/float64(w) - 0.5
		rayDirX := cam.Direction.X + cam.Plane.X*aspect*cameraX
		rayDirY := cam.Direction.Y + cam.Plane.Y*aspect*cameraX

		ray := raycast.New(0.5, 0.5, rayDirX, rayDirY, 1)

		var perp, wallX float64
		if ray.TX < ray.TY {
			perp = ray.TX * 2
			wallX = 0.5 + ray.TX*rayDirY
		} else {
			perp = ray.TY * 2
			wallX = 0.5 + ray.TY*rayDirX
		}
		if perp <= 0 {
			return
		}
		wallX -= math.Floor(wallX)
		texX := int(wallX * float64(tex.W))

		drawEnd := horizon
		drawStart := int(math.Floor(float64(horizon) - float64(tex.H)/perp))
		lineHeight := float64(drawEnd - drawStart)

		drawTexturedColumn(s, x, tex, texX, 0, drawStart, drawEnd, lineHeight, ambient, ambient, ambient, false)
	})
}
