package render

import (
	"math"

	"raycastengine/internal/camera"
	"raycastengine/internal/color"
	"raycastengine/internal/scene"
	"raycastengine/internal/screen"
	"raycastengine/internal/vector"
	"raycastengine/internal/workpool"
)

// runFloorCeiling implements §4.4: for every row below/above the horizon,
// step a world-space position across the row and sample the floor or
// ceiling appearance, depth-testing against the row's perpendicular
// distance.
func runFloorCeiling(s *screen.Screen, sc *scene.Scene, cam *camera.Camera, pool *workpool.Pool) {
	w, h := s.Width(), s.Height()
	aspect := s.Aspect()
	horizon := int(math.Floor(float64(h)/2 + float64(cam.Pitch)))

	rowStart := 0
	if !sc.Ceiling.Enabled {
		rowStart = horizon
	}
	rowEnd := h
	if !sc.Floor.Enabled {
		rowEnd = horizon
	}
	if rowStart < 0 {
		rowStart = 0
	}
	if rowEnd > h {
		rowEnd = h
	}
	if rowStart >= rowEnd {
		return
	}

	dirL := cam.Direction.Sub(cam.Plane.Scale(aspect * 0.5))
	dirR := cam.Direction.Add(cam.Plane.Scale(aspect * 0.5))
	camXY := vector.New2(cam.Position.X, cam.Position.Y)

	pool.ForEach(rowStart, rowEnd, func(y int) {
		isFloor := y > horizon

		var plane scene.Plane
		var posZ float64
		if isFloor {
			if !sc.Floor.Enabled {
				return
			}
			plane = sc.Floor
			posZ = cam.Position.Z * float64(h)
		} else {
			if !sc.Ceiling.Enabled {
				return
			}
			plane = sc.Ceiling.Plane
			posZ = float64(h) * (sc.Ceiling.Height - cam.Position.Z)
		}
		if !plane.Enabled {
			return
		}

		denom := float64(y - horizon)
		var rowDist float64
		if denom == 0 {
			logger.Debugf("row %d sits on the horizon, clamping rowDist to 1e3", y)
			rowDist = 1e3
		} else {
			rowDist = math.Abs(posZ / denom)
			if math.IsInf(rowDist, 0) {
				logger.Debugf("row %d produced an infinite rowDist, clamping to 1e3", y)
				rowDist = 1e3
			}
		}

		r, g, b := lightingScalar(sc.Lighting, cam.Lighting, rowDist, 0)
		floorPos := camXY.Add(dirL.Scale(rowDist))
		step := dirR.Sub(dirL).Scale(rowDist / float64(w))

		for x := 0; x < w; x++ {
			idx := s.Index(x, y)
			if rowDist < s.Depth[idx] {
				c := sampleFloorAppearance(plane, floorPos)
				writePixel(s, idx, c.Scaled(r, g, b))
				s.Depth[idx] = rowDist
			}
			floorPos = floorPos.Add(step)
		}
	})
}

func sampleFloorAppearance(plane scene.Plane, floorPos vector.Vector2) color.Color {
	if !plane.Appearance.IsTextured() || !plane.Appearance.Texture.Loaded {
		return plane.Appearance.Color()
	}
	tex := plane.Appearance.Texture
	fx := math.Abs(math.Mod(floorPos.X, plane.CellWidth) / plane.CellWidth)
	fy := math.Abs(math.Mod(floorPos.Y, plane.CellHeight) / plane.CellHeight)
	tx := int(float64(tex.W) * fx)
	ty := int(float64(tex.H) * fy)
	return tex.Sample(tx, ty)
}
