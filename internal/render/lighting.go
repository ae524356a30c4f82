package render

import (
	"raycastengine/internal/camera"
	"raycastengine/internal/scene"
)

// lightingScalar computes the per-channel attenuation factor a column or
// row's color gets multiplied by. side selects the sideShade subtraction
// (1 = horizontal grid-line hit, the wall pass's vertical-face case); pass
// 0 from passes that don't distinguish faces.
func lightingScalar(sceneLighting scene.Lighting, camLighting camera.Lighting, depth float64, side int) (r, g, b float64) {
	if !sceneLighting.Enabled() {
		return 1, 1, 1
	}

	l := camLighting.Brightness / depth
	if l > camLighting.MaxBrightness {
		l = camLighting.MaxBrightness
	}
	if l < sceneLighting.Ambient {
		l = sceneLighting.Ambient
	}
	if side == 1 {
		l -= sceneLighting.SideShade
	}

	cc := camLighting.Color
	return l * float64(cc.R) / 255, l * float64(cc.G) / 255, l * float64(cc.B) / 255
}

// ambientScalar is the skybox's flat attenuation: ambient brightness with no
// depth-based falloff, since the sky is treated as infinitely far.
func ambientScalar(sceneLighting scene.Lighting) float64 {
	if !sceneLighting.Enabled() {
		return 1
	}
	return sceneLighting.Ambient
}
