package render

import (
	"math"
	"testing"

	"raycastengine/internal/camera"
	"raycastengine/internal/color"
	"raycastengine/internal/scene"
	"raycastengine/internal/screen"
	"raycastengine/internal/vector"
	"raycastengine/internal/workpool"
)

// A FullBright entity ignores scene/camera lighting entirely (§3's
// "optional tint/flags"): its pixels are written at full intensity even
// when an identical, unflagged entity at the same depth would be dimmed.
func TestRunSpritesFullBrightIgnoresLighting(t *testing.T) {
	wm, err := scene.NewWorldMap(2, 2, []int{0, 0, 0, 0}, nil)
	if err != nil {
		t.Fatalf("NewWorldMap() error = %v", err)
	}
	white := color.RGBA(200, 200, 200, 255)
	dimLighting := scene.Lighting{Ambient: 0.1, SideShade: 0}
	camLighting := camera.Lighting{Brightness: 0.2, MaxBrightness: 1, Color: color.RGBA(255, 255, 255, 255)}
	cam := camera.New(vector.New3(0.5, 0.5, 0.5), math.Pi/2, 1, 0, camLighting)

	pool := workpool.New(1)
	defer pool.Close()

	dim := scene.Entity{Position: vector.New3(0.5, 1.5, 0), Size: vector.New2(1, 1), Appearance: scene.Solid(white)}
	bright := scene.Entity{Position: vector.New3(0.5, 1.5, 0), Size: vector.New2(1, 1), Appearance: scene.Solid(white), Flags: scene.FullBright}

	sDim, _ := screen.New(8, 8, 1)
	scDim, err := scene.New(wm, scene.Plane{}, scene.Ceiling{}, scene.Skybox{}, []scene.Entity{dim}, dimLighting)
	if err != nil {
		t.Fatalf("scene.New() error = %v", err)
	}
	runSprites(sDim, scDim, cam, pool)

	sBright, _ := screen.New(8, 8, 1)
	scBright, err := scene.New(wm, scene.Plane{}, scene.Ceiling{}, scene.Skybox{}, []scene.Entity{bright}, dimLighting)
	if err != nil {
		t.Fatalf("scene.New() error = %v", err)
	}
	runSprites(sBright, scBright, cam, pool)

	idx := sDim.Index(4, 4) * 4
	dimPixel := color.Color{R: sDim.Pixels[idx], G: sDim.Pixels[idx+1], B: sDim.Pixels[idx+2], A: sDim.Pixels[idx+3]}
	brightPixel := color.Color{R: sBright.Pixels[idx], G: sBright.Pixels[idx+1], B: sBright.Pixels[idx+2], A: sBright.Pixels[idx+3]}

	if brightPixel != white {
		t.Fatalf("FullBright pixel = %+v, want unattenuated %+v", brightPixel, white)
	}
	if dimPixel == white {
		t.Fatalf("non-FullBright pixel = %+v, want attenuated below %+v", dimPixel, white)
	}
}
