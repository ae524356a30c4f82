package textureio

import (
	"bytes"
	"image"
	"image/color"
	stdpng "image/png"
	"os"
	"path/filepath"
	"testing"

	rcolor "raycastengine/internal/color"
	"raycastengine/internal/rlog"
)

func writePNG(t *testing.T, path string, w, h int, fill color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, fill)
		}
	}
	var buf bytes.Buffer
	if err := stdpng.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write test png: %v", err)
	}
}

func TestLoadDecodesPNGIntoRGBABuffer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brick.png")
	writePNG(t, path, 2, 2, color.RGBA{200, 50, 50, 255})

	tex, err := Load(path, rcolor.RGBA(0, 0, 0, 255))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !tex.Loaded {
		t.Fatalf("Load() returned an unloaded texture")
	}
	if tex.W != 2 || tex.H != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", tex.W, tex.H)
	}
	sample := tex.Sample(0, 0)
	if sample.R != 200 || sample.G != 50 || sample.B != 50 {
		t.Fatalf("Sample(0,0) = %+v, want {200 50 50 255}", sample)
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := Load("/nonexistent/path/missing.png", rcolor.RGBA(1, 2, 3, 255))
	if err == nil {
		t.Fatalf("Load() on a missing file returned nil error")
	}
}

func TestLoadFromSearchPathsFallsBackToPlaceholder(t *testing.T) {
	fallback := rcolor.RGBA(10, 20, 30, 255)
	tex := LoadFromSearchPaths([]string{"/no/such/a.png", "/no/such/b.png"}, fallback)
	if tex == nil {
		t.Fatalf("LoadFromSearchPaths() returned nil")
	}
	got := tex.Sample(0, 0)
	if got != fallback {
		t.Fatalf("placeholder Sample() = %+v, want fallback %+v", got, fallback)
	}
}

func TestLoadFromSearchPathsLogsFallbackWithoutPanicking(t *testing.T) {
	SetLogger(rlog.New("textureio-test", rlog.LevelDebug))
	defer SetLogger(nil)

	fallback := rcolor.RGBA(1, 2, 3, 255)
	tex := LoadFromSearchPaths([]string{"/no/such/a.png"}, fallback)
	if got := tex.Sample(0, 0); got != fallback {
		t.Fatalf("Sample() = %+v, want fallback %+v", got, fallback)
	}
}

func TestManagerCachesByName(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "wall.png"), 1, 1, color.RGBA{9, 9, 9, 255})

	m := NewManager([]string{dir})
	fallback := rcolor.RGBA(0, 0, 0, 255)

	first := m.Get("wall", fallback)
	second := m.Get("wall", fallback)
	if first != second {
		t.Fatalf("Manager.Get() did not return the cached texture on second call")
	}
}

func TestManagerInvalidateForcesReload(t *testing.T) {
	m := NewManager([]string{t.TempDir()})
	fallback := rcolor.RGBA(5, 5, 5, 255)

	first := m.Get("ghost", fallback)
	m.Invalidate("ghost")
	second := m.Get("ghost", fallback)
	if first == second {
		t.Fatalf("Invalidate() did not force a new texture instance")
	}
}
