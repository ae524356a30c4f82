package texture

import (
	"testing"

	"raycastengine/internal/color"
)

func TestSampleUsesFallbackUntilLoaded(t *testing.T) {
	fallback := color.RGBA(10, 20, 30, 255)
	tex := New("stripe", fallback)
	if got := tex.Sample(0, 0); got != fallback {
		t.Fatalf("Sample() on unloaded texture = %+v, want fallback %+v", got, fallback)
	}
}

func TestLoadRejectsMismatchedBuffer(t *testing.T) {
	tex := New("stripe", color.Color{})
	if err := tex.Load(make([]byte, 3), 2, 2); err == nil {
		t.Fatalf("Load() with mismatched buffer length = nil error, want error")
	}
}

func TestLoadRejectsNonPositiveDimensions(t *testing.T) {
	tex := New("stripe", color.Color{})
	if err := tex.Load(make([]byte, 0), 0, 1); err == nil {
		t.Fatalf("Load() with zero width = nil error, want error")
	}
}

func TestSampleAfterLoad(t *testing.T) {
	tex := New("stripe", color.Color{})
	// 2x1 texture: [A, B]
	pixels := []byte{
		255, 0, 0, 255, // A: red
		0, 255, 0, 255, // B: green
	}
	if err := tex.Load(pixels, 2, 1); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := tex.Sample(0, 0); got != (color.Color{R: 255, A: 255}) {
		t.Fatalf("Sample(0,0) = %+v, want red", got)
	}
	if got := tex.Sample(1, 0); got != (color.Color{G: 255, A: 255}) {
		t.Fatalf("Sample(1,0) = %+v, want green", got)
	}
}

func TestSampleClampsOutOfBoundsCoordinates(t *testing.T) {
	tex := New("stripe", color.Color{})
	pixels := []byte{1, 2, 3, 255}
	if err := tex.Load(pixels, 1, 1); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	got := tex.Sample(50, -50)
	want := color.Color{R: 1, G: 2, B: 3, A: 255}
	if got != want {
		t.Fatalf("Sample() out of bounds = %+v, want clamped %+v", got, want)
	}
}
