package screen

import (
	"math"
	"testing"
)

func TestNewRejectsNonPositiveDimensions(t *testing.T) {
	if _, err := New(0, 10, 1); err == nil {
		t.Fatalf("New() with zero width = nil error, want error")
	}
	if _, err := New(10, -1, 1); err == nil {
		t.Fatalf("New() with negative height = nil error, want error")
	}
}

func TestNewRejectsQualityOutOfRange(t *testing.T) {
	if _, err := New(10, 10, 0); err == nil {
		t.Fatalf("New() with quality=0 = nil error, want error")
	}
	if _, err := New(10, 10, 1.5); err == nil {
		t.Fatalf("New() with quality=1.5 = nil error, want error")
	}
}

func TestNewComputesRenderDimensions(t *testing.T) {
	s, err := New(100, 50, 0.5)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s.Width() != 50 || s.Height() != 25 {
		t.Fatalf("Width/Height = %d/%d, want 50/25", s.Width(), s.Height())
	}
	if len(s.Pixels) != 4*50*25 {
		t.Fatalf("len(Pixels) = %d, want %d", len(s.Pixels), 4*50*25)
	}
	if len(s.Depth) != 50*25 {
		t.Fatalf("len(Depth) = %d, want %d", len(s.Depth), 50*25)
	}
}

func TestNewClampsRenderDimensionsToOne(t *testing.T) {
	s, err := New(1, 1, 0.01)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s.Width() != 1 || s.Height() != 1 {
		t.Fatalf("Width/Height = %d/%d, want 1/1", s.Width(), s.Height())
	}
}

func TestClearInvariant(t *testing.T) {
	s, err := New(4, 4, 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for i := range s.Pixels {
		s.Pixels[i] = 200
	}
	for i := range s.Depth {
		s.Depth[i] = 3.0
	}
	s.Clear()
	for i, p := range s.Pixels {
		if p != 0 {
			t.Fatalf("Pixels[%d] = %v after Clear(), want 0", i, p)
		}
	}
	for i, d := range s.Depth {
		if !math.IsInf(d, 1) {
			t.Fatalf("Depth[%d] = %v after Clear(), want +Inf", i, d)
		}
	}
}

func TestPresentHandsOffBuffer(t *testing.T) {
	s, _ := New(2, 2, 1)
	var gotW, gotH int
	var gotLen int
	s.Present(func(pixels []byte, w, h int) {
		gotW, gotH, gotLen = w, h, len(pixels)
	})
	if gotW != 2 || gotH != 2 || gotLen != 16 {
		t.Fatalf("Present() callback args = (%d,%d,%d), want (2,2,16)", gotW, gotH, gotLen)
	}
}
