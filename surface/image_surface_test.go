// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/collide"
)

var red = collide.RGB(1, 0, 0)

func newWhiteSurface(t *testing.T, w, h int) *ImageSurface {
	t.Helper()
	s := NewImageSurface(w, h)
	t.Cleanup(func() { _ = s.Close() })
	s.Clear(color.White)
	return s
}

func isRed(c color.RGBA) bool {
	return c.R == 255 && c.G == 0 && c.B == 0 && c.A == 255
}

func isWhite(c color.RGBA) bool {
	return c.R == 255 && c.G == 255 && c.B == 255 && c.A == 255
}

// TestNewImageSurfaceInvalidSize tests handling of invalid dimensions.
func TestNewImageSurfaceInvalidSize(t *testing.T) {
	s := NewImageSurface(0, -5)
	defer s.Close()

	if s.Width() != 1 || s.Height() != 1 {
		t.Errorf("expected 1x1, got %dx%d", s.Width(), s.Height())
	}
}

// TestImageSurfaceClear tests the Clear operation.
func TestImageSurfaceClear(t *testing.T) {
	s := NewImageSurface(10, 10)
	defer s.Close()

	s.Clear(color.RGBA{255, 0, 0, 255})

	img := s.Snapshot()
	if img == nil {
		t.Fatal("Snapshot returned nil")
	}
	if c := img.RGBAAt(5, 5); !isRed(c) {
		t.Errorf("pixel = %v, want (255, 0, 0, 255)", c)
	}
}

func TestImageSurfaceStrokeLine(t *testing.T) {
	s := newWhiteSurface(t, 64, 64)

	s.SetLineWidth(4)
	s.SetStrokeColor(red)
	s.BeginPath()
	s.MoveTo(10, 20)
	s.LineTo(50, 20)
	s.Stroke()

	img := s.Snapshot()
	for _, x := range []int{10, 30, 49} {
		if c := img.RGBAAt(x, 20); !isRed(c) {
			t.Errorf("pixel on line (%d, 20) = %v, want red", x, c)
		}
	}
	for _, pt := range [][2]int{{30, 30}, {30, 10}, {5, 5}, {60, 20}} {
		if c := img.RGBAAt(pt[0], pt[1]); !isWhite(c) {
			t.Errorf("pixel off line %v = %v, want white", pt, c)
		}
	}
}

func TestImageSurfaceStrokeRect(t *testing.T) {
	s := newWhiteSurface(t, 64, 64)

	s.SetLineWidth(2)
	s.SetStrokeColor(red)
	s.BeginPath()
	s.Rect(10, 10, 30, 30)
	s.Stroke()

	img := s.Snapshot()
	// One pixel inside each edge.
	for _, pt := range [][2]int{{20, 10}, {39, 20}, {20, 39}, {10, 20}} {
		if c := img.RGBAAt(pt[0], pt[1]); !isRed(c) {
			t.Errorf("edge pixel %v = %v, want red", pt, c)
		}
	}
	if c := img.RGBAAt(25, 25); !isWhite(c) {
		t.Errorf("centre pixel = %v, want white", c)
	}
}

func TestImageSurfaceStrokeKeepsPath(t *testing.T) {
	s := newWhiteSurface(t, 32, 32)

	s.SetLineWidth(2)
	s.SetStrokeColor(red)
	s.BeginPath()
	s.MoveTo(4, 16)
	s.LineTo(28, 16)
	s.Stroke()

	// Restroking the same path in another colour repaints it.
	s.SetStrokeColor(collide.RGB(0, 0, 1))
	s.Stroke()
	if c := s.Snapshot().RGBAAt(16, 16); c.B != 255 || c.R != 0 {
		t.Errorf("pixel = %v, want blue", c)
	}
}

func TestImageSurfaceZeroWidthStroke(t *testing.T) {
	s := newWhiteSurface(t, 32, 32)

	s.SetLineWidth(0)
	s.SetStrokeColor(red)
	s.BeginPath()
	s.MoveTo(0, 16)
	s.LineTo(32, 16)
	s.Stroke()

	if c := s.Snapshot().RGBAAt(16, 16); !isWhite(c) {
		t.Errorf("zero-width stroke painted pixel %v", c)
	}
}

func TestImageSurfaceRenderLineStrip(t *testing.T) {
	s := newWhiteSurface(t, 100, 100)

	ls, err := collide.NewLineStrip(collide.Pt(30, 30), []collide.Point{
		collide.Pt(0, 0), collide.Pt(40, 0), collide.Pt(40, 40),
	}, collide.WithStrokeColor(red))
	if err != nil {
		t.Fatalf("NewLineStrip() = %v", err)
	}
	ls.Render(s, collide.Pt(10, 10))

	img := s.Snapshot()
	// Body stroke at alpha 0.75 over white: red stays saturated, green drops.
	if c := img.RGBAAt(40, 22); c.R != 255 || c.G > 80 {
		t.Errorf("body pixel = %v, want mostly red", c)
	}
	if c := img.RGBAAt(40, 40); !isWhite(c) {
		t.Errorf("pixel inside the bend = %v, want white", c)
	}
}

func TestImageSurfaceLabel(t *testing.T) {
	s := newWhiteSurface(t, 100, 30)
	s.Label(5, 20, "line-strip", collide.Black)

	img := s.Snapshot()
	dark := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 100; x++ {
			if img.RGBAAt(x, y).R < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("Label drew nothing")
	}
}

func TestImageSurfaceSavePNG(t *testing.T) {
	s := newWhiteSurface(t, 16, 8)
	path := filepath.Join(t.TempDir(), "out.png")

	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("decoded bounds = %v, want 16x8", b)
	}
}

func TestImageSurfaceClose(t *testing.T) {
	s := NewImageSurface(8, 8)
	if err := s.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}

	// Drawing after Close is ignored.
	s.BeginPath()
	s.MoveTo(0, 0)
	s.LineTo(8, 8)
	s.Stroke()
	s.Clear(color.Black)

	if s.Snapshot() != nil {
		t.Error("Snapshot() after Close should be nil")
	}
	if err := s.SavePNG(filepath.Join(t.TempDir(), "x.png")); !errors.Is(err, ErrSurfaceClosed) {
		t.Errorf("SavePNG() after Close = %v, want ErrSurfaceClosed", err)
	}
}
