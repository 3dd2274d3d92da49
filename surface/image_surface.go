// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/collide"
)

// ErrSurfaceClosed is returned by operations on a closed surface.
var ErrSurfaceClosed = errors.New("surface: surface is closed")

// ImageSurface is a CPU-based collide.Surface that renders to an *image.RGBA.
//
// Strokes are expanded into one quad per segment plus a square at every
// vertex, then filled with a vector.Rasterizer in a single pass so that
// overlapping pieces of one stroke are blended once.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.SetLineWidth(2)
//	s.SetStrokeColor(collide.RGB(1, 0, 0))
//	s.BeginPath()
//	s.Rect(10, 10, 100, 50)
//	s.Stroke()
//
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	// rast is reused across strokes
	rast *vector.Rasterizer

	path        *Path
	lineWidth   float64
	strokeColor collide.RGBA

	// closed tracks if Close has been called
	closed bool
}

var _ collide.Surface = (*ImageSurface)(nil)

// NewImageSurface creates a new CPU-based surface with the given dimensions.
// Non-positive dimensions are raised to 1.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return NewImageSurfaceFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewImageSurfaceFromImage creates a surface backed by an existing image.
// The surface will render into the provided image directly.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	bounds := img.Bounds()
	return &ImageSurface{
		width:       bounds.Dx(),
		height:      bounds.Dy(),
		img:         img,
		rast:        vector.NewRasterizer(bounds.Dx(), bounds.Dy()),
		path:        NewPath(),
		lineWidth:   1,
		strokeColor: collide.Black,
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Clear fills the entire surface with the given color.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// BeginPath discards the current path.
func (s *ImageSurface) BeginPath() {
	if s.closed {
		return
	}
	s.path.Reset()
}

// MoveTo starts a new sub-path at (x, y).
func (s *ImageSurface) MoveTo(x, y float64) {
	if s.closed {
		return
	}
	s.path.MoveTo(x, y)
}

// LineTo adds an edge from the current point to (x, y).
func (s *ImageSurface) LineTo(x, y float64) {
	if s.closed {
		return
	}
	s.path.LineTo(x, y)
}

// Rect adds a closed rectangular sub-path.
func (s *ImageSurface) Rect(x, y, w, h float64) {
	if s.closed {
		return
	}
	s.path.Rectangle(x, y, w, h)
}

// SetLineWidth sets the width used by subsequent strokes.
func (s *ImageSurface) SetLineWidth(w float64) {
	s.lineWidth = w
}

// SetStrokeColor sets the colour used by subsequent strokes.
func (s *ImageSurface) SetStrokeColor(c collide.RGBA) {
	s.strokeColor = c
}

// Stroke outlines the current path with the current width and colour.
// The path is kept, matching canvas semantics.
func (s *ImageSurface) Stroke() {
	if s.closed || s.path.IsEmpty() || s.lineWidth <= 0 {
		return
	}

	half := s.lineWidth / 2
	s.rast.Reset(s.width, s.height)
	s.rast.DrawOp = draw.Over

	for _, seg := range s.path.Segments() {
		d := seg.Vector()
		l := d.Length()
		if l == 0 {
			continue
		}
		n := collide.Pt(-d.Y/l*half, d.X/l*half)
		s.quad(seg.P0.Add(n), seg.P1.Add(n), seg.P1.Sub(n), seg.P0.Sub(n))
	}

	// Square joins and caps, wound like the segment quads so overlaps
	// accumulate instead of cancelling.
	for _, v := range s.path.Vertices() {
		s.quad(
			v.Add(collide.Pt(-half, half)),
			v.Add(collide.Pt(half, half)),
			v.Add(collide.Pt(half, -half)),
			v.Add(collide.Pt(-half, -half)),
		)
	}

	s.rast.Draw(s.img, s.img.Bounds(), image.NewUniform(s.strokeColor.Color()), image.Point{})
}

func (s *ImageSurface) quad(a, b, c, d collide.Point) {
	s.rast.MoveTo(float32(a.X), float32(a.Y))
	s.rast.LineTo(float32(b.X), float32(b.Y))
	s.rast.LineTo(float32(c.X), float32(c.Y))
	s.rast.LineTo(float32(d.X), float32(d.Y))
	s.rast.ClosePath()
}

// Label draws text with its baseline starting at (x, y) using the fixed
// 7x13 face. It is meant for short debug annotations such as shape types.
func (s *ImageSurface) Label(x, y float64, text string, c collide.RGBA) {
	if s.closed || text == "" {
		return
	}
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c.Color()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(x), int(y)),
	}
	d.DrawString(text)
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}
	result := image.NewRGBA(s.img.Bounds())
	copy(result.Pix, s.img.Pix)
	return result
}

// Image returns the underlying image.RGBA.
// This is a direct reference, not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// SavePNG writes the surface contents to path as PNG.
func (s *ImageSurface) SavePNG(path string) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("surface: create %s: %w", path, err)
	}
	if err := png.Encode(f, s.img); err != nil {
		_ = f.Close()
		return fmt.Errorf("surface: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("surface: close %s: %w", path, err)
	}
	collide.Logger().Info("surface: snapshot saved", "path", path, "width", s.width, "height", s.height)
	return nil
}

// Close releases resources associated with the surface.
// Close is idempotent; drawing calls after Close are ignored.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	s.rast = nil
	s.path = nil
	return nil
}
