// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides a raster drawing target for collide debug output.
//
// ImageSurface implements collide.Surface on top of an *image.RGBA.
// Strokes are expanded into filled outlines and rasterized with
// golang.org/x/image/vector, so shapes rendered through Shape.Render can be
// inspected pixel by pixel or written out as PNG.
//
// # Usage
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//	ls.Render(s, collide.Zero)
//	s.Label(10, 20, "line-strip", collide.Black)
//
//	if err := s.SavePNG("debug.png"); err != nil {
//	    return err
//	}
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
package surface
