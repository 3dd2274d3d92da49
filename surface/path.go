// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "github.com/gogpu/collide"

// Path is a list of straight-edged sub-paths.
//
// Example:
//
//	p := surface.NewPath()
//	p.MoveTo(100, 100)
//	p.LineTo(200, 100)
//	p.LineTo(150, 200)
//	p.Close()
type Path struct {
	subpaths []subpath
}

type subpath struct {
	points []collide.Point
	closed bool
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.subpaths = append(p.subpaths, subpath{points: []collide.Point{collide.Pt(x, y)}})
}

// LineTo adds a line from the current point to (x, y).
// Without a current point it behaves like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if len(p.subpaths) == 0 || p.current().closed {
		p.MoveTo(x, y)
		return
	}
	sp := p.current()
	sp.points = append(sp.points, collide.Pt(x, y))
}

// Close closes the current subpath back to its first point.
func (p *Path) Close() {
	if len(p.subpaths) == 0 {
		return
	}
	p.current().closed = true
}

// Rectangle adds a closed rectangular subpath.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Reset removes all subpaths, keeping allocated memory.
func (p *Path) Reset() {
	p.subpaths = p.subpaths[:0]
}

// IsEmpty reports whether the path has no subpaths.
func (p *Path) IsEmpty() bool {
	return len(p.subpaths) == 0
}

// Segments returns every edge of the path, including closing edges.
func (p *Path) Segments() []collide.Segment {
	var segs []collide.Segment
	for _, sp := range p.subpaths {
		for i := 0; i+1 < len(sp.points); i++ {
			segs = append(segs, collide.Seg(sp.points[i], sp.points[i+1]))
		}
		if sp.closed && len(sp.points) > 1 {
			segs = append(segs, collide.Seg(sp.points[len(sp.points)-1], sp.points[0]))
		}
	}
	return segs
}

// Vertices returns every point of the path in order.
func (p *Path) Vertices() []collide.Point {
	var pts []collide.Point
	for _, sp := range p.subpaths {
		pts = append(pts, sp.points...)
	}
	return pts
}

func (p *Path) current() *subpath {
	return &p.subpaths[len(p.subpaths)-1]
}
