// Package collide provides 2D collision shapes and their bounding volumes.
//
// # Overview
//
// collide represents collidable shapes in a small, allocation-aware way.
// Every shape has a world-space anchor (its position); shape geometry is
// stored relative to that anchor and translated to world space on demand.
// Derived geometry is memoized and dropped whenever the position changes,
// so repeated queries between moves cost O(1).
//
// # Quick Start
//
//	import "github.com/gogpu/collide"
//
//	ls, err := collide.NewLineStrip(collide.Pt(5, 5), []collide.Point{
//	    collide.Pt(0, 0), collide.Pt(1, 0), collide.Pt(1, 1),
//	}, collide.WithClosed(true))
//	if err != nil {
//	    return err
//	}
//
//	box := ls.AABB()        // {pos=(5,5) size=(1,1)}
//	segs := ls.AbsLines()   // world-space segments for narrow-phase tests
//	ls.SetPosition(collide.Pt(20, 0))
//
// # Architecture
//
// The library is organized into:
//   - Primitives: Point, Segment, AABB
//   - Shapes: the Shape interface, the embeddable Base that owns position
//     and bounding-box caching, and LineStrip
//   - Debug drawing: the Surface interface, implemented by surface
//     (raster, PNG output) and recording (captured commands)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// An AABB stores its minimum corner in Position and its extent in Size.
//
// # Concurrency
//
// Shapes are not safe for concurrent use. Confine each shape to one
// goroutine or synchronize externally. SetLogger and Logger are safe for
// concurrent use.
package collide

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
