package collide

import "fmt"

// LineStrip is a polyline collision shape: an ordered list of points,
// relative to the shape position, joined by straight segments.
// A closed strip repeats its first point at the end.
type LineStrip struct {
	Base

	points      []Point
	closed      bool
	strokeColor *RGBA

	absPoints      []Point
	absPointsValid bool
	absLines       []Segment
	absLinesValid  bool

	// absPointsBuilds and absLinesBuilds count cache misses.
	absPointsBuilds int
	absLinesBuilds  int
}

var _ Shape = (*LineStrip)(nil)

// NewLineStrip creates a line strip anchored at position from points given
// in local space. At least two points are required. points is copied, so the
// caller keeps ownership of the slice.
func NewLineStrip(position Point, points []Point, opts ...Option) (*LineStrip, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(points) < 2 {
		err := &IllegalArgumentError{
			Op:     "NewLineStrip",
			Reason: fmt.Sprintf("need at least two points, got %d", len(points)),
		}
		Logger().Debug("collide: line strip rejected", "points", len(points))
		return nil, err
	}

	n := len(points)
	if o.closed {
		n++
	}
	stored := make([]Point, n)
	copy(stored, points)
	if o.closed {
		stored[n-1] = points[0]
	}

	ls := &LineStrip{
		points:      stored,
		closed:      o.closed,
		strokeColor: o.strokeColor,
	}
	ls.Init(TypeLineStrip, ls)
	ls.SetPosition(position)
	return ls, nil
}

// Closed reports whether the strip was built as a loop.
func (ls *LineStrip) Closed() bool {
	return ls.closed
}

// Len returns the number of stored points, including the closing point.
func (ls *LineStrip) Len() int {
	return len(ls.points)
}

// Points returns a copy of the local-space points.
func (ls *LineStrip) Points() []Point {
	out := make([]Point, len(ls.points))
	copy(out, ls.points)
	return out
}

// AbsPoints returns the points translated by the current position.
// The result is cached until the next SetPosition and must not be modified.
func (ls *LineStrip) AbsPoints() []Point {
	if ls.absPointsValid {
		return ls.absPoints
	}

	pos := ls.Position()
	abs := make([]Point, len(ls.points))
	for i, p := range ls.points {
		abs[i] = p.Add(pos)
	}

	ls.absPoints = abs
	ls.absPointsValid = true
	ls.absPointsBuilds++
	return abs
}

// AbsLines returns the consecutive segments between AbsPoints.
// The result is cached until the next SetPosition and must not be modified.
func (ls *LineStrip) AbsLines() []Segment {
	if ls.absLinesValid {
		return ls.absLines
	}

	pts := ls.AbsPoints()
	lines := make([]Segment, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		lines = append(lines, Segment{P0: pts[i], P1: pts[i+1]})
	}

	ls.absLines = lines
	ls.absLinesValid = true
	ls.absLinesBuilds++
	return lines
}

// BuildAABB returns the tightest box around the local points, moved to the
// current position. It reads only the local points so it never depends on
// the absolute-point cache.
func (ls *LineStrip) BuildAABB() AABB {
	return AABBFromPoints(ls.points...).Translate(ls.Position())
}

// OnPositionChanged drops the absolute point and segment caches.
func (ls *LineStrip) OnPositionChanged() {
	ls.absPoints = nil
	ls.absPointsValid = false
	ls.absLines = nil
	ls.absLinesValid = false
}

// Render strokes the polyline through AbsPoints, then its bounding box,
// everything shifted by -camera.
func (ls *LineStrip) Render(s Surface, camera Point) {
	col := StrokeColor(ls.Type(), BodyAlpha)
	if ls.strokeColor != nil {
		col = ls.strokeColor.WithAlpha(BodyAlpha)
	}

	pts := ls.AbsPoints()
	s.SetLineWidth(BodyLineWidth)
	s.SetStrokeColor(col)
	s.BeginPath()
	for i, p := range pts {
		p = p.Sub(camera)
		if i == 0 {
			s.MoveTo(p.X, p.Y)
		} else {
			s.LineTo(p.X, p.Y)
		}
	}
	s.Stroke()

	strokeAABB(s, ls.AABB(), camera)
}
