package collide

// Segment is a line segment from P0 to P1 in absolute coordinates.
type Segment struct {
	P0, P1 Point
}

// Seg is a convenience function to create a Segment.
func Seg(p0, p1 Point) Segment {
	return Segment{P0: p0, P1: p1}
}

// Vector returns the displacement from P0 to P1.
func (s Segment) Vector() Point {
	return s.P1.Sub(s.P0)
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.Vector().Length()
}

// AABB returns the tightest box containing both endpoints.
func (s Segment) AABB() AABB {
	return aabbFromCorners(s.P0, s.P1)
}
