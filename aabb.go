package collide

import "fmt"

// AABB is an axis-aligned bounding box.
// Position is the minimum corner and Size the extent along each axis.
// Size is never negative for boxes built by this package.
type AABB struct {
	Position, Size Point
}

// NewAABB creates a box from its minimum corner and size.
// Negative sizes are normalized so the box covers the same area.
func NewAABB(position, size Point) AABB {
	return aabbFromCorners(position, position.Add(size))
}

// AABBFromPoints returns the tightest box containing every point.
// With no points it returns the zero box at the origin.
func AABBFromPoints(pts ...Point) AABB {
	if len(pts) == 0 {
		return AABB{}
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = lo.min(p)
		hi = hi.max(p)
	}
	return AABB{Position: lo, Size: hi.Sub(lo)}
}

func aabbFromCorners(a, b Point) AABB {
	lo, hi := a.min(b), a.max(b)
	return AABB{Position: lo, Size: hi.Sub(lo)}
}

// Min returns the minimum corner.
func (b AABB) Min() Point {
	return b.Position
}

// Max returns the maximum corner.
func (b AABB) Max() Point {
	return b.Position.Add(b.Size)
}

// AddVector grows the box in place so that it contains p.
func (b *AABB) AddVector(p Point) {
	*b = aabbFromCorners(b.Min().min(p), b.Max().max(p))
}

// Translate returns the box moved by d.
func (b AABB) Translate(d Point) AABB {
	return AABB{Position: b.Position.Add(d), Size: b.Size}
}

// Union returns the smallest box containing both b and o.
func (b AABB) Union(o AABB) AABB {
	return aabbFromCorners(b.Min().min(o.Min()), b.Max().max(o.Max()))
}

// Contains reports whether p lies inside the box. Edges are inclusive.
func (b AABB) Contains(p Point) bool {
	hi := b.Max()
	return p.X >= b.Position.X && p.X <= hi.X && p.Y >= b.Position.Y && p.Y <= hi.Y
}

// Intersects reports whether two boxes overlap. Touching edges count as overlap,
// which keeps broad-phase culling conservative.
func (b AABB) Intersects(o AABB) bool {
	bh, oh := b.Max(), o.Max()
	return b.Position.X <= oh.X && o.Position.X <= bh.X &&
		b.Position.Y <= oh.Y && o.Position.Y <= bh.Y
}

// String implements fmt.Stringer.
func (b AABB) String() string {
	return fmt.Sprintf("AABB{pos=(%g,%g) size=(%g,%g)}", b.Position.X, b.Position.Y, b.Size.X, b.Size.Y)
}
