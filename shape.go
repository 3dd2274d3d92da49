package collide

// ShapeType tags the concrete kind of a Shape.
type ShapeType string

// Known shape types.
const (
	TypeLineStrip ShapeType = "line-strip"
)

// String implements fmt.Stringer.
func (t ShapeType) String() string {
	return string(t)
}

// Shape is a collidable geometric object.
//
// Shapes are not safe for concurrent use: derived geometry is memoized in
// plain fields, so a shape must be confined to one goroutine or guarded by
// the caller.
type Shape interface {
	// Type returns the concrete kind of the shape.
	Type() ShapeType

	// Position returns the world-space anchor.
	Position() Point

	// SetPosition moves the shape and invalidates all derived geometry.
	SetPosition(p Point)

	// AABB returns the world-space bounding box, computing it at most once
	// between position changes.
	AABB() AABB

	// Render draws the shape for debugging, shifted by -camera.
	Render(s Surface, camera Point)
}

// Geometry holds the per-shape hooks driven by Base.
type Geometry interface {
	// BuildAABB computes a world-space box containing the whole shape.
	BuildAABB() AABB

	// OnPositionChanged drops caches that depend on the position.
	OnPositionChanged()
}

// Base implements the position and bounding-box half of Shape.
// Concrete shapes embed it and call Init before first use.
//
// SetPosition exists only here, so a shape cannot move without its
// OnPositionChanged hook running and the cached box being dropped.
type Base struct {
	typ      ShapeType
	geom     Geometry
	position Point

	aabb      AABB
	aabbValid bool

	// aabbBuilds counts BuildAABB calls.
	aabbBuilds int
}

// Init binds the shape type and geometry hooks. The box cache starts invalid.
func (b *Base) Init(typ ShapeType, geom Geometry) {
	b.typ = typ
	b.geom = geom
	b.aabbValid = false
}

// Type returns the shape type given to Init.
func (b *Base) Type() ShapeType {
	return b.typ
}

// Position returns the world-space anchor.
func (b *Base) Position() Point {
	return b.position
}

// SetPosition stores p, lets the shape drop its own caches, then
// invalidates the bounding box.
func (b *Base) SetPosition(p Point) {
	b.position = p
	if b.geom != nil {
		b.geom.OnPositionChanged()
	}
	b.aabbValid = false
}

// AABB returns the cached box, rebuilding it if the position changed.
func (b *Base) AABB() AABB {
	if b.aabbValid {
		return b.aabb
	}
	if b.geom == nil {
		return AABB{Position: b.position}
	}
	b.aabb = b.geom.BuildAABB()
	b.aabbValid = true
	b.aabbBuilds++
	Logger().Debug("collide: aabb rebuilt", "type", b.typ, "aabb", b.aabb)
	return b.aabb
}
