package collide

// Surface is the drawing target used by Shape.Render for debug output.
//
// It models the small subset of an immediate-mode canvas that shapes need:
// a current path built from sub-paths, a stroke width and a stroke colour.
// Shapes only issue calls; they hold no drawing state of their own.
// See the surface package for a raster implementation and the recording
// package for one that captures the calls.
type Surface interface {
	// BeginPath discards the current path.
	BeginPath()

	// MoveTo starts a new sub-path at (x, y).
	MoveTo(x, y float64)

	// LineTo adds a straight edge from the current point to (x, y).
	LineTo(x, y float64)

	// Rect adds a closed rectangular sub-path.
	Rect(x, y, w, h float64)

	// SetLineWidth sets the width used by subsequent strokes.
	SetLineWidth(w float64)

	// SetStrokeColor sets the colour used by subsequent strokes.
	SetStrokeColor(c RGBA)

	// Stroke outlines the current path. The path is kept.
	Stroke()
}

// Debug drawing styles.
const (
	// BodyLineWidth is the stroke width used for shape outlines.
	BodyLineWidth = 7

	// AABBLineWidth is the stroke width used for bounding boxes.
	AABBLineWidth = 1

	// BodyAlpha is the opacity applied to the shape colour.
	BodyAlpha = 0.75
)

// AABBColor is the stroke colour of bounding boxes.
var AABBColor = RGBA2(50.0/255, 175.0/255, 45.0/255, 0.5)

// palette maps shape types to their debug colour.
var palette = map[ShapeType]RGBA{
	TypeLineStrip: RGB(0.75, 0.2, 0.9),
}

// defaultShapeColor is used for types missing from the palette.
var defaultShapeColor = RGB(0.2, 0.4, 1)

// StrokeColor returns the debug colour of a shape type at the given alpha.
func StrokeColor(t ShapeType, alpha float64) RGBA {
	c, ok := palette[t]
	if !ok {
		c = defaultShapeColor
	}
	return c.WithAlpha(alpha)
}

// strokeAABB draws box outlined in AABBColor, shifted by -camera.
func strokeAABB(s Surface, box AABB, camera Point) {
	p := box.Position.Sub(camera)
	s.SetLineWidth(AABBLineWidth)
	s.SetStrokeColor(AABBColor)
	s.BeginPath()
	s.Rect(p.X, p.Y, box.Size.X, box.Size.Y)
	s.Stroke()
}
