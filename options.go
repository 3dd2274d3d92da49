package collide

// Option configures a shape during construction.
//
// Example:
//
//	// Open strip (default)
//	ls, err := collide.NewLineStrip(pos, pts)
//
//	// Closed loop with a custom debug colour
//	ls, err := collide.NewLineStrip(pos, pts,
//	    collide.WithClosed(true),
//	    collide.WithStrokeColor(collide.RGB(1, 0, 0)))
type Option func(*options)

// options holds optional configuration for shape creation.
type options struct {
	closed      bool
	strokeColor *RGBA
}

// defaultOptions returns the default shape options.
func defaultOptions() options {
	return options{
		closed:      false,
		strokeColor: nil, // palette colour of the shape type
	}
}

// WithClosed closes a LineStrip into a loop by repeating its first point.
func WithClosed(closed bool) Option {
	return func(o *options) {
		o.closed = closed
	}
}

// WithStrokeColor overrides the palette colour used by Render.
// The alpha of c is replaced by BodyAlpha.
func WithStrokeColor(c RGBA) Option {
	return func(o *options) {
		o.strokeColor = &c
	}
}
