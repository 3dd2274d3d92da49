package collide

import (
	"fmt"
	"image/color"
	"strings"
)

// RGBA represents a straight-alpha colour. Each component is in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// WithAlpha returns c with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// ParseHex parses a colour in "RGB", "RGBA", "RRGGBB" or "RRGGBBAA" form,
// with an optional leading '#'.
func ParseHex(s string) (RGBA, error) {
	hex := strings.TrimPrefix(s, "#")

	var r, g, b uint32
	a := uint32(255)
	var ok bool

	switch len(hex) {
	case 3, 4:
		vals := make([]uint32, len(hex))
		ok = true
		for i := range vals {
			vals[i], ok = parseHexDigits(hex[i:i+1], ok)
			vals[i] *= 17
		}
		r, g, b = vals[0], vals[1], vals[2]
		if len(hex) == 4 {
			a = vals[3]
		}
	case 6, 8:
		ok = true
		r, ok = parseHexDigits(hex[0:2], ok)
		g, ok = parseHexDigits(hex[2:4], ok)
		b, ok = parseHexDigits(hex[4:6], ok)
		if len(hex) == 8 {
			a, ok = parseHexDigits(hex[6:8], ok)
		}
	}
	if !ok {
		return RGBA{}, fmt.Errorf("%w: bad hex colour %q", ErrIllegalArgument, s)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// parseHexDigits parses s as hexadecimal. ok is threaded through so callers
// can chain several parses and check once.
func parseHexDigits(s string, ok bool) (uint32, bool) {
	var val uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return val, ok
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA2(0, 0, 0, 0)
)
