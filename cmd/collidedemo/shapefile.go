package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/collide"
)

// shapeFile is the on-disk description of a debug drawing.
// The same layout is accepted as YAML and TOML.
type shapeFile struct {
	Width      int         `yaml:"width" toml:"width"`
	Height     int         `yaml:"height" toml:"height"`
	Camera     []float64   `yaml:"camera" toml:"camera"`
	Background string      `yaml:"background" toml:"background"`
	Labels     bool        `yaml:"labels" toml:"labels"`
	Shapes     []shapeSpec `yaml:"shapes" toml:"shapes"`
}

// shapeSpec describes one line strip. MoveTo, when set, is applied with
// SetPosition after construction.
type shapeSpec struct {
	Name     string      `yaml:"name" toml:"name"`
	Position []float64   `yaml:"position" toml:"position"`
	Points   [][]float64 `yaml:"points" toml:"points"`
	Closed   bool        `yaml:"closed" toml:"closed"`
	Color    string      `yaml:"color" toml:"color"`
	MoveTo   []float64   `yaml:"move_to" toml:"move_to"`
}

// drawing is a validated shapeFile with its shapes constructed.
type drawing struct {
	width, height int
	camera        collide.Point
	background    collide.RGBA
	labels        bool
	shapes        []namedShape
}

type namedShape struct {
	name  string
	shape *collide.LineStrip
}

var errUnknownFormat = errors.New("unknown shape file format")

// loadDrawing reads a YAML (.yaml, .yml) or TOML (.toml) shape file.
func loadDrawing(path string) (*drawing, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("read shape file: %w", err)
	}
	f, err := decodeShapeFile(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d, err := f.build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// decodeShapeFile parses data according to the file extension ext.
// Unknown keys are rejected in both formats.
func decodeShapeFile(data []byte, ext string) (*shapeFile, error) {
	f := &shapeFile{
		Width:      640,
		Height:     480,
		Background: "#ffffff",
	}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := dec.Decode(f); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w %q", errUnknownFormat, ext)
	}
	return f, nil
}

func (f *shapeFile) build() (*drawing, error) {
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", f.Width, f.Height)
	}
	bg, err := collide.ParseHex(f.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	d := &drawing{
		width:      f.Width,
		height:     f.Height,
		background: bg,
		labels:     f.Labels,
	}
	if d.camera, err = parseOptionalPoint(f.Camera); err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}

	for i, ss := range f.Shapes {
		name := ss.Name
		if name == "" {
			name = fmt.Sprintf("shape-%d", i)
		}
		ls, err := ss.build()
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", name, err)
		}
		d.shapes = append(d.shapes, namedShape{name: name, shape: ls})
	}
	return d, nil
}

func (s shapeSpec) build() (*collide.LineStrip, error) {
	pos, err := parseOptionalPoint(s.Position)
	if err != nil {
		return nil, fmt.Errorf("position: %w", err)
	}
	pts := make([]collide.Point, 0, len(s.Points))
	for i, raw := range s.Points {
		p, err := parsePoint(raw)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		pts = append(pts, p)
	}

	opts := []collide.Option{collide.WithClosed(s.Closed)}
	if s.Color != "" {
		c, err := collide.ParseHex(s.Color)
		if err != nil {
			return nil, fmt.Errorf("color: %w", err)
		}
		opts = append(opts, collide.WithStrokeColor(c))
	}

	ls, err := collide.NewLineStrip(pos, pts, opts...)
	if err != nil {
		return nil, err
	}
	if s.MoveTo != nil {
		to, err := parsePoint(s.MoveTo)
		if err != nil {
			return nil, fmt.Errorf("move_to: %w", err)
		}
		ls.SetPosition(to)
	}
	return ls, nil
}

func parsePoint(v []float64) (collide.Point, error) {
	if len(v) != 2 {
		return collide.Point{}, fmt.Errorf("want [x, y], got %d values", len(v))
	}
	return collide.Pt(v[0], v[1]), nil
}

func parseOptionalPoint(v []float64) (collide.Point, error) {
	if v == nil {
		return collide.Zero, nil
	}
	return parsePoint(v)
}
