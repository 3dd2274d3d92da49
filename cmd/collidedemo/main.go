// Command collidedemo renders collide line strips described in a YAML or
// TOML shape file to a PNG, for visual debugging of shapes and their
// bounding boxes.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/collide"
	"github.com/gogpu/collide/recording"
	"github.com/gogpu/collide/surface"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("collidedemo: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("collidedemo", flag.ContinueOnError)
	var (
		input   = fs.String("input", "shapes.yaml", "shape file (.yaml, .yml or .toml)")
		output  = fs.String("output", "shapes.png", "output PNG file")
		trace   = fs.Bool("trace", false, "print recorded drawing commands")
		verbose = fs.Bool("v", false, "enable debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		collide.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	d, err := loadDrawing(*input)
	if err != nil {
		return err
	}

	rec := recording.NewRecorder()
	for _, ns := range d.shapes {
		ns.shape.Render(rec, d.camera)
	}
	r := rec.FinishRecording()
	if *trace {
		if err := r.Dump(stdout); err != nil {
			return err
		}
	}

	s := surface.NewImageSurface(d.width, d.height)
	defer func() { _ = s.Close() }()
	s.Clear(d.background.Color())
	r.Playback(s)
	if d.labels {
		for _, ns := range d.shapes {
			at := ns.shape.AABB().Position.Sub(d.camera)
			s.Label(at.X, at.Y-6, ns.name, collide.Black)
		}
	}

	for _, pair := range overlaps(d.shapes) {
		fmt.Fprintf(stdout, "overlap: %s %s\n", pair[0], pair[1])
	}

	if err := s.SavePNG(*output); err != nil {
		return err
	}
	collide.Logger().Info("collidedemo: done", "shapes", len(d.shapes), "output", *output)
	return nil
}

// overlaps returns the names of every shape pair whose bounding boxes
// intersect, in input order.
func overlaps(shapes []namedShape) [][2]string {
	var out [][2]string
	for i := range shapes {
		for j := i + 1; j < len(shapes); j++ {
			if shapes[i].shape.AABB().Intersects(shapes[j].shape.AABB()) {
				out = append(out, [2]string{shapes[i].name, shapes[j].name})
			}
		}
	}
	return out
}
