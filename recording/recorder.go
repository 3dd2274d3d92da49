package recording

import (
	"fmt"
	"io"

	"github.com/gogpu/collide"
)

// Recorder captures collide.Surface calls as commands.
// Use FinishRecording to obtain an immutable Recording.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
}

var _ collide.Surface = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{commands: make([]Command, 0, 32)}
}

func (r *Recorder) record(c Command) {
	r.commands = append(r.commands, c)
}

// BeginPath records CmdBeginPath.
func (r *Recorder) BeginPath() { r.record(BeginPathCommand{}) }

// MoveTo records CmdMoveTo.
func (r *Recorder) MoveTo(x, y float64) { r.record(MoveToCommand{X: x, Y: y}) }

// LineTo records CmdLineTo.
func (r *Recorder) LineTo(x, y float64) { r.record(LineToCommand{X: x, Y: y}) }

// Rect records CmdRect.
func (r *Recorder) Rect(x, y, w, h float64) { r.record(RectCommand{X: x, Y: y, W: w, H: h}) }

// SetLineWidth records CmdSetLineWidth.
func (r *Recorder) SetLineWidth(w float64) { r.record(SetLineWidthCommand{Width: w}) }

// SetStrokeColor records CmdSetStrokeColor.
func (r *Recorder) SetStrokeColor(c collide.RGBA) { r.record(SetStrokeColorCommand{Color: c}) }

// Stroke records CmdStroke.
func (r *Recorder) Stroke() { r.record(StrokeCommand{}) }

// FinishRecording returns the commands recorded so far and resets the
// Recorder for reuse.
func (r *Recorder) FinishRecording() *Recording {
	rec := &Recording{commands: r.commands}
	r.commands = make([]Command, 0, cap(r.commands))
	return rec
}

// Recording is an immutable list of captured commands.
type Recording struct {
	commands []Command
}

// Commands returns a copy of the recorded commands.
func (rec *Recording) Commands() []Command {
	out := make([]Command, len(rec.commands))
	copy(out, rec.commands)
	return out
}

// Len returns the number of recorded commands.
func (rec *Recording) Len() int {
	return len(rec.commands)
}

// Count returns how many commands of type t were recorded.
func (rec *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range rec.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Bounds returns the box around every point passed to MoveTo, LineTo and
// Rect. ok is false when no geometry was recorded. Stroke width is ignored.
func (rec *Recording) Bounds() (box collide.AABB, ok bool) {
	add := func(p collide.Point) {
		if !ok {
			box, ok = collide.AABB{Position: p}, true
			return
		}
		box.AddVector(p)
	}
	for _, c := range rec.commands {
		switch c := c.(type) {
		case MoveToCommand:
			add(collide.Pt(c.X, c.Y))
		case LineToCommand:
			add(collide.Pt(c.X, c.Y))
		case RectCommand:
			add(collide.Pt(c.X, c.Y))
			add(collide.Pt(c.X+c.W, c.Y+c.H))
		}
	}
	return box, ok
}

// Playback replays every command onto s in order.
func (rec *Recording) Playback(s collide.Surface) {
	for _, c := range rec.commands {
		switch c := c.(type) {
		case BeginPathCommand:
			s.BeginPath()
		case MoveToCommand:
			s.MoveTo(c.X, c.Y)
		case LineToCommand:
			s.LineTo(c.X, c.Y)
		case RectCommand:
			s.Rect(c.X, c.Y, c.W, c.H)
		case SetLineWidthCommand:
			s.SetLineWidth(c.Width)
		case SetStrokeColorCommand:
			s.SetStrokeColor(c.Color)
		case StrokeCommand:
			s.Stroke()
		}
	}
	collide.Logger().Debug("recording: playback done", "commands", len(rec.commands))
}

// Dump writes one line per command to w.
func (rec *Recording) Dump(w io.Writer) error {
	for i, c := range rec.commands {
		if _, err := fmt.Fprintf(w, "%4d %v\n", i, c); err != nil {
			return fmt.Errorf("recording: dump: %w", err)
		}
	}
	return nil
}
