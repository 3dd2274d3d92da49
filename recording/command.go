package recording

import (
	"fmt"

	"github.com/gogpu/collide"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one collide.Surface method.
type CommandType uint8

const (
	// Path commands
	CmdBeginPath CommandType = iota // Discard the current path
	CmdMoveTo                       // Start a sub-path
	CmdLineTo                       // Add an edge
	CmdRect                         // Add a closed rectangle

	// Style commands
	CmdSetLineWidth   // Set stroke width
	CmdSetStrokeColor // Set stroke colour

	// Drawing commands
	CmdStroke // Stroke the current path
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBeginPath:      "BeginPath",
	CmdMoveTo:         "MoveTo",
	CmdLineTo:         "LineTo",
	CmdRect:           "Rect",
	CmdSetLineWidth:   "SetLineWidth",
	CmdSetStrokeColor: "SetStrokeColor",
	CmdStroke:         "Stroke",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// BeginPathCommand discards the current path.
type BeginPathCommand struct{}

// Type implements Command.
func (BeginPathCommand) Type() CommandType { return CmdBeginPath }

func (BeginPathCommand) String() string { return "BeginPath" }

// MoveToCommand starts a new sub-path at (X, Y).
type MoveToCommand struct {
	X, Y float64
}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

func (c MoveToCommand) String() string { return fmt.Sprintf("MoveTo %g %g", c.X, c.Y) }

// LineToCommand adds an edge to (X, Y).
type LineToCommand struct {
	X, Y float64
}

// Type implements Command.
func (LineToCommand) Type() CommandType { return CmdLineTo }

func (c LineToCommand) String() string { return fmt.Sprintf("LineTo %g %g", c.X, c.Y) }

// RectCommand adds a closed rectangle.
type RectCommand struct {
	X, Y, W, H float64
}

// Type implements Command.
func (RectCommand) Type() CommandType { return CmdRect }

func (c RectCommand) String() string {
	return fmt.Sprintf("Rect %g %g %g %g", c.X, c.Y, c.W, c.H)
}

// SetLineWidthCommand sets the stroke width.
type SetLineWidthCommand struct {
	Width float64
}

// Type implements Command.
func (SetLineWidthCommand) Type() CommandType { return CmdSetLineWidth }

func (c SetLineWidthCommand) String() string { return fmt.Sprintf("SetLineWidth %g", c.Width) }

// SetStrokeColorCommand sets the stroke colour.
type SetStrokeColorCommand struct {
	Color collide.RGBA
}

// Type implements Command.
func (SetStrokeColorCommand) Type() CommandType { return CmdSetStrokeColor }

func (c SetStrokeColorCommand) String() string {
	return fmt.Sprintf("SetStrokeColor %.3g %.3g %.3g %.3g", c.Color.R, c.Color.G, c.Color.B, c.Color.A)
}

// StrokeCommand strokes the current path.
type StrokeCommand struct{}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

func (StrokeCommand) String() string { return "Stroke" }
