package collide

import (
	"errors"
	"fmt"
)

// ErrIllegalArgument is returned when a shape is constructed from invalid input.
var ErrIllegalArgument = errors.New("collide: illegal argument")

// IllegalArgumentError describes a rejected constructor argument.
// It matches ErrIllegalArgument under errors.Is.
type IllegalArgumentError struct {
	Op     string // constructor that failed, e.g. "NewLineStrip"
	Reason string
}

func (e *IllegalArgumentError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrIllegalArgument, e.Op, e.Reason)
}

// Unwrap returns ErrIllegalArgument.
func (e *IllegalArgumentError) Unwrap() error {
	return ErrIllegalArgument
}
