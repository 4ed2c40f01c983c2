package vstick

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLayout is returned when pad or handle metrics cannot be used to
	// compute a start position and radius.
	ErrInvalidLayout = errors.New("vstick: invalid layout")

	// ErrUnknownInput is returned by ParseInputType for unrecognized names.
	ErrUnknownInput = errors.New("vstick: unknown input type")
)

// LayoutError describes which layout metric failed validation.
type LayoutError struct {
	Field string
	Value float64
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("vstick: invalid layout: %s = %v", e.Field, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidLayout.
func (e *LayoutError) Unwrap() error {
	return ErrInvalidLayout
}
