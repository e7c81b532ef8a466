package model

import (
	"errors"
	"fmt"
)

// ErrInvalidRange matches any InvalidRangeError via errors.Is.
var ErrInvalidRange = errors.New("slider minimum must be less than maximum")

// InvalidRangeError is returned by Render when minimum >= maximum.
type InvalidRangeError struct {
	Minimum float64
	Maximum float64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid slider range [%g, %g]: %v", e.Minimum, e.Maximum, ErrInvalidRange)
}

// Is lets errors.Is(err, ErrInvalidRange) match.
func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}
