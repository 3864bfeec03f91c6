package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a universe is created with a non-positive width or height
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrOutOfRange is returned when a position is outside a bounded universe
	ErrOutOfRange = errors.New("position out of range")
	// ErrDegenerateInput is returned when a universe is built from data with no rows or empty rows
	ErrDegenerateInput = errors.New("degenerate input")
	// ErrUnknownBoundary is returned for an unrecognized boundary policy name
	ErrUnknownBoundary = errors.New("unknown boundary")
	// ErrUnknownPattern is returned for an unrecognized pattern name
	ErrUnknownPattern = errors.New("unknown pattern")
)
