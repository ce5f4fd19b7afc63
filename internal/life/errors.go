package life

import "errors"

// Sentinel errors returned by grid construction and access.
// Callers test for them with errors.Is; returned errors carry extra context.
var (
	ErrInvalidDimensions  = errors.New("life: invalid dimensions")
	ErrInvalidProbability = errors.New("life: invalid probability")
	ErrOutOfBounds        = errors.New("life: coordinate out of bounds")
	ErrInvalidStatus      = errors.New("life: invalid cell status")
)
