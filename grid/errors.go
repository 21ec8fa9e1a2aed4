package grid

import "errors"

// Sentinel errors
var (
	ErrInvalidProbability = errors.New("fill probability must be within [0, 1]")
	ErrInvalidSize        = errors.New("invalid grid dimension")
)
