package engine

import "errors"

// Sentinel errors for calls that do not match the current phase.
// They indicate input/core desynchronization rather than user mistakes.
var (
	ErrNotStarted   = errors.New("no game started")
	ErrInvalidPhase = errors.New("command not allowed in current phase")
	ErrOutOfBounds  = errors.New("cell outside board")
	ErrGameOver     = errors.New("game is over")
)
