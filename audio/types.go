// Package audio plays short feedback sounds for board events through beep's speaker.
package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundEliminate SoundType = iota // Tiles removed
	SoundGameOver                   // Last move made
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundEliminate:
		return "eliminate"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownSound   = errors.New("unknown sound type")
)
