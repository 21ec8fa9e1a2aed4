package constant

import "time"

// Main Loop Timing
const (
	// FrameUpdateInterval is the redraw interval while no input arrives (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// EventChannelSize is the capacity of the terminal event channel between poller and main loop
	EventChannelSize = 256
)

// Logging
const (
	// LogDir is the default directory for debug logs
	LogDir = "logs"

	// LogFileName is the default debug log file name inside LogDir
	LogFileName = "tile-duel.log"
)
