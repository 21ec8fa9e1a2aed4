// Package input turns tcell events into GameState commands.
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Ctrl+C
	IntentNewGame    // n
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Keyboard selection
	IntentCursorMove // h,j,k,l, arrows
	IntentSelect     // Space, Enter: start or finish a selection
	IntentCancel     // Esc

	// Mouse
	IntentMouseDown  // Button1 press edge
	IntentMouseDrag  // Motion with Button1 held
	IntentMouseUp    // Button1 release edge
	IntentMouseHover // Motion with no button
)

// Intent is one parsed input event
type Intent struct {
	Type IntentType
	// DX, DY are the cursor step for IntentCursorMove
	DX, DY int
	// X, Y are screen coordinates for mouse intents
	X, Y int
}
