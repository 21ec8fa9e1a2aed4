package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes what a key does
type KeyEntry struct {
	Intent IntentType
	DX, DY int
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentCancel},
			tcell.KeyEnter:  {Intent: IntentSelect},
			tcell.KeyUp:     {Intent: IntentCursorMove, DY: -1},
			tcell.KeyDown:   {Intent: IntentCursorMove, DY: 1},
			tcell.KeyLeft:   {Intent: IntentCursorMove, DX: -1},
			tcell.KeyRight:  {Intent: IntentCursorMove, DX: 1},
		},

		Runes: map[rune]KeyEntry{
			'h': {Intent: IntentCursorMove, DX: -1},
			'j': {Intent: IntentCursorMove, DY: 1},
			'k': {Intent: IntentCursorMove, DY: -1},
			'l': {Intent: IntentCursorMove, DX: 1},
			' ': {Intent: IntentSelect},
			'n': {Intent: IntentNewGame},
			'm': {Intent: IntentToggleMute},
			'q': {Intent: IntentQuit},
		},
	}
}
