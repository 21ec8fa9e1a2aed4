package input

import "github.com/gdamore/tcell/v2"

// Machine parses tcell events into intents.
// tcell reports button state, not transitions, so the machine tracks Button1 to find edges.
type Machine struct {
	keyTable *KeyTable
	pressed  bool
}

// NewMachine creates a machine with the default key table
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// Reset forgets the tracked button state
func (m *Machine) Reset() {
	m.pressed = false
}

// Process converts one event; nil means the event has no meaning here
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	var entry KeyEntry
	var ok bool
	if ev.Key() == tcell.KeyRune {
		entry, ok = m.keyTable.Runes[ev.Rune()]
	} else {
		entry, ok = m.keyTable.SpecialKeys[ev.Key()]
	}
	if !ok {
		return nil
	}
	return &Intent{Type: entry.Intent, DX: entry.DX, DY: entry.DY}
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0
	wasDown := m.pressed
	m.pressed = down

	intent := &Intent{X: x, Y: y}
	switch {
	case down && !wasDown:
		intent.Type = IntentMouseDown
	case down && wasDown:
		intent.Type = IntentMouseDrag
	case !down && wasDown:
		intent.Type = IntentMouseUp
	default:
		intent.Type = IntentMouseHover
	}
	return intent
}
