package input

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/tile-duel/engine"
	"github.com/lixenwraith/tile-duel/grid"
	"github.com/lixenwraith/tile-duel/render"
)

// Action tells the main loop what to do after an event
type Action uint8

const (
	ActionNone Action = iota
	ActionRedraw
	ActionNewGame
	ActionToggleMute
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionRedraw:
		return "redraw"
	case ActionNewGame:
		return "new_game"
	case ActionToggleMute:
		return "toggle_mute"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Result is the effect of one handled event.
// Outcome is meaningful only when Released is true.
type Result struct {
	Action   Action
	Outcome  engine.Outcome
	Released bool
}

// Translator applies intents to a GameState.
// Mouse coordinates map through the layout of the last drawn frame.
type Translator struct {
	gs      *engine.GameState
	machine *Machine
	layout  render.Layout
	logger  zerolog.Logger

	cursor   grid.Cell // Keyboard cursor
	dragging bool      // Mouse selection started inside the arena
}

// NewTranslator creates a translator driving gs
func NewTranslator(gs *engine.GameState, logger zerolog.Logger) *Translator {
	return &Translator{
		gs:      gs,
		machine: NewMachine(),
		logger:  logger.With().Str("component", "InputTranslator").Logger(),
	}
}

// SetLayout updates the screen-to-grid mapping after a draw
func (t *Translator) SetLayout(l render.Layout) {
	t.layout = l
}

// Reset clears interaction state for a new game and centers the keyboard cursor
func (t *Translator) Reset() {
	t.machine.Reset()
	t.dragging = false
	n := t.gs.Size()
	t.cursor = grid.Cell{X: n / 2, Y: n / 2}
}

// Cursor returns the keyboard cursor cell
func (t *Translator) Cursor() grid.Cell {
	return t.cursor
}

// Handle processes one tcell event
func (t *Translator) Handle(ev tcell.Event) Result {
	intent := t.machine.Process(ev)
	if intent == nil {
		return Result{}
	}

	switch intent.Type {
	case IntentQuit:
		return Result{Action: ActionQuit}
	case IntentNewGame:
		return Result{Action: ActionNewGame}
	case IntentToggleMute:
		return Result{Action: ActionToggleMute}
	case IntentResize:
		return Result{Action: ActionRedraw}

	case IntentCursorMove:
		return t.moveCursor(intent.DX, intent.DY)
	case IntentSelect:
		return t.keySelect()
	case IntentCancel:
		t.dragging = false
		return t.apply("cancel", t.gs.Cancel())

	case IntentMouseDown:
		c, ok := t.layout.CellAt(intent.X, intent.Y)
		if !ok {
			return Result{}
		}
		res := t.apply("press", t.gs.PressStart(c))
		if res.Action == ActionRedraw {
			t.dragging = true
			t.cursor = c
		}
		return res
	case IntentMouseDrag:
		if !t.dragging {
			return Result{}
		}
		return t.apply("move", t.gs.PointerMove(t.layout.Clamp(intent.X, intent.Y)))
	case IntentMouseUp:
		if !t.dragging {
			return Result{}
		}
		t.dragging = false
		return t.release()
	case IntentMouseHover:
		if t.gs.Phase() != engine.PhaseAwaitingSelection {
			return Result{}
		}
		c, ok := t.layout.CellAt(intent.X, intent.Y)
		if !ok {
			return Result{}
		}
		return t.apply("move", t.gs.PointerMove(c))
	}
	return Result{}
}

func (t *Translator) moveCursor(dx, dy int) Result {
	n := t.gs.Size()
	if n == 0 || t.dragging {
		return Result{}
	}
	next := grid.Cell{X: t.cursor.X + dx, Y: t.cursor.Y + dy}
	if next.X < 0 || next.Y < 0 || next.X >= n || next.Y >= n {
		return Result{}
	}
	t.cursor = next
	return t.apply("move", t.gs.PointerMove(next))
}

// keySelect anchors a selection at the cursor or resolves the one in progress
func (t *Translator) keySelect() Result {
	if t.dragging {
		return Result{}
	}
	if t.gs.Phase() == engine.PhaseSelectionInProgress {
		return t.release()
	}
	return t.apply("press", t.gs.PressStart(t.cursor))
}

func (t *Translator) release() Result {
	out, err := t.gs.Release()
	res := t.apply("release", err)
	if err == nil {
		res.Outcome = out
		res.Released = true
	}
	return res
}

// apply maps a command error to a result; commands after game over are expected and silent
func (t *Translator) apply(op string, err error) Result {
	switch {
	case err == nil:
		return Result{Action: ActionRedraw}
	case errors.Is(err, engine.ErrGameOver), errors.Is(err, engine.ErrNotStarted):
		return Result{}
	default:
		t.logger.Debug().Err(err).Str("op", op).Msg("Input ignored")
		return Result{}
	}
}
