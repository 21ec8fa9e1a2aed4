package engine

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/tile-duel/grid"
	"github.com/lixenwraith/tile-duel/rule"
)

// GameState owns the board and drives the press, move, release cycle.
// It is not safe for concurrent use; callers serialize input onto one goroutine.
type GameState struct {
	logger   zerolog.Logger // Base logger, component scoped
	gameLog  zerolog.Logger // Base logger with game_id of the running game
	rng      *rand.Rand
	detector *rule.GameOverDetector
	turns    *TurnController
	first    Player

	// ===== PER-GAME STATE =====

	board  *grid.Grid
	gameID uuid.UUID
	phase  Phase
	moves  int

	winner    Player
	hasWinner bool

	// ===== PER-INTERACTION STATE =====
	// Valid only in PhaseSelectionInProgress

	anchor   grid.Cell
	live     grid.Cell
	rect     rule.Rect
	validity rule.Validity

	// Last pointer position, drawn as the hover tile when nothing is selected
	hover    grid.Cell
	hasHover bool
}

// Option configures a GameState
type Option func(*GameState)

// WithLogger sets the structured logger; defaults to a no-op logger
func WithLogger(logger zerolog.Logger) Option {
	return func(gs *GameState) {
		gs.logger = logger
	}
}

// WithRand sets the random source for map generation; nil keeps the process-wide source
func WithRand(rng *rand.Rand) Option {
	return func(gs *GameState) {
		gs.rng = rng
	}
}

// WithFirstPlayer chooses who moves first in every new game
func WithFirstPlayer(p Player) Option {
	return func(gs *GameState) {
		gs.first = p
	}
}

// NewGameState creates an orchestrator with no game running; call StartGame next
func NewGameState(opts ...Option) *GameState {
	gs := &GameState{
		logger: zerolog.Nop(),
		first:  PlayerOne,
	}
	for _, opt := range opts {
		opt(gs)
	}

	base := gs.logger
	gs.logger = base.With().Str("component", "GameState").Logger()
	gs.gameLog = gs.logger
	gs.detector = rule.NewGameOverDetector(base)
	gs.turns = NewTurnController(gs.first)
	return gs
}

// ===== COMMANDS =====

// StartGame generates a fresh n x n board with fill probability p and resets all state.
// A board with no 2x2 block starts directly in PhaseGameOver with no winner.
func (gs *GameState) StartGame(p float64, n int) error {
	board, err := grid.Generate(p, n, gs.rng)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	gs.reset(board)
	return nil
}

// StartGameWithGrid starts a game on a copy of a prepared board
func (gs *GameState) StartGameWithGrid(board *grid.Grid) {
	gs.reset(board.Clone())
}

func (gs *GameState) reset(board *grid.Grid) {
	gs.board = board
	gs.gameID = uuid.New()
	gs.gameLog = gs.logger.With().Str("game_id", gs.gameID.String()).Logger()
	gs.phase = PhaseAwaitingSelection
	gs.moves = 0
	gs.winner = PlayerOne
	gs.hasWinner = false
	gs.hasHover = false
	gs.clearSelection()
	gs.turns.Reset(gs.first)

	gs.gameLog.Info().
		Int("size", board.Size()).
		Int("occupied", board.Count()).
		Stringer("first", gs.first).
		Msg("Game started")

	if gs.detector.IsTerminal(board) {
		gs.transition(PhaseGameOver)
		gs.gameLog.Info().Msg("No moves available at start")
	}
}

// PressStart anchors a new selection at c
func (gs *GameState) PressStart(c grid.Cell) error {
	if err := gs.checkCommand("press", c, PhaseAwaitingSelection); err != nil {
		return err
	}

	gs.anchor = c
	gs.live = c
	gs.hover = c
	gs.hasHover = true
	gs.recompute()
	gs.transition(PhaseSelectionInProgress)

	gs.gameLog.Debug().Stringer("anchor", c).Stringer("player", gs.turns.Current()).Msg("Selection started")
	return nil
}

// PointerMove updates the hover cell and, during a selection, the live corner
func (gs *GameState) PointerMove(c grid.Cell) error {
	if err := gs.checkCommand("move", c, PhaseAwaitingSelection, PhaseSelectionInProgress); err != nil {
		return err
	}

	gs.hover = c
	gs.hasHover = true
	if gs.phase != PhaseSelectionInProgress || c == gs.live {
		return nil
	}

	gs.live = c
	prev := gs.validity
	gs.recompute()
	if gs.validity != prev {
		gs.gameLog.Debug().Stringer("rect", gs.rect).Stringer("validity", gs.validity).Msg("Selection changed")
	}
	return nil
}

// Release resolves the current selection. Invalid or degenerate selections are
// discarded without error; a performed elimination passes the turn and may end the game.
func (gs *GameState) Release() (Outcome, error) {
	if err := gs.checkPhase("release", PhaseSelectionInProgress); err != nil {
		return OutcomeDiscarded, err
	}

	rect, validity := gs.rect, gs.validity
	gs.clearSelection()

	if !rule.AttemptEliminate(gs.board, rect, validity) {
		gs.transition(PhaseAwaitingSelection)
		gs.gameLog.Debug().Stringer("rect", rect).Stringer("validity", validity).Msg("Selection discarded")
		return OutcomeDiscarded, nil
	}

	mover := gs.turns.Current()
	gs.turns.Advance()
	gs.moves++

	gs.gameLog.Info().
		Stringer("player", mover).
		Stringer("rect", rect).
		Int("removed", rect.Area()).
		Int("remaining", gs.board.Count()).
		Int("moves", gs.moves).
		Msg("Tiles eliminated")

	if gs.detector.IsTerminal(gs.board) {
		gs.winner = mover
		gs.hasWinner = true
		gs.transition(PhaseGameOver)
		gs.gameLog.Info().Stringer("winner", mover).Int("moves", gs.moves).Msgf("%s WIN!", mover)
		return OutcomeGameOver, nil
	}

	gs.transition(PhaseAwaitingSelection)
	gs.gameLog.Info().Stringer("player", gs.turns.Current()).Msg("Current turn")
	return OutcomeEliminated, nil
}

// Cancel abandons the selection in progress without touching the board
func (gs *GameState) Cancel() error {
	if err := gs.checkPhase("cancel", PhaseSelectionInProgress); err != nil {
		return err
	}
	gs.clearSelection()
	gs.transition(PhaseAwaitingSelection)
	gs.gameLog.Debug().Msg("Selection cancelled")
	return nil
}

// checkPhase validates that a game exists and is in one of the allowed phases
func (gs *GameState) checkPhase(op string, allowed ...Phase) error {
	if gs.board == nil {
		return ErrNotStarted
	}
	if gs.phase == PhaseGameOver {
		return ErrGameOver
	}
	for _, p := range allowed {
		if gs.phase == p {
			return nil
		}
	}
	return fmt.Errorf("%w: %s during %s", ErrInvalidPhase, op, gs.phase)
}

// checkCommand is checkPhase plus a bounds check on the command's cell
func (gs *GameState) checkCommand(op string, c grid.Cell, allowed ...Phase) error {
	if err := gs.checkPhase(op, allowed...); err != nil {
		return err
	}
	if !gs.board.InBounds(c) {
		return fmt.Errorf("%w: %s %s on %dx%d board", ErrOutOfBounds, op, c, gs.board.Size(), gs.board.Size())
	}
	return nil
}

// transition applies a phase change from the transition table.
// Callers only request legal changes, an illegal one is a bug.
func (gs *GameState) transition(to Phase) {
	if !CanTransition(gs.phase, to) {
		panic(fmt.Sprintf("engine: illegal phase transition %s -> %s", gs.phase, to))
	}
	gs.phase = to
}

func (gs *GameState) recompute() {
	gs.rect = rule.ComputeRect(gs.anchor, gs.live)
	gs.validity = rule.Evaluate(gs.board, &gs.rect)
}

func (gs *GameState) clearSelection() {
	gs.anchor = grid.Cell{}
	gs.live = grid.Cell{}
	gs.rect = rule.Rect{}
	gs.validity = rule.ValidityUnknown
}

// ===== QUERIES =====

// Started reports whether StartGame has been called
func (gs *GameState) Started() bool {
	return gs.board != nil
}

// Size returns the board dimension, 0 before the first game
func (gs *GameState) Size() int {
	if gs.board == nil {
		return 0
	}
	return gs.board.Size()
}

// OccupiedCells returns a row-major copy of the remaining tiles
func (gs *GameState) OccupiedCells() []grid.Cell {
	if gs.board == nil {
		return nil
	}
	return gs.board.OccupiedCells()
}

// IsOccupied reports whether c still holds a tile; out-of-range cells are never occupied
func (gs *GameState) IsOccupied(c grid.Cell) bool {
	if gs.board == nil || !gs.board.InBounds(c) {
		return false
	}
	return gs.board.IsOccupied(c)
}

// Selection returns the current rectangle; ok is false when nothing is being selected
func (gs *GameState) Selection() (rule.Rect, bool) {
	if gs.phase != PhaseSelectionInProgress || gs.board == nil {
		return rule.Rect{}, false
	}
	return gs.rect, true
}

// Validity returns ValidityUnknown unless a selection is in progress
func (gs *GameState) Validity() rule.Validity {
	if gs.phase != PhaseSelectionInProgress {
		return rule.ValidityUnknown
	}
	return gs.validity
}

// CurrentPlayer returns the player to move
func (gs *GameState) CurrentPlayer() Player {
	return gs.turns.Current()
}

// IsGameOver reports whether no legal move remains
func (gs *GameState) IsGameOver() bool {
	return gs.board != nil && gs.phase == PhaseGameOver
}

// Winner returns the player who made the last elimination once the game is over.
// ok is false while playing and when the board started without any move.
func (gs *GameState) Winner() (Player, bool) {
	if !gs.IsGameOver() || !gs.hasWinner {
		return PlayerOne, false
	}
	return gs.winner, true
}

// Phase returns the orchestrator phase
func (gs *GameState) Phase() Phase {
	return gs.phase
}

// Hover returns the last pointer cell
func (gs *GameState) Hover() (grid.Cell, bool) {
	return gs.hover, gs.hasHover
}

// Moves returns the number of eliminations in the current game
func (gs *GameState) Moves() int {
	return gs.moves
}

// GameID identifies the current game in logs
func (gs *GameState) GameID() uuid.UUID {
	return gs.gameID
}

// Snapshot provides a consistent view of everything a frame needs
type Snapshot struct {
	GameID    uuid.UUID
	Size      int
	Phase     Phase
	Cells     []grid.Cell
	Selection rule.Rect
	Selecting bool
	Validity  rule.Validity
	Hover     grid.Cell
	HasHover  bool
	Current   Player
	Winner    Player
	HasWinner bool
	Moves     int
}

// Snapshot copies the observable state for one render pass
func (gs *GameState) Snapshot() Snapshot {
	sel, selecting := gs.Selection()
	winner, hasWinner := gs.Winner()
	return Snapshot{
		GameID:    gs.gameID,
		Size:      gs.Size(),
		Phase:     gs.phase,
		Cells:     gs.OccupiedCells(),
		Selection: sel,
		Selecting: selecting,
		Validity:  gs.Validity(),
		Hover:     gs.hover,
		HasHover:  gs.hasHover,
		Current:   gs.turns.Current(),
		Winner:    winner,
		HasWinner: hasWinner,
		Moves:     gs.moves,
	}
}
