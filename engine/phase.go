package engine

// Phase is the orchestrator state for one player interaction
type Phase uint8

const (
	// PhaseAwaitingSelection waits for a press to anchor a selection
	PhaseAwaitingSelection Phase = iota
	// PhaseSelectionInProgress tracks the live corner until release
	PhaseSelectionInProgress
	// PhaseGameOver is absorbing; only a new game leaves it
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingSelection:
		return "AwaitingSelection"
	case PhaseSelectionInProgress:
		return "SelectionInProgress"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// validTransitions lists the allowed phase changes; GameOver has none
var validTransitions = map[Phase][]Phase{
	PhaseAwaitingSelection:   {PhaseSelectionInProgress, PhaseGameOver},
	PhaseSelectionInProgress: {PhaseAwaitingSelection, PhaseGameOver},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}

// Outcome reports what a release resolved to
type Outcome uint8

const (
	// OutcomeDiscarded: invalid or too small selection, turn unchanged
	OutcomeDiscarded Outcome = iota
	// OutcomeEliminated: cells removed, turn passed
	OutcomeEliminated
	// OutcomeGameOver: cells removed and no move remains for the opponent
	OutcomeGameOver
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEliminated:
		return "eliminated"
	case OutcomeGameOver:
		return "game_over"
	default:
		return "discarded"
	}
}
