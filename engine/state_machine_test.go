package engine

import "testing"

// TestCanTransition tests the phase transition validation logic
func TestCanTransition(t *testing.T) {
	validTransitions := map[Phase][]Phase{
		PhaseAwaitingSelection:   {PhaseSelectionInProgress, PhaseGameOver},
		PhaseSelectionInProgress: {PhaseAwaitingSelection, PhaseGameOver},
	}

	for from, validTos := range validTransitions {
		for _, to := range validTos {
			if !CanTransition(from, to) {
				t.Errorf("Expected transition %s -> %s to be valid, but it was rejected", from, to)
			}
		}
	}

	invalidTransitions := []struct {
		from Phase
		to   Phase
		desc string
	}{
		{PhaseAwaitingSelection, PhaseAwaitingSelection, "Awaiting -> Awaiting (press must start a selection)"},
		{PhaseSelectionInProgress, PhaseSelectionInProgress, "InProgress -> InProgress (no nested selection)"},
		{PhaseGameOver, PhaseAwaitingSelection, "GameOver -> Awaiting (absorbing)"},
		{PhaseGameOver, PhaseSelectionInProgress, "GameOver -> InProgress (absorbing)"},
		{PhaseGameOver, PhaseGameOver, "GameOver -> GameOver"},
	}

	for _, tc := range invalidTransitions {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("Expected transition %s -> %s to be invalid, but it was allowed (%s)", tc.from, tc.to, tc.desc)
		}
	}
}

// TestPhaseCycle walks the press, move, release cycle through the phases
func TestPhaseCycle(t *testing.T) {
	gs := NewTestGameState(
		"###",
		"###",
		"###",
	)

	if gs.Phase() != PhaseAwaitingSelection {
		t.Fatalf("Expected initial phase AwaitingSelection, got %s", gs.Phase())
	}

	if err := gs.PressStart(cell(0, 0)); err != nil {
		t.Fatalf("PressStart: %v", err)
	}
	if gs.Phase() != PhaseSelectionInProgress {
		t.Fatalf("Expected SelectionInProgress after press, got %s", gs.Phase())
	}

	if err := gs.PointerMove(cell(0, 2)); err != nil {
		t.Fatalf("PointerMove: %v", err)
	}
	if out, err := gs.Release(); err != nil || out != OutcomeDiscarded {
		t.Fatalf("Expected discarded column release, got %s, %v", out, err)
	}
	if gs.Phase() != PhaseAwaitingSelection {
		t.Errorf("Expected AwaitingSelection after discard, got %s", gs.Phase())
	}
}

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{
		PhaseAwaitingSelection:   "AwaitingSelection",
		PhaseSelectionInProgress: "SelectionInProgress",
		PhaseGameOver:            "GameOver",
		Phase(42):                "Unknown",
	}
	for p, want := range tests {
		if p.String() != want {
			t.Errorf("Phase(%d).String() = %q, want %q", p, p.String(), want)
		}
	}
}
