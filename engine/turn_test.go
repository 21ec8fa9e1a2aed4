package engine

import "testing"

func TestTurnController_AdvanceFlips(t *testing.T) {
	for _, first := range []Player{PlayerOne, PlayerTwo} {
		tc := NewTurnController(first)
		if tc.Current() != first {
			t.Fatalf("Expected %s to start, got %s", first, tc.Current())
		}

		tc.Advance()
		if tc.Current() != first.Other() {
			t.Errorf("Expected %s after one advance, got %s", first.Other(), tc.Current())
		}

		tc.Advance()
		if tc.Current() != first {
			t.Errorf("Expected %s after two advances, got %s", first, tc.Current())
		}
	}
}

func TestTurnController_Reset(t *testing.T) {
	tc := NewTurnController(PlayerOne)
	tc.Advance()
	tc.Reset(PlayerOne)
	if tc.Current() != PlayerOne {
		t.Errorf("Expected reset to PlayerOne, got %s", tc.Current())
	}
}

func TestPlayer_Labels(t *testing.T) {
	if PlayerOne.String() != "Player 1" || PlayerTwo.String() != "Player 2" {
		t.Errorf("Unexpected labels %q / %q", PlayerOne, PlayerTwo)
	}
	if PlayerOne.Index() != 0 || PlayerTwo.Index() != 1 {
		t.Error("Unexpected player indices")
	}

	for n, want := range map[int]Player{1: PlayerOne, 2: PlayerTwo} {
		p, ok := PlayerFromNumber(n)
		if !ok || p != want {
			t.Errorf("PlayerFromNumber(%d) = %s, %v", n, p, ok)
		}
	}
	if _, ok := PlayerFromNumber(3); ok {
		t.Error("Expected seat 3 to be rejected")
	}
}
