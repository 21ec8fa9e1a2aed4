package grid

import (
	"strings"
	"testing"
)

func TestRemove_AbsentCellIsNoOp(t *testing.T) {
	g := MustParse(
		"##.",
		"#..",
		"...",
	)

	g.Remove(Cell{X: 2, Y: 2}, Cell{X: 1, Y: 0})

	if g.Count() != 2 {
		t.Fatalf("Expected 2 occupied cells, got %d", g.Count())
	}
	if g.IsOccupied(Cell{X: 1, Y: 0}) {
		t.Error("Expected (1,0) to be removed")
	}
	if !g.IsOccupied(Cell{X: 0, Y: 0}) || !g.IsOccupied(Cell{X: 0, Y: 1}) {
		t.Error("Expected untouched cells to remain occupied")
	}

	// Removing twice is still fine
	g.Remove(Cell{X: 1, Y: 0})
	if g.Count() != 2 {
		t.Errorf("Expected count to stay 2, got %d", g.Count())
	}
}

func TestOccupiedCells_RowMajor(t *testing.T) {
	g := MustParse(
		".#",
		"##",
	)

	got := g.OccupiedCells()
	want := []Cell{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	if len(got) != len(want) {
		t.Fatalf("Expected %d cells, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestClone_Independent(t *testing.T) {
	g := MustParse("##", "##")
	clone := g.Clone()

	clone.Remove(Cell{X: 0, Y: 0})

	if !g.IsOccupied(Cell{X: 0, Y: 0}) {
		t.Error("Removing from clone must not touch the original")
	}
	if clone.Count() != 3 {
		t.Errorf("Expected clone count 3, got %d", clone.Count())
	}
}

func TestString_RoundTripsParse(t *testing.T) {
	rows := []string{"#.#", ".#.", "#.#"}
	g := MustParse(rows...)

	want := strings.Join(rows, "\n") + "\n"
	if g.String() != want {
		t.Errorf("Expected\n%s\ngot\n%s", want, g.String())
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"no rows", nil},
		{"ragged", []string{"##", "#"}},
		{"not square", []string{"###", "###"}},
		{"bad rune", []string{"#x", "##"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.rows...); err == nil {
				t.Error("Expected parse error")
			}
		})
	}
}

func TestOutOfRange_Panics(t *testing.T) {
	g := New(3)
	ops := map[string]func(){
		"IsOccupied": func() { g.IsOccupied(Cell{X: 3, Y: 0}) },
		"Put":        func() { g.Put(Cell{X: -1, Y: 0}) },
		"Remove":     func() { g.Remove(Cell{X: 0, Y: 3}) },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("Expected %s to panic on out-of-range cell", name)
				}
			}()
			op()
		})
	}
}
