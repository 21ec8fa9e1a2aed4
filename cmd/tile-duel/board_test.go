package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/tile-duel/config"
	"github.com/lixenwraith/tile-duel/constant"
	"github.com/lixenwraith/tile-duel/grid"
)

func TestPrintBoard_Playable(t *testing.T) {
	cfg := config.Default()
	g := grid.MustParse(
		"#..",
		".##",
		".##",
	)

	var buf bytes.Buffer
	printBoard(&buf, cfg, g, false)
	out := buf.String()

	for _, want := range []string{
		"#..\n.##\n.##\n",
		"Occupied: 5/9",
		"Status: playable, Player 1 moves first",
		"Hint: 2x2 block at (1,1)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintBoard_Terminal(t *testing.T) {
	var buf bytes.Buffer
	printBoard(&buf, config.Default(), grid.MustParse("#.", ".#"), true)

	out := buf.String()
	if !strings.Contains(out, "Status: no moves available") {
		t.Errorf("expected terminal status:\n%s", out)
	}
	if strings.Contains(out, "Hint") {
		t.Errorf("terminal board should have no hint:\n%s", out)
	}
}

func TestBoardCmd_SeededFullBoard(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{
		"board",
		"--config", filepath.Join(t.TempDir(), "missing.yaml"),
		"--fill", "1",
		"--seed", "7",
	})

	if err := root.Execute(); err != nil {
		t.Fatalf("board: %v\n%s", err, out.String())
	}
	full := strings.Repeat(strings.Repeat("#", constant.GridSize)+"\n", constant.GridSize)
	if !strings.Contains(out.String(), full) {
		t.Errorf("expected full board:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Hint: 2x2 block at (0,0)") {
		t.Errorf("expected hint at origin:\n%s", out.String())
	}
}

func TestBoardCmd_RejectsBadFill(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{
		"board",
		"--config", filepath.Join(t.TempDir(), "missing.yaml"),
		"--fill", "1.5",
	})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error for fill outside [0, 1]")
	}
}

func TestBoardCmd_FixedBoardSize(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{
		"board",
		"--config", filepath.Join(t.TempDir(), "missing.yaml"),
		"--size", "3",
	})

	if err := root.Execute(); err == nil {
		t.Fatal("board dimension is fixed; --size must be rejected")
	}
}
