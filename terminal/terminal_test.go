package terminal

import (
	"bytes"
	"os"
	"testing"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in   string
		want ColorMode
	}{
		{"256", ColorMode256},
		{"truecolor", ColorModeTrueColor},
		{"24bit", ColorModeTrueColor},
		{"TRUE", ColorModeTrueColor},
	}
	for _, tc := range tests {
		got, err := ParseColorMode(tc.in)
		if err != nil {
			t.Errorf("ParseColorMode(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseColorMode(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}

	if _, err := ParseColorMode("16"); err == nil {
		t.Error("Expected error for unsupported mode")
	}
	if _, err := ParseColorMode("auto"); err != nil {
		t.Errorf("Expected auto to resolve, got %v", err)
	}
}

func TestApplyColorMode(t *testing.T) {
	t.Setenv("TCELL_TRUECOLOR", "")

	if err := ApplyColorMode(ColorMode256); err != nil {
		t.Fatal(err)
	}
	if os.Getenv("TCELL_TRUECOLOR") != "disable" {
		t.Errorf("Expected TCELL_TRUECOLOR=disable, got %q", os.Getenv("TCELL_TRUECOLOR"))
	}

	if err := ApplyColorMode(ColorModeTrueColor); err != nil {
		t.Fatal(err)
	}
	if _, set := os.LookupEnv("TCELL_TRUECOLOR"); set {
		t.Error("Expected TCELL_TRUECOLOR to be unset in truecolor mode")
	}
}

func TestEmergencyReset_WritesSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.Bytes()
	for _, seq := range [][]byte{csiMouseClickOff, csiCursorShow, csiAltScreenExit, csiSGR0} {
		if !bytes.Contains(out, seq) {
			t.Errorf("Expected reset output to contain %q", seq)
		}
	}
}
