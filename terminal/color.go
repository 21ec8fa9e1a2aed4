package terminal

import (
	"fmt"
	"os"
	"strings"
)

// ColorMode is the color capability used for the tcell screen
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// ParseColorMode resolves the --color flag; "auto" and "" detect from the environment
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DetectColorMode(), nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	case "256":
		return ColorMode256, nil
	default:
		return ColorMode256, fmt.Errorf("invalid color mode %q (allowed: auto, truecolor, 256)", s)
	}
}

// ApplyColorMode tells tcell to quantize RGB colors to the palette in 256 mode.
// Must run before the screen is created.
func ApplyColorMode(m ColorMode) error {
	if m == ColorMode256 {
		return os.Setenv("TCELL_TRUECOLOR", "disable")
	}
	return os.Unsetenv("TCELL_TRUECOLOR")
}
