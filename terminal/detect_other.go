//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

// DetectColorMode assumes 24-bit color where no environment probing exists
func DetectColorMode() ColorMode {
	return ColorModeTrueColor
}

// resetTerminalMode is a no-op; there is no termios to restore
func resetTerminalMode() {}
