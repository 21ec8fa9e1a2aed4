// Package core holds process-level plumbing shared by the terminal front-end.
package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/tile-duel/terminal"
)

var (
	crashMu     sync.Mutex
	crashFini   func()
	crashLogger = zerolog.Nop()
	crashExit   = os.Exit
)

// RegisterScreen sets the cleanup run before printing a crash; normally tcell's Screen.Fini
func RegisterScreen(fini func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashFini = fini
}

// RegisterLogger records crashes in the debug log as well as on stderr
func RegisterLogger(logger zerolog.Logger) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashLogger = logger
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	fini, logger := crashFini, crashLogger
	crashMu.Unlock()

	stack := debug.Stack()

	if fini != nil {
		fini()
	} else {
		terminal.EmergencyReset(os.Stdout)
	}

	logger.Error().Interface("panic", r).Bytes("stack", stack).Msg("Crash detected")

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", stack)
	os.Stderr.Sync()

	crashExit(1)
}

// Go runs fn in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword while the terminal is in raw mode.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
