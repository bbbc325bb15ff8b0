package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores the terminal; satisfied by tcell.Screen
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer
)

// SetCrashTerminal registers the screen to restore before printing a crash
func SetCrashTerminal(f Finalizer) {
	crashMu.Lock()
	crashTerminal = f
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	if crashTerminal != nil {
		crashTerminal.Fini()
		crashTerminal = nil
	}
	crashMu.Unlock()

	os.Stdout.Sync()

	// \r\n keeps output aligned if the tty is still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
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
