package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	cleanupMu    sync.Mutex
	crashCleanup func()
)

// SetCrashCleanup registers the function that restores the terminal before a crash report
// Passing nil clears the registration
func SetCrashCleanup(fn func()) {
	cleanupMu.Lock()
	crashCleanup = fn
	cleanupMu.Unlock()
}

// RunCrashCleanup invokes the registered cleanup at most once and clears it
func RunCrashCleanup() {
	cleanupMu.Lock()
	fn := crashCleanup
	crashCleanup = nil
	cleanupMu.Unlock()

	if fn != nil {
		fn()
	}
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	RunCrashCleanup()

	// Raw mode is gone after cleanup, plain newlines are fine
	fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-SNAKE CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

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
