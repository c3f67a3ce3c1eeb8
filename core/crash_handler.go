package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu       sync.Mutex
	crashCleanups []*crashCleanup
)

type crashCleanup struct {
	fn func()
}

// PushCrashCleanup registers fn to run before a crash report and returns a function that unregisters it
// Cleanups run newest first, so the terminal pushed last is restored before earlier ones flush logs
func PushCrashCleanup(fn func()) (remove func()) {
	c := &crashCleanup{fn: fn}
	crashMu.Lock()
	crashCleanups = append(crashCleanups, c)
	crashMu.Unlock()

	return func() {
		crashMu.Lock()
		defer crashMu.Unlock()
		for i, other := range crashCleanups {
			if other == c {
				crashCleanups = append(crashCleanups[:i], crashCleanups[i+1:]...)
				return
			}
		}
	}
}

// runCrashCleanups drains the registered cleanups newest first
func runCrashCleanups() {
	crashMu.Lock()
	pending := crashCleanups
	crashCleanups = nil
	crashMu.Unlock()

	for i := len(pending) - 1; i >= 0; i-- {
		pending[i].fn()
	}
}

// HandleCrash is the unified panic handler that runs the cleanups and prints the stack trace
// Call as defer func() { core.HandleCrash(recover()) }()
func HandleCrash(r any) {
	if r == nil {
		return
	}

	runCrashCleanups()

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			HandleCrash(recover())
		}()
		fn()
	}()
}
