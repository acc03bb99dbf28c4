package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// newCrashHandler returns the panic handler shared by every goroutine of the viewer
// It restores the terminal before printing so the trace stays readable
func newCrashHandler(screen tcell.Screen) func(any) {
	return func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mCOLORCYCLE CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
}

// goSafe runs fn in a new goroutine, passing any panic to onCrash
// A nil onCrash lets the panic propagate
func goSafe(onCrash func(any), fn func()) {
	go func() {
		if onCrash != nil {
			defer func() {
				if r := recover(); r != nil {
					onCrash(r)
				}
			}()
		}
		fn()
	}()
}
