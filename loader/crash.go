package loader

import "sync/atomic"

var crashHandler atomic.Pointer[func(any)]

// SetCrashHandler installs the handler called when a loader goroutine panics
// The handler is expected to restore the terminal and exit
// With no handler installed the panic propagates
func SetCrashHandler(h func(any)) {
	if h == nil {
		crashHandler.Store(nil)
		return
	}
	crashHandler.Store(&h)
}

// recoverCrash is deferred at the top of every goroutine the package starts
func recoverCrash() {
	h := crashHandler.Load()
	if h == nil {
		return
	}
	if r := recover(); r != nil {
		(*h)(r)
	}
}
