package monitor

import "sync/atomic"

// StartGuard records whether the broadcast loop has been started.
// The zero value is idle and ready to use. There is no transition back to idle.
type StartGuard struct {
	running atomic.Bool
}

// NewStartGuard returns an idle guard.
func NewStartGuard() *StartGuard {
	return &StartGuard{}
}

// TryStart moves the guard from idle to running. It returns true for exactly
// one caller; every other caller, concurrent or later, gets false.
func (g *StartGuard) TryStart() bool {
	return g.running.CompareAndSwap(false, true)
}

// Started reports whether TryStart has succeeded.
func (g *StartGuard) Started() bool {
	return g.running.Load()
}
