// Package game implements the interactive session core: a typed
// configuration with a static settings registry, a verb -> action
// dispatch table, a lifecycle state machine, and a prompt renderer.
//
// The package is I/O free. The REPL loop lives in pkg/runner; logging
// happens through the observer hooks and the injected slog.Logger.
package game

// State represents the session lifecycle.
//
// Transitions are monotonic along the single defined path; there is no
// way back from StateStopped.
type State int

const (
	StateUnstarted State = iota
	StateStarting
	StateStarted
	StateStopping
	StateStopped
)

// String returns the canonical state name used in diagnostic traces.
func (s State) String() string {
	switch s {
	case StateUnstarted:
		return "UNSTARTED"
	case StateStarting:
		return "STARTING"
	case StateStarted:
		return "STARTED"
	case StateStopping:
		return "STOPPING"
	case StateStopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}
