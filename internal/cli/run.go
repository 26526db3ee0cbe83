// Package cli wires configuration resolution, logging, and signal
// handling around a game session for the command-line entry point.
package cli

// RunOptions carries the resolved command-line surface into a session
// run. Override pointers are nil when the corresponding flag was not
// given, so flag values can take precedence over file and environment
// sources without masking them.
type RunOptions struct {
	// ConfigPath points to a YAML configuration file. Empty means no
	// file is read.
	ConfigPath string

	// Debug enables diagnostic traces on stderr.
	Debug bool

	// NoBanner suppresses the startup banner even on a terminal.
	NoBanner bool

	// Flag overrides, applied last.
	Edge     *int
	Soldiers *int
	Prompt   *string
}
