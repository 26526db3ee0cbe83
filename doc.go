/*
Package wargame is an interactive command-line session for a turn-based
simulation. A user types commands at a prompt to inspect or mutate the
game configuration and to control the session lifecycle.

The interesting machinery is the command-dispatch and configuration
core in pkg/game: a verb -> action registry, a static settings registry
that makes every configuration field gettable and settable by name with
typed conversion and bounds validation, and a small lifecycle state
machine. The REPL loop itself lives in pkg/runner and the cobra CLI
surface in cmd/wargame.

Actual simulation and combat commands are not implemented yet; they
register into the same action registry through Session.Register.
*/
package wargame
