// Package runner drives the interactive session loop using provided
// IO. Keeping the loop separate from the game package allows tests and
// alternative frontends to feed input through buffers.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/wargame/pkg/game"
)

// Runner executes the read-dispatch-print loop against a Session.
type Runner struct {
	// Handler is the input strategy. If nil, a TextHandler on
	// Stdin/Stdout is created on first use.
	Handler IOHandler

	// Output receives prompt text and action results.
	Output io.Writer

	// ErrOutput receives one "ERROR: ..." line per failed command.
	ErrOutput io.Writer

	// Logger is used for internal debug logging. If nil, a no-op
	// logger is used.
	Logger *slog.Logger
}

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithHandler configures a custom IOHandler.
func WithHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithOutput configures the result writer.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.Output = w
	}
}

// WithErrOutput configures the error writer.
func WithErrOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.ErrOutput = w
	}
}

// NewRunner creates a Runner bound to the process streams by default.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Output:    os.Stdout,
		ErrOutput: os.Stderr,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run starts the session and loops until it stops: render prompt, read
// one line, dispatch, print the result or a single error line, repeat.
// Command errors never abort the loop. End-of-input and context
// cancellation (SIGINT/SIGTERM) are the normal shutdown path and
// return nil.
func (r *Runner) Run(ctx context.Context, session *game.Session) error {
	handler := r.resolveHandler()

	session.Start()

	for session.HasStarted() && !session.HasStopped() {
		line, err := handler.Input(ctx, session.Prompt())
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				r.Logger.Debug("input closed", "err", err)
				fmt.Fprintln(r.Output)
				session.Stop()
				break
			}
			fmt.Fprintf(r.ErrOutput, "ERROR: %v\n", err)
			continue
		}

		output, err := session.Dispatch(line)
		if err != nil {
			fmt.Fprintf(r.ErrOutput, "ERROR: %v\n", err)
			continue
		}
		if output != "" {
			fmt.Fprintln(r.Output, output)
		}
	}

	return nil
}

// resolveHandler ensures a valid IOHandler is set. The handler is
// memoized so repeated Run calls share one input pump.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdin, r.Output)
	}
	return r.Handler
}
