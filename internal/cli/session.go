package cli

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/wargame"
	"github.com/aretw0/wargame/internal/logging"
	"github.com/aretw0/wargame/internal/tui"
	"github.com/aretw0/wargame/pkg/game"
	"github.com/aretw0/wargame/pkg/runner"
)

// RunSession executes a single interactive session: resolve config,
// construct the session (validation failure here is fatal and surfaces
// as a non-zero exit), then hand control to the runner loop until quit,
// end-of-input, or interrupt.
func RunSession(opts RunOptions) error {
	logger := createLogger(opts.Debug)

	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	session, err := game.New(cfg, game.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if !opts.NoBanner && term.IsTerminal(int(os.Stdout.Fd())) {
		tui.PrintBanner(wargame.Version)
	}

	signals := runner.NewSignalManager()
	defer signals.Stop()

	r := runner.NewRunner(runner.WithLogger(logger))
	return r.Run(signals.Context(), session)
}

func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}
