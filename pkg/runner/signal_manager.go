package runner

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SignalManager ties SIGINT/SIGTERM to context cancellation so the
// blocking prompt read unwinds into the normal shutdown path.
type SignalManager struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSignalManager starts listening for signals immediately.
func NewSignalManager() *SignalManager {
	sm := &SignalManager{}
	sm.ctx, sm.cancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	return sm
}

// Context returns the signal-cancelled context.
func (sm *SignalManager) Context() context.Context {
	return sm.ctx
}

// Stop releases the signal listener.
func (sm *SignalManager) Stop() {
	sm.cancel()
}
