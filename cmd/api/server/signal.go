package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// shutdownSignals end the process gracefully
var shutdownSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// WithSignal returns a context canceled on the first SIGINT or SIGTERM.
// The returned stop restores default signal handling, so a second signal
// kills the process.
func WithSignal(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, shutdownSignals...)
}
