//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// notifyContext cancels generation on Ctrl-C so the browser is closed
// before exit. Windows has no SIGTERM.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}
