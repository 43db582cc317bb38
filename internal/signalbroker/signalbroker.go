// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker provides a way to listen for OS signals and handle
// them gracefully. By default it listens for os.Interrupt, syscall.SIGINT,
// syscall.SIGTERM, and syscall.SIGQUIT signals.
//
// The first signal cancels the supplied context so that a blocking read
// (e.g. styling text piped on standard input) can be abandoned; a second
// signal stops the watch entirely.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/dye/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

// New creates a new signal broker that listens for OS signals that should
// terminate the process.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "signalbroker", "detail", "creating signal broker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Watch monitors the signal channel. The first signal cancels the context;
// the second stops signal delivery and returns, leaving default handling to
// the runtime.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	cancelled := false

	for sig := range sigCh {
		if !cancelled {
			ctxlog.Info(ctx, "signalbroker", "detail", "signal received, cancelling", "signal", sig.String())
			cancel()

			cancelled = true

			continue
		}

		ctxlog.Info(ctx, "signalbroker", "detail", "second signal received, stopping watch", "signal", sig.String())
		signal.Stop(sigCh)
		close(sigCh)

		return
	}
}
