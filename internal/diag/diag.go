// Package diag is the internal diagnostic logging sink shared by both CLIs
// and the library's own lower layers. It is deliberately separate from
// puflib's status-reporting plane (see callback.go/report.go): that plane is
// the domain protocol modules use to talk to the operator about sealing and
// provisioning, while diag exists for startup, flag-parsing, and I/O-fault
// diagnostics that an operator never needs but a developer debugging a
// deployment does.
package diag

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// Init installs the process-wide diagnostic logger. verbose selects a
// development encoder (human-readable, debug level) over the default
// production JSON encoder used for piping into a log collector. Callers
// (cmd/pufctl, cmd/puf) should defer the returned sync func so buffered
// entries flush before the process exits.
func Init(verbose bool) (sync func(), err error) {
	var l *zap.Logger
	if verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return func() {}, err
	}

	mu.Lock()
	logger = l
	mu.Unlock()

	return func() { _ = l.Sync() }, nil
}

// L returns the current diagnostic logger. Before Init is called (e.g. in
// library unit tests that never touch a CLI main), it is a no-op logger so
// library code can log unconditionally without a nil check.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
