package lang

import (
	"log/slog"
	"sync/atomic"
)

// pkgLogger is consulted for engine trace output. It defaults to a no-op
// handler so embedding hosts pay nothing unless they opt in.
var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger installs the logger used for engine diagnostics (parse and
// cache tracing). Pass nil to silence the package again.
func SetLogger(l *slog.Logger) {
	pkgLogger.Store(l)
}

func logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}

	return slog.New(slog.DiscardHandler)
}
