package log

import (
	"log/slog"
	"os"
	"sync"
)

// The package-level logger writes to stderr and is reconfigured in place by
// [Config], so flag parsing can adjust it before commands run.
var std = struct {
	sync.Mutex
	opts   []Option
	logger Logger
}{
	logger: Make(os.Stderr),
}

// Config reapplies the default logger configuration with additional options.
// Options accumulate across calls; later options win.
func Config(opts ...Option) {
	std.Lock()
	defer std.Unlock()

	std.opts = append(std.opts, opts...)
	std.logger = Make(os.Stderr, std.opts...)
}

// Default returns the package-level logger.
func Default() Logger {
	std.Lock()
	defer std.Unlock()

	return std.logger
}

// Trace logs to the default logger at [LevelTrace].
func Trace(msg string, attrs ...slog.Attr) { Default().Trace(msg, attrs...) }

// Debug logs to the default logger at [LevelDebug].
func Debug(msg string, attrs ...slog.Attr) { Default().Debug(msg, attrs...) }

// Info logs to the default logger at [LevelInfo].
func Info(msg string, attrs ...slog.Attr) { Default().Info(msg, attrs...) }

// Warn logs to the default logger at [LevelWarn].
func Warn(msg string, attrs ...slog.Attr) { Default().Warn(msg, attrs...) }

// Error logs to the default logger at [LevelError].
func Error(msg string, attrs ...slog.Attr) { Default().Error(msg, attrs...) }
