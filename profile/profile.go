// Package profile provides optional runtime profiling built on
// [github.com/pkg/profile]. Profiling is compiled in only with the pprof
// build tag; without it every operation is a no-op with zero overhead.
package profile

// Tag is the build tag required to enable profiling.
const Tag = `pprof`

// Config functions return all supported profiler parameters.
type Config func() (mode, path string, quiet bool)

// Start initializes the profiler and returns a handle for stopping it.
// Without the pprof build tag, or with an empty mode, the returned handle
// does nothing.
func (c Config) Start() interface{ Stop() } {
	mode, path, quiet := c()

	if mode == "" {
		return ignore{}
	}

	return start(mode, path, quiet)
}

// WithMode returns a functional option setting the profiler mode.
func WithMode(mode string) func(Config) Config {
	return func(c Config) Config {
		_, path, quiet := c()

		return func() (string, string, bool) {
			return mode, path, quiet
		}
	}
}

// WithPath returns a functional option setting the profile output directory.
func WithPath(path string) func(Config) Config {
	return func(c Config) Config {
		mode, _, quiet := c()

		return func() (string, string, bool) {
			return mode, path, quiet
		}
	}
}

// WithQuiet returns a functional option suppressing profiler chatter.
func WithQuiet(quiet bool) func(Config) Config {
	return func(c Config) Config {
		mode, path, _ := c()

		return func() (string, string, bool) {
			return mode, path, quiet
		}
	}
}

type ignore struct{}

func (ignore) Stop() {}
