//go:build !pprof

package cli

import (
	"github.com/alecthomas/kong"
)

// pprofConfig is empty when built without the pprof tag.
type pprofConfig struct{}

func pprofModeEnum() string { return "" }

func pprofDir() string { return "" }

func (pprofConfig) group() kong.Group { return kong.Group{} }

// start is a no-op when built without the pprof tag.
func (pprofConfig) start() (stop func()) { return func() {} }
