// Package cli wires the exprkit commands, flags, and configuration sources
// into a kong parser.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ardnew/exprkit/cli/cmd"
	"github.com/ardnew/exprkit/lang"
	"github.com/ardnew/exprkit/log"
	"github.com/ardnew/exprkit/pkg"
)

// CLI is the top-level command-line interface for exprkit.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit" short:"v"`

	Tokens cmd.Tokens `cmd:"" help:"Scan an expression and print its tokens"`
	Repl   cmd.Repl   `cmd:"" help:"Start an interactive session"`

	Eval cmd.Eval `cmd:"" default:"withargs" help:"Evaluate an expression"`
}

// Run executes the exprkit CLI with the given context and arguments. The
// exit function is called with the appropriate exit code on early
// termination such as --help.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	// Apply logger flags before kong parses, so parse failures are already
	// reported in the requested format.
	cli.Log.scan(args)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.BindTo(io.Writer(os.Stdout), (*io.Writer)(nil)),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact: true,
				Summary: true,
			}),
		kong.Configuration(resolveYAML, configPath()),
		kong.Vars{
			"version":       pkg.VersionString(),
			"pprofModeEnum": pprofModeEnum(),
			"pprofDir":      pprofDir(),
		},
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cli.Log.start()

	// The engine shares the CLI logger.
	lang.SetLogger(log.Default().Slog())

	defer cli.Pprof.start()()

	return ktx.Run(ctx, &cli)
}

// configPath locates the optional YAML configuration file. Flags given on
// the command line override its values.
func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, pkg.Name, "config.yaml")
}

// cacheDir is where the REPL history and profile output live.
func cacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return os.TempDir()
	}

	return filepath.Join(dir, pkg.Name)
}
