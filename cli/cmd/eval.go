package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ardnew/exprkit/lang"
	"github.com/ardnew/exprkit/log"
)

// Eval parses an expression and prints its value.
type Eval struct {
	Expr []string `arg:"" help:"Expression to evaluate" optional:""`

	Set  map[string]string `help:"Bind a variable (name=value)"                  short:"s"`
	Vars string            `help:"YAML file of variable bindings"                short:"V" type:"existingfile"`
	File string            `help:"Read the expression from a file ('-' = stdin)" short:"f"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context, out io.Writer) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	env, err := buildEnv(e.Set, e.Vars)
	if err != nil {
		return err
	}

	root, err := e.parse()
	if err != nil {
		return err
	}

	log.Trace("expression parsed", slog.String("tree", root.String()))

	val, err := lang.Evaluate(root, env)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, formatResult(val))

	return nil
}

func (e *Eval) parse() (lang.Node, error) {
	if e.File == "" {
		if len(e.Expr) == 0 {
			return nil, ErrNoExpression
		}

		return lang.ParseCached(strings.Join(e.Expr, " "))
	}

	file := os.Stdin

	if e.File != "-" {
		var err error

		file, err = os.Open(e.File)
		if err != nil {
			return nil, ErrReadSource.Wrap(err)
		}
		defer file.Close()
	}

	root, err := lang.ParseReader(bufio.NewReader(file))
	if err != nil {
		return nil, err
	}

	return root, nil
}
