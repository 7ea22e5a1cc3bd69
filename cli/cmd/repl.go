package cmd

import (
	"context"

	"github.com/ardnew/exprkit/cli/cmd/repl"
)

// Repl starts an interactive evaluation session.
type Repl struct {
	Set  map[string]string `help:"Bind a variable (name=value)"   short:"s"`
	Vars string            `help:"YAML file of variable bindings" short:"V" type:"existingfile"`

	History string `help:"History file path ('' = default)" type:"path"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	env, err := buildEnv(r.Set, r.Vars)
	if err != nil {
		return err
	}

	return repl.Run(ctx, env, r.History)
}
