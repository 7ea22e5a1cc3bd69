// Package cmd implements the exprkit subcommands.
package cmd

import (
	"os"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/exprkit/lang"
)

// bindValue interprets a flag-supplied binding the way the language reads
// literals: numbers and booleans stay typed, everything else is a string.
func bindValue(s string) lang.Value {
	switch s {
	case "true":
		return lang.Boolean(true)
	case "false":
		return lang.Boolean(false)
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return lang.Number(n)
	}

	return lang.String(s)
}

// buildEnv assembles the evaluation environment from an optional YAML
// bindings file and explicit --set pairs. Explicit pairs win.
func buildEnv(set map[string]string, varsPath string) (*lang.MapEnv, error) {
	env := lang.NewMapEnv()

	if varsPath != "" {
		data, err := os.ReadFile(varsPath)
		if err != nil {
			return nil, ErrLoadVars.Wrap(err)
		}

		var root map[string]any

		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, ErrLoadVars.Wrap(err)
		}

		bindYAML("", root, env)
	}

	for name, value := range set {
		env.Set(name, bindValue(value))
	}

	return env, nil
}

// bindYAML loads a decoded YAML mapping into the environment. Nested
// mappings become dotted names, so server: {port: 80} binds server.port.
func bindYAML(prefix string, node map[string]any, env *lang.MapEnv) {
	for key, value := range node {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]any:
			bindYAML(name, v, env)
		case bool:
			env.Set(name, lang.Boolean(v))
		case int64:
			env.Set(name, lang.Number(float64(v)))
		case uint64:
			env.Set(name, lang.Number(float64(v)))
		case float64:
			env.Set(name, lang.Number(v))
		case string:
			env.Set(name, lang.String(v))
		case nil:
			// Null bindings are skipped rather than guessed at.
		default:
			// Sequences and other shapes have no Value representation.
		}
	}
}

// formatResult renders an evaluation result for display. Numbers drop the
// fixed-precision padding used by in-language string coercion.
func formatResult(val lang.Value) string {
	if val.IsNumber() {
		n, err := val.AsNumber()
		if err == nil {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
	}

	return val.AsString()
}
