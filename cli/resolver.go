package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolveYAML is a [kong.ConfigurationLoader] for YAML config files.
//
// Nested mappings are flattened with hyphens, so this file:
//
//	log:
//	  level: debug
//	  format: json
//
// is equivalent to the flags --log-level=debug --log-format=json.
// Underscores in keys are treated as hyphens. Command-line flags override
// config file values.
func resolveYAML(r io.Reader) (kong.Resolver, error) {
	var root map[string]any

	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		// Unreadable config files are ignored rather than fatal.
		return yamlConfig{}, nil
	}

	flat := make(yamlConfig)
	flatten("", root, flat)

	return flat, nil
}

// yamlConfig implements [kong.Resolver] over flattened YAML keys.
type yamlConfig map[string]any

// Validate implements [kong.Resolver].
func (yamlConfig) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c yamlConfig) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	return nil, nil
}

func flatten(prefix string, node map[string]any, out yamlConfig) {
	for key, value := range node {
		key = strings.ReplaceAll(key, "_", "-")
		if prefix != "" {
			key = prefix + "-" + key
		}

		switch v := value.(type) {
		case map[string]any:
			flatten(key, v, out)
		case int64:
			// Kong wants scalar values as strings.
			out[key] = strconv.FormatInt(v, 10)
		case uint64:
			out[key] = strconv.FormatUint(v, 10)
		case float64:
			out[key] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			out[key] = v
		}
	}
}
