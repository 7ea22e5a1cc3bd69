package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func resolveFlag(t *testing.T, doc, name string) any {
	t.Helper()

	resolver, err := resolveYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	value, err := resolver.Resolve(nil, nil, &kong.Flag{
		Value: &kong.Value{Name: name},
	})
	if err != nil {
		t.Fatalf("resolve %q: %v", name, err)
	}

	return value
}

func TestResolveYAML(t *testing.T) {
	const doc = `
log:
  level: debug
  format: json
log_caller: true
count: 3
ratio: 0.5
`

	tests := []struct {
		name string
		want any
	}{
		{name: "log-level", want: "debug"},
		{name: "log-format", want: "json"},
		{name: "log-caller", want: true},
		{name: "count", want: "3"},
		{name: "ratio", want: "0.5"},
		{name: "absent", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveFlag(t, doc, tt.name); got != tt.want {
				t.Errorf("got %v (%T), want %v", got, got, tt.want)
			}
		})
	}
}

func TestResolveYAML_Malformed(t *testing.T) {
	resolver, err := resolveYAML(strings.NewReader("not: [valid"))
	if err != nil {
		t.Fatalf("malformed config must not be fatal: %v", err)
	}

	value, err := resolver.Resolve(nil, nil, &kong.Flag{
		Value: &kong.Value{Name: "log-level"},
	})
	if err != nil || value != nil {
		t.Errorf("got %v, %v; want nil, nil", value, err)
	}
}
