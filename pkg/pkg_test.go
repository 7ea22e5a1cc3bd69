package pkg

import "testing"

func TestVersionString(t *testing.T) {
	v := VersionString()

	if v == "" {
		t.Fatal("empty version")
	}

	if v != Version && v+"\n" != Version {
		t.Errorf("unexpected trimming: %q from %q", v, Version)
	}
}
