package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseParams(t *testing.T) {
	got, err := parseParams([]string{"gender=male", "number=singular"})
	if err != nil {
		t.Fatalf("parseParams() error = %v", err)
	}
	want := map[string]string{"gender": "male", "number": "singular"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseParams() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseParams_RejectsMissingEquals(t *testing.T) {
	if _, err := parseParams([]string{"gender"}); err == nil {
		t.Fatal("expected an error for a parameter with no \"=\"")
	}
}

func TestParseParams_ValueMayContainEquals(t *testing.T) {
	got, err := parseParams([]string{"query=a=b"})
	if err != nil {
		t.Fatalf("parseParams() error = %v", err)
	}
	if got["query"] != "a=b" {
		t.Errorf("parseParams()[query] = %q, want a=b", got["query"])
	}
}
