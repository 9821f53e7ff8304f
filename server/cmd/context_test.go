package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseLine(t *testing.T) {
	tests := map[string]struct {
		label string
		args  []string
		ok    bool
	}{
		"/say hello world":   {label: "say", args: []string{"hello", "world"}, ok: true},
		"say  hello\tworld ": {label: "say", args: []string{"hello", "world"}, ok: true},
		"  /list":            {label: "list", args: []string{}, ok: true},
		"":                   {},
		"   ":                {},
		"/ hello":            {},
		"/give 'A B' -g":     {label: "give", args: []string{"'A", "B'", "-g"}, ok: true},
	}
	for line, want := range tests {
		ctx, ok := ParseLine(line, nil)
		if ok != want.ok {
			t.Fatalf("ParseLine(%q) ok = %v, want %v", line, ok, want.ok)
		}
		if !ok {
			continue
		}
		if ctx.Label() != want.label {
			t.Errorf("ParseLine(%q).Label() = %q, want %q", line, ctx.Label(), want.label)
		}
		if diff := cmp.Diff(want.args, ctx.Args(), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("ParseLine(%q).Args() mismatch (-want +got):\n%s", line, diff)
		}
	}
}

func TestContextCopiesArgs(t *testing.T) {
	args := []string{"first", "second"}
	ctx := NewContext("test", args, nil)
	args[0] = "changed"
	if got, _ := ctx.Arg(0); got != "first" {
		t.Fatalf("Arg(0) = %q after modifying input slice, want %q", got, "first")
	}
	ctx.Args()[1] = "changed"
	if got, _ := ctx.Arg(1); got != "second" {
		t.Fatalf("Arg(1) = %q after modifying Args(), want %q", got, "second")
	}
	if _, ok := ctx.Arg(2); ok {
		t.Fatalf("Arg(2) ok = true, want false")
	}
}

func TestContextLen(t *testing.T) {
	empty := NewContext("test", nil, nil)
	if got := empty.Len(false); got != 0 {
		t.Errorf("Len(false) = %d, want 0", got)
	}
	if got := empty.Len(true); got != 1 {
		t.Errorf("Len(true) = %d, want 1", got)
	}
	if got := NewContext("test", []string{"first", "second"}, nil).Len(false); got != 2 {
		t.Errorf("Len(false) = %d, want 2", got)
	}
}

func TestExecutedString(t *testing.T) {
	ctx := NewContext("test", []string{"first", "second", "third"}, nil)
	if got := len(strings.Split(ctx.ExecutedString(true), " ")); got != 4 {
		t.Fatalf("ExecutedString(true) splits into %d parts, want 4", got)
	}
	if got, want := ctx.ExecutedString(false), "first second third"; got != want {
		t.Fatalf("ExecutedString(false) = %q, want %q", got, want)
	}
	if got := NewContext("test", nil, nil).ExecutedString(true); got != "test" {
		t.Fatalf("ExecutedString(true) = %q, want %q", got, "test")
	}
}

func TestExecutedRange(t *testing.T) {
	ctx := NewContext("test", []string{"a", "b", "c", "d"}, nil)
	got, err := ctx.ExecutedRange(true, 1, 2)
	if err != nil || got != "test b c" {
		t.Fatalf("ExecutedRange(true, 1, 2) = %q, %v, want %q, nil", got, err, "test b c")
	}
	got, err = ctx.ExecutedRange(false, 0, 3)
	if err != nil || got != "a b c d" {
		t.Fatalf("ExecutedRange(false, 0, 3) = %q, %v, want %q, nil", got, err, "a b c d")
	}
	for _, r := range [][2]int{{-1, 2}, {2, 1}, {0, 4}} {
		if _, err := ctx.ExecutedRange(false, r[0], r[1]); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("ExecutedRange(false, %d, %d) error = %v, want %v", r[0], r[1], err, ErrIndexOutOfRange)
		}
	}
	if got, err := NewContext("test", nil, nil).ExecutedRange(true, 3, 5); err != nil || got != "test" {
		t.Errorf("ExecutedRange on empty args = %q, %v, want %q, nil", got, err, "test")
	}
}

func TestContextPositional(t *testing.T) {
	ctx := NewContext("give", []string{"-g", "Steve", "--silent", "-", "diamond", "--"}, nil)
	if diff := cmp.Diff([]string{"Steve", "-", "diamond", "--"}, ctx.Positional()); diff != "" {
		t.Fatalf("Positional() mismatch (-want +got):\n%s", diff)
	}
}
