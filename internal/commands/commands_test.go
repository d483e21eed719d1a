package commands

import (
	"errors"
	"flag"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		args []string
		ok   bool
	}{
		{"cmd intensity 2", []string{"intensity", "2"}, true},
		{"intensity 2", []string{"intensity", "2"}, true},
		{"  cmd   color -tree #112233 ", []string{"color", "-tree", "#112233"}, true},
		{"cmd", nil, false},
		{"   ", nil, false},
		{"cmdx", []string{"cmdx"}, true},
	}
	for _, tt := range tests {
		args, ok := Parse(tt.line)
		if ok != tt.ok || !reflect.DeepEqual(args, tt.args) {
			t.Errorf("Parse(%q) = %q, %v; want %q, %v", tt.line, args, ok, tt.args, tt.ok)
		}
	}
}

func TestExecuteRunsWithFlags(t *testing.T) {
	reg := NewRegistry()
	fs := flag.NewFlagSet("color", flag.ContinueOnError)
	tree := fs.String("tree", "", "tree color")
	var ran bool
	reg.Register("color", "color -tree <hex>", fs, func() error {
		ran = true
		return nil
	})

	if err := reg.Execute([]string{"color", "-tree", "#fff"}); err != nil {
		t.Fatal(err)
	}
	if !ran || *tree != "#fff" {
		t.Fatalf("ran=%v tree=%q", ran, *tree)
	}
}

func TestExecuteErrors(t *testing.T) {
	reg := NewRegistry()
	boom := errors.New("boom")
	reg.Register("fail", "fail", nil, func() error { return boom })
	reg.Register("noflags", "noflags", nil, func() error { return nil })

	if err := reg.Execute(nil); !errors.Is(err, ErrMissingCommand) {
		t.Errorf("empty args: %v", err)
	}
	if err := reg.Execute([]string{"nope"}); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("unknown: %v", err)
	}
	if err := reg.Execute([]string{"fail"}); !errors.Is(err, boom) {
		t.Errorf("run error: %v", err)
	}
	if err := reg.Execute([]string{"noflags", "-x"}); err == nil {
		t.Error("undefined flag accepted")
	}
	err := reg.Execute([]string{"noflags", "-h"})
	if err == nil || !strings.Contains(err.Error(), "usage: noflags") {
		t.Errorf("help: %v", err)
	}
}

func TestNamesSortedAndUsage(t *testing.T) {
	reg := NewRegistry()
	for _, n := range []string{"speed", "color", "intensity"} {
		reg.Register(n, n+" <v>", nil, func() error { return nil })
	}
	if got := reg.Names(); !reflect.DeepEqual(got, []string{"color", "intensity", "speed"}) {
		t.Fatalf("Names() = %v", got)
	}
	if u := reg.Usage("speed"); u != "speed <v>" {
		t.Errorf("Usage(speed) = %q", u)
	}
	if u := reg.Usage("missing"); u != "" {
		t.Errorf("Usage(missing) = %q", u)
	}
}

func TestExecuteResetsFlagsAfterParseError(t *testing.T) {
	reg := NewRegistry()
	fs := flag.NewFlagSet("color", flag.ContinueOnError)
	tree := fs.String("tree", "", "tree color")
	loud := fs.Bool("loud", false, "")
	var got string
	reg.Register("color", "color -tree <hex>", fs, func() error {
		got = *tree
		return nil
	})

	if err := reg.Execute([]string{"color", "-tree", "#ff0000", "-loud", "-bogus"}); err == nil {
		t.Fatal("unknown flag accepted")
	}
	if err := reg.Execute([]string{"color"}); err != nil {
		t.Fatal(err)
	}
	if got != "" || *loud {
		t.Fatalf("flags carried over: tree %q, loud %v", got, *loud)
	}
}
