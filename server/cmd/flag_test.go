package cmd

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewFlagInvalid(t *testing.T) {
	tests := map[string]error{
		"g":            ErrFlagNameTooShort,
		"-invalidflag": ErrFlagNameHyphen,
		"--gui":        ErrFlagNameHyphen,
		"   ":          ErrFlagNameBlank,
		"":             ErrFlagNameBlank,
		"two words":    ErrFlagNameWhitespace,
	}
	for name, want := range tests {
		_, err := NewFlag(name)
		if !errors.Is(err, want) {
			t.Errorf("NewFlag(%q) error = %v, want %v", name, err, want)
		}
		if !errors.Is(err, ErrInvalidFlag) {
			t.Errorf("NewFlag(%q) error %v does not wrap %v", name, err, ErrInvalidFlag)
		}
	}
}

func TestNewFlag(t *testing.T) {
	f, err := NewFlag("Target")
	if err != nil {
		t.Fatalf("NewFlag(%q): %v", "Target", err)
	}
	if f.Name() != "Target" || f.Short() != 'T' || !f.ShortUpper() {
		t.Fatalf("NewFlag(%q) = %q short %q upper %v, want %q short 'T' upper true", "Target", f.Name(), f.Short(), f.ShortUpper(), "Target")
	}
	if FlagGUI.Short() != 'g' || FlagGUI.ShortUpper() || FlagGUI.String() != "--gui" {
		t.Fatalf("FlagGUI = %v short %q, want --gui short 'g'", FlagGUI, FlagGUI.Short())
	}
	if f := MustFlag("äb"); f.Short() != 'ä' {
		t.Fatalf("MustFlag(%q).Short() = %q, want 'ä'", "äb", f.Short())
	}
}

func TestMustFlagPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustFlag(%q) did not panic", "g")
		}
	}()
	MustFlag("g")
}

func TestParseFlagsKnown(t *testing.T) {
	for _, args := range [][]string{{"--gui"}, {"-g"}, {"--GUI"}, {"player", "-g", "10"}} {
		s := ParseFlags(args, nil, FlagGUI)
		if !s.Passed("gui") || !s.PassedFlag(FlagGUI) {
			t.Errorf("ParseFlags(%q) gui not passed", args)
		}
		if s.HasUnknown() {
			t.Errorf("ParseFlags(%q).Unknown() = %q, want none", args, s.Unknown())
		}
	}
}

func TestParseFlagsUnknown(t *testing.T) {
	s := ParseFlags([]string{"-G", "--gui"}, nil, FlagGUI)
	if !s.Passed("gui") {
		t.Errorf("gui not passed, want passed through --gui")
	}
	if diff := cmp.Diff([]string{"G"}, s.Unknown()); diff != "" {
		t.Errorf("Unknown() mismatch (-want +got):\n%s", diff)
	}

	s = ParseFlags([]string{"--foo"}, nil, FlagGUI)
	if s.Passed("gui") || !s.HasUnknown() || s.UnknownList() != "foo" {
		t.Errorf("ParseFlags(--foo) = gui %v unknown %q", s.Passed("gui"), s.UnknownList())
	}

	s = ParseFlags([]string{"-xyx", "--foo", "--foo", "-y", "-gx"}, nil, FlagGUI)
	if diff := cmp.Diff([]string{"x", "y", "foo"}, s.Unknown()); diff != "" {
		t.Errorf("Unknown() mismatch (-want +got):\n%s", diff)
	}
	if got, want := s.UnknownList(), "x, y, foo"; got != want {
		t.Errorf("UnknownList() = %q, want %q", got, want)
	}
	if !s.Passed("gui") {
		t.Errorf("gui not passed, want passed through -gx")
	}
}

func TestParseFlagsDuplicates(t *testing.T) {
	log := &recordingLogger{}
	s := ParseFlags([]string{"-gg", "--gui", "--GUI", "-g"}, log, FlagGUI)
	if !s.Passed("gui") || s.HasUnknown() {
		t.Fatalf("gui passed %v unknown %q, want passed and no unknown", s.Passed("gui"), s.Unknown())
	}
	if got := log.warnings(); got != 3 {
		t.Fatalf("%d warnings logged, want 3 for duplicates", got)
	}
}

func TestParseFlagsPresence(t *testing.T) {
	silent, target := MustFlag("silent"), MustFlag("Target")
	tests := []struct {
		args []string
		want map[string]bool
	}{
		{nil, map[string]bool{"gui": false, "silent": false, "Target": false}},
		{[]string{"-s"}, map[string]bool{"gui": false, "silent": true, "Target": false}},
		{[]string{"-t"}, map[string]bool{"gui": false, "silent": false, "Target": false}},
		{[]string{"-Tg", "--SILENT"}, map[string]bool{"gui": true, "silent": true, "Target": true}},
		{[]string{"--target", "-", "--"}, map[string]bool{"gui": false, "silent": false, "Target": true}},
	}
	for _, tt := range tests {
		s := ParseFlags(tt.args, nil, FlagGUI, silent, target)
		if diff := cmp.Diff(tt.want, s.Presence()); diff != "" {
			t.Errorf("ParseFlags(%q).Presence() mismatch (-want +got):\n%s", tt.args, diff)
		}
	}
}

func TestParseFlagsSharedShortName(t *testing.T) {
	give := MustFlag("give")
	s := ParseFlags([]string{"-g"}, nil, FlagGUI, give)
	if !s.PassedFlag(FlagGUI) || !s.PassedFlag(give) {
		t.Fatalf("-g marked gui %v give %v, want both", s.PassedFlag(FlagGUI), s.PassedFlag(give))
	}
	s = ParseFlags([]string{"--give"}, nil, FlagGUI, give)
	if s.PassedFlag(FlagGUI) || !s.PassedFlag(give) {
		t.Fatalf("--give marked gui %v give %v, want only give", s.PassedFlag(FlagGUI), s.PassedFlag(give))
	}
}

func TestContextFlags(t *testing.T) {
	ctx := NewContext("give", []string{"Steve", "-g", "--unknown"}, nil)
	s := ctx.Flags(FlagGUI)
	if !s.Passed("gui") {
		t.Errorf("Context.Flags: gui not passed")
	}
	if diff := cmp.Diff([]Flag{FlagGUI}, s.Flags(), cmp.AllowUnexported(Flag{})); diff != "" {
		t.Errorf("Flags() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"unknown"}, s.Unknown(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Unknown() mismatch (-want +got):\n%s", diff)
	}
	if got := ParseFlags(nil, nil).UnknownList(); got != "None" {
		t.Errorf("UnknownList() = %q, want %q", got, "None")
	}
}
