package text

import "testing"

func TestFormatBoolPlain(t *testing.T) {
	cases := []struct {
		v    bool
		f    BoolFormat
		opts BoolOptions
		want string
	}{
		{true, TrueFalse, BoolOptions{}, "true"},
		{false, TrueFalse, BoolOptions{}, "false"},
		{true, TrueFalse, BoolOptions{Capitalize: true}, "True"},
		{true, YesNo, BoolOptions{InvertText: true}, "no"},
		{false, EnabledDisabled, BoolOptions{InvertText: true, Capitalize: true}, "Enabled"},
		{false, IsIsnt, BoolOptions{}, "isn't"},
	}
	for _, c := range cases {
		if got := FormatBool(c.v, c.f, c.opts); got != c.want {
			t.Errorf("FormatBool(%v, %v, %+v) = %q, want %q", c.v, c.f, c.opts, got, c.want)
		}
	}
}

func TestFormatBoolColour(t *testing.T) {
	got := FormatBool(true, YesNo, BoolOptions{Colour: true})
	if !ContainsColour(got) {
		t.Fatalf("FormatBool with Colour returned %q without formatting codes", got)
	}
	if plain := StripColour(got); plain != "yes" {
		t.Fatalf("StripColour(FormatBool(true, YesNo)) = %q, want %q", plain, "yes")
	}
	if FormatBool(true, YesNo, BoolOptions{Colour: true}) == FormatBool(true, YesNo, BoolOptions{Colour: true, InvertColour: true}) {
		t.Fatalf("InvertColour did not change the colour of the output")
	}
}

func TestFormattedList(t *testing.T) {
	if got, want := PlainList("Players", nil), "Players: None"; got != want {
		t.Fatalf("PlainList(nil) = %q, want %q", got, want)
	}
	if got, want := PlainList("Players", []string{"Steve", "Alex"}), "Players: Steve, Alex"; got != want {
		t.Fatalf("PlainList = %q, want %q", got, want)
	}
	coloured := FormattedList("Players", []string{"Steve", "Alex"}, ", ", true)
	if got, want := StripColour(coloured), "Players: Steve, Alex"; got != want {
		t.Fatalf("StripColour(FormattedList) = %q, want %q", got, want)
	}
	if got, want := StripColour(FormattedList("Flags", nil, ", ", true)), "Flags: None"; got != want {
		t.Fatalf("StripColour(FormattedList(nil)) = %q, want %q", got, want)
	}
}
