package cmd

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrInvalidFlag is wrapped by every error returned by NewFlag.
	ErrInvalidFlag = errors.New("invalid flag")
	// ErrFlagNameHyphen is returned for flag names starting with a hyphen.
	ErrFlagNameHyphen = fmt.Errorf("%w: name must not start with a hyphen", ErrInvalidFlag)
	// ErrFlagNameBlank is returned for flag names holding only whitespace.
	ErrFlagNameBlank = fmt.Errorf("%w: name must not be blank", ErrInvalidFlag)
	// ErrFlagNameWhitespace is returned for flag names containing whitespace,
	// which could never be passed as a single argument.
	ErrFlagNameWhitespace = fmt.Errorf("%w: name must not contain whitespace", ErrInvalidFlag)
	// ErrFlagNameTooShort is returned for flag names of a single character.
	ErrFlagNameTooShort = fmt.Errorf("%w: name must be longer than one character", ErrInvalidFlag)
)

// FlagGUI is the --gui flag, commonly used to open a form instead of printing
// output to chat.
var FlagGUI = MustFlag("gui")

// Flag is a boolean flag that may be passed to a command, either in its long
// form (--gui) or in its short form (-g). The short form is the first
// character of the name and is matched case-sensitively.
type Flag struct {
	name  string
	short rune
}

// NewFlag creates a Flag with the name passed. The name must be at least two
// characters long and must not start with a hyphen or contain whitespace.
func NewFlag(name string) (Flag, error) {
	switch {
	case strings.HasPrefix(name, "-"):
		return Flag{}, fmt.Errorf("flag %q: %w", name, ErrFlagNameHyphen)
	case strings.TrimSpace(name) == "":
		return Flag{}, fmt.Errorf("flag %q: %w", name, ErrFlagNameBlank)
	case strings.ContainsFunc(name, unicode.IsSpace):
		return Flag{}, fmt.Errorf("flag %q: %w", name, ErrFlagNameWhitespace)
	case utf8.RuneCountInString(name) <= 1:
		return Flag{}, fmt.Errorf("flag %q: %w", name, ErrFlagNameTooShort)
	}
	short, _ := utf8.DecodeRuneInString(name)
	return Flag{name: name, short: short}, nil
}

// MustFlag calls NewFlag and panics if the name is invalid.
func MustFlag(name string) Flag {
	f, err := NewFlag(name)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the full name of the flag, used in its long form.
func (f Flag) Name() string {
	return f.name
}

// Short returns the character used for the short form of the flag.
func (f Flag) Short() rune {
	return f.short
}

// ShortUpper reports if the short form of the flag is an upper case letter,
// meaning -T must be passed rather than -t.
func (f Flag) ShortUpper() bool {
	return unicode.IsUpper(f.short)
}

// String returns the long form of the flag, such as --gui.
func (f Flag) String() string {
	return "--" + f.name
}

// isShortFlag reports if arg has the form -abc.
func isShortFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && arg[1] != '-'
}

// isLongFlag reports if arg has the form --name.
func isLongFlag(arg string) bool {
	return len(arg) > 2 && strings.HasPrefix(arg, "--")
}

// StripFlags returns the arguments in args that are not in short or long flag
// form. A lone - or -- is kept.
func StripFlags(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if isShortFlag(arg) || isLongFlag(arg) {
			continue
		}
		out = append(out, arg)
	}
	return out
}
