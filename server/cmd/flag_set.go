package cmd

import (
	"maps"
	"slices"
	"strings"

	"github.com/df-mc/pluginapi/server/text"
)

// FlagSet holds the flags passed in a list of arguments. It is created by
// ParseFlags or Context.Flags and does not change afterwards.
type FlagSet struct {
	flags    []Flag
	presence map[string]bool
	unknown  []string
}

// ParseFlags parses args for the flags passed. Arguments of the form -abc are
// split into the short forms a, b and c, each matched case-sensitively against
// the first character of the flags. Arguments of the form --name are matched
// case-insensitively against the full names. Duplicate flags are skipped and
// flags matching no definition are collected as unknown. Both are reported
// to log.
func ParseFlags(args []string, log Logger, flags ...Flag) *FlagSet {
	log = orDiscard(log)
	s := &FlagSet{flags: slices.Clone(flags), presence: make(map[string]bool, len(flags))}

	var short []rune
	var long []string
	for _, arg := range args {
		switch {
		case isShortFlag(arg):
			for _, r := range arg[1:] {
				if slices.Contains(short, r) {
					log.Warn("Duplicate short flag.", "flag", string(r), "arg", arg)
					continue
				}
				if !slices.ContainsFunc(flags, func(f Flag) bool { return f.short == r }) {
					log.Warn("Unknown short flag.", "flag", string(r), "arg", arg)
					s.addUnknown(string(r))
					continue
				}
				short = append(short, r)
			}
		case isLongFlag(arg):
			name := arg[2:]
			if !slices.ContainsFunc(flags, func(f Flag) bool { return strings.EqualFold(f.name, name) }) {
				log.Warn("Unknown flag.", "flag", name)
				s.addUnknown(name)
				continue
			}
			if text.EqualFoldAny(name, long...) {
				log.Warn("Duplicate flag.", "flag", name)
				continue
			}
			long = append(long, name)
		}
	}
	for _, f := range flags {
		s.presence[f.name] = slices.Contains(short, f.short) || text.EqualFoldAny(f.name, long...)
	}
	log.Debug("Parsed command flags.", "short", string(short), "long", long, "unknown", s.unknown)
	return s
}

func (s *FlagSet) addUnknown(flag string) {
	if !slices.Contains(s.unknown, flag) {
		s.unknown = append(s.unknown, flag)
	}
}

// Passed reports if the flag with the exact name passed was present.
func (s *FlagSet) Passed(name string) bool {
	return s.presence[name]
}

// PassedFlag reports if f was present.
func (s *FlagSet) PassedFlag(f Flag) bool {
	return s.presence[f.name]
}

// Presence returns the presence of every flag the FlagSet was parsed for,
// keyed by flag name.
func (s *FlagSet) Presence() map[string]bool {
	return maps.Clone(s.presence)
}

// Flags returns the flags the FlagSet was parsed for.
func (s *FlagSet) Flags() []Flag {
	return slices.Clone(s.flags)
}

// Unknown returns the flags passed that matched no definition, in the order
// they were first passed. Short flags are returned as single characters and
// long flags without their leading hyphens.
func (s *FlagSet) Unknown() []string {
	return slices.Clone(s.unknown)
}

// HasUnknown reports if any unknown flags were passed.
func (s *FlagSet) HasUnknown() bool {
	return len(s.unknown) != 0
}

// UnknownList returns the unknown flags separated by commas, or "None".
func (s *FlagSet) UnknownList() string {
	if len(s.unknown) == 0 {
		return "None"
	}
	return strings.Join(s.unknown, ", ")
}
