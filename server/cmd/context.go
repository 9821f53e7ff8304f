package cmd

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrIndexOutOfRange is returned when an argument range does not fit the
// arguments of a Context.
var ErrIndexOutOfRange = errors.New("argument index out of range")

// Context is a parsed command line: the label the command was executed with
// and the arguments that followed it.
type Context struct {
	label string
	args  []string
	log   Logger
}

// NewContext creates a Context for the label and arguments passed. args is
// copied, so later changes to the slice do not affect the Context. If log is
// nil, diagnostics are discarded.
func NewContext(label string, args []string, log Logger) *Context {
	return &Context{label: label, args: slices.Clone(args), log: orDiscard(log)}
}

// ParseLine splits a command line into a Context. The leading slash of the
// label is optional and removed. Arguments are separated by any amount of
// whitespace. ParseLine returns false if the line holds no label.
func ParseLine(line string, log Logger) (*Context, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false
	}
	label := strings.TrimPrefix(fields[0], "/")
	if label == "" {
		return nil, false
	}
	return &Context{label: label, args: fields[1:], log: orDiscard(log)}, true
}

// Label returns the label the command was executed with, without slash.
func (c *Context) Label() string {
	return c.label
}

// Args returns a copy of the arguments of the command.
func (c *Context) Args() []string {
	return slices.Clone(c.args)
}

// Arg returns the argument at index i, if it exists.
func (c *Context) Arg(i int) (string, bool) {
	if i < 0 || i >= len(c.args) {
		return "", false
	}
	return c.args[i], true
}

// Len returns the number of arguments, counting the label as well if
// includeLabel is true.
func (c *Context) Len(includeLabel bool) int {
	if includeLabel {
		return len(c.args) + 1
	}
	return len(c.args)
}

// ExecutedString reassembles the command line with single spaces between the
// arguments, optionally preceded by the label.
func (c *Context) ExecutedString(withLabel bool) string {
	if !withLabel {
		return strings.Join(c.args, " ")
	}
	if len(c.args) == 0 {
		return c.label
	}
	return c.label + " " + strings.Join(c.args, " ")
}

// ExecutedRange reassembles the arguments from start to end, both inclusive,
// optionally preceded by the label. If the command has no arguments, only the
// label (or an empty string) is returned.
func (c *Context) ExecutedRange(withLabel bool, start, end int) (string, error) {
	if len(c.args) == 0 {
		return c.ExecutedString(withLabel), nil
	}
	if start < 0 || end < start || end >= len(c.args) {
		return "", fmt.Errorf("range [%d, %d] of %d arguments: %w", start, end, len(c.args), ErrIndexOutOfRange)
	}
	joined := strings.Join(c.args[start:end+1], " ")
	if withLabel {
		return c.label + " " + joined, nil
	}
	return joined, nil
}

// Flags parses the arguments of the Context for the flags passed.
func (c *Context) Flags(flags ...Flag) *FlagSet {
	return ParseFlags(c.args, c.log, flags...)
}

// Positional returns the arguments of the Context that are not flags.
func (c *Context) Positional() []string {
	return StripFlags(c.args)
}
