package cmd

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/df-mc/pluginapi/server/text"
	"github.com/google/uuid"
)

// ErrInvalidTarget is returned by ParseTarget for arguments that cannot name a
// player.
var ErrInvalidTarget = errors.New("invalid target")

// maxNameLength is the maximum length of a player name in runes.
const maxNameLength = 16

// selectors holds the target selectors accepted by ParseTarget.
var selectors = []string{"@a", "@e", "@p", "@r", "@s"}

// Target is a player targeted by a command argument. Exactly one of Name, UUID
// and Selector identifies the target.
type Target struct {
	// Name is the name of the player, with surrounding quotes removed.
	Name string
	// UUID is the UUID of the player, or uuid.Nil.
	UUID uuid.UUID
	// Selector is a target selector such as @a, or an empty string.
	Selector string
}

// ByUUID reports if the target identifies a player by UUID.
func (t Target) ByUUID() bool {
	return t.UUID != uuid.Nil
}

// String returns the argument form of the target.
func (t Target) String() string {
	switch {
	case t.Selector != "":
		return t.Selector
	case t.ByUUID():
		return t.UUID.String()
	case strings.ContainsRune(t.Name, ' '):
		return text.Quoted(t.Name)
	}
	return t.Name
}

// ParseTarget parses an argument as a target: a selector such as @a, a player
// UUID, or a player name. Names containing spaces may be quoted.
func ParseTarget(arg string) (Target, error) {
	if text.EqualFoldAny(arg, selectors...) {
		return Target{Selector: strings.ToLower(arg)}, nil
	}
	if strings.HasPrefix(arg, "@") {
		return Target{}, fmt.Errorf("selector %q: %w", arg, ErrInvalidTarget)
	}
	if id, err := uuid.Parse(arg); err == nil {
		if id == uuid.Nil {
			return Target{}, fmt.Errorf("nil uuid: %w", ErrInvalidTarget)
		}
		return Target{UUID: id}, nil
	}
	name := strings.TrimSpace(text.Dequote(arg))
	switch {
	case name == "":
		return Target{}, fmt.Errorf("empty name: %w", ErrInvalidTarget)
	case utf8.RuneCountInString(name) > maxNameLength:
		return Target{}, fmt.Errorf("name %q longer than %d characters: %w", name, maxNameLength, ErrInvalidTarget)
	case text.ContainsQuote(name), text.ContainsColour(name):
		return Target{}, fmt.Errorf("name %q: %w", name, ErrInvalidTarget)
	}
	return Target{Name: name}, nil
}

// Target parses the argument at index i as a target. If the argument opens a
// quoted string, the whole quoted string is used as the name of the target.
func (c *Context) Target(i int) (Target, bool) {
	arg, ok := c.Arg(i)
	if !ok {
		c.log.Warn("Target argument missing.", "label", c.label, "index", i)
		return Target{}, false
	}
	if _, quoted := text.QuoteOf(arg); quoted {
		if span, ok := c.quotedFrom(i); ok {
			arg = span.Text()
		}
	}
	t, err := ParseTarget(arg)
	if err != nil {
		c.log.Warn("Invalid target argument.", "label", c.label, "index", i, "err", err)
		return Target{}, false
	}
	return t, true
}

// quotedFrom returns the shortest quoted span starting at argument i.
func (c *Context) quotedFrom(i int) (QuotedSpan, bool) {
	q, _ := text.QuoteOf(c.args[i])
	if q.Wraps(c.args[i]) {
		return QuotedSpan{text: c.args[i], start: i, end: i}, true
	}
	for j := i + 1; j < len(c.args); j++ {
		if tq, ok := text.TrailingQuoteOf(c.args[j]); ok && tq == q {
			return c.QuotedRange(i, j)
		}
	}
	return QuotedSpan{}, false
}
