package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/df-mc/pluginapi/server/text"
)

var (
	// ErrNotQuoted is returned by NewQuotedSpan if the text is not wrapped in
	// a matching pair of quotation marks.
	ErrNotQuoted = errors.New("text is not quoted")
	// ErrInvalidRange is returned by NewQuotedSpan for negative or reversed
	// argument indices.
	ErrInvalidRange = errors.New("invalid argument range")
)

// QuotedSpan is a quoted string found in the arguments of a command. It spans
// the arguments from Start to End, both inclusive.
type QuotedSpan struct {
	text       string
	start, end int
}

// NewQuotedSpan creates a QuotedSpan holding s, which must be wrapped in a
// matching pair of quotation marks, spanning the arguments from start to end.
func NewQuotedSpan(s string, start, end int) (QuotedSpan, error) {
	if start < 0 || end < start {
		return QuotedSpan{}, fmt.Errorf("span [%d, %d]: %w", start, end, ErrInvalidRange)
	}
	if !text.IsQuoted(s) {
		return QuotedSpan{}, fmt.Errorf("span %q: %w", s, ErrNotQuoted)
	}
	return QuotedSpan{text: s, start: start, end: end}, nil
}

// Text returns the quoted text, including its quotation marks.
func (s QuotedSpan) Text() string {
	return s.text
}

// String returns the text between the quotation marks.
func (s QuotedSpan) String() string {
	return text.Dequote(s.text)
}

// Quote returns the quotation mark wrapping the span.
func (s QuotedSpan) Quote() text.Quote {
	q, _ := text.WrappingQuote(s.text)
	return q
}

// Start returns the index of the first argument of the span.
func (s QuotedSpan) Start() int {
	return s.start
}

// End returns the index of the last argument of the span.
func (s QuotedSpan) End() int {
	return s.end
}

// Len returns the number of arguments the span covers.
func (s QuotedSpan) Len() int {
	return s.end - s.start + 1
}

// ContainsFloatingQuotes reports if the text between the quotation marks holds
// any further quotation marks.
func (s QuotedSpan) ContainsFloatingQuotes() bool {
	return text.ContainsQuote(s.String())
}

// FindQuoted finds the first quoted string in the arguments of the Context.
// The string is opened by the first argument starting with a quotation mark
// and closed by the last later argument ending with the same mark. An argument
// both starting and ending with the same mark is a quoted string by itself.
func (c *Context) FindQuoted() (QuotedSpan, bool) {
	switch len(c.args) {
	case 0:
		return QuotedSpan{}, false
	case 1:
		if !text.IsQuoted(c.args[0]) {
			return QuotedSpan{}, false
		}
		return QuotedSpan{text: c.args[0]}, true
	}
	start, end := -1, -1
	var open text.Quote
	for i, arg := range c.args {
		if start < 0 {
			q, ok := text.QuoteOf(arg)
			if !ok {
				continue
			}
			if q.Wraps(arg) {
				return QuotedSpan{text: arg, start: i, end: i}, true
			}
			start, open = i, q
			continue
		}
		if q, ok := text.TrailingQuoteOf(arg); ok && q == open {
			end = i
		}
	}
	if start < 0 || end < 0 {
		return QuotedSpan{}, false
	}
	return c.QuotedRange(start, end)
}

// QuotedRange joins the arguments from start to end, both inclusive, with
// spaces and returns them as a QuotedSpan if the result is quoted. Ranges out
// of bounds are logged and reported as absent.
func (c *Context) QuotedRange(start, end int) (QuotedSpan, bool) {
	if len(c.args) == 0 {
		c.log.Warn("Quoted range requested without arguments.", "label", c.label, "start", start, "end", end)
		return QuotedSpan{}, false
	}
	if start < 0 || end < start || end >= len(c.args) {
		c.log.Warn("Quoted range out of bounds.", "label", c.label, "start", start, "end", end, "args", len(c.args))
		return QuotedSpan{}, false
	}
	joined := strings.Join(c.args[start:end+1], " ")
	span, err := NewQuotedSpan(joined, start, end)
	if err != nil {
		c.log.Warn("Argument range is not quoted.", "label", c.label, "start", start, "end", end, "err", err)
		return QuotedSpan{}, false
	}
	return span, true
}

// ContainsQuoted reports if FindQuoted finds a quoted string.
func (c *Context) ContainsQuoted() bool {
	_, ok := c.FindQuoted()
	return ok
}
