package parse

import (
	"strings"

	"github.com/df-mc/pluginapi/server/text"
)

// QuoteFilter restricts which quotation marks a QuotedStringParser searches
// for.
type QuoteFilter uint8

const (
	// QuotesEither accepts strings quoted with either quotation mark, as long
	// as the same mark opens and closes the string.
	QuotesEither QuoteFilter = iota
	// QuotesDouble only accepts strings quoted with double quotes.
	QuotesDouble
	// QuotesSingle only accepts strings quoted with apostrophes.
	QuotesSingle
)

// Allows reports if the filter accepts strings quoted with q.
func (f QuoteFilter) Allows(q text.Quote) bool {
	switch f {
	case QuotesEither:
		return q == text.SingleQuote || q == text.DoubleQuote
	case QuotesDouble:
		return q == text.DoubleQuote
	case QuotesSingle:
		return q == text.SingleQuote
	}
	return false
}

// SearchMode controls where in the input a QuotedStringParser looks for a
// quoted string.
type SearchMode uint8

const (
	// SearchStrict requires the entire input to be wrapped in quotation marks.
	SearchStrict SearchMode = iota
	// SearchAny finds the leftmost quoted substring anywhere in the input.
	SearchAny
)

// QuotedStringConfig configures a QuotedStringParser.
type QuotedStringConfig struct {
	// OutputWithQuotes re-wraps the parsed value in OutputQuote.
	OutputWithQuotes bool
	// OutputQuote is the quotation mark used when OutputWithQuotes is set. The
	// zero value is treated as text.DoubleQuote.
	OutputQuote text.Quote
	// Mode is the search mode. SearchStrict by default.
	Mode SearchMode
	// Search restricts the quotation marks searched for. QuotesEither by
	// default.
	Search QuoteFilter
}

// DefaultQuotedStringConfig returns the default configuration: strict search
// for either quotation mark, outputting the bare inner text.
func DefaultQuotedStringConfig() QuotedStringConfig {
	return QuotedStringConfig{OutputQuote: text.DoubleQuote, Mode: SearchStrict, Search: QuotesEither}
}

// WithOutputQuotes returns a copy of conf that re-wraps parsed values in q.
func (conf QuotedStringConfig) WithOutputQuotes(q text.Quote) QuotedStringConfig {
	conf.OutputWithQuotes, conf.OutputQuote = true, q
	return conf
}

// WithMode returns a copy of conf using search mode m.
func (conf QuotedStringConfig) WithMode(m SearchMode) QuotedStringConfig {
	conf.Mode = m
	return conf
}

// WithSearch returns a copy of conf searching for quotation marks allowed by f.
func (conf QuotedStringConfig) WithSearch(f QuoteFilter) QuotedStringConfig {
	conf.Search = f
	return conf
}

// New creates a QuotedStringParser using a copy of conf.
func (conf QuotedStringConfig) New() *QuotedStringParser {
	if conf.OutputQuote != text.SingleQuote {
		conf.OutputQuote = text.DoubleQuote
	}
	return &QuotedStringParser{conf: conf}
}

// ParsedQuotedString is the result of QuotedStringParser.Parse.
type ParsedQuotedString struct {
	value   string
	outcome Outcome
}

// Value returns the parsed string. The bool is false if parsing failed.
func (p ParsedQuotedString) Value() (string, bool) {
	return p.value, p.outcome == OutcomeSuccess
}

// Outcome returns the outcome of parsing.
func (p ParsedQuotedString) Outcome() Outcome { return p.outcome }

// Successful reports if a quoted string was found.
func (p ParsedQuotedString) Successful() bool { return p.outcome == OutcomeSuccess }

// QuotedStringParser extracts quoted strings from single strings.
type QuotedStringParser struct {
	conf QuotedStringConfig
}

// Config returns the configuration the parser was created with.
func (p *QuotedStringParser) Config() QuotedStringConfig {
	return p.conf
}

// Parse searches input for a quoted string under the configured search mode
// and quotation filter.
func (p *QuotedStringParser) Parse(input string) ParsedQuotedString {
	var (
		inner string
		ok    bool
	)
	switch p.conf.Mode {
	case SearchAny:
		inner, ok = p.findAny(input)
	default:
		inner, ok = p.findStrict(input)
	}
	if !ok {
		return ParsedQuotedString{outcome: OutcomeNoQuotationFound}
	}
	if p.conf.OutputWithQuotes {
		inner = p.conf.OutputQuote.Wrap(inner)
	}
	return ParsedQuotedString{value: inner, outcome: OutcomeSuccess}
}

// lineBreaks holds the characters a quoted string may not span.
const lineBreaks = "\n\r\u0085\u2028\u2029"

// findStrict returns the inner text if all of input is wrapped in an allowed
// quotation mark.
func (p *QuotedStringParser) findStrict(input string) (string, bool) {
	q, ok := text.WrappingQuote(input)
	if !ok || !p.conf.Search.Allows(q) {
		return "", false
	}
	inner := input[1 : len(input)-1]
	if strings.ContainsAny(inner, lineBreaks) {
		return "", false
	}
	return inner, true
}

// findAny returns the inner text of the leftmost quoted substring of input
// that does not cross a line break. An opening mark without a matching closing mark does not prevent a later
// substring quoted with the other mark from being found.
func (p *QuotedStringParser) findAny(input string) (string, bool) {
	for i := 0; i < len(input); i++ {
		q, ok := text.QuoteOf(input[i:])
		if !ok || !p.conf.Search.Allows(q) {
			continue
		}
		j := strings.IndexByte(input[i+1:], byte(q))
		if j < 0 {
			continue
		}
		if inner := input[i+1 : i+1+j]; !strings.ContainsAny(inner, lineBreaks) {
			return inner, true
		}
	}
	return "", false
}
