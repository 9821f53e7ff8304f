package text

import "strings"

// Quote is a quotation mark that may wrap a quoted string: either an
// apostrophe or a double quote.
type Quote rune

const (
	// SingleQuote is the apostrophe, '.
	SingleQuote Quote = '\''
	// DoubleQuote is the quotation mark, ".
	DoubleQuote Quote = '"'
)

// String returns the quotation mark as a string.
func (q Quote) String() string {
	return string(rune(q))
}

// Wrap returns s surrounded by the quotation mark.
func (q Quote) Wrap(s string) string {
	return q.String() + s + q.String()
}

// Wraps reports if s starts and ends with the quotation mark. s must be at
// least two bytes long, so a lone quotation mark is never considered wrapped.
func (q Quote) Wraps(s string) bool {
	return len(s) >= 2 && s[0] == byte(q) && s[len(s)-1] == byte(q)
}

// QuoteOf returns the Quote the first byte of s is, if any.
func QuoteOf(s string) (Quote, bool) {
	if s == "" {
		return 0, false
	}
	return quoteByte(s[0])
}

// TrailingQuoteOf returns the Quote the last byte of s is, if any.
func TrailingQuoteOf(s string) (Quote, bool) {
	if s == "" {
		return 0, false
	}
	return quoteByte(s[len(s)-1])
}

func quoteByte(b byte) (Quote, bool) {
	switch Quote(b) {
	case SingleQuote:
		return SingleQuote, true
	case DoubleQuote:
		return DoubleQuote, true
	}
	return 0, false
}

// IsSingleQuoted reports if s is wrapped in apostrophes.
func IsSingleQuoted(s string) bool {
	return SingleQuote.Wraps(s)
}

// IsDoubleQuoted reports if s is wrapped in double quotes.
func IsDoubleQuoted(s string) bool {
	return DoubleQuote.Wraps(s)
}

// IsQuoted reports if s is wrapped in a matching pair of quotation marks.
// Mixed leading and trailing quotation marks are not quoted.
func IsQuoted(s string) bool {
	return IsSingleQuoted(s) || IsDoubleQuoted(s)
}

// WrappingQuote returns the Quote wrapping s, if s is quoted.
func WrappingQuote(s string) (Quote, bool) {
	q, ok := QuoteOf(s)
	if !ok || !q.Wraps(s) {
		return 0, false
	}
	return q, true
}

// Quoted wraps s in double quotes.
func Quoted(s string) string {
	return DoubleQuote.Wrap(s)
}

// Dequote removes one surrounding pair of matching quotation marks from s. If
// s is not quoted, it is returned as-is.
func Dequote(s string) string {
	if _, ok := WrappingQuote(s); !ok {
		return s
	}
	return s[1 : len(s)-1]
}

// ContainsQuote reports if s contains either quotation mark anywhere.
func ContainsQuote(s string) bool {
	return strings.ContainsAny(s, `'"`)
}
